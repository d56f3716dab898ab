package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/config"
)

func (app *CalcApp) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocalc",
		Short: "Infix expression calculator",
		Long: `gocalc evaluates infix math expressions over one free variable x.
Without a command it starts an interactive prompt; "EXPR @ N" evaluates EXPR at x = N.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: app.configure,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runPrompt()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "TOML config file (default $"+config.EnvConfig+")")
	flags.String("color", config.ColorAuto, "colorize diagnostics ("+config.ColorAuto+"|"+config.ColorAlways+"|"+config.ColorNever+")")
	flags.Int("precision", -1, "significant digits of printed numbers, -1 for the shortest exact form")
	flags.Bool("timings", false, "print stage timings to stderr")

	root.AddCommand(
		app.evalCommand(),
		app.tokensCommand(),
		app.rpnCommand(),
		app.rangeCommand(),
		app.runCommand(),
		app.benchCommand(),
	)
	return root
}

// configure loads the config file and lets explicitly set flags override it.
func (app *CalcApp) configure(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("precision") {
		if cfg.Output.Precision, err = flags.GetInt("precision"); err != nil {
			return fmt.Errorf("failed to get precision flag: %w", err)
		}
	}
	if app.showTimings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	colors := []string{config.ColorAuto, config.ColorAlways, config.ColorNever}
	if !slices.Contains(colors, cfg.Output.Color) {
		return fmt.Errorf("%w --color must be one of %s", errInvalidArgument, strings.Join(colors, ", "))
	}
	if cfg.Output.Precision < -1 {
		return fmt.Errorf("%w --precision must be -1 or more", errInvalidArgument)
	}

	app.cfg = cfg
	app.reporter = calcerrors.NewErrReporterColor(app.stderr, app.colored())
	return nil
}

func (app *CalcApp) colored() bool {
	switch app.cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return calcerrors.IsTerminal(app.stderr)
	}
}

func (app *CalcApp) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate every line of a script file",
		Long:  `Run evaluates a file line by line. Blank lines and lines starting with '#' are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runFile(args[0])
		},
	}
}
