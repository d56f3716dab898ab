package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

func (app *CalcApp) evalCommand() *cobra.Command {
	var x float64

	cmd := &cobra.Command{
		Use:   "eval [flags] EXPR",
		Short: "Evaluate an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var at *float64
			if cmd.Flags().Changed("x") {
				at = &x
			}
			return app.eval(args[0], at)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "value bound to the variable x")
	return cmd
}

func (app *CalcApp) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR",
		Short: "Print the tokens of an expression",
		Long:  `Tokens prints the tokens of the normalized expression, including the best-effort tokens of a malformed one.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app.timings.reset()
			defer app.printTimings()

			s := scanner.NewScanner(args[0])
			var tokens []token.Token
			var err error
			app.timings.track(stageScan, func() {
				tokens, err = s.Scan()
			})

			for _, tok := range tokens {
				fmt.Fprintf(app.stdout, "%#v\n", tok)
			}
			if err != nil {
				return &sourceError{s.Source(), err}
			}
			return nil
		},
	}
}

func (app *CalcApp) rpnCommand() *cobra.Command {
	var infix, reduced bool

	cmd := &cobra.Command{
		Use:   "rpn [flags] EXPR",
		Short: "Print the postfix form of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app.timings.reset()
			defer app.printTimings()

			c, err := app.compile(args[0])
			if c.rpn == nil {
				return err
			}

			fmt.Fprintln(app.stdout, c.rpn)
			if infix {
				text, err := parser.NewInfixPrinter().Print(c.rpn)
				if err != nil {
					return &sourceError{c.source, err}
				}
				fmt.Fprintln(app.stdout, text)
			}
			if reduced && c.tmpl != nil {
				fmt.Fprintln(app.stdout, c.tmpl)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&infix, "infix", false, "also print the fully parenthesized infix form")
	cmd.Flags().BoolVar(&reduced, "reduced", false, "also print the postfix form with the x-independent prefix folded")
	return cmd
}
