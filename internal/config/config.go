// Package config loads CLI defaults from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "GOCALC_CONFIG"

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrInvalidConfig = errors.New("invalid configuration.")

var (
	formats = []string{FormatText, FormatJSON, FormatMsgpack}
	colors  = []string{ColorAuto, ColorAlways, ColorNever}
)

type Config struct {
	Eval   EvalConfig   `toml:"eval"`
	Range  RangeConfig  `toml:"range"`
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
}

type EvalConfig struct {
	Parallel bool `toml:"parallel"`
	// Workers is the parallel chunk count; 0 means one per logical CPU.
	Workers int `toml:"workers"`
}

type RangeConfig struct {
	Start     float64 `toml:"start"`
	End       float64 `toml:"end"`
	Step      float64 `toml:"step"`
	Inclusive bool    `toml:"inclusive"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	// Precision is the number of significant digits; -1 prints the shortest exact form.
	Precision int `toml:"precision"`
}

type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

func Default() Config {
	return Config{
		Range:  RangeConfig{Start: 0, End: 10, Step: 1},
		Output: OutputConfig{Format: FormatText, Color: ColorAuto, Precision: -1},
		REPL:   REPLConfig{Prompt: "> "},
	}
}

// Resolve loads the file at path, falling back to $GOCALC_CONFIG.
// With neither set it returns the defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to read config: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a TOML document on top of the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w unknown key %s", ErrInvalidConfig, undecoded[0])
	}
	if err := validate(cfg, meta); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config, meta toml.MetaData) error {
	if meta.IsDefined("eval", "workers") && cfg.Eval.Workers < 0 {
		return fmt.Errorf("%w [eval].workers must not be negative", ErrInvalidConfig)
	}
	if meta.IsDefined("range", "step") && !(cfg.Range.Step > 0) {
		return fmt.Errorf("%w [range].step must be positive", ErrInvalidConfig)
	}
	if meta.IsDefined("output", "format") && !slices.Contains(formats, cfg.Output.Format) {
		return fmt.Errorf("%w [output].format must be one of %s", ErrInvalidConfig, strings.Join(formats, ", "))
	}
	if meta.IsDefined("output", "color") && !slices.Contains(colors, cfg.Output.Color) {
		return fmt.Errorf("%w [output].color must be one of %s", ErrInvalidConfig, strings.Join(colors, ", "))
	}
	if meta.IsDefined("output", "precision") && cfg.Output.Precision < -1 {
		return fmt.Errorf("%w [output].precision must be -1 or more", ErrInvalidConfig)
	}
	if meta.IsDefined("repl", "prompt") && cfg.REPL.Prompt == "" {
		return fmt.Errorf("%w [repl].prompt must not be empty", ErrInvalidConfig)
	}
	return nil
}

