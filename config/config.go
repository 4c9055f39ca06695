// Package config loads runtime settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/whack-a-mole/constants"
)

// Config holds every knob of a run; the difficulty schedule is fixed and not here
type Config struct {
	// Keys maps runes to buttons 0, 1, 2 in order
	Keys string `env:"WHACK_KEYS" envDefault:"123"`

	// KeyHold is how long one key press keeps a button line low
	KeyHold time.Duration `env:"WHACK_KEY_HOLD" envDefault:"120ms"`

	// Tick is the loop idle period
	Tick time.Duration `env:"WHACK_TICK" envDefault:"10ms"`

	// Seed fixes target selection; 0 picks a random seed
	Seed uint64 `env:"WHACK_SEED" envDefault:"0"`

	Debug  bool   `env:"WHACK_DEBUG" envDefault:"false"`
	LogDir string `env:"WHACK_LOG_DIR" envDefault:"logs"`

	// Replay starts a new session after every game over
	Replay bool `env:"WHACK_REPLAY" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv reads KEY=VALUE pairs from path into the environment
// Variables already set win; a missing file is not an error
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from dotenv, environment and flags
// args excludes the program name
func Load(fset *flag.FlagSet, args []string, dotenvPath string) (*Config, error) {
	if err := LoadDotEnv(dotenvPath); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	cfg.BindFlags(fset)
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BindFlags registers flags defaulting to the current values
func (c *Config) BindFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.Keys, "keys", c.Keys, "three keys for buttons 1-3, left to right")
	fset.DurationVar(&c.KeyHold, "key-hold", c.KeyHold, "how long a key press holds a button down")
	fset.DurationVar(&c.Tick, "tick", c.Tick, "game loop tick period")
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for target selection (0 = random)")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log under -log-dir")
	fset.StringVar(&c.LogDir, "log-dir", c.LogDir, "directory for the debug log")
	fset.BoolVar(&c.Replay, "replay", c.Replay, "start a new game after game over")
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	if n := utf8.RuneCountInString(c.Keys); n != constants.TargetCount {
		return fmt.Errorf("keys: need %d keys, got %d (%q)", constants.TargetCount, n, c.Keys)
	}
	seen := make(map[rune]bool, constants.TargetCount)
	for _, r := range c.Keys {
		if r == 'q' {
			return fmt.Errorf("keys: %q is reserved for quit", r)
		}
		if seen[r] {
			return fmt.Errorf("keys: %q bound twice", r)
		}
		seen[r] = true
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick: must be positive, got %v", c.Tick)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("key-hold: must be positive, got %v", c.KeyHold)
	}
	if c.KeyHold > constants.DebounceWindow {
		return fmt.Errorf("key-hold: %v exceeds the %v debounce window, one press would count twice",
			c.KeyHold, constants.DebounceWindow)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("log-dir: required with debug")
	}
	return nil
}

// KeyRunes returns the button keys in button order
func (c *Config) KeyRunes() []rune {
	return []rune(c.Keys)
}
