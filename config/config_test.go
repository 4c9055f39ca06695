package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Keys != "123" {
		t.Errorf("Expected default keys 123, got %q", cfg.Keys)
	}
	if cfg.Tick != 10*time.Millisecond {
		t.Errorf("Expected default tick 10ms, got %v", cfg.Tick)
	}
	if cfg.KeyHold != 120*time.Millisecond {
		t.Errorf("Expected default key hold 120ms, got %v", cfg.KeyHold)
	}
	if cfg.Debug || cfg.Replay || cfg.Seed != 0 {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("Expected default log dir logs, got %q", cfg.LogDir)
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	t.Setenv("WHACK_KEYS", "asd")
	t.Setenv("WHACK_SEED", "7")
	t.Setenv("WHACK_DEBUG", "true")

	cfg, err := Load(newFlagSet(), []string{"-seed", "9", "-replay"}, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Keys != "asd" {
		t.Errorf("Expected env keys asd, got %q", cfg.Keys)
	}
	if cfg.Seed != 9 {
		t.Errorf("Expected flag to override env seed, got %d", cfg.Seed)
	}
	if !cfg.Debug || !cfg.Replay {
		t.Errorf("Expected debug from env and replay from flag, got %+v", cfg)
	}
	if got := cfg.KeyRunes(); len(got) != 3 || got[0] != 'a' || got[2] != 'd' {
		t.Errorf("Unexpected key runes %q", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WHACK_KEYS=jkl\nWHACK_TICK=20ms\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// Register cleanup for the variables godotenv sets
	t.Setenv("WHACK_KEYS", "")
	t.Setenv("WHACK_TICK", "")
	os.Unsetenv("WHACK_KEYS")
	os.Unsetenv("WHACK_TICK")

	cfg, err := Load(newFlagSet(), nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Keys != "jkl" || cfg.Tick != 20*time.Millisecond {
		t.Errorf("Expected values from .env, got keys %q tick %v", cfg.Keys, cfg.Tick)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Missing .env must not fail, got %v", err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("WHACK_SEED", "not-a-number")

	_, err := Load(newFlagSet(), nil, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Keys: "123", KeyHold: 100 * time.Millisecond, Tick: 10 * time.Millisecond, LogDir: "logs"}

	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"ok", func(*Config) {}, ""},
		{"too few keys", func(c *Config) { c.Keys = "12" }, "need 3 keys"},
		{"duplicate key", func(c *Config) { c.Keys = "aba" }, "bound twice"},
		{"quit key", func(c *Config) { c.Keys = "1q3" }, "reserved"},
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick"},
		{"hold past debounce", func(c *Config) { c.KeyHold = time.Second }, "debounce"},
		{"debug without dir", func(c *Config) { c.Debug = true; c.LogDir = "" }, "log-dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Fatalf("expected error containing %q, got %v", tt.errSub, err)
			}
		})
	}
}
