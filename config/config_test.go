package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/luca-patrignani/war/domain/war"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Manual || cfg.Crypto {
		t.Fatal("manual and crypto must default to false")
	}
	if cfg.Forfeit != "discard" || cfg.WarStake != 3 || cfg.MaxRounds != 10000 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	r, err := cfg.Rules()
	if err != nil {
		t.Fatal(err)
	}
	if r != war.DefaultRules() {
		t.Fatalf("expected default rules, got %+v", r)
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("WAR_MANUAL", "true")
	t.Setenv("WAR_SEED", "99")
	t.Setenv("WAR_FORFEIT", "opponent")
	t.Setenv("WAR_STAKE", "2")
	t.Setenv("WAR_LOG_LEVEL", "debug")

	cfg, err := Parse()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Manual || cfg.Seed != 99 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	r, err := cfg.Rules()
	if err != nil {
		t.Fatal(err)
	}
	if r.Forfeit != war.ForfeitToOpponent || r.WarStake != 2 {
		t.Fatalf("unexpected rules %+v", r)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestParseInvalidNumber(t *testing.T) {
	t.Setenv("WAR_SEED", "not-a-number")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error for invalid WAR_SEED")
	}
}

func TestRulesRejectsUnknownPolicy(t *testing.T) {
	cfg := Config{Forfeit: "split", WarStake: 3}
	if _, err := cfg.Rules(); !errors.Is(err, war.ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "war.env")
	if err := os.WriteFile(path, []byte("WAR_GAMES=12\nWAR_CRYPTO=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("WAR_GAMES")
		os.Unsetenv("WAR_CRYPTO")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Games != 12 || !cfg.Crypto {
		t.Fatalf("expected values from env file, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("a missing env file must be ignored, got %v", err)
	}
}
