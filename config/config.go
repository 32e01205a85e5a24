// Package config loads the War CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/luca-patrignani/war/domain/war"
)

// Config is read from WAR_* variables, optionally set in a .env file.
type Config struct {
	Manual    bool   `env:"WAR_MANUAL" envDefault:"false"`
	Seed      int64  `env:"WAR_SEED" envDefault:"0"`
	Crypto    bool   `env:"WAR_CRYPTO" envDefault:"false"`
	Forfeit   string `env:"WAR_FORFEIT" envDefault:"discard"`
	WarStake  int    `env:"WAR_STAKE" envDefault:"3"`
	MaxRounds int    `env:"WAR_MAX_ROUNDS" envDefault:"10000"`
	Games     int    `env:"WAR_GAMES" envDefault:"1000"`
	Workers   int    `env:"WAR_WORKERS" envDefault:"0"`
	LogLevel  string `env:"WAR_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files (a missing file is not an error) and then the
// process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Rules builds the game rules from the configured stake and forfeit policy.
func (c Config) Rules() (war.Rules, error) {
	policy, err := war.ParseForfeitPolicy(c.Forfeit)
	if err != nil {
		return war.Rules{}, err
	}
	r := war.Rules{WarStake: c.WarStake, Forfeit: policy}
	if err := r.Validate(); err != nil {
		return war.Rules{}, err
	}
	return r, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
