// internal/config/config.go
//
// Runtime configuration, read from the environment.
// A .env file in the working directory is loaded first when present
// (values already in the environment win).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Word selection modes.
const (
	ModeSequence = "sequence" // next unplayed word, persisted per size
	ModeRandom   = "random"
	ModeDaily    = "daily"
	ModeIndex    = "index" // fixed WORD_INDEX
)

// DBOff as DB_PATH disables the progress database.
const DBOff = "off"

// Config controls the game driver.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	WordSize  int    `env:"WORD_SIZE"  envDefault:"5"`
	Mode      string `env:"WORD_MODE"  envDefault:"sequence"`
	WordIndex int    `env:"WORD_INDEX" envDefault:"0"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	// DBPath is the SQLite file for sequence progress; DBOff keeps it in memory.
	DBPath   string `env:"DB_PATH"   envDefault:"./data/progress.db"`
	WordsDir string `env:"WORDS_DIR"`
}

// Load reads .env (if any) and the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment into a Config without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeSequence, ModeRandom, ModeDaily, ModeIndex:
	default:
		return fmt.Errorf("config: WORD_MODE %q: want sequence, random, daily or index", c.Mode)
	}
	if c.WordSize < 4 || c.WordSize > 7 {
		return fmt.Errorf("config: WORD_SIZE %d: want 4-7", c.WordSize)
	}
	if c.WordIndex < 0 {
		return fmt.Errorf("config: WORD_INDEX %d: must not be negative", c.WordIndex)
	}
	return nil
}
