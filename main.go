package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/progress"
	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.InitDir(cfg.WordsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx := context.Background()
	sel, err := chooseSelector(ctx, cfg, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a word")
	}
	p, err := game.NewPuzzle(cfg.WordSize, sel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start puzzle")
	}
	log.Info().Int("size", p.Size()).Str("mode", cfg.Mode).Int("maxGuesses", p.MaxGuesses()).Msg("puzzle ready")

	state := play(os.Stdin, os.Stdout, p)
	log.Debug().Str("state", state.String()).Int("guesses", p.GuessesUsed()).Msg("puzzle closed")
}

// chooseSelector maps the configured mode to a word selector.
// Sequence mode advances the persisted per-size position as a side effect.
func chooseSelector(ctx context.Context, cfg config.Config, now time.Time) (words.Selector, error) {
	switch cfg.Mode {
	case config.ModeRandom:
		return words.Random{}, nil
	case config.ModeDaily:
		return words.Daily{Date: now, Salt: cfg.DailySalt}, nil
	case config.ModeIndex:
		return words.Index(cfg.WordIndex), nil
	case config.ModeSequence:
		return nextInSequence(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
}

func nextInSequence(ctx context.Context, cfg config.Config) (words.Selector, error) {
	list, err := words.ForSize(cfg.WordSize)
	if err != nil {
		return nil, err
	}

	var st store.Store
	if cfg.DBPath == config.DBOff {
		st = store.NewMemoryStore()
	} else {
		db, err := store.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		st = db
	}

	seq := progress.New(st)
	idx, err := seq.Next(ctx, list)
	if err != nil {
		return nil, err
	}
	done, total, err := seq.Status(ctx, list)
	if err != nil {
		return nil, err
	}
	log.Info().Int("size", cfg.WordSize).Int("index", int(idx)).Msg(progressLabel(done, total))
	return idx, nil
}
