// cmd/wordlet/main.go
//
// CLI entrypoint. Wires config → logger → dictionary → session → shell.
// Flags mirror the environment/.env settings and win when both are set:
//   --difficulty easy|hard
//   --theme dark|light
//   --seed N        (0 seeds from the clock)
//   --answer WORD   (fixed secret, for testing)
// Logs go to a file because the TUI owns the terminal; without
// WORDLET_LOG_FILE they are discarded.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlet/internal/config"
	"github.com/robalobadob/wordlet/internal/game"
	"github.com/robalobadob/wordlet/internal/tui"
	"github.com/robalobadob/wordlet/internal/words"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordlet:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	var seed int64
	var answer string

	cmd := &cobra.Command{
		Use:           "wordlet",
		Short:         "Wordlet is a command line Wordle clone",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Game.Seed = seed
			cfg.Game.Answer = answer
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Game.Difficulty, "difficulty", "d", cfg.Game.Difficulty,
		"game difficulty (easy or hard)")
	cmd.Flags().StringVarP(&cfg.Game.Theme, "theme", "t", cfg.Game.Theme,
		"display colors (dark or light)")
	cmd.Flags().Int64Var(&seed, "seed", 0,
		"random seed for secret selection (0 seeds from the clock)")
	cmd.Flags().StringVar(&answer, "answer", "",
		"fixed secret word instead of a random one (testing)")
	return cmd
}

func run(cfg *config.Config) error {
	log := newLogger(cfg.Logging)

	difficulty, err := game.ParseDifficulty(cfg.Game.Difficulty)
	if err != nil {
		return err
	}
	theme, err := tui.ParseTheme(cfg.Game.Theme)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	dict, err := words.Load(words.Config{
		AnswersFile: cfg.Words.AnswersFile,
		AllowedFile: cfg.Words.AllowedFile,
		Rand:        rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	secret := cfg.Game.Answer
	if secret == "" {
		secret = dict.PickSecret()
	}
	session, err := game.New(game.Options{
		Answer:     secret,
		Difficulty: difficulty,
		Words:      dict,
	})
	if err != nil {
		return err
	}

	answers, allowed := dict.Stats()
	log.Info().
		Str("difficulty", string(difficulty)).
		Int64("seed", seed).
		Int("answers", answers).
		Int("allowed", allowed).
		Msg("starting wordlet")

	return tui.New(session, theme, log).Run()
}

// newLogger builds a file-backed zerolog logger, or a discarded one
// when no log file is configured.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	var out io.Writer = io.Discard
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
		}
	}
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
