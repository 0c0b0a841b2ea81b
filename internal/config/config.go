// internal/config/config.go
//
// Startup configuration for wordlet.
// Sources, in increasing precedence: built-in defaults, a .env file in
// the working directory, process environment, CLI flags (bound by the
// cobra command in cmd/wordlet). Configuration is consumed once at
// startup; nothing here is re-read while the game runs.

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the shell needs to construct a game.
type Config struct {
	Game    GameConfig
	Words   WordsConfig
	Logging LoggingConfig
}

// GameConfig holds per-session options.
type GameConfig struct {
	Difficulty string // "easy" or "hard"
	Theme      string // "dark" or "light"
	Seed       int64  // 0 means seed from entropy
	Answer     string // fixed secret for testing; empty picks randomly
}

// WordsConfig holds dictionary overrides.
// Empty paths fall back to the embedded lists.
type WordsConfig struct {
	AnswersFile string
	AllowedFile string
}

// LoggingConfig holds logging options. The terminal belongs to the TUI,
// so logs go to a file; an empty File discards them.
type LoggingConfig struct {
	File  string
	Level string
}

// Load reads a .env file if present and builds a Config from the
// environment with defaults. CLI flags are layered on by the caller.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Game: GameConfig{
			Difficulty: getEnv("WORDLET_DIFFICULTY", "easy"),
			Theme:      getEnv("WORDLET_THEME", "dark"),
		},
		Words: WordsConfig{
			AnswersFile: getEnv("WORDLET_ANSWERS_FILE", ""),
			AllowedFile: getEnv("WORDLET_ALLOWED_FILE", ""),
		},
		Logging: LoggingConfig{
			File:  getEnv("WORDLET_LOG_FILE", ""),
			Level: getEnv("WORDLET_LOG_LEVEL", "info"),
		},
	}
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
