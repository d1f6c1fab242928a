package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Flags shared by play, serve and config.
var (
	flagConfig     string
	flagDifficulty string
)

// loadConfig resolves the YAML configuration and applies the difficulty
// preset, if any.
func loadConfig(path, difficulty string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset, ok := config.ParsePreset(difficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadSettings is loadConfig converted to engine settings.
func loadSettings(path, difficulty string) (tetris.Settings, error) {
	cfg, err := loadConfig(path, difficulty)
	if err != nil {
		return tetris.Settings{}, err
	}
	return tetris.SettingsFromConfig(cfg), nil
}

// playerName identifies the local player in the score table.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// newFileLogger logs to ~/.tetris/tetris.log so messages do not tear the
// full-screen UI. Falls back to a silent logger.
func newFileLogger(prefix string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".tetris")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn
}
