package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagScoreFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Soft drop
  Up/W/X           - Rotate
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Score table (while paused or after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and floor
  normal - Classic pacing (0.27s per row, 5ms faster every 5s)
  hard   - Faster start, lower floor, bigger steps
  fixed  - No speed-up at all

Scores are kept in the SQLite database (--db). With --score-file the
best score is kept in a single-number text file instead.

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml
  tetris play --score-file ~/scores.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagScoreFile, "score-file", "", "Keep the best score in this text file instead of the database")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := loadSettings(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger("tetris")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tetris.Options{Settings: settings, Logger: logger}

	var store *storage.Store
	if flagScoreFile != "" {
		fs, fsErr := storage.NewFileStore(flagScoreFile)
		if fsErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", fsErr)
			os.Exit(1)
		}
		opts.Store = fs
	} else {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Continue without storage - game still works
			store = nil
		} else {
			opts.Store = store.Keeper(tetris.GameID, playerName())
		}
	}

	logger.Info("starting game", "seed", cfg.Seed, "interval", settings.InitialInterval, "speed_up", settings.SpeedUp)
	runErr := tui.Run(tetris.New(opts), store, cfg, playerName(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
