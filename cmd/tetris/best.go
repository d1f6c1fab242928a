package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the best score",
	Long: `Print the best recorded score as a bare number.

Reads the scores database, or the text file given with --score-file.
A missing or unreadable store prints 0.

Examples:
  tetris best
  tetris best --score-file ./scores.txt`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().StringVar(&flagScoreFile, "score-file", "", "Read the best score from this text file")
}

func runBest(_ *cobra.Command, _ []string) {
	var hs tetris.HighScoreStore

	if flagScoreFile != "" {
		fs, err := storage.NewFileStore(flagScoreFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		hs = fs
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Println(0)
			return
		}
		defer store.Close()
		hs = store.Keeper(tetris.GameID, "")
	}

	fmt.Println(hs.HighScore())
}
