package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedball/internal/games/speedball"
	"github.com/vovakirdan/speedball/internal/platform/tui"
	"github.com/vovakirdan/speedball/internal/storage"
)

var (
	flagRecent      bool
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores, or the 10 most recent with --recent.

Examples:
  speedball scores
  speedball scores --recent
  speedball scores -i        # browse in the terminal UI
  speedball scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent scores instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(speedball.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("All scores cleared.")
		return
	case flagInteractive:
		if err := tui.RunScoreboard(store, 80, 24); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagRecent {
		scores, err = store.RecentScores(speedball.ID, 10)
	} else {
		scores, err = store.TopScores(speedball.ID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if flagRecent {
		fmt.Println("Recent Games - SPEEDBALL")
	} else {
		fmt.Println("High Scores - SPEEDBALL")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'speedball play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-4s  %s\n", "Rank", "Score", "Level", "Acc", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-4s  %s\n", "----", "-----", "-----", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %3d%%  %s\n", i+1, entry.Score, entry.Level, entry.Accuracy, dateStr)
	}

	fmt.Println()
	if stats, err := store.GameStats(speedball.ID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Best level: %d  Avg accuracy: %.0f%%\n",
			stats.HighScore, stats.GamesCount, stats.BestLevel, stats.AvgAccuracy)
	}
}
