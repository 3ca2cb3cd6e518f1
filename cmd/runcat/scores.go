package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdudko/runcat/internal/platform/tui"
	"github.com/pdudko/runcat/internal/storage"
)

var (
	flagPlain bool
	flagStats bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top scores recorded on this machine.

By default the table opens as an interactive view; --plain prints it
to stdout instead.

Examples:
  runcat scores
  runcat scores --plain
  runcat scores --stats
  runcat scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table to stdout instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print aggregate run statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
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
		if clearErr := store.ClearScores(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
	case flagStats:
		printStats(store)
	case flagPlain:
		printScores(store)
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if runErr := tui.RunScoreboard(store, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("runcat - High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runcat' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("runcat - Run Statistics")
	fmt.Println()
	fmt.Printf("  Runs:        %d\n", stats.Runs)
	fmt.Printf("  High score:  %d\n", stats.HighScore)
	fmt.Printf("  Average:     %.1f\n", stats.AvgScore)
	fmt.Printf("  Total:       %d\n", stats.TotalScore)
	if stats.Runs > 0 {
		fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
