// runcat is a terminal endless runner: a cat sprints down a scrolling street
// and has to clear the crates in its way.
//
// Usage:
//
//	runcat                   - Play (same as 'runcat play')
//	runcat play              - Play a run
//	runcat scores            - Show the high score table
//	runcat serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.runcat/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runcat",
	Short: "runcat - an endless runner for your terminal",
	Long: `runcat is a terminal endless runner. A cat sprints down a scrolling
street and has to clear the crates in its way; the longer it stays on
its feet, the faster the street gets.

Running runcat with no command starts a game.

Available commands:
  play     - Play a run
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  runcat
  runcat play --seed 42
  runcat scores --plain
  runcat serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runcat/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
