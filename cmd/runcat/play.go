package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdudko/runcat/internal/audio"
	"github.com/pdudko/runcat/internal/config"
	"github.com/pdudko/runcat/internal/core"
	"github.com/pdudko/runcat/internal/events"
	"github.com/pdudko/runcat/internal/platform/tui"
	"github.com/pdudko/runcat/internal/runner"
	"github.com/pdudko/runcat/internal/storage"
)

var (
	flagConfig    string
	flagMute      bool
	flagNoHaptics bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after a crash)
  M          - Toggle sound
  V          - Toggle the crash flash
  Q/Ctrl+C   - Quit

Examples:
  runcat play
  runcat play --seed 42
  runcat play --mute
  runcat play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Bare 'runcat' plays too, so the play flags live on both commands.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
		c.Flags().BoolVar(&flagNoHaptics, "no-haptics", false, "Disable the crash flash")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	// Terminal size up front; the model follows resizes after that.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - scores just will not survive the session
		store = nil
	}

	bus := events.NewBus()
	game := runner.New(gameCfg, bus)
	if store != nil {
		if best, hsErr := store.HighScore(); hsErr == nil {
			rcfg.Best = best
		}
		if entries, topErr := store.TopScores(0); topErr == nil {
			scores := make([]int, len(entries))
			for i, e := range entries {
				scores[i] = e.Score
			}
			game.Board().Seed(scores)
		}
	}

	player := audio.NewPlayer()
	if flagMute {
		player.SetEnabled(false)
	}
	if initErr := player.Init(); initErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; sound disabled\n", initErr)
		player.SetEnabled(false)
	}
	player.Attach(bus)

	flash := tui.NewFlash()
	if flagNoHaptics {
		flash.SetEnabled(false)
	}
	flash.Attach(bus)

	runErr := tui.Run(game, store, rcfg, core.SystemClock{}, player, flash)

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
