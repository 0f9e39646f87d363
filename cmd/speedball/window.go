package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with keyboard or mouse.

Hold Shift to sprint. Space starts and pauses, Enter or a click launches
the ball, Esc returns to the menu, Q quits.

Examples:
  speedball window
  speedball window --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	e, err := openEnv(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := e.game
	config.ApplyPreset(&cfg, e.preset)

	opts := window.Options{
		Config:   cfg,
		Sprint:   e.sprint,
		Runtime:  core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Prefs:    e.prefs,
		Store:    e.store,
		Settings: e.settings,
		Logs:     e.logs,
	}
	if e.audio != nil {
		opts.Audio = e.audio
	}

	runErr := window.Run(opts)
	e.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
