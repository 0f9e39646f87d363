package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/speedball/internal/core"
	"github.com/vovakirdan/speedball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the terminal launcher: pick a difficulty, toggle sound and
debug logging, then play.

Controls:
  Left/Right        - Move paddle (mouse works too)
  Shift+Left/Right  - Move and sprint
  S                 - Sprint on/off
  Enter / click     - Launch ball
  Space             - Start, pause and resume
  Esc               - Back to the menu
  H                 - Announce keyboard shortcuts
  A                 - Sound on/off
  D                 - Debug log on/off
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - One life less, narrower paddle, faster ball

Examples:
  speedball play
  speedball play --difficulty easy
  speedball play --config ./my-speedball.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	e, err := openEnv(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	deps := tui.Deps{
		Config:   e.game,
		Sprint:   e.sprint,
		Prefs:    e.prefs,
		Store:    e.store,
		Settings: e.settings,
		Logs:     e.logs,
		Ring:     e.ring,
	}
	if e.audio != nil {
		deps.Audio = e.audio
	}

	runErr := tui.Run(deps, cfg, e.preset)

	// Close before potential exit
	e.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
