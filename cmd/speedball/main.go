// speedball is a Breakout-style game with a sprint mechanic, playable in
// the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	speedball play              - Play in the terminal
//	speedball window            - Play in a desktop window
//	speedball serve             - Start SSH server for remote play
//	speedball scores            - Show high scores
//	speedball settings          - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.speedball/scores.db)
//	--config <path>        - Load a custom game config YAML
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard
//	--sprint-period <ms>   - Sprint ramp duration (default: from config)
//	--sprint-top-speed <n> - Sprint top speed (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedball/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSprintMS   int
	flagSprintTop  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "speedball",
	Short: "SPEEDBALL - Breakout with a sprint button",
	Long: `SPEEDBALL is a brick breaker: bounce the ball off your paddle, clear
every brick, catch power-ups and hold Shift to sprint the ball.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  settings  - Show or change sound and debug settings

Examples:
  speedball play
  speedball play --difficulty hard
  speedball play --sprint-period 800 --sprint-top-speed 30
  speedball window --seed 42
  speedball serve --ssh :2222
  speedball scores --recent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagSprintMS, "sprint-period", 0, "Sprint ramp duration in ms (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagSprintTop, "sprint-top-speed", 0, "Sprint top ball speed (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}
