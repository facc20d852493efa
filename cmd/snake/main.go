// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play with the raw-terminal frontend
//	snake config             - Print the default configuration
//	snake keys               - Print the key bindings
//
// Flags:
//
//	--seed <value>           - RNG seed for reproducible food placement
//	--config <path>          - Custom config YAML
//	--difficulty <preset>    - easy, normal or hard
//	--ui <raw|tea>           - Frontend (default: raw)
//	--log <path>             - Write logs to a file
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagUI         string
	flagLog        string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Steer the snake around a walled 60x20 field, eat food to grow and
score, and avoid the walls and your own tail. The snake speeds up as
your score rises.

Controls:
  W/K/Up     - Up
  S/J/Down   - Down
  A/H/Left   - Left
  D/L/Right  - Right
  R          - Retry (after game over)
  Q/Ctrl+C   - Quit

Examples:
  snake
  snake --difficulty hard
  snake --seed 42 --log snake.log
  snake --ui tea
  snake --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagUI, "ui", uiRaw, "Frontend: raw or tea")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
