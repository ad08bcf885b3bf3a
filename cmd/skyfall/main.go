// skyfall is a side-scrolling survival arcade game for the terminal.
//
// Usage:
//
//	skyfall              - Play the game
//	skyfall version      - Show version information
//
// Flags:
//
//	--fps <rate>          - Set render rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Path to a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--debug-log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDebugLog   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - survive the scroll in your terminal",
	Long: `Skyfall is a terminal arcade game: stay airborne, grab tokens and
power-ups, dodge obstacles, and keep the countdown alive.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentle spawn and speed scaling
  normal - Default scaling
  hard   - Aggressive scaling
  fixed  - No scaling at all

Examples:
  skyfall
  skyfall --difficulty hard
  skyfall --seed 42 --config ./my-skyfall.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write debug logs to the given file")

	rootCmd.AddCommand(versionCmd)
}
