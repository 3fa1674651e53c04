// invaders plays Space Invaders in the terminal, locally or over SSH.
//
// Usage:
//
//	invaders list               - List available variants
//	invaders play <variant>     - Play a variant
//	invaders menu               - Pick variants interactively
//	invaders serve              - Start SSH server for remote play
//	invaders scores [variant]   - Show the best runs of a variant
//	invaders config             - Print the game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/invaders.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the invaders variants
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger writes CLI diagnostics to stderr, outside the alternate screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "invaders",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down the aliens before they reach the ground.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the game configuration

Examples:
  invaders list
  invaders play invaders
  invaders play invaders_arcade --difficulty hard
  invaders menu
  invaders serve --ssh :2222 --metrics :9090
  invaders scores invaders`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/invaders.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
