// hexcorrupt is a turn-based hex-grid puzzle for the terminal.
//
// Usage:
//
//	hexcorrupt play          - Play a run in this terminal
//	hexcorrupt serve         - Start SSH server for remote play
//	hexcorrupt scores        - Browse recorded runs
//	hexcorrupt curves        - Print the level curves
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--config <path>  - Use a custom game config YAML
//	--db <path>      - Set database path (default: ~/.hexcorrupt/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexcorrupt",
	Short: "Hexcorrupt - a turn-based hex puzzle in your terminal",
	Long: `Hexcorrupt is a turn-based puzzle on a hexagonal board. Grow the board
to the goal, then thin it out again before your turns run out. Letters
arrive as you progress and unlock new tools.

Available commands:
  play     - Play a run in this terminal
  serve    - Start SSH server for remote play
  scores   - Browse recorded runs
  curves   - Print goals and turn budgets per level

Examples:
  hexcorrupt play
  hexcorrupt play --player ada --log-file ./hexcorrupt.log
  hexcorrupt serve --ssh :2222
  hexcorrupt scores --mine
  hexcorrupt curves --levels 15`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexcorrupt/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(curvesCmd)
}
