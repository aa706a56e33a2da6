// tiles is a terminal 2048 with a campaign, an endless mode, an SSH server
// and an optional AI hint.
//
// Usage:
//
//	tiles list              - List game modes
//	tiles play [mode]       - Play a mode (picker when omitted)
//	tiles menu              - Menu, games and scoreboard in one session
//	tiles serve             - Start SSH server for remote play
//	tiles scores [mode]     - Show high scores
//	tiles hint --grid ...   - Ask the AI for the best move on a grid
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.tiles/scores.db)
//	--config <path>  - Board and advisor config YAML
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tiles - 2048 in your terminal",
	Long: `Tiles is a terminal 2048: slide the board, merge equal tiles and
reach the target tile. An AI model can suggest a move when you are stuck.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  hint     - Ask the AI for a move on a given grid

Examples:
  tiles list
  tiles play 2048_endless
  tiles menu
  tiles serve --ssh :2222
  tiles hint --grid "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,4"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(hintCmd)
}
