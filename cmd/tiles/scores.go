package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a mode. Without a mode the interactive
scoreboard opens, or a summary of every mode is printed when output is
not a terminal.

Examples:
  tiles scores
  tiles scores 2048_endless
  tiles scores 2048 --all
  tiles scores 2048_campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var (
	flagAllRuns     bool
	flagClearScores bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded run for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagAllRuns || flagClearScores {
			return fmt.Errorf("--all and --clear need a mode")
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			w, h, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				w, h = 80, 24
			}
			_, err = tui.RunScoreboard(store, w, h)
			return err
		}
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'tiles list' to see available modes)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s\n", game.Title())
		return nil
	}

	scores, err := loadRuns(store, gameID, flagAllRuns)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tiles play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")
	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// loadRuns returns the top 10 runs for a mode, or every run when all is set.
func loadRuns(store *storage.Store, gameID string, all bool) ([]storage.ScoreEntry, error) {
	if all {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, 10)
}

// printSummary prints one line of stats per registered mode.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-14s  %-6s  %-5s  %-8s  %-6s  %s\n", "Mode", "Games", "Wins", "Best", "Tile", "Last played")
	fmt.Printf("  %-14s  %-6s  %-5s  %-8s  %-6s  %s\n", "----", "-----", "----", "----", "----", "-----------")
	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-14s  %-6d  %-5s  %-8s  %-6s  %s\n", info.ID, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-14s  %-6d  %-5d  %-8d  %-6d  %s\n",
			info.ID, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
