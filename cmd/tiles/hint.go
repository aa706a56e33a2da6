package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/advisor"
	"github.com/vovakirdan/tui-tiles/internal/board"
)

var (
	flagGrid  string
	flagModel string
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Ask the AI for the best move on a grid",
	Long: `Send a grid to the configured chat model and print the suggested move.
Rows are separated by '/' and cells by ','.

Requires OPENAI_API_KEY (environment or .env). TILES_AI_BASE_URL points
the client at any OpenAI-compatible endpoint.

Examples:
  tiles hint --grid "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,4"
  tiles hint --grid "2,4/8,16" --model o3-mini`,
	Args: cobra.NoArgs,
	RunE: runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid to advise on, e.g. \"2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,4\"")
	hintCmd.Flags().StringVar(&flagModel, "model", "", "Model to ask (defaults to the configured model)")
	//nolint:errcheck // Flag is defined above
	hintCmd.MarkFlagRequired("grid")
}

func runHint(cmd *cobra.Command, _ []string) error {
	grid, err := board.ParseGrid(flagGrid)
	if err != nil {
		return err
	}

	a, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if a.advisor == nil {
		return advisor.ErrNoAPIKey
	}

	model := flagModel
	if model == "" {
		model = a.cfg.Advisor.Model
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	dir, ok, err := a.advisor.Advise(ctx, grid, model)
	switch {
	case errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	case !ok:
		return fmt.Errorf("%s gave no answer", model)
	}

	fmt.Println(dir)
	return nil
}
