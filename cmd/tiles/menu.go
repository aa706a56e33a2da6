package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive mode picker",
	Long: `Show the mode menu. Games and the scoreboard return to the menu
when they end, the same way an SSH session does.

Menu controls:
  Up/Down   - Navigate
  Enter     - Select
  Tab       - Scoreboard
  Q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer a.close()

	a.openStore()
	p := tea.NewProgram(
		tui.NewSessionModel(a.runtimeConfig(), a.deps()),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
