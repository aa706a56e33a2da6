package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/storage"
)

func newScoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store := newScoreboardStore(t)
	for _, run := range []storage.Run{
		{GameID: "2048", Score: 3000, MaxTile: 256, Moves: 300},
		{GameID: "2048", Score: 9000, MaxTile: 2048, Moves: 900, Won: true},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 9000 {
		t.Fatalf("scores = %+v, want best first", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.Wins != 1 {
		t.Fatalf("stats = %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "9000", "Best tile: 2048", "Games:     2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardSwitchesModes(t *testing.T) {
	store := newScoreboardStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "2048_endless", Score: 50}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, 60, 30)
	if len(m.scores) != 0 {
		t.Fatalf("classic should have no runs, got %d", len(m.scores))
	}

	// Modes are sorted: 2048, 2048_campaign, 2048_endless
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.modes[m.cursor].ID != "2048_endless" {
		t.Fatalf("cursor on %q, want wrap to 2048_endless", m.modes[m.cursor].ID)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 50 {
		t.Errorf("scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "Games:     1") {
		t.Error("narrow view should still show stats")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "not being saved") {
		t.Error("view should explain that scores are not saved")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}
