package board

import (
	"errors"
	"math/rand"
	"testing"
)

// recorder counts callback invocations.
type recorder struct {
	states []Grid
	lost   int
	won    int
}

func (r *recorder) settings() Settings {
	s := DefaultSettings()
	s.OnStateChanged = func(g Grid) { r.states = append(r.states, g) }
	s.OnLost = func() { r.lost++ }
	s.OnWin = func() { r.won++ }
	return s
}

func newTestBoard(t *testing.T, s Settings) *Board {
	t.Helper()
	return New(s, rand.New(rand.NewSource(42)))
}

func TestRestart(t *testing.T) {
	rec := &recorder{}
	b := newTestBoard(t, rec.settings())
	b.Restart()

	if len(rec.states) != 1 {
		t.Fatalf("OnStateChanged called %d times, want 1", len(rec.states))
	}

	g := b.State()
	if len(g) != DefaultSize {
		t.Fatalf("grid has %d rows, want %d", len(g), DefaultSize)
	}
	tiles := 0
	for _, row := range g {
		if len(row) != DefaultSize {
			t.Fatalf("row has %d cells, want %d", len(row), DefaultSize)
		}
		for _, v := range row {
			switch v {
			case 0:
			case 2, 4:
				tiles++
			default:
				t.Errorf("unexpected tile value %d", v)
			}
		}
	}
	if tiles != DefaultInitialTiles {
		t.Errorf("Restart placed %d tiles, want %d", tiles, DefaultInitialTiles)
	}
	if !rec.states[0].Equal(g) {
		t.Errorf("notified grid %v differs from state %v", rec.states[0], g)
	}
}

func TestRestartReplacesGrid(t *testing.T) {
	s := DefaultSettings()
	s.InitialTiles = 0
	b := newTestBoard(t, s)
	b.SetState(Grid{{2, 4, 8, 16}, {32, 64, 128, 256}, {2, 4, 8, 16}, {32, 64, 128, 256}})
	b.Restart()

	if len(EmptyCells(b.State())) != DefaultSize*DefaultSize {
		t.Errorf("Restart with zero initial tiles should leave an empty grid, got %v", b.State())
	}
}

func TestStateIsCopy(t *testing.T) {
	b := newTestBoard(t, DefaultSettings())
	b.SetState(Grid{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	g := b.State()
	g[0][0] = 1024
	if b.State()[0][0] != 2 {
		t.Error("mutating the result of State changed the board")
	}
}

func TestSetStateCopiesInput(t *testing.T) {
	b := newTestBoard(t, DefaultSettings())
	in := Grid{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	b.SetState(in)

	in[0][0] = 1024
	if b.State()[0][0] != 2 {
		t.Error("mutating the grid passed to SetState changed the board")
	}
}

func TestCallbackGridIsCopy(t *testing.T) {
	var seen Grid
	s := DefaultSettings()
	s.OnStateChanged = func(g Grid) {
		seen = g
		g[0][0] = 9999
	}
	b := newTestBoard(t, s)
	b.Restart()

	if b.State()[0][0] == 9999 {
		t.Error("callback was able to mutate board state")
	}
	if seen == nil {
		t.Error("callback was not invoked")
	}
}

func TestMergeLeftExample(t *testing.T) {
	rec := &recorder{}
	b := newTestBoard(t, rec.settings())
	b.SetState(Grid{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	success, points := b.Merge(Left)

	if !success {
		t.Error("Merge(Left) success = false, want true")
	}
	if points != 4 {
		t.Errorf("Merge(Left) points = %d, want 4", points)
	}
	if len(rec.states) != 2 {
		t.Fatalf("OnStateChanged called %d times, want 2", len(rec.states))
	}

	first := rec.states[0]
	want := Grid{{4, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	if !first.Equal(want) {
		t.Errorf("first notification = %v, want %v", first, want)
	}

	// The second notification carries the new random tiles.
	second := rec.states[1]
	if got := len(EmptyCells(second)); got != 15-DefaultNewTiles {
		t.Errorf("second notification has %d empty cells, want %d", got, 15-DefaultNewTiles)
	}
	if second[0][0] != 4 {
		t.Errorf("merged tile lost after placement: %v", second)
	}
	if rec.lost != 0 || rec.won != 0 {
		t.Errorf("lost=%d won=%d, want 0/0", rec.lost, rec.won)
	}
}

func TestMergeUpExample(t *testing.T) {
	s := DefaultSettings()
	s.NewTiles = 0
	b := newTestBoard(t, s)
	b.SetState(Grid{{2, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	success, points := b.Merge(Up)
	if !success || points != 4 {
		t.Fatalf("Merge(Up) = (%v, %d), want (true, 4)", success, points)
	}

	g := b.State()
	col := []int{g[0][0], g[1][0], g[2][0], g[3][0]}
	want := []int{4, 0, 0, 0}
	for i := range col {
		if col[i] != want[i] {
			t.Errorf("first column = %v, want %v", col, want)
			break
		}
	}
}

func TestMergeNoMovementInDirection(t *testing.T) {
	rec := &recorder{}
	b := newTestBoard(t, rec.settings())
	start := Grid{{2, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	b.SetState(start)

	success, points := b.Merge(Left)

	if success || points != 0 {
		t.Errorf("Merge(Left) = (%v, %d), want (false, 0)", success, points)
	}
	if len(rec.states) != 0 || rec.lost != 0 || rec.won != 0 {
		t.Errorf("unexpected notifications: states=%d lost=%d won=%d", len(rec.states), rec.lost, rec.won)
	}
	if !b.State().Equal(start) {
		t.Errorf("grid changed on failed merge: %v", b.State())
	}
}

func TestMergeStuckBoardShortCircuits(t *testing.T) {
	stuck := Grid{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}, {4, 5, 6, 7}}

	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			rec := &recorder{}
			b := newTestBoard(t, rec.settings())
			b.SetState(stuck)

			success, points := b.Merge(dir)

			if success || points != 0 {
				t.Errorf("Merge(%s) = (%v, %d), want (false, 0)", dir, success, points)
			}
			if rec.lost != 1 {
				t.Errorf("OnLost called %d times, want 1", rec.lost)
			}
			if len(rec.states) != 0 {
				t.Errorf("OnStateChanged called %d times, want 0", len(rec.states))
			}
			if !b.State().Equal(stuck) {
				t.Errorf("stuck grid changed: %v", b.State())
			}
		})
	}
}

func TestMergeWin(t *testing.T) {
	rec := &recorder{}
	s := rec.settings()
	s.WinNumber = 8
	b := newTestBoard(t, s)
	b.SetState(Grid{{4, 4, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	success, points := b.Merge(Left)

	if !success || points != 8 {
		t.Errorf("Merge(Left) = (%v, %d), want (true, 8)", success, points)
	}
	if rec.won != 1 {
		t.Errorf("OnWin called %d times, want 1", rec.won)
	}
	if len(rec.states) != 2 {
		t.Errorf("OnStateChanged called %d times, want 2", len(rec.states))
	}
}

func TestMergeWinDisabled(t *testing.T) {
	rec := &recorder{}
	s := rec.settings()
	s.WinNumber = 0
	b := newTestBoard(t, s)
	b.SetState(Grid{{4, 4, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})

	b.Merge(Left)
	if rec.won != 0 {
		t.Errorf("OnWin called %d times with win detection disabled", rec.won)
	}
}

func TestMergeLostAndWonTogether(t *testing.T) {
	rec := &recorder{}
	s := rec.settings()
	s.WinNumber = 8
	s.NewTiles = 1
	b := newTestBoard(t, s)
	// Merging the two 4s leaves a single empty cell at the end of row 0.
	// Whatever tile lands there (2 or 4) has no equal neighbour.
	b.SetState(Grid{
		{4, 4, 16, 32},
		{64, 128, 256, 512},
		{1024, 2048, 4096, 8192},
		{16384, 32768, 65536, 131072},
	})

	success, points := b.Merge(Left)

	if !success || points != 8 {
		t.Fatalf("Merge(Left) = (%v, %d), want (true, 8)", success, points)
	}
	if rec.lost != 1 {
		t.Errorf("OnLost called %d times, want 1", rec.lost)
	}
	if rec.won != 1 {
		t.Errorf("OnWin called %d times, want 1", rec.won)
	}
	if len(rec.states) != 2 {
		t.Errorf("OnStateChanged called %d times, want 2", len(rec.states))
	}
}

func TestSuccessfulMergeAlwaysNotifiesTwice(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rec := &recorder{}
		b := New(rec.settings(), rand.New(rand.NewSource(seed)))
		b.Restart()

		for _, dir := range Directions {
			before := len(rec.states)
			if ok, _ := b.Merge(dir); ok {
				if got := len(rec.states) - before; got != 2 {
					t.Fatalf("seed %d: successful Merge(%s) notified %d times, want 2", seed, dir, got)
				}
			} else if got := len(rec.states) - before; got != 0 {
				t.Fatalf("seed %d: failed Merge(%s) notified %d times, want 0", seed, dir, got)
			}
		}
	}
}

func TestNoMoves(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{"empty cell", Grid{{0, 1, 2, 3}, {1, 2, 3, 4}, {3, 4, 5, 6}, {4, 5, 6, 7}}, false},
		{"empty cell inside", Grid{{2, 1, 2, 3}, {1, 2, 3, 4}, {3, 0, 5, 6}, {4, 5, 6, 7}}, false},
		{"stuck", Grid{{2, 1, 2, 3}, {1, 2, 3, 4}, {3, 4, 5, 6}, {4, 5, 6, 7}}, true},
		{"stuck diagonal", Grid{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}, {4, 5, 6, 7}}, true},
		{"row pair", Grid{{2, 1, 2, 3}, {1, 2, 2, 4}, {3, 4, 5, 6}, {4, 5, 6, 7}}, false},
		{"column pair", Grid{{2, 1, 2, 3}, {1, 2, 3, 4}, {3, 4, 3, 6}, {4, 5, 6, 7}}, false},
		{"diagonal row flip", Grid{{1, 1, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}, {4, 5, 6, 7}}, false},
		{"diagonal column flip", Grid{{1, 2, 3, 4}, {1, 3, 4, 5}, {3, 4, 5, 6}, {4, 5, 6, 7}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoMoves(tt.grid); got != tt.want {
				t.Errorf("NoMoves(%v) = %v, want %v", tt.grid, got, tt.want)
			}
		})
	}
}

func TestHasWin(t *testing.T) {
	g := Grid{{2, 4}, {8, 2048}}
	if !HasWin(g, 2048) {
		t.Error("HasWin(2048) = false, want true")
	}
	if HasWin(g, 4096) {
		t.Error("HasWin(4096) = true, want false")
	}
}

func TestEmptyCells(t *testing.T) {
	cells := EmptyCells(Grid{{0, 0, 0, 0}, {0, 4, 2, 0}})
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 3}}
	if len(cells) != len(want) {
		t.Fatalf("EmptyCells returned %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, cells[i], want[i])
		}
	}

	if n := len(EmptyCells(Grid{{1, 1, 1, 1}, {1, 4, 2, 1}})); n != 0 {
		t.Errorf("full grid has %d empty cells, want 0", n)
	}
}

func TestPlaceRandomClampsToEmptyCells(t *testing.T) {
	b := newTestBoard(t, DefaultSettings())
	b.SetState(Grid{{2, 4, 8, 16}, {32, 0, 128, 256}, {512, 1024, 0, 4096}, {8, 16, 32, 64}})

	b.PlaceRandom(5)

	g := b.State()
	if n := len(EmptyCells(g)); n != 0 {
		t.Errorf("%d empty cells left, want 0", n)
	}
	for _, c := range []Cell{{1, 1}, {2, 2}} {
		if v := g[c.Row][c.Col]; v != 2 && v != 4 {
			t.Errorf("placed value at %+v = %d, want 2 or 4", c, v)
		}
	}
}

func TestPlaceRandomFullBoard(t *testing.T) {
	full := Grid{{2, 4}, {8, 16}}
	s := DefaultSettings()
	s.Size = 2
	b := newTestBoard(t, s)
	b.SetState(full)

	b.PlaceRandom(3)
	if !b.State().Equal(full) {
		t.Errorf("PlaceRandom on a full board changed it: %v", b.State())
	}
}

func TestPlaceRandomDistribution(t *testing.T) {
	s := DefaultSettings()
	s.Size = 10
	b := New(s, rand.New(rand.NewSource(7)))

	twos, fours := 0, 0
	for range 50 {
		b.SetState(NewGrid(10))
		b.PlaceRandom(100)
		for _, row := range b.State() {
			for _, v := range row {
				switch v {
				case 2:
					twos++
				case 4:
					fours++
				default:
					t.Fatalf("unexpected value %d", v)
				}
			}
		}
	}

	ratio := float64(fours) / float64(twos+fours)
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("share of 4s = %.3f, want about 0.1", ratio)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	b1 := New(DefaultSettings(), rand.New(rand.NewSource(12345)))
	b2 := New(DefaultSettings(), rand.New(rand.NewSource(12345)))
	b1.Restart()
	b2.Restart()

	if !b1.State().Equal(b2.State()) {
		t.Errorf("same seed produced different grids:\n%v\n%v", b1.State(), b2.State())
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%q) = (%v, %v), want %v", dir.String(), got, err, dir)
		}
	}
	if got, err := ParseDirection("down"); err != nil || got != Down {
		t.Errorf("ParseDirection(down) = (%v, %v), want Down", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) should fail")
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(" 2,2,0,0/0,0,0,0/0, 4,0,0/0,0,0,2048 ")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	want := Grid{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 0, 2048}}
	if !g.Equal(want) {
		t.Errorf("ParseGrid = %v, want %v", g, want)
	}

	bad := []string{"", "2,2/2", "2,x/0,0", "2,-2/0,0", "2,2,2/2,2,2"}
	for _, s := range bad {
		if _, err := ParseGrid(s); !errors.Is(err, ErrBadGrid) {
			t.Errorf("ParseGrid(%q) error = %v, want ErrBadGrid", s, err)
		}
	}
}
