package board

import (
	"slices"
	"testing"
)

func TestTransformRoundTrip(t *testing.T) {
	grids := []Grid{
		{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}},
		{{2, 0, 0, 4}, {0, 8, 0, 0}, {16, 0, 2, 0}, {0, 0, 0, 32}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{7}},
	}

	for _, g := range grids {
		for _, dir := range Directions {
			t.Run(dir.String(), func(t *testing.T) {
				back := TransformBack(Transform(g, dir), dir)
				if !back.Equal(g) {
					t.Errorf("TransformBack(Transform(%v, %s)) = %v", g, dir, back)
				}
			})
		}
	}
}

func TestTransform(t *testing.T) {
	g := Grid{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}

	tests := []struct {
		dir  Direction
		want Grid
	}{
		{Left, g},
		{Up, Grid{{1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15}, {4, 8, 12, 16}}},
		{Right, Grid{{4, 3, 2, 1}, {8, 7, 6, 5}, {12, 11, 10, 9}, {16, 15, 14, 13}}},
		{Down, Grid{{13, 9, 5, 1}, {14, 10, 6, 2}, {15, 11, 7, 3}, {16, 12, 8, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := Transform(g, tt.dir)
			if !got.Equal(tt.want) {
				t.Errorf("Transform(%s) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}

	// Transform must not alias the input.
	out := Transform(g, Left)
	out[0][0] = 99
	if g[0][0] != 1 {
		t.Error("Transform(Left) returned a grid sharing rows with its input")
	}
}

func TestTransposeNonSquare(t *testing.T) {
	got := Transpose(Grid{{1, 2, 3, 4}, {5, 6, 7, 8}})
	want := Grid{{1, 5}, {2, 6}, {3, 7}, {4, 8}}
	if !got.Equal(want) {
		t.Errorf("Transpose = %v, want %v", got, want)
	}
}

func TestMergeRow(t *testing.T) {
	tests := []struct {
		in      []int
		want    []int
		success bool
		points  int
	}{
		{[]int{0, 0, 0, 0}, []int{0, 0, 0, 0}, false, 0},
		{[]int{2, 0, 0, 0}, []int{2, 0, 0, 0}, false, 0},
		{[]int{0, 0, 0, 2}, []int{2, 0, 0, 0}, true, 0},
		{[]int{0, 2, 0, 0}, []int{2, 0, 0, 0}, true, 0},
		{[]int{4, 2, 0, 0}, []int{4, 2, 0, 0}, false, 0},
		{[]int{4, 0, 2, 0}, []int{4, 2, 0, 0}, true, 0},
		{[]int{2, 0, 4, 0}, []int{2, 4, 0, 0}, true, 0},
		{[]int{2, 8, 0, 4}, []int{2, 8, 4, 0}, true, 0},
		{[]int{2, 0, 0, 4}, []int{2, 4, 0, 0}, true, 0},
		{[]int{2, 2, 0, 0}, []int{4, 0, 0, 0}, true, 4},
		{[]int{4, 4, 0, 0}, []int{8, 0, 0, 0}, true, 8},
		{[]int{2, 4, 4, 0}, []int{2, 8, 0, 0}, true, 8},
		{[]int{2, 0, 4, 4}, []int{2, 8, 0, 0}, true, 8},
		{[]int{2, 4, 0, 4}, []int{2, 8, 0, 0}, true, 8},
		{[]int{2, 2, 2, 2}, []int{4, 4, 0, 0}, true, 8},
		{[]int{4, 4, 2, 2}, []int{8, 4, 0, 0}, true, 12},
		{[]int{2, 2, 4, 4}, []int{4, 8, 0, 0}, true, 12},
		{[]int{2, 2, 4, 2}, []int{4, 4, 2, 0}, true, 4},
		{[]int{2, 2, 0, 4}, []int{4, 4, 0, 0}, true, 4},
		{[]int{0, 0, 2, 2}, []int{4, 0, 0, 0}, true, 4},
		{[]int{0, 2, 2, 0}, []int{4, 0, 0, 0}, true, 4},
		{[]int{4, 4, 4, 0}, []int{8, 4, 0, 0}, true, 8},
		{[]int{8, 4, 4, 4}, []int{8, 8, 4, 0}, true, 8},
		{[]int{2, 0, 2, 2}, []int{4, 2, 0, 0}, true, 4},
		{[]int{4, 4, 4, 4}, []int{8, 8, 0, 0}, true, 16},
		{[]int{2, 4, 8, 16}, []int{2, 4, 8, 16}, false, 0},
		{[]int{}, []int{}, false, 0},
	}

	for _, tt := range tests {
		in := slices.Clone(tt.in)
		success, got, points := MergeRow(in)
		if success != tt.success || points != tt.points || !slices.Equal(got, tt.want) {
			t.Errorf("MergeRow(%v) = (%v, %v, %d), want (%v, %v, %d)",
				tt.in, success, got, points, tt.success, tt.want, tt.points)
		}
		if !slices.Equal(in, tt.in) {
			t.Errorf("MergeRow(%v) modified its input to %v", tt.in, in)
		}
	}
}

func TestMergeRowAlreadyMergedIsNoop(t *testing.T) {
	rows := [][]int{{2, 4, 8, 0}, {16, 0, 0, 0}, {2, 4, 2, 4}, {0, 0, 0, 0}}
	for _, row := range rows {
		success, got, points := MergeRow(row)
		if success || points != 0 || !slices.Equal(got, row) {
			t.Errorf("MergeRow(%v) = (%v, %v, %d), want unchanged", row, success, got, points)
		}
	}
}

func TestMergeMatrix(t *testing.T) {
	single := Grid{{0, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	column := Grid{{0, 2, 0, 0}, {0, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	full := Grid{{2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}}
	stacked := Grid{{2, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	mixed := Grid{{0, 0, 0, 0}, {0, 4, 2, 0}, {0, 2, 2, 0}, {0, 0, 0, 0}}

	tests := []struct {
		name    string
		in      Grid
		dir     Direction
		success bool
		want    Grid
		points  int
	}{
		{"single left", single, Left, true, Grid{{0, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 0},
		{"single up", single, Up, true, Grid{{0, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 0},
		{"single right", single, Right, true, Grid{{0, 0, 0, 0}, {0, 0, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 0},
		{"single down", single, Down, true, Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 2, 0, 0}}, 0},
		{"column up", column, Up, true, Grid{{0, 4, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 4},
		{"column right", column, Right, true, Grid{{0, 0, 0, 2}, {0, 0, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 0},
		{"full up", full, Up, true, Grid{{4, 4, 4, 4}, {4, 4, 4, 4}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 32},
		{"full right", full, Right, true, Grid{{0, 0, 4, 4}, {0, 0, 4, 4}, {0, 0, 4, 4}, {0, 0, 4, 4}}, 32},
		{"stacked left", stacked, Left, false, stacked, 0},
		{"stacked up", stacked, Up, true, Grid{{4, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 4},
		{"stacked right", stacked, Right, true, Grid{{0, 0, 0, 2}, {0, 0, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 0},
		{"stacked down", stacked, Down, true, Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {4, 0, 0, 0}}, 4},
		{"mixed left", mixed, Left, true, Grid{{0, 0, 0, 0}, {4, 2, 0, 0}, {4, 0, 0, 0}, {0, 0, 0, 0}}, 4},
		{"mixed up", mixed, Up, true, Grid{{0, 4, 4, 0}, {0, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, 4},
		{"mixed right", mixed, Right, true, Grid{{0, 0, 0, 0}, {0, 0, 4, 2}, {0, 0, 0, 4}, {0, 0, 0, 0}}, 4},
		{"mixed down", mixed, Down, true, Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 4, 0, 0}, {0, 2, 4, 0}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()
			success, got, points := MergeMatrix(tt.in, tt.dir)
			if success != tt.success {
				t.Errorf("success = %v, want %v", success, tt.success)
			}
			if !got.Equal(tt.want) {
				t.Errorf("grid = %v, want %v", got, tt.want)
			}
			if points != tt.points {
				t.Errorf("points = %d, want %d", points, tt.points)
			}
			if !tt.in.Equal(before) {
				t.Errorf("MergeMatrix modified its input: %v", tt.in)
			}
		})
	}
}

func TestMergeMatrixStuckBoard(t *testing.T) {
	stuck := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	for _, dir := range Directions {
		success, got, points := MergeMatrix(stuck, dir)
		if success || points != 0 || !got.Equal(stuck) {
			t.Errorf("MergeMatrix(stuck, %s) = (%v, %v, %d), want (false, unchanged, 0)", dir, success, got, points)
		}
	}
}

func TestMergeMatrixPointsAccumulate(t *testing.T) {
	g := Grid{
		{2, 2, 4, 4},
		{4, 4, 2, 2},
		{0, 0, 0, 0},
		{8, 0, 8, 0},
	}
	_, _, points := MergeMatrix(g, Left)
	// Row 0: 4 + 8, row 1: 8 + 4, row 3: 16.
	if points != 40 {
		t.Errorf("points = %d, want 40", points)
	}
}
