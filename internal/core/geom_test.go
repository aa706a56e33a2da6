package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 12, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (exclusive)", 15, 15, false},
		{"just inside bottom-right", 14, 14, true},
		{"outside left", 9, 12, false},
		{"outside right", 15, 12, false},
		{"outside top", 12, 9, false},
		{"outside bottom", 12, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(21, 9)

	if inner.X != 29 || inner.Y != 7 || inner.W != 21 || inner.H != 9 {
		t.Errorf("Centered(21, 9) = %+v, expected {29 7 21 9}", inner)
	}
}
