package board

// Every direction is merged as "toward index 0 of each row". Transform
// rotates the grid into that orientation and TransformBack undoes it.

// Transpose returns the matrix transpose. Non-square input is allowed.
func Transpose(g Grid) Grid {
	if len(g) == 0 {
		return Grid{}
	}
	cols := len(g[0])
	t := make(Grid, cols)
	for i := range cols {
		t[i] = make([]int, len(g))
		for j := range g {
			t[i][j] = g[j][i]
		}
	}
	return t
}

// reverseRows reverses every row in place and returns the grid.
func reverseRows(g Grid) Grid {
	for _, row := range g {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return g
}

// Transform returns a copy of g oriented so that merging in dir becomes
// merging every row to the left.
func Transform(g Grid, dir Direction) Grid {
	switch dir {
	case Right:
		return reverseRows(g.Clone())
	case Up:
		return Transpose(g)
	case Down:
		return reverseRows(Transpose(g))
	default:
		return g.Clone()
	}
}

// TransformBack is the inverse of Transform. For Down the reverse has to
// happen before the transpose.
func TransformBack(g Grid, dir Direction) Grid {
	switch dir {
	case Right:
		return reverseRows(g.Clone())
	case Up:
		return Transpose(g)
	case Down:
		return Transpose(reverseRows(g.Clone()))
	default:
		return g.Clone()
	}
}

// MergeRow slides and merges one row toward index 0. The input is not
// modified. success is true if any tile moved or merged; points is the sum
// of the values created by merges.
func MergeRow(original []int) (success bool, row []int, points int) {
	row = append([]int(nil), original...)
	target := 0
	for i := 1; i < len(row); i++ {
		if row[i] == 0 {
			continue
		}
		switch row[target] {
		case 0:
			row[target] = row[i]
			if i > target {
				row[i] = 0
				success = true
			}
		case row[i]:
			row[target] *= 2
			row[i] = 0
			points += row[target]
			target++
			success = true
		default:
			target++
			row[target] = row[i]
			if i > target {
				row[i] = 0
				success = true
			}
		}
	}
	return success, row, points
}

// MergeMatrix merges the whole grid in dir and returns the result without
// touching g.
func MergeMatrix(g Grid, dir Direction) (success bool, merged Grid, points int) {
	transformed := Transform(g, dir)
	merged = make(Grid, len(transformed))
	for i, row := range transformed {
		s, mergedRow, p := MergeRow(row)
		success = success || s
		points += p
		merged[i] = mergedRow
	}
	return success, TransformBack(merged, dir), points
}
