package minesweeper

// VisibleField is what the player can see of a Field: the status of every
// cell, the flag count and whether the game has ended. It holds the Field by
// reference and never modifies it.
type VisibleField struct {
	field     *Field
	cells     [][]Status
	flagged   int
	uncovered int
	over      bool
	exploded  bool
}

// NewVisibleField creates a visible field over f with every cell covered.
func NewVisibleField(f *Field) *VisibleField {
	v := &VisibleField{field: f}
	v.cells = make([][]Status, f.Rows())
	for r := range v.cells {
		v.cells[r] = make([]Status, f.Cols())
	}
	v.Reset()
	return v
}

// Reset covers every cell and clears the counters and game-over state.
// The underlying Field is left alone.
func (v *VisibleField) Reset() {
	for r := range v.cells {
		for c := range v.cells[r] {
			v.cells[r][c] = Covered
		}
	}
	v.flagged = 0
	v.uncovered = 0
	v.over = false
	v.exploded = false
}

// Field returns the mine field this visible field covers.
func (v *VisibleField) Field() *Field {
	return v.field
}

// Status returns the displayed state of (row, col).
// Panics with a *PreconditionError if the coordinate is out of range.
func (v *VisibleField) Status(row, col int) Status {
	if !v.field.InRange(row, col) {
		panic(outOfRange("status", row, col))
	}
	return v.cells[row][col]
}

// IsUncovered reports whether (row, col) is in an uncovered state.
// Panics with a *PreconditionError if the coordinate is out of range.
func (v *VisibleField) IsUncovered(row, col int) bool {
	return v.Status(row, col).IsUncovered()
}

// MinesLeft returns the declared mine count minus the cells flagged. It says
// nothing about whether the flags are right and goes negative when the
// player flags more cells than there are mines.
func (v *VisibleField) MinesLeft() int {
	return v.field.NumMines() - v.flagged
}

// Flagged returns the number of cells currently flagged.
func (v *VisibleField) Flagged() int {
	return v.flagged
}

// Uncovered returns the number of safe cells uncovered so far.
func (v *VisibleField) Uncovered() int {
	return v.uncovered
}

// IsGameOver reports whether a mine was uncovered or every safe cell was.
func (v *VisibleField) IsGameOver() bool {
	return v.over
}

// Lost reports whether a mine has been uncovered.
func (v *VisibleField) Lost() bool {
	return v.exploded
}

// Won reports whether the game ended with every safe cell uncovered.
func (v *VisibleField) Won() bool {
	return v.over && !v.exploded
}

// CycleGuess steps a covered cell through Covered, Flagged and Questioned,
// back to Covered. Uncovered cells are left as they are.
func (v *VisibleField) CycleGuess(row, col int) error {
	if !v.field.InRange(row, col) {
		return outOfRange("cycle guess", row, col)
	}

	switch v.cells[row][col] {
	case Covered:
		v.cells[row][col] = Flagged
		v.flagged++
	case Flagged:
		v.cells[row][col] = Questioned
		v.flagged--
	case Questioned:
		v.cells[row][col] = Covered
	}
	return nil
}

// Uncover opens (row, col) and returns false iff it holds a mine.
//
// A cell with no adjacent mines also opens its neighbors, spreading through
// the connected zero region; the mine-adjacent cells reached form its edge.
// Flagged and questioned cells are never opened and the spread does not pass
// through them. Uncovering a mine or the last safe cell ends the game, after
// which the remaining mines and any wrong flags are revealed.
//
// Calls after the game is over are not rejected; they run the same steps.
func (v *VisibleField) Uncover(row, col int) (bool, error) {
	if !v.field.InRange(row, col) {
		return false, outOfRange("uncover", row, col)
	}

	safe := v.flood(row, col)

	if v.uncovered == v.field.Rows()*v.field.Cols()-v.field.NumMines() {
		v.over = true
	}
	if v.over {
		v.finalize()
	}
	return safe, nil
}

type cell struct{ row, col int }

// flood uncovers from (row, col) using an explicit stack. Already uncovered,
// flagged and questioned cells are boundaries. Cells visited twice hit the
// uncovered boundary, so no separate visited set is kept.
func (v *VisibleField) flood(row, col int) bool {
	safe := true
	stack := []cell{{row, col}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st := v.cells[cur.row][cur.col]
		if st.IsUncovered() || st == Flagged || st == Questioned {
			continue
		}

		if v.field.HasMine(cur.row, cur.col) {
			v.cells[cur.row][cur.col] = Exploded
			v.over = true
			v.exploded = true
			if cur.row == row && cur.col == col {
				safe = false
			}
			continue
		}

		n := v.field.NumAdjacentMines(cur.row, cur.col)
		v.cells[cur.row][cur.col] = Status(n)
		v.uncovered++
		if n > 0 {
			continue
		}

		v.field.Neighbors(cur.row, cur.col, func(r, c int) {
			stack = append(stack, cell{r, c})
		})
	}
	return safe
}

// finalize reveals unflagged mines and marks flags on safe cells as wrong.
// The flag count keeps counting wrong flags. Running it again changes nothing.
func (v *VisibleField) finalize() {
	for r := range v.cells {
		for c, st := range v.cells[r] {
			mine := v.field.HasMine(r, c)
			switch {
			case mine && st != Flagged && st != Exploded:
				v.cells[r][c] = Mine
			case !mine && st == Flagged:
				v.cells[r][c] = IncorrectFlag
			}
		}
	}
}
