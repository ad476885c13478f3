package minesweeper

import (
	"math/rand"
	"strings"
	"time"
)

// Field holds the ground-truth mine locations for one game.
//
// A field built with NewEmptyField starts with no mines while NumMines already
// reports the count it will hold; the two agree again once Populate runs.
// ResetEmpty returns the field to that state. Populate and ResetEmpty are the
// only mutators, and the dimensions never change.
type Field struct {
	mines    [][]bool
	numMines int
}

// NewField creates a field with the same shape and mines as data.
// data must be non-empty and rectangular. NumMines is the number of true cells.
func NewField(data [][]bool) (*Field, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, &ConstructionError{Op: "new field", Err: ErrEmptyField}
	}
	cols := len(data[0])
	for _, row := range data {
		if len(row) != cols {
			return nil, &ConstructionError{Op: "new field", Err: ErrRagged}
		}
	}

	f := &Field{mines: allocate(len(data), cols)}
	for r, row := range data {
		for c, mine := range row {
			if mine {
				f.mines[r][c] = true
				f.numMines++
			}
		}
	}
	return f, nil
}

// NewEmptyField creates a rows x cols field with no mines that will hold
// numMines mines once populated. numMines must be under a third of the cells.
func NewEmptyField(rows, cols, numMines int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ConstructionError{Op: "new empty field", Err: ErrBadDimensions}
	}
	if numMines < 0 || 3*numMines >= rows*cols {
		return nil, &ConstructionError{Op: "new empty field", Err: ErrBadMineCount}
	}
	return &Field{
		mines:    allocate(rows, cols),
		numMines: numMines,
	}, nil
}

func allocate(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	return grid
}

// Populate clears the field and places NumMines mines at random, never at
// (row, col). A nil rng falls back to a time-seeded source.
// It fails without touching the field when NumMines leaves no room for the
// safe cell, which only a field from NewField can declare.
func (f *Field) Populate(rng *rand.Rand, row, col int) error {
	if !f.InRange(row, col) {
		return outOfRange("populate", row, col)
	}
	if f.numMines > f.Rows()*f.Cols()-1 {
		return &ConstructionError{Op: "populate", Err: ErrNoSafeCell}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f.ResetEmpty()
	cells := f.Rows() * f.Cols()
	for placed := 0; placed < f.numMines; {
		idx := rng.Intn(cells)
		r, c := idx/f.Cols(), idx%f.Cols()
		// Redraw on collision or on the safe cell
		if f.mines[r][c] || (r == row && c == col) {
			continue
		}
		f.mines[r][c] = true
		placed++
	}
	return nil
}

// ResetEmpty removes every mine. NumMines is unchanged, so until the next
// Populate it no longer matches the mines actually on the field.
func (f *Field) ResetEmpty() {
	for r := range f.mines {
		clear(f.mines[r])
	}
}

// InRange reports whether (row, col) is on the field. Indices start at 0.
func (f *Field) InRange(row, col int) bool {
	return row >= 0 && row < f.Rows() && col >= 0 && col < f.Cols()
}

// Rows returns the number of rows.
func (f *Field) Rows() int {
	return len(f.mines)
}

// Cols returns the number of columns.
func (f *Field) Cols() int {
	return len(f.mines[0])
}

// NumMines returns the declared mine count. See ResetEmpty for when it
// differs from LiveMines.
func (f *Field) NumMines() int {
	return f.numMines
}

// LiveMines counts the mines currently on the field.
func (f *Field) LiveMines() int {
	n := 0
	for _, row := range f.mines {
		for _, mine := range row {
			if mine {
				n++
			}
		}
	}
	return n
}

// HasMine reports whether (row, col) holds a mine.
// Panics with a *PreconditionError if the coordinate is out of range.
func (f *Field) HasMine(row, col int) bool {
	if !f.InRange(row, col) {
		panic(outOfRange("has mine", row, col))
	}
	return f.mines[row][col]
}

// NumAdjacentMines counts mines in the 8 cells around (row, col), not
// counting (row, col) itself. The result is in [0, 8].
// Panics with a *PreconditionError if the coordinate is out of range.
func (f *Field) NumAdjacentMines(row, col int) int {
	if !f.InRange(row, col) {
		panic(outOfRange("adjacent mines", row, col))
	}
	n := 0
	f.Neighbors(row, col, func(r, c int) {
		if f.mines[r][c] {
			n++
		}
	})
	return n
}

// Neighbors calls fn for each in-range cell around (row, col), row-major,
// excluding (row, col).
func (f *Field) Neighbors(row, col int, fn func(r, c int)) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r != row || c != col) && f.InRange(r, c) {
				fn(r, c)
			}
		}
	}
}

// String renders the field one character per cell: '1' for a mine, '0' for
// empty, cells separated by spaces and rows by newlines.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow(f.Rows() * f.Cols() * 2)

	for r, row := range f.mines {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, mine := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if mine {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return strings.TrimRight(sb.String(), " \n")
}

// ParseField reads the format produced by String. Cells may be separated by
// any whitespace; blank lines are skipped.
func ParseField(text string) (*Field, error) {
	var data [][]bool
	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		row := make([]bool, len(tokens))
		for i, tok := range tokens {
			switch tok {
			case "1":
				row[i] = true
			case "0":
			default:
				return nil, &ConstructionError{Op: "parse field", Err: ErrBadToken}
			}
		}
		data = append(data, row)
	}
	return NewField(data)
}
