package minesweeper

import "strconv"

// Status is the displayed state of one cell. Covered states are negative;
// uncovered states are non-negative, with 0..8 meaning an uncovered cell with
// that many adjacent mines.
type Status int

// Covered states.
const (
	Covered    Status = -1 // initial state of every cell
	Flagged    Status = -2 // marked by the player as a mine
	Questioned Status = -3
)

// Uncovered states beyond the 0..8 counts. These only appear once the game is over.
const (
	Mine          Status = 9  // a mine the player had not flagged
	IncorrectFlag Status = 10 // a flag on a cell with no mine
	Exploded      Status = 11 // the mine that ended the game
)

// IsCovered reports whether the cell has not been uncovered.
func (s Status) IsCovered() bool {
	return s < 0
}

// IsUncovered reports whether the cell has been uncovered or revealed.
func (s Status) IsUncovered() bool {
	return s >= 0
}

// AdjacentCount returns the mine count shown on an uncovered safe cell.
func (s Status) AdjacentCount() (int, bool) {
	if s >= 0 && s <= 8 {
		return int(s), true
	}
	return 0, false
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Covered:
		return "Covered"
	case Flagged:
		return "Flagged"
	case Questioned:
		return "Questioned"
	case Mine:
		return "Mine"
	case IncorrectFlag:
		return "IncorrectFlag"
	case Exploded:
		return "Exploded"
	}
	if n, ok := s.AdjacentCount(); ok {
		return "Uncovered(" + strconv.Itoa(n) + ")"
	}
	return "Unknown"
}
