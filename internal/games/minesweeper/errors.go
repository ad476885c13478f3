package minesweeper

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to match them through the typed wrappers below.
var (
	ErrOutOfRange    = errors.New("coordinate out of range")
	ErrEmptyField    = errors.New("field must have at least one row and one column")
	ErrRagged        = errors.New("field rows must all have the same length")
	ErrBadDimensions = errors.New("rows and columns must be positive")
	ErrBadMineCount  = errors.New("mine count must be non-negative and under a third of the cells")
	ErrBadToken      = errors.New("cell must be 0 or 1")
	ErrNoSafeCell    = errors.New("too many mines to keep a safe cell")
)

// PreconditionError reports an operation called with a coordinate outside the field.
// Commands return it; queries panic with it, the same way an out-of-range slice index does.
type PreconditionError struct {
	Op       string
	Row, Col int
	Err      error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("minesweeper: %s (%d, %d): %v", e.Op, e.Row, e.Col, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// ConstructionError reports a field that could not be built from its inputs.
type ConstructionError struct {
	Op  string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("minesweeper: %s: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func outOfRange(op string, row, col int) *PreconditionError {
	return &PreconditionError{Op: op, Row: row, Col: col, Err: ErrOutOfRange}
}
