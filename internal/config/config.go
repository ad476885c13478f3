// Package config provides YAML-based board configuration loading and
// difficulty presets for the mines platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned by Board.Validate.
var ErrInvalidBoard = errors.New("invalid board")

// MinesConfig contains all configuration for the Minesweeper game.
type MinesConfig struct {
	Board   Board            `yaml:"board"`   // Board used by the "custom" game
	Presets map[string]Board `yaml:"presets"` // Named boards, keyed by game ID
	Display DisplayConfig    `yaml:"display"`
}

// Board defines the size and mine count of a field.
type Board struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	CellWidth int  `yaml:"cell_width"` // Screen columns per cell (2 or 3)
	Colors    bool `yaml:"colors"`     // Color the adjacency digits
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Rows * b.Cols
}

// Validate checks the constraints a mine field is built under: positive
// dimensions and fewer mines than a third of the cells.
func (b Board) Validate() error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d must have positive dimensions", ErrInvalidBoard, b.Rows, b.Cols)
	}
	if b.Mines < 0 || 3*b.Mines >= b.Cells() {
		return fmt.Errorf("%w: %d mines on %dx%d, need 0 <= mines < %d",
			ErrInvalidBoard, b.Mines, b.Rows, b.Cols, (b.Cells()+2)/3)
	}
	return nil
}

// String formats the board as "ROWSxCOLS, N mines".
func (b Board) String() string {
	return fmt.Sprintf("%dx%d, %d mines", b.Rows, b.Cols, b.Mines)
}

// Lookup returns the board for a game ID: the named preset, or Board for "custom".
func (c MinesConfig) Lookup(id string) (Board, bool) {
	if id == CustomID {
		return c.Board, true
	}
	b, ok := c.Presets[id]
	return b, ok
}

// Validate checks every board in the config.
func (c MinesConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	for name, b := range c.Presets {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	if c.Display.CellWidth < 2 || c.Display.CellWidth > 3 {
		return fmt.Errorf("display: cell_width %d must be 2 or 3", c.Display.CellWidth)
	}
	return nil
}
