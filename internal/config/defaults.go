package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// Game IDs of the built-in boards.
const (
	BeginnerID     = "beginner"
	IntermediateID = "intermediate"
	ExpertID       = "expert"
	CustomID       = "custom"
)

// DefaultMinesConfig returns the default Minesweeper configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Board: Board{Rows: 9, Cols: 9, Mines: 10},
		Presets: map[string]Board{
			BeginnerID:     {Rows: 9, Cols: 9, Mines: 10},
			IntermediateID: {Rows: 16, Cols: 16, Mines: 40},
			ExpertID:       {Rows: 16, Cols: 30, Mines: 99},
		},
		Display: DisplayConfig{
			CellWidth: 2,
			Colors:    true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
