package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// GameIDForPreset returns the board preset a difficulty selects.
func GameIDForPreset(preset DifficultyPreset) (string, error) {
	switch preset {
	case DifficultyEasy:
		return BeginnerID, nil
	case DifficultyNormal:
		return IntermediateID, nil
	case DifficultyHard:
		return ExpertID, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplyOverrides replaces the custom board's dimensions with the values given
// and validates the result. Rows and cols of 0 keep the current value, as does
// a negative mine count, so a board may be set to hold no mines.
func ApplyOverrides(cfg *MinesConfig, rows, cols, mines int) error {
	if rows > 0 {
		cfg.Board.Rows = rows
	}
	if cols > 0 {
		cfg.Board.Cols = cols
	}
	if mines >= 0 {
		cfg.Board.Mines = mines
	}
	if err := cfg.Board.Validate(); err != nil {
		return fmt.Errorf("custom board: %w", err)
	}
	return nil
}
