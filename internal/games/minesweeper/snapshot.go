package minesweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady       GameStateType = "ready" // waiting for the first uncover
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Rows      int
	Cols      int
	Mines     int
	CursorRow int
	CursorCol int
	MinesLeft int
	Uncovered int
	Cells     [][]Status
	Layout    string // Field.String(), empty until the first uncover
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.visible.Won():
		state = StateWon
	case g.visible.Lost():
		state = StateLost
	case !g.started:
		state = StateReady
	}

	cells := make([][]Status, g.field.Rows())
	for r := range cells {
		cells[r] = make([]Status, g.field.Cols())
		for c := range cells[r] {
			cells[r][c] = g.visible.Status(r, c)
		}
	}

	var layout string
	if g.started {
		layout = g.field.String()
	}

	return Snapshot{
		Rows:      g.field.Rows(),
		Cols:      g.field.Cols(),
		Mines:     g.field.NumMines(),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		MinesLeft: g.visible.MinesLeft(),
		Uncovered: g.visible.Uncovered(),
		Cells:     cells,
		Layout:    layout,
		State:     state,
	}
}
