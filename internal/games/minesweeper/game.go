// Package minesweeper implements Minesweeper: a mine Field, the VisibleField
// the player uncovers and flags, and a Game that drives them from platform input.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Game runs one Minesweeper board for the terminal platform.
//
// The field starts empty and is populated on the first uncover, with the
// uncovered cell kept free of mines.
type Game struct {
	id    string
	title string
	rng   *rand.Rand

	cfg     config.MinesConfig
	board   config.Board
	field   *Field
	visible *VisibleField
	started bool // field has been populated

	cursorRow int
	cursorCol int

	// Screen dimensions and board placement
	screenW int
	screenH int
	layout  layout

	paused   bool
	tooSmall bool
}

// Package-level variables for config set from the CLI
var (
	configPath  string
	customBoard *config.Board
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCustomBoard overrides the board used by the "custom" game.
func SetCustomBoard(b config.Board) {
	customBoard = &b
}

// New creates a game for the board registered under id.
func New(id, title string) *Game {
	return &Game{id: id, title: title}
}

func init() {
	for _, p := range []struct{ id, title string }{
		{config.BeginnerID, "Beginner"},
		{config.IntermediateID, "Intermediate"},
		{config.ExpertID, "Expert"},
		{config.CustomID, "Custom"},
	} {
		registry.Register(p.id, func() registry.Game {
			return New(p.id, p.title)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new board. A board of the same size is reused: its mines are
// cleared and its cells covered again.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.cfg = g.loadConfig()
	board := g.boardFor(g.cfg)

	if g.field != nil && board == g.board {
		g.field.ResetEmpty()
		g.visible.Reset()
	} else {
		field, err := NewEmptyField(board.Rows, board.Cols, board.Mines)
		if err != nil {
			// Config is validated on load; this only guards hand-built configs
			board = config.DefaultMinesConfig().Board
			field, _ = NewEmptyField(board.Rows, board.Cols, board.Mines)
		}
		g.field = field
		g.visible = NewVisibleField(field)
		g.board = board
	}
	g.started = false

	// Start in the middle of the board
	g.cursorRow = g.field.Rows() / 2
	g.cursorCol = g.field.Cols() / 2

	g.layout = computeLayout(g.field.Rows(), g.field.Cols(), g.cfg.Display.CellWidth, g.screenW)
	g.checkScreenSize()
}

// loadConfig loads the config file, falling back to the defaults.
func (g *Game) loadConfig() config.MinesConfig {
	cfg, err := config.LoadMines(configPath)
	if err != nil {
		return config.DefaultMinesConfig()
	}
	return cfg
}

// boardFor picks this game's board from cfg.
func (g *Game) boardFor(cfg config.MinesConfig) config.Board {
	if g.id == config.CustomID && customBoard != nil {
		return *customBoard
	}
	if b, ok := cfg.Lookup(g.id); ok {
		return b
	}
	return cfg.Board
}

// Resize re-centers the board for a new screen size, keeping the game.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.layout = computeLayout(g.field.Rows(), g.field.Cols(), g.cfg.Display.CellWidth, g.screenW)
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < g.layout.minW || g.screenH < g.layout.minH
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.visible.IsGameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The board is frozen once the game ends; the platform restarts it
	if g.visible.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionClick) || in.Has(core.ActionAltClick) {
		if row, col, ok := g.CellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursorRow, g.cursorCol = row, col
			if in.Has(core.ActionClick) {
				g.uncover(row, col)
			} else {
				g.flag(row, col)
			}
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUncover):
		g.uncover(g.cursorRow, g.cursorCol)
	case in.Has(core.ActionFlag):
		g.flag(g.cursorRow, g.cursorCol)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor, staying on the board.
func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, g.field.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, g.field.Cols()-1)
}

// uncover opens a cell, laying the mines first if this is the opening move.
// Coordinates come from the cursor or CellAt and are always in range.
func (g *Game) uncover(row, col int) {
	if !g.started {
		if g.visible.Status(row, col) != Covered {
			return // flags before the first move do not start the game
		}
		//nolint:errcheck // (row, col) is on the board and validated boards leave a safe cell
		g.field.Populate(g.rng, row, col)
		g.started = true
	}
	//nolint:errcheck // (row, col) is on the board
	g.visible.Uncover(row, col)
}

// flag cycles the guess on a cell.
func (g *Game) flag(row, col int) {
	//nolint:errcheck // (row, col) is on the board
	g.visible.CycleGuess(row, col)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.visible.IsGameOver(),
		Won:      g.visible.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Visible returns the player's view of the board.
func (g *Game) Visible() *VisibleField {
	return g.visible
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}
