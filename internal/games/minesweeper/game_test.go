package minesweeper

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// newTestGame creates a game that reads the embedded defaults from a temp file,
// so results do not depend on config files on the machine.
func newTestGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mines.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		customBoard = nil
	})

	g := New(id, "Beginner")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

// step runs one tick with the given actions set.
func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// click runs one tick with a mouse click on cell (row, col).
func click(g *Game, a core.Action, row, col int) core.StepResult {
	x, y := g.layout.cellOrigin(row, col)
	in := core.NewInputFrame()
	in.SetClick(a, x+g.layout.glyphX, y)
	return g.Step(in)
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{config.BeginnerID, config.IntermediateID, config.ExpertID, config.CustomID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", id, err)
			continue
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestBoardSizes(t *testing.T) {
	tests := []struct {
		id                string
		rows, cols, mines int
	}{
		{config.BeginnerID, 9, 9, 10},
		{config.IntermediateID, 16, 16, 40},
		{config.ExpertID, 16, 30, 99},
		{config.CustomID, 9, 9, 10},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			snap := newTestGame(t, tc.id, 1).Snapshot()
			if snap.Rows != tc.rows || snap.Cols != tc.cols || snap.Mines != tc.mines {
				t.Errorf("board = %dx%d/%d, expected %dx%d/%d",
					snap.Rows, snap.Cols, snap.Mines, tc.rows, tc.cols, tc.mines)
			}
			if snap.State != StateReady {
				t.Errorf("State = %q, expected %q", snap.State, StateReady)
			}
		})
	}
}

func TestCustomBoard(t *testing.T) {
	g := newTestGame(t, config.CustomID, 1)
	SetCustomBoard(config.Board{Rows: 5, Cols: 7, Mines: 3})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	snap := g.Snapshot()
	if snap.Rows != 5 || snap.Cols != 7 || snap.Mines != 3 {
		t.Errorf("board = %dx%d/%d, expected 5x7/3", snap.Rows, snap.Cols, snap.Mines)
	}
}

func TestFirstUncoverIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newTestGame(t, config.BeginnerID, seed)
		row, col := g.Cursor()

		res := step(g, core.ActionUncover)

		if g.visible.Lost() || (res.State.GameOver && !res.State.Won) {
			t.Fatalf("seed %d: first uncover lost the game", seed)
		}
		if g.field.HasMine(row, col) {
			t.Fatalf("seed %d: mine under the first uncover", seed)
		}
		if g.field.LiveMines() != 10 {
			t.Errorf("seed %d: LiveMines() = %d, expected 10", seed, g.field.LiveMines())
		}
		if !g.Visible().IsUncovered(row, col) {
			t.Errorf("seed %d: (%d, %d) not uncovered", seed, row, col)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := [][]core.Action{
		{core.ActionRight},
		{core.ActionUncover},
		{core.ActionDown},
		{core.ActionDown},
		{core.ActionFlag},
		{core.ActionLeft},
		{core.ActionLeft},
		{core.ActionUncover},
		{core.ActionUp},
		{core.ActionFlag},
		{core.ActionFlag},
	}

	run := func() Snapshot {
		g := newTestGame(t, config.IntermediateID, 42)
		for _, actions := range inputs {
			step(g, actions...)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should give identical snapshots")
	}
	if a.Layout == "" {
		t.Error("Layout should be set once the board is populated")
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)

	for range 20 {
		step(g, core.ActionUp)
		step(g, core.ActionLeft)
	}
	if r, c := g.Cursor(); r != 0 || c != 0 {
		t.Errorf("Cursor() = (%d, %d), expected (0, 0)", r, c)
	}

	for range 20 {
		step(g, core.ActionDown)
		step(g, core.ActionRight)
	}
	if r, c := g.Cursor(); r != 8 || c != 8 {
		t.Errorf("Cursor() = (%d, %d), expected (8, 8)", r, c)
	}
}

func TestEmptyFrameIsNoop(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)
	step(g, core.ActionRight)
	before := g.Snapshot()

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver || res.State.Paused {
		t.Errorf("State = %+v, expected a running game", res.State)
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("an empty frame should leave the game unchanged")
	}
}

func TestFlagBeforeStart(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)
	row, col := g.Cursor()

	step(g, core.ActionFlag)
	if g.Visible().Status(row, col) != Flagged {
		t.Fatalf("Status = %v, expected Flagged", g.Visible().Status(row, col))
	}

	// Uncovering a flagged cell does not lay the mines
	step(g, core.ActionUncover)
	snap := g.Snapshot()
	if snap.State != StateReady || snap.Layout != "" {
		t.Errorf("State = %q Layout = %q, expected an unstarted game", snap.State, snap.Layout)
	}
	if snap.MinesLeft != 9 {
		t.Errorf("MinesLeft = %d, expected 9", snap.MinesLeft)
	}
}

func TestClickUncovers(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 3)

	click(g, core.ActionClick, 2, 3)

	if r, c := g.Cursor(); r != 2 || c != 3 {
		t.Errorf("Cursor() = (%d, %d), expected (2, 3)", r, c)
	}
	if !g.Visible().IsUncovered(2, 3) {
		t.Error("clicked cell should be uncovered")
	}
	if g.Snapshot().State == StateReady {
		t.Error("click should start the game")
	}
}

func TestAltClickFlags(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 3)

	click(g, core.ActionAltClick, 7, 1)

	if g.Visible().Status(7, 1) != Flagged {
		t.Errorf("Status(7, 1) = %v, expected Flagged", g.Visible().Status(7, 1))
	}
}

func TestCellAt(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)

	x, y := g.layout.cellOrigin(4, 5)
	for dx := range g.layout.cellW {
		row, col, ok := g.CellAt(x+dx, y)
		if !ok || row != 4 || col != 5 {
			t.Errorf("CellAt(%d, %d) = (%d, %d, %v), expected (4, 5, true)", x+dx, y, row, col, ok)
		}
	}

	outside := []core.Point{
		{X: 0, Y: 0},
		{X: g.layout.box.X, Y: y}, // left border
		{X: x, Y: g.layout.box.Y}, // top border
		{X: x, Y: g.layout.box.Bottom() - 1},
	}
	for _, p := range outside {
		if _, _, ok := g.CellAt(p.X, p.Y); ok {
			t.Errorf("CellAt(%d, %d) should be off the board", p.X, p.Y)
		}
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	step(g, core.ActionUncover)
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StatePaused)
	}

	step(g, core.ActionPause)
	step(g, core.ActionUncover)
	if g.Snapshot().State == StateReady {
		t.Error("uncover after resume should start the game")
	}
}

func TestInputFrozenAfterLoss(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 5)
	step(g, core.ActionUncover)

	// Walk the cursor onto a mine
	var mr, mc int
	found := false
	for r := range g.field.Rows() {
		for c := range g.field.Cols() {
			if !found && g.field.HasMine(r, c) {
				mr, mc, found = r, c, true
			}
		}
	}
	if !found {
		t.Fatal("no mine on the board")
	}
	g.cursorRow, g.cursorCol = mr, mc

	res := step(g, core.ActionUncover)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected a loss", res.State)
	}
	before := g.Snapshot()

	step(g, core.ActionLeft)
	step(g, core.ActionFlag)
	step(g, core.ActionPause)
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("input after game over should be ignored")
	}
	if before.State != StateLost || g.Visible().Status(mr, mc) != Exploded {
		t.Errorf("State = %q, Status = %v", before.State, g.Visible().Status(mr, mc))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	y := g.layout.box.Bottom()
	x := strings.Index(screen.Row(y), "BOOM!")
	if x < 0 {
		t.Fatalf("status line missing the loss message:\n%s", screen.String())
	}
	if c := screen.GetCell(x, y); c.Color != core.ColorBrightRed {
		t.Errorf("loss message color = %v, expected ColorBrightRed", c.Color)
	}
}

func TestResetReusesField(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)
	step(g, core.ActionUncover)
	field := g.field

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})

	if g.field != field {
		t.Error("Reset with the same board should reuse the field")
	}
	if g.field.LiveMines() != 0 {
		t.Errorf("LiveMines() = %d, expected 0 after Reset", g.field.LiveMines())
	}
	snap := g.Snapshot()
	if snap.State != StateReady || snap.Uncovered != 0 || snap.MinesLeft != 10 {
		t.Errorf("snapshot after Reset = %+v", snap)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	res := step(g, core.ActionUncover)
	if !res.State.Paused {
		t.Error("small screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}
	if g.started {
		t.Error("input should be ignored on a small screen")
	}

	tests := []struct {
		w    int
		want string
	}{
		{10, "Too small"},
		{30, "Window too small"},
	}
	for _, tc := range tests {
		g.Reset(core.RuntimeConfig{ScreenW: tc.w, ScreenH: 5, Seed: 1})
		screen := core.NewScreen(tc.w, 5)
		g.Render(screen)
		out := screen.String()
		if !strings.Contains(out, tc.want) || !strings.Contains(out, "Need ") {
			t.Errorf("width %d: expected %q and the needed size, got:\n%s", tc.w, tc.want, out)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 1)
	step(g, core.ActionFlag)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Beginner 9x9", "Mines: 9", "Uncover any cell to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		st   Status
		want rune
	}{
		{Covered, '.'},
		{Flagged, 'F'},
		{Questioned, '?'},
		{0, ' '},
		{3, '3'},
		{Mine, '*'},
		{IncorrectFlag, 'X'},
		{Exploded, '#'},
	}
	for _, tc := range tests {
		if got, _ := cellGlyph(tc.st); got != tc.want {
			t.Errorf("cellGlyph(%v) = %q, expected %q", tc.st, got, tc.want)
		}
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, config.BeginnerID, 9)
	step(g, core.ActionUncover)
	before := g.Snapshot()

	g.Resize(10, 5)
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(120, 40)
	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Error("resizing back should restore the same game")
	}
	if x, _ := g.layout.cellOrigin(0, 0); x != (120-g.layout.box.W)/2+1 {
		t.Errorf("board not re-centered, first cell at x=%d", x)
	}
}
