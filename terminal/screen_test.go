package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flapdot/render"
)

type setCall struct {
	col, row int
	r        rune
	style    tcell.Style
}

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	sets          []setCall
	clears        int
	shows         int
}

func (m *MockScreen) Size() (int, int) {
	if m.width == 0 && m.height == 0 {
		return 80, 24 // Default size
	}
	return m.width, m.height
}

func (m *MockScreen) Init() error { return nil }
func (m *MockScreen) Fini()       {}
func (m *MockScreen) Clear()      { m.clears++; m.sets = m.sets[:0] }
func (m *MockScreen) Show()       { m.shows++ }
func (m *MockScreen) Sync()       {}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.sets = append(m.sets, setCall{x, y, mainc, style})
}

func (m *MockScreen) at(col, row int) (setCall, bool) {
	// Last write wins, matching screen behavior
	for i := len(m.sets) - 1; i >= 0; i-- {
		if m.sets[i].col == col && m.sets[i].row == row {
			return m.sets[i], true
		}
	}
	return setCall{}, false
}

func TestFieldCoordsRoundTrip(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	x, y := scr.FieldCoords(scr.originX, scr.originY)
	if x != 0 || y != 0 {
		t.Errorf("Expected origin to map to (0, 0), got (%v, %v)", x, y)
	}

	// A cell right of and above the origin is +x, +y in field coords
	x, y = scr.FieldCoords(scr.originX+10, scr.originY-5)
	if x <= 0 || y <= 0 {
		t.Errorf("Expected positive field coords, got (%v, %v)", x, y)
	}
}

func TestLayoutReservesStatusRow(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	if scr.originY < 1 {
		t.Errorf("Expected playfield below status row, originY %d", scr.originY)
	}
	if scr.scaleX <= 0 || scr.scaleY <= 0 {
		t.Errorf("Expected positive scales, got %v x %v", scr.scaleX, scr.scaleY)
	}
	// Horizontal scale carries the cell aspect correction
	if scr.scaleX != scr.scaleY*CellAspect {
		t.Errorf("Expected scaleX = scaleY * aspect, got %v vs %v", scr.scaleX, scr.scaleY)
	}
}

func TestFillCirclePaintsCenter(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	scr.FillCircle(0, 0, 10, render.Green)

	cell, ok := mock.at(scr.originX, scr.originY)
	if !ok {
		t.Fatal("Expected center cell to be painted")
	}
	_, bg, _ := cell.style.Decompose()
	if bg != render.RGBGreen.Tcell() {
		t.Errorf("Expected green background, got %v", bg)
	}
}

func TestFillCircleStaysNearCenter(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	scr.FillCircle(100, 50, 20, render.Black)

	ccol, crow := scr.originX+21, scr.originY-5 // 100*0.21, 50*0.105
	for _, s := range mock.sets {
		if s.col < ccol-3 || s.col > ccol+3 || s.row < crow-2 || s.row > crow+2 {
			t.Errorf("Cell (%d, %d) outside expected circle bounds around (%d, %d)",
				s.col, s.row, ccol, crow)
		}
	}
}

func TestTinyCircleCoversOneCell(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	scr.FillCircle(0, 0, 1, render.Red)

	if len(mock.sets) == 0 {
		t.Fatal("Expected at least the center cell")
	}
}

func TestClearDrawsBorder(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	scr.Clear()

	if mock.clears != 1 {
		t.Fatalf("Expected one screen clear, got %d", mock.clears)
	}
	corner, ok := mock.at(0, 1) // top-left of the ±200 box
	if !ok || corner.r != tcell.RuneULCorner {
		t.Errorf("Expected UL corner at (0, 1), got %v ok=%v", corner.r, ok)
	}
	// Frame is drawn dimmed, below full white
	fg, _, _ := corner.style.Decompose()
	if fg != render.RGBWhite.Scale(0.6).Tcell() {
		t.Errorf("Expected dimmed border, got %v", fg)
	}
}

func TestPresentWritesStatus(t *testing.T) {
	mock := &MockScreen{width: 84, height: 43}
	scr := NewScreen(mock, 200)

	scr.SetStatus(" score 7")
	scr.Present()

	if mock.shows != 1 {
		t.Fatalf("Expected one Show, got %d", mock.shows)
	}
	cell, ok := mock.at(1, 0)
	if !ok || cell.r != 's' {
		t.Errorf("Expected status text on row 0, got %v ok=%v", cell.r, ok)
	}
}
