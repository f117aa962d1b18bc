package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flapdot/render"
)

// CellAspect compensates for terminal cells being roughly twice as tall
// as they are wide
const CellAspect = 2.0

// Screen maps the square playfield onto the terminal grid and implements
// the simulation's drawing surface on top of tcell. Playfield coordinates
// are centered at the origin with y pointing up; terminal rows grow
// downward. Row 0 is reserved for the status line.
//
// Not safe for concurrent use; all calls must come from the loop
// goroutine.
type Screen struct {
	scr    tcell.Screen
	extent float64

	cols, rows       int
	originX, originY int
	scaleX, scaleY   float64

	status string
}

func NewScreen(scr tcell.Screen, halfExtent float64) *Screen {
	s := &Screen{scr: scr, extent: halfExtent}
	s.Layout()
	return s
}

// Layout recomputes the playfield-to-cell mapping. Call after a resize.
func (s *Screen) Layout() {
	s.cols, s.rows = s.scr.Size()
	gameRows := s.rows - 1 // status line
	if gameRows < 1 {
		gameRows = 1
	}
	cols := s.cols
	if cols < 1 {
		cols = 1
	}
	vs := float64(gameRows) / (2 * s.extent)
	hs := float64(cols) / (2 * s.extent * CellAspect)
	unit := math.Min(vs, hs)
	s.scaleY = unit
	s.scaleX = unit * CellAspect
	s.originX = s.cols / 2
	s.originY = 1 + gameRows/2
}

func (s *Screen) cell(x, y float64) (col, row int) {
	return s.originX + int(math.Round(x*s.scaleX)),
		s.originY - int(math.Round(y*s.scaleY))
}

// FieldCoords translates a terminal cell back into playfield coordinates,
// for mouse events.
func (s *Screen) FieldCoords(col, row int) (x, y float64) {
	return float64(col-s.originX) / s.scaleX,
		float64(s.originY-row) / s.scaleY
}

func (s *Screen) Clear() {
	s.scr.Clear()
	s.drawBorder()
}

// drawBorder outlines the playfield box so the strict bounds are visible.
// The frame is dimmed below the dots and the status text.
func (s *Screen) drawBorder() {
	style := tcell.StyleDefault.Foreground(render.RGBWhite.Scale(0.6).Tcell())
	left, top := s.cell(-s.extent, s.extent)
	right, bottom := s.cell(s.extent, -s.extent)
	for col := left; col <= right; col++ {
		s.scr.SetContent(col, top, tcell.RuneHLine, nil, style)
		s.scr.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := top; row <= bottom; row++ {
		s.scr.SetContent(left, row, tcell.RuneVLine, nil, style)
		s.scr.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	s.scr.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.scr.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.scr.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.scr.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// FillCircle rasterizes a filled circle of the given diameter (playfield
// units) centered at playfield coords. The circle is an ellipse in cell
// space because of the aspect correction; tiny circles always cover at
// least the center cell.
func (s *Screen) FillCircle(x, y float64, diameter int, color render.Color) {
	style := tcell.StyleDefault.Background(render.RGBOf(color).Tcell())
	cx, cy := s.cell(x, y)
	r := float64(diameter) / 2
	rx := math.Max(r*s.scaleX, 0.5)
	ry := math.Max(r*s.scaleY, 0.5)
	for row := cy - int(ry); row <= cy+int(ry); row++ {
		for col := cx - int(rx); col <= cx+int(rx); col++ {
			dx := float64(col-cx) / rx
			dy := float64(row-cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				s.scr.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func (s *Screen) SetStatus(text string) {
	s.status = text
}

// Present writes the status line and flips the frame.
func (s *Screen) Present() {
	style := tcell.StyleDefault.Foreground(render.RGBWhite.Tcell())
	for i, r := range []rune(s.status) {
		if i >= s.cols {
			break
		}
		s.scr.SetContent(i, 0, r, nil, style)
	}
	s.scr.Show()
}
