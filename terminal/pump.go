package terminal

import "github.com/gdamore/tcell/v2"

// Pump translates tcell events into loop-serialized simulation callbacks.
// It runs on its own goroutine but everything it forwards executes on the
// loop goroutine, so taps interleave between ticks and never during one.
type Pump struct {
	scr    tcell.Screen
	loop   *Loop
	screen *Screen

	// OnTap receives playfield coordinates
	OnTap func(x, y float64)
}

func NewPump(scr tcell.Screen, loop *Loop, screen *Screen) *Pump {
	return &Pump{scr: scr, loop: loop, screen: screen}
}

// Run polls events until the screen is finalized or a quit key arrives.
// Always stops the loop on the way out.
func (p *Pump) Run() error {
	defer p.loop.Stop()

	var prev tcell.ButtonMask
	for {
		ev := p.scr.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp,
				ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				p.tap(0, 0)
			}
		case *tcell.EventMouse:
			// Tap on the press edge only; drag and release repeat the
			// button mask
			btns := ev.Buttons()
			if btns&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
				col, row := ev.Position()
				x, y := p.screen.FieldCoords(col, row)
				p.tap(x, y)
			}
			prev = btns
		case *tcell.EventResize:
			p.scr.Sync()
			p.loop.Post(p.screen.Layout)
		}
	}
}

func (p *Pump) tap(x, y float64) {
	if p.OnTap == nil {
		return
	}
	p.loop.Post(func() { p.OnTap(x, y) })
}
