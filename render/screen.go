package render

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// statusLines is the space kept free at the bottom of the screen
const statusLines = 1

// Screen draws frames centered on a full-screen terminal
type Screen struct {
	screen    tcell.Screen
	live      rune
	dead      rune
	style     tcell.Style
	closeOnce sync.Once
}

// NewScreen takes ownership of s and initializes it
func NewScreen(s tcell.Screen, live, dead rune) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to init terminal")
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		live:   live,
		dead:   dead,
		style:  tcell.StyleDefault,
	}, nil
}

// Draw clears the screen and paints the frame, clipping what does not fit
func (s *Screen) Draw(f Frame) error {
	s.screen.Clear()
	screenW, screenH := s.screen.Size()
	gridH := screenH - statusLines
	x0, y0 := Layout(screenW, gridH, f.Width(), f.Height())

	for r, row := range f.Rows {
		y := y0 + r
		if y >= gridH {
			break
		}
		for c, cell := range row {
			x := x0 + c
			if x >= screenW {
				break
			}
			glyph := s.dead
			if cell.IsAlive() {
				glyph = s.live
			}
			s.screen.SetContent(x, y, glyph, nil, s.style)
		}
	}

	if screenH > 0 {
		status := f.Status()
		sx, _ := Layout(screenW, 0, len(status), 0)
		for i, ch := range status {
			s.screen.SetContent(sx+i, screenH-1, ch, nil, s.style.Dim(true))
		}
	}

	s.screen.Show()
	return nil
}

// Watch handles terminal events until the screen is closed. It calls quit
// when the user presses q, Esc or Ctrl+C.
func (s *Screen) Watch(ctx context.Context, quit func()) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
		}
	}
}

// Close restores the terminal
func (s *Screen) Close() error {
	s.closeOnce.Do(s.screen.Fini)
	return nil
}

var _ Renderer = (*Screen)(nil)
