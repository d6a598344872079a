package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ansiHomeClear moves the cursor home and clears the screen
const ansiHomeClear = "\x1b[H\x1b[2J"

// Text writes frames as plain lines, one buffered write per frame
type Text struct {
	out   *bufio.Writer
	live  rune
	dead  rune
	clear bool
}

// NewText writes frames to w. With clear set each frame starts with an ANSI
// clear sequence so a terminal shows one frame at a time.
func NewText(w io.Writer, live, dead rune, clear bool) *Text {
	return &Text{out: bufio.NewWriter(w), live: live, dead: dead, clear: clear}
}

func (t *Text) Draw(f Frame) error {
	if t.clear {
		t.out.WriteString(ansiHomeClear)
	}
	for _, row := range f.Rows {
		for _, cell := range row {
			if cell.IsAlive() {
				t.out.WriteRune(t.live)
			} else {
				t.out.WriteRune(t.dead)
			}
		}
		t.out.WriteByte('\n')
	}
	t.out.WriteString(f.Status())
	t.out.WriteByte('\n')
	return errors.Wrap(t.out.Flush(), "[Text.Draw] failed to flush frame")
}

func (t *Text) Close() error {
	return errors.Wrap(t.out.Flush(), "[Text.Close] failed to flush")
}

var _ Renderer = (*Text)(nil)
