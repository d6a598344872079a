// Package render draws generations for a human to watch. The engine hands
// over plain cell rows; where they land on screen is decided here.
package render

import (
	"fmt"

	"github.com/sheikhrachel/lifer/model"
)

// Frame is one generation as seen by a renderer
type Frame struct {
	Generation int
	Population int
	Rows       [][]model.Cell
}

// FrameOf snapshots the grid's current generation
func FrameOf(g *model.Grid, generation int) Frame {
	return Frame{
		Generation: generation,
		Population: g.Population(),
		Rows:       g.Rows(),
	}
}

// Width returns the number of columns in the frame
func (f Frame) Width() int {
	if len(f.Rows) == 0 {
		return 0
	}
	return len(f.Rows[0])
}

// Height returns the number of rows in the frame
func (f Frame) Height() int {
	return len(f.Rows)
}

// Status is the one-line summary printed under the grid
func (f Frame) Status() string {
	return fmt.Sprintf("Gen: %d | Living: %d", f.Generation, f.Population)
}

// Renderer displays frames
type Renderer interface {
	Draw(f Frame) error
	Close() error
}

// Layout returns the top-left corner that centers a gridW x gridH block on a
// screenW x screenH screen. Grids larger than the screen start at the edge.
func Layout(screenW, screenH, gridW, gridH int) (x, y int) {
	return max(0, (screenW-gridW)/2), max(0, (screenH-gridH)/2)
}
