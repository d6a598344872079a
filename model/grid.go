package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Source is the uniform random source used to seed a grid.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Grid is a fixed-size toroidal board stored in row-major order
type Grid struct {
	width  int
	height int
	cells  []Cell
	next   []Cell // spare generation buffer, swapped in after each step
}

// NewGrid creates a width x height grid where every cell is independently
// Alive or Dead with equal probability
func NewGrid(width, height int, rng Source) (*Grid, error) {
	if rng == nil {
		return nil, errors.New("[NewGrid] random source is nil")
	}
	g, err := newEmptyGrid(width, height)
	if err != nil {
		return nil, errors.WithMessage(err, "[NewGrid]")
	}
	for i := range g.cells {
		if rng.IntN(2) == 1 {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// FromLayout creates a grid from a row-major cell sequence. The slice is copied.
func FromLayout(cells []Cell, width, height int) (*Grid, error) {
	g, err := newEmptyGrid(width, height)
	if err != nil {
		return nil, errors.WithMessage(err, "[FromLayout]")
	}
	if len(cells) != len(g.cells) {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"[FromLayout] layout has %d cells, want %dx%d=%d", len(cells), width, height, len(g.cells))
	}
	copy(g.cells, cells)
	return g, nil
}

// FromStrings creates a grid from one string per row, '#' marking a living
// cell and '.' a dead one
func FromStrings(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[FromStrings] no rows")
	}
	width := len(rows[0])
	cells := make([]Cell, 0, width*len(rows))
	for r, line := range rows {
		if len(line) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions,
				"[FromStrings] row %d has length %d, want %d", r, len(line), width)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case '#':
				cells = append(cells, Alive)
			case '.':
				cells = append(cells, Dead)
			default:
				return nil, errors.Errorf("[FromStrings] unexpected %q at row %d col %d", ch, r, c)
			}
		}
	}
	return FromLayout(cells, width, len(rows))
}

func newEmptyGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d overflows", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		next:   make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// index must only be called with a position that contains accepts
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.contains(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] row=%d col=%d on %dx%d grid", op, row, col, g.width, g.height)
	}
	return nil
}

// At returns the cell at (row, col)
func (g *Grid) At(row, col int) (Cell, error) {
	if err := g.checkBounds("Grid.At", row, col); err != nil {
		return Dead, err
	}
	return g.cells[g.index(row, col)], nil
}

// Set overwrites the cell at (row, col)
func (g *Grid) Set(row, col int, c Cell) error {
	if err := g.checkBounds("Grid.Set", row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = c
	return nil
}

// LivingNeighborCount counts living cells among the 8 toroidal neighbors of (row, col)
func (g *Grid) LivingNeighborCount(row, col int) (int, error) {
	if err := g.checkBounds("Grid.LivingNeighborCount", row, col); err != nil {
		return 0, err
	}
	return g.countNeighbors(row, col), nil
}

// countNeighbors walks the 3x3 window using modular offsets so the edges
// need no special casing. On grids narrower than 3 the same cell can be
// visited more than once, the center of the window never is.
func (g *Grid) countNeighbors(row, col int) int {
	var (
		count      = 0
		rowOffsets = [3]int{g.height - 1, 0, 1}
		colOffsets = [3]int{g.width - 1, 0, 1}
	)
	for i, dr := range rowOffsets {
		r := (row + dr) % g.height
		for j, dc := range colOffsets {
			if i == 1 && j == 1 {
				continue
			}
			if g.cells[g.index(r, (col+dc)%g.width)].IsAlive() {
				count++
			}
		}
	}
	return count
}

// stepRows writes the next state of rows [start, end) into the spare buffer.
// It reads only g.cells and writes only its own slots of g.next.
func (g *Grid) stepRows(start, end int) {
	for row := start; row < end; row++ {
		for col := range g.width {
			idx := g.index(row, col)
			g.next[idx] = g.cells[idx].NextState(g.countNeighbors(row, col))
		}
	}
}

func (g *Grid) swap() {
	g.cells, g.next = g.next, g.cells
}

// Step advances the grid by one generation in place
func (g *Grid) Step() {
	g.stepRows(0, g.height)
	g.swap()
}

// StepParallel advances the grid by one generation, partitioning rows across
// workers. workers <= 0 uses one worker per CPU.
func (g *Grid) StepParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.height == 1 {
		g.Step()
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}
		eg.Go(func() error {
			g.stepRows(startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail

	g.swap()
}

// Advance returns the next generation as a new grid, leaving g untouched
func (g *Grid) Advance() *Grid {
	next := g.Clone()
	next.Step()
	return next
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
		next:   make([]Cell, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Cells returns a copy of the current generation in row-major order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns a copy of the current generation, one slice per row
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for row := range g.height {
		rows[row] = make([]Cell, g.width)
		copy(rows[row], g.cells[g.index(row, 0):g.index(row, 0)+g.width])
	}
	return rows
}

// ToBytes renders the generation as newline-terminated rows of the given glyphs
func (g *Grid) ToBytes(live, dead byte) []byte {
	out := make([]byte, 0, (g.width+1)*g.height)
	for i, c := range g.cells {
		if c.IsAlive() {
			out = append(out, live)
		} else {
			out = append(out, dead)
		}
		if (i+1)%g.width == 0 {
			out = append(out, '\n')
		}
	}
	return out
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same shape and generation
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
