package model

import (
	"sort"

	"github.com/pkg/errors"
)

// RandomPattern is the seed name that fills the grid from a random source
const RandomPattern = "random"

// Pattern is a named arrangement of living cells, drawn with '#' and '.'
type Pattern struct {
	Name string
	Rows []string
}

var patterns = map[string]Pattern{
	"glider": {Name: "glider", Rows: []string{
		".#.",
		"..#",
		"###",
	}},
	"blinker": {Name: "blinker", Rows: []string{
		"###",
	}},
	"block": {Name: "block", Rows: []string{
		"##",
		"##",
	}},
	"beacon": {Name: "beacon", Rows: []string{
		"##..",
		"##..",
		"..##",
		"..##",
	}},
	"toad": {Name: "toad", Rows: []string{
		".###",
		"###.",
	}},
	"r-pentomino": {Name: "r-pentomino", Rows: []string{
		".##",
		"##.",
		".#.",
	}},
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Errorf("[PatternByName] unknown pattern %q", name)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Width returns the widest row of the pattern
func (p Pattern) Width() (w int) {
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of rows of the pattern
func (p Pattern) Height() int {
	return len(p.Rows)
}

// Stamp sets the pattern's living cells with its top-left corner at (row, col).
// Positions past an edge wrap around; dead pattern cells leave the grid untouched.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for dr, line := range p.Rows {
		r := ((row+dr)%g.height + g.height) % g.height
		for dc, ch := range []byte(line) {
			if ch != '#' {
				continue
			}
			c := ((col+dc)%g.width + g.width) % g.width
			g.cells[g.index(r, c)] = Alive
		}
	}
}

// StampCentered stamps the pattern in the middle of the grid
func (g *Grid) StampCentered(p Pattern) {
	g.Stamp(p, (g.height-p.Height())/2, (g.width-p.Width())/2)
}

// Seed builds a grid from a pattern name, drawing from rng for RandomPattern
func Seed(name string, width, height int, rng Source) (*Grid, error) {
	if name == RandomPattern {
		return NewGrid(width, height, rng)
	}
	p, err := PatternByName(name)
	if err != nil {
		return nil, err
	}
	g, err := newEmptyGrid(width, height)
	if err != nil {
		return nil, errors.WithMessage(err, "[Seed]")
	}
	g.StampCentered(p)
	return g, nil
}
