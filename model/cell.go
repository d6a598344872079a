package model

import "github.com/sheikhrachel/lifer/rules"

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is in the Alive state
func (c Cell) IsAlive() bool {
	return c == Alive
}

// NextState returns the cell's state for the next generation given the number
// of living cells among its 8 toroidal neighbors
func (c Cell) NextState(livingNeighbors int) Cell {
	if rules.ApplyConwayRules(livingNeighbors, c.IsAlive()) {
		return Alive
	}
	return Dead
}

func (c Cell) String() string {
	if c.IsAlive() {
		return "Alive"
	}
	return "Dead"
}
