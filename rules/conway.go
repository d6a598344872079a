package rules

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 living neighbors, a dead cell is born with exactly 3.
Every other combination yields a dead cell.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
