package grid

import "slices"

// CandidateEdges returns the full candidate edge set, building it on first use.
//
// Construction order:
//  1. Vertical pass: every cell that has a cell below it, row-major.
//  2. Horizontal pass: every cell that has a cell to its right, row-major.
//
// Each edge draws its weight from the grid's random source in that order, and
// both endpoints are linked as the edge is emitted, so before generation every
// cell is open to all of its grid-adjacent cells.
//
// Later calls return a copy of the cached list and leave adjacency and the
// random source untouched. The list always holds rows*(cols-1) + cols*(rows-1) edges.
// Complexity: O(R×C).
func (g *Grid) CandidateEdges() []Edge {
	if g.built {
		return slices.Clone(g.candidates)
	}
	g.candidates = make([]Edge, 0, g.rows*(g.cols-1)+g.cols*(g.rows-1))

	for row := 0; row+1 < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.emit(g.ID(row, col), g.ID(row+1, col))
		}
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col+1 < g.cols; col++ {
			g.emit(g.ID(row, col), g.ID(row, col+1))
		}
	}
	g.built = true

	return slices.Clone(g.candidates)
}

func (g *Grid) emit(a, b int) {
	g.candidates = append(g.candidates, Edge{
		A:      a,
		B:      b,
		Weight: g.rng.Intn(MaxWeight),
		Seq:    len(g.candidates),
	})
	g.Connect(a, b)
}
