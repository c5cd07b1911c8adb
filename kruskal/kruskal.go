package kruskal

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/unionfind"
)

// CompareEdges orders edges by ascending weight: negative when a is lighter,
// zero on a tie, positive when a is heavier.
func CompareEdges(a, b grid.Edge) int {
	return a.Weight - b.Weight
}

// Generate builds g's candidate edges and carves them.
// It is the one-call path from a fresh grid to a maze.
func Generate(g *grid.Grid, opts ...Option) ([]grid.Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return Carve(g, g.CandidateEdges(), opts...)
}

// Carve runs Kruskal's algorithm over edges and returns the accepted ones in
// the order they were accepted. Rejected edges are unlinked in g.
//
// The input slice is not modified.
// Complexity: O(E log E + E·d). Memory: O(V + E).
func Carve(g *grid.Grid, edges []grid.Edge, opts ...Option) ([]grid.Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return nil, fmt.Errorf("%w: %d-%d in a %d-cell grid", ErrEdgeOutOfRange, e.A, e.B, n)
		}
	}

	// 1. Ascending weight; SortStableFunc keeps candidate order among equal weights.
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, CompareEdges)

	// 2. Every cell starts as its own region.
	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}

	// 3. Keep bridges between regions, wall off everything else.
	open := make([]grid.Edge, 0, n-1)
	for _, e := range sorted {
		ra, rb := uf.Find(e.A), uf.Find(e.B)
		if ra != rb {
			uf.Union(ra, rb)
			open = append(open, e)
			o.OnAccept(e)
			continue
		}
		g.Disconnect(e.A, e.B)
		o.OnReject(e)
	}

	return open, nil
}
