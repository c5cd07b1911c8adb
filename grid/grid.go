package grid

import (
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Grid is a rows×cols board of cells stored in a single arena slice.
// It is not safe for concurrent use.
type Grid struct {
	rows, cols int
	cells      []Cell
	candidates []Edge
	built      bool
	rng        *rand.Rand
	seed       int64
}

// New allocates a rows×cols grid with sequential row-major ids and no links.
// Dimensions are checked before any cell is allocated.
// Without WithSeed or WithRand, the random source is seeded from the clock.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	n := rows * cols
	if n/cols != rows {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}

	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.seed = time.Now().UnixNano()
		o.rng = rand.New(rand.NewSource(o.seed))
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, n),
		rng:   o.rng,
		seed:  o.seed,
	}
	for id := range g.cells {
		g.cells[id] = Cell{ID: id, Row: id / cols, Col: id % cols}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Seed returns the seed of the grid's random source, or 0 when the caller
// supplied its own source via WithRand.
func (g *Grid) Seed() int64 { return g.seed }

// Start is the top-left cell.
func (g *Grid) Start() int { return 0 }

// Goal is the last cell of the last row.
func (g *Grid) Goal() int { return len(g.cells) - 1 }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// ID maps (row, col) to a row-major id: row*cols + col.
func (g *Grid) ID(row, col int) int {
	return row*g.cols + col
}

// Position converts an id back to (row, col).
func (g *Grid) Position(id int) Position {
	return Position{Row: id / g.cols, Col: id % g.cols}
}

// Cell returns a copy of cell id, including a copy of its neighbor list.
func (g *Grid) Cell(id int) Cell {
	c := g.cells[id]
	c.Neighbors = slices.Clone(c.Neighbors)
	return c
}

// Neighbors returns the ids linked to id by an open passage, in link order.
// The returned slice is a copy.
func (g *Grid) Neighbors(id int) []int {
	return slices.Clone(g.cells[id].Neighbors)
}

// HasPassage reports whether a lists b as a neighbor.
func (g *Grid) HasPassage(a, b int) bool {
	return slices.Contains(g.cells[a].Neighbors, b)
}

// Connect links a and b in both directions. Linking an existing pair is a no-op.
func (g *Grid) Connect(a, b int) {
	g.addNeighbor(a, b)
	g.addNeighbor(b, a)
}

// Disconnect removes the link between a and b in both directions, erecting a wall.
func (g *Grid) Disconnect(a, b int) {
	g.removeNeighbor(a, b)
	g.removeNeighbor(b, a)
}

func (g *Grid) addNeighbor(id, nbr int) {
	c := &g.cells[id]
	if !slices.Contains(c.Neighbors, nbr) {
		c.Neighbors = append(c.Neighbors, nbr)
	}
}

func (g *Grid) removeNeighbor(id, nbr int) {
	c := &g.cells[id]
	if i := slices.Index(c.Neighbors, nbr); i >= 0 {
		c.Neighbors = slices.Delete(c.Neighbors, i, i+1)
	}
}

// PassageCount returns the number of open passages (each pair counted once).
func (g *Grid) PassageCount() int {
	links := 0
	for i := range g.cells {
		links += len(g.cells[i].Neighbors)
	}
	return links / 2
}

// Passages lists every open passage once, with A < B, ordered by A then link
// order. Weight and Seq are left zero.
func (g *Grid) Passages() []Edge {
	out := make([]Edge, 0, g.PassageCount())
	for a := range g.cells {
		for _, b := range g.cells[a].Neighbors {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	return out
}

// Walls lists every closed boundary between grid-adjacent cells, row-major,
// the right-hand wall of a cell before its bottom wall. Outer borders are not
// included.
func (g *Grid) Walls() []Wall {
	var out []Wall
	for id := range g.cells {
		p := g.Position(id)
		if p.Col+1 < g.cols && !g.HasPassage(id, id+1) {
			out = append(out, Wall{A: p, B: Position{Row: p.Row, Col: p.Col + 1}})
		}
		if p.Row+1 < g.rows && !g.HasPassage(id, id+g.cols) {
			out = append(out, Wall{A: p, B: Position{Row: p.Row + 1, Col: p.Col}})
		}
	}
	return out
}

// State returns the display state of cell id.
func (g *Grid) State(id int) State {
	return g.cells[id].State
}

// SetState sets the display state of cell id.
func (g *Grid) SetState(id int, s State) {
	g.cells[id].State = s
}

// ResetStates returns every cell to Unvisited.
func (g *Grid) ResetStates() {
	for i := range g.cells {
		g.cells[i].State = Unvisited
	}
}
