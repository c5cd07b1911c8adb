// Package scene turns a grid.Grid into a plain description of what to draw,
// and renders that description as text or as a PNG image.
//
// Build is a pure function of the grid; the renderers never see the grid
// itself, so anything that can produce a Scene can be drawn.
package scene

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazeflood/grid"
)

// Cell is one drawable square.
type Cell struct {
	ID    int        `json:"id"`
	Row   int        `json:"row"`
	Col   int        `json:"col"`
	State grid.State `json:"state"`
	Start bool       `json:"start,omitempty"`
	Goal  bool       `json:"goal,omitempty"`
}

// Scene is a snapshot of a board: every cell in row-major order and every
// interior wall. Outer borders are implied.
type Scene struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Cells []Cell      `json:"cells"`
	Walls []grid.Wall `json:"walls"`
}

// Build snapshots g.
func Build(g *grid.Grid) Scene {
	s := Scene{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([]Cell, g.Len()),
		Walls: g.Walls(),
	}
	for id := range s.Cells {
		p := g.Position(id)
		s.Cells[id] = Cell{
			ID:    id,
			Row:   p.Row,
			Col:   p.Col,
			State: g.State(id),
			Start: id == g.Start(),
			Goal:  id == g.Goal(),
		}
	}
	return s
}

// Count returns how many cells are in state st.
func (s Scene) Count(st grid.State) int {
	n := 0
	for _, c := range s.Cells {
		if c.State == st {
			n++
		}
	}
	return n
}

// at returns the cell at (row, col); the caller checks bounds.
func (s Scene) at(row, col int) Cell {
	return s.Cells[row*s.Cols+col]
}

// wallSet indexes walls for constant-time lookups while rendering.
type wallSet struct {
	set mapset.Set[grid.Wall]
}

func newWallSet(walls []grid.Wall) wallSet {
	ws := wallSet{set: mapset.New[grid.Wall]()}
	for _, w := range walls {
		ws.set.Put(w)
	}
	return ws
}

// east reports a wall between (row, col) and (row, col+1).
func (ws wallSet) east(row, col int) bool {
	return ws.set.Has(grid.Wall{
		A: grid.Position{Row: row, Col: col},
		B: grid.Position{Row: row, Col: col + 1},
	})
}

// south reports a wall between (row, col) and (row+1, col).
func (ws wallSet) south(row, col int) bool {
	return ws.set.Has(grid.Wall{
		A: grid.Position{Row: row, Col: col},
		B: grid.Position{Row: row + 1, Col: col},
	})
}
