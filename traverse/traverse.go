// Package traverse searches a carved grid.Grid from its start cell to its goal
// cell with one engine that runs breadth-first or depth-first depending on the
// frontier discipline it is given.
package traverse

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazeflood/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	g        *grid.Grid
	opts     Options
	frontier Frontier
	seen     mapset.Set[int]
	res      *Result
}

// BFS runs Search with FIFO discipline.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Search(g, FIFO, opts...)
}

// DFS runs Search with LIFO discipline.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Search(g, LIFO, opts...)
}

// Search looks for g.Goal() starting at g.Start() using the frontier
// discipline d, and returns the visit history and parent links it recorded.
//
// An unreachable goal is not an error: the result comes back with Found false.
// Errors are ErrGridNil, ErrUnknownDiscipline, context cancellation, or a
// wrapped OnVisit error.
//
// Complexity: O(V + E); each cell is pushed at most once.
func Search(g *grid.Grid, d Discipline, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	frontier, err := NewFrontier(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(d))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		g:        g,
		opts:     o,
		frontier: frontier,
		seen:     mapset.New[int](),
		res: &Result{
			Discipline: d,
			Start:      g.Start(),
			Goal:       g.Goal(),
			History:    make([]int, 0, g.Len()),
			Parent:     make(map[int]int, g.Len()),
		},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// loop pops cells until the goal comes off the frontier or the frontier drains.
func (w *walker) loop() error {
	w.frontier.Push(w.res.Start)
	for !w.frontier.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		c := w.frontier.Pop()
		if c == w.res.Goal {
			w.res.Found = true
			return nil
		}
		if w.seen.Has(c) {
			continue
		}
		if err := w.visit(c); err != nil {
			return err
		}
		w.expand(c)
	}
	return nil
}

// visit marks c seen, records it in History and calls OnVisit.
func (w *walker) visit(c int) error {
	w.seen.Put(c)
	w.res.History = append(w.res.History, c)
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %d: %w", c, err)
	}
	return nil
}

// expand pushes every open neighbor of c that nobody has discovered yet and
// records c as its parent. The first discoverer wins.
func (w *walker) expand(c int) {
	for _, n := range w.g.Neighbors(c) {
		if w.discovered(n) {
			continue
		}
		w.res.Parent[n] = c
		w.frontier.Push(n)
	}
}

// discovered reports whether id is the start or already has a parent.
func (w *walker) discovered(id int) bool {
	if id == w.res.Start {
		return true
	}
	_, ok := w.res.Parent[id]
	return ok
}
