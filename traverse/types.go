// Package traverse provides tunable options, result types and error definitions
// for start-to-goal search over a carved grid.Grid.
package traverse

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for traversal.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("traverse: grid is nil")

	// ErrUnknownDiscipline is returned for a Discipline other than FIFO or LIFO.
	ErrUnknownDiscipline = errors.New("traverse: unknown frontier discipline")

	// ErrNotFound is returned by Result.Path when the goal was not reached.
	ErrNotFound = errors.New("traverse: goal not reached")
)

// Discipline selects which pushed cell the frontier hands out next.
type Discipline int

const (
	// FIFO pops the oldest pushed cell: breadth-first search.
	FIFO Discipline = iota
	// LIFO pops the most recently pushed cell: depth-first search.
	LIFO
)

func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "breadth-first"
	case LIFO:
		return "depth-first"
	}
	return fmt.Sprintf("Discipline(%d)", int(d))
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// OnVisit is called when a cell is appended to History. Returning an
	// error aborts the search and propagates that error.
	OnVisit func(id int) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether the goal was popped from the frontier.
//   - History: expanded cells in visit order. The goal ends the search when it
//     is popped, so it never appears here.
//   - Parent: each discovered cell other than the start, mapped to the cell
//     that first discovered it.
type Result struct {
	Discipline Discipline
	Start      int
	Goal       int
	Found      bool
	History    []int
	Parent     map[int]int
}

// Path reconstructs start → goal by following Parent back from the goal.
// Returns ErrNotFound if the goal was not reached.
func (r *Result) Path() ([]int, error) {
	if !r.Found {
		return nil, ErrNotFound
	}
	path := []int{r.Goal}
	for cur := r.Goal; cur != r.Start; {
		prev, ok := r.Parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: parent chain broken at %d", ErrNotFound, cur)
		}
		cur = prev
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// PathLen is the number of steps on the solution path, or -1 when there is none.
func (r *Result) PathLen() int {
	p, err := r.Path()
	if err != nil {
		return -1
	}
	return len(p) - 1
}
