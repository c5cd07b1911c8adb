// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazeflood.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or columns below one.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be at least 1")
	// ErrTooLarge indicates rows*cols does not fit in an int.
	ErrTooLarge = errors.New("grid: dimensions overflow cell count")
	// ErrNotSpanningTree indicates the passages do not form a spanning tree.
	ErrNotSpanningTree = errors.New("grid: passages do not form a spanning tree")
)

// MaxWeight is the exclusive upper bound of candidate edge weights.
const MaxWeight = 100

// State is the display state of a cell, written only by the replay.
type State uint8

const (
	// Unvisited is the default state of every cell.
	Unvisited State = iota
	// Searched marks a cell the search expanded.
	Searched
	// OnPath marks a cell on the reconstructed solution path.
	OnPath
)

func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Searched:
		return "searched"
	case OnPath:
		return "on-path"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state by name, so JSON carries "searched" rather than 1.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Position is a (row, column) pair. Row 0 is the top row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is one grid square. Neighbors holds the ids of cells reachable through
// an open passage, in the order the links were made.
type Cell struct {
	ID        int
	Row, Col  int
	Neighbors []int
	State     State
}

// Edge is a candidate passage between two grid-adjacent cells.
// Seq is the edge's index in candidate order; it distinguishes two edges that
// join the same pair of cells and breaks weight ties when sorting.
type Edge struct {
	A, B   int
	Weight int
	Seq    int
}

// Wall is a closed boundary between two grid-adjacent cells.
type Wall struct {
	A Position `json:"a"`
	B Position `json:"b"`
}

// Option configures a Grid at construction.
type Option func(*gridOptions)

type gridOptions struct {
	rng  *rand.Rand
	seed int64
}

// WithSeed seeds the grid's random source, making candidate weights reproducible.
func WithSeed(seed int64) Option {
	return func(o *gridOptions) {
		o.seed = seed
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source used for candidate weights.
// A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *gridOptions) {
		if r != nil {
			o.rng = r
		}
	}
}
