package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned by New for a negative element count.
var ErrInvalidSize = errors.New("unionfind: size must be non-negative")

// Option configures a UnionFind at construction time.
type Option func(*UnionFind)

// WithPathCompression makes Find re-point every visited identifier at its
// grandparent while walking, flattening long chains on large grids.
func WithPathCompression() Option {
	return func(uf *UnionFind) {
		uf.compress = true
	}
}

// UnionFind maps each identifier to its current representative.
// It is not safe for concurrent use.
type UnionFind struct {
	parent   []int
	compress bool
}

// New returns a UnionFind over identifiers 0..n-1, each its own representative.
func New(n int, opts ...Option) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	for _, opt := range opts {
		opt(uf)
	}

	return uf, nil
}

// Len reports how many identifiers the structure tracks.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Find returns the representative of id's class.
// id must lie in [0, Len()); the maze generator only ever passes cell ids
// it allocated itself.
func (uf *UnionFind) Find(id int) int {
	for uf.parent[id] != id {
		if uf.compress {
			uf.parent[id] = uf.parent[uf.parent[id]]
		}
		id = uf.parent[id]
	}

	return id
}

// Union points rootA at rootB. Both arguments are expected to be
// representatives returned by Find; passing non-roots still terminates but
// merges classes through whatever node was given.
func (uf *UnionFind) Union(rootA, rootB int) {
	uf.parent[rootA] = rootB
}

// Connected reports whether a and b share a representative.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Sets counts the distinct classes, i.e. identifiers that are their own
// representative.
func (uf *UnionFind) Sets() int {
	n := 0
	for i, p := range uf.parent {
		if i == p {
			n++
		}
	}

	return n
}
