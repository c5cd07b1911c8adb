// Package kruskal defines hooks and sentinel errors for maze carving.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/mazeflood/grid"
)

// ErrNilGrid indicates Carve or Generate was handed a nil grid.
var ErrNilGrid = errors.New("kruskal: grid is nil")

// ErrEdgeOutOfRange indicates an edge endpoint outside the grid's id range.
var ErrEdgeOutOfRange = errors.New("kruskal: edge endpoint out of range")

// Option configures a Carve run.
type Option func(*Options)

// Options holds observation hooks. Hooks run synchronously, in edge order,
// after the grid has been updated for that edge.
type Options struct {
	// OnAccept is called for each edge kept as an open passage.
	OnAccept func(e grid.Edge)

	// OnReject is called for each edge turned into a wall.
	OnReject func(e grid.Edge)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnAccept: func(grid.Edge) {},
		OnReject: func(grid.Edge) {},
	}
}

// WithOnAccept registers a hook for accepted edges.
func WithOnAccept(fn func(e grid.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnReject registers a hook for rejected edges.
func WithOnReject(fn func(e grid.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}
