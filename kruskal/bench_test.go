package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/kruskal"
)

// BenchmarkGenerate measures candidate construction plus carving on a 120×200 board.
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := grid.New(120, 200, grid.WithSeed(int64(i)))
		_, _ = kruskal.Generate(g)
	}
}
