package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/traverse"
)

// ExampleSearch compares both disciplines on a hand-carved 2×3 maze:
//
//	0 - 1 - 2
//	|       |
//	3 - 4   5
//
// Both reach the goal along the only path; they differ in what they expand first.
func ExampleSearch() {
	g, _ := grid.New(2, 3, grid.WithSeed(1))
	g.Connect(0, 1)
	g.Connect(0, 3)
	g.Connect(1, 2)
	g.Connect(3, 4)
	g.Connect(2, 5)

	for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
		res, err := traverse.Search(g, d)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		p, _ := res.Path()
		fmt.Printf("%s: found=%v history=%v path=%v\n", d, res.Found, res.History, p)
	}
	// Output:
	// breadth-first: found=true history=[0 1 3 2 4] path=[0 1 2 5]
	// depth-first: found=true history=[0 3 4 1 2] path=[0 1 2 5]
}
