package grid

import "fmt"

// ConnectedComponents groups cells reachable from one another through open
// passages. Each component is a slice of ids in BFS discovery order; components
// are ordered by their smallest id.
//
// Time:   O(R·C + P), where P = number of passages.
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0 := range g.cells {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.cells[queue[qi]].Neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Validate checks the spanning-tree invariant: one component and exactly
// Len()-1 passages. A connected graph with |V|-1 edges has no cycle, so the
// two checks together rule out loops.
func (g *Grid) Validate() error {
	if comps := len(g.ConnectedComponents()); comps != 1 {
		return fmt.Errorf("%w: %d components", ErrNotSpanningTree, comps)
	}
	if got, want := g.PassageCount(), g.Len()-1; got != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrNotSpanningTree, got, want)
	}
	return nil
}
