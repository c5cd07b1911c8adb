package traverse_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/kruskal"
	"github.com/katalvlaran/mazeflood/traverse"
)

// corridor builds this hand-carved 2×3 maze:
//
//	0 - 1 - 2
//	|       |
//	3 - 4   5
func corridor(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2, 3, grid.WithSeed(1))
	require.NoError(t, err)
	g.Connect(0, 1)
	g.Connect(0, 3)
	g.Connect(1, 2)
	g.Connect(3, 4)
	g.Connect(2, 5)
	require.NoError(t, g.Validate())
	return g
}

// maze returns a freshly carved rows×cols maze.
func maze(t *testing.T, rows, cols int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, grid.WithSeed(seed))
	require.NoError(t, err)
	_, err = kruskal.Generate(g)
	require.NoError(t, err)
	return g
}

// TestSearch_Errors verifies that invalid inputs are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := traverse.BFS(nil)
	assert.True(t, errors.Is(err, traverse.ErrGridNil), "nil grid: got %v", err)

	g := corridor(t)
	_, err = traverse.Search(g, traverse.Discipline(9))
	assert.True(t, errors.Is(err, traverse.ErrUnknownDiscipline), "bad discipline: got %v", err)
}

// TestBFS_Corridor pins the exact visit order and parents of breadth-first search.
func TestBFS_Corridor(t *testing.T) {
	res, err := traverse.BFS(corridor(t))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, traverse.FIFO, res.Discipline)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, res.History)
	assert.Equal(t, map[int]int{1: 0, 3: 0, 2: 1, 4: 3, 5: 2}, res.Parent)

	p, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5}, p)
	assert.Equal(t, 3, res.PathLen())
}

// TestDFS_Corridor pins the exact visit order of depth-first search: the last
// pushed neighbor (3) is explored before 1.
func TestDFS_Corridor(t *testing.T) {
	res, err := traverse.DFS(corridor(t))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, traverse.LIFO, res.Discipline)
	assert.Equal(t, []int{0, 3, 4, 1, 2}, res.History)
	assert.NotContains(t, res.History, 5, "goal ends the search before it is recorded")

	p, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5}, p)
}

// TestSearch_SingleCell: start is the goal, nothing is expanded.
func TestSearch_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1, grid.WithSeed(1))
	require.NoError(t, err)

	for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
		res, err := traverse.Search(g, d)
		require.NoError(t, err)
		assert.True(t, res.Found, d.String())
		assert.Empty(t, res.History, d.String())
		assert.Empty(t, res.Parent, d.String())
		p, err := res.Path()
		require.NoError(t, err)
		assert.Equal(t, []int{0}, p)
		assert.Zero(t, res.PathLen())
	}
}

// TestSearch_Unreachable returns a clean not-found result on a wall-only board.
func TestSearch_Unreachable(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithSeed(1))
	require.NoError(t, err)
	g.Connect(0, 1)

	res, err := traverse.BFS(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, 1}, res.History)

	_, err = res.Path()
	assert.True(t, errors.Is(err, traverse.ErrNotFound))
	assert.Equal(t, -1, res.PathLen())
}

// TestSearch_Cancelled stops on a cancelled context.
func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := traverse.DFS(maze(t, 5, 8, 1), traverse.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// TestSearch_OnVisit checks the hook sees History in order and can abort.
func TestSearch_OnVisit(t *testing.T) {
	var seen []int
	res, err := traverse.BFS(corridor(t), traverse.WithOnVisit(func(id int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.History, seen)

	stop := errors.New("stop")
	_, err = traverse.DFS(corridor(t), traverse.WithOnVisit(func(id int) error {
		if id == 4 {
			return stop
		}
		return nil
	}))
	assert.True(t, errors.Is(err, stop), "got %v", err)
}

// TestSearch_GeneratedMazes checks, for both disciplines on many carved mazes:
// the goal is found, the parent chain walks back to the start in exactly
// PathLen steps, every non-start cell in History has a parent, the start never
// gets one, and the path matches gonum's shortest path (the unique tree path).
func TestSearch_GeneratedMazes(t *testing.T) {
	shapes := []struct{ rows, cols int }{{1, 6}, {6, 1}, {2, 2}, {6, 10}, {20, 33}}
	for _, s := range shapes {
		for seed := int64(1); seed <= 4; seed++ {
			g := maze(t, s.rows, s.cols, seed)
			ug := simple.NewUndirectedGraph()
			for id := 0; id < g.Len(); id++ {
				ug.AddNode(simple.Node(id))
			}
			for _, p := range g.Passages() {
				ug.SetEdge(simple.Edge{F: simple.Node(p.A), T: simple.Node(p.B)})
			}
			nodes, _ := path.DijkstraFrom(simple.Node(g.Start()), ug).To(int64(g.Goal()))
			want := make([]int, len(nodes))
			for i, n := range nodes {
				want[i] = int(n.ID())
			}

			for _, d := range []traverse.Discipline{traverse.FIFO, traverse.LIFO} {
				name := fmt.Sprintf("%dx%d/seed%d/%s", s.rows, s.cols, seed, d)
				res, err := traverse.Search(g, d)
				require.NoError(t, err, name)
				require.True(t, res.Found, name)

				_, hasStart := res.Parent[g.Start()]
				assert.False(t, hasStart, name)
				for _, c := range res.History[1:] {
					_, ok := res.Parent[c]
					assert.True(t, ok, "%s: visited %d has no parent", name, c)
				}

				steps := 0
				for cur := g.Goal(); cur != g.Start(); cur = res.Parent[cur] {
					steps++
					require.LessOrEqual(t, steps, g.Len(), "%s: parent chain does not end", name)
				}
				assert.Equal(t, res.PathLen(), steps, name)

				got, err := res.Path()
				require.NoError(t, err, name)
				assert.Equal(t, want, got, name)
			}
		}
	}
}

// TestFrontier checks queue and stack order.
func TestFrontier(t *testing.T) {
	q, err := traverse.NewFrontier(traverse.FIFO)
	require.NoError(t, err)
	s, err := traverse.NewFrontier(traverse.LIFO)
	require.NoError(t, err)

	for _, id := range []int{1, 2, 3} {
		q.Push(id)
		s.Push(id)
	}
	assert.Equal(t, 1, q.Pop())
	assert.Equal(t, 3, s.Pop())
	q.Push(4)
	s.Push(4)
	assert.Equal(t, []int{2, 3, 4}, []int{q.Pop(), q.Pop(), q.Pop()})
	assert.Equal(t, []int{4, 2, 1}, []int{s.Pop(), s.Pop(), s.Pop()})
	assert.True(t, q.Empty())
	assert.True(t, s.Empty())

	assert.Equal(t, "breadth-first", traverse.FIFO.String())
	assert.Equal(t, "depth-first", traverse.LIFO.String())
}
