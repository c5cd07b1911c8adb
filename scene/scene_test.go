package scene_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/kruskal"
	"github.com/katalvlaran/mazeflood/scene"
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
	return g
}

// solved replays a full breadth-first search on the corridor.
func solved(t *testing.T) *grid.Grid {
	t.Helper()
	g := corridor(t)
	res, err := traverse.BFS(g)
	require.NoError(t, err)
	r := flood.New(g)
	require.True(t, r.Load(res))
	r.Run(0)
	return g
}

func TestBuild(t *testing.T) {
	s := scene.Build(solved(t))

	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 3, s.Cols)
	require.Len(t, s.Cells, 6)
	assert.Equal(t, scene.Cell{ID: 4, Row: 1, Col: 1, State: grid.Searched}, s.Cells[4])
	assert.True(t, s.Cells[0].Start)
	assert.True(t, s.Cells[5].Goal)
	assert.Equal(t, grid.OnPath, s.Cells[5].State)
	assert.Len(t, s.Walls, 2)
	assert.Equal(t, 3, s.Count(grid.OnPath))
	assert.Equal(t, 3, s.Count(grid.Searched))
	assert.Zero(t, s.Count(grid.Unvisited))
}

func TestBuild_JSON(t *testing.T) {
	raw, err := json.Marshal(scene.Build(solved(t)))
	require.NoError(t, err)

	var got struct {
		Rows  int `json:"rows"`
		Cells []struct {
			State string `json:"state"`
			Start bool   `json:"start"`
		} `json:"cells"`
		Walls []struct {
			A struct{ Row, Col int } `json:"a"`
			B struct{ Row, Col int } `json:"b"`
		} `json:"walls"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, "on-path", got.Cells[1].State)
	assert.Equal(t, "searched", got.Cells[3].State)
	assert.True(t, got.Cells[0].Start)
	require.Len(t, got.Walls, 2)
	assert.Equal(t, 1, got.Walls[0].A.Col)
}

func TestASCII(t *testing.T) {
	g := corridor(t)
	want := "" +
		"+---+---+---+\n" +
		"| S         |\n" +
		"+   +---+   +\n" +
		"|       | G |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, scene.ASCII(scene.Build(g)))

	want = "" +
		"+---+---+---+\n" +
		"| S   *   * |\n" +
		"+   +---+   +\n" +
		"| .   . | G |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, scene.ASCII(scene.Build(solved(t))))
}

func TestASCII_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "+---+\n| S |\n+---+\n", scene.ASCII(scene.Build(g)))
}

func TestImage_Palette(t *testing.T) {
	pic, err := scene.Image(scene.Build(solved(t)), scene.PNGOptions{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 500, 300), pic.Bounds())

	// cells are 166×150
	center := func(row, col int) (int, int) { return col*166 + 83, row*150 + 75 }
	cases := []struct {
		row, col int
		want     any
	}{
		{0, 0, scene.Start},
		{0, 1, scene.OnPath},
		{1, 0, scene.Searched},
		{1, 2, scene.Goal},
	}
	for _, c := range cases {
		x, y := center(c.row, c.col)
		assert.Equal(t, c.want, pic.RGBAAt(x, y), "cell (%d,%d)", c.row, c.col)
	}

	// wall between 4 and 5, and between 1 and 4
	assert.Equal(t, scene.WallColor, pic.RGBAAt(2*166-1, 225))
	assert.Equal(t, scene.WallColor, pic.RGBAAt(249, 149))
	// open passage between 0 and 1
	assert.Equal(t, scene.Start, pic.RGBAAt(165, 75))
	// leftover strip right of the last column
	assert.Equal(t, scene.Unvisited, pic.RGBAAt(499, 10))
}

func TestPNG(t *testing.T) {
	g, err := grid.New(30, 50, grid.WithSeed(3))
	require.NoError(t, err)
	_, err = kruskal.Generate(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scene.PNG(&buf, scene.Build(g), scene.PNGOptions{Width: 200, Border: 4}))
	pic, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 208, pic.Bounds().Dx())
	assert.Equal(t, 128, pic.Bounds().Dy())

	// 2px cells are drawn larger and scaled down to the canvas.
	small, err := scene.Image(scene.Build(g), scene.PNGOptions{Width: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, small.Bounds().Dx())
	assert.Equal(t, 60, small.Bounds().Dy())
}

func TestPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, scene.PNG(&buf, scene.Scene{}, scene.PNGOptions{}), scene.ErrEmptyScene)
	assert.Zero(t, buf.Len())
}

func TestImage_CanvasTooSmall(t *testing.T) {
	_, err := scene.Image(scene.Build(corridor(t)), scene.PNGOptions{Width: 1})
	assert.ErrorIs(t, err, scene.ErrCanvasTooSmall)
}
