package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazeflood/grid"
)

// DefaultWidth is the canvas width in pixels; the height is always 6/10 of it.
const DefaultWidth = 500

// minCellPixels is the smallest cell drawn directly. Boards too dense for
// the canvas are drawn at this size and scaled down.
const minCellPixels = 3

var (
	// ErrEmptyScene is returned when asked to render a scene with no cells.
	ErrEmptyScene = errors.New("scene: nothing to render")
	// ErrCanvasTooSmall is returned when the canvas would be less than one pixel high.
	ErrCanvasTooSmall = errors.New("scene: canvas too small")
)

// Palette colors.
var (
	Unvisited = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Searched  = color.RGBA{R: 255, G: 175, B: 175, A: 255}
	OnPath    = color.RGBA{R: 255, A: 255}
	Start     = color.RGBA{G: 255, A: 255}
	Goal      = color.RGBA{R: 255, B: 255, A: 255}
	WallColor = color.RGBA{A: 255}
)

// PNGOptions controls rasterisation.
type PNGOptions struct {
	// Width of the canvas in pixels; <= 0 means DefaultWidth.
	Width int
	// Border is the width of a black frame drawn around the canvas.
	Border int
}

// Height returns the canvas height for o.
func (o PNGOptions) Height() int {
	return o.width() * 6 / 10
}

func (o PNGOptions) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// Image rasterises s onto a Width × Height canvas.
func Image(s Scene, opts PNGOptions) (*image.RGBA, error) {
	if s.Rows < 1 || s.Cols < 1 || len(s.Cells) != s.Rows*s.Cols {
		return nil, ErrEmptyScene
	}
	w, h := opts.width(), opts.Height()
	if h < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrCanvasTooSmall, w)
	}

	var pic image.Image
	cellW, cellH := w/s.Cols, h/s.Rows
	if cellW < minCellPixels || cellH < minCellPixels {
		pic = image_utils.ResizeImage(newBoard(s, minCellPixels, minCellPixels), w, h)
	} else {
		pic = newBoard(s, cellW, cellH)
	}

	canvas := image_utils.NewCompositeImage()
	if opts.Border > 0 {
		frame := image.NewRGBA(image.Rect(0, 0, w+2*opts.Border, h+2*opts.Border))
		draw.Draw(frame, frame.Bounds(), image.NewUniform(WallColor), image.Point{}, draw.Src)
		if err := canvas.AddImage(frame, image.Pt(0, 0)); err != nil {
			return nil, fmt.Errorf("scene: adding border: %w", err)
		}
	}
	background := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(background, background.Bounds(), image.NewUniform(Unvisited), image.Point{}, draw.Src)
	if err := canvas.AddImage(background, image.Pt(opts.Border, opts.Border)); err != nil {
		return nil, fmt.Errorf("scene: adding background: %w", err)
	}
	if err := canvas.AddImage(pic, image.Pt(opts.Border, opts.Border)); err != nil {
		return nil, fmt.Errorf("scene: adding board: %w", err)
	}
	return image_utils.ToRGBA(canvas), nil
}

// PNG rasterises s and writes it to w as a PNG.
func PNG(w io.Writer, s Scene, opts PNGOptions) error {
	pic, err := Image(s, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("scene: encoding png: %w", err)
	}
	return nil
}

// board draws a scene lazily, one pixel at a time. Pixels right of or below
// the last whole cell keep the background color.
type board struct {
	s            Scene
	walls        wallSet
	cellW, cellH int
	w, h         int
}

func newBoard(s Scene, cellW, cellH int) *board {
	return &board{
		s:     s,
		walls: newWallSet(s.Walls),
		cellW: cellW,
		cellH: cellH,
		w:     cellW * s.Cols,
		h:     cellH * s.Rows,
	}
}

func (b *board) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *board) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.w, b.h)
}

func (b *board) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.Transparent
	}
	col, dx := x/b.cellW, x%b.cellW
	row, dy := y/b.cellH, y%b.cellH
	if dx == b.cellW-1 && col+1 < b.s.Cols && b.walls.east(row, col) {
		return WallColor
	}
	if dy == b.cellH-1 && row+1 < b.s.Rows && b.walls.south(row, col) {
		return WallColor
	}
	return fill(b.s.at(row, col))
}

// fill picks a cell's color. Start and goal are painted over any state.
func fill(c Cell) color.RGBA {
	switch {
	case c.Start:
		return Start
	case c.Goal:
		return Goal
	case c.State == grid.OnPath:
		return OnPath
	case c.State == grid.Searched:
		return Searched
	}
	return Unvisited
}
