package scene

import (
	"strings"

	"github.com/katalvlaran/mazeflood/grid"
)

// ASCII draws s as text, three characters per cell:
//
//	+---+---+
//	| S   . |
//	+   +---+
//	| * * G |
//	+---+---+
//
// Start and goal show as S and G whatever their state; otherwise "." is a
// searched cell and "*" a cell on the path.
func ASCII(s Scene) string {
	walls := newWallSet(s.Walls)
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", s.Cols) + "\n")
	for row := 0; row < s.Rows; row++ {
		b.WriteString("|")
		for col := 0; col < s.Cols; col++ {
			b.WriteString(" " + glyph(s.at(row, col)) + " ")
			if col == s.Cols-1 || walls.east(row, col) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < s.Cols; col++ {
			if row == s.Rows-1 || walls.south(row, col) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func glyph(c Cell) string {
	switch {
	case c.Start:
		return "S"
	case c.Goal:
		return "G"
	case c.State == grid.OnPath:
		return "*"
	case c.State == grid.Searched:
		return "."
	}
	return " "
}
