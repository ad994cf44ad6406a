package grid

import "strings"

// TileRenderer maps a tile and its coordinates to the string drawn for it —
// a capability interface decoupled from the container and the algorithms.
// Implementations are free to emit ANSI color codes.
type TileRenderer[T any] interface {
	RenderTile(tile T, x, y int) string
}

// RenderFunc adapts a plain function to the TileRenderer interface.
type RenderFunc[T any] func(tile T, x, y int) string

// RenderTile implements TileRenderer.
func (f RenderFunc[T]) RenderTile(tile T, x, y int) string {
	return f(tile, x, y)
}

// Render draws the grid with the given style, one row per line, each line
// terminated by '\n'. Purely diagnostic output, not a machine interface.
func Render[T any](g *Grid[T], style TileRenderer[T]) string {
	var b strings.Builder
	for y, row := range g.rows {
		for x := range row {
			b.WriteString(style.RenderTile(row[x], x, y))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
