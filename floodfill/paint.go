package floodfill

import (
	"github.com/fatih/color"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/grid"
)

// Painter returns a rendering style for the source grid that colors every
// tile by the region it landed in, for diagnostic terminal output. glyph
// maps a tile value to its base string; the painter wraps it in a stable
// pseudo-random true-color per region.
func (r *Result[T]) Painter(glyph func(T) string) grid.RenderFunc[T] {
	return func(tile T, x, y int) string {
		s := glyph(tile)
		id, ok := r.RegionAt(geometry.GridAddress{X: x, Y: y})
		if !ok || id == NoRegion {
			return s
		}

		return regionColor(id).Sprint(s)
	}
}

// regionColor derives a stable, reasonably distinct color from a region id.
// The multipliers are arbitrary mixing constants.
func regionColor(id RegionID) *color.Color {
	n := int(id)

	return color.RGB(
		((n+83)*283764)%256,
		((n+3)*9198723)%256,
		((n+200)*6523)%256,
	)
}
