package grid

import "golang.org/x/exp/constraints"

// Map derives a new grid of the same dimensions by applying fn to every
// tile of g — the usual first step of an algorithm pass that needs richer
// per-tile state than the parsed input carries.
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	rows := make([][]U, len(g.rows))
	for y, row := range g.rows {
		rows[y] = make([]U, len(row))
		for x := range row {
			rows[y][x] = fn(row[x])
		}
	}

	return &Grid[U]{rows: rows}
}

// Sum totals every tile of a numeric grid — e.g. a density/counting layer
// built with NewFilled and incremented in place.
func Sum[T constraints.Integer](g *Grid[T]) T {
	var total T
	for _, row := range g.rows {
		for _, v := range row {
			total += v
		}
	}

	return total
}

// Count returns the number of tiles satisfying pred.
func Count[T any](g *Grid[T], pred func(T) bool) int {
	n := 0
	for _, row := range g.rows {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}

	return n
}
