// Package gridpath is a toolkit for treating rectangular 2D grids as
// searchable terrain — from address algebra to region analysis and
// cost-optimal routing.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Geometry primitives: cardinal directions, compact direction sets,
//		  underflow-safe address arithmetic
//		• Grid[T]: a generic rectangular tile container with a two-tier
//		  (checked / must) access API and a pluggable rendering hook
//		• Flood fill: maximal-region discovery with per-tile fence tracking
//		  and dual perimeter/side costings
//		• Dijkstra / A*: cost-optimal routing over application-defined node
//		  types, tracking every tied predecessor so the full DAG of optimal
//		  paths can be recovered
//		• Path search: depth-first route counting with configurable
//		  distinct-path vs distinct-endpoint semantics
//
// ✨ Why choose gridpath?
//
//   - Absence-first API – off-grid lookups and unreachable goals are normal
//     outcomes, reported as (value, ok) pairs or sentinel errors, never panics
//   - Two-tier access – a checked path for exploration, a Must path that
//     treats violations as caller bugs and fails loudly
//   - Generic throughout – tiles and search nodes are caller-supplied types
//   - Bounded by construction – flood fill and DFS run on explicit stacks,
//     immune to deep-region stack overflow
//
// Everything is organized under five subpackages:
//
//	geometry/   — Cardinal, CardinalSet, GridAddress, GridDelta
//	grid/       — the generic Grid[T] container and rendering hooks
//	floodfill/  — region discovery, fences, sides, pricing
//	dijkstra/   — weighted shortest paths with multi-parent tie tracking
//	pathsearch/ — bounded DFS reachability and path multiplicity
//
// Quick ASCII example:
//
//	AAAA
//	BBCD
//	BBCC
//	EEEC
//
//	flood-fills into five regions; region A has size 4, perimeter 10
//	and exactly 4 sides.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package gridpath
