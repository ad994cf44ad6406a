// Package pathsearch enumerates complete routes through a successor
// relation by depth-first search, with two counting modes.
//
// Overview:
//
//   - Search starts from one node and expands successors produced by a
//     StepFunc until it reaches nodes satisfying a GoalFunc. Goal nodes
//     are terminal: the search never steps past them.
//   - The walk runs on an explicit frame stack, so route length is bounded
//     only by memory — never by call-stack depth.
//
// Counting modes:
//
//   - DistinctPaths (default): every distinct complete route to a goal
//     counts once, even when several routes end at the same goal node.
//     On a trail map this is the "rating" of a trailhead.
//   - DistinctEndpoints: a shared visited set prunes re-expansion, so each
//     reachable goal node counts exactly once regardless of how many
//     routes lead to it. On a trail map this is the "score".
//
// The successor relation must be finite and acyclic (e.g. strictly
// monotone trails) for DistinctPaths to terminate on its own; when that
// cannot be guaranteed, WithMaxSteps bounds the expansion count and the
// Result reports Truncated.
//
// Complexity: DistinctEndpoints visits each node at most once, O(V+E).
// DistinctPaths is output-sensitive: it visits one frame per node per
// distinct route prefix, which on heavily merging DAGs grows with the
// number of routes.
package pathsearch
