// Package dijkstra provides cost-optimal routing over application-defined
// node types, with multi-parent tie tracking so that the full DAG of
// optimal paths — not just one shortest-path tree — can be recovered.
//
// Overview:
//
//   - Nodes are any comparable type the application chooses: a bare grid
//     address, or an address+heading pose so that turning can carry a cost
//     of its own. Edges and their non-negative integer costs come from a
//     caller-supplied adjacency function; the algorithm never sees a grid.
//   - The search is standard Dijkstra relaxation over a min-heap with the
//     lazy-decrease-key strategy: finding a shorter distance pushes a fresh
//     heap entry, and stale entries are skipped when popped.
//   - Beyond the textbook algorithm, every node keeps the set of ALL
//     predecessors achieving its best-known cost. A strictly lower cost
//     resets the set; an equal cost appends. After the run the recorded
//     links form the DAG of every cost-optimal route.
//   - The goal is a predicate, so several concrete nodes may represent the
//     same logical destination (one per final heading). All goal nodes tied
//     at the minimal goal cost are retained and seed path reconstruction.
//
// Heuristic mode:
//
//	WithHeuristic supplies an estimate of the remaining cost, turning the
//	search into A*. The estimate must be admissible and consistent (e.g.
//	Manhattan distance under unit cardinal moves); otherwise tie tracking
//	and early termination lose their guarantees.
//
// Path recovery:
//
//   - Result.PrimaryPath follows one arbitrary parent at each step,
//     yielding a single complete start→goal route.
//   - Result.OptimalNodes walks the whole parent DAG backward from every
//     tied goal, returning each node participating in at least one optimal
//     path.
//
// Failure semantics:
//
//	An unreachable goal is a normal outcome of valid inputs and is
//	reported as ErrNoPath, never as a panic. Negative edge costs are a
//	contract violation and abort the run with ErrNegativeCost.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each node is finalized at most once, each
//     relaxation may push one heap entry.
//   - Space: O(V + E) for the state map and heap under lazy-decrease-key.
package dijkstra
