// Package dijkstra implements the multi-parent shortest-path search.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes the minimum cost from start to the nearest node(s)
// satisfying isGoal, where adjacency and costs come from neighbors.
//
// Returns:
//
//   - A Result carrying the minimal cost, every goal node tied at that
//     cost, and the parent DAG for path reconstruction.
//   - ErrNilNeighbors / ErrNilGoal on missing callbacks.
//   - ErrNegativeCost (wrapped with edge context) if the adjacency
//     function violates the non-negative cost contract.
//   - ErrNoPath if no goal node is reachable — callers should treat this
//     as a valid input outcome to surface, not an error to abort over.
//
// Options: WithMaxCost caps exploration; WithHeuristic switches the pop
// order to A* (the estimate must be admissible and consistent).
func Dijkstra[N comparable](start N, neighbors NeighborFunc[N], isGoal GoalFunc[N], opts ...Option[N]) (*Result[N], error) {
	// 1) Validate callbacks before touching any state.
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}

	// 2) Build options.
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Initialize runner state: the start node has cost 0 and no parent.
	r := &runner[N]{
		neighbors: neighbors,
		isGoal:    isGoal,
		opts:      cfg,
		state:     map[N]*nodeState[N]{start: {cost: 0}},
		visited:   make(map[N]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{node: start, cost: 0, priority: r.estimate(start, 0)})

	// 4) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) No goal was ever finalized: absence, not a fault.
	if !r.haveGoal {
		return nil, ErrNoPath
	}

	return &Result[N]{
		Cost:  r.goalCost,
		Goals: r.goals,
		start: start,
		state: r.state,
	}, nil
}

// nodeState is the per-node bookkeeping record: the best-known cost and
// every predecessor achieving it. The record is owned by the single search
// run; no aliasing crosses runs.
type nodeState[N comparable] struct {
	cost    int64
	parents []N
}

// runner holds the mutable state of one search execution.
type runner[N comparable] struct {
	neighbors NeighborFunc[N]
	isGoal    GoalFunc[N]
	opts      Options[N]
	state     map[N]*nodeState[N]
	visited   map[N]bool
	pq        nodePQ[N]

	haveGoal bool
	goalCost int64
	goals    []N
}

// estimate returns the heap priority for a node at the given cost:
// plain cost for Dijkstra, cost plus remaining estimate for A*.
func (r *runner[N]) estimate(n N, cost int64) int64 {
	if r.opts.Heuristic == nil {
		return cost
	}

	return cost + r.opts.Heuristic(n)
}

// process pops nodes in priority order, finalizing each once and relaxing
// its edges, until every tied goal has been collected or the frontier is
// exhausted.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])

		// Once the best goal cost is known, anything with a higher
		// priority can only reach a goal at strictly greater cost
		// (priority never underestimates the full route cost).
		if r.haveGoal && item.priority > r.goalCost {
			break
		}

		u := item.node
		if r.visited[u] {
			continue // stale lazy-decrease-key entry
		}
		if item.cost > r.opts.MaxCost {
			continue // beyond the exploration cap; never finalized
		}
		r.visited[u] = true

		if r.isGoal(u) {
			if !r.haveGoal {
				r.haveGoal = true
				r.goalCost = item.cost
			}
			if item.cost == r.goalCost {
				r.goals = append(r.goals, u)
			}
			// Goal nodes are terminal: no relaxation past them.
			continue
		}

		if err := r.relax(u, item.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax applies the relax-or-extend rule to every edge leaving u:
// a strictly lower cost resets the neighbor's parent set to {u}, an equal
// cost appends u as one more optimal predecessor.
func (r *runner[N]) relax(u N, base int64) error {
	for _, e := range r.neighbors(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		newCost := base + e.Cost
		if newCost > r.opts.MaxCost {
			continue
		}

		st, known := r.state[e.To]
		switch {
		case !known || newCost < st.cost:
			// Strictly better route: reset the parent set and push a
			// fresh heap entry (lazy decrease-key).
			r.state[e.To] = &nodeState[N]{cost: newCost, parents: []N{u}}
			heap.Push(&r.pq, &nodeItem[N]{
				node:     e.To,
				cost:     newCost,
				priority: r.estimate(e.To, newCost),
			})
		case newCost == st.cost:
			// Tied route through a different predecessor: extend the
			// parent set; the node is already queued at this cost.
			st.parents = append(st.parents, u)
		}
	}

	return nil
}

// nodeItem is one priority-queue entry. Under the lazy-decrease-key
// strategy multiple entries per node may coexist; all but the freshest are
// skipped via the visited check.
type nodeItem[N comparable] struct {
	node     N
	cost     int64 // exact cost from start
	priority int64 // cost plus heuristic estimate; equals cost without one
}

// nodePQ is a min-heap of *nodeItem ordered by ascending priority.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *nodeItem[N].
func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes and returns the smallest-priority entry.
func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
