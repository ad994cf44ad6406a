package dijkstra

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// Result holds a completed search: the minimal goal cost, every goal node
// tied at that cost, and the recorded parent DAG.
type Result[N comparable] struct {
	// Cost is the minimal cost from start to any goal node.
	Cost int64
	// Goals lists every goal node finalized at exactly Cost, in the
	// order the search finalized them.
	Goals []N

	start N
	state map[N]*nodeState[N]
}

// CostTo returns the best cost recorded for n, or ok=false if the search
// never reached n. Nodes beyond the first-found goal cost may be absent
// even when reachable: the search stops once all tied goals are known.
func (r *Result[N]) CostTo(n N) (int64, bool) {
	st, ok := r.state[n]
	if !ok {
		return 0, false
	}

	return st.cost, true
}

// PrimaryPath returns one complete start→goal route in travel order,
// following an arbitrary recorded parent at each step back from the first
// tied goal. Returns nil only if the backward walk revisits a node, which
// can occur solely with zero-cost cycles in the input graph.
func (r *Result[N]) PrimaryPath() []N {
	cur := r.Goals[0]
	path := []N{cur}
	seen := mapset.New[N]()
	seen.Put(cur)

	for cur != r.start {
		st := r.state[cur]
		cur = st.parents[0]
		if seen.Has(cur) {
			return nil
		}
		seen.Put(cur)
		path = append(path, cur)
	}

	// Reverse into travel order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// OptimalNodes returns every node participating in at least one
// cost-optimal route, discovered by a backward breadth-first walk over the
// full parent DAG seeded from all tied goals. The start and the goals are
// always included.
func (r *Result[N]) OptimalNodes() []N {
	marked := mapset.New[N]()
	var queue deque.Deque[N]
	var out []N

	for _, g := range r.Goals {
		marked.Put(g)
		queue.PushBack(g)
		out = append(out, g)
	}

	for queue.Len() > 0 {
		cur := queue.PopFront()
		for _, p := range r.state[cur].parents {
			if marked.Has(p) {
				continue
			}
			marked.Put(p)
			queue.PushBack(p)
			out = append(out, p)
		}
	}

	return out
}
