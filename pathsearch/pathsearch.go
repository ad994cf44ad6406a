// Package pathsearch implements the depth-first route enumeration.
package pathsearch

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// frame is one pending expansion: the node to visit and its depth along
// the current route, used to rewind the shared path buffer.
type frame[N comparable] struct {
	node  N
	depth int
}

// Search walks the successor relation depth-first from start and counts
// completed routes per the configured Mode.
//
// Returns:
//
//   - A Result carrying the count, one witness route, and the truncation
//     flag.
//   - ErrNilStep / ErrNilGoal on missing callbacks.
//
// A Count of zero with a nil FirstPath means no goal is reachable; that is
// a valid outcome, not an error.
func Search[N comparable](start N, step StepFunc[N], isGoal GoalFunc[N], opts ...Option) (*Result[N], error) {
	// 1) Validate callbacks before touching any state.
	if step == nil {
		return nil, ErrNilStep
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := &Result[N]{}
	seen := mapset.New[N]()

	// 3) Depth-first walk on an explicit stack. The path buffer holds the
	// ancestors of the frame being expanded: a frame at depth d always
	// finds its route prefix intact in path[:d], because frames are popped
	// LIFO and shallower entries are only rewritten after the whole
	// deeper subtree has been drained.
	var stack deque.Deque[frame[N]]
	stack.PushBack(frame[N]{node: start, depth: 0})
	path := make([]N, 0, 16)

	expanded := 0
	for stack.Len() > 0 {
		if cfg.MaxSteps > 0 && expanded >= cfg.MaxSteps {
			res.Truncated = true
			log.Warnf("pathsearch: step cap %d reached with %d frames pending; count=%d is a lower bound",
				cfg.MaxSteps, stack.Len(), res.Count)

			break
		}

		f := stack.PopBack()
		if cfg.Mode == DistinctEndpoints {
			if seen.Has(f.node) {
				continue
			}
			seen.Put(f.node)
		}
		path = append(path[:f.depth], f.node)
		expanded++

		// Goal nodes are terminal; the walk never steps past them.
		if isGoal(f.node) {
			res.Count++
			if res.first == nil {
				res.first = make([]N, len(path))
				copy(res.first, path)
			}

			continue
		}

		for _, next := range step(f.node) {
			stack.PushBack(frame[N]{node: next, depth: f.depth + 1})
		}
	}

	return res, nil
}
