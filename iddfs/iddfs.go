// Package iddfs implements iterative-deepening depth-first search over a
// gridworld.World. The search is an uninformed tree search: states reached
// along different paths are never merged, and no visited set is kept.
//
// Key features:
//   - Search(w, start, maxDepth, opts...): depth limits 0..maxDepth, first solution wins
//   - DepthLimited(w, start, limit, opts...): a single bounded run
//   - Explicit frame stack: recursion depth never touches the goroutine stack
//   - Hooks: OnExpand (per node) & OnIteration (per depth limit) with error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(b^d) node expansions for branching factor b=5 and solution depth d,
//     summed over all limits up to d.
//   - Memory: O(d) for the frame stack and the shared path buffer.
//
// Errors:
//
//   - ErrWorldNil          if w is nil.
//   - ErrNegativeDepth     if the depth bound is negative.
//   - ErrStartOutOfRange   if the start agent position is off the grid.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnExpand or OnIteration.
package iddfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

// frame is one level of the explicit depth-first stack.
type frame struct {
	state gridworld.State
	next  int // index into the action order of the next child to generate
}

// walker encapsulates state during a search run.
type walker struct {
	world   *gridworld.World
	opts    Options
	actions [gridworld.NumActions]gridworld.Action
	stats   Stats

	logged uint64  // cell indices already present in stats.Expanded
	path   Path    // shared buffer; path[:d] leads to the frame at depth d
	stack  []frame // explicit recursion stack

	cancellable bool
	sinceCheck  int
}

// Search runs depth-limited search from start with limits 0, 1, …, maxDepth
// and returns as soon as one limit yields a solution. Because limits grow by
// one, the returned path has the minimum number of moves (not the minimum
// cost). If no limit up to maxDepth is solved, Result.Found is false.
//
// Stats accumulate across all limits and Stats.Elapsed covers the whole call.
// On error the partial Result is returned alongside it.
func Search(w *gridworld.World, start gridworld.State, maxDepth int, opts ...Option) (*Result, error) {
	return run(w, start, 0, maxDepth, opts)
}

// DepthLimited runs a single depth-first search from start that cuts off
// at limit moves. The start state itself is a valid zero-move solution.
func DepthLimited(w *gridworld.World, start gridworld.State, limit int, opts ...Option) (*Result, error) {
	return run(w, start, limit, limit, opts)
}

// run drives depth limits from..to inclusive.
func run(w *gridworld.World, start gridworld.State, from, to int, opts []Option) (*Result, error) {
	began := time.Now()

	// 1. Validate input
	if w == nil {
		return nil, ErrWorldNil
	}
	if from < 0 || to < 0 {
		return nil, ErrNegativeDepth
	}
	if !w.InBounds(start.Agent) {
		return nil, fmt.Errorf("%v: %w", start.Agent, ErrStartOutOfRange)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	wk := &walker{
		world:       w,
		opts:        o,
		actions:     gridworld.Actions(),
		path:        make(Path, 0, min(to, 64)),
		stack:       make([]frame, 0, min(to, 64)),
		cancellable: o.Ctx.Done() != nil,
	}
	res := &Result{}

	// 3. Deepen one limit at a time
	for limit := from; limit <= to; limit++ {
		if err := o.Ctx.Err(); err != nil {
			return wk.finish(res, began), err
		}

		path, found, err := wk.limited(start, limit)
		wk.stats.Iterations++
		res.Depth = limit
		if err != nil {
			return wk.finish(res, began), err
		}

		if o.OnIteration != nil {
			wk.stats.Elapsed = time.Since(began)
			if err = o.OnIteration(limit, found, wk.stats); err != nil {
				return wk.finish(res, began), fmt.Errorf("iddfs: OnIteration hook at limit %d: %w", limit, err)
			}
		}

		if found {
			res.Found = true
			res.Path = path

			break
		}
	}

	return wk.finish(res, began), nil
}

// finish stamps the elapsed time and copies the stats into res.
func (wk *walker) finish(res *Result, began time.Time) *Result {
	wk.stats.Elapsed = time.Since(began)
	res.Stats = wk.stats

	return res
}

// limited performs one depth-limited search from start. It mirrors the
// recursive formulation exactly: every node is recorded before its goal
// test, cutoff nodes generate no children, and children are generated in
// action order with the first success returned immediately.
func (wk *walker) limited(start gridworld.State, limit int) (Path, bool, error) {
	// 1. Root node
	if err := wk.expand(start, 0); err != nil {
		return nil, false, err
	}
	if wk.world.IsGoal(start.Dirty) {
		return wk.snapshot(0), true, nil
	}
	if limit <= 0 {
		return nil, false, nil
	}

	// 2. Depth-first over an explicit stack of frames
	wk.stack = append(wk.stack[:0], frame{state: start})
	for len(wk.stack) > 0 {
		depth := len(wk.stack) - 1
		top := &wk.stack[depth]

		// All children tried: backtrack
		if top.next == len(wk.actions) {
			wk.stack = wk.stack[:depth]
			continue
		}
		action := wk.actions[top.next]
		top.next++

		// Generate the child
		wk.stats.NodesGenerated++
		child, cost := wk.world.Step(top.state, action)
		wk.path = append(wk.path[:depth], PathStep{Action: action, Position: child.Agent, Cost: cost})

		// Expand the child
		if err := wk.expand(child, depth+1); err != nil {
			return nil, false, err
		}
		if wk.world.IsGoal(child.Dirty) {
			return wk.snapshot(depth + 1), true, nil
		}
		if depth+1 >= limit {
			continue // cutoff
		}
		wk.stack = append(wk.stack, frame{state: child})
	}

	return nil, false, nil
}

// expand records a visit to s at depth, reached by wk.path[:depth].
func (wk *walker) expand(s gridworld.State, depth int) error {
	wk.stats.NodesExpanded++

	// Expanded-node log: first N distinct agent positions
	if len(wk.stats.Expanded) < wk.opts.ExpandedLogLimit {
		bit := uint64(1) << uint(wk.world.Index(s.Agent))
		if wk.logged&bit == 0 {
			wk.logged |= bit
			wk.stats.Expanded = append(wk.stats.Expanded, ExpandedNode{
				Position: s.Agent,
				Path:     wk.snapshot(depth),
			})
		}
	}

	if wk.opts.OnExpand != nil {
		if err := wk.opts.OnExpand(s, depth); err != nil {
			return fmt.Errorf("iddfs: OnExpand hook at depth %d: %w", depth, err)
		}
	}

	if wk.cancellable {
		wk.sinceCheck++
		if wk.sinceCheck >= cancelCheckInterval {
			wk.sinceCheck = 0
			if err := wk.opts.Ctx.Err(); err != nil {
				return err
			}
		}
	}

	return nil
}

// snapshot copies the first depth steps of the shared path buffer.
func (wk *walker) snapshot(depth int) Path {
	out := make(Path, depth)
	copy(out, wk.path[:depth])

	return out
}
