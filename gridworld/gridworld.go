// Package gridworld provides the vacuum world geometry and its transition
// and goal functions. Positions are 1-based; internally each cell also has a
// row-major index in [0, Rows×Columns) used by DirtySet.
package gridworld

import (
	"fmt"
	"math"
)

// World is an immutable vacuum world. It remembers the start state it was
// built with, but ApplyAction and IsGoal work on any state passed to them.
type World struct {
	cfg   WorldConfig
	start State
}

// NewWorld builds a world with the agent at start and dirt on every cell in
// dirty (duplicates are ignored). Options override DefaultConfig.
// Returns ErrInvalidDimensions, ErrGridTooLarge or ErrInvalidCost for a bad
// configuration, and ErrOutOfRange if start or any dirty cell lies outside
// the grid.
// Complexity: O(D) time for D dirty positions.
func NewWorld(start Position, dirty []Position, opts ...Option) (*World, error) {
	// 1. Apply options on top of the defaults
	cfg := DefaultConfig()
	for _, fn := range opts {
		fn(&cfg)
	}

	// 2. Validate geometry and costs
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg}

	// 3. Validate positions and build the dirty set
	if !w.InBounds(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfRange)
	}
	set, err := w.NewDirtySet(dirty...)
	if err != nil {
		return nil, err
	}
	w.start = State{Agent: start, Dirty: set}

	return w, nil
}

// Validate checks that the configuration describes a usable world.
func (c WorldConfig) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return ErrInvalidDimensions
	}
	if c.Rows*c.Columns > MaxCells {
		return fmt.Errorf("%d×%d: %w", c.Rows, c.Columns, ErrGridTooLarge)
	}
	for i, cost := range c.Costs {
		if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			return fmt.Errorf("%s cost %v: %w", Action(i), cost, ErrInvalidCost)
		}
	}

	return nil
}

// Config returns a copy of the world configuration.
func (w *World) Config() WorldConfig { return w.cfg }

// Rows returns the number of grid rows.
func (w *World) Rows() int { return w.cfg.Rows }

// Columns returns the number of grid columns.
func (w *World) Columns() int { return w.cfg.Columns }

// Start returns the state the world was built with.
func (w *World) Start() State { return w.start }

// Cost returns the cost charged for action a.
func (w *World) Cost(a Action) float64 { return w.cfg.Costs[a] }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (w *World) InBounds(p Position) bool {
	return p.Row >= 1 && p.Row <= w.cfg.Rows && p.Col >= 1 && p.Col <= w.cfg.Columns
}

// Index maps p to its row-major cell index: (Row-1)*Columns + (Col-1).
// The result is meaningful only for in-bounds positions.
// Complexity: O(1).
func (w *World) Index(p Position) int {
	return (p.Row-1)*w.cfg.Columns + (p.Col - 1)
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (w *World) Coordinate(idx int) Position {
	return Position{Row: idx/w.cfg.Columns + 1, Col: idx%w.cfg.Columns + 1}
}

// NewDirtySet builds a DirtySet from positions, rejecting any outside the
// grid with ErrOutOfRange.
func (w *World) NewDirtySet(ps ...Position) (DirtySet, error) {
	var d DirtySet
	for _, p := range ps {
		if !w.InBounds(p) {
			return 0, fmt.Errorf("dirty cell %v: %w", p, ErrOutOfRange)
		}
		d = d.With(w.Index(p))
	}

	return d, nil
}

// DirtyPositions lists the dirty cells of d in row-major order.
func (w *World) DirtyPositions(d DirtySet) []Position {
	idxs := d.Indices()
	out := make([]Position, len(idxs))
	for i, idx := range idxs {
		out[i] = w.Coordinate(idx)
	}

	return out
}

// ApplyAction is the transition function. It returns the agent position
// after a, the dirty set after a, and the cost of a.
//
//   - Suck cleans pos if it is dirty; the agent does not move.
//   - Left/Right/Up/Down move one cell unless a wall is in the way, in which
//     case pos is returned unchanged.
//
// The cost is charged whether or not anything changed. dirty is passed by
// value, so the caller's set is never modified.
// Complexity: O(1).
func (w *World) ApplyAction(a Action, pos Position, dirty DirtySet) (Position, DirtySet, float64) {
	switch a {
	case Suck:
		dirty = dirty.Without(w.Index(pos))
	case Left:
		if pos.Col > 1 {
			pos.Col--
		}
	case Right:
		if pos.Col < w.cfg.Columns {
			pos.Col++
		}
	case Up:
		if pos.Row > 1 {
			pos.Row--
		}
	case Down:
		if pos.Row < w.cfg.Rows {
			pos.Row++
		}
	}

	return pos, dirty, w.cfg.Costs[a]
}

// Step applies a to s and returns the successor state and the cost.
func (w *World) Step(s State, a Action) (State, float64) {
	pos, dirty, cost := w.ApplyAction(a, s.Agent, s.Dirty)

	return State{Agent: pos, Dirty: dirty}, cost
}

// IsGoal reports whether every cell is clean.
func (w *World) IsGoal(dirty DirtySet) bool {
	return dirty.Empty()
}
