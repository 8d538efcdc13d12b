// Package gridworld defines core types, options, and defaults
// for the vacuum world grid.
package gridworld

import "fmt"

const (
	// DefaultRows is the number of grid rows used by the built-in instances.
	DefaultRows = 4
	// DefaultColumns is the number of grid columns used by the built-in instances.
	DefaultColumns = 5
	// MaxCells bounds Rows×Columns so that every cell fits in a DirtySet.
	MaxCells = 64
)

// Action is one of the agent's moves. The numeric order of the constants is
// the order in which search tries them.
type Action int

// The five actions, in search order.
const (
	Left Action = iota
	Right
	Up
	Down
	Suck

	// NumActions is the fixed branching factor of the world.
	NumActions = 5
)

var actionNames = [NumActions]string{"Left", "Right", "Up", "Down", "Suck"}

// Actions returns every action in search order.
func Actions() [NumActions]Action {
	return [NumActions]Action{Left, Right, Up, Down, Suck}
}

// String returns the action name, e.g. "Left".
func (a Action) String() string {
	if a < 0 || int(a) >= NumActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// ParseAction maps a name produced by String back to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}

	return 0, false
}

// Position is a 1-based (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// State is a search node: where the agent stands and which cells are dirty.
// States are plain values; two equal states reached by different paths are
// still distinct nodes to the search.
type State struct {
	Agent Position
	Dirty DirtySet
}

// WorldConfig is the immutable part of a world: grid size and action costs.
type WorldConfig struct {
	// Rows and Columns give the grid dimensions.
	Rows, Columns int
	// Costs holds the cost of each action, indexed by Action.
	Costs [NumActions]float64
}

// DefaultConfig returns the 4×5 grid with the standard action costs:
// Left=1.0, Right=0.9, Up=0.8, Down=0.7, Suck=0.6.
func DefaultConfig() WorldConfig {
	return WorldConfig{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
		Costs:   [NumActions]float64{1.0, 0.9, 0.8, 0.7, 0.6},
	}
}

// Option configures a WorldConfig before the world is built.
type Option func(*WorldConfig)

// WithDimensions overrides the grid size.
func WithDimensions(rows, columns int) Option {
	return func(c *WorldConfig) {
		c.Rows = rows
		c.Columns = columns
	}
}

// WithActionCosts overrides the per-action costs, indexed by Action.
func WithActionCosts(costs [NumActions]float64) Option {
	return func(c *WorldConfig) {
		c.Costs = costs
	}
}
