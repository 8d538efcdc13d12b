// Package iddfs defines types and options for iterative-deepening search
// over a gridworld.World, including cancellation, expansion hooks,
// per-iteration hooks, and node-count diagnostics.
package iddfs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

// DefaultExpandedLogLimit is how many distinct-position nodes Stats.Expanded
// keeps by default.
const DefaultExpandedLogLimit = 5

// cancelCheckInterval is how many expansions pass between context polls.
const cancelCheckInterval = 4096

var (
	// ErrWorldNil is returned when a nil *gridworld.World is passed to a search.
	ErrWorldNil = errors.New("iddfs: world is nil")

	// ErrNegativeDepth indicates a negative depth bound.
	ErrNegativeDepth = errors.New("iddfs: depth bound must be non-negative")

	// ErrStartOutOfRange indicates a start agent position outside the world grid.
	ErrStartOutOfRange = errors.New("iddfs: start position out of range")
)

// PathStep is one move of a solution: the action taken, where the agent
// stood afterwards, and what the action cost.
type PathStep struct {
	Action   gridworld.Action
	Position gridworld.Position
	Cost     float64
}

// Path is an ordered list of steps from the start state. Its length is the
// depth at which the goal was reached.
type Path []PathStep

// Len returns the number of moves.
func (p Path) Len() int { return len(p) }

// Cost returns the sum of the step costs.
func (p Path) Cost() float64 {
	var total float64
	for _, s := range p {
		total += s.Cost
	}

	return total
}

// Actions returns the action sequence of the path.
func (p Path) Actions() []gridworld.Action {
	out := make([]gridworld.Action, len(p))
	for i, s := range p {
		out[i] = s.Action
	}

	return out
}

// String joins the action names with " -> ", e.g. "Up -> Suck".
func (p Path) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Action.String()
	}

	return strings.Join(names, " -> ")
}

// ExpandedNode is an entry of the expanded-node log: a node's agent position
// and the path that reached it.
type ExpandedNode struct {
	Position gridworld.Position
	Path     Path
}

// Stats carries the diagnostics of one search run. Counters accumulate over
// every depth iteration; a node expanded under limits 3 and 4 counts twice.
type Stats struct {
	// NodesExpanded counts every node visited, goal and cutoff nodes included.
	NodesExpanded int

	// NodesGenerated counts every child produced by applying an action.
	NodesGenerated int

	// Expanded logs the first nodes visited whose agent position had not
	// been logged yet, in visiting order, up to the configured limit.
	Expanded []ExpandedNode

	// Iterations is the number of depth limits tried.
	Iterations int

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration
}

// Result is the outcome of a search. A run that exhausts its depth bound
// without reaching the goal has Found == false and a nil Path; that is a
// normal outcome, not an error.
type Result struct {
	// Found reports whether a goal state was reached.
	Found bool

	// Depth is the depth limit under which the goal was found, or the last
	// limit tried when Found is false.
	Depth int

	// Path is the solution, in order from the start state.
	Path Path

	// Stats holds the run diagnostics.
	Stats Stats
}

// Option configures optional behavior of a search.
// Use with Search(w, start, maxDepth, opts...).
type Option func(*Options)

// Options holds configurable parameters for a search run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// ExpandedLogLimit caps Stats.Expanded; defaults to DefaultExpandedLogLimit.
	// A value <= 0 disables the log.
	ExpandedLogLimit int

	// OnExpand, if non-nil, is invoked for every expanded node before its goal
	// test, with the node's state and depth. Returning an error aborts the run.
	OnExpand func(s gridworld.State, depth int) error

	// OnIteration, if non-nil, is invoked after each depth limit is finished
	// with that limit, whether it was solved, and the cumulative stats so far.
	// Returning an error aborts the run.
	OnIteration func(limit int, found bool, stats Stats) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - Expanded log of DefaultExpandedLogLimit entries
//   - No hooks
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		ExpandedLogLimit: DefaultExpandedLogLimit,
		OnExpand:         nil,
		OnIteration:      nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExpandedLogLimit returns an Option that sets how many distinct-position
// nodes are kept in Stats.Expanded.
func WithExpandedLogLimit(n int) Option {
	return func(o *Options) {
		o.ExpandedLogLimit = n
	}
}

// WithOnExpand returns an Option that installs fn as a per-node hook.
func WithOnExpand(fn func(s gridworld.State, depth int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnIteration returns an Option that installs fn as a per-depth-limit hook.
func WithOnIteration(fn func(limit int, found bool, stats Stats) error) Option {
	return func(o *Options) {
		o.OnIteration = fn
	}
}
