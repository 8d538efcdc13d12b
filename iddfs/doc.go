// Package iddfs implements iterative-deepening depth-first search (IDDFS)
// for the vacuum world, with node-count diagnostics.
//
// What:
//
//   - Search: runs depth-limited search with limits 0, 1, …, maxDepth and
//     returns the first solution found, i.e. one with the fewest moves.
//   - DepthLimited: a single depth-first run bounded at a fixed depth.
//   - Stats: nodes expanded, nodes generated, the first five expanded nodes
//     with distinct agent positions (and the path to each), and wall time.
//
// Why:
//
//   - IDDFS keeps depth-first memory use, O(d), while still returning a
//     minimum-depth solution like breadth-first search.
//   - The search is a plain tree search. Repeated states are expanded again
//     on purpose: which solution is found, and the node counts, depend on it.
//
// Search order:
//
//	Children are generated in the fixed order Left, Right, Up, Down, Suck,
//	so for equal depth the first solution in that order wins. Walls and
//	Suck on clean cells are ordinary children, so every non-cutoff,
//	non-goal node generates exactly five children.
//
// Key Types:
//
//   - Result:  Found, Depth, Path and Stats of a run.
//   - Path:    []PathStep with Len, Cost, Actions and String helpers.
//   - Options: Context, ExpandedLogLimit, OnExpand, OnIteration.
//
// Complexity:
//
//   - Search:       Time O(5^d) summed over limits, Memory O(d).
//   - DepthLimited: Time O(5^limit), Memory O(limit).
//
// Errors:
//
//   - ErrWorldNil          world pointer is nil
//   - ErrNegativeDepth     negative depth bound
//   - ErrStartOutOfRange   start agent position off the grid
//   - context.Canceled     search canceled via context
//   - hook errors          propagated from OnExpand or OnIteration
//
// "No solution within maxDepth" is not an error: Result.Found is false.
package iddfs
