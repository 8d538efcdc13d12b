// Package gridworld models the "vacuum world": a fixed rectangular grid of
// cells, a cleaning agent standing on one of them, and a set of cells that
// still contain dirt.
//
// What:
//
//   - World holds the immutable geometry (Rows×Columns) and per-action costs.
//   - State pairs the agent Position with a DirtySet.
//   - ApplyAction is the transition function; IsGoal tests for an empty DirtySet.
//   - Grid/Render project a State onto a printable grid for reporting.
//
// Why:
//
//   - Provide a tiny, allocation-free successor function for uninformed search.
//   - Keep the grid drawing a pure projection, never state the search reads.
//
// Actions & costs (fixed order, significant for search):
//
//	Left  1.0   column-1 unless at column 1
//	Right 0.9   column+1 unless at the last column
//	Up    0.8   row-1 unless at row 1
//	Down  0.7   row+1 unless at the last row
//	Suck  0.6   removes dirt under the agent, if any
//
// Bumping into a wall is a legal, costed no-op, so the branching factor is
// always exactly NumActions. Suck on a clean cell is also charged.
//
// Complexity:
//
//   - ApplyAction, IsGoal, InBounds, Index: O(1), no allocations.
//   - NewWorld: O(D) for D dirty cells.
//   - Grid/Render: O(Rows×Columns).
//
// Errors:
//
//   - ErrOutOfRange: a position lies outside the Rows×Columns grid.
//   - ErrInvalidDimensions: Rows or Columns < 1.
//   - ErrGridTooLarge: Rows×Columns exceeds MaxCells.
//   - ErrInvalidCost: an action cost is negative, NaN or infinite.
package gridworld
