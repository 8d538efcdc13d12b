package gridworld

import "strings"

// Cell markers used by Grid and Render.
const (
	CellClean = ' '
	CellAgent = 'A'
	CellDirt  = 'D'
)

// Grid projects s onto a Rows×Columns matrix of cell markers, indexed
// [row-1][col-1]. The agent is drawn first and dirt second, so a dirty cell
// under the agent shows as CellDirt.
// The search never reads this grid; it exists for reporting only.
// Complexity: O(Rows×Columns).
func (w *World) Grid(s State) [][]rune {
	grid := make([][]rune, w.cfg.Rows)
	for r := range grid {
		grid[r] = make([]rune, w.cfg.Columns)
		for c := range grid[r] {
			grid[r][c] = CellClean
		}
	}
	if w.InBounds(s.Agent) {
		grid[s.Agent.Row-1][s.Agent.Col-1] = CellAgent
	}
	for _, p := range w.DirtyPositions(s.Dirty) {
		if w.InBounds(p) {
			grid[p.Row-1][p.Col-1] = CellDirt
		}
	}

	return grid
}

// Render draws s as text, one line per row, each cell in brackets:
//
//	[ ][D][ ][ ][ ]
//	[ ][A][ ][D][ ]
func (w *World) Render(s State) string {
	var sb strings.Builder
	for _, row := range w.Grid(s) {
		for _, cell := range row {
			sb.WriteByte('[')
			sb.WriteRune(cell)
			sb.WriteByte(']')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
