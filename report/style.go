package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

var (
	// Title style for instance headings
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	// Success style for the solution lines (green)
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	// Warning style for the no-solution line (yellow)
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	// Agent and Dirt colour the grid markers.
	Agent = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true)
	Dirt = lipgloss.NewStyle().
		Foreground(lipgloss.Color("3"))

	// Frame surrounds a rendered grid.
	Frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
)

// paint renders text with style when colour is enabled.
func paint(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}

	return style.Render(text)
}

// RenderGrid draws a grid of cell markers inside a rounded frame, one
// bracketed cell per column. Markers are coloured when color is true.
func RenderGrid(grid [][]rune, color bool) string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		var sb strings.Builder
		for _, cell := range row {
			mark := string(cell)
			switch cell {
			case gridworld.CellAgent:
				mark = paint(Agent, mark, color)
			case gridworld.CellDirt:
				mark = paint(Dirt, mark, color)
			}
			sb.WriteString("[" + mark + "]")
		}
		lines[r] = sb.String()
	}

	return Frame.Render(strings.Join(lines, "\n"))
}
