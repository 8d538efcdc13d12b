// Package report turns search results into the summaries printed after each
// run: the first expanded nodes, node counters, execution time and, when a
// solution exists, the move sequence with its length and total cost.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/vacuumworld/gridworld"
	"github.com/katalvlaran/vacuumworld/iddfs"
)

// Step is a printable path step.
type Step struct {
	Action   string  `json:"action"`
	Position [2]int  `json:"position"`
	Cost     float64 `json:"cost"`
}

// Node is a printable expanded-node log entry.
type Node struct {
	Position [2]int `json:"position"`
	Path     []Step `json:"path"`
}

// Summary is everything reported about one instance run.
type Summary struct {
	Instance       string   `json:"instance"`
	MaxDepth       int      `json:"max_depth"`
	Grid           [][]rune `json:"-"`
	Expanded       []Node   `json:"expanded_nodes"`
	NodesExpanded  int      `json:"nodes_expanded"`
	NodesGenerated int      `json:"nodes_generated"`
	Iterations     int      `json:"iterations"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	Found          bool     `json:"found"`
	Moves          []string `json:"moves,omitempty"`
	MoveCount      int      `json:"move_count,omitempty"`
	TotalCost      float64  `json:"total_cost,omitempty"`
}

// TextOptions controls WriteText.
type TextOptions struct {
	// Color enables lipgloss styling.
	Color bool
	// ShowGrid prints the start grid before the summary.
	ShowGrid bool
}

// FromResult builds the summary of a run of w from its start state.
func FromResult(name string, maxDepth int, w *gridworld.World, res *iddfs.Result) Summary {
	s := Summary{
		Instance:       name,
		MaxDepth:       maxDepth,
		Grid:           w.Grid(w.Start()),
		NodesExpanded:  res.Stats.NodesExpanded,
		NodesGenerated: res.Stats.NodesGenerated,
		Iterations:     res.Stats.Iterations,
		ElapsedSeconds: res.Stats.Elapsed.Seconds(),
		Found:          res.Found,
	}
	for _, n := range res.Stats.Expanded {
		s.Expanded = append(s.Expanded, Node{Position: pair(n.Position), Path: steps(n.Path)})
	}
	if res.Found {
		for _, a := range res.Path.Actions() {
			s.Moves = append(s.Moves, a.String())
		}
		s.MoveCount = res.Path.Len()
		s.TotalCost = res.Path.Cost()
	}

	return s
}

// WriteText prints s in the classic format:
//
//	First 5 expanded search nodes:
//	Node 1:
//	  Agent Position: (2, 2)
//	  Path: []
//	...
//	Total number of nodes expanded: 2004002
//	Total number of nodes generated: 2003992
//	CPU execution time: 0.041275 seconds
//	Sequence of moves: Up -> Suck -> ...
//	Total number of moves: 9
//	Total cost of solution: 6.70
//
// Without a solution the last three lines are replaced by a single
// "No solution" line.
func WriteText(out io.Writer, s Summary, opts TextOptions) error {
	var sb strings.Builder

	sb.WriteString(paint(Title, fmt.Sprintf("== %s (max depth %d) ==", s.Instance, s.MaxDepth), opts.Color))
	sb.WriteString("\n")
	if opts.ShowGrid && len(s.Grid) > 0 {
		sb.WriteString(RenderGrid(s.Grid, opts.Color))
		sb.WriteString("\n")
	}

	// 1) First expanded nodes
	fmt.Fprintf(&sb, "First %d expanded search nodes:\n", len(s.Expanded))
	for i, n := range s.Expanded {
		fmt.Fprintf(&sb, "Node %d:\n", i+1)
		fmt.Fprintf(&sb, "  Agent Position: %s\n", formatPair(n.Position))
		fmt.Fprintf(&sb, "  Path: %s\n", formatPath(n.Path))
		sb.WriteString("\n")
	}

	// 2) Counters and time
	fmt.Fprintf(&sb, "Total number of nodes expanded: %d\n", s.NodesExpanded)
	fmt.Fprintf(&sb, "Total number of nodes generated: %d\n", s.NodesGenerated)
	fmt.Fprintf(&sb, "CPU execution time: %.6f seconds\n", s.ElapsedSeconds)

	// 3) Solution
	if s.Found {
		sb.WriteString(paint(Success, "Sequence of moves: "+strings.Join(s.Moves, " -> "), opts.Color))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Total number of moves: %d\n", s.MoveCount)
		fmt.Fprintf(&sb, "Total cost of solution: %.2f\n", s.TotalCost)
	} else {
		sb.WriteString(paint(Warning, fmt.Sprintf("No solution within depth %d", s.MaxDepth), opts.Color))
		sb.WriteString("\n")
	}
	sb.WriteString(paint(Dim, fmt.Sprintf("(%d depth iterations)", s.Iterations), opts.Color))
	sb.WriteString("\n")

	_, err := io.WriteString(out, sb.String())

	return err
}

// WriteJSON encodes summaries as an indented JSON array.
func WriteJSON(out io.Writer, summaries []Summary) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(summaries)
}

func pair(p gridworld.Position) [2]int {
	return [2]int{p.Row, p.Col}
}

func steps(p iddfs.Path) []Step {
	out := make([]Step, len(p))
	for i, s := range p {
		out[i] = Step{Action: s.Action.String(), Position: pair(s.Position), Cost: s.Cost}
	}

	return out
}

func formatPair(p [2]int) string {
	return fmt.Sprintf("(%d, %d)", p[0], p[1])
}

// formatPath renders steps as [(Up, (1, 2), 0.8), ...].
func formatPath(path []Step) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = fmt.Sprintf("(%s, %s, %g)", s.Action, formatPair(s.Position), s.Cost)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
