package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

func TestGrid_DirtDrawnOverAgent(t *testing.T) {
	w, err := gridworld.NewWorld(gridworld.Pos(1, 1), []gridworld.Position{gridworld.Pos(1, 1), gridworld.Pos(2, 2)},
		gridworld.WithDimensions(2, 3))
	require.NoError(t, err)

	grid := w.Grid(w.Start())
	assert.Equal(t, [][]rune{
		{gridworld.CellDirt, gridworld.CellClean, gridworld.CellClean},
		{gridworld.CellClean, gridworld.CellDirt, gridworld.CellClean},
	}, grid)

	// Once the cell is clean the agent becomes visible.
	next, _ := w.Step(w.Start(), gridworld.Suck)
	assert.Equal(t, "[A][ ][ ]\n[ ][D][ ]\n", w.Render(next))
}
