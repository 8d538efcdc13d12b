package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

func TestDirtySet_Basics(t *testing.T) {
	var d gridworld.DirtySet
	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Indices())

	d = d.With(3).With(0).With(19)
	assert.False(t, d.Empty())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []int{0, 3, 19}, d.Indices())
	assert.True(t, d.Has(19))
	assert.False(t, d.Has(4))
	assert.False(t, d.Has(-1))
	assert.False(t, d.Has(gridworld.MaxCells))

	cleaned := d.Without(3)
	assert.Equal(t, 2, cleaned.Len())
	assert.True(t, d.Has(3), "Without returns a copy")
	assert.Equal(t, cleaned, cleaned.Without(3), "cleaning a clean cell is a no-op")
}
