package gridworld_test

import (
	"fmt"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

// ExampleWorld_Render draws the first built-in instance: the agent at (2,2)
// with dirt at (1,2), (2,4) and (3,5) on the default 4×5 grid.
func ExampleWorld_Render() {
	w, err := gridworld.NewWorld(gridworld.Pos(2, 2), []gridworld.Position{
		gridworld.Pos(1, 2), gridworld.Pos(2, 4), gridworld.Pos(3, 5),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(w.Render(w.Start()))

	// Output:
	// [ ][D][ ][ ][ ]
	// [ ][A][ ][D][ ]
	// [ ][ ][ ][ ][D]
	// [ ][ ][ ][ ][ ]
}

// ExampleWorld_ApplyAction shows that bumping into a wall still costs.
func ExampleWorld_ApplyAction() {
	w, _ := gridworld.NewWorld(gridworld.Pos(2, 1), nil)

	pos, _, cost := w.ApplyAction(gridworld.Left, w.Start().Agent, w.Start().Dirty)
	fmt.Println(pos, cost)

	// Output:
	// (2, 1) 1
}
