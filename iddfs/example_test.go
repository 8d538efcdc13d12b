package iddfs_test

import (
	"fmt"

	"github.com/katalvlaran/vacuumworld/gridworld"
	"github.com/katalvlaran/vacuumworld/iddfs"
)

// ExampleSearch solves the first built-in instance:
//
//	[ ][D][ ][ ][ ]
//	[ ][A][ ][D][ ]
//	[ ][ ][ ][ ][D]
//	[ ][ ][ ][ ][ ]
//
// The shallowest solution takes nine moves; among the nine-move solutions
// the one found first follows the action order Left, Right, Up, Down, Suck.
func ExampleSearch() {
	w, err := gridworld.NewWorld(gridworld.Pos(2, 2), []gridworld.Position{
		gridworld.Pos(1, 2), gridworld.Pos(2, 4), gridworld.Pos(3, 5),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := iddfs.Search(w, w.Start(), 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Printf("moves=%d cost=%.2f\n", res.Path.Len(), res.Path.Cost())
	fmt.Printf("expanded=%d generated=%d\n", res.Stats.NodesExpanded, res.Stats.NodesGenerated)

	// Output:
	// Up -> Suck -> Right -> Right -> Down -> Suck -> Right -> Down -> Suck
	// moves=9 cost=6.70
	// expanded=2004002 generated=2003992
}

// ExampleSearch_noSolution shows that exhausting the depth bound is a
// normal outcome rather than an error.
func ExampleSearch_noSolution() {
	w, _ := gridworld.NewWorld(gridworld.Pos(2, 2), []gridworld.Position{
		gridworld.Pos(1, 2), gridworld.Pos(2, 4), gridworld.Pos(3, 5),
	})

	res, err := iddfs.Search(w, w.Start(), 2)
	fmt.Println(res.Found, err)
	for i, n := range res.Stats.Expanded {
		fmt.Printf("node %d: %v [%v]\n", i+1, n.Position, n.Path)
	}

	// Output:
	// false <nil>
	// node 1: (2, 2) []
	// node 2: (2, 1) [Left]
	// node 3: (2, 3) [Right]
	// node 4: (1, 2) [Up]
	// node 5: (3, 2) [Down]
}
