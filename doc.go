// Package vacuumworld solves the "vacuum world" cleaning problem with
// iterative-deepening depth-first search.
//
// 🧹 What is vacuumworld?
//
//	A small, zero-cgo Go module that brings together:
//		• Grid world: positions, dirty cells, actions with fixed costs
//		• Search: iterative-deepening DFS with node-count diagnostics
//		• Instances: TOML problem files, two built-in instances
//		• Reporting: text and JSON summaries, styled grid rendering
//
// Under the hood, everything is organized under these subpackages:
//
//	gridworld/    — World, Position, DirtySet, ApplyAction, IsGoal, Render
//	iddfs/        — Search, DepthLimited, Result, Stats, options & hooks
//	instance/     — TOML instance files and the embedded defaults
//	report/       — Summary, WriteText, WriteJSON, RenderGrid
//	cmd/vacuumworld — the command line
//
// Quick ASCII example (instance 1, agent A, dirt D):
//
//	[ ][D][ ][ ][ ]
//	[ ][A][ ][D][ ]
//	[ ][ ][ ][ ][D]
//	[ ][ ][ ][ ][ ]
//
// is solved in nine moves: Up Suck Right Right Down Suck Right Down Suck.
//
//	go install github.com/katalvlaran/vacuumworld/cmd/vacuumworld@latest
package vacuumworld
