package gridworld

import "errors"

var (
	// ErrOutOfRange indicates a position outside the Rows×Columns grid.
	ErrOutOfRange = errors.New("gridworld: position out of range")
	// ErrInvalidDimensions indicates a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("gridworld: grid must have at least one row and one column")
	// ErrGridTooLarge indicates more cells than a DirtySet can hold.
	ErrGridTooLarge = errors.New("gridworld: grid has too many cells")
	// ErrInvalidCost indicates a negative, NaN or infinite action cost.
	ErrInvalidCost = errors.New("gridworld: invalid action cost")
)
