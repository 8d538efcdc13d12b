// Package instance loads vacuum world problem instances from TOML.
//
// A file sets the grid size once and lists any number of instances:
//
//	rows = 4
//	columns = 5
//
//	[[instance]]
//	name = "instance-1"
//	start = [2, 2]
//	dirty = [[1, 2], [2, 4], [3, 5]]
//	max_depth = 10
//
// The two documented instances are embedded and returned by Defaults.
package instance

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/vacuumworld/gridworld"
)

//go:embed defaults.toml
var defaultsTOML []byte

var (
	// ErrNoInstances indicates a file that lists no instances.
	ErrNoInstances = errors.New("instance: no instances defined")
	// ErrBadCoordinate indicates a coordinate that is not a [row, col] pair.
	ErrBadCoordinate = errors.New("instance: coordinate must be a [row, col] pair")
	// ErrDuplicateName indicates two instances sharing a name.
	ErrDuplicateName = errors.New("instance: duplicate instance name")
	// ErrMissingName indicates an instance without a name.
	ErrMissingName = errors.New("instance: instance name is required")
	// ErrNegativeMaxDepth indicates max_depth < 0.
	ErrNegativeMaxDepth = errors.New("instance: max_depth must be non-negative")
	// ErrUnknownInstance is returned by Find for a name not in the file.
	ErrUnknownInstance = errors.New("instance: unknown instance")
)

// File is a decoded instance file.
type File struct {
	// Rows and Columns give the grid size shared by every instance.
	// Zero means the gridworld default.
	Rows    int `toml:"rows"`
	Columns int `toml:"columns"`

	// Instances are the problems in file order.
	Instances []Instance `toml:"instance"`
}

// Instance is one problem: where the agent starts, which cells are dirty,
// and how deep the search may go.
type Instance struct {
	Name     string  `toml:"name"`
	Start    []int   `toml:"start"`
	Dirty    [][]int `toml:"dirty"`
	MaxDepth int     `toml:"max_depth"`
}

// Defaults returns the embedded built-in instances.
func Defaults() (*File, error) {
	f, err := Parse(defaultsTOML)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in instances: %w", err)
	}

	return f, nil
}

// LoadFile reads and validates an instance file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates TOML instance data.
func Parse(data []byte) (*File, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the file structure. Grid bounds are checked when an
// instance is built, by gridworld.NewWorld.
func (f *File) Validate() error {
	if len(f.Instances) == 0 {
		return ErrNoInstances
	}
	seen := make(map[string]bool, len(f.Instances))
	for i, inst := range f.Instances {
		if inst.Name == "" {
			return fmt.Errorf("instance #%d: %w", i+1, ErrMissingName)
		}
		if seen[inst.Name] {
			return fmt.Errorf("%q: %w", inst.Name, ErrDuplicateName)
		}
		seen[inst.Name] = true
		if inst.MaxDepth < 0 {
			return fmt.Errorf("%q: %w", inst.Name, ErrNegativeMaxDepth)
		}
		if _, err := toPosition(inst.Start); err != nil {
			return fmt.Errorf("%q start: %w", inst.Name, err)
		}
		for _, d := range inst.Dirty {
			if _, err := toPosition(d); err != nil {
				return fmt.Errorf("%q dirty: %w", inst.Name, err)
			}
		}
	}

	return nil
}

// Find returns the instance called name.
func (f *File) Find(name string) (Instance, error) {
	for _, inst := range f.Instances {
		if inst.Name == name {
			return inst, nil
		}
	}

	return Instance{}, fmt.Errorf("%q: %w", name, ErrUnknownInstance)
}

// Options returns the gridworld options implied by the file's grid size.
func (f *File) Options() []gridworld.Option {
	if f.Rows == 0 && f.Columns == 0 {
		return nil
	}
	rows, cols := f.Rows, f.Columns
	if rows == 0 {
		rows = gridworld.DefaultRows
	}
	if cols == 0 {
		cols = gridworld.DefaultColumns
	}

	return []gridworld.Option{gridworld.WithDimensions(rows, cols)}
}

// StartPosition returns the agent start as a Position.
func (inst Instance) StartPosition() (gridworld.Position, error) {
	return toPosition(inst.Start)
}

// DirtyPositions returns the dirty cells as Positions.
func (inst Instance) DirtyPositions() ([]gridworld.Position, error) {
	out := make([]gridworld.Position, 0, len(inst.Dirty))
	for _, d := range inst.Dirty {
		p, err := toPosition(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Build creates the world for inst using the grid size of f.
// Out-of-grid coordinates fail with gridworld.ErrOutOfRange.
func (f *File) Build(inst Instance) (*gridworld.World, error) {
	start, err := inst.StartPosition()
	if err != nil {
		return nil, fmt.Errorf("%q start: %w", inst.Name, err)
	}
	dirty, err := inst.DirtyPositions()
	if err != nil {
		return nil, fmt.Errorf("%q dirty: %w", inst.Name, err)
	}
	w, err := gridworld.NewWorld(start, dirty, f.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", inst.Name, err)
	}

	return w, nil
}

// toPosition converts a [row, col] pair.
func toPosition(pair []int) (gridworld.Position, error) {
	if len(pair) != 2 {
		return gridworld.Position{}, fmt.Errorf("%v: %w", pair, ErrBadCoordinate)
	}

	return gridworld.Pos(pair[0], pair[1]), nil
}
