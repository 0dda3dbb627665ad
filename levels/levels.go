// Package levels holds level data: the solid-tile grid and the fixed spawn list.
// It does not depend on ebitengine, donburi or resolv.
package levels

import (
	"errors"
	"fmt"
)

// Cell codes used by the grid.
const (
	Empty = 0
	Solid = 1
)

// SpawnPoint is the top-left corner an entity is created (and respawned) at.
type SpawnPoint struct {
	X, Y float64
}

// Level is a grid of cell codes plus the initial entity placement.
// Row index maps to y, column index to x, both scaled by TileSize.
type Level struct {
	Name     string
	Grid     [][]int
	TileSize float64
	Player   SpawnPoint
	Enemies  []SpawnPoint
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int {
	return len(l.Grid)
}

// Columns returns the length of the widest row. Rows may be ragged.
func (l *Level) Columns() int {
	cols := 0
	for _, row := range l.Grid {
		cols = max(cols, len(row))
	}
	return cols
}

// SolidCount returns the number of solid cells.
func (l *Level) SolidCount() int {
	n := 0
	for _, row := range l.Grid {
		for _, cell := range row {
			if cell == Solid {
				n++
			}
		}
	}
	return n
}

// Validate checks that the level can be simulated.
func (l *Level) Validate() error {
	var errs []error
	if l.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %v", l.TileSize))
	}
	if l.Rows() == 0 || l.Columns() == 0 {
		errs = append(errs, errors.New("grid is empty"))
	}
	for y, row := range l.Grid {
		for x, cell := range row {
			if cell != Empty && cell != Solid {
				errs = append(errs, fmt.Errorf("cell (%d,%d) has unknown code %d", x, y, cell))
			}
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy so callers can mutate a level without touching the original.
func (l *Level) Clone() *Level {
	c := *l
	c.Grid = make([][]int, len(l.Grid))
	for i, row := range l.Grid {
		c.Grid[i] = append([]int(nil), row...)
	}
	c.Enemies = append([]SpawnPoint(nil), l.Enemies...)
	return &c
}
