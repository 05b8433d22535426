// SPDX-License-Identifier: MIT
// Package grid defines the cell states, positions and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested shape with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a (row, col) reference outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrUnknownGlyph indicates an unrecognised character in a text layout.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrDuplicateEndpoint indicates a text layout with more than one start or end.
	ErrDuplicateEndpoint = errors.New("grid: layout has more than one start or end")
)

// State is the single display/search tag carried by every Cell.
// The presentation layer maps it to a colour or glyph; the search engine
// reads Barrier and writes Frontier, Visited and Path.
type State int

const (
	// Empty is a free, unvisited cell.
	Empty State = iota
	// Start is the search origin. At most one per Grid.
	Start
	// End is the search goal. At most one per Grid.
	End
	// Barrier is impassable and never listed as anyone's neighbor.
	Barrier
	// Frontier marks a cell sitting in the open set.
	Frontier
	// Visited marks a cell already expanded.
	Visited
	// Path marks a cell on the reconstructed route.
	Path
)

var stateNames = [...]string{
	Empty:    "Empty",
	Start:    "Start",
	End:      "End",
	Barrier:  "Barrier",
	Frontier: "Frontier",
	Visited:  "Visited",
	Path:     "Path",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsSearchMark reports whether s is bookkeeping written by a search run
// (Frontier, Visited or Path) as opposed to user-painted content.
func (s State) IsSearchMark() bool {
	return s == Frontier || s == Visited || s == Path
}

// Position is a (Row, Col) coordinate inside a Grid.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid square. Its coordinates are fixed; its state and
// cached neighbor list are mutable and owned by the enclosing Grid.
type Cell struct {
	pos       Position
	state     State
	neighbors []*Cell // Down, Up, Right, Left; valid only after RefreshAllNeighbors
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.pos.Col }

// Position returns the cell's coordinates.
func (c *Cell) Position() Position { return c.pos }

// DisplayState returns the tag the presentation layer should render.
func (c *Cell) DisplayState() State { return c.state }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsEndpoint reports whether the cell is the start or the end.
func (c *Cell) IsEndpoint() bool { return c.state == Start || c.state == End }

// Neighbors returns the cached open neighbors in Down, Up, Right, Left order.
// The slice is shared; callers must not modify it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// Mark applies a search mark (Frontier, Visited or Path) to the cell.
// Endpoints and barriers are never overwritten; Mark reports whether the
// state changed.
func (c *Cell) Mark(s State) bool {
	if !s.IsSearchMark() || c.IsEndpoint() || c.state == Barrier {
		return false
	}
	c.state = s
	return true
}

// String renders the cell as "(row,col):State".
func (c *Cell) String() string {
	return fmt.Sprintf("%s:%s", c.pos, c.state)
}
