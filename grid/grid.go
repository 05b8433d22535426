// SPDX-License-Identifier: MIT
// Package grid provides the mutable 2D cell model consumed by the A* engine
// and by the presentation layer. It supports:
//
//   - Fixed rows × cols shape with independent row and column bounds
//   - Controller setters for start, end and barriers
//   - Cached 4-connected neighbor lists refreshed explicitly
//   - Identification of connected open regions
//
// A Grid is not safe for concurrent use; one goroutine owns it.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rows × cols collection of Cells. The shape is fixed after New;
// cell content is mutable. Neighbor lists are derived data and must be
// rebuilt with RefreshAllNeighbors after barrier changes.
type Grid struct {
	rows, cols int
	cells      [][]*Cell
	start, end *Cell
	stale      bool // barrier layout changed since the last refresh
}

// New allocates a rows × cols grid of Empty cells.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	cells := make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = &Cell{pos: Position{Row: r, Col: c}}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells, stale: true}, nil
}

// Parse builds a grid from a text layout, one string per row:
//
//	'.' empty, '#' barrier, 'S' start, 'E' end
//
// Neighbor lists are refreshed before returning.
func Parse(layout ...string) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(layout[0])
	for _, row := range layout {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(layout), w)
	if err != nil {
		return nil, err
	}
	for r, row := range layout {
		for c, ch := range []byte(row) {
			switch ch {
			case '.':
			case '#':
				err = g.SetBarrier(r, c)
			case 'S':
				if g.start != nil {
					return nil, ErrDuplicateEndpoint
				}
				err = g.SetStart(r, c)
			case 'E':
				if g.end != nil {
					return nil, ErrDuplicateEndpoint
				}
				err = g.SetEnd(r, c)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, ch, r, c)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	g.RefreshAllNeighbors()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Rows and columns are checked against their own dimension.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// At is Cell for a Position.
func (g *Grid) At(p Position) *Cell { return g.Cell(p.Row, p.Col) }

// Contains reports whether c is one of this grid's cells (by identity).
func (g *Grid) Contains(c *Cell) bool {
	return c != nil && g.InBounds(c.pos.Row, c.pos.Col) && g.cells[c.pos.Row][c.pos.Col] == c
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Start returns the start cell, or nil when none is set.
func (g *Grid) Start() *Cell { return g.start }

// End returns the end cell, or nil when none is set.
func (g *Grid) End() *Cell { return g.end }

// NeighborsStale reports whether the barrier layout changed since the last
// RefreshAllNeighbors, i.e. whether cached neighbor lists may be wrong.
func (g *Grid) NeighborsStale() bool { return g.stale }

func (g *Grid) lookup(row, col int) (*Cell, error) {
	c := g.Cell(row, col)
	if c == nil {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return c, nil
}

// assign writes s to c, keeping the start/end pointers and the staleness
// flag consistent with the new content.
func (g *Grid) assign(c *Cell, s State) {
	if (c.state == Barrier) != (s == Barrier) {
		g.stale = true
	}
	if c == g.start && s != Start {
		g.start = nil
	}
	if c == g.end && s != End {
		g.end = nil
	}
	c.state = s
}

// SetStart makes (row, col) the start cell. A previous start is reset to
// Empty; if the cell was the end, the grid no longer has an end.
func (g *Grid) SetStart(row, col int) error {
	c, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	if g.start != nil && g.start != c {
		g.assign(g.start, Empty)
	}
	g.assign(c, Start)
	g.start = c

	return nil
}

// SetEnd makes (row, col) the end cell. A previous end is reset to Empty;
// if the cell was the start, the grid no longer has a start.
func (g *Grid) SetEnd(row, col int) error {
	c, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	if g.end != nil && g.end != c {
		g.assign(g.end, Empty)
	}
	g.assign(c, End)
	g.end = c

	return nil
}

// SetBarrier makes (row, col) impassable. Painting over an endpoint removes it.
func (g *Grid) SetBarrier(row, col int) error {
	c, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	g.assign(c, Barrier)

	return nil
}

// Clear resets (row, col) to Empty, whatever it held.
func (g *Grid) Clear(row, col int) error {
	c, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	g.assign(c, Empty)

	return nil
}

// ResetSearch turns every Frontier, Visited and Path mark back into Empty,
// leaving barriers and endpoints untouched. Call it between runs.
func (g *Grid) ResetSearch() {
	g.Cells(func(c *Cell) {
		if c.state.IsSearchMark() {
			c.state = Empty
		}
	})
}

// Reset clears the whole grid: barriers, endpoints and search marks.
func (g *Grid) Reset() {
	g.Cells(func(c *Cell) { g.assign(c, Empty) })
}

// String renders the grid in the Parse layout, with search marks as
// 'o' (frontier), 'x' (visited) and '*' (path).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteByte(layoutGlyphs[c.state])
		}
	}
	return sb.String()
}

var layoutGlyphs = [...]byte{
	Empty:    '.',
	Start:    'S',
	End:      'E',
	Barrier:  '#',
	Frontier: 'o',
	Visited:  'x',
	Path:     '*',
}
