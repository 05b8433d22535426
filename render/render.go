// SPDX-License-Identifier: MIT
// Package render projects a grid.Grid onto a tcell.Screen.
//
// Each grid cell occupies CellWidth terminal columns and one row, so square
// grids look roughly square in a typical terminal font. Rendering only reads
// cell display states; it never mutates the grid.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
)

// CellWidth is the number of terminal columns one grid cell occupies.
const CellWidth = 2

var (
	// StyleDefault is the base style for text around the grid.
	StyleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	// StyleStatus is used for the status line under the grid.
	StyleStatus = StyleDefault.Foreground(tcell.ColorSilver)
	// StyleError highlights rejected input on the status line.
	StyleError = StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	colorOrange    = tcell.NewRGBColor(255, 165, 0)
	colorTurquoise = tcell.NewRGBColor(64, 224, 208)
	colorPurple    = tcell.NewRGBColor(128, 0, 128)

	cellStyles = [...]tcell.Style{
		grid.Empty:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		grid.Start:    tcell.StyleDefault.Background(colorOrange).Foreground(tcell.ColorBlack).Bold(true),
		grid.End:      tcell.StyleDefault.Background(colorTurquoise).Foreground(tcell.ColorBlack).Bold(true),
		grid.Barrier:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray),
		grid.Frontier: tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
		grid.Visited:  tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack),
		grid.Path:     tcell.StyleDefault.Background(colorPurple).Foreground(tcell.ColorWhite),
	}

	cellGlyphs = [...]rune{
		grid.Empty:    ' ',
		grid.Start:    'S',
		grid.End:      'E',
		grid.Barrier:  '█',
		grid.Frontier: ' ',
		grid.Visited:  ' ',
		grid.Path:     '•',
	}
)

// Style returns the colour scheme for a display state. Unknown states fall
// back to the Empty style.
func Style(s grid.State) tcell.Style {
	if s < 0 || int(s) >= len(cellStyles) {
		return cellStyles[grid.Empty]
	}
	return cellStyles[s]
}

// Glyph returns the rune drawn in the first column of a cell. Colour carries
// most of the meaning; glyphs keep endpoints and the path readable on
// terminals without colour support.
func Glyph(s grid.State) rune {
	if s < 0 || int(s) >= len(cellGlyphs) {
		return '?'
	}
	return cellGlyphs[s]
}

// CellAt maps a terminal coordinate to the grid position under it. The
// result may lie outside the grid; check it with grid.InBounds.
func CellAt(x, y int) grid.Position {
	return grid.Position{Row: y, Col: floorDiv(x, CellWidth)}
}

// Origin returns the terminal coordinate of a cell's top-left column.
func Origin(p grid.Position) (x, y int) {
	return p.Col * CellWidth, p.Row
}

// DrawCell paints a single cell.
func DrawCell(s tcell.Screen, c *grid.Cell) {
	x, y := Origin(c.Position())
	st := c.DisplayState()
	style := Style(st)
	g := Glyph(st)
	for i := 0; i < CellWidth; i++ {
		r := g
		if i > 0 && g != '█' {
			r = ' '
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Draw paints every cell of g starting at the screen's top-left corner.
// It does not call Show.
func Draw(s tcell.Screen, g *grid.Grid) {
	g.Cells(func(c *grid.Cell) { DrawCell(s, c) })
}

// DrawText writes text from (x, y) rightwards in one style.
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// ClearLine blanks row y from column 0 to width-1.
func ClearLine(s tcell.Screen, y, width int) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, StyleDefault)
	}
}

// floorDiv rounds towards negative infinity so that columns left of the grid
// never map onto column 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
