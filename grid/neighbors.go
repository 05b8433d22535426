// SPDX-License-Identifier: MIT
package grid

// neighborOffsets lists (dRow, dCol) in the fixed expansion order:
// Down, Up, Right, Left. Search results are only reproducible if this
// order never changes.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// RefreshAllNeighbors recomputes every cell's neighbor list as its in-bounds
// orthogonal cells that are not barriers, in Down, Up, Right, Left order.
// Calling it twice without intervening changes yields identical lists.
// Complexity: O(rows×cols) time; lists are reused in place.
func (g *Grid) RefreshAllNeighbors() {
	for _, row := range g.cells {
		for _, c := range row {
			g.refresh(c)
		}
	}
	g.stale = false
}

func (g *Grid) refresh(c *Cell) {
	c.neighbors = c.neighbors[:0]
	for _, d := range neighborOffsets {
		n := g.Cell(c.pos.Row+d[0], c.pos.Col+d[1])
		if n == nil || n.state == Barrier {
			continue
		}
		c.neighbors = append(c.neighbors, n)
	}
}

// NeighborsOf returns c's cached neighbor list. The result reflects the
// barrier layout at the last RefreshAllNeighbors call.
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	return c.neighbors
}
