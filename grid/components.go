// SPDX-License-Identifier: MIT
package grid

import (
	"github.com/zyedidia/generic/mapset"
)

// Components finds all 4-connected regions of non-barrier cells, walking the
// cached neighbor lists. Regions are discovered in row-major order of their
// first cell; cells inside a region are listed in BFS order.
//
// Neighbor lists must be fresh (see NeighborsStale).
// Time: O(rows×cols), Memory: O(rows×cols).
func (g *Grid) Components() [][]*Cell {
	seen := mapset.New[*Cell]()
	var comps [][]*Cell
	g.Cells(func(c *Cell) {
		if c.state == Barrier || seen.Has(c) {
			return
		}
		comps = append(comps, g.flood(c, seen, nil))
	})

	return comps
}

// Connected reports whether an open 4-connected route joins a and b.
// Barrier cells are connected to nothing, not even themselves.
func (g *Grid) Connected(a, b *Cell) bool {
	if !g.Contains(a) || !g.Contains(b) || a.IsBarrier() || b.IsBarrier() {
		return false
	}
	if a == b {
		return true
	}
	found := false
	g.flood(a, mapset.New[*Cell](), func(c *Cell) bool {
		found = c == b
		return !found
	})

	return found
}

// flood runs a BFS from origin over cached neighbor lists, adding every
// reached cell to seen. visit, when non-nil, is called per reached cell and
// stops the walk by returning false.
func (g *Grid) flood(origin *Cell, seen mapset.Set[*Cell], visit func(*Cell) bool) []*Cell {
	queue := []*Cell{origin}
	seen.Put(origin)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if visit != nil && !visit(u) {
			return queue[:qi+1]
		}
		for _, v := range u.neighbors {
			if !seen.Has(v) {
				seen.Put(v)
				queue = append(queue, v)
			}
		}
	}

	return queue
}
