// SPDX-License-Identifier: MIT
package astar

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct rebuilds the route to end from a predecessor map produced by a
// successful search. It walks cameFrom backwards until it reaches a cell with
// no predecessor (the start) and returns the cells in start → end order,
// both endpoints included.
//
// Every returned cell strictly between start and end is marked grid.Path;
// the endpoints are identified by position in the chain, not by state.
// Complexity: O(path length).
func Reconstruct(cameFrom map[*grid.Cell]*grid.Cell, end *grid.Cell) []*grid.Cell {
	return reconstruct(cameFrom, end, nil)
}

func reconstruct(cameFrom map[*grid.Cell]*grid.Cell, end *grid.Cell, onCell func(*grid.Cell)) []*grid.Cell {
	if end == nil {
		return nil
	}
	path := []*grid.Cell{end}
	for current := end; ; {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		if _, inner := cameFrom[prev]; inner && prev.Mark(grid.Path) && onCell != nil {
			onCell(prev)
		}
		current = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
