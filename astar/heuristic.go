// SPDX-License-Identifier: MIT
package astar

import "github.com/katalvlaran/gridpath/grid"

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Position) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is admissible and
// consistent on a 4-connected unit-cost grid, so A* stays optimal with it.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero always returns 0, degrading A* to Dijkstra's ordering.
func Zero(_, _ grid.Position) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
