// Package astar provides a deterministic A* shortest-path engine for the
// 4-connected, unit-cost grids of package grid.
//
// Overview:
//
//   - A* expands the open cell with the lowest f = g + h, where g is the best
//     known cost from the start and h is the Manhattan distance to the end.
//   - Ties on f are broken by insertion sequence (first pushed, first popped),
//     so expansion order and the returned path are reproducible.
//   - The engine writes display marks onto the grid as it goes: Frontier when a
//     cell enters the open set, Visited once expanded, Path on the final route.
//     The start and end passed to the search are never overwritten, and on
//     success the end is made the grid's End cell.
//
// Entry points:
//
//   - Run: drive a search to completion and get a Result.
//   - NewSearch + Step: advance one expansion at a time to drive a UI.
//   - Reconstruct: rebuild a route from a predecessor map.
//   - Manhattan: the default heuristic; admissible and consistent here.
//
// Outcomes:
//
//   - Succeeded: Result.Path runs from start to end inclusive; Result.Cost is its
//     length in edges.
//   - Exhausted: the end is unreachable. Not an error.
//   - Cancelled: WithCancel returned true or WithContext's context ended. Not an
//     error; partial marks stay on the grid until grid.ResetSearch.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrMissingEndpoint, ErrSameEndpoints, ErrForeignCell,
//     ErrStaleNeighbors: all wrap ErrInvalidInput.
//   - ErrOptionViolation for malformed options (e.g. nil heuristic). It does
//     not wrap ErrInvalidInput.
//
// Observability:
//
//   - Prometheus: gridpath_search_runs_total{status},
//     gridpath_search_expanded_cells, gridpath_search_duration_seconds.
//   - OpenTelemetry: one "astar.Run" span per Run, tagged with run_id.
//   - slog: debug records on start and finish, tagged with component and run_id.
//
// Thread safety:
//
//   - Single-threaded. Hooks run synchronously on the caller's
//     goroutine and must only read the grid. Never run two searches over the
//     same Grid at once.
//
// Example usage:
//
//	g, _ := grid.Parse(
//	    "S...",
//	    ".##.",
//	    "...E",
//	)
//	res, err := astar.Run(g, g.Start(), g.End(), astar.WithOnStep(redraw))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Cost)
package astar
