// Package gridpath is a small, deterministic A* pathfinding engine for
// 4-connected grids, with an interactive terminal front-end to watch it work.
//
// 🚀 What is gridpath?
//
//	A grid model plus a search engine that a UI can drive step by step:
//		• Cells & grids: start, end, barriers and cached neighbor lists
//		• A* search: (f, insertion order) open set, Manhattan heuristic
//		• Step-wise runs: redraw hooks, cooperative cancellation
//		• Observability: slog records, Prometheus metrics, OpenTelemetry spans
//		• Terminal UI: mouse painting and live animation via tcell
//
// ✨ Why choose gridpath?
//
//   - Reproducible: identical input gives identical expansion order and path
//   - Observable: every expansion can be watched through hooks
//   - Honest errors: sentinel errors checked with errors.Is
//
// Packages:
//
//	grid/         - Cell, Grid, State; neighbor caching, connected regions
//	astar/        - Run, Search.Step, Reconstruct, heuristics, options
//	render/       - State to tcell style/glyph, screen to cell mapping
//	config/       - GRIDPATH_* environment configuration (+ optional .env)
//	cmd/gridpath/ - the interactive visualizer
//
// Quick ASCII example:
//
//	S . . .        S x x x
//	. # # .   =>   * # # x
//	. . . E        * * * E
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath
package gridpath
