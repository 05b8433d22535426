// SPDX-License-Identifier: MIT
// Package astar implements A* search on a 4-connected, unit-cost grid.Grid.
//
// The open set is a min-heap keyed by (f-score, insertion sequence). The
// sequence breaks f-score ties in FIFO order, so two runs over identical
// input expand cells in exactly the same order and return the same path.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols; each cell is pushed at most once
//     per stay in the open set and relaxed through at most 4 edges.
//   - Space: O(N) for score maps, predecessor map and heap.
//
// Notes on implementation choices:
//
//   - A cell already in the open set is not pushed again when its score
//     improves; its heap entry keeps the f-score it was pushed with.
//   - g- and f-scores default to +∞ by absence from their maps.
//   - Cancellation is cooperative and checked once per outer iteration.
package astar

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
)

const tracerName = "github.com/katalvlaran/gridpath/astar"

// Run searches for a shortest path from start to end on g and drives the
// search until it succeeds, exhausts the open set or is cancelled.
//
// Returns:
//
//   - Result with Status Succeeded and the start → end Path, or
//   - Result with Status Exhausted (no path exists) and a nil Path, or
//   - Result with Status Cancelled, leaving Frontier/Visited marks as they were;
//   - error wrapping ErrInvalidInput when a precondition fails (see NewSearch),
//     or ErrOptionViolation for a bad Option. Exhausted and Cancelled are not errors.
//
// Options customization:
//
//   - WithOnStep(fn): redraw hook, once per expansion.
//   - WithCancel(fn) / WithContext(ctx): cooperative cancellation.
//   - WithOnRelax(fn), WithOnPathCell(fn): finer-grained observation.
//   - WithHeuristic(h), WithLogger(l).
//
// The caller must have called g.RefreshAllNeighbors after the last barrier
// change. Run is not safe for concurrent use over the same Grid.
func Run(g *grid.Grid, start, end *grid.Cell, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	_, span := otel.Tracer(tracerName).Start(o.Ctx, "astar.Run")
	defer span.End()

	s, err := newSearch(g, start, end, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid input")
		return Result{}, err
	}
	span.SetAttributes(
		attribute.String("run_id", s.result.RunID),
		attribute.Int("rows", g.Rows()),
		attribute.Int("cols", g.Cols()),
	)

	for !s.Step() {
	}

	res := s.Result()
	annotate(span, res)

	return res, nil
}

func annotate(span trace.Span, r Result) {
	span.SetAttributes(
		attribute.String("status", r.Status.String()),
		attribute.Int("expanded", r.Expanded),
		attribute.Int("cost", r.Cost),
	)
}
