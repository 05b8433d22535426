// SPDX-License-Identifier: MIT
// Package astar defines the status values, results, sentinel errors and
// functional options for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrInvalidInput is the umbrella precondition failure. Every input error
	// below wraps it, so errors.Is(err, ErrInvalidInput) always holds.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrMissingEndpoint indicates a nil start or end cell.
	ErrMissingEndpoint = fmt.Errorf("%w: start and end are required", ErrInvalidInput)

	// ErrSameEndpoints indicates start == end.
	ErrSameEndpoints = fmt.Errorf("%w: start and end must differ", ErrInvalidInput)

	// ErrForeignCell indicates a start or end cell that does not belong to the grid.
	ErrForeignCell = fmt.Errorf("%w: cell does not belong to the grid", ErrInvalidInput)

	// ErrStaleNeighbors indicates barriers changed after the last
	// grid.RefreshAllNeighbors, so cached neighbor lists cannot be trusted.
	ErrStaleNeighbors = fmt.Errorf("%w: neighbor lists are stale, call RefreshAllNeighbors", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Status is the search state machine: Idle → Running → {Succeeded, Exhausted, Cancelled}.
type Status int

const (
	// Idle: constructed, no step taken yet.
	Idle Status = iota
	// Running: at least one step taken, not finished.
	Running
	// Succeeded: the end cell was popped and a path reconstructed.
	Succeeded
	// Exhausted: the open set emptied without reaching the end. Not an error.
	Exhausted
	// Cancelled: the cancel check or context fired. Not an error.
	Cancelled
)

var statusNames = [...]string{
	Idle:      "idle",
	Running:   "running",
	Succeeded: "succeeded",
	Exhausted: "exhausted",
	Cancelled: "cancelled",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Done reports whether s is terminal.
func (s Status) Done() bool { return s >= Succeeded }

// Result holds the outcome of a search:
//   - Status: Succeeded, Exhausted or Cancelled.
//   - Path: start … end inclusive when Succeeded, nil otherwise.
//   - Cost: number of unit edges on Path (len(Path)-1), 0 otherwise.
//   - Expanded: number of cells popped from the open set.
//   - Order: popped positions in pop order.
//   - RunID: identifier shared with logs and the trace span.
//   - Elapsed: wall time between the first and the last step.
type Result struct {
	Status   Status
	Path     []*grid.Cell
	Cost     int
	Expanded int
	Order    []grid.Position
	RunID    string
	Elapsed  time.Duration
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return r.Status == Succeeded }

// PathPositions returns Path as coordinates.
func (r Result) PathPositions() []grid.Position {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Position, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Position()
	}
	return out
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds callbacks and parameters for a search.
type Options struct {
	// Ctx cancels the search cooperatively; checked once per outer iteration.
	Ctx context.Context

	// OnStep is the redraw hook, called once per expansion after all of
	// current's neighbors were relaxed. It must not mutate the grid.
	OnStep func(current *grid.Cell)

	// Cancel is polled once per outer iteration; true stops the search
	// with status Cancelled.
	Cancel func() bool

	// OnRelax is called after each strictly improving relaxation with the
	// neighbor and its new g-score.
	OnRelax func(c *grid.Cell, g int)

	// OnPathCell is called for every cell marked Path during reconstruction,
	// walking from the end back towards the start.
	OnPathCell func(c *grid.Cell)

	// Heuristic estimates the remaining cost. Defaults to Manhattan.
	Heuristic Heuristic

	// Logger receives debug records for run start and finish.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Manhattan heuristic
//   - no-op hooks and a never-firing cancel check
//   - slog.Default() tagged with component=astar
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnStep:     func(*grid.Cell) {},
		Cancel:     func() bool { return false },
		OnRelax:    func(*grid.Cell, int) {},
		OnPathCell: func(*grid.Cell) {},
		Heuristic:  Manhattan,
		Logger:     slog.Default().With(slog.String("component", "astar")),
	}
}

// WithContext sets a context whose cancellation stops the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the per-expansion redraw hook.
func WithOnStep(fn func(current *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithCancel registers a cancellation check polled once per outer iteration.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithOnRelax registers a hook called after each improving relaxation.
func WithOnRelax(fn func(c *grid.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnPathCell registers a hook called per reconstructed path cell.
func WithOnPathCell(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPathCell = fn
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil heuristic is an
// ErrOptionViolation. Non-admissible heuristics forfeit optimality.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithLogger routes run records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
