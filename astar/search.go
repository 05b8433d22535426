// SPDX-License-Identifier: MIT
package astar

import (
	"container/heap"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// infinity stands in for the +∞ default of g- and f-scores.
const infinity = math.MaxInt

// Search holds the mutable state of one A* run and advances it one outer
// iteration per Step. It is the step-wise face of the engine; Run drives
// it to completion.
//
// A Search owns its grid for its whole lifetime: no other Search may run
// over the same Grid concurrently, and hooks must not mutate the grid.
type Search struct {
	grid       *grid.Grid
	start, end *grid.Cell
	opts       Options
	log        *slog.Logger

	open     openQueue                 // (f, seq) min-heap
	inOpen   mapset.Set[*grid.Cell]    // cells currently in open
	gScore   map[*grid.Cell]int        // best known cost from start; absent = +∞
	fScore   map[*grid.Cell]int        // g + h; absent = +∞
	cameFrom map[*grid.Cell]*grid.Cell // predecessor on the best known route
	seq      uint64                    // last insertion sequence handed out

	status Status
	began  time.Time
	result Result
}

// NewSearch validates the inputs and prepares a search from start to end.
//
// Preconditions and validation (in order), each wrapping ErrInvalidInput:
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be non-nil (ErrMissingEndpoint).
//  3. start != end (ErrSameEndpoints).
//  4. both must belong to g (ErrForeignCell).
//  5. g's neighbor lists must be fresh (ErrStaleNeighbors).
//
// Option errors surface as ErrOptionViolation.
func NewSearch(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return newSearch(g, start, end, o)
}

func newSearch(g *grid.Grid, start, end *grid.Cell, o Options) (*Search, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	s := &Search{
		grid:     g,
		start:    start,
		end:      end,
		opts:     o,
		open:     make(openQueue, 0, g.Rows()+g.Cols()),
		inOpen:   mapset.New[*grid.Cell](),
		gScore:   make(map[*grid.Cell]int),
		fScore:   make(map[*grid.Cell]int),
		cameFrom: make(map[*grid.Cell]*grid.Cell),
		result:   Result{RunID: uuid.NewString()},
	}
	s.log = o.Logger.With(slog.String("run_id", s.result.RunID))

	// Seed: g(start) = 0, f(start) = h(start, end), seq = 0.
	h := o.Heuristic(start.Position(), end.Position())
	s.gScore[start] = 0
	s.fScore[start] = h
	heap.Init(&s.open)
	heap.Push(&s.open, &openEntry{cell: start, f: h, seq: s.seq})
	s.inOpen.Put(start)

	return s, nil
}

func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return ErrNilGrid
	case start == nil || end == nil:
		return ErrMissingEndpoint
	case start == end:
		return ErrSameEndpoints
	case !g.Contains(start) || !g.Contains(end):
		return ErrForeignCell
	case g.NeighborsStale():
		return ErrStaleNeighbors
	}
	return nil
}

// Status returns the current state of the search.
func (s *Search) Status() Status { return s.status }

// Result returns the outcome so far. Path is only set once Succeeded.
func (s *Search) Result() Result {
	r := s.result
	r.Status = s.status
	return r
}

// GScore returns the best known cost from start to c, or false while c is
// still at +∞.
func (s *Search) GScore(c *grid.Cell) (int, bool) {
	g, ok := s.gScore[c]
	return g, ok
}

// Step performs one outer iteration: pop the best open cell, test it against
// the goal, relax its neighbors, call OnStep and mark it Visited. It returns
// true once the search reached a terminal status; further calls are no-ops.
func (s *Search) Step() bool {
	if s.status.Done() {
		return true
	}
	if s.status == Idle {
		s.status = Running
		s.began = time.Now()
		s.log.Debug("search started",
			slog.String("start", s.start.Position().String()),
			slog.String("end", s.end.Position().String()),
			slog.Int("rows", s.grid.Rows()),
			slog.Int("cols", s.grid.Cols()))
	}

	if s.open.Len() == 0 {
		s.finish(Exhausted)
		return true
	}
	if s.opts.Ctx.Err() != nil || s.opts.Cancel() {
		s.finish(Cancelled)
		return true
	}

	// pop the minimum (f, seq) entry and drop it from membership
	current := heap.Pop(&s.open).(*openEntry).cell
	s.inOpen.Remove(current)
	s.result.Expanded++
	s.result.Order = append(s.result.Order, current.Position())

	if current == s.end {
		path := reconstruct(s.cameFrom, s.end, s.opts.OnPathCell)
		s.result.Path = path
		s.result.Cost = len(path) - 1
		// the end may never have been designated on the grid
		if err := s.grid.SetEnd(s.end.Row(), s.end.Col()); err != nil {
			s.log.Warn("mark end", slog.String("error", err.Error()))
		}
		s.finish(Succeeded)
		return true
	}

	// relax in cached Down, Up, Right, Left order
	for _, nb := range s.grid.NeighborsOf(current) {
		s.relax(current, nb)
	}

	s.opts.OnStep(current)

	s.mark(current, grid.Visited)

	return false
}

// relax applies the unit-cost edge current → nb. Only strictly better routes
// replace the recorded one, so the first-found predecessor survives ties.
func (s *Search) relax(current, nb *grid.Cell) {
	tentative := s.score(s.gScore, current) + 1
	if tentative >= s.score(s.gScore, nb) {
		return
	}
	s.cameFrom[nb] = current
	s.gScore[nb] = tentative
	s.fScore[nb] = tentative + s.opts.Heuristic(nb.Position(), s.end.Position())
	s.opts.OnRelax(nb, tentative)

	if s.inOpen.Has(nb) {
		return
	}
	s.seq++
	heap.Push(&s.open, &openEntry{cell: nb, f: s.fScore[nb], seq: s.seq})
	s.inOpen.Put(nb)
	s.mark(nb, grid.Frontier)
}

// mark writes a search mark on c unless c is this search's start or end.
func (s *Search) mark(c *grid.Cell, st grid.State) {
	if c == s.start || c == s.end {
		return
	}
	c.Mark(st)
}

func (s *Search) score(m map[*grid.Cell]int, c *grid.Cell) int {
	if v, ok := m[c]; ok {
		return v
	}
	return infinity
}

// finish records the terminal status, its metrics and a log record.
func (s *Search) finish(status Status) {
	s.status = status
	s.result.Status = status
	s.result.Elapsed = time.Since(s.began)
	observe(s.result)

	s.log.Debug("search finished",
		slog.String("status", status.String()),
		slog.Int("expanded", s.result.Expanded),
		slog.Int("cost", s.result.Cost),
		slog.Duration("elapsed", s.result.Elapsed))
}
