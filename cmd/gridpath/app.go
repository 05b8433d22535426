// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

const helpText = "L-click: start/end/wall  R-click: erase  SPACE: run  ESC: stop  r: reset search  c: clear  q: quit"

// app is the interactive front-end: it owns the screen and the grid and
// turns terminal events into grid edits and search runs. All methods run on
// the main goroutine; the poller goroutine only forwards events.
type app struct {
	screen tcell.Screen
	grid   *grid.Grid
	events <-chan tcell.Event
	delay  time.Duration
	log    *slog.Logger
	sleep  func(time.Duration)

	running bool // a search is in progress; painting is disabled
	quit    bool
	status  string
	style   tcell.Style
}

func newApp(s tcell.Screen, g *grid.Grid, events <-chan tcell.Event, delay time.Duration, log *slog.Logger) *app {
	return &app{
		screen: s,
		grid:   g,
		events: events,
		delay:  delay,
		log:    log,
		sleep:  time.Sleep,
		status: "ready",
		style:  render.StyleStatus,
	}
}

// loop handles events until the user quits or the event source closes.
func (a *app) loop() {
	a.draw()
	for !a.quit {
		ev, ok := <-a.events
		if !ok {
			return
		}
		a.handle(ev)
	}
}

// handle applies one event outside of a search run.
func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			a.paint(render.CellAt(x, y))
		case ev.Buttons()&tcell.Button2 != 0:
			a.erase(render.CellAt(x, y))
		default:
			return
		}
	case *tcell.EventKey:
		a.key(ev)
	default:
		return
	}
	a.draw()
}

func (a *app) key(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
		a.quit = true
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		a.search()
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C'):
		a.grid.Reset()
		a.setStatus("cleared", render.StyleStatus)
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
		a.grid.ResetSearch()
		a.setStatus("search marks cleared", render.StyleStatus)
	}
}

// paint applies a left click: the first click places the start, the second
// the end, every later one a barrier. Endpoints are never painted over.
func (a *app) paint(p grid.Position) {
	c := a.grid.At(p)
	if c == nil {
		return
	}
	var err error
	switch {
	case a.grid.Start() == nil && c != a.grid.End():
		err = a.grid.SetStart(p.Row, p.Col)
	case a.grid.End() == nil && c != a.grid.Start():
		err = a.grid.SetEnd(p.Row, p.Col)
	case !c.IsEndpoint():
		err = a.grid.SetBarrier(p.Row, p.Col)
	}
	if err != nil {
		a.log.Warn("paint rejected", slog.String("cell", p.String()), slog.String("error", err.Error()))
	}
}

// erase applies a right click. Clearing an endpoint forgets it, so the next
// left click places it again.
func (a *app) erase(p grid.Position) {
	if !a.grid.InBounds(p.Row, p.Col) {
		return
	}
	if err := a.grid.Clear(p.Row, p.Col); err != nil {
		a.log.Warn("erase rejected", slog.String("cell", p.String()), slog.String("error", err.Error()))
	}
}

// search runs A* from the current endpoints, redrawing after every
// expansion. Events arriving meanwhile are drained by the cancel hook: ESC
// stops the run, q and Ctrl-C stop it and quit, everything else is dropped.
func (a *app) search() {
	if a.grid.Start() == nil || a.grid.End() == nil {
		a.setStatus("place a start and an end first", render.StyleError)
		return
	}

	a.grid.ResetSearch()
	a.grid.RefreshAllNeighbors()
	a.running = true
	a.setStatus("searching... ESC to stop", render.StyleStatus)
	defer func() { a.running = false }()

	res, err := astar.Run(a.grid, a.grid.Start(), a.grid.End(),
		astar.WithLogger(a.log),
		astar.WithOnStep(func(*grid.Cell) {
			a.draw()
			if a.delay > 0 {
				a.sleep(a.delay)
			}
		}),
		astar.WithCancel(a.interrupted),
	)
	if err != nil {
		a.log.Error("search failed", slog.String("error", err.Error()))
		a.setStatus(err.Error(), render.StyleError)
		return
	}

	a.log.Info("search done",
		slog.String("run_id", res.RunID),
		slog.String("status", res.Status.String()),
		slog.Int("expanded", res.Expanded),
		slog.Int("cost", res.Cost),
		slog.Duration("elapsed", res.Elapsed))

	switch res.Status {
	case astar.Succeeded:
		a.setStatus(fmt.Sprintf("path found: %d steps, %d cells expanded", res.Cost, res.Expanded), render.StyleStatus)
	case astar.Exhausted:
		a.setStatus(fmt.Sprintf("no path: %d cells expanded", res.Expanded), render.StyleError)
	case astar.Cancelled:
		a.setStatus("search stopped", render.StyleError)
	}
}

// interrupted drains pending events without blocking and reports whether
// the running search should stop.
func (a *app) interrupted() bool {
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				a.quit = true
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape:
					return true
				case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					a.quit = true
					return true
				}
			}
		default:
			return false
		}
	}
}

func (a *app) setStatus(msg string, style tcell.Style) {
	a.status, a.style = msg, style
}

// draw repaints the grid and the two text lines beneath it.
func (a *app) draw() {
	render.Draw(a.screen, a.grid)
	w, _ := a.screen.Size()
	y := a.grid.Rows()
	render.ClearLine(a.screen, y, w)
	render.DrawText(a.screen, 0, y, a.status, a.style)
	render.ClearLine(a.screen, y+1, w)
	render.DrawText(a.screen, 0, y+1, helpText, render.StyleDefault)
	a.screen.Show()
}
