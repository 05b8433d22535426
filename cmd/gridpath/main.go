// SPDX-License-Identifier: MIT
// Command gridpath is an interactive terminal A* visualizer.
//
// Paint a start, an end and walls with the mouse, press SPACE and watch the
// search expand. Settings come from GRIDPATH_* environment variables or a
// .env file in the working directory; see package config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)
	log := logger.With(slog.String("component", "gridpath"))

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer s.Fini()
	s.SetStyle(render.StyleDefault)
	s.EnableMouse()
	s.Clear()

	log.Info("started",
		slog.Int("rows", cfg.Rows),
		slog.Int("cols", cfg.Cols),
		slog.Duration("step_delay", cfg.StepDelay))

	a := newApp(s, g, pollEvents(s), cfg.StepDelay, log)
	a.loop()

	log.Info("stopped")
	return nil
}

// pollEvents forwards screen events to a channel so the search loop can
// check for input without blocking. The channel closes when the screen is
// finalized.
func pollEvents(s tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	return events
}

// newLogger opens the log destination. The terminal belongs to the screen,
// so logs go to a file unless LogFile is "-".
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if cfg.LogFile != "-" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})

	return slog.New(h), closeFn, nil
}

func serveMetrics(addr string, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", slog.String("addr", addr), slog.String("error", err.Error()))
		}
	}()
	log.Info("serving metrics", slog.String("addr", addr))

	return srv
}
