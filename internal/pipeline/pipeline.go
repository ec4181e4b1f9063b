// Package pipeline runs one grid file through simulation, timeline encoding
// and scene emission, and writes the resulting document.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/gridlife/internal/config"
	"github.com/san-kum/gridlife/internal/export"
	"github.com/san-kum/gridlife/internal/life"
	"github.com/san-kum/gridlife/internal/metrics"
	"github.com/san-kum/gridlife/internal/scene"
	"github.com/san-kum/gridlife/internal/timeline"
)

// Build holds every intermediate product of a run.
type Build struct {
	Sequence   []*life.Grid
	Metrics    []metrics.Metric
	Schedule   *timeline.Schedule
	Animations []timeline.Animation
	Scene      *scene.Scene
}

// Result summarizes a rendered document.
type Result struct {
	Output      string
	Backend     string
	Generations int
	Rows, Cols  int
	Width       int
	Height      int
	Total       time.Duration
	Populations []int
	Metrics     map[string]float64
}

// Simulate produces cfg.Generations generations from initial, notifying
// observers of each one in order.
func Simulate(ctx context.Context, cfg *config.Config, initial *life.Grid, observers ...life.Observer) ([]*life.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := Logger()
	s := life.NewSequencer()
	s.SetWorkers(cfg.Workers)
	s.AddObserver(life.ObserverFunc(func(i int, g *life.Grid) {
		log.Debug("generation", "index", i, "population", g.Population())
	}))
	for _, o := range observers {
		s.AddObserver(o)
	}

	seq, err := s.Run(initial, cfg.Generations)
	if err != nil {
		return nil, err
	}
	log.Info("sequence ready", "generations", len(seq), "rows", initial.Rows(), "cols", initial.Cols())
	return seq, nil
}

// Assemble validates cfg and runs every stage up to the scene.
func Assemble(ctx context.Context, cfg *config.Config, initial *life.Grid) (*Build, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.CheckShape(initial); err != nil {
		return nil, err
	}

	ms := metrics.Defaults()
	seq, err := Simulate(ctx, cfg, initial, metrics.Observers(ms)...)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		Logger().Info("metric", "name", m.Name(), "value", m.Value())
	}

	sched, err := timeline.NewSchedule(len(seq), cfg.FrameDuration)
	if err != nil {
		return nil, err
	}
	enc, err := cfg.Encoder()
	if err != nil {
		return nil, err
	}
	anims, err := enc.Encode(sched)
	if err != nil {
		return nil, err
	}
	Logger().Info("timeline encoded", "mode", enc.Name(), "frame", sched.Frame(), "total", sched.Total())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc, err := scene.Emit(seq, anims, cfg.SceneLayout())
	if err != nil {
		return nil, err
	}

	return &Build{Sequence: seq, Metrics: ms, Schedule: sched, Animations: anims, Scene: sc}, nil
}

// Render loads cfg.Input, builds the animated document and saves it to
// cfg.Output.
func Render(ctx context.Context, cfg *config.Config) (*Result, error) {
	initial, err := life.LoadGrid(cfg.Input)
	if err != nil {
		return nil, err
	}

	b, err := Assemble(ctx, cfg, initial)
	if err != nil {
		return nil, err
	}

	backend, err := export.Backend(b.Scene)
	if err != nil {
		return nil, err
	}
	if err := export.SaveSVG(cfg.Output, b.Scene); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	Logger().Info("document written", "path", cfg.Output, "backend", backend)

	return &Result{
		Output:      cfg.Output,
		Backend:     backend,
		Generations: len(b.Sequence),
		Rows:        initial.Rows(),
		Cols:        initial.Cols(),
		Width:       b.Scene.Width,
		Height:      b.Scene.Height,
		Total:       b.Schedule.Total(),
		Populations: life.Populations(b.Sequence),
		Metrics:     values(b.Metrics),
	}, nil
}

func values(ms []metrics.Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
