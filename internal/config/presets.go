package config

import (
	"sort"
	"time"

	"github.com/san-kum/gridlife/internal/timeline"
)

var githubLayout = LayoutConfig{CellSize: DefaultCellSize, Spacing: DefaultSpacing, Alive: DefaultAlive, Dead: DefaultDead}

var Presets = map[string]*Config{
	"github": {
		Rows: DefaultRows, Cols: DefaultCols, Generations: 20, FrameDuration: 200 * time.Millisecond,
		Mode: timeline.ModeDiscrete, Layout: githubLayout,
	},
	"loop": {
		Rows: DefaultRows, Cols: DefaultCols, Generations: 30, FrameDuration: 250 * time.Millisecond,
		Mode: timeline.ModeCyclic, Epsilon: timeline.DefaultEpsilon, Layout: githubLayout,
	},
	"slow": {
		Rows: DefaultRows, Cols: DefaultCols, Generations: 10, FrameDuration: time.Second,
		Mode: timeline.ModeDiscrete, Layout: githubLayout,
	},
	"fast": {
		Rows: DefaultRows, Cols: DefaultCols, Generations: 60, FrameDuration: 100 * time.Millisecond,
		Mode: timeline.ModeCyclic, Epsilon: timeline.DefaultEpsilon, Layout: githubLayout,
	},
	"images": {
		Rows: DefaultRows, Cols: DefaultCols, Generations: 20, FrameDuration: 200 * time.Millisecond,
		Mode: timeline.ModeDiscrete,
		Layout: LayoutConfig{
			CellSize: DefaultCellSize, Spacing: DefaultSpacing,
			Alive: "full_alive_green.png", Dead: "base_grid_unit.svg",
		},
	},
}

// GetPreset returns a copy of the named preset with the default input and
// output paths, or nil when it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Input = DefaultInput
	cfg.Output = DefaultOutput
	cfg.Workers = 1
	if cfg.Epsilon == 0 {
		cfg.Epsilon = timeline.DefaultEpsilon
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
