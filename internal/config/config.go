package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridlife/internal/life"
	"github.com/san-kum/gridlife/internal/scene"
	"github.com/san-kum/gridlife/internal/timeline"
)

const (
	DefaultRows          = 7
	DefaultCols          = 52
	DefaultCellSize      = 10
	DefaultSpacing       = 3
	DefaultGenerations   = 20
	DefaultFrameDuration = 200 * time.Millisecond
	DefaultAlive         = "#26a641"
	DefaultDead          = "#161b22"
	DefaultInput         = "grid.txt"
	DefaultOutput        = "animated_game_of_life.svg"
)

type Config struct {
	Input         string        `yaml:"input"`
	Output        string        `yaml:"output"`
	Rows          int           `yaml:"rows"`
	Cols          int           `yaml:"cols"`
	Generations   int           `yaml:"generations"`
	FrameDuration time.Duration `yaml:"frame_duration"`
	Mode          string        `yaml:"mode"`
	Epsilon       float64       `yaml:"epsilon"`
	Workers       int           `yaml:"workers"`
	Layout        LayoutConfig  `yaml:"layout"`
}

type LayoutConfig struct {
	CellSize int    `yaml:"cell_size"`
	Spacing  int    `yaml:"spacing"`
	Alive    string `yaml:"alive"`
	Dead     string `yaml:"dead"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:         DefaultInput,
		Output:        DefaultOutput,
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		Generations:   DefaultGenerations,
		FrameDuration: DefaultFrameDuration,
		Mode:          timeline.ModeDiscrete,
		Epsilon:       timeline.DefaultEpsilon,
		Workers:       1,
		Layout: LayoutConfig{
			CellSize: DefaultCellSize,
			Spacing:  DefaultSpacing,
			Alive:    DefaultAlive,
			Dead:     DefaultDead,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep their
// defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first parameter outside its valid range.
func (c *Config) Validate() error {
	if c.Generations < 1 {
		return life.Misconfigured("generations", c.Generations, "must be at least 1")
	}
	if c.FrameDuration <= 0 {
		return life.Misconfigured("frame_duration", c.FrameDuration, "must be positive")
	}
	if c.Rows < 0 || c.Cols < 0 {
		return life.Misconfigured("rows/cols", [2]int{c.Rows, c.Cols}, "must not be negative")
	}
	if c.Workers < 0 {
		return life.Misconfigured("workers", c.Workers, "must not be negative")
	}
	if _, err := c.Encoder(); err != nil {
		return life.Misconfigured("mode", c.Mode, err.Error())
	}
	if c.Mode == timeline.ModeCyclic && (c.Epsilon < timeline.MinEpsilon || c.Epsilon >= 1) {
		return life.Misconfigured("epsilon", c.Epsilon, "must be within [1e-6, 1)")
	}
	return c.SceneLayout().Validate()
}

// SceneLayout converts the layout section for the scene emitter.
func (c *Config) SceneLayout() scene.Layout {
	return scene.Layout{
		CellSize: c.Layout.CellSize,
		Spacing:  c.Layout.Spacing,
		Alive:    c.Layout.Alive,
		Dead:     c.Layout.Dead,
	}
}

// Encoder returns the timeline encoder selected by Mode.
func (c *Config) Encoder() (timeline.Encoder, error) {
	return timeline.NewEncoder(c.Mode, timeline.Options{Epsilon: c.Epsilon})
}

// CheckShape rejects a grid whose size differs from the configured one. A
// zero Rows or Cols accepts any size.
func (c *Config) CheckShape(g *life.Grid) error {
	if c.Rows > 0 && g.Rows() != c.Rows {
		return life.Invalid("grid has %d rows, configured %d", g.Rows(), c.Rows)
	}
	if c.Cols > 0 && g.Cols() != c.Cols {
		return life.Invalid("grid has %d columns, configured %d", g.Cols(), c.Cols)
	}
	return nil
}
