// Package metrics summarizes a generation sequence while it is produced.
// Every metric is a life.Observer.
package metrics

import "github.com/san-kum/gridlife/internal/life"

type Metric interface {
	life.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns a fresh instance of every metric.
func Defaults() []Metric {
	return []Metric{NewPopulation(), NewChurn(), NewStability()}
}

// Observers adapts metrics for life.Sequencer.AddObserver.
func Observers(ms []Metric) []life.Observer {
	out := make([]life.Observer, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}
