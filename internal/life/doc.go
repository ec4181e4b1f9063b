// Package life provides the cellular automaton core used to animate a
// contribution calendar.
//
// The package defines:
//
//   - [Grid]: an immutable rectangular matrix of live/dead cells
//   - [Step]: one Game of Life generation on a toroidal grid
//   - [Sequencer]: runs Step repeatedly and collects every generation
//   - [ParseGrid]: reads the 0/1 text format written by the calendar fetcher
//
// # Example
//
//	g, _ := life.ParseGrid(strings.NewReader("010\n111\n000\n"))
//	seq, _ := life.Run(g, 20)
//
// # Thread Safety
//
// Grids are never modified after construction and may be shared freely.
// A Sequencer is NOT thread-safe; observers are called synchronously.
package life
