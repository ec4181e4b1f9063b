// Package viz renders generation sequences in the terminal.
//
// It backs the preview and plot commands:
//
//   - [RenderGrid]: one generation as colored cells
//   - [Player]: Bubble Tea model that plays a sequence at frame rate
//   - [PopulationPlot]: live-cell count per generation as an ASCII chart
//
// # Key Bindings
//
//	Space      - Pause/Resume playback
//	Left/Right - Step one generation back or forward
//	R          - Rewind to generation 0
//	L          - Toggle looping
//	T          - Cycle color themes
//	Q          - Quit
package viz
