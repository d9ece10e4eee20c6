// Package visualize renders an interactive HTML report from a generation
// run: a heatmap of remaining possibilities per cell over time, a line
// chart of total remaining possibilities, and a bar chart of the weights
// carried by variants that survived to decide at least one cell.
//
// Recorder subscribes to an observer.Hub like any other Observer; nothing
// here reaches back into solver or wave state, so recording a run never
// affects its outcome.
package visualize
