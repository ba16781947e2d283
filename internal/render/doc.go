// Package render draws arranged grids for the terminal: an outline preview
// of every frame and a table listing the frames numerically.
package render
