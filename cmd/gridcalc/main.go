// Package main provides gridcalc, a command-line front end for the grid
// layout engine.
//
// Usage:
//
//	gridcalc measure <file>     Print the natural size of a grid description
//	gridcalc arrange <file>     Arrange a grid and list every frame
//	gridcalc preview <file>     Draw the arranged grid as outlines
//	gridcalc watch <file>       Redraw the preview whenever the file changes
//
// Descriptions are TOML (.toml) or YAML (.yaml, .yml). Width and height
// default to unbounded; pass --width and --height to constrain them.
//
// Examples:
//
//	gridcalc measure form.toml --width 40
//	gridcalc arrange form.toml --width 80 --height 24
//	gridcalc preview form.yaml -W 60 -H 20
//	gridcalc watch form.toml --log /tmp/grid.log
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
