// Package config loads declarative grid descriptions and builds them into
// tables.
//
// A description names the grid dimensions, padding, spacing, which rows and
// columns scale, and the cells. Each cell holds exactly one of a fixed-size
// box, a text label, or a nested grid:
//
//	cols = 2
//	rows = 2
//	padding = [1]
//	spacing = { horizontal = 1, vertical = 0 }
//	scale_columns = [1]
//
//	[[cells]]
//	name = "title"
//	row = 0
//	col = 0
//	label = "Name:"
//
//	[[cells]]
//	row = 1
//	col = 1
//	box = { width = 20, height = 3 }
//
// TOML files are decoded with go-toml, YAML files with yaml.v3. The same
// field names are used in both.
package config
