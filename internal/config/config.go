package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	grid "github.com/grindlemire/go-grid"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown description format")
	// ErrInvalid is returned for descriptions that parse but cannot be built.
	ErrInvalid = errors.New("invalid grid description")
)

// Format selects the decoder for a description.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Description is a declarative grid.
type Description struct {
	Cols         int     `toml:"cols" yaml:"cols"`
	Rows         int     `toml:"rows" yaml:"rows"`
	Padding      []int   `toml:"padding,omitempty" yaml:"padding,omitempty"`
	Spacing      Spacing `toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	ScaleRows    []int   `toml:"scale_rows,omitempty" yaml:"scale_rows,omitempty"`
	ScaleColumns []int   `toml:"scale_columns,omitempty" yaml:"scale_columns,omitempty"`
	// Origin is "top-left" (default) or "bottom-left".
	Origin string `toml:"origin,omitempty" yaml:"origin,omitempty"`
	Cells  []Cell `toml:"cells,omitempty" yaml:"cells,omitempty"`
}

// Spacing is the gap between columns and between rows.
type Spacing struct {
	Horizontal int `toml:"horizontal" yaml:"horizontal"`
	Vertical   int `toml:"vertical" yaml:"vertical"`
}

// Cell places one child. Exactly one of Box, Label or Grid must be set.
type Cell struct {
	Name   string       `toml:"name,omitempty" yaml:"name,omitempty"`
	Row    int          `toml:"row" yaml:"row"`
	Col    int          `toml:"col" yaml:"col"`
	Hidden bool         `toml:"hidden,omitempty" yaml:"hidden,omitempty"`
	Box    *BoxSize     `toml:"box,omitempty" yaml:"box,omitempty"`
	Label  *string      `toml:"label,omitempty" yaml:"label,omitempty"`
	Grid   *Description `toml:"grid,omitempty" yaml:"grid,omitempty"`
}

// BoxSize is the preferred size of a fixed box.
type BoxSize struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads and decodes the description at path.
func Load(path string) (*Description, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a description in the given format.
func Parse(data []byte, format Format) (*Description, error) {
	var d Description
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &d, nil
}

// Encode writes the description back out in the given format.
func (d *Description) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(d)
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// edges converts the padding list. One value pads every side, two are
// vertical then horizontal, four are top, right, bottom, left.
func (d *Description) edges() (grid.Edges, error) {
	p := d.Padding
	switch len(p) {
	case 0:
		return grid.Edges{}, nil
	case 1:
		return grid.EdgeAll(p[0]), nil
	case 2:
		return grid.EdgeSymmetric(p[0], p[1]), nil
	case 4:
		return grid.EdgeTRBL(p[0], p[1], p[2], p[3]), nil
	default:
		return grid.Edges{}, fmt.Errorf("padding takes 1, 2 or 4 values, got %d: %w", len(p), ErrInvalid)
	}
}

func (d *Description) origin() (grid.Origin, error) {
	switch d.Origin {
	case "", "top-left":
		return grid.OriginTopLeft, nil
	case "bottom-left":
		return grid.OriginBottomLeft, nil
	default:
		return 0, fmt.Errorf("origin %q: %w", d.Origin, ErrInvalid)
	}
}
