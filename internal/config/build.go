package config

import (
	"fmt"
	"strconv"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/debug"
)

// Kind is the type of child a cell holds.
type Kind string

const (
	KindBox   Kind = "box"
	KindLabel Kind = "label"
	KindGrid  Kind = "grid"
)

// Built is a description turned into a live table.
type Built struct {
	Table *grid.Table
	Cells []*Node
}

// Node is a built cell.
type Node struct {
	Path     string
	Row, Col int
	Kind     Kind
	Child    grid.Child
	Nested   *Built // set for KindGrid
}

// Frame is a child frame in the coordinates of the outermost table.
type Frame struct {
	Path     string
	Kind     Kind
	Row, Col int
	Depth    int
	Rect     grid.Rect
	Visible  bool
	Lines    []string // wrapped text for labels
}

type visibility interface {
	SetVisible(visible bool)
}

// Build creates the table tree described by d. Coordinates outside the
// grid are reported as errors wrapping grid.ErrIndexOutOfRange.
func (d *Description) Build(opts ...grid.Option) (*Built, error) {
	return d.build("", opts)
}

func (d *Description) build(prefix string, opts []grid.Option) (*Built, error) {
	if d.Cols < 0 || d.Rows < 0 {
		return nil, fmt.Errorf("%sgrid is %dx%d: %w", at(prefix), d.Cols, d.Rows, ErrInvalid)
	}
	padding, err := d.edges()
	if err != nil {
		return nil, fmt.Errorf("%s%w", at(prefix), err)
	}
	origin, err := d.origin()
	if err != nil {
		return nil, fmt.Errorf("%s%w", at(prefix), err)
	}

	all := append([]grid.Option{
		grid.WithPadding(padding),
		grid.WithSpacing(d.Spacing.Horizontal, d.Spacing.Vertical),
		grid.WithOrigin(origin),
	}, opts...)
	b := &Built{Table: grid.NewTable(d.Cols, d.Rows, all...)}

	for _, r := range d.ScaleRows {
		if err := b.Table.SetRowScale(r, true); err != nil {
			return nil, fmt.Errorf("%sscale_rows: %w", at(prefix), err)
		}
	}
	for _, c := range d.ScaleColumns {
		if err := b.Table.SetColumnScale(c, true); err != nil {
			return nil, fmt.Errorf("%sscale_columns: %w", at(prefix), err)
		}
	}

	taken := make(map[[2]int]string, len(d.Cells))
	for i := range d.Cells {
		cell := &d.Cells[i]
		path := join(prefix, cell.name())

		node, err := cell.build(path)
		if err != nil {
			return nil, err
		}
		key := [2]int{cell.Row, cell.Col}
		if prev, ok := taken[key]; ok {
			return nil, fmt.Errorf("cell %s: (%d,%d) already holds %s: %w", path, cell.Row, cell.Col, prev, ErrInvalid)
		}
		if err := b.Table.Add(node.Child, cell.Row, cell.Col); err != nil {
			return nil, fmt.Errorf("cell %s: %w", path, err)
		}
		taken[key] = path
		b.Cells = append(b.Cells, node)
	}

	debug.Log("config: built %s%dx%d grid with %d cell(s)", at(prefix), d.Cols, d.Rows, len(b.Cells))
	return b, nil
}

func (c *Cell) name() string {
	if c.Name != "" {
		return c.Name
	}
	return "r" + strconv.Itoa(c.Row) + "c" + strconv.Itoa(c.Col)
}

func (c *Cell) build(path string) (*Node, error) {
	set := 0
	for _, ok := range []bool{c.Box != nil, c.Label != nil, c.Grid != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("cell %s: needs exactly one of box, label or grid: %w", path, ErrInvalid)
	}

	node := &Node{Path: path, Row: c.Row, Col: c.Col}
	switch {
	case c.Box != nil:
		if c.Box.Width < 0 || c.Box.Height < 0 {
			return nil, fmt.Errorf("cell %s: box is %dx%d: %w", path, c.Box.Width, c.Box.Height, ErrInvalid)
		}
		node.Kind, node.Child = KindBox, grid.NewBox(c.Box.Width, c.Box.Height)
	case c.Label != nil:
		node.Kind, node.Child = KindLabel, grid.NewLabel(*c.Label)
	default:
		nested, err := c.Grid.build(path, nil)
		if err != nil {
			return nil, err
		}
		node.Kind, node.Child, node.Nested = KindGrid, nested.Table, nested
	}

	if c.Hidden {
		node.Child.(visibility).SetVisible(false)
	}
	return node, nil
}

// Frames lists every cell in description order, nested cells following
// their grid, with rectangles translated into the outer table's space.
func (b *Built) Frames() []Frame {
	var out []Frame
	b.frames(0, 0, 0, &out)
	return out
}

func (b *Built) frames(dx, dy, depth int, out *[]Frame) {
	for _, n := range b.Cells {
		rect := n.Child.Frame().Translate(dx, dy)
		f := Frame{
			Path:    n.Path,
			Kind:    n.Kind,
			Row:     n.Row,
			Col:     n.Col,
			Depth:   depth,
			Rect:    rect,
			Visible: n.Child.Visible(),
		}
		if l, ok := n.Child.(*grid.Label); ok {
			f.Lines = l.Lines()
		}
		*out = append(*out, f)
		if n.Nested != nil {
			n.Nested.frames(rect.X, rect.Y, depth+1, out)
		}
	}
}

func at(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + ": "
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
