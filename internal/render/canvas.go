package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

// continuation marks the second cell of a wide rune.
const continuation rune = 0

// Canvas is a fixed-size character grid. Drawing outside it is clipped.
type Canvas struct {
	bounds grid.Rect
	cells  [][]rune
}

// NewCanvas creates a blank canvas. Infinite or negative sizes are clamped
// to zero.
func NewCanvas(size grid.Size) *Canvas {
	w, h := clampAxis(size.Width), clampAxis(size.Height)
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", w))
	}
	return &Canvas{bounds: grid.NewRect(0, 0, w, h), cells: cells}
}

func clampAxis(v int) int {
	if v < 0 || v >= grid.Infinite {
		return 0
	}
	return v
}

func (c *Canvas) set(x, y int, r rune) {
	if !c.bounds.Contains(x, y) {
		return
	}
	c.cells[y][x] = r
}

// Outline draws the border of rect using the given lipgloss border runes.
// Rects narrower or shorter than two cells are filled instead.
func (c *Canvas) Outline(rect grid.Rect, b lipgloss.Border) {
	if rect.IsEmpty() {
		return
	}
	if rect.Width < 2 || rect.Height < 2 {
		fill := first(b.Top)
		for y := rect.Y; y < rect.Bottom(); y++ {
			for x := rect.X; x < rect.Right(); x++ {
				c.set(x, y, fill)
			}
		}
		return
	}

	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X + 1; x < right; x++ {
		c.set(x, rect.Y, first(b.Top))
		c.set(x, bottom, first(b.Bottom))
	}
	for y := rect.Y + 1; y < bottom; y++ {
		c.set(rect.X, y, first(b.Left))
		c.set(right, y, first(b.Right))
	}
	c.set(rect.X, rect.Y, first(b.TopLeft))
	c.set(right, rect.Y, first(b.TopRight))
	c.set(rect.X, bottom, first(b.BottomLeft))
	c.set(right, bottom, first(b.BottomRight))
}

// Text writes lines into rect, one per row, clipped to the rect.
// Wide runes that would straddle the right edge are dropped.
func (c *Canvas) Text(rect grid.Rect, lines []string) {
	for i, line := range lines {
		if i >= rect.Height {
			return
		}
		x, y := rect.X, rect.Y+i
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > rect.Right() {
				break
			}
			c.set(x, y, r)
			if w == 2 {
				c.set(x+1, y, continuation)
			}
			x += w
		}
	}
}

// String returns the canvas rows with trailing blanks trimmed.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var line strings.Builder
		for _, r := range row {
			if r != continuation {
				line.WriteRune(r)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
	}
	return sb.String()
}

// Draw renders frames onto a canvas of the given size. Boxes are outlined
// with a normal border, nested grids with a double border, and labels are
// written as text. Later frames draw over earlier ones, so nested cells
// appear on top of their grid. Hidden frames are skipped.
func Draw(frames []config.Frame, size grid.Size) *Canvas {
	c := NewCanvas(size)
	for _, f := range frames {
		if !f.Visible {
			continue
		}
		switch f.Kind {
		case config.KindBox:
			c.Outline(f.Rect, lipgloss.NormalBorder())
		case config.KindGrid:
			c.Outline(f.Rect, lipgloss.DoubleBorder())
		case config.KindLabel:
			c.Text(f.Rect, f.Lines)
		}
	}
	return c
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
