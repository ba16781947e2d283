package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
)

var (
	primary   = lipgloss.Color("#f7c0af")
	secondary = lipgloss.Color("#3ccad7")
	muted     = lipgloss.Color("#7f7f7f")

	titleStyle  = lipgloss.NewStyle().Foreground(primary).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(primary)
	valueStyle  = lipgloss.NewStyle().Foreground(secondary)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Foreground(primary).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted)
)

// Preview draws frames at size inside a rounded border under title.
func Preview(title string, frames []config.Frame, size grid.Size) string {
	canvas := Draw(frames, size).String()
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		frameStyle.Render(canvas),
	)
}

// Frames lists frames as a table with one row per cell. Nested cells are
// indented under their grid.
func Frames(frames []config.Frame) string {
	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		visible := "yes"
		if !f.Visible {
			visible = "no"
		}
		rows = append(rows, []string{
			strings.Repeat("  ", f.Depth) + f.Path,
			string(f.Kind),
			fmt.Sprintf("%d,%d", f.Row, f.Col),
			f.Rect.String(),
			visible,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("CELL", "KIND", "AT", "FRAME", "VISIBLE").
		Rows(rows...)
	return t.String()
}

// Extents formats column widths and row heights.
func Extents(widths, heights []int) string {
	return labelStyle.Render("columns ") + valueStyle.Render(ints(widths)) + "\n" +
		labelStyle.Render("rows    ") + valueStyle.Render(ints(heights))
}

// Size formats a measured or arranged size.
func Size(label string, s grid.Size) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(s.String())
}

// Stats formats the table counters on one line.
func Stats(s grid.Stats) string {
	return mutedStyle.Render(fmt.Sprintf(
		"measures=%d cache_hits=%d arranges=%d frame_updates=%d repaints=%d invalidations=%d deferred=%d",
		s.Measures, s.CacheHits, s.Arranges, s.FrameUpdates, s.Repaints, s.Invalidations, s.Deferred,
	))
}

func ints(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
