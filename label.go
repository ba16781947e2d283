package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	_ Child    = (*Label)(nil)
	_ Parented = (*Label)(nil)
)

// Label is a block of text that word-wraps to the width it is offered.
// Its preferred height therefore depends on the available width.
// Widths are measured in terminal cells, so wide runes count double.
type Label struct {
	text   string
	hidden bool
	frame  Rect
	parent Invalidator
}

// NewLabel creates a visible label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and invalidates the owner.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	if l.parent != nil {
		l.parent.InvalidateMeasure()
	}
}

// PreferredSize returns the size of the text wrapped to available.Width.
// With an unbounded width only explicit newlines break lines.
func (l *Label) PreferredSize(available Size) Size {
	if l.text == "" {
		return Size{}
	}
	width := 0
	if !available.WidthInfinite() {
		width = available.Width
	}
	lines := Wrap(l.text, width)
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return NewSize(w, len(lines))
}

// Lines returns the text wrapped to the label's current frame width.
func (l *Label) Lines() []string {
	return Wrap(l.text, l.frame.Width)
}

// Visible reports whether the label takes part in layout.
func (l *Label) Visible() bool { return !l.hidden }

// SetVisible shows or hides the label. A hidden label keeps its cell.
func (l *Label) SetVisible(visible bool) {
	if visible == !l.hidden {
		return
	}
	l.hidden = !visible
	if l.parent != nil {
		l.parent.InvalidateMeasure()
	}
}

// SetFrame stores the frame assigned by the owner.
func (l *Label) SetFrame(frame Rect) { l.frame = frame }

// Frame returns the frame last assigned by the owner.
func (l *Label) Frame() Rect { return l.frame }

// SetParent links the label to its owner.
func (l *Label) SetParent(parent Invalidator) { l.parent = parent }

// Wrap breaks text into lines no wider than width cells, splitting at
// spaces where possible and inside words that are longer than a line.
// A width of zero or less disables wrapping; explicit newlines always
// break.
func Wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	col := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if col > 0 && col+1+ww <= width {
			line.WriteByte(' ')
			line.WriteString(word)
			col += 1 + ww
			continue
		}
		if col > 0 {
			flush()
		}
		if ww <= width {
			line.WriteString(word)
			col = ww
			continue
		}
		// Hard-break a word wider than the line.
		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if col > 0 && col+rw > width {
				flush()
			}
			line.WriteRune(r)
			col += rw
		}
	}
	if col > 0 {
		flush()
	}
	return lines
}
