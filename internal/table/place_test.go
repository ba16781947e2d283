package table

import (
	"testing"

	"github.com/grindlemire/go-grid/internal/layout"
)

func collect(m *Model, size layout.Size, flipY bool) map[Child]layout.Rect {
	res := Calculate(m, size, true)
	frames := make(map[Child]layout.Rect)
	Place(m, res.Widths, res.Heights, size, flipY, func(p Placement) {
		frames[p.Child] = p.Frame
	})
	return frames
}

func TestPlace(t *testing.T) {
	m := NewModel(2, 2, nil)
	fixed := newTestChild(50, 20)
	scaled := newTestChild(30, 30)
	mustAdd(m, fixed, 0, 0)
	mustAdd(m, scaled, 1, 1)

	frames := collect(m, layout.NewSize(300, 200), false)

	if got := frames[fixed]; got != layout.NewRect(0, 0, 50, 20) {
		t.Errorf("fixed frame = %v, want (0,0 50x20)", got)
	}
	if got := frames[scaled]; got != layout.NewRect(50, 20, 250, 180) {
		t.Errorf("scaled frame = %v, want (50,20 250x180)", got)
	}
}

func TestPlace_PaddingAndSpacing(t *testing.T) {
	m := NewModel(2, 2, nil)
	m.SetPadding(layout.EdgeTRBL(3, 0, 0, 4))
	m.SetSpacing(layout.Spacing{Horizontal: 2, Vertical: 1})
	a := newTestChild(10, 5)
	b := newTestChild(10, 5)
	mustAdd(m, a, 0, 0)
	mustAdd(m, b, 1, 1)

	frames := collect(m, layout.NewSize(40, 30), false)

	if got := frames[a]; got != layout.NewRect(4, 3, 10, 5) {
		t.Errorf("a frame = %v, want (4,3 10x5)", got)
	}
	// Column 1 starts after padding, column 0 and one gap.
	if got := frames[b]; got != layout.NewRect(16, 9, 24, 21) {
		t.Errorf("b frame = %v, want (16,9 24x21)", got)
	}
}

func TestPlace_FlipY(t *testing.T) {
	m := NewModel(1, 2, nil)
	top := newTestChild(10, 4)
	mustAdd(m, top, 0, 0)

	frames := collect(m, layout.NewSize(10, 50), true)

	if got := frames[top]; got != layout.NewRect(0, 46, 10, 4) {
		t.Errorf("flipped frame = %v, want (0,46 10x4)", got)
	}
}

func TestPlace_SkipsInvisibleAndEmpty(t *testing.T) {
	m := NewModel(3, 1, nil)
	hidden := newTestChild(10, 4)
	hidden.hidden = true
	shown := newTestChild(5, 4)
	mustAdd(m, hidden, 0, 0)
	mustAdd(m, shown, 0, 2)

	frames := collect(m, layout.NewSize(30, 4), false)

	if len(frames) != 1 {
		t.Fatalf("placed %d children, want 1", len(frames))
	}
	if _, ok := frames[hidden]; ok {
		t.Error("invisible child should not be placed")
	}
	// The hidden child contributes no width, so the shown child starts at 0.
	if got := frames[shown]; got != layout.NewRect(0, 0, 30, 4) {
		t.Errorf("shown frame = %v, want (0,0 30x4)", got)
	}
}

func TestPlace_Order(t *testing.T) {
	m := NewModel(2, 2, nil)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			mustAdd(m, newTestChild(1, 1), r, c)
		}
	}

	res := Calculate(m, layout.NewSize(4, 4), true)
	var order [][2]int
	Place(m, res.Widths, res.Heights, layout.NewSize(4, 4), false, func(p Placement) {
		order = append(order, [2]int{p.Row, p.Col})
	})

	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(order) != len(want) {
		t.Fatalf("placed %d cells, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("placement %d = %v, want %v", i, order[i], want[i])
		}
	}
}
