package layout

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if got := r.Right(); got != 25 {
		t.Errorf("Right() = %d, want 25", got)
	}
	if got := r.Bottom(); got != 25 {
		t.Errorf("Bottom() = %d, want 25", got)
	}
	if got := r.Size(); got != NewSize(20, 15) {
		t.Errorf("Size() = %v, want 20x15", got)
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer, inner Rect
		want         bool
	}

	tests := map[string]tc{
		"fully inside": {
			outer: NewRect(0, 0, 100, 100),
			inner: NewRect(10, 10, 20, 20),
			want:  true,
		},
		"same rect": {
			outer: NewRect(0, 0, 100, 100),
			inner: NewRect(0, 0, 100, 100),
			want:  true,
		},
		"overflows right": {
			outer: NewRect(0, 0, 100, 100),
			inner: NewRect(90, 0, 20, 20),
			want:  false,
		},
		"empty inner always contained": {
			outer: NewRect(0, 0, 10, 10),
			inner: NewRect(500, 500, 0, 0),
			want:  true,
		},
		"empty outer contains nothing": {
			outer: Rect{},
			inner: NewRect(0, 0, 1, 1),
			want:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	moved := NewRect(4, 1, 94, 46).Translate(10, -1)
	if moved != NewRect(14, 0, 94, 46) {
		t.Errorf("Translate() = %v, want (14,0 94x46)", moved)
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y int
		want bool
	}

	r := NewRect(10, 20, 5, 5)
	tests := map[string]tc{
		"top-left corner": {x: 10, y: 20, want: true},
		"inside":          {x: 12, y: 22, want: true},
		"last cell":       {x: 14, y: 24, want: true},
		"right edge":      {x: 15, y: 22, want: false},
		"bottom edge":     {x: 12, y: 25, want: false},
		"left of rect":    {x: 9, y: 22, want: false},
		"above rect":      {x: 12, y: 19, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
