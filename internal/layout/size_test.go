package layout

import "testing"

func TestSize_Sub(t *testing.T) {
	type tc struct {
		a, b Size
		want Size
	}

	tests := map[string]tc{
		"finite": {
			a:    NewSize(100, 50),
			b:    NewSize(30, 20),
			want: NewSize(70, 30),
		},
		"floors at zero": {
			a:    NewSize(10, 10),
			b:    NewSize(50, 20),
			want: NewSize(0, 0),
		},
		"infinite absorbs": {
			a:    NewSize(Infinite, 40),
			b:    NewSize(30, 10),
			want: NewSize(Infinite, 30),
		},
		"both infinite": {
			a:    Unbounded(),
			b:    NewSize(5, 5),
			want: Unbounded(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Sub(tt.b); got != tt.want {
				t.Errorf("Sub() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSize_Add(t *testing.T) {
	type tc struct {
		a, b Size
		want Size
	}

	tests := map[string]tc{
		"finite": {
			a:    NewSize(1, 2),
			b:    NewSize(3, 4),
			want: NewSize(4, 6),
		},
		"infinite on one side": {
			a:    NewSize(Infinite, 2),
			b:    NewSize(3, 4),
			want: NewSize(Infinite, 6),
		},
		"saturates": {
			a:    NewSize(Infinite-1, 0),
			b:    NewSize(10, 0),
			want: NewSize(Infinite, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSize_Infinite(t *testing.T) {
	s := NewSize(Infinite, 10)
	if !s.WidthInfinite() {
		t.Error("WidthInfinite() = false, want true")
	}
	if s.HeightInfinite() {
		t.Error("HeightInfinite() = true, want false")
	}
	if s.IsInfinite() {
		t.Error("IsInfinite() = true, want false")
	}
	if !s.HasInfinite() {
		t.Error("HasInfinite() = false, want true")
	}
	if !Unbounded().IsInfinite() {
		t.Error("Unbounded().IsInfinite() = false, want true")
	}
	if got := s.String(); got != "infx10" {
		t.Errorf("String() = %q, want %q", got, "infx10")
	}
}

func TestEdges(t *testing.T) {
	type tc struct {
		edges      Edges
		horizontal int
		vertical   int
	}

	tests := map[string]tc{
		"EdgeAll": {
			edges:      EdgeAll(5),
			horizontal: 10,
			vertical:   10,
		},
		"EdgeSymmetric": {
			edges:      EdgeSymmetric(10, 20),
			horizontal: 40,
			vertical:   20,
		},
		"EdgeTRBL": {
			edges:      EdgeTRBL(1, 2, 3, 4),
			horizontal: 6,
			vertical:   4,
		},
		"zero edges": {
			edges: Edges{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.edges.Horizontal(); got != tt.horizontal {
				t.Errorf("Horizontal() = %d, want %d", got, tt.horizontal)
			}
			if got := tt.edges.Vertical(); got != tt.vertical {
				t.Errorf("Vertical() = %d, want %d", got, tt.vertical)
			}
			if got := tt.edges.Size(); got != NewSize(tt.horizontal, tt.vertical) {
				t.Errorf("Size() = %v, want %dx%d", got, tt.horizontal, tt.vertical)
			}
		})
	}
}

func TestSpacing_Gaps(t *testing.T) {
	type tc struct {
		spacing    Spacing
		cols, rows int
		want       Size
	}

	tests := map[string]tc{
		"three by two": {
			spacing: Spacing{Horizontal: 4, Vertical: 2},
			cols:    3,
			rows:    2,
			want:    NewSize(8, 2),
		},
		"single slot has no gap": {
			spacing: Spacing{Horizontal: 4, Vertical: 2},
			cols:    1,
			rows:    1,
			want:    NewSize(0, 0),
		},
		"empty axis has no gap": {
			spacing: Spacing{Horizontal: 4, Vertical: 2},
			cols:    0,
			rows:    0,
			want:    NewSize(0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.spacing.Gaps(tt.cols, tt.rows); got != tt.want {
				t.Errorf("Gaps(%d, %d) = %v, want %v", tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}
