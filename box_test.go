package grid

import "testing"

func TestBox(t *testing.T) {
	owner := &countingOwner{}
	b := NewBox(3, 4)
	b.SetParent(owner)

	if got := b.PreferredSize(NewSize(1, 1)); got != NewSize(3, 4) {
		t.Errorf("PreferredSize() = %v, want 3x4", got)
	}

	b.SetSize(3, 4)
	b.SetVisible(true)
	if owner.n != 0 {
		t.Errorf("no-op changes invalidated %d times, want 0", owner.n)
	}

	b.SetSize(5, 5)
	b.SetVisible(false)
	if owner.n != 2 {
		t.Errorf("invalidated %d times, want 2", owner.n)
	}
	if b.Visible() {
		t.Error("box should be hidden")
	}

	b.SetParent(nil)
	b.SetSize(1, 1)
	if owner.n != 2 {
		t.Error("detached box should not reach its former owner")
	}
}
