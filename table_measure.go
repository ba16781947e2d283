package grid

import (
	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/layout"
	"github.com/grindlemire/go-grid/internal/table"
)

// measureCache memoizes natural sizes. The unbounded query is kept in its
// own slot because hosts ask it far more often than any finite size; every
// other query shares the second slot.
type measureCache struct {
	unbounded    Size
	hasUnbounded bool

	key     Size
	value   Size
	hasLast bool
}

func (c *measureCache) lookup(key Size) (Size, bool) {
	if key.IsInfinite() {
		return c.unbounded, c.hasUnbounded
	}
	if c.hasLast && c.key == key {
		return c.value, true
	}
	return Size{}, false
}

func (c *measureCache) store(key, value Size) {
	if key.IsInfinite() {
		c.unbounded, c.hasUnbounded = value, true
		return
	}
	c.key, c.value, c.hasLast = key, value, true
}

func (c *measureCache) clear() {
	*c = measureCache{}
}

// normalize folds every unconstrained axis onto Infinite so that cache keys
// compare equal regardless of how the caller spelled "unbounded".
func normalize(s Size) Size {
	if s.WidthInfinite() {
		s.Width = layout.Infinite
	}
	if s.HeightInfinite() {
		s.Height = layout.Infinite
	}
	return s
}

// NaturalSize returns the size the table would like given available space.
// Either axis may be Infinite. Results are cached until the next
// invalidation.
func (t *Table) NaturalSize(available Size) Size {
	available = normalize(available)
	if size, ok := t.cache.lookup(available); ok {
		t.stats.CacheHits++
		return size
	}

	prev := t.enter(stateMeasuring)
	defer t.exit(prev)

	size := table.Calculate(t.model, available, false).Size
	t.cache.store(available, size)
	t.stats.Measures++
	debug.Log("grid: measure %dx%d table, available %v -> %v", t.model.Cols(), t.model.Rows(), available, size)
	return size
}
