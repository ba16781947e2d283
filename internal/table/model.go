package table

import "github.com/grindlemire/go-grid/internal/layout"

// Model is a fixed rows×cols matrix of optional children.
//
// A child occupies at most one cell at a time. The model does not own its
// children: removing one only detaches it.
type Model struct {
	rows, cols int
	cells      [][]Child

	rowScale AxisScale
	colScale AxisScale

	padding layout.Edges
	spacing layout.Spacing

	// owner is handed to Parented children as their back-reference.
	owner Invalidator
}

// NewModel creates an empty model. Negative dimensions are treated as zero.
// owner may be nil.
func NewModel(cols, rows int, owner Invalidator) *Model {
	cols, rows = max(cols, 0), max(rows, 0)
	m := &Model{
		rows:     rows,
		cols:     cols,
		cells:    make([][]Child, rows),
		rowScale: NewAxisScale(rows),
		colScale: NewAxisScale(cols),
		owner:    owner,
	}
	for r := range m.cells {
		m.cells[r] = make([]Child, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m *Model) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Model) Cols() int { return m.cols }

// RowScale returns the row axis scale flags.
func (m *Model) RowScale() AxisScale { return m.rowScale }

// ColumnScale returns the column axis scale flags.
func (m *Model) ColumnScale() AxisScale { return m.colScale }

// Padding returns the insets around the grid.
func (m *Model) Padding() layout.Edges { return m.padding }

// SetPadding replaces the insets around the grid.
func (m *Model) SetPadding(p layout.Edges) { m.padding = p }

// Spacing returns the gaps between rows and columns.
func (m *Model) Spacing() layout.Spacing { return m.spacing }

// SetSpacing replaces the gaps between rows and columns.
func (m *Model) SetSpacing(s layout.Spacing) { m.spacing = s }

// At returns the occupant of a cell, or nil for an empty or out of range cell.
func (m *Model) At(row, col int) Child {
	if !m.inRange(row, col) {
		return nil
	}
	return m.cells[row][col]
}

// Find returns the cell holding child.
func (m *Model) Find(child Child) (row, col int, ok bool) {
	if child == nil {
		return 0, 0, false
	}
	for r := range m.cells {
		for c, occupant := range m.cells[r] {
			if occupant == child {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Add places child at (row, col). A different occupant of that cell is
// detached first; a nil child clears the cell. If child already sits in
// another cell it is moved.
func (m *Model) Add(child Child, row, col int) error {
	if err := m.checkCell("add", row, col); err != nil {
		return err
	}
	m.place(child, row, col)
	return nil
}

// Move places child at (row, col), vacating any cell it held before.
// Whatever occupied the target is detached, as with Add.
func (m *Model) Move(child Child, row, col int) error {
	if err := m.checkCell("move", row, col); err != nil {
		return err
	}
	m.place(child, row, col)
	return nil
}

// Remove detaches child from the grid. It reports whether the child was
// found.
func (m *Model) Remove(child Child) bool {
	r, c, ok := m.Find(child)
	if !ok {
		return false
	}
	m.cells[r][c] = nil
	m.detach(child)
	return true
}

// SetRowScale flags or unflags a row as scaled.
func (m *Model) SetRowScale(row int, scaled bool) error {
	if row < 0 || row >= m.rows {
		return &IndexError{Op: "scale", Axis: "row", Row: row, Rows: m.rows, Cols: m.cols}
	}
	m.rowScale.set(row, scaled)
	return nil
}

// SetColumnScale flags or unflags a column as scaled.
func (m *Model) SetColumnScale(col int, scaled bool) error {
	if col < 0 || col >= m.cols {
		return &IndexError{Op: "scale", Axis: "column", Col: col, Rows: m.rows, Cols: m.cols}
	}
	m.colScale.set(col, scaled)
	return nil
}

// Each calls fn for every occupied cell in row-major order.
func (m *Model) Each(fn func(row, col int, child Child)) {
	for r := range m.cells {
		for c, child := range m.cells[r] {
			if child != nil {
				fn(r, c, child)
			}
		}
	}
}

func (m *Model) place(child Child, row, col int) {
	if child != nil {
		if r, c, ok := m.Find(child); ok {
			m.cells[r][c] = nil
		}
	}
	if prev := m.cells[row][col]; prev != nil && prev != child {
		m.detach(prev)
	}
	m.cells[row][col] = child
	if p, ok := child.(Parented); ok {
		p.SetParent(m.owner)
	}
}

func (m *Model) detach(child Child) {
	if p, ok := child.(Parented); ok {
		p.SetParent(nil)
	}
}

func (m *Model) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Model) checkCell(op string, row, col int) error {
	if !m.inRange(row, col) {
		return &IndexError{Op: op, Row: row, Col: col, Rows: m.rows, Cols: m.cols}
	}
	return nil
}
