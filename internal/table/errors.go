package table

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a row or column lies outside the grid.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes a rejected grid coordinate. Axis is "row" or
// "column" when the operation addresses a single axis and empty for a cell.
type IndexError struct {
	Op         string
	Axis       string
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	switch e.Axis {
	case "row":
		return fmt.Sprintf("table: %s row %d: %v (rows=%d)", e.Op, e.Row, ErrIndexOutOfRange, e.Rows)
	case "column":
		return fmt.Sprintf("table: %s column %d: %v (cols=%d)", e.Op, e.Col, ErrIndexOutOfRange, e.Cols)
	default:
		return fmt.Sprintf("table: %s cell (%d,%d): %v (rows=%d, cols=%d)", e.Op, e.Row, e.Col, ErrIndexOutOfRange, e.Rows, e.Cols)
	}
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
