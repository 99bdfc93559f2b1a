package spantable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Every structured error
// and warning below unwraps to one of these.
var (
	ErrOverlap        = errors.New("overlapping placements")
	ErrTooManyCells   = errors.New("too many cells in row")
	ErrPartialRow     = errors.New("partial row")
	ErrInvariant      = errors.New("invariant violation")
	ErrBudgetExceeded = errors.New("width budget exceeded")
	ErrWrap           = errors.New("degenerate wrap width")
)

// Position addresses a physical grid position.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// OverlapError reports a cell whose rectangle collides with a placement
// made by an earlier row.
type OverlapError struct {
	// Row is the logical row index (the header, when present, is row 0).
	Row int
	// Cell is the index of the offending cell within its logical row.
	Cell int
	// Positions lists the physical positions claimed twice.
	Positions []Position
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: row %d cell %d collides at %v", ErrOverlap, e.Row, e.Cell, e.Positions)
}

func (e *OverlapError) Unwrap() error { return ErrOverlap }

// TooManyCellsError reports a logical row that supplies more cells (or wider
// colspans) than there are free positions.
type TooManyCellsError struct {
	Row       int
	Cell      int
	Available int
}

func (e *TooManyCellsError) Error() string {
	return fmt.Sprintf("%s: row %d cell %d does not fit in %d free columns", ErrTooManyCells, e.Row, e.Cell, e.Available)
}

func (e *TooManyCellsError) Unwrap() error { return ErrTooManyCells }

// PartialRowError reports a logical row that leaves positions uncovered by
// both its own cells and rowspans from above.
type PartialRowError struct {
	Row     int
	Missing []int
}

func (e *PartialRowError) Error() string {
	return fmt.Sprintf("%s: row %d leaves columns %v empty", ErrPartialRow, e.Row, e.Missing)
}

func (e *PartialRowError) Unwrap() error { return ErrPartialRow }

// InvariantViolation means the border renderer met a neighbourhood that a
// valid occupancy grid cannot produce. It indicates a bug, not bad input.
type InvariantViolation struct {
	At     Position
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s at junction %s: %s", ErrInvariant, e.At, e.Detail)
}

func (e *InvariantViolation) Unwrap() error { return ErrInvariant }

// BudgetExceededWarning is returned alongside a render when the column
// minimums do not fit in the requested width. The table is rendered at
// Actual columns instead of Requested.
type BudgetExceededWarning struct {
	Requested int
	Actual    int
}

func (w *BudgetExceededWarning) Error() string {
	return fmt.Sprintf("%s: requested width %d, rendered %d", ErrBudgetExceeded, w.Requested, w.Actual)
}

func (w *BudgetExceededWarning) Unwrap() error { return ErrBudgetExceeded }

// WrapWarning is returned alongside a render when a cell had no room for
// content and fell back to one character per line.
type WrapWarning struct {
	Row   int
	Col   int
	Width int
}

func (w *WrapWarning) Error() string {
	return fmt.Sprintf("%s: cell %s has effective width %d", ErrWrap, Position{w.Row, w.Col}, w.Width)
}

func (w *WrapWarning) Unwrap() error { return ErrWrap }
