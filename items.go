package spantable

import "fmt"

// --- Item interfaces ---

// Rower provides the cells of one row as plain text. FromItems requires it
// unless the type implements Celled.
type Rower interface {
	Row() []string
}

// Celled provides fully specified cells and takes precedence over Rower.
type Celled interface {
	Cells() []Cell
}

// Headed provides the header row.
// Without it, the table has no header.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Bordered selects the border preset.
// Default: ASCIIFull.
type Bordered interface {
	Border() Preset
}

// Spanned gives the colspan of each cell returned by Row. Missing or zero
// entries mean 1. The spans of one item may differ from the next.
type Spanned interface {
	Spans() []int
}

// Constrained sets per-column width constraints.
// Default: unconstrained.
type Constrained interface {
	Constraints() []Constraint
}

// IsSupported reports whether FromItems accepts values of type T.
func IsSupported[T any]() bool {
	var zero T
	v := any(zero)
	_, rower := v.(Rower)
	_, celled := v.(Celled)
	return rower || celled
}

// FromItems builds a table with one row per item. Table-wide settings
// (header, alignment, border, constraints) are read from the first item.
func FromItems[T any](items ...T) (*Table, error) {
	t := New()
	if len(items) == 0 {
		return t, nil
	}
	first := any(items[0])
	_, rower := first.(Rower)
	_, celled := first.(Celled)
	if !rower && !celled {
		return nil, fmt.Errorf("%w: FromItems requires Rower or Celled, not implemented by %T", ErrMissingInterface, items[0])
	}

	if h, ok := first.(Headed); ok {
		t.SetHeaderStrings(h.Header()...)
	}
	if b, ok := first.(Bordered); ok {
		t.SetPreset(b.Border())
	}
	for _, item := range items {
		t.AddRow(itemCells(any(item))...)
	}
	if a, ok := first.(Aligned); ok {
		for i, align := range a.Alignments() {
			t.Column(i).SetAlign(align)
		}
	}
	if c, ok := first.(Constrained); ok {
		t.SetConstraints(c.Constraints()...)
	}
	return t, nil
}

func itemCells(item any) []Cell {
	if c, ok := item.(Celled); ok {
		return c.Cells()
	}
	cells := Cells(item.(Rower).Row()...)
	if s, ok := item.(Spanned); ok {
		for i, n := range s.Spans() {
			if i < len(cells) {
				cells[i].Colspan = n
			}
		}
	}
	return cells
}
