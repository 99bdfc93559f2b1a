package spantable

import "strings"

// Cell is a single logical cell. The zero value is an empty one-by-one cell
// that inherits every style attribute.
type Cell struct {
	// Content is an ordered sequence of text segments, concatenated when
	// rendered. Segments may carry style markers understood by the table's
	// Measurer.
	Content []string
	// Colspan is the number of columns covered, hidden ones included.
	// Values below 1 mean 1.
	Colspan int
	// Rowspan is the number of rows covered. Values below 1 mean 1.
	Rowspan int
	// Align overrides the column and table horizontal alignment.
	Align Alignment
	// VAlign overrides the column and table vertical alignment.
	VAlign VerticalAlignment
	// Padding overrides the column and table padding when non-nil.
	Padding *Padding
}

// NewCell returns a cell holding the given segments.
func NewCell(segments ...string) Cell {
	return Cell{Content: segments}
}

// Cells converts plain strings into single-span cells.
func Cells(values ...string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = NewCell(v)
	}
	return out
}

// WithColspan returns a copy of c spanning n columns.
func (c Cell) WithColspan(n int) Cell {
	c.Colspan = n
	return c
}

// WithRowspan returns a copy of c spanning n rows.
func (c Cell) WithRowspan(n int) Cell {
	c.Rowspan = n
	return c
}

// WithAlign returns a copy of c with a horizontal alignment override.
func (c Cell) WithAlign(a Alignment) Cell {
	c.Align = a
	return c
}

// WithVAlign returns a copy of c with a vertical alignment override.
func (c Cell) WithVAlign(v VerticalAlignment) Cell {
	c.VAlign = v
	return c
}

// WithPadding returns a copy of c with a padding override.
func (c Cell) WithPadding(p Padding) Cell {
	c.Padding = &p
	return c
}

// Text returns the concatenated content.
func (c Cell) Text() string { return strings.Join(c.Content, "") }

func (c Cell) colspan() int { return max(c.Colspan, 1) }

func (c Cell) rowspan() int { return max(c.Rowspan, 1) }
