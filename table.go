package spantable

import (
	"errors"
	"strings"
)

// Table is a mutable description of a table: an optional header row, body
// rows, column definitions and table-wide defaults. Rendering never modifies
// it, so the same Table renders identically until it is changed.
//
// A Table must not be mutated while another goroutine renders it.
type Table struct {
	header    []Cell
	hasHeader bool
	rows      [][]Cell
	columns   []*Column

	width       WidthSource
	preset      Preset
	align       Alignment
	valign      VerticalAlignment
	padding     *Padding
	arrangement Arrangement
	measurer    Measurer
}

// New returns an empty table with the ASCIIFull preset, no target width and
// the ANSI measurer.
func New() *Table {
	return &Table{preset: ASCIIFull, measurer: ANSI}
}

// SetHeader sets the header row. It is rendered first and separated from the
// body by the preset's header line.
func (t *Table) SetHeader(cells ...Cell) *Table {
	t.header = cells
	t.hasHeader = true
	t.ensureColumns(rowWidth(cells))
	return t
}

// SetHeaderStrings is SetHeader for plain text cells.
func (t *Table) SetHeaderStrings(values ...string) *Table {
	return t.SetHeader(Cells(values...)...)
}

// AddRow appends a logical row. Positions covered by rowspans from earlier
// rows must be left out: cells fill the remaining columns left to right.
// Hidden columns count like any other; their content is dropped at render
// time.
func (t *Table) AddRow(cells ...Cell) *Table {
	t.rows = append(t.rows, cells)
	t.ensureColumns(rowWidth(cells))
	return t
}

// AddStrings appends a row of plain text cells.
func (t *Table) AddStrings(values ...string) *Table {
	return t.AddRow(Cells(values...)...)
}

// AddRows appends several logical rows.
func (t *Table) AddRows(rows ...[]Cell) *Table {
	for _, row := range rows {
		t.AddRow(row...)
	}
	return t
}

// Header returns the header row and whether one is set.
func (t *Table) Header() ([]Cell, bool) { return t.header, t.hasHeader }

// Rows returns the body rows.
func (t *Table) Rows() [][]Cell { return t.rows }

// Column returns the column with logical index i, creating it and any
// columns before it.
func (t *Table) Column(i int) *Column {
	for len(t.columns) <= i {
		t.columns = append(t.columns, &Column{index: len(t.columns)})
	}
	return t.columns[i]
}

// Columns returns every declared column, hidden ones included.
func (t *Table) Columns() []*Column { return t.columns }

// SetColumns declares n columns up front. Existing columns keep their
// settings.
func (t *Table) SetColumns(n int) *Table {
	if n > 0 {
		t.Column(n - 1)
	}
	return t
}

// SetConstraint sets the width constraint of column i.
func (t *Table) SetConstraint(i int, c Constraint) *Table {
	t.Column(i).SetConstraint(c)
	return t
}

// SetConstraints sets the constraints of the first len(cs) columns.
func (t *Table) SetConstraints(cs ...Constraint) *Table {
	for i, c := range cs {
		t.Column(i).SetConstraint(c)
	}
	return t
}

// SetWidth sets a fixed target width. A non-positive width removes it.
func (t *Table) SetWidth(n int) *Table {
	if n <= 0 {
		t.width = nil
		return t
	}
	t.width = FixedWidth(n)
	return t
}

// SetWidthSource sets where the target width comes from, for example
// TerminalWidth(os.Stdout). It is queried on every render.
func (t *Table) SetWidthSource(src WidthSource) *Table {
	t.width = src
	return t
}

// SetPreset sets the border glyphs.
func (t *Table) SetPreset(p Preset) *Table {
	t.preset = p
	return t
}

// Preset returns the border glyphs in use.
func (t *Table) Preset() Preset { return t.preset }

// SetAlignment sets the table-wide horizontal alignment.
func (t *Table) SetAlignment(a Alignment) *Table {
	t.align = a
	return t
}

// SetVerticalAlignment sets the table-wide vertical alignment.
func (t *Table) SetVerticalAlignment(v VerticalAlignment) *Table {
	t.valign = v
	return t
}

// SetPadding sets the table-wide padding.
func (t *Table) SetPadding(p Padding) *Table {
	t.padding = &p
	return t
}

// SetArrangement sets how column widths react to the target width.
func (t *Table) SetArrangement(a Arrangement) *Table {
	t.arrangement = a
	return t
}

// SetMeasurer sets the display-width capability. nil restores ANSI.
func (t *Table) SetMeasurer(m Measurer) *Table {
	t.measurer = m
	return t
}

// Lines renders the table and returns its lines. Warnings are dropped; use
// Render to see them.
func (t *Table) Lines() ([]string, error) {
	res, err := t.Render()
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}

// String renders the table. Structural errors render as their message.
func (t *Table) String() string {
	res, err := t.Render()
	if err != nil {
		return err.Error()
	}
	return res.String()
}

func (t *Table) measure() Measurer {
	if t.measurer == nil {
		return ANSI
	}
	return t.measurer
}

func (t *Table) targetWidth() (int, bool) {
	if t.width == nil {
		return 0, false
	}
	w, ok := t.width.Width()
	if !ok || w <= 0 {
		return 0, false
	}
	return w, true
}

// logicalRows returns the header (when set) followed by the body rows.
func (t *Table) logicalRows() [][]Cell {
	if !t.hasHeader {
		return t.rows
	}
	rows := make([][]Cell, 0, len(t.rows)+1)
	rows = append(rows, t.header)
	return append(rows, t.rows...)
}

// resolve lays the logical rows over every declared column, then drops
// the hidden ones. cols holds the remaining columns in order, nil for
// positions past the declared columns. g is nil when nothing is visible.
func (t *Table) resolve() (g *grid, cols []*Column, err error) {
	rows := t.logicalRows()
	n := len(t.columns)
	for _, row := range rows {
		n = max(n, rowWidth(row))
	}
	if len(rows) == 0 || n == 0 {
		return nil, nil, nil
	}
	full, err := resolveGrid(rows, n)
	if err != nil {
		return nil, nil, err
	}

	var keep []int
	for i := range n {
		var col *Column
		if i < len(t.columns) {
			col = t.columns[i]
		}
		if col != nil && col.Hidden {
			continue
		}
		keep = append(keep, i)
		cols = append(cols, col)
	}
	if len(keep) == 0 {
		return nil, nil, nil
	}
	return full.project(keep), cols, nil
}

// ensureColumns declares columns until there are at least n.
func (t *Table) ensureColumns(n int) {
	if n > len(t.columns) {
		t.Column(n - 1)
	}
}

// rowWidth is the number of logical columns a row's own cells cover.
func rowWidth(cells []Cell) int {
	n := 0
	for _, c := range cells {
		n += c.colspan()
	}
	return n
}

// Result is one rendered table.
type Result struct {
	// Lines holds the rendered lines without trailing newlines. Every line
	// is exactly Width cells wide.
	Lines []string
	// Width is the display width of every line.
	Width int
	// Warnings holds the non-fatal problems met while rendering:
	// *BudgetExceededWarning and *WrapWarning values.
	Warnings []error
}

// String joins the lines with newlines.
func (r *Result) String() string { return strings.Join(r.Lines, "\n") }

// Err joins every warning into one error, or returns nil.
func (r *Result) Err() error { return errors.Join(r.Warnings...) }
