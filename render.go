package spantable

import "strings"

// cellLayout is the per-placement state of one render pass.
type cellLayout struct {
	style     cellStyle
	textWidth int
	// lines holds the wrapped content, later padded to the placement's
	// allocated height.
	lines []string
}

// layout is a fully resolved render pass.
type layout struct {
	g       *grid
	cells   []cellLayout
	border  border
	m       Measurer
	slots   []int // column width including column padding
	heights []int
	// sepRole[r] is the role of the line between rows r and r+1, or -1 when
	// no line is drawn there.
	sepRole []LineRole
	// offset[r] counts the content lines above row r. Separator lines are
	// not included.
	offset []int
}

const noLine LineRole = -1

// Render lays the table out and returns its lines. Structural problems
// (*OverlapError, *TooManyCellsError, *PartialRowError, *InvariantViolation)
// are returned as the error; recoverable ones are collected in the result's
// Warnings.
func (t *Table) Render() (*Result, error) {
	g, cols, err := t.resolve()
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &Result{}, nil
	}

	l := &layout{
		g:      g,
		cells:  make([]cellLayout, len(g.placements)),
		border: newBorder(t.preset),
		m:      t.measure(),
	}
	for i := range g.placements {
		p := &g.placements[i]
		l.cells[i] = cellLayout{
			style:     resolveStyle(p.cell, cols[p.col], t),
			textWidth: textWidth(p.cell.Text(), l.m),
		}
	}

	var warnings []error

	colPad := make([]int, len(cols))
	overhead := l.border.widths[boundaryLeft] + l.border.widths[boundaryRight] + l.border.widths[boundaryInner]*(len(cols)-1)
	for c, col := range cols {
		colPad[c] = columnPadding(col, t).total()
		overhead += colPad[c]
	}

	target, known := t.targetWidth()
	nat := naturalWidths(g, l.cells, colPad, l.border.widths[boundaryInner])
	specs := make([]columnSpec, len(cols))
	for c, col := range cols {
		specs[c].natural = nat[c]
		specs[c].bounds = Constraint{}.bounds(target, known)
		if col != nil {
			specs[c].bounds = col.Constraint.bounds(target, known)
		}
	}
	widths, overflow := arrangeWidths(specs, target-overhead, known, t.arrangement)

	l.slots = make([]int, len(cols))
	total := overhead
	for c, w := range widths {
		l.slots[c] = w + colPad[c]
		total += w
	}
	if overflow {
		warnings = append(warnings, &BudgetExceededWarning{Requested: target, Actual: total})
	}

	counts := make([]int, len(g.placements))
	for i := range g.placements {
		p := &g.placements[i]
		eff := l.spanWidth(p.col, p.lastCol()) - l.cells[i].style.padding.total()
		lines, degenerate := wrapText(p.cell.Text(), eff, l.m)
		if degenerate {
			warnings = append(warnings, &WrapWarning{Row: p.row, Col: p.col, Width: eff})
		}
		l.cells[i].lines = lines
		counts[i] = len(lines)
	}

	l.sepRole = make([]LineRole, g.rows)
	for r := range g.rows - 1 {
		role := RoleRow
		if r == 0 && t.hasHeader {
			role = RoleHeader
		}
		l.sepRole[r] = noLine
		if l.border.drawn(role) {
			l.sepRole[r] = role
		}
	}
	l.sepRole[g.rows-1] = noLine

	l.heights = rowHeights(g, counts)
	l.offset = make([]int, g.rows)
	for r := 1; r < g.rows; r++ {
		l.offset[r] = l.offset[r-1] + l.heights[r-1]
	}
	for i := range g.placements {
		p := &g.placements[i]
		h := spanHeight(l.heights, p.row, p.lastRow())
		l.cells[i].lines = alignVertical(l.cells[i].lines, h, l.cells[i].style.valign)
	}

	out, err := l.compose()
	if err != nil {
		return nil, err
	}
	return &Result{Lines: out, Width: total, Warnings: warnings}, nil
}

// spanWidth is the width of columns first..last including the interior
// boundaries between them.
func (l *layout) spanWidth(first, last int) int {
	w := l.border.widths[boundaryInner] * (last - first)
	for c := first; c <= last; c++ {
		w += l.slots[c]
	}
	return w
}

func (l *layout) compose() ([]string, error) {
	var out []string
	if l.border.drawn(RoleTop) {
		line, err := l.rule(-1, RoleTop)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	for r := range l.g.rows {
		for k := range l.heights[r] {
			out = append(out, l.content(r, l.offset[r]+k))
		}
		if role := l.sepRole[r]; role != noLine {
			line, err := l.rule(r, role)
			if err != nil {
				return nil, err
			}
			out = append(out, line)
		}
	}
	if l.border.drawn(RoleBottom) {
		line, err := l.rule(l.g.rows-1, RoleBottom)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

// lineOf returns the text placement id shows on the line at offset.
func (l *layout) lineOf(id, offset int) string {
	p := &l.g.placements[id]
	idx := offset - l.offset[p.row]
	lines := l.cells[id].lines
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

// content renders the content line at offset belonging to row r.
func (l *layout) content(r, offset int) string {
	var b strings.Builder
	b.WriteString(l.border.vertical(boundaryLeft))
	for c := 0; c < l.g.cols; {
		id := l.g.owner[r][c]
		p := &l.g.placements[id]
		b.WriteString(l.segment(id, offset, l.spanWidth(c, p.lastCol())))
		c = p.lastCol() + 1
		if c < l.g.cols {
			b.WriteString(l.border.vertical(boundaryInner))
		}
	}
	b.WriteString(l.border.vertical(boundaryRight))
	return b.String()
}

// segment renders one placement's line at offset into exactly width cells.
func (l *layout) segment(id, offset, width int) string {
	st := l.cells[id].style
	left, right := max(st.padding.Left, 0), max(st.padding.Right, 0)
	inner := width - left - right
	if inner < 0 {
		left, right, inner = 0, 0, width
	}
	text := truncate(l.lineOf(id, offset), inner, l.m)
	return strings.Repeat(" ", left) + alignCell(text, inner, st.align, l.m) + strings.Repeat(" ", right)
}

// rule renders the horizontal line below row r (r = -1 for the top line).
// Columns whose placement continues across the line are left blank.
func (l *layout) rule(r int, role LineRole) (string, error) {
	g := l.g
	var b strings.Builder
	j, err := l.junction(r, 0)
	if err != nil {
		return "", err
	}
	b.WriteString(l.border.junction(role, j, boundaryLeft))

	for c := 0; c < g.cols; {
		above, below := g.at(r, c), g.at(r+1, c)
		if above == below && above != noOwner {
			p := &g.placements[above]
			b.WriteString(strings.Repeat(" ", l.spanWidth(c, p.lastCol())))
			c = p.lastCol() + 1
		} else {
			b.WriteString(l.border.run(role, l.slots[c]))
			c++
		}
		at := boundaryInner
		if c == g.cols {
			at = boundaryRight
		}
		j, err := l.junction(r, c)
		if err != nil {
			return "", err
		}
		b.WriteString(l.border.junction(role, j, at))
	}
	return b.String(), nil
}

// junction classifies the grid point to the left of column c on the line
// below row r.
func (l *layout) junction(r, c int) (Junction, error) {
	g := l.g
	j, err := classify(g.at(r, c-1), g.at(r, c), g.at(r+1, c-1), g.at(r+1, c))
	if err != nil {
		return j, &InvariantViolation{At: Position{Row: r + 1, Col: c}, Detail: err.Error()}
	}
	return j, nil
}
