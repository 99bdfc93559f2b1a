package spantable

import "strings"

// Alignment controls horizontal text alignment. AlignDefault defers to the
// next level (column, then table, then left).
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// VerticalAlignment controls where wrapped content sits inside a cell that
// is taller than its content. VAlignDefault defers like AlignDefault.
type VerticalAlignment int

const (
	VAlignDefault VerticalAlignment = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

var (
	alignNames  = map[Alignment]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}
	valignNames = map[VerticalAlignment]string{VAlignTop: "top", VAlignMiddle: "middle", VAlignBottom: "bottom"}
)

func (a Alignment) String() string { return alignNames[a] }

func (v VerticalAlignment) String() string { return valignNames[v] }

// ParseAlignment parses "left", "center" or "right". The empty string is
// AlignDefault.
func ParseAlignment(s string) (Alignment, bool) {
	if s == "" {
		return AlignDefault, true
	}
	for a, name := range alignNames {
		if strings.EqualFold(name, s) {
			return a, true
		}
	}
	return AlignDefault, false
}

// ParseVerticalAlignment parses "top", "middle" or "bottom". The empty
// string is VAlignDefault.
func ParseVerticalAlignment(s string) (VerticalAlignment, bool) {
	if s == "" {
		return VAlignDefault, true
	}
	for v, name := range valignNames {
		if strings.EqualFold(name, s) {
			return v, true
		}
	}
	return VAlignDefault, false
}

// Padding is the number of blank cells kept between a cell's content and
// its left and right borders.
type Padding struct {
	Left  int `json:"left" yaml:"left" toml:"left"`
	Right int `json:"right" yaml:"right" toml:"right"`
}

func (p Padding) total() int { return max(p.Left, 0) + max(p.Right, 0) }

var defaultPadding = Padding{Left: 1, Right: 1}

// cellStyle is the fully resolved style of one placement.
type cellStyle struct {
	align   Alignment
	valign  VerticalAlignment
	padding Padding
}

// resolveStyle merges cell over column over table defaults. col may be nil
// for positions beyond the declared columns.
func resolveStyle(cell *Cell, col *Column, t *Table) cellStyle {
	s := cellStyle{align: AlignLeft, valign: VAlignTop, padding: defaultPadding}

	if t.align != AlignDefault {
		s.align = t.align
	}
	if t.valign != VAlignDefault {
		s.valign = t.valign
	}
	if t.padding != nil {
		s.padding = *t.padding
	}

	if col != nil {
		if col.Align != AlignDefault {
			s.align = col.Align
		}
		if col.VAlign != VAlignDefault {
			s.valign = col.VAlign
		}
		if col.Padding != nil {
			s.padding = *col.Padding
		}
	}

	if cell.Align != AlignDefault {
		s.align = cell.Align
	}
	if cell.VAlign != VAlignDefault {
		s.valign = cell.VAlign
	}
	if cell.Padding != nil {
		s.padding = *cell.Padding
	}
	return s
}

// columnPadding resolves the padding a column contributes to the table's
// fixed overhead.
func columnPadding(col *Column, t *Table) Padding {
	if col != nil && col.Padding != nil {
		return *col.Padding
	}
	if t.padding != nil {
		return *t.padding
	}
	return defaultPadding
}

// alignVertical positions lines inside a block of height lines.
func alignVertical(lines []string, height int, v VerticalAlignment) []string {
	pad := height - len(lines)
	if pad <= 0 {
		return lines
	}
	var before int
	switch v {
	case VAlignBottom:
		before = pad
	case VAlignMiddle:
		before = pad / 2
	}
	out := make([]string, 0, height)
	for range before {
		out = append(out, "")
	}
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, "")
	}
	return out
}

// alignCell pads s to width display cells.
func alignCell(s string, width int, align Alignment, m Measurer) string {
	pad := width - m.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		// odd padding puts the extra cell on the left
		left := (pad + 1) / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
