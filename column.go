package spantable

import (
	"fmt"
	"strconv"
	"strings"
)

// Width is a column width given either as a fixed number of terminal cells
// or as a percentage of the table's target width.
type Width struct {
	value   int
	percent bool
}

// Fixed returns a width of n cells.
func Fixed(n int) Width { return Width{value: n} }

// Percent returns a width of p percent of the target table width.
func Percent(p int) Width { return Width{value: p, percent: true} }

// resolve converts w to a cell count. ok is false for percentages when no
// target width is known.
func (w Width) resolve(target int, known bool) (int, bool) {
	if !w.percent {
		return max(w.value, 0), true
	}
	if !known {
		return 0, false
	}
	return max(target*w.value/100, 0), true
}

// String renders w as "12" or "30%".
func (w Width) String() string {
	if w.percent {
		return strconv.Itoa(w.value) + "%"
	}
	return strconv.Itoa(w.value)
}

// ParseWidth parses "12" or "30%".
func ParseWidth(s string) (Width, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 100 {
			return Width{}, fmt.Errorf("%w: width %q", ErrInvalidDefinition, s)
		}
		return Percent(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Width{}, fmt.Errorf("%w: width %q", ErrInvalidDefinition, s)
	}
	return Fixed(n), nil
}

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintContent
	constraintAbsolute
	constraintMin
	constraintMax
	constraintBetween
)

// Constraint limits the content width the arranger may assign to a column.
// The zero value leaves the column unconstrained.
type Constraint struct {
	kind         constraintKind
	lower, upper Width
}

// Unconstrained lets the arranger pick any width of at least one cell.
func Unconstrained() Constraint { return Constraint{} }

// ContentWidth pins a column to its natural width; its content never wraps.
func ContentWidth() Constraint { return Constraint{kind: constraintContent} }

// Absolute pins a column to exactly w.
func Absolute(w Width) Constraint { return Constraint{kind: constraintAbsolute, lower: w, upper: w} }

// MinWidth keeps a column at least w wide.
func MinWidth(w Width) Constraint { return Constraint{kind: constraintMin, lower: w} }

// MaxWidth keeps a column at most w wide.
func MaxWidth(w Width) Constraint { return Constraint{kind: constraintMax, upper: w} }

// Between keeps a column within [lo, hi].
func Between(lo, hi Width) Constraint { return Constraint{kind: constraintBetween, lower: lo, upper: hi} }

// IsZero reports whether c leaves the column unconstrained.
func (c Constraint) IsZero() bool { return c.kind == constraintNone }

// String renders c in the notation accepted by ParseConstraint.
func (c Constraint) String() string {
	switch c.kind {
	case constraintContent:
		return "content"
	case constraintAbsolute:
		return c.lower.String()
	case constraintMin:
		return c.lower.String() + ".."
	case constraintMax:
		return ".." + c.upper.String()
	case constraintBetween:
		return c.lower.String() + ".." + c.upper.String()
	default:
		return ""
	}
}

// ParseConstraint parses the definition-file notation: "" (none),
// "content", "12", "30%", "10..", "..40", "10..50%".
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Unconstrained(), nil
	case s == "content":
		return ContentWidth(), nil
	}
	lo, hi, ranged := strings.Cut(s, "..")
	if !ranged {
		w, err := ParseWidth(s)
		if err != nil {
			return Constraint{}, err
		}
		return Absolute(w), nil
	}
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	switch {
	case lo == "" && hi == "":
		return Unconstrained(), nil
	case hi == "":
		w, err := ParseWidth(lo)
		if err != nil {
			return Constraint{}, err
		}
		return MinWidth(w), nil
	case lo == "":
		w, err := ParseWidth(hi)
		if err != nil {
			return Constraint{}, err
		}
		return MaxWidth(w), nil
	}
	l, err := ParseWidth(lo)
	if err != nil {
		return Constraint{}, err
	}
	h, err := ParseWidth(hi)
	if err != nil {
		return Constraint{}, err
	}
	return Between(l, h), nil
}

// bounds is a constraint resolved against a concrete target width.
type bounds struct {
	min, max int // max < 0 means unbounded
	content  bool
}

func (c Constraint) bounds(target int, known bool) bounds {
	b := bounds{min: minColumnWidth, max: -1}
	if v, ok := c.lower.resolve(target, known); ok && (c.kind == constraintAbsolute || c.kind == constraintMin || c.kind == constraintBetween) {
		b.min = max(v, minColumnWidth)
	}
	if v, ok := c.upper.resolve(target, known); ok && (c.kind == constraintAbsolute || c.kind == constraintMax || c.kind == constraintBetween) {
		b.max = max(v, minColumnWidth)
	}
	if b.max >= 0 && b.max < b.min {
		b.max = b.min
	}
	b.content = c.kind == constraintContent
	return b
}

// Column holds per-column defaults. Columns keep their logical index even
// while hidden.
type Column struct {
	index      int
	Constraint Constraint
	Align      Alignment
	VAlign     VerticalAlignment
	Padding    *Padding
	Hidden     bool
}

// Index returns the column's stable logical index.
func (c *Column) Index() int { return c.index }

// SetConstraint sets the width constraint and returns c for chaining.
func (c *Column) SetConstraint(con Constraint) *Column {
	c.Constraint = con
	return c
}

// SetAlign sets the default horizontal alignment.
func (c *Column) SetAlign(a Alignment) *Column {
	c.Align = a
	return c
}

// SetVAlign sets the default vertical alignment.
func (c *Column) SetVAlign(v VerticalAlignment) *Column {
	c.VAlign = v
	return c
}

// SetPadding sets the default padding.
func (c *Column) SetPadding(p Padding) *Column {
	c.Padding = &p
	return c
}

// SetHidden hides or shows the column.
func (c *Column) SetHidden(hidden bool) *Column {
	c.Hidden = hidden
	return c
}
