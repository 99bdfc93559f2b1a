package spantable

import (
	"fmt"
	"strings"
)

// Junction classifies the point where grid lines meet by which of its four
// arms carry a border. The set is closed: every valid neighbourhood maps to
// exactly one value.
type Junction int

const (
	JunctionOpen        Junction = iota // no arms: inside a merged region
	JunctionHorizontal                  // ─
	JunctionVertical                    // │
	JunctionTopLeft                     // ┌
	JunctionTopRight                    // ┐
	JunctionBottomLeft                  // └
	JunctionBottomRight                 // ┘
	JunctionTopTee                      // ┬
	JunctionBottomTee                   // ┴
	JunctionLeftTee                     // ├
	JunctionRightTee                    // ┤
	JunctionCross                       // ┼
	junctionCount
)

var junctionNames = [junctionCount]string{
	"open", "horizontal", "vertical",
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-tee", "bottom-tee", "left-tee", "right-tee", "cross",
}

func (j Junction) String() string {
	if j < 0 || j >= junctionCount {
		return fmt.Sprintf("Junction(%d)", int(j))
	}
	return junctionNames[j]
}

// LineRole tells which kind of horizontal line a junction sits on. Each
// role has its own glyph set in a Preset.
type LineRole int

const (
	RoleTop    LineRole = iota // above the first row
	RoleHeader                 // between the header and the first body row
	RoleRow                    // between two body rows
	RoleBottom                 // below the last row
	roleCount
)

var roleNames = [roleCount]string{"top", "header", "row", "bottom"}

func (r LineRole) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("LineRole(%d)", int(r))
	}
	return roleNames[r]
}

const (
	armUp = 1 << iota
	armDown
	armLeft
	armRight
)

var junctionByArms = map[int]Junction{
	0:                                    JunctionOpen,
	armLeft | armRight:                   JunctionHorizontal,
	armUp | armDown:                      JunctionVertical,
	armDown | armRight:                   JunctionTopLeft,
	armDown | armLeft:                    JunctionTopRight,
	armUp | armRight:                     JunctionBottomLeft,
	armUp | armLeft:                      JunctionBottomRight,
	armLeft | armRight | armDown:         JunctionTopTee,
	armLeft | armRight | armUp:           JunctionBottomTee,
	armUp | armDown | armRight:           JunctionLeftTee,
	armUp | armDown | armLeft:            JunctionRightTee,
	armUp | armDown | armLeft | armRight: JunctionCross,
}

const (
	quadUL = 1 << iota
	quadUR
	quadDL
	quadDR
)

// rectangular lists the quadrant sets one placement may cover around a
// junction. Three quadrants or a diagonal pair cannot come from a
// rectangle.
var rectangular = map[int]bool{
	quadUL: true, quadUR: true, quadDL: true, quadDR: true,
	quadUL | quadUR: true, quadDL | quadDR: true,
	quadUL | quadDL: true, quadUR | quadDR: true,
	quadUL | quadUR | quadDL | quadDR: true,
}

// classify derives the junction between four neighbouring owners (noOwner
// outside the table). An arm is drawn wherever the two owners it separates
// differ.
func classify(ul, ur, dl, dr int) (Junction, error) {
	quads := map[int]int{}
	for q, id := range [4]int{ul, ur, dl, dr} {
		if id != noOwner {
			quads[id] |= 1 << q
		}
	}
	for id, mask := range quads {
		if !rectangular[mask] {
			return JunctionOpen, fmt.Errorf("placement %d covers quadrants %04b", id, mask)
		}
	}

	arms := 0
	if ul != ur {
		arms |= armUp
	}
	if dl != dr {
		arms |= armDown
	}
	if ul != dl {
		arms |= armLeft
	}
	if ur != dr {
		arms |= armRight
	}
	j, ok := junctionByArms[arms]
	if !ok {
		return JunctionOpen, fmt.Errorf("dangling border arm %04b", arms)
	}
	return j, nil
}

// boundary identifies a vertical grid line on content lines.
type boundary int

const (
	boundaryLeft boundary = iota
	boundaryInner
	boundaryRight
)

// border renders horizontal lines and vertical separators from a Preset.
type border struct {
	preset Preset
	// widths of the left, inner and right vertical boundaries
	widths [3]int
}

func newBorder(p Preset) border {
	b := border{preset: p}
	for i, g := range [3]string{p.Left, p.Inner, p.Right} {
		b.widths[i] = Plain.StringWidth(g)
	}
	return b
}

func (b border) vertical(at boundary) string {
	return [3]string{b.preset.Left, b.preset.Inner, b.preset.Right}[at]
}

// drawn reports whether lines of the given role appear at all.
func (b border) drawn(role LineRole) bool {
	for _, g := range b.preset.Lines[role] {
		if g != "" {
			return true
		}
	}
	return false
}

func (b border) fill(role LineRole) string {
	return b.preset.Lines[role][JunctionHorizontal]
}

// junction returns the glyph for j fitted to the boundary width.
func (b border) junction(role LineRole, j Junction, at boundary) string {
	g := ""
	if j != JunctionOpen {
		g = b.preset.Lines[role][j]
	}
	return fitGlyph(g, b.widths[at], b.fill(role))
}

// run repeats the role's fill glyph across width cells.
func (b border) run(role LineRole, width int) string {
	return repeatGlyph(b.fill(role), width)
}

// fitGlyph pads or truncates g to exactly width cells.
func fitGlyph(g string, width int, fill string) string {
	if width <= 0 {
		return ""
	}
	w := Plain.StringWidth(g)
	switch {
	case w == width:
		return g
	case w > width:
		return truncate(g, width, Plain)
	default:
		return g + repeatGlyph(fill, width-w)
	}
}

// repeatGlyph fills width cells with g, or with spaces when g is empty.
func repeatGlyph(g string, width int) string {
	if width <= 0 {
		return ""
	}
	gw := Plain.StringWidth(g)
	if gw <= 0 {
		return strings.Repeat(" ", width)
	}
	s := strings.Repeat(g, (width+gw-1)/gw)
	if gw == 1 {
		return s
	}
	s = truncate(s, width, Plain)
	return s + strings.Repeat(" ", width-Plain.StringWidth(s))
}
