package spantable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownPreset is returned by PresetByName for names it does not know.
var ErrUnknownPreset = errors.New("unknown preset")

// Glyphs maps every Junction to the glyph drawn for it on one kind of
// horizontal line. The JunctionHorizontal entry doubles as the fill between
// junctions. An empty Glyphs means lines of that role are not drawn.
type Glyphs [junctionCount]string

// GlyphsOf builds Glyphs from a string holding one glyph per junction, in
// Junction order starting at JunctionHorizontal:
//
//	─│┌┐└┘┬┴├┤┼
//
// A shorter string leaves the remaining junctions empty.
func GlyphsOf(s string) Glyphs {
	var g Glyphs
	j := JunctionHorizontal
	for _, r := range s {
		if j >= junctionCount {
			break
		}
		g[j] = string(r)
		j++
	}
	return g
}

// Preset is a complete border glyph table.
type Preset struct {
	Name string
	// Lines holds the glyphs of each LineRole.
	Lines [roleCount]Glyphs
	// Left, Inner and Right are the vertical glyphs drawn on content lines
	// at the left edge, between columns and at the right edge. Their widths
	// fix the width of every junction on the same boundary.
	Left, Inner, Right string
}

// NewPreset assembles a custom preset.
func NewPreset(name string, top, header, row, bottom Glyphs, left, inner, right string) Preset {
	return Preset{
		Name:  name,
		Lines: [roleCount]Glyphs{RoleTop: top, RoleHeader: header, RoleRow: row, RoleBottom: bottom},
		Left:  left,
		Inner: inner,
		Right: right,
	}
}

// WithoutRole returns a copy of p that never draws lines of the given role.
func (p Preset) WithoutRole(role LineRole) Preset {
	p.Lines[role] = Glyphs{}
	return p
}

// Glyph returns the glyph for j on a line of the given role.
func (p Preset) Glyph(role LineRole, j Junction) string {
	if role < 0 || role >= roleCount || j < 0 || j >= junctionCount {
		return ""
	}
	return p.Lines[role][j]
}

func (p Preset) String() string { return p.Name }

var (
	// ASCIIFull draws every line with plain ASCII and marks the header with '='.
	ASCIIFull = NewPreset("ascii-full",
		GlyphsOf("-|+++++++++"),
		GlyphsOf("=|++++==++="),
		GlyphsOf("-|++++++||+"),
		GlyphsOf("-|+++++++++"),
		"|", "|", "|")

	// ASCIICondensed is ASCIIFull without lines between body rows.
	ASCIICondensed = rename(ASCIIFull.WithoutRole(RoleRow), "ascii-condensed")

	// ASCIIMarkdown renders a GitHub-flavoured Markdown table.
	ASCIIMarkdown = NewPreset("ascii-markdown",
		Glyphs{},
		GlyphsOf("-||||||||||"),
		Glyphs{},
		Glyphs{},
		"|", "|", "|")

	// UTF8Full uses box-drawing characters with a double header line.
	UTF8Full = NewPreset("utf8-full",
		GlyphsOf("─│┌┐└┘┬┴├┤┼"),
		GlyphsOf("═│╞╡╘╛╤╧╞╡╪"),
		GlyphsOf("─│┌┐└┘┬┴├┤┼"),
		GlyphsOf("─│┌┐└┘┬┴├┤┼"),
		"│", "│", "│")

	// UTF8Rounded uses box-drawing characters with rounded outer corners.
	UTF8Rounded = NewPreset("utf8-rounded",
		GlyphsOf("─│╭╮╰╯┬┴├┤┼"),
		GlyphsOf("─│╭╮╰╯┬┴├┤┼"),
		GlyphsOf("─│╭╮╰╯┬┴├┤┼"),
		GlyphsOf("─│╭╮╰╯┬┴├┤┼"),
		"│", "│", "│")

	// UTF8Heavy uses heavy box-drawing characters.
	UTF8Heavy = NewPreset("utf8-heavy",
		GlyphsOf("━┃┏┓┗┛┳┻┣┫╋"),
		GlyphsOf("━┃┏┓┗┛┳┻┣┫╋"),
		GlyphsOf("━┃┏┓┗┛┳┻┣┫╋"),
		GlyphsOf("━┃┏┓┗┛┳┻┣┫╋"),
		"┃", "┃", "┃")

	// UTF8Double uses double box-drawing characters.
	UTF8Double = NewPreset("utf8-double",
		GlyphsOf("═║╔╗╚╝╦╩╠╣╬"),
		GlyphsOf("═║╔╗╚╝╦╩╠╣╬"),
		GlyphsOf("═║╔╗╚╝╦╩╠╣╬"),
		GlyphsOf("═║╔╗╚╝╦╩╠╣╬"),
		"║", "║", "║")

	// UTF8HorizontalOnly draws horizontal rules only; columns are separated
	// by a single space.
	UTF8HorizontalOnly = NewPreset("utf8-horizontal-only",
		GlyphsOf("───────────"),
		GlyphsOf("═══════════"),
		GlyphsOf("───────────"),
		GlyphsOf("───────────"),
		"", " ", "")

	// Nothing draws no borders at all; columns are separated by a space.
	Nothing = NewPreset("nothing", Glyphs{}, Glyphs{}, Glyphs{}, Glyphs{}, "", " ", "")
)

func rename(p Preset, name string) Preset {
	p.Name = name
	return p
}

var presets = []Preset{
	ASCIIFull, ASCIICondensed, ASCIIMarkdown,
	UTF8Full, UTF8Rounded, UTF8Heavy, UTF8Double, UTF8HorizontalOnly,
	Nothing,
}

// Presets returns every built-in preset.
func Presets() []Preset { return slices.Clone(presets) }

// PresetByName looks a built-in preset up by name, ignoring case. Underscores
// are accepted in place of dashes.
func PresetByName(name string) (Preset, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, p := range presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
