package spantable

import (
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// Measurer is the display-width capability the layout engine calls. It keeps
// the engine ignorant of any particular style-marker encoding: markers must
// measure zero and come back from Clusters as single indivisible units.
type Measurer interface {
	// StringWidth returns the number of terminal cells s occupies.
	StringWidth(s string) int
	// Clusters splits s into units that must never be split further:
	// grapheme clusters and whole style markers.
	Clusters(s string) []string
}

// ANSI measures text that may contain ANSI escape sequences (SGR colors,
// OSC hyperlinks). It is the default Measurer.
var ANSI Measurer = ansiMeasurer{}

// Plain measures text with no style markers. An escape byte is treated as
// ordinary (zero-width) text.
var Plain Measurer = plainMeasurer{}

type ansiMeasurer struct{}

func (ansiMeasurer) StringWidth(s string) int { return ansi.StringWidth(s) }

// Clusters leaves unterminated sequences at the end of s as one unit so no
// partial marker is ever emitted as text.
func (ansiMeasurer) Clusters(s string) []string {
	var out []string
	state := ansi.NormalState
	for len(s) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(s, state, nil)
		if n <= 0 {
			seq, n = s[:1], 1
		}
		out = append(out, seq)
		s = s[n:]
		state = newState
	}
	return out
}

type plainMeasurer struct{}

func (plainMeasurer) StringWidth(s string) int { return runewidth.StringWidth(s) }

func (plainMeasurer) Clusters(s string) []string { return appendGraphemes(nil, s) }

func appendGraphemes(out []string, s string) []string {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// WidthSource supplies the available output width. ok is false when no
// width is known, which selects natural-width layout.
type WidthSource interface {
	Width() (width int, ok bool)
}

// WidthFunc adapts a function to WidthSource.
type WidthFunc func() (int, bool)

// Width calls f.
func (f WidthFunc) Width() (int, bool) { return f() }

// FixedWidth always reports n. Non-positive n reports no width.
func FixedWidth(n int) WidthSource { return fixedWidth(n) }

type fixedWidth int

func (w fixedWidth) Width() (int, bool) { return int(w), w > 0 }

// TerminalWidth reports the column count of the terminal attached to f, or
// no width when f is not a terminal (pipes, files, CI logs).
func TerminalWidth(f *os.File) WidthSource {
	return WidthFunc(func() (int, bool) {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return 0, false
		}
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 0 {
			return 0, false
		}
		return w, true
	})
}
