package spantable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidDefinition = errors.New("invalid table definition")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Text, Markdown, CSV, TSV, HTML, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. "table" is accepted for Text.
func ParseFormat(s string) (Format, error) {
	if s == "table" {
		return Text, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f and writes it to w. For Text, render
// warnings are returned joined after the table has been written; check
// them with errors.Is against ErrBudgetExceeded or ErrWrap.
func Write(w io.Writer, f Format, t *Table) error {
	switch f {
	case Text:
		return writeText(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeText(w io.Writer, t *Table) error {
	res, err := t.Render()
	if err != nil {
		return err
	}
	for _, line := range res.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return res.Err()
}

// flatCell is one physical position of a table resolved for the export
// formats. Only anchors carry text; positions covered by a span are marked
// as continuations.
type flatCell struct {
	text         string
	continuation bool
	placement    *placement
	align        Alignment
}

// flatten resolves the table's occupancy grid and returns it with style
// markers stripped. header reports whether row 0 is the header.
func (t *Table) flatten() (rows [][]flatCell, header bool, err error) {
	g, cols, err := t.resolve()
	if err != nil {
		return nil, false, err
	}
	if g == nil {
		return nil, t.hasHeader, nil
	}
	rows = make([][]flatCell, g.rows)
	for r := range rows {
		rows[r] = make([]flatCell, g.cols)
		for c := range rows[r] {
			p := &g.placements[g.owner[r][c]]
			fc := flatCell{placement: p, continuation: p.row != r || p.col != c}
			fc.align = resolveStyle(p.cell, cols[p.col], t).align
			if !fc.continuation {
				fc.text = ansi.Strip(p.cell.Text())
			}
			rows[r][c] = fc
		}
	}
	return rows, t.hasHeader, nil
}

// texts returns the text of every position in a flattened row.
func texts(row []flatCell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.text
	}
	return out
}
