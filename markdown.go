package spantable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

// writeMarkdown writes a GitHub-flavoured table. Markdown has no spans, so
// positions covered by a span are left empty. Without a header row an
// empty one is written, since the format requires it.
func writeMarkdown(w io.Writer, t *Table) error {
	rows, header, err := t.flatten()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	numCols := len(rows[0])

	cells := make([][]string, 0, len(rows)+1)
	if !header {
		cells = append(cells, make([]string, numCols))
	}
	for _, row := range rows {
		line := texts(row)
		for i, s := range line {
			line[i] = markdownEscaper.Replace(s)
		}
		cells = append(cells, line)
	}

	// Minimum 3 for alignment markers.
	widths := make([]int, numCols)
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell), 3)
		}
	}

	aligns := t.columnAlignments(numCols)

	if err := writeMarkdownRow(w, cells[0], widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells[1:] {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i], Plain)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// columnAlignments resolves the default alignment of the first n visible
// columns, ignoring cell overrides.
func (t *Table) columnAlignments(n int) []Alignment {
	var cols []*Column
	for _, c := range t.columns {
		if !c.Hidden {
			cols = append(cols, c)
		}
	}
	out := make([]Alignment, n)
	for i := range out {
		var col *Column
		if i < len(cols) {
			col = cols[i]
		}
		out[i] = resolveStyle(&Cell{}, col, t).align
	}
	return out
}
