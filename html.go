package spantable

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// writeHTML writes a table whose spans map onto colspan and rowspan
// attributes. The header row, when set, goes into <thead>.
func writeHTML(w io.Writer, t *Table) error {
	rows, header, err := t.flatten()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	body := rows
	if header && len(rows) > 0 {
		if err := writeHTMLSection(w, "thead", "th", rows[:1]); err != nil {
			return err
		}
		body = rows[1:]
	}
	if err := writeHTMLSection(w, "tbody", "td", body); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, tag string, rows [][]flatCell) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if cell.continuation {
				continue
			}
			text := strings.ReplaceAll(html.EscapeString(cell.text), "\n", "<br>")
			if _, err := fmt.Fprintf(w, "      <%s%s%s>%s</%s>\n", tag, spanAttrs(cell.placement), alignStyle(cell.align), text, tag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}

func spanAttrs(p *placement) string {
	var b strings.Builder
	if p.colspan > 1 {
		fmt.Fprintf(&b, ` colspan="%d"`, p.colspan)
	}
	if p.rowspan > 1 {
		fmt.Fprintf(&b, ` rowspan="%d"`, p.rowspan)
	}
	return b.String()
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
