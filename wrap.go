package spantable

import "strings"

const tabWidth = 4

// splitLines splits text on explicit line breaks and expands tabs.
func splitLines(text string, m Measurer) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = expandTabs(line, m)
	}
	return lines
}

// textWidth returns the widest explicit line of text: the width the text
// needs to render without wrapping.
func textWidth(text string, m Measurer) int {
	w := 0
	for _, line := range splitLines(text, m) {
		w = max(w, m.StringWidth(line))
	}
	return w
}

// expandTabs replaces tab characters with spaces up to the next tab stop.
func expandTabs(s string, m Measurer) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	column := 0
	for _, c := range m.Clusters(s) {
		if c == "\t" {
			n := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			column += n
			continue
		}
		b.WriteString(c)
		column += m.StringWidth(c)
	}
	return b.String()
}

// wrapText re-flows text into display lines no wider than width. Explicit
// line breaks are always kept. degenerate is true when width leaves no room
// for content; the text is then laid out one visible cluster per line.
// The result always holds at least one line.
func wrapText(text string, width int, m Measurer) (lines []string, degenerate bool) {
	for _, line := range splitLines(text, m) {
		if width <= 0 {
			lines = append(lines, splitEach(line, m)...)
			continue
		}
		lines = append(lines, wrapLine(line, width, m)...)
	}
	return lines, width <= 0
}

type token struct {
	text  string
	width int
	space bool
}

// tokenize groups clusters into alternating runs of words and spaces.
// Zero-width markers count as word text, so a break never strands them.
func tokenize(line string, m Measurer) []token {
	var toks []token
	for _, c := range m.Clusters(line) {
		space := c == " "
		w := m.StringWidth(c)
		if n := len(toks); n > 0 && toks[n-1].space == space {
			toks[n-1].text += c
			toks[n-1].width += w
			continue
		}
		toks = append(toks, token{text: c, width: w, space: space})
	}
	return toks
}

func wrapLine(line string, width int, m Measurer) []string {
	var (
		lines    []string
		cur      strings.Builder
		curW     int
		pending  string
		pendingW int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, tok := range tokenize(line, m) {
		if tok.space {
			pending += tok.text
			pendingW += tok.width
			continue
		}
		switch {
		case curW+pendingW+tok.width <= width:
			cur.WriteString(pending)
			cur.WriteString(tok.text)
			curW += pendingW + tok.width
		case tok.width <= width:
			if curW > 0 {
				flush()
			}
			cur.WriteString(tok.text)
			curW = tok.width
		default:
			if curW > 0 {
				flush()
			}
			chunks := hardSplit(cur.String()+tok.text, width, m)
			cur.Reset()
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			cur.WriteString(last)
			curW = m.StringWidth(last)
		}
		pending, pendingW = "", 0
	}
	flush()
	return lines
}

// hardSplit cuts s into chunks of at most width cells at cluster
// boundaries. A single cluster wider than width gets a chunk of its own.
func hardSplit(s string, width int, m Measurer) []string {
	var (
		chunks []string
		cur    strings.Builder
		curW   int
	)
	for _, c := range m.Clusters(s) {
		w := m.StringWidth(c)
		if w > 0 && curW > 0 && curW+w > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(c)
		curW += w
	}
	return append(chunks, cur.String())
}

// splitEach puts every visible cluster on its own line.
func splitEach(line string, m Measurer) []string {
	return hardSplit(line, 1, m)
}

// truncate drops visible clusters beyond width, keeping every marker so
// that style state stays balanced.
func truncate(s string, width int, m Measurer) string {
	if m.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	full := false
	for _, c := range m.Clusters(s) {
		cw := m.StringWidth(c)
		if cw > 0 && (full || w+cw > width) {
			full = true
			continue
		}
		b.WriteString(c)
		w += cw
	}
	return b.String()
}
