package spantable

// Arrangement selects how column widths react to the table's target width.
type Arrangement int

const (
	// ArrangeAuto uses natural widths when no target width is known and
	// fills the target width exactly (growing or shrinking) when one is.
	ArrangeAuto Arrangement = iota
	// ArrangeDisabled always uses natural widths.
	ArrangeDisabled
	// ArrangeShrink shrinks columns to fit the target width but never
	// grows them beyond their natural width.
	ArrangeShrink
)

var arrangementNames = map[Arrangement]string{
	ArrangeAuto:     "auto",
	ArrangeDisabled: "disabled",
	ArrangeShrink:   "shrink",
}

func (a Arrangement) String() string { return arrangementNames[a] }

// ParseArrangement parses "auto", "disabled" or "shrink". The empty string
// is ArrangeAuto.
func ParseArrangement(s string) (Arrangement, bool) {
	if s == "" {
		return ArrangeAuto, true
	}
	for a, name := range arrangementNames {
		if name == s {
			return a, true
		}
	}
	return ArrangeAuto, false
}

// minColumnWidth is the default floor: room for one wrapped character.
const minColumnWidth = 1

// columnSpec is the arranger's view of one visible column.
type columnSpec struct {
	natural int
	bounds  bounds
}

func (c columnSpec) fixed() bool {
	return c.bounds.content || (c.bounds.max >= 0 && c.bounds.max == c.bounds.min)
}

// naturalWidths computes the unwrapped content width each visible column
// needs. Single-column cells are measured first; spanning cells then add
// whatever their span still lacks, split in proportion to the spanned
// columns' widths (evenly when those are all zero).
func naturalWidths(g *grid, cells []cellLayout, colPad []int, sepWidth int) []int {
	nat := make([]int, g.cols)
	var spanning []int
	for i := range g.placements {
		p := &g.placements[i]
		if p.colspan > 1 {
			spanning = append(spanning, i)
			continue
		}
		need := cells[i].textWidth + cells[i].style.padding.total() - colPad[p.col]
		nat[p.col] = max(nat[p.col], need)
	}

	// narrow spans first so wide spans see the widths they already cover
	for span := 2; len(spanning) > 0; span++ {
		rest := spanning[:0]
		for _, i := range spanning {
			p := &g.placements[i]
			if p.colspan != span {
				rest = append(rest, i)
				continue
			}
			have := (p.colspan - 1) * sepWidth
			for c := p.col; c <= p.lastCol(); c++ {
				have += nat[c] + colPad[c]
			}
			need := cells[i].textWidth + cells[i].style.padding.total()
			if need > have {
				distribute(nat[p.col:p.lastCol()+1], need-have)
			}
		}
		spanning = rest
	}
	return nat
}

// distribute adds extra to ws in proportion to the current values.
func distribute(ws []int, extra int) {
	total := 0
	for _, w := range ws {
		total += w
	}
	given := 0
	if total > 0 {
		for i, w := range ws {
			share := extra * w / total
			ws[i] += share
			given += share
		}
	}
	for i := 0; given < extra; i = (i + 1) % len(ws) {
		ws[i]++
		given++
	}
}

// arrangeWidths turns natural widths into final content widths. budget is
// the content budget (target width minus overhead) and only applies when
// hasBudget is set. overflow reports that the column minimums alone exceed
// the budget; the returned widths are then those minimums.
func arrangeWidths(cols []columnSpec, budget int, hasBudget bool, mode Arrangement) (widths []int, overflow bool) {
	widths = make([]int, len(cols))
	sum := 0
	for i, c := range cols {
		w := max(c.natural, c.bounds.min)
		if c.bounds.content {
			w = max(c.natural, minColumnWidth)
		} else if c.bounds.max >= 0 {
			w = min(w, c.bounds.max)
		}
		widths[i] = w
		sum += w
	}
	if !hasBudget || mode == ArrangeDisabled {
		return widths, false
	}

	switch {
	case sum < budget && mode == ArrangeAuto:
		grow(cols, widths, budget-sum)
	case sum > budget:
		return widths, shrink(cols, widths, sum-budget) > 0
	}
	return widths, false
}

func weight(c columnSpec) int { return max(c.natural, 1) }

// grow hands surplus to flexible columns in proportion to their natural
// widths, never past a column's maximum. Leftover single cells go left to
// right.
func grow(cols []columnSpec, widths []int, surplus int) {
	growable := func(i int) bool {
		c := cols[i]
		return !c.fixed() && (c.bounds.max < 0 || widths[i] < c.bounds.max)
	}
	for surplus > 0 {
		var flex []int
		total := 0
		for i := range cols {
			if growable(i) {
				flex = append(flex, i)
				total += weight(cols[i])
			}
		}
		if len(flex) == 0 {
			return
		}
		given := 0
		for _, i := range flex {
			share := surplus * weight(cols[i]) / total
			if m := cols[i].bounds.max; m >= 0 {
				share = min(share, m-widths[i])
			}
			widths[i] += share
			given += share
		}
		if given == 0 {
			for _, i := range flex {
				if given == surplus {
					break
				}
				widths[i]++
				given++
			}
		}
		surplus -= given
	}
}

// shrink takes deficit away from columns in proportion to their natural
// widths, never below a column's minimum. Leftover single cells come off
// the widest column first. It returns the part of deficit it could not
// absorb.
func shrink(cols []columnSpec, widths []int, deficit int) int {
	shrinkable := func(i int) bool {
		return !cols[i].bounds.content && widths[i] > cols[i].bounds.min
	}
	for deficit > 0 {
		var cand []int
		total := 0
		for i := range cols {
			if shrinkable(i) {
				cand = append(cand, i)
				total += weight(cols[i])
			}
		}
		if len(cand) == 0 {
			return deficit
		}
		taken := 0
		for _, i := range cand {
			share := min(deficit*weight(cols[i])/total, widths[i]-cols[i].bounds.min)
			widths[i] -= share
			taken += share
		}
		if taken == 0 {
			widest := cand[0]
			for _, i := range cand[1:] {
				if widths[i] > widths[widest] {
					widest = i
				}
			}
			widths[widest]--
			taken = 1
		}
		deficit -= taken
	}
	return 0
}
