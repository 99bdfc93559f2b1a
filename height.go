package spantable

import "slices"

// rowHeights computes the rendered height of every physical row.
// lineCounts[i] is the wrapped line count of placement i. A spanning cell
// only counts the content lines of its rows: when they fall short, the
// bottom row of the span takes the rest.
func rowHeights(g *grid, lineCounts []int) []int {
	heights := make([]int, g.rows)
	for r := range heights {
		heights[r] = 1
	}

	var spanning []int
	for i := range g.placements {
		p := &g.placements[i]
		if p.rowspan > 1 {
			spanning = append(spanning, i)
			continue
		}
		heights[p.row] = max(heights[p.row], lineCounts[i])
	}

	slices.SortStableFunc(spanning, func(a, b int) int {
		pa, pb := &g.placements[a], &g.placements[b]
		if pa.lastRow() != pb.lastRow() {
			return pa.lastRow() - pb.lastRow()
		}
		return pa.row - pb.row
	})
	for _, i := range spanning {
		p := &g.placements[i]
		if short := lineCounts[i] - spanHeight(heights, p.row, p.lastRow()); short > 0 {
			heights[p.lastRow()] += short
		}
	}
	return heights
}

// spanHeight is the number of content lines rows first..last hold.
func spanHeight(heights []int, first, last int) int {
	n := 0
	for r := first; r <= last; r++ {
		n += heights[r]
	}
	return n
}
