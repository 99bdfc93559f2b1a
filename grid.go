package spantable

// placement is one cell's claim on a rectangle of the physical grid.
type placement struct {
	row, col         int // anchor position
	rowspan, colspan int
	cell             *Cell
	// logical coordinates, used for error reporting
	logicalRow, index int
}

func (p *placement) lastRow() int { return p.row + p.rowspan - 1 }

func (p *placement) lastCol() int { return p.col + p.colspan - 1 }

// grid is the resolved occupancy of a table: owner[r][c] is the index of
// the placement covering physical position (r, c).
type grid struct {
	rows, cols int
	owner      [][]int
	placements []placement
}

// noOwner marks positions outside the table.
const noOwner = -1

// at returns the owner of (r, c), or noOwner outside the grid.
func (g *grid) at(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return noOwner
	}
	return g.owner[r][c]
}

// countdown tracks how many more rows a rowspan blocks a physical column.
type countdown struct {
	remaining int
	owner     int
}

// resolveGrid lays out logical rows over cols logical columns. Hidden
// columns are still present here; see project. Rowspans reaching past the
// last row are clamped to the rows that exist.
func resolveGrid(rows [][]Cell, cols int) (*grid, error) {
	g := &grid{rows: len(rows), cols: cols, owner: make([][]int, len(rows))}
	blocked := make([]countdown, cols)

	for r := range rows {
		owner := make([]int, cols)
		free := 0
		for c := range owner {
			owner[c] = noOwner
			if blocked[c].remaining > 0 {
				owner[c] = blocked[c].owner
				blocked[c].remaining--
				continue
			}
			free++
		}
		g.owner[r] = owner

		next := 0
		for i := range rows[r] {
			cell := &rows[r][i]
			for next < cols && owner[next] != noOwner {
				next++
			}
			span := cell.colspan()
			if next >= cols || next+span > cols {
				return nil, &TooManyCellsError{Row: r, Cell: i, Available: free}
			}

			var hits []Position
			for c := next; c < next+span; c++ {
				if owner[c] != noOwner {
					hits = append(hits, Position{Row: r, Col: c})
				}
			}
			if len(hits) > 0 {
				return nil, &OverlapError{Row: r, Cell: i, Positions: hits}
			}

			rs := min(cell.rowspan(), len(rows)-r)
			id := len(g.placements)
			g.placements = append(g.placements, placement{
				row: r, col: next,
				rowspan: rs, colspan: span,
				cell:       cell,
				logicalRow: r, index: i,
			})
			for c := next; c < next+span; c++ {
				owner[c] = id
				if rs > 1 {
					blocked[c] = countdown{remaining: rs - 1, owner: id}
				}
			}
			next += span
		}

		var missing []int
		for c, id := range owner {
			if id == noOwner {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return nil, &PartialRowError{Row: r, Missing: missing}
		}
	}
	return g, nil
}

// project keeps the logical columns listed in keep (ascending) and
// renumbers the placements over them. A placement covering no kept column
// disappears; a span shrinks by the dropped columns it crosses.
func (g *grid) project(keep []int) *grid {
	if len(keep) == g.cols {
		return g
	}
	out := &grid{rows: g.rows, cols: len(keep), owner: make([][]int, g.rows)}
	ids := make(map[int]int)
	for r := range g.rows {
		out.owner[r] = make([]int, len(keep))
		for c, lc := range keep {
			old := g.owner[r][lc]
			id, ok := ids[old]
			if !ok {
				// first seen at its anchor row, in its leftmost kept column
				p := g.placements[old]
				span := 0
				for _, k := range keep {
					if k >= p.col && k <= p.lastCol() {
						span++
					}
				}
				p.col, p.colspan = c, span
				id = len(out.placements)
				out.placements = append(out.placements, p)
				ids[old] = id
			}
			out.owner[r][c] = id
		}
	}
	return out
}
