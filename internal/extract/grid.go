package extract

import (
	"sort"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

type gridCell struct {
	col  int
	text string
}

type gridRow struct {
	cells   []gridCell
	hasData bool
}

// headers returns the normalized cell text indexed by column. Columns covered by a
// colspan or by a rowspan from an earlier row are empty.
func (r gridRow) headers() []string {
	var out []string
	for _, c := range r.cells {
		for len(out) <= c.col {
			out = append(out, "")
		}
		out[c.col] = normalize(c.text)
	}
	return out
}

func (r gridRow) byColumn() map[int]string {
	out := make(map[int]string, len(r.cells))
	for _, c := range r.cells {
		out[c.col] = c.text
	}
	return out
}

// layoutRows places every cell at the column it renders in, honouring colspan and
// rowspan, so header positions line up with value positions. A cell with rowspan is
// repeated in each row it covers.
func layoutRows(rows *goquery.Selection) []gridRow {
	grid := make([]gridRow, rows.Length())
	occupied := make(map[int]map[int]bool)

	rows.Each(func(r int, row *goquery.Selection) {
		col := 0
		rowCells(row).Each(func(_ int, cell *goquery.Selection) {
			for occupied[r][col] {
				col++
			}
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			grid[r].cells = append(grid[r].cells, gridCell{col: col, text: cell.Text()})
			if goquery.NodeName(cell) == "td" {
				grid[r].hasData = true
			}
			for dr := 1; dr < rowspan && r+dr < len(grid); dr++ {
				if occupied[r+dr] == nil {
					occupied[r+dr] = make(map[int]bool)
				}
				grid[r+dr].cells = append(grid[r+dr].cells, gridCell{col: col, text: cell.Text()})
				for dc := 0; dc < colspan; dc++ {
					occupied[r+dr][col+dc] = true
				}
			}
			col += colspan
		})
	})
	for _, row := range grid {
		sort.Slice(row.cells, func(i, j int) bool { return row.cells[i].col < row.cells[j].col })
	}
	return grid
}

func spanAttr(cell *goquery.Selection, name string) int {
	v, ok := cell.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	// HTML caps colspan at 1000.
	if n > 1000 {
		return 1000
	}
	return n
}
