package universe

import (
	"math/rand/v2"
	"strings"
)

type Cell bool

//glyphs used by Render
const (
	LiveGlyph = "0"
	DeadGlyph = "_"
)

//Coord is a (row, col) pair inside the area
type Coord struct {
	Row int
	Col int
}

//Area is the fixed size field where cells are living
//Entities is indexed as Entities[row][col]
type Area struct {
	Rows     int
	Columns  int
	Entities [][]Cell
}

//createArea allocates the new area with all cells dead
func createArea(rows int, columns int) Area {
	area := Area{Rows: rows, Columns: columns, Entities: make([][]Cell, rows)}
	b := make([]Cell, rows*columns)
	for i := range area.Entities {
		start := columns * i
		area.Entities[i] = b[start : start+columns : start+columns]
	}
	return area
}

//NewArea creates the dead area and settles the cells at vc
//coordinates outside the area are ignored
func NewArea(rows int, columns int, vc []Coord) Area {
	a := createArea(rows, columns)
	for _, c := range vc {
		if c.Row < 0 || c.Col < 0 || c.Row >= rows || c.Col >= columns {
			continue
		}
		a.Entities[c.Row][c.Col] = true
	}
	return a
}

//NewRandomArea creates the area with exactly alive cells placed at distinct random coordinates
//alive is clamped to [0, rows*columns]
func NewRandomArea(rows int, columns int, alive int, rng *rand.Rand) Area {
	total := rows * columns
	if alive < 0 {
		alive = 0
	} else if alive > total {
		alive = total
	}
	a := createArea(rows, columns)

	//rejection sampling gets slow when the area is nearly full, take a prefix of a permutation instead
	if alive > total/2 {
		for _, idx := range rng.Perm(total)[:alive] {
			a.Entities[idx/columns][idx%columns] = true
		}
		return a
	}

	for settled := 0; settled < alive; {
		r, c := rng.IntN(rows), rng.IntN(columns)
		if a.Entities[r][c] {
			continue
		}
		a.Entities[r][c] = true
		settled++
	}
	return a
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	liveCells := 0
	a.walk(func(_ int, _ int, e Cell) {
		if e {
			liveCells++
		}
	})
	return liveCells
}

//IsAllDead reports whether there are no live cells left
func (a Area) IsAllDead() bool {
	for _, row := range a.Entities {
		for _, e := range row {
			if e {
				return false
			}
		}
	}
	return true
}

//Wrap normalizes the coordinates on the torus
func (a Area) Wrap(row int, col int) (int, int) {
	return (row%a.Rows + a.Rows) % a.Rows, (col%a.Columns + a.Columns) % a.Columns
}

//Equal reports whether both areas have the same size and cells
func (a Area) Equal(b Area) bool {
	if a.Rows != b.Rows || a.Columns != b.Columns {
		return false
	}
	for r := range a.Entities {
		for c := range a.Entities[r] {
			if a.Entities[r][c] != b.Entities[r][c] {
				return false
			}
		}
	}
	return true
}

//Render returns the frame text: one glyph per cell separated by spaces, one line per row
func (a Area) Render() string {
	return a.RenderWith(LiveGlyph, DeadGlyph)
}

//RenderWith is Render with custom glyphs
func (a Area) RenderWith(live string, dead string) string {
	var b strings.Builder
	for i, row := range a.Entities {
		if i != 0 {
			b.WriteByte('\n')
		}
		for j, e := range row {
			if j != 0 {
				b.WriteByte(' ')
			}
			if e {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

//walk walks the entire area and calls the cb function for each cell
func (a Area) walk(cb func(row int, col int, entity Cell)) {
	for r := range a.Entities {
		for c := range a.Entities[r] {
			cb(r, c, a.Entities[r][c])
		}
	}
}
