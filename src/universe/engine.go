package universe

//Engine computes the next generation of the area
//Next never modifies cur, the returned area is freshly allocated
type Engine interface {
	Name() string
	Next(cur Area) Area
}

//cellNextState calculates the next state for the cell at row, col
//neighbours are taken on the torus: the row above the first one is the last one and so on
func cellNextState(a Area, row int, col int) (live bool) {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nr, nc := a.Wrap(row+i, col+j)
			if a.Entities[nr][nc] {
				liveNeighbours++
			}
		}
	}

	switch {
	case liveNeighbours == 3:
		return true
	case liveNeighbours == 2:
		return bool(a.Entities[row][col])
	}
	return false
}

//calcRows writes the next state of rows [from, to) of cur into next
func calcRows(cur Area, next Area, from int, to int) {
	for r := from; r < to; r++ {
		for c := range cur.Entities[r] {
			next.Entities[r][c] = Cell(cellNextState(cur, r, c))
		}
	}
}
