package universe

import (
	"math/rand/v2"
	"testing"
)

func newDefaultArea(vc ...Coord) Area {
	return NewArea(DefRows, DefColumns, vc)
}

//forEachEngine runs f for every engine, the multithreaded one with several worker counts
func forEachEngine(t *testing.T, f func(t *testing.T, e Engine)) {
	for _, name := range engineNames() {
		workers := []int{DefWorkers}
		if name == "multithreaded" {
			workers = []int{1, 3, 7, DefWorkers, DefRows, DefRows + 5}
		}
		for _, w := range workers {
			o := DefaultUniverseOptions
			o.Workers = w
			e := engines[name](&o)
			t.Run(name, func(t *testing.T) {
				f(t, e)
			})
		}
	}
}

func expectArea(t *testing.T, got Area, expected Area) {
	t.Helper()
	if !got.Equal(expected) {
		t.Fatalf("unexpected area\ngot:\n%s\nexpected:\n%s", got.Render(), expected.Render())
	}
}

func TestBlockStillLife(t *testing.T) {
	block := newDefaultArea(Coord{10, 10}, Coord{10, 11}, Coord{11, 10}, Coord{11, 11})
	forEachEngine(t, func(t *testing.T, e Engine) {
		expectArea(t, e.Next(block), block)
	})
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := newDefaultArea(Coord{20, 19}, Coord{20, 20}, Coord{20, 21})
	vertical := newDefaultArea(Coord{19, 20}, Coord{20, 20}, Coord{21, 20})
	forEachEngine(t, func(t *testing.T, e Engine) {
		next := e.Next(horizontal)
		expectArea(t, next, vertical)
		expectArea(t, e.Next(next), horizontal)
	})
}

func TestBlinkerAcrossTheEdge(t *testing.T) {
	horizontal := newDefaultArea(Coord{0, DefColumns - 1}, Coord{0, 0}, Coord{0, 1})
	vertical := newDefaultArea(Coord{DefRows - 1, 0}, Coord{0, 0}, Coord{1, 0})
	forEachEngine(t, func(t *testing.T, e Engine) {
		expectArea(t, e.Next(horizontal), vertical)
	})
}

func TestToroidalCorners(t *testing.T) {
	last, lastCol := DefRows-1, DefColumns-1
	//each dead corner has exactly three live neighbours, all of them across the edges
	tests := []struct {
		name   string
		seeded []Coord
		born   Coord
	}{
		{"top left", []Coord{{last, lastCol}, {last, 0}, {0, lastCol}}, Coord{0, 0}},
		{"top right", []Coord{{last, 0}, {last, lastCol}, {0, 0}}, Coord{0, lastCol}},
		{"bottom left", []Coord{{0, lastCol}, {0, 0}, {last, lastCol}}, Coord{last, 0}},
		{"bottom right", []Coord{{0, 0}, {0, lastCol}, {last, 0}}, Coord{last, lastCol}},
	}
	forEachEngine(t, func(t *testing.T, e Engine) {
		for _, tt := range tests {
			next := e.Next(newDefaultArea(tt.seeded...))
			if !next.Entities[tt.born.Row][tt.born.Col] {
				t.Errorf("%s: cell %v was not born", tt.name, tt.born)
			}
		}
	})
}

func TestCornerCountsOppositeCorner(t *testing.T) {
	//(0,0) survives with two neighbours only if the opposite corner is counted
	a := newDefaultArea(Coord{0, 0}, Coord{DefRows - 1, DefColumns - 1}, Coord{0, 1})
	forEachEngine(t, func(t *testing.T, e Engine) {
		if !e.Next(a).Entities[0][0] {
			t.Error("cell (0,0) died, the opposite corner was not counted")
		}
	})
}

func TestFullAreaDies(t *testing.T) {
	full := NewRandomArea(DefRows, DefColumns, DefRows*DefColumns, rand.New(rand.NewPCG(1, 0)))
	forEachEngine(t, func(t *testing.T, e Engine) {
		if next := e.Next(full); !next.IsAllDead() {
			t.Errorf("%d cells survived overcrowding", next.LiveCells())
		}
	})
}

func TestNextIsPure(t *testing.T) {
	a := NewRandomArea(DefRows, DefColumns, 600, rand.New(rand.NewPCG(5, 0)))
	snapshot := NewArea(a.Rows, a.Columns, nil)
	a.walk(func(r int, c int, e Cell) { snapshot.Entities[r][c] = e })
	forEachEngine(t, func(t *testing.T, e Engine) {
		first := e.Next(a)
		second := e.Next(a)
		expectArea(t, second, first)
		expectArea(t, a, snapshot)
	})
}

func TestEnginesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	simple := NewSimpleEngine(nil)
	for i := 0; i < 5; i++ {
		a := NewRandomArea(DefRows, DefColumns, rng.IntN(DefRows*DefColumns), rng)
		expected := a
		for d := 0; d < 10; d++ {
			expected = simple.Next(expected)
		}
		forEachEngine(t, func(t *testing.T, e Engine) {
			got := a
			for d := 0; d < 10; d++ {
				got = e.Next(got)
			}
			expectArea(t, got, expected)
		})
	}
}

func TestMultithreadedOtherSize(t *testing.T) {
	o := DefaultUniverseOptions
	e := NewMultithreadedEngine(&o)
	a := NewArea(7, 9, []Coord{{3, 3}, {3, 4}, {3, 5}})
	expectArea(t, e.Next(a), NewArea(7, 9, []Coord{{2, 4}, {3, 4}, {4, 4}}))
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		rows, workers int
		bands         int
	}{
		{40, 10, 10},
		{40, 3, 3},
		{40, 40, 40},
		{40, 100, 40},
		{40, 0, 1},
		{7, 3, 3},
	}
	for _, tt := range tests {
		was := splitRows(tt.rows, tt.workers)
		if len(was) != tt.bands {
			t.Errorf("splitRows(%d, %d): got %d bands, expected %d", tt.rows, tt.workers, len(was), tt.bands)
		}
		next := 0
		for _, wa := range was {
			if wa.y1 != next || wa.y2 <= wa.y1 {
				t.Fatalf("splitRows(%d, %d): bad band %+v", tt.rows, tt.workers, wa)
			}
			next = wa.y2
		}
		if next != tt.rows {
			t.Errorf("splitRows(%d, %d): rows covered up to %d", tt.rows, tt.workers, next)
		}
	}
}
