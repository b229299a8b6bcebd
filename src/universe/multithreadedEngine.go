package universe

import (
	"golang.org/x/sync/errgroup"
)

/*
	Engine with multithreaded computation algorithm
	the field is splitted into row bands each of which is computed by individual goroutine
	workers read only the current area and write only their own rows of the next one,
	so the only synchronization is the wait for all bands before the next area is returned
*/

type MultithreadedEngine struct {
	workers   int
	rows      int
	workAreas []workArea
}

//workArea describes the rows [y1, y2) computed by one worker
type workArea struct {
	y1 int
	y2 int
}

//splitRows splits rows into at most workers contiguous bands
func splitRows(rows int, workers int) []workArea {
	if workers < 1 {
		workers = 1
	}
	linesPerWorker := (rows + workers - 1) / workers
	workAreas := make([]workArea, 0, workers)
	for y1 := 0; y1 < rows; y1 += linesPerWorker {
		workAreas = append(workAreas, workArea{y1: y1, y2: min(y1+linesPerWorker, rows)})
	}
	return workAreas
}

func NewMultithreadedEngine(o *Options) Engine {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	me := &MultithreadedEngine{workers: o.Workers, rows: o.Rows}
	me.workAreas = splitRows(o.Rows, o.Workers)
	if o.Advanced != nil {
		o.Advanced["Workers"] = len(me.workAreas)
	}
	return me
}

func (me *MultithreadedEngine) Name() string { return "multithreaded" }

//Next starts one goroutine per work area and waits for all of them
func (me *MultithreadedEngine) Next(cur Area) Area {
	workAreas := me.workAreas
	if cur.Rows != me.rows {
		workAreas = splitRows(cur.Rows, me.workers)
	}
	next := createArea(cur.Rows, cur.Columns)
	var eg errgroup.Group
	for _, wa := range workAreas {
		eg.Go(func() error {
			calcRows(cur, next, wa.y1, wa.y2)
			return nil
		})
	}
	//workers never fail, Wait is the barrier
	_ = eg.Wait()
	return next
}
