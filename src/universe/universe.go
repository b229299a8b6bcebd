package universe

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

//Viewer is the interface to any Viewer - the object who can display simulation data
type Viewer interface {
	Refresh()
	Register(u *Universe)
}

//Universe drives the simulation: it renders the current area, stops when all cells are dead
//and otherwise replaces the area with the one computed by the engine
type Universe struct {
	options Options
	engine  Engine
	state   struct {
		Status
		sync.Mutex
	}
	area struct {
		Area
		sync.Mutex
	}
	views   []Viewer
	verbose bool
}

//New creates the Universe over the settled area
func New(o *Options, e Engine, a Area) *Universe {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if e == nil {
		e = NewSimpleEngine(o)
	}
	u := &Universe{options: *o, engine: e}
	u.area.Area = a
	u.state.AliveAtStart = a.LiveCells()
	u.state.AliveNow = u.state.AliveAtStart
	u.state.RunningMode = RunningStateRun
	return u
}

//NewRandom creates the Universe settled with alive cells at random distinct positions
func NewRandom(o *Options, e Engine, alive int) *Universe {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	return New(o, e, NewRandomArea(o.Rows, o.Columns, alive, rng))
}

//SetVerbose enables logging of the per day engine time
func (u *Universe) SetVerbose(v bool) {
	u.verbose = v
}

//RegisterViewer registers the viewer - the universe will call the viewer on every frame
func (u *Universe) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

//Engine returns the engine computing the generations
func (u *Universe) Engine() Engine {
	return u.engine
}

//Area returns current universe area
//the returned area is never modified afterwards, the universe replaces it as a whole
func (u *Universe) Area() Area {
	u.area.Lock()
	defer u.area.Unlock()
	return u.area.Area
}

//Run runs the simulation until all cells are dead or ctx is done
//each frame: wait the interval, refresh the viewers, check for the end, compute the next day
func (u *Universe) Run(ctx context.Context) error {
	for {
		if err := u.wait(ctx); err != nil {
			return err
		}
		if u.Area().IsAllDead() {
			u.switchRunningState(RunningStateFinished)
			u.refreshView()
			return nil
		}
		u.refreshView()
		u.Step()
	}
}

//Step computes the next day and publishes it
func (u *Universe) Step() {
	start := time.Now()
	next := u.engine.Next(u.Area())
	elapsed := time.Since(start)
	liveCells := next.LiveCells()

	u.area.Lock()
	u.area.Area = next
	u.area.Unlock()

	u.state.Lock()
	u.state.Day++
	u.state.AliveNow = liveCells
	u.state.IterationTime = elapsed
	day := u.state.Day
	u.state.Unlock()

	if u.verbose {
		log.Printf("day %d computed by %s engine in %v, alive %d", day, u.engine.Name(), elapsed, liveCells)
	}
}

//wait pauses for the configured interval, returns early when ctx is done
func (u *Universe) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil || u.options.Interval <= 0 {
		return err
	}
	t := time.NewTimer(u.options.Interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

//switchRunningState switches the state of the universe to RunningState
func (u *Universe) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	u.state.Unlock()
}

//refreshView calls Refresh event for all registered views
func (u *Universe) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
