package universe

import "time"

//Options represents the Universe's configurable options
type Options struct {
	Rows     int
	Columns  int
	Workers  int                    //goroutines used by the multithreaded engine
	Interval time.Duration          //pause before every frame
	Seed     uint64                 //seed for the random settling, 0 means time based
	Advanced map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Day           int
	AliveAtStart  int
	AliveNow      int
	RunningMode   RunningState
	IterationTime time.Duration
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateRun      RunningState = 0x0
	RunningStateFinished RunningState = 0x1
)

//default options
const (
	DefRows    = 40
	DefColumns = 40
	DefWorkers = 10
)

var DefaultUniverseOptions = Options{
	Rows:    DefRows,
	Columns: DefColumns,
	Workers: DefWorkers,
}

//TotalCells returns the number of cells in the area described by the options
func (o Options) TotalCells() int {
	return o.Rows * o.Columns
}
