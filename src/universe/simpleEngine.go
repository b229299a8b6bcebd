package universe

/*
	Simple engine with two buffers
	All cells state is calculated sequentially to the new buffer which then replaces the current one
*/
type SimpleEngine struct{}

func NewSimpleEngine(_ *Options) Engine {
	return SimpleEngine{}
}

func (SimpleEngine) Name() string { return "simple" }

func (SimpleEngine) Next(cur Area) Area {
	next := createArea(cur.Rows, cur.Columns)
	calcRows(cur, next, 0, cur.Rows)
	return next
}
