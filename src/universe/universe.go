package universe

//Universe is the interface to a simulation engine.
//The grid dimensions are fixed for the lifetime of the universe.
type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	Snapshot() Area
	Cells() []uint32
	StateCh() chan Status
	AddTemplate(tmpl Template)
	SettleTemplate(name string)
	SettleWithRandomData()
	Settle(vc [][]int)
	ToggleCell(row int, col int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
