package universe

import (
	"math/rand"
	"sync"
	"time"
)

//Area is the field where cells are living
//Cells holds one bit per cell, row-major
type Area struct {
	Width  int
	Height int
	Cells  *Bitset
}

//Index translates row and col into the index of the cell's bit
func (a Area) Index(row int, col int) int {
	return row*a.Width + col
}

//Alive reports whether the cell at row, col is alive
func (a Area) Alive(row int, col int) bool {
	return a.Cells.Test(a.Index(row, col))
}

//Options represents the Universe's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u *BaseUniverse)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [row,col] coordinates
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 64
	DefHeight             = 32
	DefMaxSkippedTicks    = 5
)

const (
	RunningStateManual   = 0x0
	RunningStateStep     = 0x1
	RunningStateRun      = 0x2
	RunningStateFinished = 0x3
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//BaseUniverse is the base universe's engine
//implements Universe interface
//can be used to create different implementations by redefining nextIteration func
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	area struct {
		Area
		sync.Mutex
	}
	stateCh       chan Status
	views         []Viewer
	templates     map[string]Template
	controlCh     chan func()
	closeCh       chan bool
	nextIteration func() (hasLiveCells bool, changed bool)
}

//NewBaseUniverse creates the BaseUniverse instance
func NewBaseUniverse(o *Options, stateCh chan Status) *BaseUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	o.Advanced = make(map[string]interface{})
	o.Advanced["engine"] = "base"

	u := BaseUniverse{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	//nextIteration can be redefined by successor
	u.nextIteration = u._nextIteration
	u.state.Details = make(map[string]interface{})

	u.area.Area = Area{Width: o.Width, Height: o.Height, Cells: NewBitset(o.Width * o.Height)}
	u.refreshView()
	go u.mainLoop()
	return &u
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Settle settles the universe with data
//vc - array of row,col coordinates
func (u *BaseUniverse) Settle(vc [][]int) {
	u.area.Lock()
	u.settle(vc, true)
	u.area.Unlock()
	u.refreshView()
}

//SettleTemplate populates the universe with the seeding template
func (u *BaseUniverse) SettleTemplate(name string) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.area.Lock()
	u.settle(tmpl.Coordinates, true)
	live := u.area.Cells.Count()
	u.area.Unlock()
	u.setLiveCells(live)
	u.refreshView()
}

//SettleWithRandomData populates the universe with random data
//each cell becomes alive with probability 1/2
func (u *BaseUniverse) SettleWithRandomData() {
	if mode := u.runningMode(); mode == RunningStateManual || mode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			u.area.Lock()
			for i := 0; i < u.area.Width*u.area.Height; i++ {
				u.area.Cells.Set(i, rand.Float64() < 0.5)
			}
			live := u.area.Cells.Count()
			u.area.Unlock()
			u.setLiveCells(live)
			u.refreshView()
		}
	}
}

//ToggleCell flips the alive state of the cell at row, col
func (u *BaseUniverse) ToggleCell(row int, col int) {
	if row < 0 || col < 0 || row >= u.area.Height || col >= u.area.Width {
		return
	}
	u.area.Lock()
	u.area.Cells.Toggle(u.area.Index(row, col))
	live := u.area.Cells.Count()
	u.area.Unlock()
	u.setLiveCells(live)
	u.refreshView()
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//runningMode reads the current running mode under the state lock
func (u *BaseUniverse) runningMode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//setLiveCells updates the live cell counter under the state lock
func (u *BaseUniverse) setLiveCells(live int) {
	u.state.Lock()
	u.state.LiveCells = live
	u.state.Unlock()
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Area returns current universe area (field where cells is living)
//the cell storage is live, callers on other goroutines use Snapshot instead
func (u *BaseUniverse) Area() Area {
	u.area.Lock()
	defer u.area.Unlock()
	return u.area.Area
}

//Snapshot returns the area with a copy of the cell storage taken under the lock
//safe to render from any goroutine while the engine keeps stepping
func (u *BaseUniverse) Snapshot() Area {
	u.area.Lock()
	defer u.area.Unlock()
	return Area{Width: u.area.Width, Height: u.area.Height, Cells: u.area.Cells.Clone()}
}

//Cells exposes the raw packed cell words for zero-copy rendering
func (u *BaseUniverse) Cells() []uint32 {
	u.area.Lock()
	defer u.area.Unlock()
	return u.area.Cells.Words()
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, close the channels, returns immediately
func (u *BaseUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	close(u.closeCh)
	close(u.controlCh)
}

//settle sets the cells at the given row,col coordinates
func (u *BaseUniverse) settle(vc [][]int, alive bool) {
	for _, v := range vc {
		if v[0] >= u.area.Height || v[1] >= u.area.Width {
			continue
		}
		u.area.Cells.Set(u.area.Index(v[0], v[1]), alive)
	}
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.runningMode()
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}

	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.runningMode() == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step does the new one state calculation for entire universe
func (u *BaseUniverse) step() {

	finished := false
	rm := u.runningMode()
	maxIter := u.options.MaxSteps
	u.state.Lock()
	u.state.IterationNum++
	iterNum := u.state.IterationNum
	u.state.Unlock()
	defer func() {
		if finished {
			u.switchRunningState(RunningStateFinished)
		} else {
			u.switchRunningState(rm)
		}
		u.refreshView()
	}()

	if maxIter != 0 && iterNum >= maxIter {
		finished = true
		return
	}
	u.switchRunningState(RunningStateStep)
	isAlive, changed := u.nextIteration()
	if !isAlive || !changed {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.state.Lock()
	u.area.Lock()

	u.state.IterationNum = 0
	u.state.LiveCells = 0
	u.area.Cells.Reset()
	u.state.RunningMode = RunningStateManual
	u.area.Unlock()
	u.state.Unlock()
	u.switchRunningState(RunningStateManual)
	u.refreshView()

}

//_nextIteration does one simulation cycle
//walking the area and calculating the next state for the each cell
//the simplest implementation: allocates the new bitset on each call,
//all cells state is calculated into it and then it replaces the old one
func (u *BaseUniverse) _nextIteration() (hasLiveCells bool, changed bool) {
	u.area.Lock()
	defer u.area.Unlock()
	start := time.Now()
	next := NewBitset(u.area.Width * u.area.Height)
	liveCells := 0
	u.walkArea(func(row int, col int, alive bool) {
		nextState := u.cellNextState(row, col)
		hasLiveCells = hasLiveCells || nextState
		changed = changed || nextState != alive
		if nextState {
			next.Set(u.area.Index(row, col), true)
			liveCells++
		}
	})
	u.area.Cells = next
	u.state.Lock()
	u.state.LiveCells = liveCells
	u.state.IterationTime = time.Since(start)
	u.state.Unlock()
	return
}

//walkArea walk the entire area and calls the cb function for each cell
func (u *BaseUniverse) walkArea(cb func(row int, col int, alive bool)) {
	for row := 0; row < u.area.Height; row++ {
		for col := 0; col < u.area.Width; col++ {
			cb(row, col, u.area.Alive(row, col))
		}
	}
}

//cellNextState calculates the next state for the cell
//the field wraps around at the edges (toroidal topology)
func (u *BaseUniverse) cellNextState(row int, col int) (live bool) {
	area := u.area.Area
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nr := (row + i + area.Height) % area.Height
			nc := (col + j + area.Width) % area.Width
			if area.Alive(nr, nc) {
				liveNeighbours++
			}
		}
	}

	if liveNeighbours == 3 {
		return true
	}
	return liveNeighbours == 2 && area.Alive(row, col)
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
