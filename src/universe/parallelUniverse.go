package universe

import (
	"sync"
	"time"
)

/*
	Universe implementation with multithreaded computation algorithm
	the field is split into row stripes each of which is computed by individual goroutine
	every stripe writes into its own buffer, the buffers are merged after the barrier
	(rows of neighbouring stripes can share a packed word, so stripes never
	write the live buffer directly)
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

type ParallelUniverse struct {
	*BaseUniverse
	workers int
	stripes []stripe
}

//stripe describes the row range for one worker
type stripe struct {
	row1      int //first row, inclusive
	row2      int //last row, inclusive
	buf       *Bitset
	liveCells int
	changed   bool
}

//newStripe creates new stripe covering rows row1..row2
func newStripe(row1 int, row2 int, width int) stripe {
	return stripe{
		row1: row1,
		row2: row2,
		buf:  NewBitset(width * (row2 - row1 + 1)),
	}
}

func NewParallelUniverse(o *Options, stateCh chan Status) Universe {
	pu := ParallelUniverse{BaseUniverse: NewBaseUniverse(o, stateCh)}
	//redefine the nextIteration
	pu.BaseUniverse.nextIteration = pu.nextIteration

	pu.workers = DefWorkers
	rowsPerWorker := pu.area.Height / pu.workers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	} else if rowsPerWorker*pu.workers < pu.area.Height {
		rowsPerWorker++
	}
	pu.stripes = make([]stripe, 0, pu.workers)
	for row1 := 0; row1 < pu.area.Height; row1 += rowsPerWorker {
		row2 := row1 + rowsPerWorker - 1
		if row2 > pu.area.Height-1 {
			row2 = pu.area.Height - 1
		}
		pu.stripes = append(pu.stripes, newStripe(row1, row2, pu.area.Width))
	}
	pu.workers = len(pu.stripes)
	pu.options.Advanced["engine"] = "parallel"
	pu.options.Advanced["Workers"] = pu.workers
	pu.options.Advanced["Rows per worker"] = rowsPerWorker
	return &pu
}

//nextIteration calculates next state for the universe
//starts goroutines, waits for finishing and updates all related metrics
func (pu *ParallelUniverse) nextIteration() (hasLiveCells bool, changed bool) {
	pu.area.Lock()
	defer pu.area.Unlock()
	start := time.Now()
	liveCells := 0
	var waitGroup sync.WaitGroup
	for i := range pu.stripes {
		s := &pu.stripes[i]
		waitGroup.Add(1)
		go func() {
			pu.calcStripe(s)
			waitGroup.Done()
		}()
	}
	waitGroup.Wait()
	for i := range pu.stripes {
		pu.writeStripe(&pu.stripes[i])
		liveCells += pu.stripes[i].liveCells
		changed = changed || pu.stripes[i].changed
	}
	pu.state.Lock()
	pu.state.LiveCells = liveCells
	pu.state.IterationTime = time.Since(start)
	pu.state.Unlock()
	hasLiveCells = liveCells > 0
	return
}

//calcStripe calculates new states for the cells inside the stripe
func (pu *ParallelUniverse) calcStripe(s *stripe) {
	s.liveCells = 0
	s.changed = false
	for row := s.row1; row <= s.row2; row++ {
		for col := 0; col < pu.area.Width; col++ {
			nextState := pu.cellNextState(row, col)
			if nextState {
				s.liveCells++
			}
			s.changed = s.changed || nextState != pu.area.Alive(row, col)
			s.buf.Set((row-s.row1)*pu.area.Width+col, nextState)
		}
	}
}

//writeStripe writes the stripe buffer back to the universe's cell storage
func (pu *ParallelUniverse) writeStripe(s *stripe) {
	for row := s.row1; row <= s.row2; row++ {
		for col := 0; col < pu.area.Width; col++ {
			pu.area.Cells.Set(pu.area.Index(row, col), s.buf.Test((row-s.row1)*pu.area.Width+col))
		}
	}
}
