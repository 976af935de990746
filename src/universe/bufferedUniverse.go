package universe

import "time"

/*
	Universe implementation with two persistent cell buffers
	All cells state is calculated into the spare buffer and the buffers
	are swapped by pointer, so stepping allocates nothing
*/
type BufferedUniverse struct {
	*BaseUniverse
	next *Bitset
}

func NewBufferedUniverse(o *Options, stateCh chan Status) Universe {
	bu := BufferedUniverse{BaseUniverse: NewBaseUniverse(o, stateCh)}
	//redefine the nextIteration
	bu.BaseUniverse.nextIteration = bu.nextIteration
	bu.next = NewBitset(bu.area.Width * bu.area.Height)
	bu.options.Advanced["engine"] = "buffered"
	return &bu
}

func (bu *BufferedUniverse) nextIteration() (hasLiveCells bool, changed bool) {
	bu.area.Lock()
	defer bu.area.Unlock()
	start := time.Now()
	liveCells := 0
	bu.walkArea(func(row int, col int, alive bool) {
		nextState := bu.cellNextState(row, col)
		if nextState {
			liveCells++
		}
		changed = changed || nextState != alive
		bu.next.Set(bu.area.Index(row, col), nextState)
	})

	bu.area.Cells, bu.next = bu.next, bu.area.Cells

	bu.state.Lock()
	bu.state.LiveCells = liveCells
	bu.state.IterationTime = time.Since(start)
	bu.state.Unlock()
	hasLiveCells = liveCells > 0
	return
}
