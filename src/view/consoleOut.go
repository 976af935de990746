package view

import (
	"fmt"
	"time"

	"bitlife/src/universe"
)

//ConsoleOut is the plain stdout viewer used for non-interactive (batch) runs
type ConsoleOut struct {
	u         universe.Universe
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Register(u *universe.BaseUniverse) {
	c.u = u
	o := c.u.Options()
	limit := "unlimited"
	if o.MaxSteps > 0 {
		limit = fmt.Sprintf("%v steps", o.MaxSteps)
	}
	fmt.Printf("Universe %vx%v, engine %v, interval %v, limit %v\n",
		o.Width, o.Height, o.Advanced["engine"], o.Interval, limit)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("Simulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	switch st.RunningMode {
	case universe.RunningStateFinished:
		total := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Printf("\nFinished after %v steps in %v\n", st.IterationNum, total)
		fmt.Printf("  live cells: %v\n", st.LiveCells)
		fmt.Printf("  last step took: %v\n", st.IterationTime.Round(time.Microsecond))
	case universe.RunningStateRun:
		if st.IterationNum%10 == 0 {
			fmt.Printf("  step %v, %v alive\n", st.IterationNum, st.LiveCells)
		}
	}
}
