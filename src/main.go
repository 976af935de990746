package main

import (
	"strings"

	"github.com/integrii/flaggy"

	"bitlife/src/universe"
	"bitlife/src/view"
)

var (
	//coordinates are [row, col] pairs
	gliderSample = [][]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}

	engines = map[string]func(o *universe.Options, stateCh chan universe.Status) universe.Universe{
		"base": func(o *universe.Options, stateCh chan universe.Status) universe.Universe {
			return universe.NewBaseUniverse(o, stateCh)
		},
		"buffered": universe.NewBufferedUniverse,
		"parallel": universe.NewParallelUniverse,
	}
)

type EnvOptions struct {
	interactive bool
	gui         bool
	randomData  bool
	engine      string
	cellSize    int
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive && !eo.gui {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u := engines[eo.engine](uo, stateCh)

	u.AddTemplate(
		universe.Template{
			Name:        "glider",
			Descr:       "a single glider travelling down-right",
			Coordinates: gliderSample,
		})

	if eo.randomData {
		u.SettleWithRandomData()
	} else {
		u.SettleTemplate("glider")
	}

	switch {
	case eo.gui:
		v := view.NewViewCanvas(eo.cellSize)
		u.RegisterViewer(v)
		v.Start()
		u.Close()
	case eo.interactive:
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
		u.Close()
	default:
		v := view.NewConsoleOut()
		u.RegisterViewer(v)
		v.Start()
		u.Run()
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateFinished {
				break
			}
		}
		u.Close()
		close(stateCh)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	uo = &universe.DefaultUniverseOptions
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	eo = &EnvOptions{engine: "base", cellSize: view.DefCellSize}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps (0 - unlimited)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode in the terminal")
	flaggy.Bool(&eo.gui, "g", "gui", "Start the windowed 2D canvas viewer")
	flaggy.Int(&eo.cellSize, "c", "cellSize", "Cell square size in pixels (gui mode)")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	_, ok := engines[eo.engine]
	if !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	return
}
