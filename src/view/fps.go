package view

import "time"

//fpsWindow is the number of recent frames the meter keeps
const fpsWindow = 100

//fpsMeter measures the frame rate over a ring buffer of the last frame timings
type fpsMeter struct {
	frames [fpsWindow]float64
	count  int
	next   int
	last   time.Time
}

func newFPSMeter() *fpsMeter {
	return &fpsMeter{}
}

//Frame records the end of one frame and returns the instantaneous rate
//the first call only arms the meter and returns 0
func (m *fpsMeter) Frame(now time.Time) float64 {
	if m.last.IsZero() {
		m.last = now
		return 0
	}
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 {
		return 0
	}
	rate := float64(time.Second) / float64(delta)
	m.frames[m.next] = rate
	m.next = (m.next + 1) % fpsWindow
	if m.count < fpsWindow {
		m.count++
	}
	return rate
}

//Stats reports the latest rate and the mean, min and max over the window
func (m *fpsMeter) Stats() (latest, mean, min, max float64) {
	if m.count == 0 {
		return
	}
	latest = m.frames[(m.next-1+fpsWindow)%fpsWindow]
	min = latest
	max = latest
	sum := 0.0
	for i := 0; i < m.count; i++ {
		f := m.frames[i]
		sum += f
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	mean = sum / float64(m.count)
	return
}
