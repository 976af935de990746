package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSMeterEmpty(t *testing.T) {
	m := newFPSMeter()
	latest, mean, min, max := m.Stats()
	assert.Zero(t, latest)
	assert.Zero(t, mean)
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestFPSMeterRates(t *testing.T) {
	m := newFPSMeter()
	now := time.Now()

	//the first frame only arms the meter
	assert.Zero(t, m.Frame(now))

	//100ms frame -> 10 fps, then a 50ms frame -> 20 fps
	assert.InDelta(t, 10.0, m.Frame(now.Add(100*time.Millisecond)), 0.001)
	assert.InDelta(t, 20.0, m.Frame(now.Add(150*time.Millisecond)), 0.001)

	latest, mean, min, max := m.Stats()
	assert.InDelta(t, 20.0, latest, 0.001)
	assert.InDelta(t, 15.0, mean, 0.001)
	assert.InDelta(t, 10.0, min, 0.001)
	assert.InDelta(t, 20.0, max, 0.001)
}

func TestFPSMeterWindowRollsOver(t *testing.T) {
	m := newFPSMeter()
	now := time.Now()
	m.Frame(now)

	//fill the whole window at 10 fps, then push it out at 100 fps
	for i := 1; i <= fpsWindow; i++ {
		now = now.Add(100 * time.Millisecond)
		m.Frame(now)
	}
	for i := 0; i < fpsWindow; i++ {
		now = now.Add(10 * time.Millisecond)
		m.Frame(now)
	}

	latest, mean, min, max := m.Stats()
	assert.Equal(t, fpsWindow, m.count)
	assert.InDelta(t, 100.0, latest, 0.001)
	assert.InDelta(t, 100.0, mean, 0.001)
	assert.InDelta(t, 100.0, min, 0.001)
	assert.InDelta(t, 100.0, max, 0.001)
}

func TestFPSMeterZeroDelta(t *testing.T) {
	m := newFPSMeter()
	now := time.Now()
	m.Frame(now)
	assert.Zero(t, m.Frame(now))
	assert.Zero(t, m.count)
}
