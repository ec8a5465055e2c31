package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"jigsaw/puzzle"
)

var globalTimer time.Duration

// UpdateDelta is the fixed time step of one Update call.
func UpdateDelta() time.Duration {
	tps := eb.TPS()
	if tps <= 0 {
		tps = eb.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = puzzle.Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return puzzle.Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}
