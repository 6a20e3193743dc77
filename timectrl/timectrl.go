package timectrl

import (
	"sync"
	"time"
)

// SimClock is an interface for accessing simulation time, so consumers such
// as the refresh loop and the API depend on a clock abstraction rather than
// a concrete controller type.
type SimClock interface {
	// Now returns the current simulation time.
	Now() time.Time
}

// Mode describes how the TimeController advances simulation time.
type Mode int

const (
	// RealTime advances simulation time one tick per wall-clock tick.
	RealTime Mode = iota
	// Accelerated advances simulation time Scale ticks per wall-clock tick.
	Accelerated
)

// TimeController drives simulation time and notifies registered listeners on
// every tick. A daemon wires a listener that recomputes body states for the
// new epoch. It implements SimClock.
type TimeController struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	// Scale multiplies each tick's simulated advance in Accelerated mode.
	// A Scale of 3600 with a one second tick simulates an hour per second.
	Scale float64

	currentTime time.Time

	listeners []func(time.Time)
}

// NewTimeController constructs a controller. Scale defaults to 1.
func NewTimeController(start time.Time, tick time.Duration, mode Mode) *TimeController {
	return &TimeController{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		Scale:       1,
		currentTime: start,
	}
}

// Now returns the current simulation time. Implements SimClock.
func (tc *TimeController) Now() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.currentTime
}

// SetTime jumps the simulation clock to the given instant.
func (tc *TimeController) SetTime(t time.Time) {
	tc.mu.Lock()
	tc.currentTime = t
	tc.mu.Unlock()
}

// AddListener registers a callback invoked on every tick.
func (tc *TimeController) AddListener(fn func(time.Time)) {
	tc.listeners = append(tc.listeners, fn)
}

// step returns the simulated time advanced per wall-clock tick.
func (tc *TimeController) step() time.Duration {
	if tc.Mode == Accelerated && tc.Scale > 0 {
		return time.Duration(float64(tc.Tick) * tc.Scale)
	}
	return tc.Tick
}

// Start runs the controller until the given simulated duration has elapsed,
// in a separate goroutine. A non-positive duration runs forever. It returns
// a channel that is closed when the controller finishes.
func (tc *TimeController) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		tc.mu.Lock()
		simTime := tc.StartTime
		tc.currentTime = simTime
		tc.mu.Unlock()

		elapsed := time.Duration(0)
		step := tc.step()

		ticker := time.NewTicker(tc.Tick)
		defer ticker.Stop()

		for {
			if duration > 0 && elapsed >= duration {
				return
			}

			<-ticker.C
			simTime = simTime.Add(step)
			elapsed += step

			tc.mu.Lock()
			tc.currentTime = simTime
			tc.mu.Unlock()

			for _, fn := range tc.listeners {
				fn(simTime)
			}
		}
	}()
	return done
}
