// This file is part of emuxsync.
//
// emuxsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuxsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuxsync.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(20 * time.Millisecond)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
//
// The FpsLimiter must be stopped with Close() when it is no longer required.
package limiter

import (
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger once every period.
type FpsLimiter struct {
	pulse *time.Ticker

	// the period of the limiter in nanoseconds
	period atomic.Int64

	// the measured number of frames per second. see Measured()
	measured    atomic.Value // float32
	measureTime time.Time
	measureCt   int
}

// the interval between measurements of the actual frame rate
const measurePeriod = time.Second

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// Periods of zero or less are treated as one millisecond.
func NewFPSLimiter(period time.Duration) *FpsLimiter {
	if period <= 0 {
		period = time.Millisecond
	}
	lim := &FpsLimiter{
		pulse:       time.NewTicker(period),
		measureTime: time.Now(),
	}
	lim.period.Store(int64(period))
	lim.measured.Store(float32(0))
	return lim
}

// SetPeriod changes the period at which the FpsLimiter waits. Safe to call
// from any goroutine.
func (lim *FpsLimiter) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	lim.period.Store(int64(period))
	lim.pulse.Reset(period)
}

// Period returns the current period of the limiter.
func (lim *FpsLimiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.pulse.C
	lim.measure()
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.pulse.C:
		lim.measure()
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

func (lim *FpsLimiter) measure() {
	lim.measureCt++
	if d := time.Since(lim.measureTime); d >= measurePeriod {
		lim.measured.Store(float32(float64(lim.measureCt) / d.Seconds()))
		lim.measureCt = 0
		lim.measureTime = time.Now()
	}
}

// Measured returns the number of triggers per second, measured over the most
// recent measurement period. Safe to call from any goroutine.
func (lim *FpsLimiter) Measured() float32 {
	return lim.measured.Load().(float32)
}

// Close stops the limiter.
func (lim *FpsLimiter) Close() {
	lim.pulse.Stop()
}
