// Package animation drives continuous redraws.
//
// # Core Components
//
//   - [Clock]: the injected wall-clock source read once per frame.
//
//   - [FrameScheduler]: the injected "call me on the next display refresh"
//     capability. [TickerScheduler] implements it with a time.Ticker.
//
//   - [Loop]: an owned handle that draws a frame and then requests the
//     next one, forever, until stopped.
//
// # Basic Usage
//
//	sched := animation.NewTickerScheduler(60)
//	defer sched.Close()
//	loop := animation.NewLoop(sched, func() {
//	    renderer.RenderFrame(canvas, clockface.Sample(clock))
//	})
//	loop.Start()
package animation

import (
	"sync"
	"time"
)

// DefaultFPS is the refresh rate used when none is given.
const DefaultFPS = 60

// FrameScheduler invokes a callback once, on the next frame.
type FrameScheduler interface {
	RequestFrame(callback func())
}

// TickerScheduler serves frame requests from a time.Ticker, the way a
// display serves requestAnimationFrame. Callbacks requested during a tick
// run on the following tick. All callbacks run on one goroutine, one at a
// time, in request order.
type TickerScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	pending []func()
	started bool
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewTickerScheduler creates a scheduler ticking fps times per second.
// Values below 1 use DefaultFPS.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps < 1 {
		fps = DefaultFPS
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(fps),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between ticks.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// RequestFrame queues callback for the next tick. Requests after Close are
// dropped.
func (s *TickerScheduler) RequestFrame(callback func()) {
	if callback == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = append(s.pending, callback)
	if !s.started {
		s.started = true
		s.wg.Add(1)
		go s.run()
	}
}

// Close stops the ticker and waits for an in-flight tick to finish.
// Callbacks still queued are discarded.
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.pending = nil
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *TickerScheduler) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			for _, cb := range s.takePending() {
				cb()
			}
		}
	}
}

func (s *TickerScheduler) takePending() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.pending
	s.pending = nil
	return batch
}
