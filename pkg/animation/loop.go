package animation

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/rgbclock/pkg/errors"
)

// Loop draws a frame and then asks its scheduler for the next one,
// indefinitely. Only one frame runs at a time, including across Stop and
// Start: a new chain waits for a frame still drawing from the old one.
//
// A panic inside a frame is reported through the errors package and the
// loop carries on with the next frame.
type Loop struct {
	scheduler FrameScheduler
	frame     func()

	mu      sync.Mutex
	running bool
	gen     uint64

	// frameMu is held for the whole of a frame.
	frameMu sync.Mutex

	frames atomic.Uint64
}

// NewLoop creates a stopped loop.
func NewLoop(scheduler FrameScheduler, frame func()) *Loop {
	return &Loop{scheduler: scheduler, frame: frame}
}

// Start draws the first frame synchronously and schedules the rest.
// Calling Start on a running loop does nothing. If a frame from before a
// Stop is still drawing, Start blocks until it finishes.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.tick(gen)
}

// Stop turns the next scheduled frame into a no-op. A frame already in
// progress completes.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frames returns the number of frames that completed without panicking.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// tick runs one frame of generation gen. Callbacks left over from an
// earlier Start are ignored so a restarted loop never runs two chains.
func (l *Loop) tick(gen uint64) {
	l.frameMu.Lock()
	if !l.live(gen) {
		l.frameMu.Unlock()
		return
	}
	l.runFrame()
	l.frameMu.Unlock()

	l.scheduler.RequestFrame(func() { l.tick(gen) })
}

func (l *Loop) live(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running && l.gen == gen
}

func (l *Loop) runFrame() {
	defer errors.Recover("animation.Loop.frame")
	l.frame()
	l.frames.Add(1)
}
