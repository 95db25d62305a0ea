package testing

import "sync"

// ManualScheduler queues frame requests until the test pumps them.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues callback.
func (s *ManualScheduler) RequestFrame(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, callback)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Pump runs the callbacks queued before the call, like one display
// refresh. Requests made by those callbacks wait for the next Pump.
// It returns how many callbacks ran.
func (s *ManualScheduler) Pump() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

// PumpN pumps n frames.
func (s *ManualScheduler) PumpN(n int) {
	for i := 0; i < n; i++ {
		s.Pump()
	}
}
