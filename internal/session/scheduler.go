package session

import (
	"sync"
	"time"
)

// Task names. One name means one pending timer: scheduling a name that is
// already armed replaces it, which is exactly the debounce re-arm semantics.
const (
	taskStartRecognition = "start-recognition"
	taskRestart          = "restart-recognition"
	taskDebounce         = "debounce-execute"
	taskClose            = "close-session"
	taskSpeechFallback   = "speech-fallback-close"
)

// taskScheduler centralizes every timer the orchestrator arms, so "cancel all
// pending work" is a single call instead of tracking handles by hand.
type taskScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newTaskScheduler() *taskScheduler {
	return &taskScheduler{timers: make(map[string]*time.Timer)}
}

// Schedule arms a single-shot timer under the given name, replacing any timer
// already armed under it.
func (s *taskScheduler) Schedule(name string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[name]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// Drop the handle only if it still belongs to this firing.
		if s.timers[name] == timer {
			delete(s.timers, name)
		}
		s.mu.Unlock()
		fn()
	})
	s.timers[name] = timer
}

// Cancel stops the named timer if it is pending.
func (s *taskScheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[name]; ok {
		t.Stop()
		delete(s.timers, name)
	}
}

// CancelAll stops every pending timer.
func (s *taskScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, t := range s.timers {
		t.Stop()
		delete(s.timers, name)
	}
}

// Pending reports whether the named timer is armed.
func (s *taskScheduler) Pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[name]
	return ok
}
