package speech

import "sync"

// MockEngine is a scripted test implementation of Engine. Tests create a
// session through the orchestrator, grab the last MockRecognition and emit
// events on it to simulate the platform.
type MockEngine struct {
	mu           sync.Mutex
	recognitions []*MockRecognition
	available    bool
}

// NewMockEngine creates an available mock engine.
func NewMockEngine() *MockEngine {
	return &MockEngine{available: true}
}

// SetAvailable toggles the capability flag.
func (e *MockEngine) SetAvailable(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.available = v
}

// Available implements Engine.
func (e *MockEngine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// Create implements Engine.
func (e *MockEngine) Create(cfg RecognitionConfig, handler RecognitionHandler) Recognition {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec := &MockRecognition{Config: cfg, handler: handler}
	e.recognitions = append(e.recognitions, rec)
	return rec
}

// Last returns the most recently created recognition, or nil.
func (e *MockEngine) Last() *MockRecognition {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.recognitions) == 0 {
		return nil
	}
	return e.recognitions[len(e.recognitions)-1]
}

// Count returns how many recognition streams were created.
func (e *MockEngine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.recognitions)
}

// MockRecognition records lifecycle calls and lets tests emit events.
type MockRecognition struct {
	handler RecognitionHandler
	Config  RecognitionConfig
	mu      sync.Mutex
	starts  int
	aborts  int
}

// Start implements Recognition.
func (r *MockRecognition) Start() error {
	r.mu.Lock()
	r.starts++
	r.mu.Unlock()
	return nil
}

// Abort implements Recognition.
func (r *MockRecognition) Abort() {
	r.mu.Lock()
	r.aborts++
	r.mu.Unlock()
}

// Starts returns how many times Start was called.
func (r *MockRecognition) Starts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starts
}

// Aborts returns how many times Abort was called.
func (r *MockRecognition) Aborts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aborts
}

// EmitStart delivers the engine "start" event.
func (r *MockRecognition) EmitStart() { r.handler.OnStart() }

// EmitResult delivers a transcript fragment.
func (r *MockRecognition) EmitResult(transcript string, isFinal bool) {
	r.handler.OnResult(transcript, isFinal)
}

// EmitError delivers a recognition error.
func (r *MockRecognition) EmitError(code ErrorCode, message string) {
	r.handler.OnError(code, message)
}

// EmitEnd delivers the engine "end" event.
func (r *MockRecognition) EmitEnd() { r.handler.OnEnd() }

// MockSynthesizer is a scripted test implementation of Synthesizer.
type MockSynthesizer struct {
	mu        sync.Mutex
	spoken    []Utterance
	onEnd     func()
	cancels   int
	available bool
}

// NewMockSynthesizer creates an available mock synthesizer.
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{available: true}
}

// SetAvailable toggles the capability flag.
func (s *MockSynthesizer) SetAvailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = v
}

// Available implements Synthesizer.
func (s *MockSynthesizer) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// Speak implements Synthesizer.
func (s *MockSynthesizer) Speak(u Utterance, onEnd func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, u)
	s.onEnd = onEnd
}

// Cancel implements Synthesizer.
func (s *MockSynthesizer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels++
}

// FinishSpeaking fires the pending utterance's end callback, if any.
func (s *MockSynthesizer) FinishSpeaking() {
	s.mu.Lock()
	onEnd := s.onEnd
	s.onEnd = nil
	s.mu.Unlock()
	if onEnd != nil {
		onEnd()
	}
}

// Spoken returns every utterance spoken so far.
func (s *MockSynthesizer) Spoken() []Utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Utterance, len(s.spoken))
	copy(out, s.spoken)
	return out
}

// Cancels returns how many times Cancel was called.
func (s *MockSynthesizer) Cancels() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancels
}
