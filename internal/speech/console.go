package speech

import "sync"

// ConsoleEngine adapts typed terminal input to the recognition interface so
// the live session can run without a microphone: every pushed line is
// delivered as a final transcript fragment.
type ConsoleEngine struct {
	mu      sync.Mutex
	current *consoleRecognition
}

// NewConsoleEngine creates a console-backed engine.
func NewConsoleEngine() *ConsoleEngine {
	return &ConsoleEngine{}
}

// Available implements Engine. Typed input is always available.
func (e *ConsoleEngine) Available() bool { return true }

// Create implements Engine.
func (e *ConsoleEngine) Create(_ RecognitionConfig, handler RecognitionHandler) Recognition {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.current = &consoleRecognition{handler: handler}
	return e.current
}

// Push delivers a typed line to the active recognition stream as a final
// fragment. Lines pushed while no stream is listening are dropped.
func (e *ConsoleEngine) Push(text string) {
	e.mu.Lock()
	rec := e.current
	e.mu.Unlock()
	if rec == nil {
		return
	}
	rec.push(text)
}

// PushInterim delivers a typed prefix as an interim fragment.
func (e *ConsoleEngine) PushInterim(text string) {
	e.mu.Lock()
	rec := e.current
	e.mu.Unlock()
	if rec == nil {
		return
	}
	rec.pushInterim(text)
}

type consoleRecognition struct {
	handler RecognitionHandler
	mu      sync.Mutex
	active  bool
}

func (r *consoleRecognition) Start() error {
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()
	r.handler.OnStart()
	return nil
}

func (r *consoleRecognition) Abort() {
	r.mu.Lock()
	wasActive := r.active
	r.active = false
	r.mu.Unlock()
	if wasActive {
		r.handler.OnError(ErrorAborted, "aborted")
		r.handler.OnEnd()
	}
}

func (r *consoleRecognition) push(text string) {
	r.mu.Lock()
	active := r.active
	r.mu.Unlock()
	if active && text != "" {
		r.handler.OnResult(text, true)
	}
}

func (r *consoleRecognition) pushInterim(text string) {
	r.mu.Lock()
	active := r.active
	r.mu.Unlock()
	if active && text != "" {
		r.handler.OnResult(text, false)
	}
}
