// Package speech abstracts the platform speech capabilities behind two small
// interfaces so the session orchestrator can be driven by real engines in
// production and scripted fakes in tests.
package speech

// ErrorCode classifies recognition failures. The orchestrator's restart
// policy depends on it: no-speech and unknown errors restart, aborted is
// self-inflicted and ignored, permission and network errors are terminal.
type ErrorCode string

const (
	// ErrorNoSpeech means the engine heard nothing before timing out.
	ErrorNoSpeech ErrorCode = "no-speech"
	// ErrorAborted means Abort was called on the engine.
	ErrorAborted ErrorCode = "aborted"
	// ErrorNotAllowed means microphone permission was denied.
	ErrorNotAllowed ErrorCode = "not-allowed"
	// ErrorServiceNotAllowed means the platform blocked the service.
	ErrorServiceNotAllowed ErrorCode = "service-not-allowed"
	// ErrorNetwork means the recognition service is unreachable.
	ErrorNetwork ErrorCode = "network"
	// ErrorOther covers everything else.
	ErrorOther ErrorCode = "other"
)

// RecognitionConfig configures one recognition stream.
type RecognitionConfig struct {
	Locale         string
	Continuous     bool
	InterimResults bool
}

// RecognitionHandler receives the engine's lifecycle and result events.
// Events are delivered in order; implementations must tolerate events
// arriving after Abort.
type RecognitionHandler interface {
	OnStart()
	OnResult(transcript string, isFinal bool)
	OnError(code ErrorCode, message string)
	OnEnd()
}

// Recognition is one live recognition stream. Abort must be safe to call at
// any time, including before Start and more than once.
type Recognition interface {
	Start() error
	Abort()
}

// Engine creates recognition streams. Available reports whether the platform
// offers the capability at all.
type Engine interface {
	Available() bool
	Create(cfg RecognitionConfig, handler RecognitionHandler) Recognition
}

// Utterance is one piece of text to synthesize.
type Utterance struct {
	Text   string
	Locale string
	Rate   float64
	Pitch  float64
}

// Synthesizer speaks text aloud. onEnd fires when the utterance finishes;
// platforms are unreliable about delivering it, so callers must pair Speak
// with their own fallback timer. Cancel stops any in-flight utterance and is
// safe to call at any time.
type Synthesizer interface {
	Available() bool
	Speak(u Utterance, onEnd func())
	Cancel()
}
