// Package session implements the voice interaction state machine: it owns the
// recognition engine lifecycle, the debounced auto-execution timer and the
// speech synthesis handoff, and routes classified intents to their handlers.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/meubolso/voz/internal/common"
	"github.com/meubolso/voz/internal/extract"
	"github.com/meubolso/voz/internal/intent"
	"github.com/meubolso/voz/internal/llm"
	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/query"
	"github.com/meubolso/voz/internal/service"
	"github.com/meubolso/voz/internal/speech"
)

// State is the orchestrator's lifecycle phase.
type State string

const (
	// StateIdle means the session exists but recognition has not started.
	StateIdle State = "idle"
	// StateListening means the engine is streaming transcripts.
	StateListening State = "listening"
	// StateProcessing means a command is being executed.
	StateProcessing State = "processing"
	// StateAIThinking means the remote fallback is being awaited.
	StateAIThinking State = "ai_thinking"
	// StateQueryResult means an answer is being shown and spoken.
	StateQueryResult State = "query_result"
	// StateError means recognition failed fatally; the user must retry.
	StateError State = "error"
)

// Classification thresholds: the badge updates above badgeThreshold, the
// debounce timer only arms above executeThreshold.
const (
	badgeThreshold   = 0.3
	executeThreshold = 0.6
)

const (
	transactionFormRoute = "/transactions/new"
	commitmentFormRoute  = "/commitments/new"

	snapshotTimeout  = 5 * time.Second
	responderTimeout = 15 * time.Second
)

// User-facing messages for terminal recognition failures.
const (
	msgRecognitionUnavailable = "Reconhecimento de voz não está disponível neste dispositivo."
	msgMicrophoneDenied       = "Preciso de permissão para usar o microfone. Verifique as configurações e tente de novo."
	msgNetworkFailure         = "Sem conexão com o serviço de voz. Verifique sua internet e tente de novo."
)

const helpAnswer = "Você pode dizer coisas como: \"gastei 50 reais no mercado\", " +
	"\"criar compromisso luz 200 dia 10\", \"quanto gastei esse mês\" ou o nome de uma tela para navegar."

// View is the immutable snapshot of session state handed to the listener
// after every change.
type View struct {
	State      State
	Transcript string
	Interim    string
	Pending    model.Intent
	Answer     string
	Error      string
	Open       bool
}

// Config holds the orchestrator's timing and speech parameters.
type Config struct {
	Locale                string
	StartDelay            time.Duration
	RestartDelay          time.Duration
	DebounceDelay         time.Duration
	SpeakCloseDelay       time.Duration
	NoSynthCloseDelay     time.Duration
	SpeechFallbackMin     time.Duration
	SpeechFallbackPerWord time.Duration
	SpeechRate            float64
	SpeechPitch           float64
}

// DefaultConfig returns the production timing profile.
func DefaultConfig() Config {
	return Config{
		Locale:                "pt-BR",
		StartDelay:            200 * time.Millisecond,
		RestartDelay:          300 * time.Millisecond,
		DebounceDelay:         900 * time.Millisecond,
		SpeakCloseDelay:       800 * time.Millisecond,
		NoSynthCloseDelay:     3 * time.Second,
		SpeechFallbackMin:     4 * time.Second,
		SpeechFallbackPerWord: 450 * time.Millisecond,
		SpeechRate:            1.0,
		SpeechPitch:           1.0,
	}
}

// Deps wires the orchestrator to its collaborators. Engine is required;
// everything else degrades gracefully when nil.
type Deps struct {
	Engine       speech.Engine
	Synthesizer  speech.Synthesizer
	Classifier   *intent.Classifier
	Resolver     *query.Resolver
	Transactions service.TransactionParser
	Navigation   service.NavigationSink
	Snapshots    service.SnapshotProvider
	Responder    service.Responder
	// Listener receives a View after every state change. It is invoked
	// synchronously with internal locks held and must not call back into
	// the orchestrator.
	Listener func(View)
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Orchestrator drives one voice session at a time. All mutable state is
// guarded by mu; every asynchronous callback re-checks the open and
// processing flags before touching it, so a callback resolving after Close
// can never resurrect the session.
type Orchestrator struct {
	mu    sync.Mutex
	cfg   Config
	tasks *taskScheduler

	engine       speech.Engine
	synth        speech.Synthesizer
	classifier   *intent.Classifier
	resolver     *query.Resolver
	transactions service.TransactionParser
	navigation   service.NavigationSink
	snapshots    service.SnapshotProvider
	responder    service.Responder
	listener     func(View)
	clock        func() time.Time

	ctx         context.Context
	recognition speech.Recognition
	state       State
	transcript  string
	interim     string
	pending     model.Intent
	answer      string
	errMsg      string
	open        bool
	processing  bool
}

// New creates an orchestrator. Zero-value config fields fall back to the
// defaults; a nil classifier or resolver falls back to the standard pt-BR
// ones.
func New(deps Deps, cfg Config) *Orchestrator {
	def := DefaultConfig()
	if cfg.Locale == "" {
		cfg.Locale = def.Locale
	}
	if cfg.StartDelay <= 0 {
		cfg.StartDelay = def.StartDelay
	}
	if cfg.RestartDelay <= 0 {
		cfg.RestartDelay = def.RestartDelay
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = def.DebounceDelay
	}
	if cfg.SpeakCloseDelay <= 0 {
		cfg.SpeakCloseDelay = def.SpeakCloseDelay
	}
	if cfg.NoSynthCloseDelay <= 0 {
		cfg.NoSynthCloseDelay = def.NoSynthCloseDelay
	}
	if cfg.SpeechFallbackMin <= 0 {
		cfg.SpeechFallbackMin = def.SpeechFallbackMin
	}
	if cfg.SpeechFallbackPerWord <= 0 {
		cfg.SpeechFallbackPerWord = def.SpeechFallbackPerWord
	}
	if cfg.SpeechRate == 0 {
		cfg.SpeechRate = def.SpeechRate
	}
	if cfg.SpeechPitch == 0 {
		cfg.SpeechPitch = def.SpeechPitch
	}

	classifier := deps.Classifier
	if classifier == nil {
		classifier = intent.NewClassifier()
	}
	resolver := deps.Resolver
	if resolver == nil {
		resolver = query.NewResolver(0)
	}
	transactions := deps.Transactions
	if transactions == nil {
		transactions = extract.NewTransactionParser()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Orchestrator{
		cfg:          cfg,
		tasks:        newTaskScheduler(),
		engine:       deps.Engine,
		synth:        deps.Synthesizer,
		classifier:   classifier,
		resolver:     resolver,
		transactions: transactions,
		navigation:   deps.Navigation,
		snapshots:    deps.Snapshots,
		responder:    deps.Responder,
		listener:     deps.Listener,
		clock:        clock,
		state:        StateIdle,
	}
}

// Open starts a new session: resets all transcript and intent state, clears
// any previous error and schedules recognition start. Opening an already open
// session is a no-op.
func (o *Orchestrator) Open(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.open {
		return
	}
	o.ctx = ctx
	o.open = true
	o.processing = false
	o.transcript = ""
	o.interim = ""
	o.pending = model.Intent{}
	o.answer = ""
	o.errMsg = ""
	o.setStateLocked(StateIdle)
	o.tasks.Schedule(taskStartRecognition, o.cfg.StartDelay, o.startRecognition)
}

// Close tears the session down: aborts the engine, cancels synthesis and all
// pending timers, and releases handles. Idempotent; safe from any state.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if !o.open {
		o.mu.Unlock()
		return
	}
	o.open = false
	// A stale callback checks both flags, so marking processing here shuts
	// the door on everything already in flight.
	o.processing = true
	rec := o.recognition
	o.recognition = nil
	o.setStateLocked(StateIdle)
	o.mu.Unlock()

	o.tasks.CancelAll()
	if rec != nil {
		rec.Abort()
	}
	if o.synth != nil {
		o.synth.Cancel()
	}
}

// Execute runs the current transcript immediately, bypassing the debounce
// timer. At most one execution runs at a time.
func (o *Orchestrator) Execute() error {
	o.mu.Lock()
	switch {
	case !o.open:
		o.mu.Unlock()
		return common.ErrSessionClosed
	case o.processing:
		o.mu.Unlock()
		return common.ErrSessionBusy
	case strings.TrimSpace(o.transcript) == "":
		o.mu.Unlock()
		return common.ErrNothingToRun
	}
	o.mu.Unlock()

	o.execute()
	return nil
}

// SetListener replaces the state change listener. Call it before Open; the
// same re-entrancy rule as Deps.Listener applies.
func (o *Orchestrator) SetListener(listener func(View)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listener = listener
}

// View returns the current session state.
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked()
}

// startRecognition aborts any previous engine instance and starts a fresh
// continuous stream. Runs on the scheduler goroutine and on restart timers.
func (o *Orchestrator) startRecognition() {
	o.mu.Lock()
	if !o.open || o.processing {
		o.mu.Unlock()
		return
	}
	if o.engine == nil || !o.engine.Available() {
		o.failLocked(msgRecognitionUnavailable)
		o.mu.Unlock()
		return
	}
	old := o.recognition
	rec := o.engine.Create(speech.RecognitionConfig{
		Locale:         o.cfg.Locale,
		Continuous:     true,
		InterimResults: true,
	}, recognitionEvents{o})
	o.recognition = rec
	o.mu.Unlock()

	if old != nil {
		old.Abort()
	}
	if err := rec.Start(); err != nil {
		slog.Warn("Recognition start failed, retrying", "error", err)
		o.mu.Lock()
		if o.open && !o.processing {
			o.tasks.Schedule(taskRestart, o.cfg.RestartDelay, o.startRecognition)
		}
		o.mu.Unlock()
	}
}

// recognitionEvents adapts engine callbacks to the orchestrator without
// exporting handler methods on the public type.
type recognitionEvents struct {
	o *Orchestrator
}

func (e recognitionEvents) OnStart() {
	o := e.o
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open || o.processing {
		return
	}
	o.setStateLocked(StateListening)
}

func (e recognitionEvents) OnResult(transcript string, isFinal bool) {
	o := e.o
	fragment := strings.TrimSpace(transcript)
	if fragment == "" {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open || o.processing {
		return
	}

	if !isFinal {
		o.interim = fragment
		o.updateBadgeLocked(strings.TrimSpace(o.transcript + " " + fragment))
		o.notifyLocked()
		return
	}

	if o.transcript == "" {
		o.transcript = fragment
	} else {
		o.transcript += " " + fragment
	}
	o.interim = ""
	classified := o.updateBadgeLocked(o.transcript)

	// A confident final fragment arms the debounce timer; any further
	// speech before it fires re-arms it, so only the last one executes.
	if classified.Confidence >= executeThreshold && classified.Type != model.IntentUnknown {
		o.tasks.Schedule(taskDebounce, o.cfg.DebounceDelay, o.execute)
	}
	o.notifyLocked()
}

func (e recognitionEvents) OnError(code speech.ErrorCode, message string) {
	o := e.o
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open {
		return
	}

	switch code {
	case speech.ErrorAborted:
		// Self-inflicted by our own Abort calls.
	case speech.ErrorNoSpeech:
		if !o.processing {
			o.tasks.Schedule(taskRestart, o.cfg.RestartDelay, o.startRecognition)
		}
	case speech.ErrorNotAllowed, speech.ErrorServiceNotAllowed:
		o.recognition = nil
		o.failLocked(msgMicrophoneDenied)
	case speech.ErrorNetwork:
		o.recognition = nil
		o.failLocked(msgNetworkFailure)
	default:
		slog.Warn("Recognition error, restarting", "code", code, "message", message)
		if !o.processing {
			o.tasks.Schedule(taskRestart, o.cfg.RestartDelay, o.startRecognition)
		}
	}
}

func (e recognitionEvents) OnEnd() {
	o := e.o
	o.mu.Lock()
	defer o.mu.Unlock()
	// A continuous stream that ends on its own gets restarted; terminal
	// error states and executions do not.
	if o.open && !o.processing && o.state == StateListening {
		o.tasks.Schedule(taskRestart, o.cfg.RestartDelay, o.startRecognition)
	}
}

// execute is the single entry point for command execution, from the debounce
// timer or the manual trigger. Guarded so at most one runs per session.
func (o *Orchestrator) execute() {
	o.mu.Lock()
	if !o.open || o.processing {
		o.mu.Unlock()
		return
	}
	text := strings.TrimSpace(o.transcript)
	if text == "" {
		o.mu.Unlock()
		return
	}
	o.processing = true
	rec := o.recognition
	o.recognition = nil
	o.tasks.Cancel(taskDebounce)
	o.setStateLocked(StateProcessing)
	o.mu.Unlock()

	if rec != nil {
		rec.Abort()
	}
	if o.synth != nil {
		o.synth.Cancel()
	}

	o.dispatch(o.classifier.Classify(text))
}

// dispatch routes the final classification to its handler.
func (o *Orchestrator) dispatch(classified model.Intent) {
	slog.Debug("Dispatching voice command",
		"intent", classified.Type,
		"confidence", classified.Confidence)

	switch classified.Type {
	case model.IntentNavigate:
		if classified.Route == "" {
			// Still ambiguous: resume listening instead of guessing.
			o.resumeListening()
			return
		}
		o.navigate(classified.Route, nil)
	case model.IntentTransaction:
		draft := o.transactions.Parse(classified.RawText, o.loadSnapshot(), o.clock())
		o.navigate(transactionFormRoute, draft)
	case model.IntentCommitment:
		snap := o.loadSnapshot()
		draft := extract.Commitment(classified.RawText, snap.Categories, o.clock())
		o.navigate(commitmentFormRoute, draft)
	case model.IntentQuery:
		if classified.QueryKey == "" {
			o.escalate(classified.RawText)
			return
		}
		answer := o.resolver.Resolve(classified.QueryKey, o.loadSnapshot(), o.clock())
		o.deliverAnswer(answer)
	case model.IntentHelp:
		o.deliverAnswer(helpAnswer)
	case model.IntentUnknown:
		o.escalate(classified.RawText)
	}
}

// navigate hands off to the navigation sink and ends the session.
func (o *Orchestrator) navigate(target string, prefill any) {
	if o.navigation != nil {
		o.navigation.Navigate(target, prefill)
	}
	o.Close()
}

// resumeListening returns from a failed dispatch to the listening state.
func (o *Orchestrator) resumeListening() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open {
		return
	}
	o.processing = false
	o.setStateLocked(StateListening)
	o.tasks.Schedule(taskRestart, o.cfg.RestartDelay, o.startRecognition)
}

// escalate forwards the question to the remote AI fallback, degrading to the
// local canned answer when it is unconfigured or fails.
func (o *Orchestrator) escalate(question string) {
	o.mu.Lock()
	if !o.open {
		o.mu.Unlock()
		return
	}
	o.setStateLocked(StateAIThinking)
	ctx := o.ctx
	o.mu.Unlock()

	if o.responder == nil {
		o.deliverAnswer(llm.CannedAnswer(question))
		return
	}

	go func() {
		askCtx, cancel := context.WithTimeout(ctx, responderTimeout)
		defer cancel()
		answer, err := o.responder.Ask(askCtx, question, o.loadSnapshot())
		if err != nil || answer == "" {
			slog.Warn("AI fallback failed, using canned answer", "error", err)
			answer = llm.CannedAnswer(question)
		}
		o.deliverAnswer(answer)
	}()
}

// deliverAnswer surfaces the answer and drives speech synthesis, then closes
// the session once speaking finishes (or a fallback timer fires).
func (o *Orchestrator) deliverAnswer(answer string) {
	o.mu.Lock()
	if !o.open {
		o.mu.Unlock()
		return
	}
	o.answer = answer
	o.setStateLocked(StateQueryResult)
	o.mu.Unlock()

	o.speakAndClose(answer)
}

func (o *Orchestrator) speakAndClose(text string) {
	if o.synth == nil || !o.synth.Available() {
		o.tasks.Schedule(taskClose, o.cfg.NoSynthCloseDelay, o.Close)
		return
	}

	o.synth.Cancel()

	// The synthesis end event is not reliable on every platform; a timer
	// sized by word count guarantees the session terminates regardless.
	words := len(strings.Fields(text))
	fallback := time.Duration(words) * o.cfg.SpeechFallbackPerWord
	if fallback < o.cfg.SpeechFallbackMin {
		fallback = o.cfg.SpeechFallbackMin
	}
	o.tasks.Schedule(taskSpeechFallback, fallback, o.Close)

	o.synth.Speak(speech.Utterance{
		Text:   text,
		Locale: o.cfg.Locale,
		Rate:   o.cfg.SpeechRate,
		Pitch:  o.cfg.SpeechPitch,
	}, func() {
		o.tasks.Schedule(taskClose, o.cfg.SpeakCloseDelay, o.Close)
	})
}

// loadSnapshot fetches the financial snapshot, returning an empty one on any
// failure so parsing and resolution always have something to work with.
func (o *Orchestrator) loadSnapshot() *model.Snapshot {
	if o.snapshots == nil {
		return &model.Snapshot{}
	}
	o.mu.Lock()
	ctx := o.ctx
	o.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	loadCtx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	snap, err := o.snapshots.Snapshot(loadCtx)
	if err != nil || snap == nil {
		slog.Warn("Snapshot unavailable, using empty data", "error", err)
		return &model.Snapshot{}
	}
	return snap
}

// updateBadgeLocked reclassifies the text for UI feedback and returns the
// classification. The badge only changes above the display threshold.
func (o *Orchestrator) updateBadgeLocked(text string) model.Intent {
	classified := o.classifier.Classify(text)
	if classified.Confidence > badgeThreshold {
		o.pending = classified
	}
	return classified
}

func (o *Orchestrator) failLocked(message string) {
	o.errMsg = message
	o.setStateLocked(StateError)
}

func (o *Orchestrator) setStateLocked(state State) {
	o.state = state
	o.notifyLocked()
}

func (o *Orchestrator) viewLocked() View {
	return View{
		State:      o.state,
		Transcript: o.transcript,
		Interim:    o.interim,
		Pending:    o.pending,
		Answer:     o.answer,
		Error:      o.errMsg,
		Open:       o.open,
	}
}

func (o *Orchestrator) notifyLocked() {
	if o.listener != nil {
		o.listener(o.viewLocked())
	}
}
