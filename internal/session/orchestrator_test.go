package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meubolso/voz/internal/common"
	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/speech"
)

const (
	waitTimeout  = 2 * time.Second
	pollInterval = 2 * time.Millisecond
)

// testConfig compresses every production delay so the full flows run in
// milliseconds. The speech fallback stays long enough to never fire in tests
// that rely on the synthesizer's end callback.
func testConfig() Config {
	return Config{
		StartDelay:            time.Millisecond,
		RestartDelay:          time.Millisecond,
		DebounceDelay:         25 * time.Millisecond,
		SpeakCloseDelay:       5 * time.Millisecond,
		NoSynthCloseDelay:     10 * time.Millisecond,
		SpeechFallbackMin:     10 * time.Second,
		SpeechFallbackPerWord: 100 * time.Millisecond,
	}
}

type navRecorder struct {
	mu       sync.Mutex
	targets  []string
	prefills []any
}

func (n *navRecorder) Navigate(target string, prefill any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	n.prefills = append(n.prefills, prefill)
}

func (n *navRecorder) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.targets)
}

func (n *navRecorder) lastTarget() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.targets) == 0 {
		return ""
	}
	return n.targets[len(n.targets)-1]
}

type stubResponder struct {
	answer string
}

func (s *stubResponder) Ask(_ context.Context, _ string, _ *model.Snapshot) (string, error) {
	return s.answer, nil
}

// openSession opens an orchestrator on a mock engine and waits for the first
// recognition stream to start listening.
func openSession(t *testing.T, deps Deps) (*Orchestrator, *speech.MockEngine) {
	t.Helper()

	engine := speech.NewMockEngine()
	deps.Engine = engine
	o := New(deps, testConfig())
	t.Cleanup(o.Close)

	o.Open(context.Background())
	require.Eventually(t, func() bool { return engine.Count() >= 1 }, waitTimeout, pollInterval)
	engine.Last().EmitStart()
	require.Equal(t, StateListening, o.View().State)
	return o, engine
}

func TestOpenStartsListening(t *testing.T) {
	o, engine := openSession(t, Deps{})

	assert.Equal(t, 1, engine.Last().Starts())
	assert.Equal(t, "pt-BR", engine.Last().Config.Locale)
	assert.True(t, engine.Last().Config.Continuous)
	assert.True(t, o.View().Open)
}

func TestOpenTwiceCreatesOneStream(t *testing.T) {
	o, engine := openSession(t, Deps{})

	o.Open(context.Background())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, engine.Count())
}

func TestEngineUnavailableFailsTerminally(t *testing.T) {
	engine := speech.NewMockEngine()
	engine.SetAvailable(false)
	o := New(Deps{Engine: engine}, testConfig())
	t.Cleanup(o.Close)

	o.Open(context.Background())
	require.Eventually(t, func() bool { return o.View().State == StateError }, waitTimeout, pollInterval)
	assert.Equal(t, msgRecognitionUnavailable, o.View().Error)
	assert.Equal(t, 0, engine.Count())
}

func TestConfidentFinalNavigatesAfterDebounce(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("ir para relatórios", true)
	assert.Equal(t, model.IntentNavigate, o.View().Pending.Type)

	require.Eventually(t, func() bool { return nav.calls() == 1 }, waitTimeout, pollInterval)
	assert.Equal(t, "/reports", nav.lastTarget())
	require.Eventually(t, func() bool { return !o.View().Open }, waitTimeout, pollInterval)
}

func TestDebounceReArmExecutesOnce(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	// Two confident finals inside one debounce window: the second re-arms
	// the timer and only the accumulated transcript executes, once.
	engine.Last().EmitResult("ir para relatórios", true)
	engine.Last().EmitResult("quero ver gráficos", true)

	require.Eventually(t, func() bool { return nav.calls() >= 1 }, waitTimeout, pollInterval)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, nav.calls())
	assert.Equal(t, "/reports", nav.lastTarget())
	assert.False(t, o.View().Open)
}

func TestManualExecuteBypassesDebounce(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("ir para metas", true)
	require.NoError(t, o.Execute())

	assert.Equal(t, 1, nav.calls())
	assert.Equal(t, "/goals", nav.lastTarget())

	// The debounce timer firing afterwards must not execute again.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, nav.calls())
	assert.False(t, o.View().Open)
}

func TestExecuteErrorStates(t *testing.T) {
	o, engine := openSession(t, Deps{})

	assert.ErrorIs(t, o.Execute(), common.ErrNothingToRun)

	engine.Last().EmitResult("blá blá blá", true)
	require.NoError(t, o.Execute())
	require.Eventually(t, func() bool { return !o.View().Open }, waitTimeout, pollInterval)

	assert.ErrorIs(t, o.Execute(), common.ErrSessionClosed)
}

func TestInterimUpdatesBadgeWithoutArming(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("quanto gastei hoje", false)

	view := o.View()
	assert.Equal(t, model.IntentQuery, view.Pending.Type)
	assert.Equal(t, "quanto gastei hoje", view.Interim)
	assert.Empty(t, view.Transcript)
	assert.False(t, o.tasks.Pending(taskDebounce))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, nav.calls())
	assert.True(t, o.View().Open)
}

func TestUnknownSpeechDoesNotArmDebounce(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("blá blá blá", true)

	assert.False(t, o.tasks.Pending(taskDebounce))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, nav.calls())
	assert.Equal(t, StateListening, o.View().State)
}

func TestTransactionNavigatesWithDraft(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("gastei 50 reais no mercado", true)
	require.Eventually(t, func() bool { return nav.calls() == 1 }, waitTimeout, pollInterval)

	assert.Equal(t, transactionFormRoute, nav.lastTarget())
	draft, ok := nav.prefills[0].(model.TransactionDraft)
	require.True(t, ok)
	assert.InDelta(t, 50, draft.Amount, 0.001)
	assert.Equal(t, model.KindExpense, draft.Kind)
	assert.False(t, o.View().Open)
}

func TestCommitmentNavigatesWithDraft(t *testing.T) {
	nav := &navRecorder{}
	_, engine := openSession(t, Deps{Navigation: nav})

	engine.Last().EmitResult("criar compromisso luz 200 dia 10", true)
	require.Eventually(t, func() bool { return nav.calls() == 1 }, waitTimeout, pollInterval)

	assert.Equal(t, commitmentFormRoute, nav.lastTarget())
	draft, ok := nav.prefills[0].(model.CommitmentDraft)
	require.True(t, ok)
	assert.Equal(t, "Luz", draft.Description)
	assert.InDelta(t, 200, draft.Amount, 0.001)
	assert.Equal(t, 10, draft.DueDate.Day())
}

func TestQueryAnswerIsSpokenThenSessionCloses(t *testing.T) {
	synth := speech.NewMockSynthesizer()
	o, engine := openSession(t, Deps{Synthesizer: synth})

	engine.Last().EmitResult("quanto gastei hoje", true)

	require.Eventually(t, func() bool { return len(synth.Spoken()) == 1 }, waitTimeout, pollInterval)
	view := o.View()
	assert.Equal(t, StateQueryResult, view.State)
	assert.NotEmpty(t, view.Answer)
	assert.Equal(t, view.Answer, synth.Spoken()[0].Text)

	synth.FinishSpeaking()
	require.Eventually(t, func() bool { return !o.View().Open }, waitTimeout, pollInterval)
}

func TestHelpAnswer(t *testing.T) {
	synth := speech.NewMockSynthesizer()
	o, engine := openSession(t, Deps{Synthesizer: synth})

	engine.Last().EmitResult("ajuda", true)

	require.Eventually(t, func() bool { return o.View().Answer != "" }, waitTimeout, pollInterval)
	assert.Equal(t, helpAnswer, o.View().Answer)
}

func TestNoSynthesizerClosesOnTimer(t *testing.T) {
	o, engine := openSession(t, Deps{})

	engine.Last().EmitResult("ajuda", true)

	require.Eventually(t, func() bool { return !o.View().Open }, waitTimeout, pollInterval)
	assert.Equal(t, helpAnswer, o.View().Answer)
}

func TestUnknownExecuteEscalatesToResponder(t *testing.T) {
	responder := &stubResponder{answer: "Considere guardar dez por cento da renda."}
	o, engine := openSession(t, Deps{Responder: responder})

	engine.Last().EmitResult("o que devo fazer com meu dinheiro", true)
	require.NoError(t, o.Execute())

	require.Eventually(t, func() bool { return o.View().Answer != "" }, waitTimeout, pollInterval)
	assert.Equal(t, responder.answer, o.View().Answer)
}

func TestNavigateWithoutRouteResumesListening(t *testing.T) {
	o, engine := openSession(t, Deps{})

	o.mu.Lock()
	o.processing = true
	o.mu.Unlock()
	o.dispatch(model.Intent{Type: model.IntentNavigate})

	require.Eventually(t, func() bool { return engine.Count() == 2 }, waitTimeout, pollInterval)
	assert.Equal(t, StateListening, o.View().State)
	assert.True(t, o.View().Open)
}

func TestNoSpeechErrorRestarts(t *testing.T) {
	_, engine := openSession(t, Deps{})

	engine.Last().EmitError(speech.ErrorNoSpeech, "no speech detected")
	require.Eventually(t, func() bool { return engine.Count() == 2 }, waitTimeout, pollInterval)
}

func TestAbortedErrorIsIgnored(t *testing.T) {
	o, engine := openSession(t, Deps{})

	engine.Last().EmitError(speech.ErrorAborted, "aborted")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, engine.Count())
	assert.Equal(t, StateListening, o.View().State)
}

func TestMicrophoneDeniedIsTerminal(t *testing.T) {
	o, engine := openSession(t, Deps{})

	engine.Last().EmitError(speech.ErrorNotAllowed, "permission denied")

	view := o.View()
	assert.Equal(t, StateError, view.State)
	assert.Equal(t, msgMicrophoneDenied, view.Error)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, engine.Count())
}

func TestNetworkErrorIsTerminal(t *testing.T) {
	o, engine := openSession(t, Deps{})

	engine.Last().EmitError(speech.ErrorNetwork, "unreachable")

	view := o.View()
	assert.Equal(t, StateError, view.State)
	assert.Equal(t, msgNetworkFailure, view.Error)
}

func TestStreamEndRestartsWhileListening(t *testing.T) {
	_, engine := openSession(t, Deps{})

	engine.Last().EmitEnd()
	require.Eventually(t, func() bool { return engine.Count() == 2 }, waitTimeout, pollInterval)
}

func TestCloseIsIdempotent(t *testing.T) {
	o, engine := openSession(t, Deps{})

	o.Close()
	o.Close()

	assert.False(t, o.View().Open)
	assert.Equal(t, 1, engine.Last().Aborts())
}

func TestStaleEventsAfterCloseAreIgnored(t *testing.T) {
	nav := &navRecorder{}
	o, engine := openSession(t, Deps{Navigation: nav})

	rec := engine.Last()
	o.Close()

	rec.EmitResult("ir para relatórios", true)
	rec.EmitError(speech.ErrorNoSpeech, "late")
	rec.EmitEnd()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, engine.Count())
	assert.Equal(t, 0, nav.calls())
	assert.Empty(t, o.View().Transcript)
}

func TestReopenAfterCloseResetsState(t *testing.T) {
	synth := speech.NewMockSynthesizer()
	o, engine := openSession(t, Deps{Synthesizer: synth})

	engine.Last().EmitResult("ajuda", true)
	require.Eventually(t, func() bool { return o.View().Answer != "" }, waitTimeout, pollInterval)
	o.Close()

	o.Open(context.Background())
	require.Eventually(t, func() bool { return engine.Count() == 2 }, waitTimeout, pollInterval)
	engine.Last().EmitStart()

	view := o.View()
	assert.Empty(t, view.Answer)
	assert.Empty(t, view.Transcript)
	assert.Equal(t, StateListening, view.State)
}
