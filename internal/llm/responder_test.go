package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meubolso/voz/internal/cache"
	"github.com/meubolso/voz/internal/model"
)

func TestResponderWithoutClientUsesCanned(t *testing.T) {
	r := NewResponder(nil, nil)

	answer, err := r.Ask(context.Background(), "Como posso economizar?", &model.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, answer, "registrando todos os gastos")
}

func TestResponderCachesAnswers(t *testing.T) {
	client := &MockClient{Answer: "Seu maior gasto é moradia."}
	r := NewResponder(client, cache.New("", 0))

	snap := &model.Snapshot{}
	first, err := r.Ask(context.Background(), "Onde gasto mais?", snap)
	require.NoError(t, err)
	assert.Equal(t, "Seu maior gasto é moradia.", first)

	second, err := r.Ask(context.Background(), "Onde gasto mais?", snap)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.Calls())
}

func TestResponderDegradesToCannedOnFailure(t *testing.T) {
	client := &MockClient{Err: errors.New("service unavailable")}
	r := NewResponder(client, nil)

	answer, err := r.Ask(context.Background(), "Vale a pena investir?", &model.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, answer, "reserva de emergência")
	assert.Equal(t, 2, client.Calls())
}

func TestAnswerKeyChangesWithContext(t *testing.T) {
	a := answerKey("pergunta", "contexto um")
	b := answerKey("pergunta", "contexto dois")
	assert.NotEqual(t, a, b)
}
