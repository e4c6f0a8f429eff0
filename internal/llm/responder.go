package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/meubolso/voz/internal/cache"
	"github.com/meubolso/voz/internal/common"
	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/service"
)

// AIResponder answers free-form questions by escalating to a remote provider,
// consulting the answer cache first and degrading to canned answers when the
// provider is unavailable or keeps failing.
type AIResponder struct {
	client Client
	cache  cache.Cache
	retry  service.RetryOptions
}

// NewResponder builds a responder. A nil client means every question gets a
// canned answer; a nil cache disables caching.
func NewResponder(client Client, answerCache cache.Cache) *AIResponder {
	return &AIResponder{
		client: client,
		cache:  answerCache,
		retry: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Ask implements service.Responder. It never returns an error for provider
// failures: the canned fallback keeps the voice flow moving.
func (r *AIResponder) Ask(ctx context.Context, question string, snap *model.Snapshot) (string, error) {
	if r.client == nil {
		return CannedAnswer(question), nil
	}

	financialContext := BuildFinancialContext(snap, time.Now())
	key := answerKey(question, financialContext)

	if r.cache != nil {
		if answer, ok := r.cache.Get(ctx, key); ok {
			slog.Debug("AI answer served from cache", "question", question)
			return answer, nil
		}
	}

	var answer string
	err := common.WithRetry(ctx, func() error {
		var askErr error
		answer, askErr = r.client.Ask(ctx, question, financialContext)
		return askErr
	}, r.retry)
	if err != nil {
		slog.Warn("AI provider failed, using canned answer", "error", err)
		return CannedAnswer(question), nil
	}

	if r.cache != nil {
		r.cache.Set(ctx, key, answer)
	}
	return answer, nil
}

// answerKey hashes the question together with the financial context so a
// changed snapshot invalidates stale cached answers.
func answerKey(question, financialContext string) string {
	sum := sha256.Sum256([]byte(question + "\x00" + financialContext))
	return "voz:answer:" + hex.EncodeToString(sum[:])
}
