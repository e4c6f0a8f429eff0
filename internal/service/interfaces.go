// Package service defines the contracts between the voice interpreter and its
// host-application collaborators.
package service

import (
	"context"
	"time"

	"github.com/meubolso/voz/internal/model"
)

// SnapshotProvider supplies the read-only financial snapshot consumed at
// classification and resolution time.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*model.Snapshot, error)
}

// NavigationSink performs the actual screen transition for navigate,
// transaction and commitment intents. Prefill carries the parsed draft for
// form screens and is nil for plain navigation.
type NavigationSink interface {
	Navigate(target string, prefill any)
}

// TransactionParser turns an expense or income utterance into a draft,
// resolving categories, payment methods and suppliers against the snapshot.
type TransactionParser interface {
	Parse(text string, snap *model.Snapshot, now time.Time) model.TransactionDraft
}

// Responder answers free-form questions the canned query resolver cannot,
// typically by escalating to a remote AI service. Implementations degrade to
// a local canned answer instead of surfacing network failures.
type Responder interface {
	Ask(ctx context.Context, question string, snap *model.Snapshot) (string, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
