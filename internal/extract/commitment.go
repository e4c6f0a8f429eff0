// Package extract turns free-form pt-BR speech into structured drafts for
// commitments and transactions. Everything here is deterministic: each field
// has a fixed fallback and no parsing ambiguity is ever surfaced as an error.
package extract

import (
	"time"

	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/normalize"
)

// Commitment parses a commitment utterance into a fully populated draft:
// amount defaults to 0, due date to today, description to a truncation of the
// raw text. CategoryID stays empty when no category matches.
func Commitment(text string, categories []model.Category, now time.Time) model.CommitmentDraft {
	norm := normalize.Text(text)
	return model.CommitmentDraft{
		Description: extractDescription(text),
		Amount:      extractAmount(norm),
		DueDate:     extractDueDate(norm, now),
		CategoryID:  matchCategory(norm, categories),
	}
}
