// Package intent maps raw speech transcripts to typed intents through a
// deterministic rule cascade. There is no fuzzy matching: each stage assigns a
// fixed confidence and the first matching stage wins.
package intent

import (
	"strings"

	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/normalize"
)

// Stage confidences. These are thresholds for downstream decisions, not
// calibrated probabilities.
const (
	confidenceExactRoute  = 0.98
	confidenceHelp        = 0.95
	confidenceNavTrigger  = 0.93
	confidenceQuery       = 0.92
	confidenceCommitment  = 0.87
	confidenceTransaction = 0.87
	confidenceHeuristic   = 0.68
)

// Classifier evaluates the rule cascade against static phrase tables.
// Classify is pure: the same text always produces the same Intent.
type Classifier struct {
	routes        []Route
	queryPatterns []queryPattern
}

// NewClassifier returns a classifier configured with the default pt-BR tables.
func NewClassifier() *Classifier {
	return &Classifier{
		routes:        defaultRoutes,
		queryPatterns: defaultQueryPatterns,
	}
}

// Classify runs the cascade top to bottom and returns the first match.
func (c *Classifier) Classify(text string) model.Intent {
	norm := normalize.Text(text)

	// Stage 1: the whole utterance is a page keyword, optionally prefixed
	// with "pagina".
	bare := strings.TrimSpace(strings.TrimPrefix(norm, "pagina "))
	for _, route := range c.routes {
		for _, kw := range route.Keywords {
			if bare == kw {
				return model.Intent{
					Type:       model.IntentNavigate,
					Route:      route.Path,
					RawText:    text,
					Confidence: confidenceExactRoute,
				}
			}
		}
	}

	// Stage 2: help.
	if normalize.ContainsAny(norm, helpTriggers) {
		return model.Intent{Type: model.IntentHelp, RawText: text, Confidence: confidenceHelp}
	}

	// Stage 3: explicit query patterns, scanned in declaration order.
	for _, qp := range c.queryPatterns {
		if normalize.ContainsAny(norm, qp.Phrases) {
			return model.Intent{
				Type:       model.IntentQuery,
				QueryKey:   qp.Key,
				RawText:    text,
				Confidence: confidenceQuery,
			}
		}
	}

	// Stage 4: navigation trigger plus a route keyword anywhere in the text.
	if normalize.ContainsAny(norm, navigationTriggers) {
		if path, ok := c.routeIn(norm); ok {
			return model.Intent{
				Type:       model.IntentNavigate,
				Route:      path,
				RawText:    text,
				Confidence: confidenceNavTrigger,
			}
		}
	}

	// Stage 5: commitment triggers, ahead of transactions because the phrase
	// tables overlap.
	if normalize.ContainsAny(norm, commitmentTriggers) {
		return model.Intent{Type: model.IntentCommitment, RawText: text, Confidence: confidenceCommitment}
	}

	// Stage 6: transaction triggers.
	if normalize.ContainsAny(norm, transactionTriggers) {
		return model.Intent{Type: model.IntentTransaction, RawText: text, Confidence: confidenceTransaction}
	}

	// Stage 7: heuristic fallback for "50 reais mercado" style utterances.
	if len(normalize.Numbers(norm)) > 0 &&
		normalize.ContainsAny(norm, currencyWords) &&
		len(strings.Fields(norm)) >= 2 {
		return model.Intent{Type: model.IntentTransaction, RawText: text, Confidence: confidenceHeuristic}
	}

	return model.Intent{Type: model.IntentUnknown, RawText: text, Confidence: 0}
}

// routeIn returns the first route whose keyword appears anywhere in the
// normalized text.
func (c *Classifier) routeIn(norm string) (string, bool) {
	for _, route := range c.routes {
		for _, kw := range route.Keywords {
			if strings.Contains(norm, kw) {
				return route.Path, true
			}
		}
	}
	return "", false
}
