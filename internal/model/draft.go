package model

import "time"

// CommitmentDraft is the structured result of parsing a commitment utterance.
// Every field carries a deterministic fallback: Amount defaults to 0, DueDate
// to today, Description to a truncation of the raw text. CategoryID may be
// empty when no category matched.
type CommitmentDraft struct {
	DueDate     time.Time
	Description string
	CategoryID  string
	Amount      float64
}

// TransactionDraft is the structured result of parsing an expense or income
// utterance, handed to the navigation sink as a form prefill.
type TransactionDraft struct {
	Date            time.Time
	Description     string
	CategoryID      string
	PaymentMethodID string
	SupplierID      string
	Kind            TransactionKind
	Amount          float64
}
