// Package model defines the domain types shared across the voice interpreter.
package model

// IntentType identifies the classified purpose of an utterance.
type IntentType string

const (
	// IntentNavigate requests a screen transition.
	IntentNavigate IntentType = "navigate"
	// IntentTransaction registers an expense or income.
	IntentTransaction IntentType = "transaction"
	// IntentCommitment schedules a payable or receivable obligation.
	IntentCommitment IntentType = "commitment"
	// IntentQuery asks a canned analytical question over the snapshot.
	IntentQuery IntentType = "query"
	// IntentHelp asks what the assistant can do.
	IntentHelp IntentType = "help"
	// IntentUnknown means no rule matched.
	IntentUnknown IntentType = "unknown"
)

// Intent is the immutable result of one classification call.
// Route is set for navigate intents, QueryKey for query intents.
type Intent struct {
	Type       IntentType
	Route      string
	QueryKey   QueryKey
	RawText    string
	Confidence float64
}

// QueryKey selects one canned analytical question over the financial snapshot.
type QueryKey string

const (
	QueryGreeting           QueryKey = "greeting"
	QueryBalanceMonth       QueryKey = "balance_month"
	QuerySpentToday         QueryKey = "spent_today"
	QuerySpentWeek          QueryKey = "spent_week"
	QuerySpentMonth         QueryKey = "spent_month"
	QueryIncomeMonth        QueryKey = "income_month"
	QueryCommitmentsToday   QueryKey = "commitments_today"
	QueryCommitmentsWeek    QueryKey = "commitments_week"
	QueryCommitmentsMonth   QueryKey = "commitments_month"
	QueryCommitmentsOverdue QueryKey = "commitments_overdue"
	QueryNextCommitment     QueryKey = "next_commitment"
	QueryTopCategory        QueryKey = "top_category"
	QueryBiggestExpense     QueryKey = "biggest_expense"
	QueryLastTransaction    QueryKey = "last_transaction"
	QueryTransactionCount   QueryKey = "transaction_count"
	QuerySavingsProgress    QueryKey = "savings_progress"
	QueryBudgetStatus       QueryKey = "budget_status"
	QueryCompareMonth       QueryKey = "compare_month"
)
