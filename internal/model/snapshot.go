package model

import "time"

// TransactionKind distinguishes money leaving from money entering.
type TransactionKind string

const (
	// KindExpense is money spent.
	KindExpense TransactionKind = "expense"
	// KindIncome is money received.
	KindIncome TransactionKind = "income"
)

// Transaction is a single settled financial movement.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string
	CategoryID  string
	Kind        TransactionKind
	Amount      float64
}

// Commitment is a scheduled payable or receivable obligation.
type Commitment struct {
	DueDate     time.Time
	ID          string
	Description string
	CategoryID  string
	Amount      float64
	Paid        bool
}

// SavingsGoal tracks progress toward a saved amount.
type SavingsGoal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
}

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID         string
	CategoryID string
	Limit      float64
}

// PaymentMethod is a means of payment known to the application.
type PaymentMethod struct {
	ID   string
	Name string
}

// Supplier is a payee known to the application.
type Supplier struct {
	ID   string
	Name string
}

// Snapshot is the read-only view of the user's financial data supplied by the
// data store at classification and resolution time. The interpreter never
// mutates it.
type Snapshot struct {
	Transactions   []Transaction
	Commitments    []Commitment
	Goals          []SavingsGoal
	Budgets        []Budget
	Categories     []Category
	PaymentMethods []PaymentMethod
	Suppliers      []Supplier
}

// CategoryByID returns the category with the given ID, if present.
func (s *Snapshot) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
