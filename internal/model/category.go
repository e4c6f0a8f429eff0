package model

// CategoryType indicates whether a category applies to income, expenses, or both.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income entries.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense entries.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeBoth represents categories valid for either direction.
	CategoryTypeBoth CategoryType = "both"
)

// Category is a user-defined classification bucket for transactions and commitments.
type Category struct {
	ID   string
	Name string
	Type CategoryType
}

// AcceptsExpense reports whether the category may receive expense entries.
func (c Category) AcceptsExpense() bool {
	return c.Type == CategoryTypeExpense || c.Type == CategoryTypeBoth
}

// AcceptsIncome reports whether the category may receive income entries.
func (c Category) AcceptsIncome() bool {
	return c.Type == CategoryTypeIncome || c.Type == CategoryTypeBoth
}
