package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind selects between the income and expense category tables.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense
}

func (k CategoryKind) Table() string {
	if k == CategoryKindExpense {
		return "expense_categories"
	}
	return "income_categories"
}

// Category is owner-scoped: identity is the (user_id, name) pair.
// Name matching is exact-string, not case-insensitive.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
}

// Defaults seeded once per owner on first category listing.
// Default categories cannot be deleted.
var (
	DefaultIncomeCategories  = []string{"Salary", "Freelance", "Investments"}
	DefaultExpenseCategories = []string{"Rent", "Food", "Travel", "Bills"}
)

func DefaultCategories(kind CategoryKind) []string {
	if kind == CategoryKindExpense {
		return DefaultExpenseCategories
	}
	return DefaultIncomeCategories
}
