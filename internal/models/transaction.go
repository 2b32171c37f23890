package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// LabelNA marks an unspecified income source or expense category.
const LabelNA = "NA"

// DateLayout is the canonical wire format for transaction dates.
const DateLayout = "2006-01-02"

// Income is a persisted income record, always scoped to its owner.
type Income struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Icon      string    `db:"icon"`
	Source    string    `db:"source"`
	Amount    float64   `db:"amount"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Expense is a persisted expense record, always scoped to its owner.
type Expense struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Icon      string    `db:"icon"`
	Category  string    `db:"category"`
	Amount    float64   `db:"amount"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// StagedTransaction is an extracted-but-unconfirmed transaction. It has no
// persisted identity until committed through the import flow.
type StagedTransaction struct {
	Type     TransactionType `json:"type"`
	Icon     string          `json:"icon,omitempty"`
	Source   string          `json:"source"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
	Date     string          `json:"date"`
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
}

// NormalizeDate canonicalizes a raw date string to YYYY-MM-DD, discarding any
// time-of-day component. Values that do not parse as a calendar date fall back
// to the supplied current date.
func NormalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	return now.Format(DateLayout)
}

// Canonicalize applies the field defaults every transaction must satisfy before
// it may be persisted: a non-empty label (or the NA sentinel) on the field that
// matches its type, a non-negative amount, and a valid YYYY-MM-DD date. It is
// applied both when normalizing model output and again at import time, so the
// invariant holds regardless of entry path.
func (t StagedTransaction) Canonicalize(now time.Time) StagedTransaction {
	if t.Amount < 0 {
		t.Amount = 0
	}
	t.Date = NormalizeDate(t.Date, now)
	switch t.Type {
	case TransactionExpense:
		t.Category = normalizeLabel(t.Category)
		t.Source = LabelNA
	default:
		t.Type = TransactionIncome
		t.Source = normalizeLabel(t.Source)
		t.Category = LabelNA
	}
	return t
}

func normalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return LabelNA
	}
	return s
}
