package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/models"
)

// ParsedTransactions is the canonical output of completion normalization:
// the per-type lists plus the merged, income-first ordered list.
type ParsedTransactions struct {
	Income       []models.StagedTransaction
	Expenses     []models.StagedTransaction
	Transactions []models.StagedTransaction
}

// completionEntry mirrors one element of the model's two-list schema. Amount
// stays untyped until coercion: models emit numbers, numeric strings, or junk.
type completionEntry struct {
	Source   string `json:"source"`
	Category string `json:"category"`
	Amount   any    `json:"amount"`
	Date     string `json:"date"`
}

type completionDocument struct {
	Income   []completionEntry `json:"income"`
	Expenses []completionEntry `json:"expenses"`
}

// ParseCompletion turns raw completion text into a canonical transaction
// list. It tolerates markdown code fences around the payload, defaults every
// field, and rejects the whole batch only on a document-level parse failure.
// It is a pure function of its inputs: the same raw text and clock yield the
// same output.
func ParseCompletion(raw string, now time.Time) (*ParsedTransactions, error) {
	payload := stripCodeFences(raw)

	var doc completionDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	parsed := &ParsedTransactions{}
	for _, entry := range doc.Income {
		tx := models.StagedTransaction{
			Type:   models.TransactionIncome,
			Source: entry.Source,
			Amount: coerceAmount(entry.Amount),
			Date:   entry.Date,
		}.Canonicalize(now)
		parsed.Income = append(parsed.Income, tx)
	}
	for _, entry := range doc.Expenses {
		tx := models.StagedTransaction{
			Type:     models.TransactionExpense,
			Category: entry.Category,
			Amount:   coerceAmount(entry.Amount),
			Date:     entry.Date,
		}.Canonicalize(now)
		parsed.Expenses = append(parsed.Expenses, tx)
	}

	parsed.Transactions = make([]models.StagedTransaction, 0, len(parsed.Income)+len(parsed.Expenses))
	parsed.Transactions = append(parsed.Transactions, parsed.Income...)
	parsed.Transactions = append(parsed.Transactions, parsed.Expenses...)

	return parsed, nil
}

// stripCodeFences removes leading and trailing markdown fence tokens. The
// model is instructed not to emit them but may anyway; absence is fine too.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// coerceAmount accepts numbers and numeric strings; anything else, or a
// negative value, coerces to 0.
func coerceAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	case json.Number:
		f, err := n.Float64()
		if err != nil || f < 0 {
			return 0
		}
		return f
	}
	return 0
}
