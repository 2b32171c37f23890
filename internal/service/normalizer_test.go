package service

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestParseCompletionPlainAndFenced(t *testing.T) {
	payload := `{"income":[{"source":"Salary","amount":5000,"date":"2026-08-01"}],"expenses":[{"category":"Rent","amount":1200,"date":"2026-08-03"}]}`

	variants := map[string]string{
		"plain":       payload,
		"fenced":      "```json\n" + payload + "\n```",
		"bare fenced": "```\n" + payload + "\n```",
	}

	for name, raw := range variants {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseCompletion(raw, testNow)
			if err != nil {
				t.Fatalf("ParseCompletion failed: %v", err)
			}
			if len(parsed.Income) != 1 || len(parsed.Expenses) != 1 {
				t.Fatalf("want 1 income and 1 expense, got %d and %d", len(parsed.Income), len(parsed.Expenses))
			}
			if parsed.Income[0].Source != "Salary" || parsed.Income[0].Amount != 5000 {
				t.Errorf("unexpected income entry: %+v", parsed.Income[0])
			}
			if parsed.Income[0].Category != models.LabelNA {
				t.Errorf("income category should be NA, got %q", parsed.Income[0].Category)
			}
			if parsed.Expenses[0].Category != "Rent" || parsed.Expenses[0].Amount != 1200 {
				t.Errorf("unexpected expense entry: %+v", parsed.Expenses[0])
			}
			if parsed.Expenses[0].Source != models.LabelNA {
				t.Errorf("expense source should be NA, got %q", parsed.Expenses[0].Source)
			}
		})
	}
}

func TestParseCompletionMergedOrder(t *testing.T) {
	raw := `{"income":[{"source":"A","amount":1,"date":"2026-01-01"},{"source":"B","amount":2,"date":"2026-01-02"}],"expenses":[{"category":"C","amount":3,"date":"2026-01-03"}]}`

	parsed, err := ParseCompletion(raw, testNow)
	if err != nil {
		t.Fatalf("ParseCompletion failed: %v", err)
	}
	if len(parsed.Transactions) != 3 {
		t.Fatalf("want 3 merged transactions, got %d", len(parsed.Transactions))
	}
	wantTypes := []models.TransactionType{models.TransactionIncome, models.TransactionIncome, models.TransactionExpense}
	for i, want := range wantTypes {
		if parsed.Transactions[i].Type != want {
			t.Errorf("transaction %d: want type %s, got %s", i, want, parsed.Transactions[i].Type)
		}
	}
}

func TestParseCompletionDefaults(t *testing.T) {
	raw := `{"income":[{"source":"","amount":"500","date":"2024-13-40"}],"expenses":[{"category":"Food","amount":-25,"date":""}]}`

	parsed, err := ParseCompletion(raw, testNow)
	if err != nil {
		t.Fatalf("ParseCompletion failed: %v", err)
	}

	in := parsed.Income[0]
	if in.Source != models.LabelNA {
		t.Errorf("empty source should become NA, got %q", in.Source)
	}
	if in.Amount != 500 {
		t.Errorf("numeric string amount should coerce to 500, got %v", in.Amount)
	}
	if in.Date != testNow.Format(models.DateLayout) {
		t.Errorf("invalid date should fall back to current date, got %q", in.Date)
	}

	ex := parsed.Expenses[0]
	if ex.Amount != 0 {
		t.Errorf("negative amount should clamp to 0, got %v", ex.Amount)
	}
	if ex.Date != testNow.Format(models.DateLayout) {
		t.Errorf("empty date should fall back to current date, got %q", ex.Date)
	}
}

func TestParseCompletionMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose", "I could not find any transactions in this document."},
		{"truncated", `{"income":[{"source":"Sal`},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCompletion(tc.raw, testNow); !errors.Is(err, ErrMalformedCompletion) {
				t.Fatalf("want ErrMalformedCompletion, got %v", err)
			}
		})
	}
}

func TestParseCompletionDeterministic(t *testing.T) {
	raw := `{"income":[{"source":"Salary","amount":"1000.50","date":"2026/08/15"}],"expenses":[]}`

	first, err := ParseCompletion(raw, testNow)
	if err != nil {
		t.Fatalf("ParseCompletion failed: %v", err)
	}
	second, err := ParseCompletion(raw, testNow)
	if err != nil {
		t.Fatalf("ParseCompletion failed: %v", err)
	}
	if len(first.Income) != len(second.Income) || first.Income[0] != second.Income[0] {
		t.Errorf("same input and clock should yield the same output: %+v vs %+v", first.Income[0], second.Income[0])
	}
	if first.Income[0].Date != "2026-08-15" {
		t.Errorf("slash date should normalize to 2026-08-15, got %q", first.Income[0].Date)
	}
}

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 42.5, 42.5},
		{"negative float", -10.0, 0},
		{"numeric string", "500", 500},
		{"padded string", " 12.75 ", 12.75},
		{"negative string", "-3", 0},
		{"junk string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerceAmount(tc.in); got != tc.want {
				t.Errorf("coerceAmount(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFences(tc.in); got != tc.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
