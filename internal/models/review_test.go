package models

import (
	"errors"
	"testing"
)

func reviewFixture() *ReviewList {
	return NewReviewList([]StagedTransaction{
		{Type: TransactionIncome, Source: "Salary", Amount: 5000, Date: "2026-08-01"},
		{Type: TransactionExpense, Category: "Rent", Amount: 1200, Date: "2026-08-03"},
		{Type: TransactionExpense, Category: "Food", Amount: 80, Date: "2026-08-04"},
	})
}

func TestToggleSelectAllCycle(t *testing.T) {
	list := reviewFixture()

	list.ToggleSelectAll()
	if got := len(list.SelectedIndices()); got != list.Len() {
		t.Fatalf("first toggle should select everything, got %d of %d", got, list.Len())
	}

	list.ToggleSelectAll()
	if got := len(list.SelectedIndices()); got != 0 {
		t.Fatalf("second toggle should clear the selection, got %d", got)
	}
}

func TestToggleSelectAllWithPartialSelection(t *testing.T) {
	list := reviewFixture()

	if err := list.ToggleSelect(1); err != nil {
		t.Fatalf("ToggleSelect failed: %v", err)
	}

	list.ToggleSelectAll()
	if got := len(list.SelectedIndices()); got != list.Len() {
		t.Fatalf("partial selection should expand to all, got %d of %d", got, list.Len())
	}
}

func TestToggleSelectAllEmptyList(t *testing.T) {
	list := NewReviewList(nil)
	list.ToggleSelectAll()
	if got := list.SelectedIndices(); got != nil {
		t.Fatalf("empty list has nothing to select, got %v", got)
	}
}

func TestEditRejectsInvalidReplacement(t *testing.T) {
	cases := []struct {
		name string
		tx   StagedTransaction
	}{
		{"zero amount", StagedTransaction{Source: "X", Amount: 0, Date: "2026-08-01"}},
		{"negative amount", StagedTransaction{Source: "X", Amount: -5, Date: "2026-08-01"}},
		{"empty date", StagedTransaction{Source: "X", Amount: 10, Date: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list := reviewFixture()
			before := list.Transactions()

			if err := list.Edit(0, tc.tx); !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("want ErrValidationFailed, got %v", err)
			}
			if after := list.Transactions(); after[0] != before[0] {
				t.Errorf("rejected edit must leave the entry unchanged: %+v", after[0])
			}
		})
	}
}

func TestEditOutOfRange(t *testing.T) {
	list := reviewFixture()
	tx := StagedTransaction{Source: "X", Amount: 10, Date: "2026-08-01"}

	for _, index := range []int{-1, list.Len()} {
		if err := list.Edit(index, tx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: want ErrIndexOutOfRange, got %v", index, err)
		}
	}
}

func TestSelectedReturnsEntriesInOrder(t *testing.T) {
	list := reviewFixture()

	_ = list.ToggleSelect(2)
	_ = list.ToggleSelect(0)

	selected := list.Selected()
	if len(selected) != 2 {
		t.Fatalf("want 2 selected entries, got %d", len(selected))
	}
	if selected[0].Source != "Salary" || selected[1].Category != "Food" {
		t.Errorf("selection should come back in list order: %+v", selected)
	}
}

func TestTransactionsReturnsCopy(t *testing.T) {
	list := reviewFixture()

	out := list.Transactions()
	out[0].Source = "tampered"

	if list.Transactions()[0].Source != "Salary" {
		t.Error("mutating the returned slice must not affect the list")
	}
}
