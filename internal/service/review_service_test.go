package service

import (
	"errors"
	"testing"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func stagedFixture() []models.StagedTransaction {
	return []models.StagedTransaction{
		{Type: models.TransactionIncome, Source: "Salary", Amount: 5000, Date: "2026-08-01"},
		{Type: models.TransactionExpense, Category: "Rent", Amount: 1200, Date: "2026-08-03"},
	}
}

func TestReviewSessionLifecycle(t *testing.T) {
	svc := NewReviewService(zap.NewNop())
	userID := uuid.New()

	id := svc.Create(userID, stagedFixture())

	list, err := svc.Get(userID, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("want 2 staged transactions, got %d", list.Len())
	}

	svc.Clear(userID, id)
	if _, err := svc.Get(userID, id); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("cleared session should be gone, got %v", err)
	}

	// Clearing again is a no-op, not an error.
	svc.Clear(userID, id)
}

func TestReviewSessionOwnerIsolation(t *testing.T) {
	svc := NewReviewService(zap.NewNop())
	alice := uuid.New()
	bob := uuid.New()

	id := svc.Create(alice, stagedFixture())

	if _, err := svc.Get(bob, id); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("another owner must not see the session, got %v", err)
	}
	if err := svc.ToggleSelect(bob, id, 0); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("another owner must not toggle the session, got %v", err)
	}
}

func TestReviewToggleSelect(t *testing.T) {
	svc := NewReviewService(zap.NewNop())
	userID := uuid.New()
	id := svc.Create(userID, stagedFixture())

	if err := svc.ToggleSelect(userID, id, 0); err != nil {
		t.Fatalf("ToggleSelect failed: %v", err)
	}
	list, _ := svc.Get(userID, id)
	if got := list.SelectedIndices(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("want selection [0], got %v", got)
	}

	if err := svc.ToggleSelect(userID, id, 0); err != nil {
		t.Fatalf("ToggleSelect failed: %v", err)
	}
	list, _ = svc.Get(userID, id)
	if got := list.SelectedIndices(); len(got) != 0 {
		t.Fatalf("second toggle should deselect, got %v", got)
	}

	if err := svc.ToggleSelect(userID, id, 5); !errors.Is(err, models.ErrIndexOutOfRange) {
		t.Fatalf("want ErrIndexOutOfRange, got %v", err)
	}
}

func TestReviewEdit(t *testing.T) {
	svc := NewReviewService(zap.NewNop())
	userID := uuid.New()
	id := svc.Create(userID, stagedFixture())

	edited := models.StagedTransaction{
		Type: models.TransactionIncome, Source: "Bonus", Amount: 750, Date: "2026-08-05",
	}
	if err := svc.Edit(userID, id, 0, edited); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	list, _ := svc.Get(userID, id)
	if got := list.Transactions()[0]; got.Source != "Bonus" || got.Amount != 750 {
		t.Errorf("edit not applied: %+v", got)
	}
}
