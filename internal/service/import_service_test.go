package service

import (
	"context"
	"testing"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeCategoryStore keeps categories per kind, keyed by (user, name).
type fakeCategoryStore struct {
	categories map[models.CategoryKind][]*models.Category
	inserts    int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{
		categories: make(map[models.CategoryKind][]*models.Category),
	}
}

func (f *fakeCategoryStore) ListByNames(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, names []string) ([]*models.Category, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var out []*models.Category
	for _, cat := range f.categories[kind] {
		if cat.UserID == userID && wanted[cat.Name] {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) InsertBatch(ctx context.Context, kind models.CategoryKind, categories []*models.Category) error {
	f.inserts += len(categories)
	f.categories[kind] = append(f.categories[kind], categories...)
	return nil
}

func (f *fakeCategoryStore) names(kind models.CategoryKind, userID uuid.UUID) []string {
	var out []string
	for _, cat := range f.categories[kind] {
		if cat.UserID == userID {
			out = append(out, cat.Name)
		}
	}
	return out
}

type fakeTransactionStore struct {
	incomes  []*models.Income
	expenses []*models.Expense
}

func (f *fakeTransactionStore) CreateIncomeBatch(ctx context.Context, incomes []*models.Income) error {
	f.incomes = append(f.incomes, incomes...)
	return nil
}

func (f *fakeTransactionStore) CreateExpenseBatch(ctx context.Context, expenses []*models.Expense) error {
	f.expenses = append(f.expenses, expenses...)
	return nil
}

func TestImportCreatesMissingCategories(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())
	userID := uuid.New()

	income := []models.StagedTransaction{
		{Source: "Bonus", Amount: 300, Date: "2026-08-10"},
	}
	expenses := []models.StagedTransaction{
		{Category: "Food", Amount: 45, Date: "2026-08-11"},
		{Category: "Food", Amount: 12, Date: "2026-08-12"},
	}

	counts, err := svc.Import(context.Background(), userID, income, expenses)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if counts.Incomes != 1 || counts.Expenses != 2 {
		t.Errorf("want counts 1/2, got %d/%d", counts.Incomes, counts.Expenses)
	}

	incomeNames := categories.names(models.CategoryKindIncome, userID)
	if len(incomeNames) != 1 || incomeNames[0] != "Bonus" {
		t.Errorf("want income category [Bonus], got %v", incomeNames)
	}
	expenseNames := categories.names(models.CategoryKindExpense, userID)
	if len(expenseNames) != 1 || expenseNames[0] != "Food" {
		t.Errorf("duplicate labels should create one category, got %v", expenseNames)
	}
	if len(transactions.incomes) != 1 || len(transactions.expenses) != 2 {
		t.Errorf("want 1 income and 2 expense records, got %d and %d",
			len(transactions.incomes), len(transactions.expenses))
	}
}

func TestImportReusesExistingCategories(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())
	userID := uuid.New()

	income := []models.StagedTransaction{{Source: "Bonus", Amount: 100, Date: "2026-08-01"}}

	if _, err := svc.Import(context.Background(), userID, income, nil); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := svc.Import(context.Background(), userID, income, nil); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	if names := categories.names(models.CategoryKindIncome, userID); len(names) != 1 {
		t.Errorf("re-import should not duplicate the category, got %v", names)
	}
	if len(transactions.incomes) != 2 {
		t.Errorf("both imports should persist records, got %d", len(transactions.incomes))
	}
}

func TestImportCategoryOwnerScope(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())

	alice := uuid.New()
	bob := uuid.New()
	income := []models.StagedTransaction{{Source: "Bonus", Amount: 100, Date: "2026-08-01"}}

	if _, err := svc.Import(context.Background(), alice, income, nil); err != nil {
		t.Fatalf("alice import failed: %v", err)
	}
	if _, err := svc.Import(context.Background(), bob, income, nil); err != nil {
		t.Fatalf("bob import failed: %v", err)
	}

	if names := categories.names(models.CategoryKindIncome, bob); len(names) != 1 {
		t.Errorf("matching category of another owner must not be reused, got %v", names)
	}
	if categories.inserts != 2 {
		t.Errorf("each owner gets their own category row, want 2 inserts, got %d", categories.inserts)
	}
}

func TestImportSkipsNALabels(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())
	userID := uuid.New()

	income := []models.StagedTransaction{
		{Source: models.LabelNA, Amount: 100, Date: "2026-08-01"},
		{Source: "", Amount: 50, Date: "2026-08-02"},
	}

	counts, err := svc.Import(context.Background(), userID, income, nil)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if counts.Incomes != 2 {
		t.Errorf("NA-labelled records still import, want 2, got %d", counts.Incomes)
	}
	if names := categories.names(models.CategoryKindIncome, userID); len(names) != 0 {
		t.Errorf("NA labels must not become categories, got %v", names)
	}
}

func TestImportEmptyLists(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())

	counts, err := svc.Import(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("Import of empty lists failed: %v", err)
	}
	if counts.Incomes != 0 || counts.Expenses != 0 {
		t.Errorf("want zero counts, got %d/%d", counts.Incomes, counts.Expenses)
	}
}

func TestImportCanonicalizesStagedEdits(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := &fakeTransactionStore{}
	svc := NewImportService(categories, transactions, zap.NewNop())
	userID := uuid.New()

	// Simulates a user edit that blanked the label and broke the date.
	income := []models.StagedTransaction{{Source: "  ", Amount: 100, Date: "not-a-date"}}

	if _, err := svc.Import(context.Background(), userID, income, nil); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(transactions.incomes) != 1 {
		t.Fatalf("want 1 income record, got %d", len(transactions.incomes))
	}
	record := transactions.incomes[0]
	if record.Source != models.LabelNA {
		t.Errorf("blank source should persist as NA, got %q", record.Source)
	}
	if record.Date.IsZero() {
		t.Error("unparseable date should fall back to the current date, not zero")
	}
	if record.UserID != userID {
		t.Errorf("record must be scoped to the importing owner")
	}
}
