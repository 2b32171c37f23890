package service

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryStore is the slice of the category repository the committer needs.
type CategoryStore interface {
	ListByNames(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, names []string) ([]*models.Category, error)
	InsertBatch(ctx context.Context, kind models.CategoryKind, categories []*models.Category) error
}

// TransactionStore is the slice of the transaction repository the committer needs.
type TransactionStore interface {
	CreateIncomeBatch(ctx context.Context, incomes []*models.Income) error
	CreateExpenseBatch(ctx context.Context, expenses []*models.Expense) error
}

// ImportService commits a confirmed subset of staged transactions for one
// owner: it ensures referenced categories exist, then bulk-inserts records.
type ImportService struct {
	categories   CategoryStore
	transactions TransactionStore
	logger       *zap.Logger
}

func NewImportService(categories CategoryStore, transactions TransactionStore, logger *zap.Logger) *ImportService {
	return &ImportService{
		categories:   categories,
		transactions: transactions,
		logger:       logger,
	}
}

// Import persists the given staged transactions for the owner. Category
// creation is sequenced strictly before record insertion. Partial success is
// not rolled back: categories created for a batch whose record insert later
// fails simply remain.
func (s *ImportService) Import(ctx context.Context, userID uuid.UUID, income, expenses []models.StagedTransaction) (*dto.InsertedCounts, error) {
	now := time.Now()

	// Staged data passed through user edits, so defaults are re-applied here.
	incomeTxs := make([]models.StagedTransaction, len(income))
	for i, tx := range income {
		tx.Type = models.TransactionIncome
		incomeTxs[i] = tx.Canonicalize(now)
	}
	expenseTxs := make([]models.StagedTransaction, len(expenses))
	for i, tx := range expenses {
		tx.Type = models.TransactionExpense
		expenseTxs[i] = tx.Canonicalize(now)
	}

	if err := s.ensureCategories(ctx, models.CategoryKindIncome, userID, distinctLabels(incomeTxs, func(t models.StagedTransaction) string { return t.Source }), now); err != nil {
		return nil, err
	}
	if err := s.ensureCategories(ctx, models.CategoryKindExpense, userID, distinctLabels(expenseTxs, func(t models.StagedTransaction) string { return t.Category }), now); err != nil {
		return nil, err
	}

	incomeRecords := make([]*models.Income, 0, len(incomeTxs))
	for _, tx := range incomeTxs {
		incomeRecords = append(incomeRecords, &models.Income{
			ID:        uuid.New(),
			UserID:    userID,
			Icon:      tx.Icon,
			Source:    tx.Source,
			Amount:    tx.Amount,
			Date:      mustParseDate(tx.Date, now),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	expenseRecords := make([]*models.Expense, 0, len(expenseTxs))
	for _, tx := range expenseTxs {
		expenseRecords = append(expenseRecords, &models.Expense{
			ID:        uuid.New(),
			UserID:    userID,
			Icon:      tx.Icon,
			Category:  tx.Category,
			Amount:    tx.Amount,
			Date:      mustParseDate(tx.Date, now),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.transactions.CreateIncomeBatch(ctx, incomeRecords); err != nil {
		return nil, err
	}
	if err := s.transactions.CreateExpenseBatch(ctx, expenseRecords); err != nil {
		return nil, err
	}

	s.logger.Info("Import completed",
		zap.String("user_id", userID.String()),
		zap.Int("incomes", len(incomeRecords)),
		zap.Int("expenses", len(expenseRecords)),
	)

	return &dto.InsertedCounts{
		Incomes:  len(incomeRecords),
		Expenses: len(expenseRecords),
	}, nil
}

// ensureCategories inserts any referenced names not already owned by the
// user, as a single set-difference per batch rather than per-row existence
// checks. Concurrent imports referencing the same new name can still race;
// the duplicate row that results is accepted, not treated as an error.
func (s *ImportService) ensureCategories(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, names []string, now time.Time) error {
	if len(names) == 0 {
		return nil
	}

	existing, err := s.categories.ListByNames(ctx, kind, userID, names)
	if err != nil {
		return err
	}

	existingNames := make(map[string]struct{}, len(existing))
	for _, cat := range existing {
		existingNames[cat.Name] = struct{}{}
	}

	var toInsert []*models.Category
	for _, name := range names {
		if _, ok := existingNames[name]; ok {
			continue
		}
		toInsert = append(toInsert, &models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			IsDefault: false,
			CreatedAt: now,
		})
	}

	return s.categories.InsertBatch(ctx, kind, toInsert)
}

// distinctLabels collects distinct non-NA labels in first-seen order.
func distinctLabels(txs []models.StagedTransaction, label func(models.StagedTransaction) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tx := range txs {
		name := label(tx)
		if name == "" || name == models.LabelNA {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// mustParseDate parses a canonical date; canonicalized input always parses,
// but a fallback to today keeps the non-null date invariant regardless.
func mustParseDate(date string, now time.Time) time.Time {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return now
	}
	return t
}
