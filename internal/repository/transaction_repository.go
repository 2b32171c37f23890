package repository

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	incomeColumns  = []string{"id", "user_id", "icon", "source", "amount", "date", "created_at", "updated_at"}
	expenseColumns = []string{"id", "user_id", "icon", "category", "amount", "date", "created_at", "updated_at"}
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) CreateIncome(ctx context.Context, income *models.Income) error {
	return r.CreateIncomeBatch(ctx, []*models.Income{income})
}

// CreateIncomeBatch inserts all records in one statement. An empty batch is a
// no-op, not an error.
func (r *TransactionRepository) CreateIncomeBatch(ctx context.Context, incomes []*models.Income) error {
	if len(incomes) == 0 {
		return nil
	}

	builder := squirrel.Insert("incomes").
		Columns(incomeColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, in := range incomes {
		builder = builder.Values(in.ID, in.UserID, in.Icon, in.Source, in.Amount, in.Date, in.CreatedAt, in.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.CreateExpenseBatch(ctx, []*models.Expense{expense})
}

func (r *TransactionRepository) CreateExpenseBatch(ctx context.Context, expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	builder := squirrel.Insert("expenses").
		Columns(expenseColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, ex := range expenses {
		builder = builder.Values(ex.ID, ex.UserID, ex.Icon, ex.Category, ex.Amount, ex.Date, ex.CreatedAt, ex.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListIncomeByUser returns the user's income records newest first. A non-nil
// since narrows the range to records dated on or after it.
func (r *TransactionRepository) ListIncomeByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]*models.Income, error) {
	query := squirrel.Select(incomeColumns...).
		From("incomes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		query = query.Where(squirrel.GtOrEq{"date": *since})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []*models.Income
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.UserID, &in.Icon, &in.Source, &in.Amount, &in.Date, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, &in)
	}

	return incomes, rows.Err()
}

func (r *TransactionRepository) ListExpenseByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		query = query.Where(squirrel.GtOrEq{"date": *since})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var ex models.Expense
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Icon, &ex.Category, &ex.Amount, &ex.Date, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, &ex)
	}

	return expenses, rows.Err()
}

func (r *TransactionRepository) GetIncomeByID(ctx context.Context, userID, id uuid.UUID) (*models.Income, error) {
	query := squirrel.Select(incomeColumns...).
		From("incomes").
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var in models.Income
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&in.ID, &in.UserID, &in.Icon, &in.Source, &in.Amount, &in.Date, &in.CreatedAt, &in.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &in, nil
}

func (r *TransactionRepository) GetExpenseByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var ex models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&ex.ID, &ex.UserID, &ex.Icon, &ex.Category, &ex.Amount, &ex.Date, &ex.CreatedAt, &ex.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &ex, nil
}

func (r *TransactionRepository) UpdateIncome(ctx context.Context, income *models.Income) error {
	query := squirrel.Update("incomes").
		Set("icon", income.Icon).
		Set("source", income.Source).
		Set("amount", income.Amount).
		Set("date", income.Date).
		Set("updated_at", income.UpdatedAt).
		Where(squirrel.Eq{"user_id": income.UserID, "id": income.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("icon", expense.Icon).
		Set("category", expense.Category).
		Set("amount", expense.Amount).
		Set("date", expense.Date).
		Set("updated_at", expense.UpdatedAt).
		Where(squirrel.Eq{"user_id": expense.UserID, "id": expense.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteByID(ctx, "incomes", userID, id)
}

func (r *TransactionRepository) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteByID(ctx, "expenses", userID, id)
}

func (r *TransactionRepository) deleteByID(ctx context.Context, table string, userID, id uuid.UUID) error {
	query := squirrel.Delete(table).
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
