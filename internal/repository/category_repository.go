package repository

import (
	"context"
	"errors"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an owner-scoped lookup misses.
var ErrNotFound = errors.New("record not found")

var categoryColumns = []string{"id", "user_id", "name", "is_default", "created_at"}

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns every category owned by the user, defaults first.
func (r *CategoryRepository) ListByUser(ctx context.Context, kind models.CategoryKind, userID uuid.UUID) ([]*models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From(kind.Table()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("is_default DESC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCategories(rows)
}

// ListByNames returns the subset of the user's categories whose names appear
// in the given list. Matching is exact-string.
func (r *CategoryRepository) ListByNames(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, names []string) ([]*models.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := squirrel.Select(categoryColumns...).
		From(kind.Table()).
		Where(squirrel.Eq{"user_id": userID, "name": names}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCategories(rows)
}

func (r *CategoryRepository) GetByName(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, name string) (*models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From(kind.Table()).
		Where(squirrel.Eq{"user_id": userID, "name": name}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.IsDefault, &cat.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, kind models.CategoryKind, userID, id uuid.UUID) (*models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From(kind.Table()).
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cat.ID, &cat.UserID, &cat.Name, &cat.IsDefault, &cat.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *CategoryRepository) InsertBatch(ctx context.Context, kind models.CategoryKind, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	builder := squirrel.Insert(kind.Table()).
		Columns(categoryColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, cat := range categories {
		builder = builder.Values(cat.ID, cat.UserID, cat.Name, cat.IsDefault, cat.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, kind models.CategoryKind, userID, id uuid.UUID) error {
	query := squirrel.Delete(kind.Table()).
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

func scanCategories(rows pgx.Rows) ([]*models.Category, error) {
	var categories []*models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.IsDefault, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}
