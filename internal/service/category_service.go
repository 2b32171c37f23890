package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	repo   *repository.CategoryRepository
	logger *zap.Logger
}

func NewCategoryService(repo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the owner's categories, seeding the defaults on first use.
func (s *CategoryService) List(ctx context.Context, kind models.CategoryKind, userID uuid.UUID) ([]*models.Category, error) {
	categories, err := s.repo.ListByUser(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	now := time.Now()
	var defaults []*models.Category
	for _, name := range models.DefaultCategories(kind) {
		defaults = append(defaults, &models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			IsDefault: true,
			CreatedAt: now,
		})
	}
	if err := s.repo.InsertBatch(ctx, kind, defaults); err != nil {
		return nil, err
	}

	s.logger.Info("Seeded default categories",
		zap.String("kind", string(kind)),
		zap.String("user_id", userID.String()),
	)

	return s.repo.ListByUser(ctx, kind, userID)
}

// Add creates a category on first explicit request. Adding an existing name
// returns the existing row rather than a duplicate.
func (s *CategoryService) Add(ctx context.Context, kind models.CategoryKind, userID uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.GetByName(ctx, kind, userID, name)
	if err == nil {
		return existing, nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		IsDefault: false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.InsertBatch(ctx, kind, []*models.Category{category}); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes an owned, non-default category.
func (s *CategoryService) Delete(ctx context.Context, kind models.CategoryKind, userID, id uuid.UUID) error {
	category, err := s.repo.GetByID(ctx, kind, userID, id)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return ErrDefaultCategory
	}
	return s.repo.Delete(ctx, kind, userID, id)
}
