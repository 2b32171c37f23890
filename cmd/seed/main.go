package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := applyMigrations(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	if err := seedDefaultCategories(ctx, db, categoryRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed default categories", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

// applyMigrations executes every .sql file under migrations/ in name order.
func applyMigrations(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	dir := findMigrationsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		path := filepath.Join(dir, name)
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, string(contents)); err != nil {
			return err
		}
		appLogger.Info("Applied migration", zap.String("file", name))
	}

	return nil
}

// findMigrationsDir tries paths relative to the current working directory.
func findMigrationsDir() string {
	paths := []string{
		"migrations",
		"../migrations",
		"../../migrations",
	}
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return "migrations"
}

// seedDefaultCategories backfills the default category set for users who
// registered before the defaults existed. New users get theirs lazily on
// first listing.
func seedDefaultCategories(ctx context.Context, db *pgxpool.Pool, categoryRepo *repository.CategoryRepository, appLogger *zap.Logger) error {
	rows, err := db.Query(ctx, "SELECT id FROM users")
	if err != nil {
		return err
	}
	defer rows.Close()

	var userIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, userID := range userIDs {
		for _, kind := range []models.CategoryKind{models.CategoryKindIncome, models.CategoryKindExpense} {
			names := models.DefaultCategories(kind)
			existing, err := categoryRepo.ListByNames(ctx, kind, userID, names)
			if err != nil {
				return err
			}

			have := make(map[string]bool, len(existing))
			for _, cat := range existing {
				have[cat.Name] = true
			}

			var missing []*models.Category
			for _, name := range names {
				if have[name] {
					continue
				}
				missing = append(missing, &models.Category{
					ID:        uuid.New(),
					UserID:    userID,
					Name:      name,
					IsDefault: true,
				})
			}

			if err := categoryRepo.InsertBatch(ctx, kind, missing); err != nil {
				return err
			}
			if len(missing) > 0 {
				appLogger.Info("Seeded default categories",
					zap.String("user_id", userID.String()),
					zap.String("kind", string(kind)),
					zap.Int("count", len(missing)))
			}
		}
	}

	return nil
}
