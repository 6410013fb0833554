// internal/app/catalog.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"points-calculator/internal/config"
	"points-calculator/internal/domain"
	"points-calculator/internal/storage"
	"points-calculator/internal/storage/memory"
	"points-calculator/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadCatalog reads the catalog once at startup: from postgres when DATABASE_URL is set,
// otherwise the built-in one.
func LoadCatalog(ctx context.Context, cfg config.Config) ([]domain.CatalogEntry, error) {
	var src storage.CatalogStorage
	if cfg.DBConn == "" {
		slog.Info("DATABASE_URL not set, using built-in catalog")
		src = memory.NewStorage(nil)
	} else {
		pool, err := pgxpool.New(ctx, cfg.DBConn)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping db: %w", err)
		}
		src = postgres.NewStorage(pool)
	}

	entries, err := src.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if err := storage.Validate(entries); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return entries, nil
}

// SetupLogger installs the text slog handler as the default logger.
func SetupLogger(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
