// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"points-calculator/internal/domain"
	"points-calculator/internal/storage"

	"github.com/jackc/pgx/v5"
)

// querier is the part of *pgxpool.Pool the storage needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Storage struct {
	db querier
}

func NewStorage(db querier) *Storage {
	return &Storage{db: db}
}

// sanitizeString collapses whitespace and drops non-printable characters from labels
func sanitizeString(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			result = append(result, ' ')
		} else if unicode.IsPrint(r) {
			result = append(result, r)
		}
	}
	return strings.Join(strings.Fields(string(result)), " ")
}

func (s *Storage) LoadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, category, name, base_points, bonus_eligible
		FROM catalog_entries
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry
	for rows.Next() {
		var e domain.CatalogEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Name, &e.BasePoints, &e.BonusEligible); err != nil {
			return nil, fmt.Errorf("scan catalog entry: %w", err)
		}
		e.Category = sanitizeString(e.Category)
		e.Name = sanitizeString(e.Name)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	if err := storage.Validate(entries); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("Catalog loaded from postgres", "entries", len(entries))
	return entries, nil
}
