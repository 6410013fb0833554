// internal/storage/memory/memory.go
package memory

import (
	"context"
	"slices"

	"points-calculator/internal/domain"
)

// Storage serves a catalog compiled into the binary, used when no database is configured.
type Storage struct {
	entries []domain.CatalogEntry
}

func NewStorage(entries []domain.CatalogEntry) *Storage {
	if entries == nil {
		entries = domain.DefaultCatalog()
	}
	return &Storage{entries: entries}
}

func (s *Storage) LoadCatalog(_ context.Context) ([]domain.CatalogEntry, error) {
	return slices.Clone(s.entries), nil
}
