// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"points-calculator/internal/domain"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

type CatalogStorage interface {
	LoadCatalog(ctx context.Context) ([]domain.CatalogEntry, error)
}

// Validate checks a loaded catalog before it is used for the whole process lifetime.
func Validate(entries []domain.CatalogEntry) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			return fmt.Errorf("entry %d: id cannot be empty", i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("entry %q: duplicate id", e.ID)
		}
		seen[e.ID] = struct{}{}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("entry %q: name cannot be empty", e.ID)
		}
		if e.BasePoints <= 0 {
			return fmt.Errorf("entry %q: base points must be positive", e.ID)
		}
	}
	return nil
}
