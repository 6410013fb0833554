package storage_test

import (
	"context"
	"testing"

	"points-calculator/internal/domain"
	"points-calculator/internal/storage"
	"points-calculator/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, storage.Validate(domain.DefaultCatalog()))
	assert.ErrorIs(t, storage.Validate(nil), storage.ErrEmptyCatalog)

	dup := []domain.CatalogEntry{
		{ID: "a", Name: "A", BasePoints: 1},
		{ID: "a", Name: "B", BasePoints: 2},
	}
	assert.ErrorContains(t, storage.Validate(dup), "duplicate")

	assert.ErrorContains(t, storage.Validate([]domain.CatalogEntry{{ID: " ", Name: "A", BasePoints: 1}}), "id cannot be empty")
	assert.ErrorContains(t, storage.Validate([]domain.CatalogEntry{{ID: "a", Name: "", BasePoints: 1}}), "name cannot be empty")
	assert.ErrorContains(t, storage.Validate([]domain.CatalogEntry{{ID: "a", Name: "A", BasePoints: 0}}), "base points")
}

func TestMemoryStorage(t *testing.T) {
	var s storage.CatalogStorage = memory.NewStorage(nil)
	entries, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 9)
	assert.Equal(t, "bolacha", entries[0].ID)
	assert.Equal(t, "kit", entries[8].ID)

	entries[0].ID = "changed"
	again, _ := s.LoadCatalog(context.Background())
	assert.Equal(t, "bolacha", again[0].ID)
}
