package app

import (
	"context"
	"testing"

	"points-calculator/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_BuiltIn(t *testing.T) {
	entries, err := LoadCatalog(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Len(t, entries, 9)
}

func TestLoadCatalog_BadDSN(t *testing.T) {
	_, err := LoadCatalog(context.Background(), config.Config{DBConn: "not a dsn ://"})
	assert.Error(t, err)
}
