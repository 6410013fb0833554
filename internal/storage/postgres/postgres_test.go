package postgres

import (
	"context"
	"errors"
	"testing"

	"points-calculator/internal/domain"
	"points-calculator/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	data   []domain.CatalogEntry
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	e := r.data[r.pos-1]
	*dest[0].(*string) = e.ID
	*dest[1].(*string) = e.Category
	*dest[2].(*string) = e.Name
	*dest[3].(*int) = e.BasePoints
	*dest[4].(*bool) = e.BonusEligible
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestLoadCatalog(t *testing.T) {
	data := domain.DefaultCatalog()
	data[0].Name = "Pacote de Bolacha\u00a0  Recheada\u200b"
	rows := &fakeRows{data: data}
	s := NewStorage(&fakeQuerier{rows: rows})

	entries, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 9)
	assert.Equal(t, "Pacote de Bolacha Recheada", entries[0].Name)
	assert.Equal(t, "Caixa de Bis ou Hershey's Mais", entries[3].Name)
	assert.True(t, rows.closed)
}

func TestLoadCatalog_Empty(t *testing.T) {
	s := NewStorage(&fakeQuerier{rows: &fakeRows{}})
	_, err := s.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, storage.ErrEmptyCatalog)
}

func TestLoadCatalog_QueryError(t *testing.T) {
	boom := errors.New("connection refused")
	s := NewStorage(&fakeQuerier{err: boom})
	_, err := s.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestLoadCatalog_RowsError(t *testing.T) {
	boom := errors.New("broken stream")
	s := NewStorage(&fakeQuerier{rows: &fakeRows{data: domain.DefaultCatalog(), err: boom}})
	_, err := s.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, boom)
}
