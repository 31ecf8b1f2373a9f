package localstorage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "data", []byte(`[{"id":"1"}]`)))

	v, err := r.Get(ctx, "data")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), v)
}

func TestGet_Absent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "data")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_OverwritesWholeValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "data", []byte(`[{"id":"1"},{"id":"2"}]`)))
	require.NoError(t, r.Set(ctx, "data", []byte(`[]`)))

	v, err := r.Get(ctx, "data")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestGet_EmptyValueIsNotAbsent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "data", []byte{}))

	v, err := r.Get(ctx, "data")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Len(t, v, 0)

	missing, err := r.Get(ctx, "other")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestDelete_RemovesKeyAndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "data", []byte("x")))
	require.NoError(t, r.Delete(ctx, "data"))

	v, err := r.Get(ctx, "data")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "data"))
}

func TestErrorsAreWrappedWithKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "data")
	require.ErrorContains(t, err, "failed to get storage[data]")

	err = r.Set(ctx, "data", []byte("x"))
	require.ErrorContains(t, err, "failed to set storage[data]")

	err = r.Delete(ctx, "data")
	require.ErrorContains(t, err, "failed to delete storage[data]")
}
