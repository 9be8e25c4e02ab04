package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Set("auth", []byte(`{"a":1}`)))

	got, err := store.Get("auth")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Set("k", []byte("old")))
	require.NoError(t, store.Set("k", []byte("new")))

	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestSQLiteStoreMissingKey(t *testing.T) {
	store := newTestSQLiteStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreDeleteIdempotent(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))
	require.NoError(t, store.Delete("k"))

	_, err := store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
