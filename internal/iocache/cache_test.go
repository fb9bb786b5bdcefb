package iocache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaching(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		testDBPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitCaching(schema.SQLiteBackend, testDBPath)
		assert.NoError(t, err, "Failed to initialize caching")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetCardStore(), "Card store should not be nil")

		CloseCaching()

		// Verify database file was created
		_, err = os.Stat(testDBPath)
		assert.False(t, os.IsNotExist(err), "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		testDBPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitCaching(schema.SQLiteBackend, testDBPath)
		err2 := InitCaching(schema.SQLiteBackend, testDBPath)
		err3 := InitCaching(schema.SQLiteBackend, testDBPath)

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NoError(t, err3, "Third init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseCaching()
		CloseCaching()
		CloseCaching()
	})

	t.Run("none backend operations", func(t *testing.T) {
		store, err := NewCacheStore("test_table", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to create none backend store")

		// Get returns error (no data)
		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get on none backend")

		// Set is a no-op
		err = store.Set("test_key", []byte("test_value"), 1, 123456789)
		assert.NoError(t, err, "Set should not error on none backend")

		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get after Set on none backend")

		// Delete is a no-op
		err = store.Delete("test_key")
		assert.NoError(t, err, "Delete should not error on none backend")

		err = store.Close()
		assert.NoError(t, err, "Close should not error on none backend")
	})
}

func TestCacheStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err, "Failed to create SQLite store")
	defer func() { _ = store.Close() }()

	// Miss before any write
	_, _, _, err = store.Get("alpha")
	assert.Error(t, err, "Expected miss before Set")

	err = store.Set("alpha", []byte(`{"a":1}`), 2, 1700000000)
	require.NoError(t, err, "Set should succeed")

	value, version, ts, err := store.Get("alpha")
	require.NoError(t, err, "Get should succeed after Set")
	assert.Equal(t, []byte(`{"a":1}`), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(1700000000), ts)

	// Upsert replaces the existing entry
	err = store.Set("alpha", []byte(`{"a":2}`), 3, 1700000100)
	require.NoError(t, err, "Upsert should succeed")

	value, version, ts, err = store.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), value)
	assert.Equal(t, 3, version)
	assert.Equal(t, int64(1700000100), ts)

	// Delete removes the entry; deleting again is not an error
	err = store.Delete("alpha")
	assert.NoError(t, err, "Delete should succeed")
	_, _, _, err = store.Get("alpha")
	assert.Error(t, err, "Expected miss after Delete")
	err = store.Delete("alpha")
	assert.NoError(t, err, "Deleting a missing key should not error")
}

func TestCacheStoreStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Set("one", []byte("v1"), 1, 1700000000))
	require.NoError(t, store.Set("two", []byte("v2"), 1, 1700000200))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(1700000200), status.LastEntryTime.Unix())
	assert.Equal(t, int64(1700000000), status.OldestEntryTime.Unix())
	assert.Greater(t, status.TableSizeBytes, int64(0), "SQLite should report a page-based size")
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("one", []byte("v1"), 1, 1700000000))
	require.NoError(t, store.Close())

	err = ClearCache(schema.SQLiteBackend, dbPath, "")
	assert.NoError(t, err, "ClearCache should remove the file")
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "Database file should be gone")

	// Clearing again is safe
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Missing file path is rejected
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))

	// None backend is a no-op
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}

// TestValidateTableName tests the validateTableName function with various inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"valid simple", "card_cache", false},
		{"valid underscore prefix", "_cache", false},
		{"valid with digits", "cache2", false},
		{"empty", "", true},
		{"leading digit", "2cache", true},
		{"injection attempt", "cache; DROP TABLE users", true},
		{"hyphen", "card-cache", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestQuoteTableName tests the quoteTableName function for all backends.
func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"card_cache"`, quoteTableName("card_cache", schema.SQLiteBackend))
	assert.Equal(t, "`card_cache`", quoteTableName("card_cache", schema.MySQLBackend))
	assert.Equal(t, `"card_cache"`, quoteTableName("card_cache", schema.PostgreSQLBackend))
}
