package iocache

import (
	"path/filepath"
	"testing"

	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	// Empty store yields no token, not an error
	token, err := GetToken(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, SetToken(schema.SQLiteBackend, dbPath, "ghp_example123"))

	token, err = GetToken(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.Equal(t, "ghp_example123", token)

	// Overwrite replaces the stored token
	require.NoError(t, SetToken(schema.SQLiteBackend, dbPath, "ghp_replacement"))
	token, err = GetToken(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.Equal(t, "ghp_replacement", token)

	require.NoError(t, DeleteToken(schema.SQLiteBackend, dbPath))
	token, err = GetToken(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Deleting again is safe
	assert.NoError(t, DeleteToken(schema.SQLiteBackend, dbPath))
}

func TestSetTokenEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	assert.Error(t, SetToken(schema.SQLiteBackend, dbPath, ""), "Empty token should be rejected")
}
