package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isfarbaset/git-wrapped/schema"
)

// tokenKey is the single key used in the token store.
const tokenKey = "gw:token"

// tokenVersion invalidates stored credentials if the format ever changes.
const tokenVersion = 1

// SetToken persists an access token in the local store so later runs can
// pick it up without flags or environment variables.
func SetToken(backend schema.DatabaseBackend, connStr, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	store, err := NewCacheStore(tokenTable, backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.Set(tokenKey, []byte(token), tokenVersion, time.Now().Unix())
}

// GetToken returns the stored access token, or "" when none is stored.
func GetToken(backend schema.DatabaseBackend, connStr string) (string, error) {
	store, err := NewCacheStore(tokenTable, backend, connStr)
	if err != nil {
		return "", err
	}
	defer func() { _ = store.Close() }()

	value, version, _, err := store.Get(tokenKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if version != tokenVersion {
		return "", nil
	}
	return string(value), nil
}

// DeleteToken removes the stored access token. Removing a token that was
// never stored is not an error.
func DeleteToken(backend schema.DatabaseBackend, connStr string) error {
	store, err := NewCacheStore(tokenTable, backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.Delete(tokenKey)
}
