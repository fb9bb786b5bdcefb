//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// exerciseBackend runs the cache and token lifecycle against a configured backend.
func exerciseBackend(t *testing.T, env []string) {
	// Start from a clean schema
	require.NoError(t, runGitwrapped(t, env, "cache", "clear"))
	require.NoError(t, runGitwrapped(t, env, "cache", "migrate"))
	require.NoError(t, runGitwrapped(t, env, "cache", "status"))

	// Token round-trip through the same backend
	require.NoError(t, runGitwrapped(t, env, "token", "set", "ghp_integration_test"))
	require.NoError(t, runGitwrapped(t, env, "token", "show"))
	require.NoError(t, runGitwrapped(t, env, "token", "clear"))

	// Roll the schema back down
	require.NoError(t, runGitwrapped(t, env, "cache", "migrate", "--target-version", "0"))
}

// TestGitwrappedWithMySQL tests the gitwrapped CLI with a MySQL cache backend.
func TestGitwrappedWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "gitwrapped",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/gitwrapped?parseTime=true", host, port.Port())

	env := []string{
		"GITWRAPPED_CACHE_BACKEND=mysql",
		"GITWRAPPED_CACHE_DB_CONNECT=" + connStr,
	}
	exerciseBackend(t, env)
}

// TestGitwrappedWithPostgres tests the gitwrapped CLI with a PostgreSQL cache backend.
func TestGitwrappedWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	env := []string{
		"GITWRAPPED_CACHE_BACKEND=postgresql",
		"GITWRAPPED_CACHE_DB_CONNECT=" + connStr,
	}
	exerciseBackend(t, env)
}
