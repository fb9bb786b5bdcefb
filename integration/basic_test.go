//go:build basic

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitwrappedWithSQLite exercises the default SQLite backend end to end.
func TestGitwrappedWithSQLite(t *testing.T) {
	// Keep the cache database inside a throwaway home directory so the
	// test never touches the real user cache.
	env := []string{"HOME=" + t.TempDir()}

	require.NoError(t, runGitwrapped(t, env, "version"))
	exerciseSQLite(t, env)
}

func exerciseSQLite(t *testing.T, env []string) {
	require.NoError(t, runGitwrapped(t, env, "cache", "migrate"))
	require.NoError(t, runGitwrapped(t, env, "cache", "status"))

	require.NoError(t, runGitwrapped(t, env, "token", "set", "ghp_integration_test"))
	require.NoError(t, runGitwrapped(t, env, "token", "show"))
	require.NoError(t, runGitwrapped(t, env, "token", "clear"))

	require.NoError(t, runGitwrapped(t, env, "cache", "clear"))
}

// TestGitwrappedBadInvocation checks that setup and usage errors reach the
// user on stderr instead of vanishing into a bare exit code.
func TestGitwrappedBadInvocation(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"invalid output format", []string{"card", "octocat", "--output", "bogus"}, "invalid output format"},
		{"missing username", []string{"card"}, "accepts 1 arg"},
		{"backend without connection string", []string{"card", "octocat", "--cache-backend", "mysql"}, "requires a connection string"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command(getGitwrappedBinary(), tc.args...)
			cmd.Dir = ".."
			cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
			var stderr bytes.Buffer
			cmd.Stderr = &stderr

			require.Error(t, cmd.Run())
			assert.Contains(t, stderr.String(), tc.stderr)
		})
	}
}
