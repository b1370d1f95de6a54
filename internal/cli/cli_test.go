package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairs = `
entries:
- left: "alice"
  right: "1"
- left: "bob"
  right: "2"
- left: "carol"
  right: "1"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("STABLEBIMAP_PRETTY", "false")

	var stdout, stderr bytes.Buffer

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	path := writeFile(t, pairs)

	stdout, stderr, err := run(t, "check", path)
	require.NoError(t, err)

	assert.Equal(t, "entries: 2\ninserted: 2\nunchanged: 0\nevicted: 1\ncapacity: 28\n", stdout)
	assert.Contains(t, stderr, "document is not one-to-one")
}

func TestCheck_Strict(t *testing.T) {
	path := writeFile(t, pairs)

	_, _, err := run(t, "check", "--strict", path)
	require.ErrorContains(t, err, "conflicting entries")
}

func TestCheck_Fixed(t *testing.T) {
	path := writeFile(t, pairs)

	stdout, _, err := run(t, "check", "--fixed", "--capacity", "8", "--hasher", "xxhash", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "capacity: 7\n")
}

func TestCheck_DebugLog(t *testing.T) {
	path := writeFile(t, pairs)

	_, stderr, err := run(t, "check", "--loglevel", "debug", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"evicted entry"`)
	assert.Contains(t, stderr, `"message":"document loaded"`)
}

func TestGet(t *testing.T) {
	path := writeFile(t, pairs)

	stdout, _, err := run(t, "get", path, "--left", "carol")
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)

	stdout, _, err = run(t, "get", path, "--right", "2")
	require.NoError(t, err)
	assert.Equal(t, "bob\n", stdout)

	_, _, err = run(t, "get", path, "--left", "alice")
	require.ErrorIs(t, err, errNotFound)

	_, _, err = run(t, "get", path)
	require.Error(t, err)
}

func TestInvert(t *testing.T) {
	path := writeFile(t, pairs)

	stdout, _, err := run(t, "invert", "-o", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries": [{"left": "1", "right": "carol"}, {"left": "2", "right": "bob"}]}`, stdout)

	_, _, err = run(t, "invert", "-o", "xml", path)
	require.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	path := writeFile(t, pairs)

	_, _, err := run(t, "check", "--hasher", "md5", path)
	require.Error(t, err)

	_, _, err = run(t, "check", "--loglevel", "loud", path)
	require.Error(t, err)
}
