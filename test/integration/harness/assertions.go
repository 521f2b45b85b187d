package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess checks for exit code 0
func AssertSuccess(tb testing.TB, r CommandResult) {
	tb.Helper()
	assert.Zero(tb, r.ExitCode, "expected success: %s", r)
}

// AssertExitCode checks for a specific exit code
func AssertExitCode(tb testing.TB, r CommandResult, want int) {
	tb.Helper()
	assert.Equal(tb, want, r.ExitCode, "unexpected exit code: %s", r)
}

func AssertStdoutContains(tb testing.TB, r CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, r.Stdout, want, "%s", r)
}

func AssertStdoutNotContains(tb testing.TB, r CommandResult, unwanted string) {
	tb.Helper()
	assert.NotContains(tb, r.Stdout, unwanted, "%s", r)
}

func AssertStderrContains(tb testing.TB, r CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, r.Stderr, want, "%s", r)
}

// AssertStdoutEmpty ignores surrounding whitespace
func AssertStdoutEmpty(tb testing.TB, r CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(r.Stdout), "%s", r)
}

// AssertStderrEmpty ignores surrounding whitespace
func AssertStderrEmpty(tb testing.TB, r CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(r.Stderr), "%s", r)
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, r CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(r.Stdout), target), "%s", r)
}

// AssertJSONAt decodes stdout and compares the value found by walking path.
// String steps index objects, int steps index arrays. JSON numbers decode
// as float64.
func AssertJSONAt(tb testing.TB, r CommandResult, want any, path ...any) {
	tb.Helper()
	var node any
	AssertValidJSON(tb, r, &node)

	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := node.(map[string]any)
			require.True(tb, ok, "expected an object at %q: %s", key, r)
			node, ok = obj[key]
			require.True(tb, ok, "missing key %q: %s", key, r)
		case int:
			arr, ok := node.([]any)
			require.True(tb, ok, "expected an array at [%d]: %s", key, r)
			require.Less(tb, key, len(arr), "index out of range: %s", r)
			node = arr[key]
		default:
			tb.Fatalf("unsupported JSON path step %T", step)
		}
	}
	assert.Equal(tb, want, node, "JSON path %v: %s", path, r)
}
