package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFunctionCalled checks the log output for a dispatch of the named
// function, so tests do not depend on the exact output formatting.
func AssertFunctionCalled(t *testing.T, result *HarnessResult, name string) {
	t.Helper()

	expected := fmt.Sprintf("function=%s ", name)
	require.True(t,
		strings.Contains(result.LogOutput, "Dispatching call.") && strings.Contains(result.LogOutput, expected),
		"expected a dispatch of %q in the logs", name,
	)
}

// AssertOutputLines compares the result output line by line.
func AssertOutputLines(t *testing.T, result *HarnessResult, want ...string) {
	t.Helper()

	got := strings.Split(strings.TrimSuffix(result.Output, "\n"), "\n")
	require.Equal(t, want, got)
}
