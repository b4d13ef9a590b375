package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/app"
	"github.com/vk/funcs/internal/funcs"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest evaluates exprs with a background context. See
// RunIntegrationTestWithContext.
func RunIntegrationTest(t *testing.T, exprs []string, modules ...funcs.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, exprs, modules...)
}

// RunIntegrationTestWithContext builds an app with debug logging, registers
// modules (or the core set when none are given) and evaluates exprs.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, exprs []string, modules ...funcs.Module) *HarnessResult {
	t.Helper()

	appConfig, err := app.NewConfig(app.Config{
		Expressions: exprs,
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	testApp := app.NewApp(outBuffer, logBuffer, appConfig, modules...)

	runErr := testApp.Run(ctx)

	if os.Getenv("FUNCS_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
