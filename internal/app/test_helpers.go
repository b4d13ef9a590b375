package app

import (
	"bytes"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/vk/funcs/internal/funcs"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance with debug logging for tests. It
// returns the app, its result output and its log output.
func SetupAppTest(t *testing.T, cfg *Config, modules ...funcs.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	cfg.Level = slog.LevelDebug
	testApp := NewApp(outBuffer, logBuffer, cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("FUNCS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
