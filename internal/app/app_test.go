package app

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/funcs"
)

type counterModule struct {
	calls int
}

func (m *counterModule) Register(r *funcs.Registry) {
	r.Add(funcs.NewFuncWithResult("count", func() int {
		m.calls++
		return m.calls
	}))
}

func TestApp_RunEvaluatesInOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := &Config{Expressions: []string{`upper("a")`, `concat("x", 1)`, `length("four")`}}
	testApp, out, logs := SetupAppTest(t, cfg)

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "upper(\"a\") = \"A\"\nconcat(\"x\", 1) = \"x1\"\nlength(\"four\") = 4\n", out.String())
	assert.Contains(t, logs.String(), "Evaluating expression.")
}

func TestApp_RunStopsAtFirstError(t *testing.T) {
	t.Parallel()
	cfg := &Config{Expressions: []string{`upper("ok")`, `missing()`, `upper("never")`}}
	testApp, out, _ := SetupAppTest(t, cfg)

	err := testApp.Run(context.Background())

	require.ErrorIs(t, err, funcs.ErrFunctionNotFound)
	assert.Contains(t, out.String(), `"OK"`)
	assert.NotContains(t, out.String(), "NEVER")
}

func TestApp_CustomModules(t *testing.T) {
	t.Parallel()
	mod := &counterModule{}
	cfg := &Config{Expressions: []string{`count()`, `count() + count()`}}
	testApp, out, _ := SetupAppTest(t, cfg, mod)

	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, 3, mod.calls)
	assert.Equal(t, "count() = 1\ncount() + count() = 5\n", out.String())
	assert.False(t, testApp.Registry().Has("upper", funcs.ShapeWithParamAndResult), "core modules are replaced")
}

func TestApp_List(t *testing.T) {
	t.Parallel()
	testApp, out, _ := SetupAppTest(t, &Config{List: true})

	require.NoError(t, testApp.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "no_param_no_result: newline", lines[0])
	assert.Equal(t, "with_param: print", lines[1])
	assert.Equal(t, "with_result: env_vars", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "with_param_and_result: concat, env, length"))
}

func TestApp_PrintWritesToOutput(t *testing.T) {
	t.Parallel()
	testApp, out, _ := SetupAppTest(t, &Config{Expressions: []string{`print("hi", 2)`}})

	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "hi 2\nprint(\"hi\", 2) = null\n", out.String())
}

func TestApp_CancelledContext(t *testing.T) {
	t.Parallel()
	testApp, out, _ := SetupAppTest(t, &Config{Expressions: []string{`upper("a")`}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testApp.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      Config
		wantErr string
	}{
		{"Valid", Config{Expressions: []string{"a()"}, LogFormat: "json", LogLevel: "debug"}, ""},
		{"Upper Case Level", Config{List: true, LogLevel: "ERROR"}, ""},
		{"Defaults", Config{List: true}, ""},
		{"No Work", Config{}, "at least one expression"},
		{"Bad Format", Config{List: true, LogFormat: "xml"}, "invalid log-format"},
		{"Bad Level", Config{List: true, LogLevel: "trace"}, "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.in)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.LogFormat)
			assert.NotEmpty(t, cfg.LogLevel)
		})
	}
}

func TestNewConfig_ParsesLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			cfg, err := NewConfig(Config{List: true, LogLevel: tc.in})
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Level)
		})
	}
}

func TestNewApp_UsesParsedLevel(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(Config{Expressions: []string{`upper("a")`}, LogLevel: "error"})
	require.NoError(t, err)
	logs := &SafeBuffer{}

	require.NoError(t, NewApp(&SafeBuffer{}, logs, cfg).Run(context.Background()))

	assert.Empty(t, logs.String(), "info records are filtered at error level")
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()
	buf := &SafeBuffer{}
	logger := newLogger(slog.LevelInfo, "json", buf)

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
