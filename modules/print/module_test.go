package print_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
	"github.com/vk/funcs/modules/print"
)

func TestModule_Print(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	r := funcs.New()
	r.Register(&print.Module{Out: out})

	// --- Act ---
	require.NoError(t, r.InvokeWithParam("print", params.Of("hello", 42, true, nil)))
	require.NoError(t, r.Invoke("newline"))
	require.NoError(t, r.InvokeWithParam("print", params.Of()))

	// --- Assert ---
	assert.Equal(t, "hello 42 true (null)\n\n\n", out.String())
}

func TestModule_PrintWrongParamType(t *testing.T) {
	t.Parallel()
	r := funcs.New()
	r.Register(&print.Module{Out: &bytes.Buffer{}})

	err := r.InvokeWithParam("print", "not a params container")

	var typeErr *funcs.TypeError
	require.ErrorAs(t, err, &typeErr)
}
