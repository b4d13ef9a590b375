package module_contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/testutil"
)

func TestShapesDispatchFromExpressions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rec := &testutil.RecorderModule{}
	exprs := []string{
		`ping()`,
		`record("a", 2)`,
		`counter()`,
		`echo("x", true)`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, exprs, rec)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"ping", "record", "counter", "echo"}, rec.Names())
	testutil.AssertOutputLines(t, result,
		`ping() = null`,
		`record("a", 2) = null`,
		`counter() = 3`,
		`echo("x", true) = ["x",true]`,
	)
	for _, name := range []string{"ping", "record", "counter", "echo"} {
		testutil.AssertFunctionCalled(t, result, name)
	}
}

func TestParamsArriveInOrder(t *testing.T) {
	t.Parallel()
	rec := &testutil.RecorderModule{}

	result := testutil.RunIntegrationTest(t, []string{`record(1, "two", [3], {k = "v"})`}, rec)

	require.NoError(t, result.Err)
	p := rec.Args(0)
	require.Equal(t, 4, p.Len())

	n, err := p.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	s, err := p.String(1)
	require.NoError(t, err)
	assert.Equal(t, "two", s)

	list, err := p.Object(2)
	require.NoError(t, err)
	assert.Equal(t, []any{3}, list)

	obj, err := p.Object(3)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, obj)
}

func TestArgumentlessCallToParamFunction(t *testing.T) {
	t.Parallel()
	rec := &testutil.RecorderModule{}

	result := testutil.RunIntegrationTest(t, []string{`echo()`}, rec)

	require.NoError(t, result.Err)
	assert.Equal(t, 0, rec.Args(0).Len(), "an empty container is passed")
	testutil.AssertOutputLines(t, result, `echo() = []`)
}
