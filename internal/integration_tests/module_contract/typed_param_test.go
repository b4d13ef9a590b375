package module_contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/testutil"
)

type endpoint struct {
	Host string `cty:"host"`
	Port int    `cty:"port"`
}

type endpointModule struct{}

func (endpointModule) Register(r *funcs.Registry) {
	r.Add(
		funcs.NewFuncWithParamAndResult("address", func(e endpoint) string {
			return fmt.Sprintf("%s:%d", e.Host, e.Port)
		}),
		funcs.NewFuncWithParamAndResult("double", func(n int) int { return n * 2 }),
	)
}

func TestTypedParameterDecoding(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, []string{
		`address({host = "localhost", port = "8080"})`,
		`double(21)`,
		`double(double(2))`,
	}, endpointModule{})

	require.NoError(t, result.Err)
	testutil.AssertOutputLines(t, result,
		`address({host = "localhost", port = "8080"}) = "localhost:8080"`,
		`double(21) = 42`,
		`double(double(2)) = 8`,
	)
}

func TestTypedParameterRejectsExtraArguments(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, []string{`double(1, 2)`}, endpointModule{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "takes a single int argument, got 2")
	assert.Empty(t, result.Output)
}

func TestTypedParameterConversionFailure(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, []string{`double("many")`}, endpointModule{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "double")
}
