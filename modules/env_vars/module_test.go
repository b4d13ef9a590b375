package env_vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
	"github.com/vk/funcs/modules/env_vars"
)

func TestAll(t *testing.T) {
	t.Setenv("FUNCS_TEST_ALL", "value=with=equals")

	all := env_vars.All()

	assert.Equal(t, "value=with=equals", all["FUNCS_TEST_ALL"])
}

func TestLookup(t *testing.T) {
	t.Setenv("FUNCS_TEST_SET", "yes")

	testCases := []struct {
		name string
		in   *params.Params
		want any
	}{
		{"Set", params.Of("FUNCS_TEST_SET"), "yes"},
		{"Unset With Default", params.Of("FUNCS_TEST_UNSET_VAR", "fallback"), "fallback"},
		{"Unset Without Default", params.Of("FUNCS_TEST_UNSET_VAR"), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := env_vars.Lookup(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLookup_BadName(t *testing.T) {
	_, err := env_vars.Lookup(nil)
	require.ErrorIs(t, err, params.ErrIndexOutOfRange, "missing name fails")

	_, err = env_vars.Lookup(params.Of([]string{"HOME"}))
	var convErr *params.ConversionError
	require.ErrorAs(t, err, &convErr, "list name fails")
}

func TestModule_Register(t *testing.T) {
	t.Setenv("FUNCS_TEST_REG", "1")
	r := funcs.New()
	r.Register(&env_vars.Module{})

	all, err := funcs.Call[map[string]string](r, "env_vars")
	require.NoError(t, err)
	assert.Equal(t, "1", all["FUNCS_TEST_REG"])

	v, err := r.InvokeWithParamAndResult("env", params.Of("FUNCS_TEST_REG"))
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
