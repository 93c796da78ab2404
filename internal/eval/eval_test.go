package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sheeplet1/rsheets/internal/value"
)

func TestEvaluateArithmetic(t *testing.T) {
	v, err := Evaluate("1 + 2 * 3", nil)
	require.NoError(t, err)
	n, ok := v.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(7), n)
}

func TestEvaluateVariable(t *testing.T) {
	bindings := map[string]value.Value{"A1": value.Integer(5)}
	v, err := Evaluate("A1 + 1", bindings)
	require.NoError(t, err)
	n, ok := v.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(6), n)
}

func TestEvaluateSum(t *testing.T) {
	bindings := map[string]value.Value{
		"A1_A3": value.List([]value.Value{value.Integer(1), value.Integer(2), value.Integer(3)}),
	}
	v, err := Evaluate("sum(A1_A3)", bindings)
	require.NoError(t, err)
	n, ok := v.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(6), n)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	v, err := Evaluate("1 / 0", nil)
	require.NoError(t, err)
	assert.True(t, v.IsError(), "expected an error value")
}

func TestEvaluateUnknownFunctionIsEmbeddedAsError(t *testing.T) {
	v, err := Evaluate("foo(1)", nil)
	require.NoError(t, err, "an unknown function must be embedded in the value, not raised")
	assert.True(t, v.IsError(), "expected an error value")
}

func TestVariablesExtraction(t *testing.T) {
	toks, err := Variables("sum(A1_A3) + B1")
	require.NoError(t, err)
	assert.Len(t, toks, 2)
}
