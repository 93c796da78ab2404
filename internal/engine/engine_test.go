package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sheeplet1/rsheets/internal/graph"
	"github.com/Sheeplet1/rsheets/internal/store"
)

func newEngine() *Engine {
	return New(store.New(), graph.New())
}

func TestScalarPropagation(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "5", 1))
	assertCellInt(t, e, "A1", 5)

	require.NoError(t, e.Set("B1", "A1", 2))
	assertCellInt(t, e, "B1", 5)

	require.NoError(t, e.Set("A1", "7", 3))
	assertCellInt(t, e, "B1", 7)
}

func TestRangeSum(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "1", 1))
	require.NoError(t, e.Set("A2", "2", 2))
	require.NoError(t, e.Set("A3", "3", 3))
	require.NoError(t, e.Set("B1", "sum(A1_A3)", 4))
	assertCellInt(t, e, "B1", 6)

	require.NoError(t, e.Set("A2", "20", 5))
	assertCellInt(t, e, "B1", 24)
}

func TestSelfCycle(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "A1", 1))
	_, err := e.Get("A1")
	require.Error(t, err)
	assert.Equal(t, "Cell A1 is self-referential", err.Error())
}

func TestMutualCycle(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "B1", 1))
	require.NoError(t, e.Set("B1", "A1", 2))

	_, err := e.Get("A1")
	assert.Error(t, err, "expected A1 to carry a cycle error")

	_, err = e.Get("B1")
	assert.Error(t, err, "expected B1 to carry a cycle error")
}

func TestErrorPropagation(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "A1", 1)) // self-cycle -> A1 becomes an error cell
	require.NoError(t, e.Set("B1", "A1 + 1", 2))

	_, err := e.Get("B1")
	require.Error(t, err, "expected B1 to report a dependent error")
	assert.Contains(t, err.Error(), "A dependent cell contained an error: ")
}

func TestSetWithUnknownFunctionIsStoredAsAnErrorValueNotRaised(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "foo(1)", 1), "an expression error must be embedded, not raised, by Set")

	v, err := e.Get("A1")
	require.NoError(t, err, "a plain expression error is not a sentinel, so Get must not raise either")
	assert.True(t, v.IsError())
	assert.Contains(t, v.Render(), "unknown function")
}

func TestSetWithSyntaxErrorIsStoredAsAnErrorValue(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "1 +", 1))

	v, err := e.Get("A1")
	require.NoError(t, err)
	assert.True(t, v.IsError())
}

func TestTimestampReconciliation(t *testing.T) {
	e := newEngine()
	require.NoError(t, e.Set("A1", "7", 11))
	require.NoError(t, e.Set("A1", "5", 10)) // stale, discarded
	assertCellInt(t, e, "A1", 7)
}

func TestGetOnUnwrittenCellReturnsNone(t *testing.T) {
	e := newEngine()
	v, err := e.Get("Z99")
	require.NoError(t, err)
	assert.True(t, v.IsNone())
}

func TestInvalidCellName(t *testing.T) {
	e := newEngine()
	assert.ErrorIs(t, e.Set("a1", "5", 1), ErrInvalidCell)

	_, err := e.Get("a1")
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func assertCellInt(t *testing.T, e *Engine, cell string, want int64) {
	t.Helper()
	v, err := e.Get(cell)
	require.NoErrorf(t, err, "Get(%q)", cell)
	got, ok := v.AsInteger()
	require.Truef(t, ok, "Get(%q) = %v, want an Integer", cell, v)
	assert.Equal(t, want, got)
}
