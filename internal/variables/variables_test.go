package variables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirrors original_source's test_categorize_variable table.
func TestCategorize(t *testing.T) {
	cases := []struct {
		token string
		kind  Kind
	}{
		{"A1", KindScalar},
		{"A1_C1", KindHorizontalVector},
		{"A1_A3", KindVerticalVector},
		{"A1_C3", KindMatrix},
		{"A1_A1", KindVerticalVector}, // a single-cell range is a vertical vector of length 1
	}
	for _, c := range cases {
		tok, err := Categorize(c.token)
		require.NoErrorf(t, err, "Categorize(%q)", c.token)
		assert.Equalf(t, c.kind, tok.Kind, "Categorize(%q).Kind", c.token)
	}
}

func TestVerticalVectorCellsRowMajor(t *testing.T) {
	tok, err := Categorize("A1_A3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "A3"}, tok.Cells())
}

func TestMatrixRowMajor(t *testing.T) {
	tok, err := Categorize("A1_B2")
	require.NoError(t, err)
	rows := tok.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"A1", "B1"}, rows[0])
	assert.Equal(t, []string{"A2", "B2"}, rows[1])
}

func TestCategorizeInvalid(t *testing.T) {
	_, err := Categorize("a1")
	assert.Error(t, err, "expected error for lowercase cell")

	_, err = Categorize("A1_")
	assert.Error(t, err, "expected error for trailing underscore")
}
