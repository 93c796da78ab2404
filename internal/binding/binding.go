// Package binding builds the variable-token-to-argument map consumed by the
// expression evaluator, per §4.4: scalars resolve to a single value,
// vectors to a flat list, matrices to a row-major list of lists.
package binding

import (
	"github.com/Sheeplet1/rsheets/internal/store"
	"github.com/Sheeplet1/rsheets/internal/value"
	"github.com/Sheeplet1/rsheets/internal/variables"
)

// Store is the subset of store.Store's API the binding builder needs.
type Store interface {
	GetValue(cell string) value.Value
}

var _ Store = (*store.Store)(nil)

// Build produces the bindings map for a parsed expression's variable
// tokens, grounded on original_source's variable_map_for_runner /
// create_cell_vec / create_cell_matrix helpers.
func Build(tokens []variables.Token, s Store) map[string]value.Value {
	out := make(map[string]value.Value, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case variables.KindScalar:
			out[t.Raw] = s.GetValue(t.Cell)
		case variables.KindVerticalVector, variables.KindHorizontalVector:
			cells := t.Cells()
			items := make([]value.Value, len(cells))
			for i, c := range cells {
				items[i] = s.GetValue(c)
			}
			out[t.Raw] = value.List(items)
		case variables.KindMatrix:
			rows := t.Rows()
			grid := make([][]value.Value, len(rows))
			for i, row := range rows {
				items := make([]value.Value, len(row))
				for j, c := range row {
					items[j] = s.GetValue(c)
				}
				grid[i] = items
			}
			out[t.Raw] = value.Matrix(grid)
		}
	}
	return out
}
