// Package variables classifies expression variable tokens (single cells or
// CELL_CELL ranges) and expands them into the concrete cells they cover, in
// row-major order.
package variables

import (
	"fmt"
	"strings"

	"github.com/Sheeplet1/rsheets/internal/cellname"
)

// Kind discriminates the shape of a variable token.
type Kind uint8

const (
	KindScalar Kind = iota
	KindHorizontalVector
	KindVerticalVector
	KindMatrix
)

// Token is a classified variable token, as produced by the evaluator's
// lexer and consumed by the set pipeline, propagator, and binding builder.
type Token struct {
	Kind Kind
	Raw  string // the original text, e.g. "A1" or "A1_C3"

	// Populated per Kind:
	Cell string // KindScalar

	Row      int // KindHorizontalVector: the shared row
	ColLo    int
	ColHi    int
	Col      string // KindVerticalVector: the shared column label
	RowLo    int
	RowHi    int
	TLColNum int // KindMatrix: top-left/bottom-right corners
	TLRow    int
	BRColNum int
	BRRow    int
}

// Categorize splits a variable token on "_" (if present) and classifies it.
func Categorize(token string) (Token, error) {
	parts := strings.SplitN(token, "_", 2)
	if len(parts) == 1 {
		if !cellname.IsValid(parts[0]) {
			return Token{}, fmt.Errorf("variables: %q is not a valid cell", token)
		}
		return Token{Kind: KindScalar, Raw: token, Cell: parts[0]}, nil
	}

	a, b := parts[0], parts[1]
	if !cellname.IsValid(a) || !cellname.IsValid(b) {
		return Token{}, fmt.Errorf("variables: %q is not a valid range", token)
	}
	colA, rowA, _ := cellname.Split(a)
	colB, rowB, _ := cellname.Split(b)
	colNumA, colNumB := cellname.ColumnToNumber(colA), cellname.ColumnToNumber(colB)

	switch {
	case colNumA == colNumB:
		lo, hi := rowA, rowB
		if lo > hi {
			lo, hi = hi, lo
		}
		return Token{Kind: KindVerticalVector, Raw: token, Col: colA, RowLo: lo, RowHi: hi}, nil
	case rowA == rowB:
		lo, hi := colNumA, colNumB
		if lo > hi {
			lo, hi = hi, lo
		}
		return Token{Kind: KindHorizontalVector, Raw: token, Row: rowA, ColLo: lo, ColHi: hi}, nil
	default:
		tlCol, brCol := colNumA, colNumB
		if tlCol > brCol {
			tlCol, brCol = brCol, tlCol
		}
		tlRow, brRow := rowA, rowB
		if tlRow > brRow {
			tlRow, brRow = brRow, tlRow
		}
		return Token{Kind: KindMatrix, Raw: token, TLColNum: tlCol, TLRow: tlRow, BRColNum: brCol, BRRow: brRow}, nil
	}
}

// Cells expands a token into the concrete cell names it covers, in
// row-major order (rows outer, columns inner) for the Matrix case.
func (t Token) Cells() []string {
	switch t.Kind {
	case KindScalar:
		return []string{t.Cell}
	case KindVerticalVector:
		cells := make([]string, 0, t.RowHi-t.RowLo+1)
		for r := t.RowLo; r <= t.RowHi; r++ {
			cells = append(cells, fmt.Sprintf("%s%d", t.Col, r))
		}
		return cells
	case KindHorizontalVector:
		cells := make([]string, 0, t.ColHi-t.ColLo+1)
		for c := t.ColLo; c <= t.ColHi; c++ {
			cells = append(cells, cellname.Make(c, t.Row))
		}
		return cells
	case KindMatrix:
		cells := make([]string, 0, (t.BRRow-t.TLRow+1)*(t.BRColNum-t.TLColNum+1))
		for r := t.TLRow; r <= t.BRRow; r++ {
			for c := t.TLColNum; c <= t.BRColNum; c++ {
				cells = append(cells, cellname.Make(c, r))
			}
		}
		return cells
	default:
		return nil
	}
}

// Rows returns the Matrix expansion grouped by row (outer = rows
// top-to-bottom, inner = columns left-to-right), as required by the
// binding builder when populating a nested Matrix value. Non-matrix tokens
// return a single row.
func (t Token) Rows() [][]string {
	if t.Kind != KindMatrix {
		return [][]string{t.Cells()}
	}
	rows := make([][]string, 0, t.BRRow-t.TLRow+1)
	for r := t.TLRow; r <= t.BRRow; r++ {
		row := make([]string, 0, t.BRColNum-t.TLColNum+1)
		for c := t.TLColNum; c <= t.BRColNum; c++ {
			row = append(row, cellname.Make(c, r))
		}
		rows = append(rows, row)
	}
	return rows
}
