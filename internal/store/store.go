// Package store implements the concurrent cell store: a mapping from cell
// name to {value, optional source expression, last-write timestamp}, with
// timestamp-guarded last-writer-wins semantics.
package store

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/Sheeplet1/rsheets/internal/value"
)

// Sentinel expressions overload the expression field (§3/§4.5/§4.6).
const (
	SentinelDependent = "Dependent"
	SentinelCircular  = "Circular Dependency"
)

// record is one cell's state. Readers always see a whole record: it is
// never mutated in place, only replaced.
type record struct {
	value      value.Value
	expression string
	hasExpr    bool
	timestamp  uint64
}

// Store is the concurrent cell store, keyed by cell name.
type Store struct {
	cells *xsync.MapOf[string, *record]
}

func New() *Store {
	return &Store{cells: xsync.NewMapOf[string, *record]()}
}

// Set applies a timestamp-guarded last-writer-wins write: it takes effect
// only if ts is greater than or equal to the cell's current timestamp. expr
// with hasExpr=false clears the stored expression (the pipeline's "no
// variables" case), matching §4.1/§4.5's `expression = None` branch.
func (s *Store) Set(cell string, v value.Value, expr string, hasExpr bool, ts uint64) {
	s.cells.Compute(cell, func(cur *record, loaded bool) (*record, bool) {
		if loaded && ts < cur.timestamp {
			return cur, false // stale write, discard
		}
		return &record{value: v, expression: expr, hasExpr: hasExpr, timestamp: ts}, false
	})
}

// GetValue returns the stored value, or None for an absent cell.
func (s *Store) GetValue(cell string) value.Value {
	r, ok := s.cells.Load(cell)
	if !ok {
		return value.None()
	}
	return r.value
}

// GetExpression returns the stored expression and whether one is present.
func (s *Store) GetExpression(cell string) (string, bool) {
	r, ok := s.cells.Load(cell)
	if !ok {
		return "", false
	}
	return r.expression, r.hasExpr
}

// GetTimestamp returns the cell's last-write timestamp, or 0 if absent.
func (s *Store) GetTimestamp(cell string) uint64 {
	r, ok := s.cells.Load(cell)
	if !ok {
		return 0
	}
	return r.timestamp
}
