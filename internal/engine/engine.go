// Package engine implements the set pipeline, the propagator, and get —
// the core that drives dependency rewiring, recursive recomputation, and
// cycle detection/poisoning.
package engine

import (
	"errors"
	"fmt"

	"github.com/Sheeplet1/rsheets/internal/binding"
	"github.com/Sheeplet1/rsheets/internal/cellname"
	"github.com/Sheeplet1/rsheets/internal/eval"
	"github.com/Sheeplet1/rsheets/internal/graph"
	"github.com/Sheeplet1/rsheets/internal/store"
	"github.com/Sheeplet1/rsheets/internal/value"
	"github.com/Sheeplet1/rsheets/internal/variables"
)

// ErrInvalidCell is returned, with this exact text, whenever a cell name
// fails the `^[A-Z]+[0-9]+$` check.
var ErrInvalidCell = errors.New("Invalid cell provided.")

// Engine ties the store and the dependency graph together behind the
// operations named in SPEC_FULL.md §4.5-4.7.
type Engine struct {
	store *store.Store
	graph *graph.Graph
}

func New(s *store.Store, g *graph.Graph) *Engine {
	return &Engine{store: s, graph: g}
}

// Set runs the full pipeline: validate, parse, teardown old edges, check
// for an error short-circuit, wire new edges, evaluate, write, propagate.
// A problem in the expression itself (bad syntax, an unknown function, a
// malformed variable reference) is never raised past this pipeline: it is
// folded into the stored Value as an Error, exactly as a dependent cell's
// error would be, mirroring original_source's CommandRunner::run, which
// returns a CellValue (error-as-value) rather than a Result.
func (e *Engine) Set(cell, expr string, ts uint64) error {
	if !cellname.IsValid(cell) {
		return ErrInvalidCell
	}

	// A lexing error or a malformed variable reference fails both Variables
	// and Parse identically (they share the same lexer and Categorize);
	// tokens is then nil so no edges are wired, and evaluate below
	// re-derives and embeds the same error. A syntax error that only Parse
	// detects (e.g. "A1 +") still yields the tokens Variables found, and
	// their edges are wired.
	tokens, _ := eval.Variables(expr)

	e.teardown(cell, expr)

	if e.shortCircuitOnError(cell, tokens, ts) {
		return nil
	}

	for _, t := range tokens {
		for _, parent := range t.Cells() {
			e.graph.AddEdge(parent, cell)
		}
	}

	bindings := binding.Build(tokens, e.store)
	v := evaluate(expr, bindings)
	e.store.Set(cell, v, expr, len(tokens) > 0, ts)

	e.propagate(cell, nil, ts)
	return nil
}

// evaluate parses and evaluates expr, folding any evaluator error (syntax
// error, unknown function, bad operand) into a Value{Error} rather than
// raising it, so the set pipeline always has a Value to store. A bare range
// (a List or Matrix result) is folded into an error too, so a cell's own
// value is always a scalar.
func evaluate(expr string, bindings map[string]value.Value) value.Value {
	node, err := eval.Parse(expr)
	if err != nil {
		return value.Error("%s", err.Error())
	}
	v, err := node.Eval(bindings)
	if err != nil {
		return value.Error("%s", err.Error())
	}
	if v.Kind == value.KindList || v.Kind == value.KindMatrix {
		return value.Error("a range can only be used as a function argument")
	}
	return v
}

// teardown removes edges from the cell's previous parents, unless the
// expression hasn't changed or the previous expression was itself a
// sentinel. A "Dependent" cell has no edges (see SPEC_FULL.md's "orphan
// edges" design note); a "Circular Dependency" cell keeps the edges wired
// from the expression it held before poison overwrote it, and those edges
// are not removed here.
func (e *Engine) teardown(cell, newExpr string) {
	oldExpr, hasOld := e.store.GetExpression(cell)
	if !hasOld || oldExpr == newExpr {
		return
	}
	if oldExpr == store.SentinelDependent || oldExpr == store.SentinelCircular {
		return
	}
	oldTokens, err := eval.Variables(oldExpr)
	if err != nil {
		return
	}
	for _, t := range oldTokens {
		for _, parent := range t.Cells() {
			e.graph.RemoveEdge(parent, cell)
		}
	}
}

// shortCircuitOnError implements §4.5 step 4: if any referenced cell holds
// an error, cell becomes a "Dependent" sentinel carrying that error,
// without further edge construction or evaluation.
func (e *Engine) shortCircuitOnError(cell string, tokens []variables.Token, ts uint64) bool {
	for _, t := range tokens {
		for _, parent := range t.Cells() {
			if v := e.store.GetValue(parent); v.IsError() {
				e.store.Set(cell, v, store.SentinelDependent, true, ts)
				return true
			}
		}
	}
	return false
}

// propagate walks the dependency graph depth-first from root, re-evaluating
// and writing each descendant, detecting cycles via path (the ancestor
// chain on the current DFS stack, copied — never shared — across sibling
// recursive calls).
func (e *Engine) propagate(root string, path []string, ts uint64) {
	if containsString(path, root) {
		e.poison(root, ts)
		return
	}
	path = append(append([]string(nil), path...), root)

	for _, child := range e.graph.Children(root) {
		childExpr, hasExpr := e.store.GetExpression(child)
		if !hasExpr {
			continue
		}
		tokens, _ := eval.Variables(childExpr)
		bindings := binding.Build(tokens, e.store)
		v := evaluate(childExpr, bindings)
		e.store.Set(child, v, childExpr, len(tokens) > 0, ts)
		e.propagate(child, path, ts)
	}
}

// poison writes the canonical cycle errors onto root and each of its
// children, per §4.6. A self-referential cell appears as its own child
// (the edge constructed in Set when a cell's expression names itself); it
// is excluded from the second loop so the self-referential message written
// to root is not immediately overwritten by the generic "involved in a
// circular dependency" message under the equal-timestamp tie-break rule.
func (e *Engine) poison(root string, ts uint64) {
	e.store.Set(root, value.Error("Cell %s is self-referential", root), store.SentinelCircular, true, ts)
	for _, child := range e.graph.Children(root) {
		if child == root {
			continue
		}
		e.store.Set(child, value.Error("Cell %s is involved in a circular dependency", child), store.SentinelCircular, true, ts)
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Get looks up cell, translating the store's sentinel-expression encoding
// into the surface errors §4.7 specifies.
func (e *Engine) Get(cell string) (value.Value, error) {
	if !cellname.IsValid(cell) {
		return value.Value{}, ErrInvalidCell
	}
	v := e.store.GetValue(cell)
	expr, hasExpr := e.store.GetExpression(cell)
	if hasExpr && expr == store.SentinelCircular {
		return value.Value{}, errors.New(v.Render())
	}
	if hasExpr && expr == store.SentinelDependent {
		return value.Value{}, fmt.Errorf("A dependent cell contained an error: %s", v.Render())
	}
	return v, nil
}
