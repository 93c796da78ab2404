package eval

import (
	"github.com/Sheeplet1/rsheets/internal/value"
	"github.com/Sheeplet1/rsheets/internal/variables"
)

// Parse lexes and parses an expression string into an evaluatable AST.
func Parse(expr string) (Node, error) {
	lex := newLexer(expr)
	toks, err := lex.tokenize()
	if err != nil {
		return nil, err
	}
	p := newParser(toks)
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, &parseTrailingError{text: p.cur().text}
	}
	return node, nil
}

type parseTrailingError struct{ text string }

func (e *parseTrailingError) Error() string {
	return "eval: unexpected trailing token " + e.text
}

// Evaluate parses expr and evaluates it against bindings in one step.
func Evaluate(expr string, bindings map[string]value.Value) (value.Value, error) {
	node, err := Parse(expr)
	if err != nil {
		return value.Value{}, err
	}
	return node.Eval(bindings)
}

// Variables performs a lex-only pass over expr, returning every variable
// token (cell reference or range) it references, excluding identifiers that
// are actually function names (those are followed by '('). Used by the set
// pipeline and propagator to discover dependency edges without a full
// bind-and-eval.
func Variables(expr string) ([]variables.Token, error) {
	lex := newLexer(expr)
	toks, err := lex.tokenize()
	if err != nil {
		return nil, err
	}
	var out []variables.Token
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != tokIdent {
			continue
		}
		if i+1 < len(toks) && toks[i+1].kind == tokLParen {
			// function name, not a variable; its arguments are walked
			// separately when this loop reaches their own identifier tokens
			continue
		}
		vtok, err := variables.Categorize(t.text)
		if err != nil {
			return nil, err
		}
		out = append(out, vtok)
	}
	return out, nil
}
