// Package value defines the tagged value variant produced and consumed by
// the expression evaluator and stored in cells.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindInteger
	KindString
	KindList
	KindMatrix
	KindError
)

// Value is a tagged variant: Integer(i64) | String | List | Matrix | Error | None.
//
// Only one of the fields is meaningful, selected by Kind. List holds a flat
// vector; Matrix holds a row-major slice of rows, each itself a slice of
// Value (only ever populated with scalars in practice, since the evaluator
// never nests ranges).
type Value struct {
	Kind    Kind
	Integer int64
	Str     string
	List    []Value
	Matrix  [][]Value
	ErrMsg  string
}

func None() Value { return Value{Kind: KindNone} }

func Integer(n int64) Value { return Value{Kind: KindInteger, Integer: n} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func List(items []Value) Value { return Value{Kind: KindList, List: items} }

func Matrix(rows [][]Value) Value { return Value{Kind: KindMatrix, Matrix: rows} }

func Error(format string, args ...any) Value {
	return Value{Kind: KindError, ErrMsg: fmt.Sprintf(format, args...)}
}

func (v Value) IsError() bool { return v.Kind == KindError }

func (v Value) IsNone() bool { return v.Kind == KindNone }

// AsInteger reports whether v is an Integer and returns its payload.
func (v Value) AsInteger() (int64, bool) {
	if v.Kind == KindInteger {
		return v.Integer, true
	}
	return 0, false
}

// Render produces the text sent back to a client for a `get` reply on a
// scalar cell. List/Matrix never reach here (§6: only scalars are returned
// by get); Render panics if called on one, since that indicates a pipeline
// bug rather than a user-facing condition.
func (v Value) Render() string {
	switch v.Kind {
	case KindNone:
		return ""
	case KindInteger:
		return strconv.FormatInt(v.Integer, 10)
	case KindString:
		return v.Str
	case KindError:
		return v.ErrMsg
	case KindList, KindMatrix:
		panic("value: Render called on a non-scalar value")
	default:
		return ""
	}
}

func (v Value) String() string {
	var b strings.Builder
	switch v.Kind {
	case KindNone:
		b.WriteString("None")
	case KindInteger:
		fmt.Fprintf(&b, "Integer(%d)", v.Integer)
	case KindString:
		fmt.Fprintf(&b, "String(%q)", v.Str)
	case KindError:
		fmt.Fprintf(&b, "Error(%q)", v.ErrMsg)
	case KindList:
		b.WriteString("List(")
		for i, item := range v.List {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.String())
		}
		b.WriteString(")")
	case KindMatrix:
		b.WriteString("Matrix(")
		for i, row := range v.Matrix {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("[")
			for j, item := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(item.String())
			}
			b.WriteString("]")
		}
		b.WriteString(")")
	}
	return b.String()
}
