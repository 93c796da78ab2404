package eval

import (
	"github.com/Sheeplet1/rsheets/internal/value"
)

// callBuiltin dispatches by name, mirroring the teacher's builtin.go
// Call(name string, args ...any) (Primitive, error) switch, narrowed to the
// aggregate functions this engine's Integer/List/Matrix variants support.
// Dates, randomness, and string builtins from the teacher are dropped: this
// engine's Value has no date or random concept (see DESIGN.md). Any problem
// (unknown function, empty aggregate) is returned as a Value{Error}, never
// as a Go error, so it can be stored by the set pipeline rather than raised
// past it, matching original_source's CommandRunner::run signature
// (CellValue, never Result).
func callBuiltin(name string, args []value.Value) value.Value {
	switch name {
	case "sum":
		nums := flattenIntegers(args)
		var total int64
		for _, n := range nums {
			total += n
		}
		return value.Integer(total)

	case "average":
		nums := flattenIntegers(args)
		if len(nums) == 0 {
			return value.Error("AVERAGE requires at least one numeric value")
		}
		var total int64
		for _, n := range nums {
			total += n
		}
		return value.Integer(total / int64(len(nums)))

	case "min":
		nums := flattenIntegers(args)
		if len(nums) == 0 {
			return value.Error("MIN requires at least one numeric value")
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n < m {
				m = n
			}
		}
		return value.Integer(m)

	case "max":
		nums := flattenIntegers(args)
		if len(nums) == 0 {
			return value.Error("MAX requires at least one numeric value")
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n > m {
				m = n
			}
		}
		return value.Integer(m)

	case "count":
		nums := flattenIntegers(args)
		return value.Integer(int64(len(nums)))

	default:
		return value.Error("unknown function %q", name)
	}
}

// flattenIntegers walks each argument value, collecting every Integer it
// finds. None, String, and Error cells contribute nothing, matching the
// convention that absent/non-numeric cells are simply excluded from
// aggregates rather than producing a hard failure.
func flattenIntegers(args []value.Value) []int64 {
	var out []int64
	var walk func(v value.Value)
	walk = func(v value.Value) {
		switch v.Kind {
		case value.KindInteger:
			out = append(out, v.Integer)
		case value.KindList:
			for _, item := range v.List {
				walk(item)
			}
		case value.KindMatrix:
			for _, row := range v.Matrix {
				for _, item := range row {
					walk(item)
				}
			}
		}
	}
	for _, a := range args {
		walk(a)
	}
	return out
}
