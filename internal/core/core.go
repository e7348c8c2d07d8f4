// Package core wires internal/lower and internal/annotate into the single
// entry point the rest of the tree (cmd/freya's eval command, tests) calls
// to go from a parsed expression straight to its elaborated value and type.
package core

import (
	"freya/internal/annotate"
	"freya/internal/ast"
	"freya/internal/lower"
	"freya/internal/value"
)

// Error sentinels Evaluate's returned error can be matched against with
// errors.Is. They are re-exported from internal/lower and internal/annotate
// so callers need not import either package just to classify a failure.
var (
	ErrUnboundName          = lower.ErrUnboundName
	ErrMissingAscription    = lower.ErrMissingAscription
	ErrUnsupportedConstruct = lower.ErrUnsupportedConstruct
	ErrExpectedUniverse     = annotate.ErrExpectedUniverse
	ErrExpectedPi           = annotate.ErrExpectedPi
	ErrTypeMismatch         = annotate.ErrTypeMismatch
)

// Result is the outcome of elaborating a top-level expression: its normal
// form together with the type that classifies it.
type Result struct {
	Value value.Value
	Type  value.Value
}

// Evaluate lowers expr to a de Bruijn-indexed term, elaborates its type, and
// then its value, in that order — type elaboration is a prerequisite for
// value elaboration whenever proof irrelevance might apply.
func Evaluate(expr ast.Expr) (Result, error) {
	lowered, err := lower.LowerExpr(expr, map[string]int{}, 0)
	if err != nil {
		return Result{}, err
	}

	tp, err := annotate.GetType(&lowered, annotate.Empty)
	if err != nil {
		return Result{}, err
	}

	v, err := annotate.GetValue(&lowered)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: v, Type: tp.Inner}, nil
}
