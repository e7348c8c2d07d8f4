// Package lower translates a parsed internal/ast tree into a de
// Bruijn-indexed LoweredExpr, resolving names against a surrounding scope of
// levels. Lowering is the first stage of internal/core's evaluation
// pipeline; the result feeds internal/annotate.
package lower

import (
	"errors"
	"fmt"

	"freya/internal/ast"
	"freya/internal/value"
)

// Sentinel errors LowerExpr returns, wrapped with fmt.Errorf("%w: ...") for
// context; callers distinguish them with errors.Is.
var (
	ErrMissingAscription    = errors.New("lower: parameter missing ascribed type")
	ErrUnsupportedConstruct = errors.New("lower: unsupported construct")
	ErrUnboundName          = errors.New("lower: unbound name")
)

// Tp is a type annotation attached to a lowered node: its value-level
// representation together with whether it classifies a proposition (and so
// is subject to proof irrelevance).
type Tp struct {
	Inner           value.Value
	IsPropositional bool
}

// Vtp pairs a fully-elaborated value with its type, as produced for the
// External leaves the lowering stage can resolve immediately (universes).
type Vtp struct {
	Value           value.Value
	TypeOf          value.Value
	IsPropositional bool
}

// VtpStore is the memoized, write-once annotation slot internal/annotate
// fills in for every node it elaborates, External leaves included.
type VtpStore struct {
	Value *value.Value
	Tp    *Tp
}

// Kind discriminates LoweredExpr's constructors.
type Kind uint8

const (
	KindLambda Kind = iota
	KindPiType
	KindApplication
	KindBinding
	KindExternal
)

// LoweredExpr is the de Bruijn-indexed tree internal/annotate consumes.
// Lambda, PiType, and Application carry a VtpStore the annotator fills in
// lazily; External leaves are already fully resolved by the lowering stage
// itself (universe literals need no further elaboration).
type LoweredExpr struct {
	Kind Kind

	// KindLambda, KindPiType: the ascribed parameter type and the body/
	// codomain, both themselves lowered.
	ParameterType *LoweredExpr
	Inner         *LoweredExpr

	// KindApplication.
	Left  *LoweredExpr
	Right *LoweredExpr

	// KindBinding: de Bruijn index (distance from point of use to binder).
	Level int

	// KindExternal.
	External Vtp

	Store VtpStore
}

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

// LowerExpr lowers expr to a LoweredExpr under bindings (a name -> level map
// for the enclosing scope) and level (the number of binders already
// introduced). bindings is mutated and restored across recursive calls so
// that shadowing within a single traversal behaves correctly; callers pass a
// fresh map at the top level.
func LowerExpr(expr ast.Expr, bindings map[string]int, level int) (LoweredExpr, error) {
	switch e := expr.(type) {
	case ast.FnLowercase:
		if e.ReturnType != nil {
			return LoweredExpr{}, wrap(ErrUnsupportedConstruct, "lambda must not carry an explicit return type; it is inferred")
		}
		return lowerBinder(KindLambda, e.Args, e.Body, bindings, level)

	case ast.FnUppercase:
		if e.ReturnType == nil {
			return LoweredExpr{}, wrap(ErrMissingAscription, "Pi type requires an explicit codomain")
		}
		return lowerBinder(KindPiType, e.Args, e.ReturnType, bindings, level)

	case ast.Block:
		return LoweredExpr{}, wrap(ErrUnsupportedConstruct, "blocks are not supported by the core language")

	case ast.Grouping:
		return LowerExpr(e.Inner, bindings, level)

	case ast.Application:
		left, err := LowerExpr(e.Left, bindings, level)
		if err != nil {
			return LoweredExpr{}, err
		}
		right, err := LowerExpr(e.Right, bindings, level)
		if err != nil {
			return LoweredExpr{}, err
		}
		return LoweredExpr{Kind: KindApplication, Left: &left, Right: &right}, nil

	case ast.Value:
		if len(e.Path) != 1 {
			return LoweredExpr{}, wrap(ErrUnsupportedConstruct, "multi-segment paths are not supported by the core language")
		}
		referenced, ok := bindings[e.Path[0]]
		if !ok {
			return LoweredExpr{}, wrap(ErrUnboundName, "undefined binding %q", e.Path[0])
		}
		// level - referenced - 1: referenced is the level recorded at the
		// binder's own position (before its scope's level increment), so the
		// distance from here to the binder's frame, 0-indexed from the
		// innermost, is one less than the naive difference.
		return LoweredExpr{Kind: KindBinding, Level: level - referenced - 1}, nil

	case ast.Set:
		u := value.Set(e.Level)
		return LoweredExpr{
			Kind: KindExternal,
			External: Vtp{
				Value:           value.NewUniverse(u),
				TypeOf:          value.NewUniverse(value.Set(e.Level + 1)),
				IsPropositional: false,
			},
		}, nil

	case ast.Prop:
		return LoweredExpr{
			Kind: KindExternal,
			External: Vtp{
				Value:           value.NewUniverse(value.Prop()),
				TypeOf:          value.NewUniverse(value.Set(0)),
				IsPropositional: false,
			},
		}, nil
	}

	return LoweredExpr{}, wrap(ErrUnsupportedConstruct, "unsupported expression node %T", expr)
}

// lowerBinder lowers a sequence of typed-binding parameters folded right to
// left into nested Lambda or PiType nodes, extending bindings/level one
// parameter at a time and restoring any shadowed name on return.
func lowerBinder(kind Kind, args []ast.TypedBinding, tail ast.Expr, bindings map[string]int, level int) (LoweredExpr, error) {
	if len(args) == 0 {
		return LowerExpr(tail, bindings, level)
	}

	arg := args[0]
	if arg.AscribedType == nil {
		return LoweredExpr{}, wrap(ErrMissingAscription, "parameter must carry an ascribed type")
	}

	paramType, err := LowerExpr(arg.AscribedType, bindings, level)
	if err != nil {
		return LoweredExpr{}, err
	}

	var name string
	if ident, ok := arg.Binding.(ast.Identifier); ok {
		name = ident.Name
	}

	var (
		shadowed    int
		hadShadowed bool
	)
	if name != "" {
		shadowed, hadShadowed = bindings[name]
		bindings[name] = level
	}

	inner, err := lowerBinder(kind, args[1:], tail, bindings, level+1)

	if name != "" {
		if hadShadowed {
			bindings[name] = shadowed
		} else {
			delete(bindings, name)
		}
	}

	if err != nil {
		return LoweredExpr{}, err
	}

	return LoweredExpr{Kind: kind, ParameterType: &paramType, Inner: &inner}, nil
}
