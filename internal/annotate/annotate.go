// Package annotate elaborates a internal/lower.LoweredExpr: for every node it
// computes, once, the Value it evaluates to and the type that classifies it.
// Both computations are memoized on the node's VtpStore so a shared subterm
// is never re-elaborated.
package annotate

import (
	"errors"
	"fmt"

	"freya/internal/lower"
	"freya/internal/value"
)

// Sentinel errors GetType/GetValue return, wrapped with fmt.Errorf("%w: ...")
// for context; callers distinguish them with errors.Is. ErrUnsupportedConstruct
// is shared with internal/lower — a node this package can't classify and a
// node lowering can't translate are the same failure mode from the caller's
// point of view.
var (
	ErrUnsupportedConstruct = lower.ErrUnsupportedConstruct
	ErrExpectedUniverse     = errors.New("annotate: expected a universe")
	ErrExpectedPi           = errors.New("annotate: expected a function type")
	ErrTypeMismatch         = errors.New("annotate: type mismatch")
)

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

// BindingStack is a cons-list of the ascribed types of binders in scope,
// indexed outward from the innermost: open destructures the top frame,
// NthUpward walks a de Bruijn index out to its binder, and AddValue pushes
// a new frame without mutating the one it was built from.
type BindingStack struct {
	value    *lower.Tp
	previous *BindingStack
}

// Empty is the binding stack with no frames, used at the top of a file.
var Empty = &BindingStack{}

func (b *BindingStack) isEmpty() bool { return b.value == nil && b.previous == nil }

func (b *BindingStack) open() (*lower.Tp, *BindingStack) {
	if b.isEmpty() {
		panic("annotate: binding stack is empty")
	}
	return b.value, b.previous
}

// NthUpward walks index frames outward and returns the type found there,
// unshifted: the pushed Tp comes back verbatim.
func (b *BindingStack) NthUpward(index int) *lower.Tp {
	cur := b
	for i := 0; i < index; i++ {
		_, cur = cur.open()
	}
	v, _ := cur.open()
	return v
}

// AddValue returns a new stack with tp pushed as the innermost frame.
func (b *BindingStack) AddValue(tp lower.Tp) *BindingStack {
	return &BindingStack{value: &tp, previous: b}
}

// piUniverse computes the universe of a Π-type from the universes of its
// parameter and codomain: Prop absorbs (a proof of anything is itself a
// proposition when the codomain is), and otherwise the level is the max of
// the two, except a Prop parameter with a Set codomain keeps the codomain's
// own level rather than taking a max with Prop's (undefined) level.
func piUniverse(parameter, codomain value.Universe) value.Universe {
	if codomain.IsProp {
		return value.Prop()
	}
	if parameter.IsProp {
		return value.Set(codomain.Level)
	}
	level := parameter.Level
	if codomain.Level > level {
		level = codomain.Level
	}
	return value.Set(level)
}

// isPropositional reports whether expr's type is known (from its External
// leaf, or transitively) to classify a proposition, short-circuiting the
// need to compute its value at all: any two proofs of the same proposition
// are judgmentally Witness.
func isPropositional(expr *lower.LoweredExpr) bool {
	if expr.Store.Tp != nil {
		return expr.Store.Tp.IsPropositional
	}
	if expr.Kind == lower.KindExternal {
		return expr.External.IsPropositional
	}
	return false
}

// GetValue returns expr's elaborated value, computing and memoizing it if
// this is the first request. Unlike GetType, GetValue needs no binding
// stack: by the time a top-level caller reaches it, GetType has already
// recursed over the entire tree and memoized every node's Tp, so value
// computation only ever reads already-established type information rather
// than resolving bindings against a context.
func GetValue(expr *lower.LoweredExpr) (value.Value, error) {
	if expr.Store.Value != nil {
		return *expr.Store.Value, nil
	}
	if expr.Store.Tp == nil {
		return value.Value{}, fmt.Errorf("annotate: GetValue called before GetType populated this node's type")
	}

	v, err := getValueUncached(expr)
	if err != nil {
		return value.Value{}, err
	}
	expr.Store.Value = &v
	return v, nil
}

// GetType returns expr's elaborated type, computing and memoizing it if this
// is the first request.
func GetType(expr *lower.LoweredExpr, stack *BindingStack) (lower.Tp, error) {
	if expr.Store.Tp != nil {
		return *expr.Store.Tp, nil
	}

	tp, err := getTpUncached(expr, stack)
	if err != nil {
		return lower.Tp{}, err
	}
	expr.Store.Tp = &tp
	return tp, nil
}

func getValueUncached(expr *lower.LoweredExpr) (value.Value, error) {
	if isPropositional(expr) {
		return value.Witness(), nil
	}

	switch expr.Kind {
	case lower.KindExternal:
		return expr.External.Value, nil

	case lower.KindBinding:
		return value.NewBinding(expr.Level), nil

	case lower.KindLambda:
		inner, err := GetValue(expr.Inner)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewLambda(inner), nil

	case lower.KindPiType:
		paramVal, err := GetValue(expr.ParameterType)
		if err != nil {
			return value.Value{}, err
		}
		// expr.Inner's Tp was already memoized during the GetType pass that
		// must precede any GetValue call; its Inner field names the universe
		// that classifies the codomain expression, and that universe being
		// Prop is exactly what makes this Π-type itself proof-irrelevant.
		codomainU, err := assumeTypeIsKnownUniverse(*expr.Inner.Store.Tp)
		if err != nil {
			return value.Value{}, err
		}
		inner, err := GetValue(expr.Inner)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewPiType(paramVal, inner, codomainU.IsProp), nil

	case lower.KindApplication:
		left, err := GetValue(expr.Left)
		if err != nil {
			return value.Value{}, err
		}
		right, err := GetValue(expr.Right)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewApplication(left, right).Normalize(), nil
	}

	return value.Value{}, wrap(ErrUnsupportedConstruct, "unsupported lowered node kind %d", expr.Kind)
}

func getTpUncached(expr *lower.LoweredExpr, stack *BindingStack) (lower.Tp, error) {
	switch expr.Kind {
	case lower.KindExternal:
		return lower.Tp{Inner: expr.External.TypeOf, IsPropositional: expr.External.IsPropositional}, nil

	case lower.KindBinding:
		// No value.AddToBindings shift here: the pushed Tp is reused exactly
		// as the enclosing binder recorded it.
		tp := stack.NthUpward(expr.Level)
		return *tp, nil

	case lower.KindLambda:
		paramTp, err := GetType(expr.ParameterType, stack)
		if err != nil {
			return lower.Tp{}, err
		}
		paramU, err := assumeTypeIsKnownUniverse(paramTp)
		if err != nil {
			return lower.Tp{}, err
		}
		paramVal, err := GetValue(expr.ParameterType)
		if err != nil {
			return lower.Tp{}, err
		}
		innerStack := stack.AddValue(lower.Tp{Inner: paramVal, IsPropositional: paramU.IsProp})
		innerTp, err := GetType(expr.Inner, innerStack)
		if err != nil {
			return lower.Tp{}, err
		}
		// The Lambda's Tp takes the body's propositional flag: a Π-type whose
		// codomain is a proposition is itself one, so the lambda is
		// proof-irrelevant exactly when its body is, and an enclosing
		// Application can short-circuit on it (see the PiType's
		// is_propositional field threaded through substitution).
		piType := value.NewPiType(paramVal, innerTp.Inner, innerTp.IsPropositional)
		return lower.Tp{Inner: piType, IsPropositional: innerTp.IsPropositional}, nil

	case lower.KindPiType:
		paramTp, err := GetType(expr.ParameterType, stack)
		if err != nil {
			return lower.Tp{}, err
		}
		paramU, err := assumeTypeIsKnownUniverse(paramTp)
		if err != nil {
			return lower.Tp{}, err
		}
		paramVal, err := GetValue(expr.ParameterType)
		if err != nil {
			return lower.Tp{}, err
		}
		innerStack := stack.AddValue(lower.Tp{Inner: paramVal, IsPropositional: paramU.IsProp})
		innerTp, err := GetType(expr.Inner, innerStack)
		if err != nil {
			return lower.Tp{}, err
		}
		innerU, err := assumeTypeIsKnownUniverse(innerTp)
		if err != nil {
			return lower.Tp{}, err
		}
		u := piUniverse(paramU, innerU)
		return lower.Tp{Inner: value.NewUniverse(u), IsPropositional: false}, nil

	case lower.KindApplication:
		leftTp, err := GetType(expr.Left, stack)
		if err != nil {
			return lower.Tp{}, err
		}
		if leftTp.Inner.Kind != value.KindPiType {
			return lower.Tp{}, wrap(ErrExpectedPi, "application head is not a function")
		}
		rightTp, err := GetType(expr.Right, stack)
		if err != nil {
			return lower.Tp{}, err
		}
		if !rightTp.Inner.Equal(*leftTp.Inner.ParameterType) {
			return lower.Tp{}, wrap(ErrTypeMismatch, "argument type does not match the function's parameter type")
		}
		rightVal, err := GetValue(expr.Right)
		if err != nil {
			return lower.Tp{}, err
		}
		result := leftTp.Inner.Inner.Substitute(rightVal)
		return lower.Tp{Inner: result, IsPropositional: leftTp.Inner.IsPropositional}, nil
	}

	return lower.Tp{}, wrap(ErrUnsupportedConstruct, "unsupported lowered node kind %d", expr.Kind)
}

func assumeTypeIsKnownUniverse(tp lower.Tp) (value.Universe, error) {
	if tp.Inner.Kind != value.KindUniverse {
		return value.Universe{}, wrap(ErrExpectedUniverse, "expected a universe, found a term of another type")
	}
	return tp.Inner.Universe, nil
}
