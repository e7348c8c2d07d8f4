// Package value implements the normal-form value algebra: universes,
// Π-types, de Bruijn-indexed bindings, and the normalization and
// substitution operations the annotator relies on.
package value

// Universe classifies a Value as living in Prop or in one of the
// predicative Set levels.
type Universe struct {
	IsProp bool
	Level  int // meaningful only when IsProp is false
}

// Prop is the universe of propositions.
func Prop() Universe { return Universe{IsProp: true} }

// Set is the k-th universe in the predicative hierarchy.
func Set(level int) Universe { return Universe{Level: level} }

func (u Universe) equal(o Universe) bool {
	return u.IsProp == o.IsProp && (u.IsProp || u.Level == o.Level)
}

// IntrinsicData is the payload of an Intrinsic value. Equality between two
// Intrinsic values is pointer identity on this struct: two terms mention
// the same intrinsic only if they share one handle, regardless of Name.
type IntrinsicData struct {
	Name string
}

// Kind discriminates Value's constructors.
type Kind uint8

const (
	KindUniverse Kind = iota
	KindIntrinsic
	KindBinding
	KindLambda
	KindPiType
	KindWitness
	KindApplication
)

// Value is the normal-form representation produced by the annotator.
// Exactly one of its fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Universe Universe

	IntrinsicHead *IntrinsicData
	Arguments     []Value

	Level int // KindBinding: de Bruijn index

	Inner *Value // KindLambda: body: KindPiType: codomain

	ParameterType   *Value // KindPiType
	IsPropositional bool   // KindPiType: whether the codomain universe is Prop

	Left  *Value // KindApplication
	Right *Value // KindApplication
}

// NewUniverse constructs a universe value.
func NewUniverse(u Universe) Value { return Value{Kind: KindUniverse, Universe: u} }

// NewBinding constructs a de Bruijn binding value at the given index.
func NewBinding(level int) Value { return Value{Kind: KindBinding, Level: level} }

// NewLambda constructs a lambda value from its (already-valued) body.
func NewLambda(inner Value) Value { return Value{Kind: KindLambda, Inner: &inner} }

// NewPiType constructs a Π-type value.
func NewPiType(parameterType, inner Value, isPropositional bool) Value {
	return Value{
		Kind:            KindPiType,
		ParameterType:   &parameterType,
		Inner:           &inner,
		IsPropositional: isPropositional,
	}
}

// NewApplication constructs an (unreduced) application value.
func NewApplication(left, right Value) Value {
	return Value{Kind: KindApplication, Left: &left, Right: &right}
}

// Witness is the canonical proof-irrelevant value.
func Witness() Value { return Value{Kind: KindWitness} }

// Equal is structural equality on normalized Values, except for Intrinsic
// heads, which compare by pointer identity (see IntrinsicData).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindUniverse:
		return v.Universe.equal(o.Universe)
	case KindIntrinsic:
		if v.IntrinsicHead != o.IntrinsicHead {
			return false
		}
		if len(v.Arguments) != len(o.Arguments) {
			return false
		}
		for i := range v.Arguments {
			if !v.Arguments[i].Equal(o.Arguments[i]) {
				return false
			}
		}
		return true
	case KindBinding:
		return v.Level == o.Level
	case KindLambda:
		return v.Inner.Equal(*o.Inner)
	case KindPiType:
		return v.ParameterType.Equal(*o.ParameterType) &&
			v.Inner.Equal(*o.Inner) &&
			v.IsPropositional == o.IsPropositional
	case KindWitness:
		return true
	case KindApplication:
		return v.Left.Equal(*o.Left) && v.Right.Equal(*o.Right)
	}
	return false
}
