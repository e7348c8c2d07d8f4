package value

import (
	"fmt"
	"strings"
)

// String renders v in the surface notation cmd/freya's eval command prints
// results in: universes as "*"/"*'"/"?", bindings as de Bruijn indices,
// lambdas and Π-types in their "fn"/"Fn" surface shape.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case KindUniverse:
		if v.Universe.IsProp {
			b.WriteByte('?')
			return
		}
		b.WriteByte('*')
		b.WriteString(strings.Repeat("'", v.Universe.Level))
	case KindIntrinsic:
		name := "<intrinsic>"
		if v.IntrinsicHead != nil {
			name = v.IntrinsicHead.Name
		}
		b.WriteString(name)
		for _, arg := range v.Arguments {
			b.WriteByte(' ')
			arg.write(b)
		}
	case KindBinding:
		fmt.Fprintf(b, "#%d", v.Level)
	case KindLambda:
		b.WriteString("fn(.) ")
		v.Inner.write(b)
	case KindPiType:
		b.WriteString("Fn(. : ")
		v.ParameterType.write(b)
		b.WriteString(") -> ")
		v.Inner.write(b)
	case KindWitness:
		b.WriteString("witness")
	case KindApplication:
		v.Left.write(b)
		b.WriteByte(' ')
		v.Right.write(b)
	default:
		fmt.Fprintf(b, "<unknown kind %d>", v.Kind)
	}
}
