package ast

import (
	"fmt"
	"strings"
)

// Print renders f as an indented tree, one node per line, for cmd/freya's
// parse command. It reproduces the surface syntax closely enough to be
// readable without attempting to be a reparsable pretty-printer.
func (f File) Print() string {
	var b strings.Builder
	for i, item := range f.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		printItem(&b, item, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printItem(b *strings.Builder, item Item, depth int) {
	switch it := item.(type) {
	case LetItem:
		indent(b, depth)
		fmt.Fprintf(b, "let %s\n", bindingString(it.Binding.Binding))
		printTypedBindingAscription(b, it.Binding, depth+1)
		printExpr(b, it.Body, depth+1)
	case TypeItem:
		indent(b, depth)
		fmt.Fprintf(b, "type %s\n", it.Name.Value)
		for _, pi := range it.ParamsAndIndexes {
			printParameterOrIndex(b, pi, depth+1)
		}
		for _, c := range it.Constructors {
			indent(b, depth+1)
			fmt.Fprintf(b, "constructor %s\n", c.Name.Value)
			printExpr(b, c.ConstructorType, depth+2)
		}
	default:
		indent(b, depth)
		fmt.Fprintf(b, "<unknown item %T>\n", it)
	}
}

func printTypedBindingAscription(b *strings.Builder, tb TypedBinding, depth int) {
	if tb.AscribedType == nil {
		return
	}
	indent(b, depth)
	b.WriteString(": \n")
	printExpr(b, tb.AscribedType, depth+1)
}

func printParameterOrIndex(b *strings.Builder, pi ParameterOrIndex, depth int) {
	switch p := pi.(type) {
	case Parameter:
		indent(b, depth)
		fmt.Fprintf(b, "param %s\n", bindingString(p.Binding))
		printExpr(b, p.AscribedType, depth+1)
	case Index:
		indent(b, depth)
		b.WriteString("index\n")
		printExpr(b, p.AscribedType, depth+1)
	}
}

func printExpr(b *strings.Builder, e Expr, depth int) {
	indent(b, depth)
	switch expr := e.(type) {
	case FnLowercase:
		b.WriteString("fn\n")
		for _, arg := range expr.Args {
			indent(b, depth+1)
			fmt.Fprintf(b, "arg %s\n", bindingString(arg.Binding))
			if arg.AscribedType != nil {
				printExpr(b, arg.AscribedType, depth+2)
			}
		}
		if expr.ReturnType != nil {
			indent(b, depth+1)
			b.WriteString("-> \n")
			printExpr(b, expr.ReturnType, depth+2)
		}
		printExpr(b, expr.Body, depth+1)
	case FnUppercase:
		b.WriteString("Fn\n")
		for _, arg := range expr.Args {
			indent(b, depth+1)
			fmt.Fprintf(b, "arg %s\n", bindingString(arg.Binding))
			if arg.AscribedType != nil {
				printExpr(b, arg.AscribedType, depth+2)
			}
		}
		indent(b, depth+1)
		b.WriteString("-> \n")
		printExpr(b, expr.ReturnType, depth+2)
	case Block:
		b.WriteString("block\n")
		for _, s := range expr.Statements {
			printStatement(b, s, depth+1)
		}
	case Grouping:
		b.WriteString("(...)\n")
		printExpr(b, expr.Inner, depth+1)
	case Application:
		b.WriteString("apply\n")
		printExpr(b, expr.Left, depth+1)
		printExpr(b, expr.Right, depth+1)
	case Value:
		fmt.Fprintf(b, "value %s\n", strings.Join(expr.Path, "::"))
	case Set:
		fmt.Fprintf(b, "set{%d}\n", expr.Level)
	case Prop:
		b.WriteString("prop\n")
	default:
		fmt.Fprintf(b, "<unknown expr %T>\n", expr)
	}
}

func printStatement(b *strings.Builder, s Statement, depth int) {
	switch stmt := s.(type) {
	case Let:
		indent(b, depth)
		fmt.Fprintf(b, "let %s\n", bindingString(stmt.Binding.Binding))
		printExpr(b, stmt.Body, depth+1)
	case Return:
		indent(b, depth)
		b.WriteString("return\n")
		printExpr(b, stmt.Body, depth+1)
	}
}

func bindingString(b Binding) string {
	switch binding := b.(type) {
	case Identifier:
		return binding.Name
	case Underscore:
		return "_"
	default:
		return "?"
	}
}
