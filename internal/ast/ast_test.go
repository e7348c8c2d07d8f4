package ast

import "testing"

func TestItemPosAndMarkers(t *testing.T) {
	var items = []Item{
		LetItem{Binding: TypedBinding{Binding: Identifier{Name: "x"}}, Body: Prop{}},
		TypeItem{Name: Name{Value: "Nat"}},
	}
	for _, it := range items {
		_ = it.Pos() // must not panic; exercises the itemNode() marker too
	}
}

func TestExprPosAndMarkers(t *testing.T) {
	var exprs = []Expr{
		FnLowercase{},
		FnUppercase{},
		Block{},
		Grouping{Inner: Prop{}},
		Application{Left: Prop{}, Right: Prop{}},
		Value{Path: []string{"x"}},
		Set{Level: 0},
		Prop{},
	}
	for _, e := range exprs {
		_ = e.Pos()
	}
}

func TestBindingMarkers(t *testing.T) {
	var bindings = []Binding{Identifier{Name: "x"}, Underscore{}}
	for _, b := range bindings {
		_ = b.Pos()
	}
}

func TestParameterOrIndexMarkers(t *testing.T) {
	var entries = []ParameterOrIndex{
		Parameter{Binding: Identifier{Name: "n"}, AscribedType: Set{Level: 0}},
		Index{AscribedType: Set{Level: 0}},
	}
	for _, e := range entries {
		_ = e.Pos()
	}
}

func TestStatementMarkers(t *testing.T) {
	var statements = []Statement{
		Let{Binding: TypedBinding{Binding: Identifier{Name: "y"}}, Body: Prop{}},
		Return{Body: Prop{}},
	}
	for _, s := range statements {
		_ = s.Pos()
	}
}
