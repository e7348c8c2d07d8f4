package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"freya/internal/ast"
	"freya/internal/value"
)

func name(n string) ast.Binding { return ast.Identifier{Name: n} }

// "*" elaborates to Universe(Set{0}); its type is Universe(Set{1}).
func TestScenarioUniverseLiteral(t *testing.T) {
	result, err := Evaluate(ast.Set{Level: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Value.Equal(value.NewUniverse(value.Set(0))) {
		t.Fatalf("expected value Universe(Set{0}), got %+v", result.Value)
	}
	if !result.Type.Equal(value.NewUniverse(value.Set(1))) {
		t.Fatalf("expected type Universe(Set{1}), got %+v", result.Type)
	}
}

// "?" (Prop) has type Universe(Set{0}).
func TestScenarioPropHasTypeSetZero(t *testing.T) {
	result, err := Evaluate(ast.Prop{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Type.Equal(value.NewUniverse(value.Set(0))) {
		t.Fatalf("expected Prop's type to be Universe(Set{0}), got %+v", result.Type)
	}
}

// Fn(x : *) -> * has type Universe(Set{1}): its parameter type * and its
// codomain * both live in Set{1}, and the Pi universe rule keeps that level.
func TestScenarioPiTypeUniverseLevel(t *testing.T) {
	pi := ast.FnUppercase{
		Args:       []ast.TypedBinding{{Binding: name("x"), AscribedType: ast.Set{Level: 0}}},
		ReturnType: ast.Set{Level: 0},
	}
	result, err := Evaluate(pi)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Type.Equal(value.NewUniverse(value.Set(1))) {
		t.Fatalf("expected type Universe(Set{1}), got %+v", result.Type)
	}
}

// An identity function instantiated at a low universe level returns its
// argument unchanged. Universe equality here is strict and non-cumulative
// (a universe literal's type is always one level above its own value), so
// the two-argument application has to stagger its levels to stay
// well-typed: A is ascribed at Set{2} ("*''") and instantiated with "*'"
// (Set{1}, whose type is Set{2}); x is then ascribed at A's value (Set{1})
// and instantiated with "*" (Set{0}, whose type is Set{1}).
func TestScenarioIdentityAtLowUniverseReturnsItsArgument(t *testing.T) {
	generic := ast.FnLowercase{
		Args: []ast.TypedBinding{
			{Binding: name("A"), AscribedType: ast.Set{Level: 2}},
			{Binding: name("x"), AscribedType: ast.Value{Path: []string{"A"}}},
		},
		Body: ast.Value{Path: []string{"x"}},
	}
	applied := ast.Application{
		Left:  ast.Application{Left: generic, Right: ast.Set{Level: 1}},
		Right: ast.Set{Level: 0},
	}
	result, err := Evaluate(applied)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Value.Equal(value.NewUniverse(value.Set(0))) {
		t.Fatalf("expected Universe(Set{0}), got %+v", result.Value)
	}
}

// The same generic identity, instantiated with A := Fn(n:*)->* and
// x := fn(n:*) n, returns the lambda's value unchanged (Lambda{Binding{0}})
// with type Fn(n:*)->*. A is ascribed at Set{1} ("*'") rather than "*",
// since Fn(n:*)->*'s own elaborated type is Set{1}, not Set{0}.
func TestScenarioGenericIdentityReturnsLambdaUnchanged(t *testing.T) {
	generic := ast.FnLowercase{
		Args: []ast.TypedBinding{
			{Binding: name("A"), AscribedType: ast.Set{Level: 1}},
			{Binding: name("x"), AscribedType: ast.Value{Path: []string{"A"}}},
		},
		Body: ast.Value{Path: []string{"x"}},
	}
	piArg := ast.FnUppercase{
		Args:       []ast.TypedBinding{{Binding: name("n"), AscribedType: ast.Set{Level: 0}}},
		ReturnType: ast.Set{Level: 0},
	}
	identityArg := ast.FnLowercase{
		Args: []ast.TypedBinding{{Binding: name("n"), AscribedType: ast.Set{Level: 0}}},
		Body: ast.Value{Path: []string{"n"}},
	}
	applied := ast.Application{
		Left:  ast.Application{Left: generic, Right: piArg},
		Right: identityArg,
	}
	result, err := Evaluate(applied)
	if err != nil {
		t.Fatal(err)
	}
	if result.Value.Kind != value.KindLambda || result.Value.Inner.Kind != value.KindBinding || result.Value.Inner.Level != 0 {
		t.Fatalf("expected Lambda{Binding{0}}, got %+v", result.Value)
	}
	wantType := value.NewPiType(value.NewUniverse(value.Set(0)), value.NewUniverse(value.Set(0)), false)
	if !result.Type.Equal(wantType) {
		t.Fatalf("expected type Fn(n:*)->* = %+v, got %+v", wantType, result.Type)
	}
}

func TestEvaluateUnboundName(t *testing.T) {
	_, err := Evaluate(ast.Value{Path: []string{"nope"}})
	if !errors.Is(err, ErrUnboundName) {
		t.Fatalf("expected ErrUnboundName, got %v", err)
	}
}

func TestEvaluateBlockUnsupported(t *testing.T) {
	_, err := Evaluate(ast.Block{})
	if !errors.Is(err, ErrUnsupportedConstruct) {
		t.Fatalf("expected ErrUnsupportedConstruct, got %v", err)
	}
}

// TestScenarioSnapshots pins the printed value/type pair for each scenario
// above so a change in elaboration or printing output shows up as a
// snapshot diff instead of silently drifting.
func TestScenarioSnapshots(t *testing.T) {
	generic := ast.FnLowercase{
		Args: []ast.TypedBinding{
			{Binding: name("A"), AscribedType: ast.Set{Level: 2}},
			{Binding: name("x"), AscribedType: ast.Value{Path: []string{"A"}}},
		},
		Body: ast.Value{Path: []string{"x"}},
	}
	genericLowUniv := ast.FnLowercase{
		Args: []ast.TypedBinding{
			{Binding: name("A"), AscribedType: ast.Set{Level: 1}},
			{Binding: name("x"), AscribedType: ast.Value{Path: []string{"A"}}},
		},
		Body: ast.Value{Path: []string{"x"}},
	}
	piArg := ast.FnUppercase{
		Args:       []ast.TypedBinding{{Binding: name("n"), AscribedType: ast.Set{Level: 0}}},
		ReturnType: ast.Set{Level: 0},
	}
	identityArg := ast.FnLowercase{
		Args: []ast.TypedBinding{{Binding: name("n"), AscribedType: ast.Set{Level: 0}}},
		Body: ast.Value{Path: []string{"n"}},
	}

	scenarios := []struct {
		name string
		expr ast.Expr
	}{
		{"UniverseLiteral", ast.Set{Level: 0}},
		{"Prop", ast.Prop{}},
		{"PiTypeUniverseLevel", ast.FnUppercase{
			Args:       []ast.TypedBinding{{Binding: name("x"), AscribedType: ast.Set{Level: 0}}},
			ReturnType: ast.Set{Level: 0},
		}},
		{"IdentityAtLowUniverse", ast.Application{
			Left:  ast.Application{Left: generic, Right: ast.Set{Level: 1}},
			Right: ast.Set{Level: 0},
		}},
		{"GenericIdentityOverLambda", ast.Application{
			Left:  ast.Application{Left: genericLowUniv, Right: piArg},
			Right: identityArg,
		}},
	}

	for _, s := range scenarios {
		result, err := Evaluate(s.expr)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("%s: value=%s type=%s", s.name, result.Value, result.Type))
	}
}
