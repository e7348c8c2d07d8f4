package value

import "testing"

func TestUniverseEqual(t *testing.T) {
	if !NewUniverse(Set(0)).Equal(NewUniverse(Set(0))) {
		t.Fatal("Set{0} should equal Set{0}")
	}
	if NewUniverse(Set(0)).Equal(NewUniverse(Set(1))) {
		t.Fatal("Set{0} should not equal Set{1}")
	}
	if !NewUniverse(Prop()).Equal(NewUniverse(Prop())) {
		t.Fatal("Prop should equal Prop regardless of Level")
	}
	if NewUniverse(Prop()).Equal(NewUniverse(Set(0))) {
		t.Fatal("Prop should not equal Set{0}")
	}
}

func TestIntrinsicEqualityIsPointerIdentity(t *testing.T) {
	a := &IntrinsicData{Name: "nat"}
	b := &IntrinsicData{Name: "nat"}

	v1 := Value{Kind: KindIntrinsic, IntrinsicHead: a}
	v2 := Value{Kind: KindIntrinsic, IntrinsicHead: a}
	v3 := Value{Kind: KindIntrinsic, IntrinsicHead: b}

	if !v1.Equal(v2) {
		t.Fatal("two intrinsics sharing the same handle should be equal")
	}
	if v1.Equal(v3) {
		t.Fatal("two intrinsics with distinct handles (even same Name) should not be equal")
	}
}

func TestPiTypeEqualChecksIsPropositional(t *testing.T) {
	p := NewUniverse(Set(0))
	a := NewPiType(p, p, false)
	b := NewPiType(p, p, true)
	if a.Equal(b) {
		t.Fatal("Pi types with differing IsPropositional should not be equal")
	}
}

func TestAddToBindingsShiftsOnlyBindings(t *testing.T) {
	v := NewLambda(NewBinding(0))
	shifted := v.AddToBindings(1)
	if shifted.Inner.Level != 1 {
		t.Fatalf("expected shifted binding level 1, got %d", shifted.Inner.Level)
	}

	u := NewUniverse(Set(0))
	if !u.AddToBindings(5).Equal(u) {
		t.Fatal("AddToBindings must not touch non-Binding leaves")
	}
}

// Substituting into a bare Binding{0} must replace the self-reference with
// the argument directly: the identity-function base case.
func TestSubstituteDirectSelfReference(t *testing.T) {
	argument := NewUniverse(Set(3))
	body := NewBinding(0)
	result := body.Substitute(argument)
	if !result.Equal(argument) {
		t.Fatalf("expected %+v, got %+v", argument, result)
	}
}

func TestSubstituteLeavesOuterBindingsAloneWhenBelowIndex(t *testing.T) {
	// Binding{0} nested one Lambda deeper than the substitution site must
	// survive untouched: it refers to that inner Lambda's own parameter, not
	// the one being substituted.
	inner := NewLambda(NewBinding(0))
	result := inner.Substitute(NewUniverse(Set(9)))
	if result.Kind != KindLambda || result.Inner.Kind != KindBinding || result.Inner.Level != 0 {
		t.Fatalf("expected the inner lambda's own Binding{0} preserved, got %+v", result)
	}
}

// Substituting across a binder re-anchors the argument: a free variable in
// the argument gains one level per binder it now sits under.
func TestSubstituteShiftsArgumentUnderBinders(t *testing.T) {
	// λ. Binding{1}: under one binder, index 1 is the substitution target.
	body := NewLambda(NewBinding(1))
	result := body.Substitute(NewBinding(5))
	if result.Kind != KindLambda || result.Inner.Kind != KindBinding {
		t.Fatalf("expected Lambda{Binding}, got %+v", result)
	}
	if result.Inner.Level != 6 {
		t.Fatalf("expected the argument's free Binding{5} shifted to 6 under one binder, got %d", result.Inner.Level)
	}
}

func TestNormalizeBetaReducesSaturatedLambda(t *testing.T) {
	identity := NewLambda(NewBinding(0))
	arg := NewUniverse(Set(2))
	app := NewApplication(identity, arg)
	result := app.Normalize()
	if !result.Equal(arg) {
		t.Fatalf("expected beta-reduction to %+v, got %+v", arg, result)
	}
}

func TestNormalizeApplicationOfWitnessCollapses(t *testing.T) {
	app := NewApplication(Witness(), NewUniverse(Set(0)))
	result := app.Normalize()
	if result.Kind != KindWitness {
		t.Fatalf("expected Witness, got %+v", result)
	}
}

func TestNormalizeCurriesIntrinsic(t *testing.T) {
	head := &IntrinsicData{Name: "pair"}
	partial := Value{Kind: KindIntrinsic, IntrinsicHead: head, Arguments: []Value{NewUniverse(Set(0))}}
	app := NewApplication(partial, NewUniverse(Set(1)))
	result := app.Normalize()
	if result.Kind != KindIntrinsic || len(result.Arguments) != 2 {
		t.Fatalf("expected a 2-argument intrinsic, got %+v", result)
	}
	if result.IntrinsicHead != head {
		t.Fatal("curried intrinsic must keep the same handle")
	}
}

func TestNormalizeStuckApplicationStaysApplication(t *testing.T) {
	stuck := NewApplication(NewBinding(0), NewUniverse(Set(0)))
	result := stuck.Normalize()
	if result.Kind != KindApplication {
		t.Fatalf("expected a stuck Application to stay an Application, got %+v", result)
	}
}
