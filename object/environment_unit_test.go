// ==============================================================================================
// FILE: object/environment_unit_test.go
// ==============================================================================================
// PURPOSE: Specific unit tests for Environment. Validates shadowing rules,
//          scope traversal, and assignment-without-declaration behavior.
// ==============================================================================================

package object

import "testing"

func TestEnvironment_GetDeclare(t *testing.T) {
	env := NewEnvironment()

	if _, ok := env.Get("x"); ok {
		t.Errorf("expected 'x' to not exist")
	}

	val := &Integer{Value: 10}
	env.DeclareWith("x", val)

	result, ok := env.Get("x")
	if !ok {
		t.Fatalf("expected 'x' to exist")
	}
	if result != val {
		t.Errorf("got %v, want %v", result, val)
	}
}

func TestEnvironment_DeclareDefaultsToNil(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x")

	val, ok := env.Get("x")
	if !ok {
		t.Fatalf("expected 'x' to exist after Declare")
	}
	if _, isNil := val.(*Nil); !isNil {
		t.Errorf("Declare did not default to Nil, got %v", val)
	}
}

func TestEnclosedEnvironments_ShadowingAndLeakage(t *testing.T) {
	outer := NewEnvironment()
	outer.DeclareWith("x", &Integer{Value: 10})
	outer.DeclareWith("y", &Integer{Value: 5})

	inner := NewEnclosedEnvironment(outer)

	val, ok := inner.Get("x")
	if !ok || val.(*Integer).Value != 10 {
		t.Errorf("failed to read from outer scope")
	}

	// Declaring 'x' in the inner scope shadows outer's cell unconditionally.
	inner.DeclareWith("x", &Integer{Value: 99})

	valInner, _ := inner.Get("x")
	if valInner.(*Integer).Value != 99 {
		t.Errorf("inner scope did not shadow outer scope")
	}

	valOuter, _ := outer.Get("x")
	if valOuter.(*Integer).Value != 10 {
		t.Errorf("outer scope was modified by inner declaration (shadowing failed)")
	}

	yVal, ok := inner.Get("y")
	if !ok || yVal.(*Integer).Value != 5 {
		t.Errorf("failed to traverse up to outer scope")
	}
}

func TestEnvironment_AssignWritesThroughToOuterCell(t *testing.T) {
	outer := NewEnvironment()
	outer.DeclareWith("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	if !inner.Assign("x", &Integer{Value: 2}) {
		t.Fatalf("Assign reported failure for a name declared in an outer scope")
	}

	val, _ := outer.Get("x")
	if val.(*Integer).Value != 2 {
		t.Errorf("assignment through inner scope did not mutate outer's cell: got %v", val.Inspect())
	}
}

func TestEnvironment_AssignUndeclaredFails(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("ghost", &Integer{Value: 1}) {
		t.Fatal("Assign succeeded for a name that was never declared")
	}
}
