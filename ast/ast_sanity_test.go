// ==============================================================================================
// FILE: ast/ast_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the AST package.
//          Tests extreme cases like empty programs and deep nesting to ensure
//          no panics or stack overflows occur during stringification.
// ==============================================================================================

package ast

import (
	"testing"

	"github.com/glint-lang/glint/token"
)

// TestDeeplyNestedExpressions creates a highly recursive expression
// (!(!(!...1))) to ensure the AST doesn't crash on deep traversal.
func TestDeeplyNestedExpressions(t *testing.T) {
	depth := 100
	var expr Expression = &Literal{Kind: NumberLiteralKind, Token: token.Token{Literal: "1.0"}}

	for i := 0; i < depth; i++ {
		expr = &Unary{Operator: "!", Right: expr}
	}

	if expr.String() == "" {
		t.Fatal("nested expression produced empty string")
	}
}

// TestEmptyProgramSanity verifies that an empty AST produces an empty string
// rather than a nil pointer dereference.
func TestEmptyProgramSanity(t *testing.T) {
	prog := &Program{Statements: []Statement{}}
	if prog.String() != "" {
		t.Fatalf("expected empty string for empty program, got %s", prog.String())
	}
}

// TestProgramTokenLiteralOnEmptyProgram guards against a nil-slice index
// panic when no statements have been parsed yet.
func TestProgramTokenLiteralOnEmptyProgram(t *testing.T) {
	prog := &Program{}
	if prog.TokenLiteral() != "" {
		t.Fatalf("expected empty TokenLiteral for an empty program, got %q", prog.TokenLiteral())
	}
}

// TestDeeplyNestedBinaryExpression checks a long chain of left-associative
// additions doesn't overflow the stack when stringified.
func TestDeeplyNestedBinaryExpression(t *testing.T) {
	var expr Expression = &Literal{Kind: NumberLiteralKind, Token: token.Token{Literal: "0.0"}}
	for i := 0; i < 500; i++ {
		expr = &Binary{Left: expr, Operator: "+", Right: &Literal{Kind: NumberLiteralKind, Token: token.Token{Literal: "1.0"}}}
	}
	if expr.String() == "" {
		t.Fatal("deeply nested binary expression produced empty string")
	}
}
