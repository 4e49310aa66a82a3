// ----------------------------------------------------------------------------
// FILE: lexer/lexer_integration_test.go
// ----------------------------------------------------------------------------
package lexer

import (
	"testing"

	"github.com/glint-lang/glint/token"
)

// TestIntegrationLexer tokenizes a small function-with-closure program,
// verifying the interaction between identifiers, literals, and every
// bracket/operator kind in one pass.
func TestIntegrationLexer(t *testing.T) {
	input := `
fun make() {
  var i = 0;
  fun inc() { i = i + 1; return i; }
  return inc;
}
`
	expected := []struct {
		typ    token.TokenType
		lexeme string
	}{
		{token.FUN, "fun"}, {token.IDENTIFIER, "make"}, {token.LEFT_PAREN, "("}, {token.RIGHT_PAREN, ")"}, {token.LEFT_BRACE, "{"},
		{token.VAR, "var"}, {token.IDENTIFIER, "i"}, {token.EQUAL, "="}, {token.NUMBER, "0"}, {token.SEMICOLON, ";"},
		{token.FUN, "fun"}, {token.IDENTIFIER, "inc"}, {token.LEFT_PAREN, "("}, {token.RIGHT_PAREN, ")"}, {token.LEFT_BRACE, "{"},
		{token.IDENTIFIER, "i"}, {token.EQUAL, "="}, {token.IDENTIFIER, "i"}, {token.PLUS, "+"}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.RETURN, "return"}, {token.IDENTIFIER, "i"}, {token.SEMICOLON, ";"}, {token.RIGHT_BRACE, "}"},
		{token.RETURN, "return"}, {token.IDENTIFIER, "inc"}, {token.SEMICOLON, ";"}, {token.RIGHT_BRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ || tok.Lexeme != e.lexeme {
			t.Fatalf("[%d] got %q %q, want %q %q", i, tok.Type, tok.Lexeme, e.typ, e.lexeme)
		}
	}
}

func TestIntegrationLineCommentsAndNewlines(t *testing.T) {
	input := "var x = 1; // set x\nvar y = 2;"
	l := New(input)

	var lines []int
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		lines = append(lines, tok.Line)
	}
	if lines[len(lines)-1] != 2 {
		t.Errorf("final statement line = %d, want 2", lines[len(lines)-1])
	}
}
