// ----------------------------------------------------------------------------
// FILE: lexer/lexer_sanity_test.go
// ----------------------------------------------------------------------------
package lexer

import (
	"testing"

	"github.com/glint-lang/glint/token"
)

// TestSanityLexer performs a basic sanity check on the lexer: scanning a
// normal program to EOF should not panic and should report no errors.
func TestSanityLexer(t *testing.T) {
	input := `var x = 10; if (x == 10) { print x; } else { print x + 1; }`
	l := New(input)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
	}
	if l.HadError() {
		t.Errorf("unexpected lexer errors: %v", l.Errors())
	}
}

func TestSanityUnexpectedCharacterContinuesScanning(t *testing.T) {
	l := New("var x @ = 1;")
	var sawIdentifierAfterBadChar bool
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		if tok.Lexeme == "=" {
			sawIdentifierAfterBadChar = true
		}
	}
	if !sawIdentifierAfterBadChar {
		t.Fatal("lexer stopped scanning after an unexpected character instead of continuing")
	}
	if !l.HadError() {
		t.Fatal("expected HadError to be true after an unexpected character")
	}
}
