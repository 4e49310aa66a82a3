// ==============================================================================================
// FILE: repl/repl_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for basic REPL line evaluation.
//          Start() itself owns a real terminal via readline, so these tests
//          drive runLine/handleCommand directly against a buffer, the same
//          functions Start()'s loop calls for each line it reads.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/glint-lang/glint/object"
)

func init() {
	// Disable ANSI codes so output assertions don't depend on whether the
	// test binary's stdout looks like a terminal.
	color.NoColor = true
}

func TestRunLine_Math(t *testing.T) {
	var out bytes.Buffer
	env := object.NewGlobalEnvironment()
	runLine(&out, "10 + 20;", env, false)

	if !strings.Contains(out.String(), "30") {
		t.Errorf("expected output to contain 30, got %q", out.String())
	}
}

func TestRunLine_VariablePersistsAcrossCalls(t *testing.T) {
	env := object.NewGlobalEnvironment()

	var decl bytes.Buffer
	runLine(&decl, "var x = 50;", env, false)

	var out bytes.Buffer
	runLine(&out, "x + 10;", env, false)

	if !strings.Contains(out.String(), "60") {
		t.Errorf("expected variable declared on a prior line to persist, got %q", out.String())
	}
}

func TestRunLine_BareExpressionEchoesValue(t *testing.T) {
	var out bytes.Buffer
	env := object.NewGlobalEnvironment()
	runLine(&out, `"hello";`, env, false)

	if !strings.Contains(out.String(), "hello") {
		t.Errorf("expected a bare string expression to echo its value, got %q", out.String())
	}
}

func TestRunLine_PrintStatementDoesNotDoubleEcho(t *testing.T) {
	var out bytes.Buffer
	env := object.NewGlobalEnvironment()
	runLine(&out, "print 1 + 1;", env, false)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || lines[0] != "2" {
		t.Errorf("expected exactly one line of output (%q), got %q", "2", out.String())
	}
}

func TestHandleCommand_Clear(t *testing.T) {
	var decl bytes.Buffer
	env := object.NewGlobalEnvironment()
	runLine(&decl, "var x = 10;", env, false)

	var out bytes.Buffer
	handleCommand(&out, ".clear", &env, false)

	if !strings.Contains(out.String(), "environment reset") {
		t.Errorf("expected a reset confirmation, got %q", out.String())
	}

	var after bytes.Buffer
	runLine(&after, "x;", env, false)
	if !strings.Contains(after.String(), "Undefined variable") {
		t.Errorf("expected x to be gone after .clear, got %q", after.String())
	}
}

func TestHandleCommand_DebugToggles(t *testing.T) {
	var out bytes.Buffer
	env := object.NewGlobalEnvironment()
	on := handleCommand(&out, ".debug", &env, false)
	if !on {
		t.Fatal("expected .debug to flip debug mode on")
	}
	off := handleCommand(&out, ".debug", &env, on)
	if off {
		t.Fatal("expected a second .debug to flip it back off")
	}
}
