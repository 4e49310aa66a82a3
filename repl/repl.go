// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The interactive Read-Eval-Print loop. Wires stdin through the
//          same Lexer -> Parser -> Evaluator pipeline the `run` subcommand
//          uses, keeping one persistent environment across lines so
//          variables and functions declared earlier stay visible.
// ==============================================================================================

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/evaluator"
	"github.com/glint-lang/glint/lexer"
	"github.com/glint-lang/glint/object"
	"github.com/glint-lang/glint/parser"
	"github.com/glint-lang/glint/token"
)

const prompt = "glint> "

const logo = `
  ___ _ _       _
 / __| (_)_ _  | |_
| (_ | | | ' \ |  _|
 \___|_|_|_||_| \__|

glint -- a small, expression-hungry scripting language
`

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	valueColor  = color.New(color.FgYellow)
	stringColor = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
)

// Start launches the REPL. Input comes from a readline instance that owns
// the terminal, so Start itself cannot run headless; out receives banners,
// results and diagnostics, and the per-line helpers it calls (runLine,
// handleCommand) are testable against a plain io.Writer.
func Start(out io.Writer) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return fmt.Errorf("repl: initializing terminal: %w", err)
	}
	defer rl.Close()

	fmt.Fprint(out, logo)
	printHelp(out)

	env := object.NewGlobalEnvironment()
	debug := false

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			debug = handleCommand(out, line, &env, debug)
			if line == ".exit" {
				break
			}
			continue
		}

		runLine(out, line, env, debug)
	}
	return nil
}

func handleCommand(out io.Writer, line string, env **object.Environment, debug bool) bool {
	switch line {
	case ".exit":
		fmt.Fprintln(out, "bye.")
		return debug
	case ".clear":
		*env = object.NewGlobalEnvironment()
		fmt.Fprintln(out, "environment reset.")
	case ".debug":
		debug = !debug
		fmt.Fprintf(out, "debug mode: %v\n", debug)
	case ".help":
		printHelp(out)
	default:
		errorColor.Fprintf(out, "unknown command: %s\n", line)
	}
	return debug
}

func printHelp(out io.Writer) {
	dimColor.Fprintln(out, "commands: .exit  .clear  .debug  .help")
}

func runLine(out io.Writer, line string, env *object.Environment, debug bool) {
	l := lexer.New(line)
	if debug {
		printTokens(out, line)
	}

	p := parser.New(l)
	program := p.ParseProgram()

	if l.HadError() {
		for _, msg := range l.Errors() {
			errorColor.Fprintln(out, msg)
		}
		return
	}
	if p.HadError() {
		for _, msg := range p.Errors() {
			errorColor.Fprintln(out, msg)
		}
		return
	}

	if debug {
		dimColor.Fprintln(out, program.String())
	}

	// A single bare expression statement echoes its value, the way most
	// REPLs do; anything else (declarations, print, control flow) just
	// runs for effect.
	if len(program.Statements) == 1 {
		if es, ok := program.Statements[0].(*ast.ExpressionStmt); ok {
			val, err := evaluator.EvalExpression(es.Expression, env)
			if err != nil {
				errorColor.Fprintln(out, err.Error())
				return
			}
			printValue(out, val)
			return
		}
	}

	if err := evaluator.Eval(program, env); err != nil {
		errorColor.Fprintln(out, err.Error())
	}
}

func printTokens(out io.Writer, line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		dimColor.Fprintf(out, "%-14s %s\n", tok.Type, tok.Lexeme)
	}
}

// printValue renders a bare expression's result the way the `evaluate`
// CLI subcommand does, used by a REPL line that is a single expression
// statement followed directly by its value (kept here so both surfaces
// render numbers/strings/booleans identically).
func printValue(out io.Writer, v object.Value) {
	switch v.(type) {
	case *object.Integer, *object.Float:
		valueColor.Fprintln(out, v.Inspect())
	case *object.String:
		stringColor.Fprintln(out, v.Inspect())
	default:
		fmt.Fprintln(out, v.Inspect())
	}
}
