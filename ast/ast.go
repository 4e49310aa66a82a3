// ----------------------------------------------------------------------------
// FILE: ast/ast.go
// ----------------------------------------------------------------------------
// PACKAGE: ast
// PURPOSE: The node types the Parser builds and the Evaluator walks. Every
//          Expression also implements String(), which renders the
//          fully-parenthesized Polish-notation form used by the `parse`
//          CLI subcommand (spec.md §4.2).
// ----------------------------------------------------------------------------
package ast

import (
	"bytes"
	"strings"

	"github.com/glint-lang/glint/token"
)

// Node is the common root of every AST node.
type Node interface {
	TokenLiteral() string
}

// Expression produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
	String() string
}

// Statement produces no value; it is run for effect.
type Statement interface {
	Node
	statementNode()
}

// ==================================================================
// PROGRAM
// ==================================================================

// Program is the root node of a parsed file: a sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ==================================================================
// EXPRESSIONS
// ==================================================================

// Literal wraps a constant value already converted from its token: a
// *object-free* literal holder so ast never imports object (which imports
// ast for Function). Kind distinguishes which field is meaningful.
type LiteralKind int

const (
	NumberLiteralKind LiteralKind = iota
	StringLiteralKind
	BoolLiteralKind
	NilLiteralKind
)

type Literal struct {
	Token  token.Token
	Kind   LiteralKind
	Number float64
	Str    string
	Bool   bool
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) String() string {
	switch l.Kind {
	case NumberLiteralKind:
		return l.Token.Literal
	case StringLiteralKind:
		return l.Str
	case BoolLiteralKind:
		if l.Bool {
			return "true"
		}
		return "false"
	default:
		return "nil"
	}
}

// Identifier is a reference to a variable.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) String() string       { return "(Identifier " + i.Value + ")" }

// Grouping is a parenthesized expression: (expr).
type Grouping struct {
	Token      token.Token
	Expression Expression
}

func (g *Grouping) expressionNode()      {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) String() string       { return parenthesize("group", g.Expression) }

// Unary is a prefix operator: -expr or !expr.
type Unary struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Token.Lexeme }
func (u *Unary) String() string       { return parenthesize(u.Operator, u.Right) }

// Binary is an infix arithmetic or comparison operator.
type Binary struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Token.Lexeme }
func (b *Binary) String() string       { return parenthesize(b.Operator, b.Left, b.Right) }

// Logical is `and`/`or`. Kept distinct from Binary because both operators
// short-circuit instead of always evaluating both operands.
type Logical struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (lg *Logical) expressionNode()      {}
func (lg *Logical) TokenLiteral() string { return lg.Token.Lexeme }
func (lg *Logical) String() string       { return parenthesize(lg.Operator, lg.Left, lg.Right) }

// Assign is `name = value`. An expression, not a statement: it yields the
// assigned value, so `print x = 3;` is legal.
type Assign struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (a *Assign) expressionNode()      {}
func (a *Assign) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assign) String() string       { return parenthesize("=", a.Name, a.Value) }

// Call is a function invocation: callee(args...).
type Call struct {
	Token  token.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Lexeme }
func (c *Call) String() string {
	args := make([]Expression, 0, len(c.Args)+1)
	args = append(args, c.Callee)
	args = append(args, c.Args...)
	return parenthesize("call", args...)
}

// parenthesize builds the Polish-notation rendering shared by every
// compound expression: "(name sub1 sub2 ...)".
func parenthesize(name string, exprs ...Expression) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		out.WriteString(e.String())
	}
	out.WriteString(")")
	return out.String()
}

// ==================================================================
// STATEMENTS
// ==================================================================

// ExpressionStmt is a bare expression used for its side effect, e.g. a
// call statement: `doSomething();`.
type ExpressionStmt struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStmt) statementNode() {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Lexeme }

// PrintStmt is `print expr;`.
type PrintStmt struct {
	Token token.Token
	Value Expression
}

func (p *PrintStmt) statementNode() {}
func (p *PrintStmt) TokenLiteral() string { return p.Token.Lexeme }

// VarStmt is `var name = initializer;` (initializer may be nil, meaning
// the variable starts out bound to Nil).
type VarStmt struct {
	Token       token.Token
	Name        *Identifier
	Initializer Expression
}

func (v *VarStmt) statementNode() {}
func (v *VarStmt) TokenLiteral() string { return v.Token.Lexeme }

// BlockStmt is a `{ ... }` scope: a new child environment for the
// statements it contains.
type BlockStmt struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStmt) statementNode() {}
func (b *BlockStmt) TokenLiteral() string { return b.Token.Lexeme }

// IfStmt is `if (cond) then [else alt]`. Alternative is nil when there is
// no else clause; the parser attaches it directly rather than leaving a
// dangling-else ambiguity to runtime state.
type IfStmt struct {
	Token       token.Token
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (i *IfStmt) statementNode() {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Lexeme }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) statementNode() {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Lexeme }

// ForStmt is the C-style `for (init; cond; post) body`. Init and Post may
// be nil. A missing Condition is left nil; the evaluator treats a nil
// condition as Nil (falsy), matching the source quirk where an omitted
// condition does not default to an always-true loop.
type ForStmt struct {
	Token     token.Token
	Init      Statement
	Condition Expression
	Post      Expression
	Body      Statement
}

func (f *ForStmt) statementNode() {}
func (f *ForStmt) TokenLiteral() string { return f.Token.Lexeme }

// FunctionStmt is a named function declaration: `fun name(params) { body }`.
// The grammar has no anonymous function-literal expression form.
type FunctionStmt struct {
	Token  token.Token
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStmt
}

func (fn *FunctionStmt) statementNode() {}
func (fn *FunctionStmt) TokenLiteral() string { return fn.Token.Lexeme }

// ReturnStmt is `return [value];`. Value is nil for a bare `return;`,
// which yields Nil.
type ReturnStmt struct {
	Token token.Token
	Value Expression
}

func (r *ReturnStmt) statementNode() {}
func (r *ReturnStmt) TokenLiteral() string { return r.Token.Lexeme }

// String renders a Program as the newline-joined String() of its
// top-level statements' expressions, for statements that wrap one
// (mirrors the single-expression `parse` CLI path; block/control
// statements do not appear in that grammar).
func (p *Program) String() string {
	var parts []string
	for _, s := range p.Statements {
		if es, ok := s.(*ExpressionStmt); ok {
			parts = append(parts, es.Expression.String())
		}
	}
	return strings.Join(parts, "\n")
}
