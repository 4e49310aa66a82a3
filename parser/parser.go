// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: A recursive-descent parser with Pratt-style expression parsing.
//          Converts a token stream from the Lexer into the ast package's
//          node types. ParseProgram is the entry point for the `run`
//          pipeline and the REPL; ParseSingleExpression parses exactly one
//          expression and stops, the entry point `parse`/`evaluate` need
//          since neither operates over a full statement grammar.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/lexer"
	"github.com/glint-lang/glint/object"
	"github.com/glint-lang/glint/token"
)

// Precedence constants determine the order of operations in expressions.
// Higher values bind more tightly.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	OR          // or
	AND         // and
	EQUALITY    // == !=
	COMPARISON  // < > <= >=
	ADDITIVE    // + -
	MULTIPLICATIVE // * /
	PREFIX      // ! -x
	CALL        // callee(args)
)

var precedences = map[token.TokenType]int{
	token.EQUAL:         ASSIGNMENT,
	token.OR:             OR,
	token.AND:            AND,
	token.EQUAL_EQUAL:    EQUALITY,
	token.BANG_EQUAL:     EQUALITY,
	token.LESS:           COMPARISON,
	token.LESS_EQUAL:     COMPARISON,
	token.GREATER:        COMPARISON,
	token.GREATER_EQUAL:  COMPARISON,
	token.PLUS:           ADDITIVE,
	token.MINUS:          ADDITIVE,
	token.STAR:           MULTIPLICATIVE,
	token.SLASH:          MULTIPLICATIVE,
	token.LEFT_PAREN:     CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds all parsing state: the lexer feeding it tokens, a
// one-token lookahead, and the accumulated syntax errors.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []*object.ParseError

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New builds a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENTIFIER, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.BANG, p.parseUnaryExpression)
	p.registerPrefix(token.LEFT_PAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.EQUAL_EQUAL, p.parseBinaryExpression)
	p.registerInfix(token.BANG_EQUAL, p.parseBinaryExpression)
	p.registerInfix(token.LESS, p.parseBinaryExpression)
	p.registerInfix(token.LESS_EQUAL, p.parseBinaryExpression)
	p.registerInfix(token.GREATER, p.parseBinaryExpression)
	p.registerInfix(token.GREATER_EQUAL, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseLogicalExpression)
	p.registerInfix(token.OR, p.parseLogicalExpression)
	p.registerInfix(token.EQUAL, p.parseAssignExpression)
	p.registerInfix(token.LEFT_PAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek checks the peek token matches t, advancing and returning true
// on a match. On a mismatch it records an object.UnexpectedToken error;
// use expectPeekKind when the call site corresponds to one of spec.md's
// named parser error Kinds instead.
func (p *Parser) expectPeek(t token.TokenType, context string) bool {
	return p.expectPeekKind(t, object.UnexpectedToken, context)
}

func (p *Parser) expectPeekKind(t token.TokenType, kind object.ParseErrorKind, context string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekErrorKind(kind, context)
	return false
}

// peekErrorKind records a syntax error in the exact wording spec.md §6
// requires: `[line N] Error at '<lexeme>': <context>`, or
// `[line N] Error at end: <context>` (no quotes) once the stream is
// exhausted.
func (p *Parser) peekErrorKind(kind object.ParseErrorKind, context string) {
	p.recordError(kind, p.peekToken, context)
}

func (p *Parser) error(tok token.Token, context string) {
	p.errorKind(object.UnexpectedToken, tok, context)
}

func (p *Parser) errorKind(kind object.ParseErrorKind, tok token.Token, context string) {
	p.recordError(kind, tok, context)
}

func (p *Parser) recordError(kind object.ParseErrorKind, tok token.Token, message string) {
	p.errors = append(p.errors, object.NewParseError(kind, tok.Line, tok.Lexeme, tok.Type == token.EOF, message))
}

// Errors returns every syntax error recorded so far, each a typed
// *object.ParseError (formats as "[line N] Error at ...: ..." via Error()).
func (p *Parser) Errors() []*object.ParseError { return p.errors }

// HadError reports whether any syntax error occurred.
func (p *Parser) HadError() bool { return len(p.errors) > 0 }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ==================================================================
// ENTRY POINTS
// ==================================================================

// ParseProgram parses a full sequence of statements, the mode `run` and
// the REPL use.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

// ParseSingleExpression parses exactly one expression and ignores
// whatever statement grammar would otherwise follow it. `parse` and
// `evaluate` use this instead of ParseProgram: both operate over one
// bare expression, not a full program.
func (p *Parser) ParseSingleExpression() ast.Expression {
	return p.parseExpression(LOWEST)
}

// ==================================================================
// STATEMENTS
// ==================================================================

func (p *Parser) parseDeclaration() ast.Statement {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVarStatement()
	case token.FUN:
		return p.parseFunctionStatement()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRINT:
		return p.parsePrintStatement()
	case token.LEFT_BRACE:
		return p.parseBlockStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarStatement() ast.Statement {
	stmt := &ast.VarStmt{Token: p.curToken}
	if !p.expectPeek(token.IDENTIFIER, "Expect variable name.") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.EQUAL) {
		p.nextToken()
		p.nextToken()
		stmt.Initializer = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after variable declaration.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStmt{Token: p.curToken}
	if !p.expectPeek(token.IDENTIFIER, "Expect function name.") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expectPeek(token.LEFT_PAREN, "Expect '(' after function name.") {
		return nil
	}
	stmt.Params = p.parseParameters()
	if !p.expectPeekKind(token.LEFT_BRACE, object.FunctionScopeExpectedBrace, "Expect '{' before function body.") {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseParameters() []*ast.Identifier {
	var params []*ast.Identifier
	if p.peekTokenIs(token.RIGHT_PAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme})
	}
	p.expectPeek(token.RIGHT_PAREN, "Expect ')' after parameters.")
	return params
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStmt{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after value.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStmt {
	block := &ast.BlockStmt{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RIGHT_BRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RIGHT_BRACE) {
		p.errorKind(object.MissingBlockTerminator, p.curToken, "Expect '}' after block.")
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStmt{Token: p.curToken}
	if !p.expectPeek(token.LEFT_PAREN, "Expect '(' after 'if'.") {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RIGHT_PAREN, "Expect ')' after if condition.") {
		return nil
	}
	p.nextToken()
	stmt.Consequence = p.parseStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStmt{Token: p.curToken}
	if !p.expectPeek(token.LEFT_PAREN, "Expect '(' after 'while'.") {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RIGHT_PAREN, "Expect ')' after condition.") {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

// parseForStatement desugars nothing: it keeps init/condition/post as
// distinct optional slots, matching the C-style grammar in spec.md §4.2
// rather than desugaring into a While node, so a missing condition can
// keep its documented quirk of evaluating to Nil instead of true.
func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStmt{Token: p.curToken}
	if !p.expectPeek(token.LEFT_PAREN, "Expect '(' after 'for'.") {
		return nil
	}

	p.nextToken()
	switch {
	case p.curTokenIs(token.SEMICOLON):
		stmt.Init = nil
	case p.curTokenIs(token.VAR):
		stmt.Init = p.parseVarStatement()
	default:
		stmt.Init = p.parseExpressionStatement()
	}
	p.nextToken()

	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMICOLON, "Expect ';' after loop condition.") {
			return nil
		}
	}
	p.nextToken()

	if !p.curTokenIs(token.RIGHT_PAREN) {
		stmt.Post = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RIGHT_PAREN, "Expect ')' after for clauses.") {
			return nil
		}
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStmt{Token: p.curToken}
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after return value.") {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStmt {
	stmt := &ast.ExpressionStmt{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMICOLON, "Expect ';' after expression.") {
		return nil
	}
	return stmt
}

// ==================================================================
// EXPRESSIONS
// ==================================================================

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorKind(object.MissingExpression, p.curToken, "Expect expression.")
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.Literal{Token: p.curToken, Kind: ast.NumberLiteralKind}
	val, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.error(p.curToken, fmt.Sprintf("could not parse %q as a number", p.curToken.Lexeme))
		return nil
	}
	lit.Number = val
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.StringLiteralKind, Str: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.BoolLiteralKind, Bool: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.Literal{Token: p.curToken, Kind: ast.NilLiteralKind}
}

// parseUnaryExpression handles both '-' and '!' prefix operators. '-' is
// ambiguous with the infix subtraction operator; the Pratt dispatch
// table resolves this positionally, since a prefix-table lookup only
// ever fires when '-' begins an expression.
func (p *Parser) parseUnaryExpression() ast.Expression {
	exp := &ast.Unary{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	exp.Right = p.parseExpression(PREFIX)
	return exp
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RIGHT_PAREN, "Expect ')' after expression.") {
		return nil
	}
	return &ast.Grouping{Token: tok, Expression: exp}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	exp := &ast.Binary{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	exp := &ast.Logical{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	exp.Right = p.parseExpression(precedence)
	return exp
}

// parseAssignExpression treats '=' as right-associative: it first checks
// that the left side is an identifier (rather than validating assignment
// targets at the statement level), then parses the right-hand side at
// ASSIGNMENT-1 (i.e. LOWEST), so a further '=' nests to the right.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	eq := p.curToken
	name, ok := left.(*ast.Identifier)
	if !ok {
		p.error(eq, "Invalid assignment target.")
		return left
	}
	p.nextToken()
	value := p.parseExpression(ASSIGNMENT - 1)
	return &ast.Assign{Token: eq, Name: name, Value: value}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	exp := &ast.Call{Token: p.curToken, Callee: callee}
	exp.Args = p.parseArgumentList()
	return exp
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RIGHT_PAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.expectPeek(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return args
}
