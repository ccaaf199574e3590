/*
File   : dang/parser/parser.go
Package: parser

Package parser implements a Pratt parser (a top-down operator-precedence
parser) that turns a token stream from package lexer into an *ast.Program.

The parser maintains two tokens of lookahead (curToken, peekToken) and a
location stack that records which syntactic container is currently being
parsed — BODY (top level or a function body), BLOCK (inside "{ ... }"),
or CALL (inside "${ ... }"). The location determines which tokens end a
statement: SEMICOLON and NEWLINE terminate everywhere except inside a
call, where expressions are allowed to span lines; RBRACE terminates
everywhere except at BODY, where it is a stray token.

Grounded on the teacher's parser/parser.go (UnaryFuncs/BinaryFuncs
dispatch tables, Errors accumulation, advance/expectAdvance naming) and
parser/parser_precedence.go (the precedence constant ladder and
registerUnaryFuncs/registerBinaryFuncs helpers), adapted to this
language's closed grammar. The location stack itself has no teacher
analog — go-mix's grammar has no context-sensitive terminators — and is
designed per spec's own guidance: a small explicit stack popped via
defer, rather than a mutable field the caller must save and restore by
hand.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/dang-lang/dang/ast"
	"github.com/dang-lang/dang/lexer"
	"github.com/dang-lang/dang/token"
)

// Precedence levels, ascending. CALL is the tightest level, but "${...}"
// is parsed as a single prefix form and no token maps to CALL in the
// precedences table below, so the parser never consults it.
const (
	LOWEST int = iota
	EQUALS     // == !=
	CMP        // < >
	SUM        // + -
	PROD       // * /
	PREFIX     // unary ! -
	CALL       // ${
)

var precedences = map[token.Kind]int{
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       CMP,
	token.GT:       CMP,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PROD,
	token.ASTERISK: PROD,
}

// location tags which syntactic container the parser is currently inside,
// for the purpose of deciding which tokens terminate a statement.
type location int

const (
	locBody location = iota
	locBlock
	locCall
)

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Diagnostic records a single parse-time error: a human-readable message,
// the offending token's kind, and its source position.
type Diagnostic struct {
	Message string
	Kind    token.Kind
	Line    int
	Col     int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s (got %s)", d.Line, d.Col, d.Message, d.Kind)
}

// Parser converts a lexer's token stream into an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	locStack []location

	diagnostics []Diagnostic

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New creates a Parser reading from l and primes its two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.DOLLAR_LBRACE, p.parseCallExpression)

	p.infixParseFns = make(map[token.Kind]infixParseFn)
	for _, k := range []token.Kind{token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.EQ, token.NEQ, token.LT, token.GT} {
		p.registerInfix(k, p.parseInfixExpression)
	}

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// Diagnostics returns every diagnostic accumulated during parsing.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

func (p *Parser) addDiagnostic(msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Message: msg,
		Kind:    p.peekToken.Kind,
		Line:    p.peekToken.Line,
		Col:     p.peekToken.Col,
	})
}

func (p *Parser) addDiagnosticAtCurrent(msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Message: msg,
		Kind:    p.curToken.Kind,
		Line:    p.curToken.Line,
		Col:     p.curToken.Col,
	})
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(kind token.Kind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekTokenIs(kind token.Kind) bool { return p.peekToken.Kind == kind }

// expectPeek advances past peekToken if it matches kind, recording a
// diagnostic and leaving the parser positioned at peekToken otherwise.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if !p.peekTokenIs(kind) {
		p.addDiagnostic(fmt.Sprintf("expected next token to be %s", kind))
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

// currentLocation reports which syntactic container the parser believes
// it is inside right now. An empty stack means top-level BODY.
func (p *Parser) currentLocation() location {
	if len(p.locStack) == 0 {
		return locBody
	}
	return p.locStack[len(p.locStack)-1]
}

// pushLocation enters loc and returns a closure that restores the prior
// location. Callers use it as "defer p.pushLocation(locBlock)()" so the
// location is restored on every return path, including early ones —
// replacing a manual save/restore of a mutable field with defer-scoped
// cleanup.
func (p *Parser) pushLocation(loc location) func() {
	p.locStack = append(p.locStack, loc)
	return func() {
		p.locStack = p.locStack[:len(p.locStack)-1]
	}
}

// isEndOfStatementToken reports whether kind terminates a statement in
// the parser's current location.
func (p *Parser) isEndOfStatementToken(kind token.Kind) bool {
	if kind == token.EOF {
		return true
	}
	switch kind {
	case token.SEMICOLON, token.NEWLINE:
		return p.currentLocation() != locCall
	case token.RBRACE:
		return p.currentLocation() != locBody
	default:
		return false
	}
}

// skipToNextStatementSeparator advances past a failed statement until a
// token that can plausibly resume parsing: this is the parser's
// panic-mode recovery.
func (p *Parser) skipToNextStatementSeparator() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ParseProgram parses the entire token stream into a Program. Diagnostics
// accumulated along the way are available via Diagnostics(); a non-empty
// diagnostic list means the returned Program is not a faithful full
// parse, per the panic-mode recovery policy below.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		for p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		if p.curTokenIs(token.EOF) {
			break
		}

		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
			p.nextToken()
		} else {
			p.skipToNextStatementSeparator()
		}
	}

	return prog
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	stmt := &ast.LetStatement{Token: tok, Name: name}

	if p.isEndOfStatementToken(p.peekToken.Kind) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.requireEndOfStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken

	stmt := &ast.ReturnStatement{Token: tok}

	if p.isEndOfStatementToken(p.peekToken.Kind) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	p.requireEndOfStatement()
	return stmt
}

// requireEndOfStatement checks that peekToken terminates the statement in
// the current location and, if so, advances onto it so curToken ends up
// sitting on the terminator — the convention every statement-level parse
// function follows.
func (p *Parser) requireEndOfStatement() {
	if !p.isEndOfStatementToken(p.peekToken.Kind) {
		p.addDiagnostic("expected end of statement")
		return
	}
	p.nextToken()
}

// parseExpressionStatement parses zero or more juxtaposed expressions
// (separated by optional commas or plain whitespace) into a CallExpression
// container, then applies the unwrap rule: a lone non-CallExpression
// child not immediately followed by a stray semicolon is promoted to be
// the statement's expression directly, rather than kept wrapped.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken

	var exprs []ast.Expression
	for {
		expr := p.parseExpression(LOWEST)
		if expr != nil {
			exprs = append(exprs, expr)
		}

		if p.isEndOfStatementToken(p.peekToken.Kind) {
			p.nextToken()
			break
		}

		p.nextToken()
		for p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	stmt := &ast.ExpressionStatement{Token: tok}

	switch len(exprs) {
	case 0:
		return stmt
	case 1:
		_, isCall := exprs[0].(*ast.CallExpression)
		if !isCall && !p.curTokenIs(token.SEMICOLON) {
			stmt.Expression = exprs[0]
		} else {
			stmt.Expression = &ast.CallExpression{Token: tok, Function: exprs[0]}
		}
	default:
		stmt.Expression = &ast.CallExpression{Token: tok, Function: exprs[0], Arguments: exprs[1:]}
	}

	return stmt
}

// parseExpression is the Pratt precedence climb: it builds a left-hand
// side from the prefix handler for curToken, then repeatedly extends it
// with infix handlers as long as peekToken is not an end-of-statement
// token, not EOF, not a comma, and binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.addDiagnosticAtCurrent(fmt.Sprintf("no prefix parse function for %s", p.curToken.Kind))
		return nil
	}
	left := prefix()

	for !p.isEndOfStatementToken(p.peekToken.Kind) &&
		!p.peekTokenIs(token.COMMA) &&
		precedence < p.peekPrecedence() {

		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			break
		}

		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addDiagnosticAtCurrent(fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// parseBlockStatement consumes curToken == LBRACE, parses statements
// under location BLOCK until a closing RBRACE or EOF, and leaves curToken
// sitting on that RBRACE — consistent with every other expression parser
// in this file leaving curToken on the expression's final token.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	defer p.pushLocation(locBlock)()

	p.nextToken()

	for {
		for p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		if p.curTokenIs(token.RBRACE) || p.curTokenIs(token.EOF) {
			break
		}

		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
			// A statement's own terminator can be the block's closing
			// RBRACE (location BLOCK makes RBRACE an end-of-statement
			// token). Don't advance past it here — the loop condition
			// above is what detects it and stops.
			if !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
				p.nextToken()
			}
		} else {
			p.skipToNextStatementSeparator()
		}
	}

	if !p.curTokenIs(token.RBRACE) {
		p.addDiagnosticAtCurrent("expected '}' to close block")
	}

	return block
}

// parseCallExpression consumes curToken == DOLLAR_LBRACE, parses a
// sequence of expressions under location CALL until a matching RBRACE,
// and treats the first expression as the callee and the rest as
// arguments. It leaves curToken sitting on the closing RBRACE.
func (p *Parser) parseCallExpression() ast.Expression {
	tok := p.curToken
	call := &ast.CallExpression{Token: tok}
	defer p.pushLocation(locCall)()

	p.nextToken()

	// Separators between juxtaposed expressions are all optional here:
	// a comma, a newline, or both — a call spans lines freely.
	skipSeparators := func() {
		for p.curTokenIs(token.COMMA) || p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}

	var exprs []ast.Expression
	skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		expr := p.parseExpression(LOWEST)
		if expr != nil {
			exprs = append(exprs, expr)
		}
		p.nextToken()
		skipSeparators()
	}

	if len(exprs) == 0 {
		p.addDiagnosticAtCurrent("call expression requires a callee")
		return call
	}
	call.Function = exprs[0]
	call.Arguments = exprs[1:]

	if !p.curTokenIs(token.RBRACE) {
		p.addDiagnosticAtCurrent("expected '}' to close call expression")
	}

	return call
}
