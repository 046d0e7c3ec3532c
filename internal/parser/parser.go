package parser

import (
	"fmt"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/lexer"
	"github.com/funvibe/colorexpr/internal/token"
)

const (
	_ int = iota
	LOWEST
	LIST     // red #0f0 blue
	SAMPLE   // ->
	MIX      // |
	CONTRAST // %%
	ADJUST   // << >> <<< >>>
	BLEND    // !* ** <* *> ^* ^^ !^
	SUM      // + -
	PRODUCT  // * /
	POWER    // ^
	PREFIX   // -x ~x +x
	POSTFIX  // x @param
)

// MaxRecursionDepth bounds nesting of parentheses and prefix operators.
const MaxRecursionDepth = 256

var precedences = map[token.TokenType]int{
	token.ARROW:      SAMPLE,
	token.PIPE:       MIX,
	token.CONTRAST:   CONTRAST,
	token.BURN:       ADJUST,
	token.DODGE:      ADJUST,
	token.DARKEN:     ADJUST,
	token.LIGHTEN:    ADJUST,
	token.SCREEN:     BLEND,
	token.OVERLAY:    BLEND,
	token.HARDLIGHT:  BLEND,
	token.SOFTLIGHT:  BLEND,
	token.DIFFERENCE: BLEND,
	token.EXCLUSION:  BLEND,
	token.NEGATE:     BLEND,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.ASTERISK:   PRODUCT,
	token.SLASH:      PRODUCT,
	token.CARET:      POWER,
	token.PARAM:      POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []error
	depth  int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.HEX, p.parseHexLiteral)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.VAR, p.parseVariable)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.TILDE, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for tt := range precedences {
		if tt.IsInfix() {
			p.registerInfix(tt, p.parseInfixExpression)
		}
	}
	p.registerInfix(token.PIPE, p.parseMixExpression)
	p.registerInfix(token.PARAM, p.parseParamExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is a shortcut for parsing a whole source text. It returns the
// first syntax error, if any.
func Parse(source string) (*ast.Program, error) {
	p := New(lexer.New(source))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return program, nil
}

func (p *Parser) Errors() []error {
	return p.errors
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

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

// peekStartsOperand reports whether the next token can begin a list
// element.
func (p *Parser) peekStartsOperand() bool {
	switch p.peekToken.Type {
	case token.NUMBER, token.HEX, token.IDENT, token.VAR, token.LPAREN, token.TILDE:
		return true
	}
	return false
}

func (p *Parser) errorf(loc *token.Loc, format string, args ...any) {
	p.errors = append(p.errors, diagnostics.Newf(diagnostics.ErrSyntax, loc, format, args...))
}

func (p *Parser) peekError(t token.TokenType) {
	p.errorf(p.peekToken.Loc(), "expected '%s', got %s", t, describe(p.peekToken))
}

func (p *Parser) unexpected(tok token.Token) {
	p.errorf(tok.Loc(), "unexpected %s", describe(tok))
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "end of line"
	case token.ILLEGAL:
		return fmt.Sprintf("character '%s'", tok.Lexeme)
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}

// spanFrom covers everything from start up to the current token.
func (p *Parser) spanFrom(start token.Token) *token.Loc {
	return &token.Loc{Start: start.Start(), End: p.curToken.Stop()}
}

func (p *Parser) atStatementEnd(t token.TokenType) bool {
	return t == token.NEWLINE || t == token.SEMICOLON || t == token.EOF
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt == nil {
			p.skipToStatementBoundary()
			continue
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	if len(program.Statements) == 0 {
		if len(p.errors) == 0 {
			p.unexpected(p.curToken)
		}
		return program
	}
	program.Loc = token.Span(program.Statements[0].Loc, program.Statements[len(program.Statements)-1].Loc)
	return program
}

func (p *Parser) parseStatement() *ast.Statement {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.atStatementEnd(p.peekToken.Type) {
		p.unexpected(p.peekToken)
		p.nextToken()
		return nil
	}
	return &ast.Statement{Loc: expr.Location(), Expr: expr}
}

func (p *Parser) skipToStatementBoundary() {
	for !p.atStatementEnd(p.curToken.Type) {
		p.nextToken()
	}
}
