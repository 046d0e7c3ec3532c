package parser

import (
	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errorf(p.curToken.Loc(), "expression too complex: recursion depth limit exceeded")
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.unexpected(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for {
		// Juxtaposition builds a list and binds loosest of all.
		if precedence < LIST && p.peekStartsOperand() {
			leftExp = p.parseListExpression(leftExp)
			if leftExp == nil {
				return nil
			}
			continue
		}

		if precedence >= p.peekPrecedence() {
			break
		}

		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseListExpression(first ast.Expression) ast.Expression {
	list := &ast.ArrayLiteral{Elements: []ast.Expression{first}}
	for p.peekStartsOperand() {
		p.nextToken()
		el := p.parseExpression(LIST)
		if el == nil {
			return nil
		}
		list.Elements = append(list.Elements, el)
	}
	list.Loc = token.Span(first.Location(), list.Elements[len(list.Elements)-1].Location())
	return list
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	start := p.curToken
	expression := &ast.UnaryExpr{Operator: start.Lexeme}
	p.nextToken()
	expression.Value = p.parseExpression(PREFIX)
	if expression.Value == nil {
		return nil
	}
	expression.Loc = token.Span(start.Loc(), expression.Value.Location())
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.BinaryExpr{Operator: p.curToken.Lexeme, Left: left}

	precedence := p.curPrecedence()
	if p.curTokenIs(token.CARET) {
		// right associative: 2 ^ 3 ^ 2 is 2 ^ (3 ^ 2)
		precedence--
	}
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	expression.Loc = token.Span(left.Location(), expression.Right.Location())
	return expression
}

// parseMixExpression handles `a | b` and `a | {ratio mode} b`.
func (p *Parser) parseMixExpression(left ast.Expression) ast.Expression {
	expression := &ast.BinaryExpr{Operator: p.curToken.Lexeme, Left: left}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		expression.Options = p.parseMixOptions()
		if expression.Options == nil {
			return nil
		}
	}

	p.nextToken()
	expression.Right = p.parseExpression(MIX)
	if expression.Right == nil {
		return nil
	}
	expression.Loc = token.Span(left.Location(), expression.Right.Location())
	return expression
}

func (p *Parser) parseMixOptions() *ast.MixOptions {
	opts := &ast.MixOptions{}
	p.nextToken()

	if p.curTokenIs(token.RBRACE) {
		return opts
	}
	if _, ok := modeName(p.curToken); !ok {
		opts.Ratio = p.parseExpression(LIST)
		if opts.Ratio == nil {
			return nil
		}
		p.nextToken()
	}
	if mode, ok := modeName(p.curToken); ok {
		opts.Mode = mode
		p.nextToken()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken.Loc(), "expected '}', got %s", describe(p.curToken))
		return nil
	}
	return opts
}

// parseParamExpression handles the postfix `@name`, `@name value` and
// `@name op= value` forms.
func (p *Parser) parseParamExpression(obj ast.Expression) ast.Expression {
	expression := &ast.ParamExpr{Obj: obj, Name: p.curToken.Literal}
	end := p.curToken.Loc()

	switch {
	case isAssignment(p.peekToken.Type):
		p.nextToken()
		expression.Operator = p.curToken.Lexeme
		p.nextToken()
		expression.Value = p.parseExpression(POSTFIX)
	case p.peekStartsOperand():
		p.nextToken()
		expression.Value = p.parseExpression(POSTFIX)
	}

	if expression.Value != nil {
		end = expression.Value.Location()
	} else if expression.Operator != "" {
		return nil
	}
	expression.Loc = token.Span(obj.Location(), end)
	return expression
}

func isAssignment(t token.TokenType) bool {
	switch t {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.ASTERISK_ASSIGN, token.SLASH_ASSIGN:
		return true
	}
	return false
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	start := p.curToken
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.ParenthesesExpr{Loc: p.spanFrom(start), Expr: exp}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Loc: p.curToken.Loc(), Value: p.curToken.Lexeme}
	if !p.peekTokenIs(token.PERCENT) {
		return lit
	}
	start := p.curToken
	p.nextToken()
	return &ast.PercentExpr{Loc: p.spanFrom(start), Value: lit}
}

func (p *Parser) parseHexLiteral() ast.Expression {
	if !isHexWord(p.curToken.Lexeme[1:]) {
		p.errorf(p.curToken.Loc(), "invalid hex color '%s'", p.curToken.Lexeme)
		return nil
	}
	return &ast.ColorHexLiteral{Loc: p.curToken.Loc(), Hex: p.curToken.Lexeme}
}

func (p *Parser) parseVariable() ast.Expression {
	start := p.curToken
	if !p.peekTokenIs(token.ASSIGN) {
		return &ast.GetVar{Loc: start.Loc(), Name: start.Lexeme}
	}
	p.nextToken()
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.SetVar{Loc: token.Span(start.Loc(), value.Location()), Name: start.Lexeme, Value: value}
}
