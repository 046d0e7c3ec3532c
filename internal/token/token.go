package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"

	NUMBER TokenType = "NUMBER" // 105, .5, 0x69, 0b0110, 0o151
	HEX    TokenType = "HEX"    // #fc0, ffcc00
	IDENT  TokenType = "IDENT"  // red, rgb, scale, YlOrBr
	VAR    TokenType = "VAR"    // $col, $
	PARAM  TokenType = "PARAM"  // @hsl.h

	ASSIGN          TokenType = "="
	PLUS_ASSIGN     TokenType = "+="
	MINUS_ASSIGN    TokenType = "-="
	ASTERISK_ASSIGN TokenType = "*="
	SLASH_ASSIGN    TokenType = "/="

	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	CARET    TokenType = "^"
	TILDE    TokenType = "~"
	PERCENT  TokenType = "%"
	CONTRAST TokenType = "%%"
	PIPE     TokenType = "|"
	ARROW    TokenType = "->"

	BURN    TokenType = "<<"
	DODGE   TokenType = ">>"
	DARKEN  TokenType = "<<<"
	LIGHTEN TokenType = ">>>"

	SCREEN     TokenType = "!*"
	OVERLAY    TokenType = "**"
	HARDLIGHT  TokenType = "<*"
	SOFTLIGHT  TokenType = "*>"
	DIFFERENCE TokenType = "^*"
	EXCLUSION  TokenType = "^^"
	NEGATE     TokenType = "!^"

	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
)

// Token is a lexeme with its position. Line is 1-based, Column and
// Offset are 0-based; End is the offset just past the lexeme.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal string
	Line    int
	Column  int
	Offset  int
	End     int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// Start returns the position of the first character of the token.
func (t Token) Start() Pos {
	return Pos{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Stop returns the position just past the last character of the token.
// Tokens never span lines.
func (t Token) Stop() Pos {
	return Pos{Line: t.Line, Column: t.Column + (t.End - t.Offset), Offset: t.End}
}

// Loc returns the span covered by the token.
func (t Token) Loc() *Loc {
	return &Loc{Start: t.Start(), End: t.Stop()}
}

// IsInfix reports whether the token type is a binary operator symbol.
func (t TokenType) IsInfix() bool {
	switch t {
	case PLUS, MINUS, ASTERISK, SLASH, CARET, CONTRAST, PIPE, ARROW,
		BURN, DODGE, DARKEN, LIGHTEN,
		SCREEN, OVERLAY, HARDLIGHT, SOFTLIGHT, DIFFERENCE, EXCLUSION, NEGATE:
		return true
	}
	return false
}
