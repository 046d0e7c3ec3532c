package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/colorexpr/internal/lexer"
	"github.com/funvibe/colorexpr/internal/token"
)

type expectedToken struct {
	typ    token.TokenType
	lexeme string
}

func collect(input string) []expectedToken {
	l := lexer.New(input)
	var out []expectedToken
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return out
		}
		out = append(out, expectedToken{tok.Type, tok.Lexeme})
	}
}

func TestNextToken(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []expectedToken
	}{
		{"numbers", "105 .5 0x69 0b0110 0o151 1.25", []expectedToken{
			{token.NUMBER, "105"}, {token.NUMBER, ".5"}, {token.NUMBER, "0x69"},
			{token.NUMBER, "0b0110"}, {token.NUMBER, "0o151"}, {token.NUMBER, "1.25"},
		}},
		{"percent", "55%", []expectedToken{{token.NUMBER, "55"}, {token.PERCENT, "%"}}},
		{"digit_words", "0f0 1a2b3c", []expectedToken{{token.IDENT, "0f0"}, {token.IDENT, "1a2b3c"}}},
		{"hex", "#fc0 #FFCC00", []expectedToken{{token.HEX, "#fc0"}, {token.HEX, "#FFCC00"}}},
		{"words", "red YlOrBr rgba", []expectedToken{{token.IDENT, "red"}, {token.IDENT, "YlOrBr"}, {token.IDENT, "rgba"}}},
		{"variables", "$col = $", []expectedToken{{token.VAR, "$col"}, {token.ASSIGN, "="}, {token.VAR, "$"}}},
		{"params", "@hsl.h += @a", []expectedToken{{token.PARAM, "@hsl.h"}, {token.PLUS_ASSIGN, "+="}, {token.PARAM, "@a"}}},
		{"assignments", "= += -= *= /=", []expectedToken{
			{token.ASSIGN, "="}, {token.PLUS_ASSIGN, "+="}, {token.MINUS_ASSIGN, "-="},
			{token.ASTERISK_ASSIGN, "*="}, {token.SLASH_ASSIGN, "/="},
		}},
		{"arithmetic", "+ - * / ^ ~", []expectedToken{
			{token.PLUS, "+"}, {token.MINUS, "-"}, {token.ASTERISK, "*"},
			{token.SLASH, "/"}, {token.CARET, "^"}, {token.TILDE, "~"},
		}},
		{"color_operators", "%% | -> << >> <<< >>>", []expectedToken{
			{token.CONTRAST, "%%"}, {token.PIPE, "|"}, {token.ARROW, "->"},
			{token.BURN, "<<"}, {token.DODGE, ">>"}, {token.DARKEN, "<<<"}, {token.LIGHTEN, ">>>"},
		}},
		{"blends", "!* ** <* *> ^* ^^ !^", []expectedToken{
			{token.SCREEN, "!*"}, {token.OVERLAY, "**"}, {token.HARDLIGHT, "<*"}, {token.SOFTLIGHT, "*>"},
			{token.DIFFERENCE, "^*"}, {token.EXCLUSION, "^^"}, {token.NEGATE, "!^"},
		}},
		{"punctuation", "( ) { } : ;", []expectedToken{
			{token.LPAREN, "("}, {token.RPAREN, ")"}, {token.LBRACE, "{"},
			{token.RBRACE, "}"}, {token.COLON, ":"}, {token.SEMICOLON, ";"},
		}},
		{"scale_stop", "red:.2", []expectedToken{{token.IDENT, "red"}, {token.COLON, ":"}, {token.NUMBER, ".2"}}},
		{"comments_and_newlines", "red // a comment\nblue", []expectedToken{
			{token.IDENT, "red"}, {token.NEWLINE, "\n"}, {token.IDENT, "blue"},
		}},
		{"illegal", "! < > # ?", []expectedToken{
			{token.ILLEGAL, "!"}, {token.ILLEGAL, "<"}, {token.ILLEGAL, ">"},
			{token.ILLEGAL, "#"}, {token.ILLEGAL, "?"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(tc.input))
		})
	}
}

func TestPositions(t *testing.T) {
	l := lexer.New("red\n  #fc0")

	red := l.NextToken()
	assert.Equal(t, "1:0,0..1:3,3", red.Loc().String())

	nl := l.NextToken()
	assert.Equal(t, token.NEWLINE, nl.Type)

	hex := l.NextToken()
	assert.Equal(t, 2, hex.Line)
	assert.Equal(t, 2, hex.Column)
	assert.Equal(t, "2:2,6..2:6,10", hex.Loc().String())

	assert.Equal(t, token.EOF, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
}

func TestParamLiteral(t *testing.T) {
	tok := lexer.New("@cmyk.y").NextToken()
	assert.Equal(t, token.PARAM, tok.Type)
	assert.Equal(t, "cmyk.y", tok.Literal)
}
