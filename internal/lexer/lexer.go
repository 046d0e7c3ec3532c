package lexer

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/colorexpr/internal/token"
)

var numberPattern = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|\d*\.?\d+)$`)

type Lexer struct {
	input        string
	position     int  // byte offset of ch
	readPosition int  // byte offset of the next rune
	ch           rune // 0 at end of input
	line         int  // current line number, 1-based
	lineStart    int  // offset of the first char of the current line
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPosition
	}

	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.readPosition = len(l.input) + 1
		l.position = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
}

// NextToken returns the next token; at the end of input it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	start := l.position
	line, col := l.line, l.position-l.lineStart
	emit := func(t token.TokenType) token.Token {
		lexeme := l.input[start:l.position]
		return token.Token{Type: t, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col, Offset: start, End: l.position}
	}
	// one consumes the current char and emits t.
	one := func(t token.TokenType) token.Token {
		l.readChar()
		return emit(t)
	}
	// two consumes the current char and, if the next one is next, that
	// one too, picking the matching token type.
	two := func(next rune, double, single token.TokenType) token.Token {
		l.readChar()
		if l.ch == next {
			l.readChar()
			return emit(double)
		}
		return emit(single)
	}

	switch l.ch {
	case 0:
		return emit(token.EOF)
	case '\n':
		return one(token.NEWLINE)
	case ';':
		return one(token.SEMICOLON)
	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '{':
		return one(token.LBRACE)
	case '}':
		return one(token.RBRACE)
	case ':':
		return one(token.COLON)
	case '~':
		return one(token.TILDE)
	case '=':
		return one(token.ASSIGN)
	case '+':
		return two('=', token.PLUS_ASSIGN, token.PLUS)
	case '/':
		return two('=', token.SLASH_ASSIGN, token.SLASH)
	case '%':
		return two('%', token.CONTRAST, token.PERCENT)
	case '|':
		return one(token.PIPE)
	case '-':
		l.readChar()
		switch l.ch {
		case '=':
			return one(token.MINUS_ASSIGN)
		case '>':
			return one(token.ARROW)
		}
		return emit(token.MINUS)
	case '*':
		l.readChar()
		switch l.ch {
		case '=':
			return one(token.ASTERISK_ASSIGN)
		case '*':
			return one(token.OVERLAY)
		case '>':
			return one(token.SOFTLIGHT)
		}
		return emit(token.ASTERISK)
	case '^':
		l.readChar()
		switch l.ch {
		case '*':
			return one(token.DIFFERENCE)
		case '^':
			return one(token.EXCLUSION)
		}
		return emit(token.CARET)
	case '!':
		l.readChar()
		switch l.ch {
		case '*':
			return one(token.SCREEN)
		case '^':
			return one(token.NEGATE)
		}
		return emit(token.ILLEGAL)
	case '<':
		l.readChar()
		switch l.ch {
		case '*':
			return one(token.HARDLIGHT)
		case '<':
			return two('<', token.DARKEN, token.BURN)
		}
		return emit(token.ILLEGAL)
	case '>':
		l.readChar()
		if l.ch == '>' {
			return two('>', token.LIGHTEN, token.DODGE)
		}
		return emit(token.ILLEGAL)
	case '#':
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		if l.position-start == 1 {
			return emit(token.ILLEGAL)
		}
		return emit(token.HEX)
	case '$':
		l.readChar()
		l.readWord(false)
		return emit(token.VAR)
	case '@':
		l.readChar()
		l.readWord(true)
		if l.position-start == 1 {
			return emit(token.ILLEGAL)
		}
		tok := emit(token.PARAM)
		tok.Literal = tok.Lexeme[1:]
		return tok
	}

	if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
		l.readWord(true)
		if numberPattern.MatchString(l.input[start:l.position]) {
			return emit(token.NUMBER)
		}
		return emit(token.IDENT)
	}
	if isLetter(l.ch) {
		l.readWord(false)
		return emit(token.IDENT)
	}
	return one(token.ILLEGAL)
}

// readWord consumes letters and digits, plus dots when withDots is set.
func (l *Lexer) readWord(withDots bool) {
	for isLetter(l.ch) || isDigit(l.ch) || (withDots && l.ch == '.') {
		l.readChar()
	}
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}
