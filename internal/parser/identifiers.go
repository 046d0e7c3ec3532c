package parser

import (
	"maps"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/hashicorp/go-set/v2"

	"github.com/funvibe/colorexpr/internal/ast"
	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/token"
)

// SuggestionThreshold is the minimal Levenshtein similarity for a
// "did you mean" hint.
const SuggestionThreshold = 0.7

// spaceArity is the number of operands each color space keyword takes.
var spaceArity = map[string]int{
	"rgb": 3, "rgba": 4, "argb": 4,
	"cmy": 3, "cmya": 4,
	"cmyk": 4, "cmyka": 5,
	"hsl": 3, "hsla": 4,
	"hsv": 3, "hsva": 4,
	"hsb": 3, "hsba": 4,
	"hsi": 3, "hsia": 4,
	"lab": 3, "laba": 4,
	"lch": 3, "lcha": 4,
	"hcl": 3, "hcla": 4,
}

var (
	randomKeywords      = set.From([]string{"rand", "random"})
	numberKeywords      = set.From([]string{"num", "number"})
	temperatureKeywords = set.From([]string{"t", "temp", "temperature"})
	wavelengthKeywords  = set.From([]string{"wl", "wavelength"})
	spaceKeywords       = set.From(slices.Collect(maps.Keys(spaceArity)))
	scaleKeywords       = set.From([]string{"scale", "bezier", "cubehelix"})
)

// vocabulary lists every word an identifier may be, for suggestions.
var vocabulary = func() []string {
	words := set.New[string](256)
	for _, s := range []*set.Set[string]{randomKeywords, numberKeywords, temperatureKeywords, wavelengthKeywords, spaceKeywords, scaleKeywords} {
		words.InsertSet(s)
	}
	words.InsertSlice(colormath.Names())
	for _, name := range colormath.BrewerNames() {
		words.Insert(strings.ToLower(name))
	}
	return slices.Sorted(slices.Values(words.Slice()))
}()

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	word := strings.ToLower(tok.Lexeme)

	switch {
	case randomKeywords.Contains(word):
		return &ast.RandomColor{Loc: tok.Loc()}
	case numberKeywords.Contains(word):
		return p.parseColorBy(func(loc *token.Loc, v ast.Expression) ast.Expression {
			return &ast.ColorByNumber{Loc: loc, Value: v}
		})
	case temperatureKeywords.Contains(word):
		return p.parseColorBy(func(loc *token.Loc, v ast.Expression) ast.Expression {
			return &ast.ColorByTemperature{Loc: loc, Value: v}
		})
	case wavelengthKeywords.Contains(word):
		return p.parseColorBy(func(loc *token.Loc, v ast.Expression) ast.Expression {
			return &ast.ColorByWavelength{Loc: loc, Value: v}
		})
	case spaceKeywords.Contains(word):
		return p.parseColorBySpace(word)
	case word == "scale":
		return p.parseScaleExpression()
	case word == "bezier":
		return p.parseColorBy(func(loc *token.Loc, v ast.Expression) ast.Expression {
			return &ast.BezierExpr{Loc: loc, Colors: v}
		})
	case word == "cubehelix":
		return &ast.CubehelixExpr{Loc: tok.Loc()}
	}

	if colormath.IsName(word) {
		return &ast.ColorNameLiteral{Loc: tok.Loc(), Name: tok.Lexeme}
	}
	if name, ok := colormath.BrewerName(word); ok {
		return &ast.BrewerConst{Loc: tok.Loc(), Name: name}
	}
	if isHexWord(word) {
		return &ast.ColorHexLiteral{Loc: tok.Loc(), Hex: tok.Lexeme}
	}

	if s, ok := suggest(word); ok {
		p.errorf(tok.Loc(), "unknown identifier '%s', did you mean '%s'?", tok.Lexeme, s)
	} else {
		p.errorf(tok.Loc(), "unknown identifier '%s'", tok.Lexeme)
	}
	return nil
}

// parseColorBy parses a keyword followed by a single operand.
func (p *Parser) parseColorBy(build func(*token.Loc, ast.Expression) ast.Expression) ast.Expression {
	start := p.curToken
	p.nextToken()
	v := p.parseExpression(POSTFIX)
	if v == nil {
		return nil
	}
	return build(token.Span(start.Loc(), v.Location()), v)
}

func (p *Parser) parseColorBySpace(word string) ast.Expression {
	start := p.curToken
	arity := spaceArity[word]
	expr := &ast.ColorBySpaceParams{Space: normalizeSpace(word), Params: make([]ast.Expression, 0, arity)}

	for range arity {
		p.nextToken()
		param := p.parseExpression(POSTFIX)
		if param == nil {
			return nil
		}
		expr.Params = append(expr.Params, param)
	}
	expr.Loc = p.spanFrom(start)
	return expr
}

// normalizeSpace drops the alpha suffix (except for argb, where alpha
// comes first) and maps hsb onto hsv.
func normalizeSpace(word string) string {
	if word != "argb" && len(word) > 3 && strings.HasSuffix(word, "a") {
		word = word[:len(word)-1]
	}
	if word == "hsb" {
		return "hsv"
	}
	return word
}

// modeName reports whether tok names an interpolation color space.
func modeName(tok token.Token) (string, bool) {
	if tok.Type != token.IDENT {
		return "", false
	}
	word := normalizeSpace(strings.ToLower(tok.Lexeme))
	if _, ok := colormath.ParseSpace(word); !ok {
		return "", false
	}
	return word, true
}

// parseScaleExpression handles
//
//	scale (red 0f0 blue)
//	scale {lab} (red:.2 0f0:50%)
//	scale $colors
func (p *Parser) parseScaleExpression() ast.Expression {
	start := p.curToken
	expr := &ast.ScaleExpr{}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		p.nextToken()
		mode, ok := modeName(p.curToken)
		if !ok {
			p.errorf(p.curToken.Loc(), "unknown interpolation mode %s", describe(p.curToken))
			return nil
		}
		expr.Mode = mode
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
	}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.parseScaleStops(expr) {
			return nil
		}
	} else {
		p.nextToken()
		expr.Source = p.parseExpression(POSTFIX)
		if expr.Source == nil {
			return nil
		}
	}
	expr.Loc = p.spanFrom(start)
	return expr
}

func (p *Parser) parseScaleStops(expr *ast.ScaleExpr) bool {
	start := p.curToken
	var colors, positions []ast.Expression
	withPosition := 0

	for !p.peekTokenIs(token.RPAREN) {
		if p.peekTokenIs(token.EOF) {
			p.peekError(token.RPAREN)
			return false
		}
		p.nextToken()
		c := p.parseExpression(LIST)
		if c == nil {
			return false
		}
		var pos ast.Expression
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			if pos = p.parseExpression(POSTFIX); pos == nil {
				return false
			}
			withPosition++
		}
		colors = append(colors, c)
		positions = append(positions, pos)
	}
	p.nextToken()

	switch {
	case withPosition == 0 && len(colors) == 1:
		expr.Source = colors[0]
	case withPosition == 0:
		expr.Colors = colors
	case withPosition == len(colors):
		expr.Colors = colors
		expr.Domain = positions
	default:
		p.errorf(p.spanFrom(start), "either every color or none should have a position")
		return false
	}
	return true
}

func isHexWord(word string) bool {
	switch len(word) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func suggest(word string) (string, bool) {
	metric := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for _, candidate := range vocabulary {
		if score := strutil.Similarity(word, candidate, metric); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore >= SuggestionThreshold
}
