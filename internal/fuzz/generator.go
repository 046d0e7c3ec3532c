// Package fuzz generates color expression programs for fuzz tests.
package fuzz

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	IntN(n int) int
}

// ByteSource uses a byte slice as a source of randomness. Once the data
// runs out it keeps returning zero, which always picks the simplest
// production.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) IntN(n int) int {
	if n <= 0 || s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// Generator generates random colorexpr source.
type Generator struct {
	src   RandomSource
	depth int
}

const (
	MaxDepth      = 4
	MaxStatements = 3
)

func New(seed uint64) *Generator {
	return &Generator{src: rand.New(rand.NewPCG(seed, seed))}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

func (g *Generator) pick(options ...string) string {
	return options[g.src.IntN(len(options))]
}

// GenerateProgram returns one to MaxStatements statements.
func (g *Generator) GenerateProgram() string {
	n := 1 + g.src.IntN(MaxStatements)
	stmts := make([]string, n)
	for i := range stmts {
		if g.src.IntN(4) == 0 {
			stmts[i] = g.variable() + " = " + g.expr()
		} else {
			stmts[i] = g.expr()
		}
	}
	return strings.Join(stmts, g.pick("; ", "\n"))
}

func (g *Generator) expr() string {
	g.depth++
	defer func() { g.depth-- }()
	if g.depth >= MaxDepth {
		return g.operand()
	}

	switch g.src.IntN(7) {
	case 0, 1:
		return g.operand()
	case 2:
		return g.expr() + " " + g.binaryOperator() + " " + g.expr()
	case 3:
		return g.expr() + " | " + g.mixOptions() + g.expr()
	case 4:
		return g.operand() + " @" + g.param() + g.paramValue()
	case 5:
		return g.pick("-", "~", "+") + g.operand()
	default:
		return "(" + g.expr() + ")"
	}
}

func (g *Generator) operand() string {
	switch g.src.IntN(12) {
	case 0:
		return g.pick("red", "SkyBlue", "olive", "white", "black", "hotpink")
	case 1:
		return g.pick("#fc0", "#ffcc00", "#11223344", "abc", "#f")
	case 2:
		return g.number()
	case 3:
		return g.number() + "%"
	case 4:
		return g.variable()
	case 5:
		return g.pick("rgb", "rgba", "argb", "hsl", "hsv", "cmyk", "lab", "lch", "hsi") + " " + g.number() + " " + g.number() + " " + g.number()
	case 6:
		return g.pick("num", "t", "wl") + " " + g.number()
	case 7:
		return g.pick("rand", "cubehelix", "YlOrBr", "Set1")
	case 8:
		return "scale " + g.pick("", "{lab} ", "{hsl} ") + "(" + g.operand() + " " + g.operand() + ")"
	case 9:
		return "bezier (" + g.operand() + " " + g.operand() + ")"
	case 10:
		return "(" + g.operand() + " " + g.operand() + ")"
	}
	return g.pick("$", "0x69", "0b1010", ".5")
}

func (g *Generator) number() string {
	switch g.src.IntN(4) {
	case 0:
		return strconv.Itoa(g.src.IntN(256))
	case 1:
		return "." + strconv.Itoa(g.src.IntN(100))
	case 2:
		return strconv.Itoa(g.src.IntN(400))
	}
	return g.pick("0", "1", "360", "100000", "0xff")
}

func (g *Generator) variable() string {
	return g.pick("$a", "$b", "$Col", "$x")
}

func (g *Generator) binaryOperator() string {
	return g.pick("+", "-", "*", "/", "^", "->", "%%", "<<", ">>", "<<<", ">>>", "!*", "**", "<*", "*>", "^*", "^^", "!^")
}

func (g *Generator) mixOptions() string {
	return g.pick("", "", "{25%} ", "{.3 lab} ", "{hsl} ", "{} ")
}

func (g *Generator) param() string {
	return g.pick("a", "r", "hsl.h", "lum", "temp", "n", "lab.l", "c", "padding", "domain", "start", "0", "1", "bogus")
}

func (g *Generator) paramValue() string {
	switch g.src.IntN(4) {
	case 0:
		return ""
	case 1:
		return " " + g.number()
	case 2:
		return " " + g.pick("=", "+=", "-=", "*=", "/=") + " " + g.number()
	}
	return " (" + g.number() + " " + g.number() + ")"
}
