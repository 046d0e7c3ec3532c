package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/colorexpr/internal/parser"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	data := []byte{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}
	assert.Equal(t, NewFromData(data).GenerateProgram(), NewFromData(data).GenerateProgram())
	assert.Equal(t, New(11).GenerateProgram(), New(11).GenerateProgram())
}

func TestGeneratorExhaustedData(t *testing.T) {
	assert.Equal(t, "$a = red", NewFromData(nil).GenerateProgram())
}

func TestGeneratedProgramsMostlyParse(t *testing.T) {
	parsed := 0
	for seed := range uint64(200) {
		if _, err := parser.Parse(New(seed).GenerateProgram()); err == nil {
			parsed++
		}
	}
	assert.Greater(t, parsed, 50)
}
