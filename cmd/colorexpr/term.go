package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/colorexpr/internal/colormath"
	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/internal/value"
)

// Color support levels.
const (
	colorNone      = 0
	colorBasic     = 1
	color256       = 256
	colorTrueColor = 16777216
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// detectColorLevel follows NO_COLOR, TERM and COLORTERM. mode "always"
// skips the terminal check, "never" disables colors.
func detectColorLevel(mode string, tty bool, lookupEnv func(string) (string, bool)) int {
	if mode == config.ColorNever {
		return colorNone
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := lookupEnv(config.NoColorEnv); ok && mode != config.ColorAlways {
		return colorNone
	}
	if !tty && mode != config.ColorAlways {
		return colorNone
	}

	term, _ := lookupEnv(config.TermEnv)
	if term == "dumb" && mode != config.ColorAlways {
		return colorNone
	}

	colorTerm, _ := lookupEnv(config.ColorTermEnv)
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return colorTrueColor
	}
	if strings.Contains(term, "256color") {
		return color256
	}
	return colorBasic
}

// swatch renders a two-cell block in the color. Basic terminals get
// nothing since 16 colors cannot show the difference between most
// results.
func swatch(c colormath.Color, level int) string {
	r := c.Rounded()
	switch level {
	case colorTrueColor:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", int(r.R), int(r.G), int(r.B))
	case color256:
		return fmt.Sprintf("\x1b[48;5;%dm  \x1b[0m ", cubeIndex(r))
	}
	return ""
}

// cubeIndex maps a color onto the 6x6x6 cube of the 256-color palette.
func cubeIndex(c colormath.Color) int {
	q := func(v float64) int { return int(v*5/255 + 0.5) }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}

// decorate prefixes the formatted result with swatches for every color
// it contains.
func decorate(v value.Value, text string, level int) string {
	if level == colorNone {
		return text
	}
	var b strings.Builder
	switch x := v.(type) {
	case value.Color:
		b.WriteString(swatch(x.Color, level))
	case value.Array:
		for _, c := range x.Colors() {
			b.WriteString(swatch(c, level))
		}
	}
	b.WriteString(text)
	return b.String()
}
