package colormath

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName looks up a CSS/SVG color name, ignoring case.
func FromName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return RGB(float64(c.R), float64(c.G), float64(c.B)), true
}

// IsName reports whether name is a known color name.
func IsName(name string) bool {
	_, ok := colornames.Map[strings.ToLower(name)]
	return ok
}

// Names lists all known color names in alphabetical order.
func Names() []string {
	return colornames.Names
}

// Name returns the first color name, alphabetically, whose RGB value
// equals the rounded color. Alpha is ignored.
func (c Color) Name() (string, bool) {
	r := c.Rounded()
	want := color.RGBA{R: uint8(r.R), G: uint8(r.G), B: uint8(r.B), A: 0xff}
	for _, name := range colornames.Names {
		if colornames.Map[name] == want {
			return name, true
		}
	}
	return "", false
}
