package colormath

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min, Max float64
}

var spaceRanges = map[Space][]Range{
	SpaceRGB:  {{0, 255}, {0, 255}, {0, 255}},
	SpaceCMY:  {{0, 1}, {0, 1}, {0, 1}},
	SpaceCMYK: {{0, 1}, {0, 1}, {0, 1}, {0, 1}},
	SpaceHSL:  {{0, 360}, {0, 1}, {0, 1}},
	SpaceHSV:  {{0, 360}, {0, 1}, {0, 1}},
	SpaceHSI:  {{0, 360}, {0, 1}, {0, 1}},
	SpaceLab:  {{0, 100}, {-128, 127}, {-128, 127}},
	SpaceLCH:  {{0, 100}, {0, 140}, {0, 360}},
	SpaceHCL:  {{0, 360}, {0, 140}, {0, 100}},
}

// Ranges returns the valid interval of every component of the space.
func Ranges(s Space) ([]Range, error) {
	r, ok := spaceRanges[Space(strings.ToLower(string(s)))]
	if !ok {
		return nil, errors.Newf("unknown namespace: %s", strings.ToUpper(string(s)))
	}
	return r, nil
}
