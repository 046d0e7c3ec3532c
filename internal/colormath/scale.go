package colormath

import "math"

// Scale maps a position in its domain onto a color. It is backed either
// by a list of color stops or by a generating function.
type Scale struct {
	colors []Color
	fn     func(t float64) Color
	pos    []float64

	min, max  float64
	mapDomain func(t float64) float64

	mode             Space
	padding          [2]float64
	gamma            float64
	correctLightness bool
}

// NewScale returns a scale over evenly spaced color stops on [0, 1].
func NewScale(colors []Color) *Scale {
	if len(colors) == 1 {
		colors = []Color{colors[0], colors[0]}
	}
	s := &Scale{
		colors: append([]Color(nil), colors...),
		max:    1,
		mode:   SpaceRGB,
		gamma:  1,
	}
	s.pos = evenPositions(len(s.colors))
	return s
}

// NewFuncScale wraps a color generator defined on [0, 1].
func NewFuncScale(fn func(t float64) Color) *Scale {
	return &Scale{fn: fn, pos: []float64{0, 1}, max: 1, mode: SpaceRGB, gamma: 1}
}

func evenPositions(n int) []float64 {
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(i) / float64(n-1)
	}
	return pos
}

// Domain sets the input range. When it has one breakpoint per color the
// stops are placed at the breakpoints; otherwise more than two
// breakpoints remap positions piecewise-linearly.
func (s *Scale) Domain(domain []float64) *Scale {
	if len(domain) < 2 {
		return s
	}
	s.min, s.max = domain[0], domain[len(domain)-1]
	s.mapDomain = nil

	k := len(s.colors)
	if s.fn == nil && len(domain) == k && s.min != s.max {
		s.pos = make([]float64, k)
		for i, d := range domain {
			s.pos[i] = (d - s.min) / (s.max - s.min)
		}
		return s
	}
	if s.fn == nil {
		s.pos = evenPositions(k)
	}
	if len(domain) > 2 {
		out := make([]float64, len(domain))
		breaks := make([]float64, len(domain))
		identity := true
		for i, d := range domain {
			out[i] = float64(i) / float64(len(domain)-1)
			breaks[i] = (d - s.min) / (s.max - s.min)
			if out[i] != breaks[i] {
				identity = false
			}
		}
		if !identity {
			s.mapDomain = func(t float64) float64 {
				if t <= 0 || t >= 1 {
					return t
				}
				i := 0
				for i < len(breaks)-2 && t >= breaks[i+1] {
					i++
				}
				f := (t - breaks[i]) / (breaks[i+1] - breaks[i])
				return out[i] + f*(out[i+1]-out[i])
			}
		}
	}
	return s
}

// Mode sets the interpolation space between color stops.
func (s *Scale) Mode(m Space) *Scale {
	s.mode = m
	return s
}

// Padding shrinks the used part of the scale at both ends.
func (s *Scale) Padding(lo, hi float64) *Scale {
	s.padding = [2]float64{lo, hi}
	return s
}

func (s *Scale) Gamma(g float64) *Scale {
	s.gamma = g
	return s
}

// CorrectLightness makes Lab lightness change linearly along the scale.
func (s *Scale) CorrectLightness(on bool) *Scale {
	s.correctLightness = on
	return s
}

// At returns the color at v, a position within the domain.
func (s *Scale) At(v float64) (Color, error) {
	return s.color(v, false)
}

// Colors samples n equidistant colors over the domain, each rounded to
// 8-bit channels.
func (s *Scale) Colors(n int) ([]Color, error) {
	if n <= 0 {
		return nil, nil
	}
	if n == 1 {
		c, err := s.At(0.5)
		if err != nil {
			return nil, err
		}
		return []Color{c.Rounded()}, nil
	}
	res := make([]Color, n)
	dd := s.max - s.min
	for i := range res {
		c, err := s.At(s.min + float64(i)/float64(n-1)*dd)
		if err != nil {
			return nil, err
		}
		res[i] = c.Rounded()
	}
	return res, nil
}

func (s *Scale) color(v float64, bypass bool) (Color, error) {
	t := v
	if !bypass {
		if s.max != s.min {
			t = (v - s.min) / (s.max - s.min)
		} else {
			t = 1
		}
	}
	if s.mapDomain != nil {
		t = s.mapDomain(t)
	}
	if !bypass && s.correctLightness {
		var err error
		if t, err = s.lightnessT(t); err != nil {
			return Color{}, err
		}
	}
	if s.gamma != 1 {
		t = math.Pow(t, s.gamma)
	}
	t = s.padding[0] + t*(1-s.padding[0]-s.padding[1])
	t = clamp(t, 0, 1)

	if s.fn != nil {
		return s.fn(t), nil
	}
	for i, p := range s.pos {
		switch {
		case t <= p:
			return s.colors[i], nil
		case i == len(s.pos)-1:
			return s.colors[i], nil
		case t < s.pos[i+1]:
			return Interpolate(s.colors[i], s.colors[i+1], (t-p)/(s.pos[i+1]-p), s.mode)
		}
	}
	return s.colors[len(s.colors)-1], nil
}

func (s *Scale) lightness(t float64) (float64, error) {
	c, err := s.color(t, true)
	if err != nil {
		return 0, err
	}
	return c.Get(SpaceLab, 0)
}

func (s *Scale) lightnessT(t float64) (float64, error) {
	l0, err := s.lightness(0)
	if err != nil {
		return 0, err
	}
	l1, err := s.lightness(1)
	if err != nil {
		return 0, err
	}
	actual, err := s.lightness(t)
	if err != nil {
		return 0, err
	}
	ideal := l0 + (l1-l0)*t
	diff := actual - ideal
	t0, t1 := 0.0, 1.0
	for iter := 20; math.Abs(diff) > 1e-2 && iter > 0; iter-- {
		if l0 > l1 {
			diff = -diff
		}
		if diff < 0 {
			t0 = t
			t += (t1 - t) * 0.5
		} else {
			t1 = t
			t += (t0 - t) * 0.5
		}
		if actual, err = s.lightness(t); err != nil {
			return 0, err
		}
		diff = actual - ideal
	}
	return t, nil
}
