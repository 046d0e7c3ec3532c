package colormath

import "math"

// FromTemperature approximates the color of a black body at kelvin
// degrees (Neil Bartlett's fit of Mitchell Charity's table).
func FromTemperature(kelvin float64) Color {
	r, g, b := temperatureRGB(kelvin)
	return RGB(r, g, b)
}

func temperatureRGB(kelvin float64) (r, g, b float64) {
	t := kelvin / 100
	if t < 66 {
		r = 255
		if t >= 6 {
			g = -155.25485562709179 - 0.44596950469579133*(t-2) + 104.49216199393888*math.Log(t-2)
		}
		if t >= 20 {
			b = -254.76935184120902 + 0.8274096064007395*(t-10) + 115.67994401066147*math.Log(t-10)
		}
		return r, g, b
	}
	r = 351.97690566805693 + 0.114206453784165*(t-55) - 40.25366309332127*math.Log(t-55)
	g = 325.4494125711974 + 0.07943456536662342*(t-50) - 28.0852963507957*math.Log(t-50)
	return r, g, 255
}

// Temperature estimates the color temperature by bisecting the blue/red
// ratio over 1000..40000 K.
func (c Color) Temperature() float64 {
	lo, hi := 1000.0, 40000.0
	want := c.B / c.R
	var t float64
	for hi-lo > 0.4 {
		t = (hi + lo) * 0.5
		r, _, b := temperatureRGB(t)
		if b/r >= want {
			hi = t
		} else {
			lo = t
		}
	}
	return math.Round(t)
}

// FromWavelength approximates the visible color of monochromatic light.
// Alpha fades out towards the ends of the visible spectrum.
func FromWavelength(wl float64) Color {
	var r, g, b float64
	a := 1.0

	switch {
	case wl >= 380 && wl < 440:
		r, b = -(wl-440)/(440-380), 1
	case wl >= 440 && wl < 490:
		g, b = (wl-440)/(490-440), 1
	case wl >= 490 && wl < 510:
		g, b = 1, -(wl-510)/(510-490)
	case wl >= 510 && wl < 580:
		r, g = (wl-510)/(580-510), 1
	case wl >= 580 && wl < 645:
		r, g = 1, -(wl-645)/(645-580)
	case wl >= 645 && wl <= 780:
		r = 1
	}

	switch {
	case wl > 780 || wl < 380:
		a = 0
	case wl > 700:
		a = (780 - wl) / (780 - 700)
	case wl < 420:
		a = (wl - 380) / (420 - 380)
	}
	return New(r*255, g*255, b*255, a)
}

// Luminance is the WCAG relative luminance of the color.
func (c Color) Luminance() float64 {
	lin := func(x float64) float64 {
		x /= 255
		if x <= 0.03928 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Contrast is the WCAG contrast ratio of two colors, always >= 1.
func Contrast(a, b Color) float64 {
	l1, l2 := a.Luminance(), b.Luminance()
	if l1 > l2 {
		return (l1 + 0.05) / (l2 + 0.05)
	}
	return (l2 + 0.05) / (l1 + 0.05)
}

const (
	luminanceEps     = 1e-7
	luminanceMaxIter = 20
)

// WithLuminance returns a color of the requested relative luminance
// found by bisection towards black or white, interpolating in mode.
// Alpha is kept.
func (c Color) WithLuminance(lum float64, mode Space) (Color, error) {
	switch lum {
	case 0:
		return New(0, 0, 0, c.A), nil
	case 1:
		return New(255, 255, 255, c.A), nil
	}

	iter := luminanceMaxIter
	var search func(lo, hi Color) (Color, error)
	search = func(lo, hi Color) (Color, error) {
		mid, err := Interpolate(lo, hi, 0.5, mode)
		if err != nil {
			return Color{}, err
		}
		lm := mid.Luminance()
		iter--
		if math.Abs(lum-lm) < luminanceEps || iter < 0 {
			return mid, nil
		}
		if lm > lum {
			return search(lo, mid)
		}
		return search(mid, hi)
	}

	var res Color
	var err error
	if c.Luminance() > lum {
		res, err = search(RGB(0, 0, 0), c.WithAlpha(1))
	} else {
		res, err = search(c.WithAlpha(1), RGB(255, 255, 255))
	}
	if err != nil {
		return Color{}, err
	}
	return res.WithAlpha(c.A), nil
}
