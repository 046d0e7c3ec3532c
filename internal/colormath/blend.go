package colormath

import "math"

// BlendMode selects a per-channel separable blend function.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendReplace
	BlendAdd
	BlendColorBurn
	BlendColorDodge
	BlendDarken
	BlendDifference
	BlendDivide
	BlendExclusion
	BlendHardLight
	BlendLighten
	BlendLinearBurn
	BlendLinearDodge
	BlendMultiply
	BlendNegate
	BlendOverlay
	BlendScreen
	BlendSoftLight
	BlendSubtract
)

var blendNames = [...]string{
	"None", "Replace", "Add", "ColorBurn", "ColorDodge", "Darken", "Difference",
	"Divide", "Exclusion", "HardLight", "Lighten", "LinearBurn", "LinearDodge",
	"Multiply", "Negate", "Overlay", "Screen", "SoftLight", "Subtract",
}

func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendNames) {
		return "Unknown"
	}
	return blendNames[m]
}

type blender func(a, b float64) float64

var blenders = map[BlendMode]blender{
	BlendNone:    func(a, b float64) float64 { return a },
	BlendReplace: func(a, b float64) float64 { return b },
	BlendAdd:     func(a, b float64) float64 { return math.Min(a+b, 255) },
	BlendColorBurn: func(a, b float64) float64 {
		if b <= 0 {
			return 0
		}
		return math.Max(255-(255-a)*255/b, 0)
	},
	BlendColorDodge: func(a, b float64) float64 {
		if b >= 255 {
			return 255
		}
		return math.Min(a*255/(255-b), 255)
	},
	BlendDarken:     math.Min,
	BlendDifference: func(a, b float64) float64 { return math.Abs(a - b) },
	BlendDivide:     func(a, b float64) float64 { return math.Min((a/255)/(b/255)*255, 255) },
	BlendExclusion:  func(a, b float64) float64 { return 255 - ((255-a)*(255-b)/255 + a*b/255) },
	BlendHardLight: func(a, b float64) float64 {
		if b < 128 {
			return 2 * a * b / 255
		}
		return 255 - 2*(255-a)*(255-b)/255
	},
	BlendLighten:     math.Max,
	BlendLinearBurn:  func(a, b float64) float64 { return math.Max(0, a+b-255) },
	BlendLinearDodge: func(a, b float64) float64 { return math.Min(a+b, 255) },
	BlendMultiply:    func(a, b float64) float64 { return a * b / 255 },
	BlendNegate:      func(a, b float64) float64 { return 255 - math.Abs(255-a-b) },
	BlendOverlay: func(a, b float64) float64 {
		if a < 128 {
			return 2 * a * b / 255
		}
		return 255 - 2*(255-a)*(255-b)/255
	},
	BlendScreen: func(a, b float64) float64 { return 255 - (255-a)*(255-b)/255 },
	BlendSoftLight: func(a, b float64) float64 {
		half := float64(int64(b) >> 1)
		if a < 128 {
			return (half + 64) * a * (2.0 / 255)
		}
		return 255 - (191-half)*(255-a)*(2.0/255)
	},
	BlendSubtract: func(a, b float64) float64 { return math.Max(a-b, 0) },
}

// Blend composites fg over bg with straight alpha, mixing each channel
// with the blend function of mode.
func Blend(bg, fg Color, mode BlendMode) Color {
	f, ok := blenders[mode]
	if !ok {
		f = blenders[BlendNone]
	}
	outA := fg.A + bg.A*(1-fg.A)
	bgc := [3]float64{bg.R, bg.G, bg.B}
	fgc := [3]float64{fg.R, fg.G, fg.B}
	var res [3]float64
	for i := range res {
		c1 := bgc[i] / 255
		c2 := fgc[i] / 255
		c := f(bgc[i], fgc[i]) / 255
		if outA != 0 {
			c = (fg.A*c2 + bg.A*(c1-fg.A*(c1+c2-c))) / outA
		}
		res[i] = c * 255
	}
	return New(res[0], res[1], res[2], outA)
}
