// Package colour provides the colour value used by schemes and templates,
// its textual formats, literal parsing and seed extraction from images.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Color is a single ARGB colour with 8-bit channels.
// Values are compared by exact channel equality.
type Color struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// New returns an opaque colour with the given channels.
func New(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// FromColor converts any color.Color to a Color, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// ARGB packs the colour as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// NRGBA returns the colour as a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex returns "#RRGGBB" in upper case. Alpha is discarded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Strip returns the hex form without its leading '#'.
func (c Color) Strip() string {
	return c.Hex()[1:]
}

// RGB returns "rgb(R, G, B)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA returns "rgba(R, G, B, A)" with alpha in 0-255.
func (c Color) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// HSL returns "hsl(H, S%, L%)" with rounded components.
func (c Color) HSL() string {
	h, s, l := c.hsl()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// HSLA returns "hsla(H, S%, L%, A)" with alpha in 0-1.
func (c Color) HSLA() string {
	h, s, l := c.hsl()
	alpha := math.Round(float64(c.A)/255*100) / 100
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) hsl() (h, s, l int) {
	hf, sf, lf := rgbToHSL(c)
	h = int(math.Round(hf)) % 360
	s = int(math.Round(sf * 100))
	l = int(math.Round(lf * 100))
	return h, s, l
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(c Color) (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// hslToColor converts HSL to an opaque colour.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func hslToColor(h, s, l float64) Color {
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return New(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return New(
		uint8(math.Round(hueToRGB(p, q, h+120)*255)),
		uint8(math.Round(hueToRGB(p, q, h)*255)),
		uint8(math.Round(hueToRGB(p, q, h-120)*255)),
	)
}

func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
