package terminal

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// HSL represents a color as hue (0-360), saturation (0-100) and
// lightness (0-100).
type HSL struct {
	H, S, L float64
}

// HSLFromRGB converts a 0-255 RGB color to its HSL form.
func HSLFromRGB(c RGB) HSL {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// Color bundles the RGB, HSL, name and xterm palette forms of one color.
// RGB and HSL are derived together at registration and must stay mutually
// consistent; Color values are never mutated after creation.
type Color struct {
	RGB   RGB
	HSL   HSL
	Name  string
	Xterm uint8
}

// String returns the color name.
func (c Color) String() string {
	return c.Name
}

// Equal compares colors by their RGB value.
func (c Color) Equal(other Color) bool {
	return c.RGB.Equal(other.RGB)
}

// ColorAt implements ColorSpec; a plain color ignores the position.
func (c Color) ColorAt(float64) Color {
	return c
}

// Interpolate blends two colors at position t. t at or below 0 returns a,
// at or above 1 returns b. RGB channels truncate to integers, HSL channels
// blend independently. The name and xterm index snap to the nearer endpoint;
// the switch at t=0.5 is cosmetic (String output only), the RGB/HSL channels
// stay continuous.
func Interpolate(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	rgb := RGB{
		R: uint8(float64(a.RGB.R) + (float64(b.RGB.R)-float64(a.RGB.R))*t),
		G: uint8(float64(a.RGB.G) + (float64(b.RGB.G)-float64(a.RGB.G))*t),
		B: uint8(float64(a.RGB.B) + (float64(b.RGB.B)-float64(a.RGB.B))*t),
	}
	hsl := HSL{
		H: a.HSL.H + (b.HSL.H-a.HSL.H)*t,
		S: a.HSL.S + (b.HSL.S-a.HSL.S)*t,
		L: a.HSL.L + (b.HSL.L-a.HSL.L)*t,
	}

	name, xterm := a.Name, a.Xterm
	if t >= 0.5 {
		name, xterm = b.Name, b.Xterm
	}
	return Color{RGB: rgb, HSL: hsl, Name: name, Xterm: xterm}
}

// ColorSpec is a fixed color or a position-driven gradient.
type ColorSpec interface {
	ColorAt(t float64) Color
}

// Gradient maps a scalar in [0, 1] onto an ordered sequence of color stops.
type Gradient struct {
	stops []Color
}

// NewGradient builds a gradient from one or more color stops.
// Panics when called with no stops.
func NewGradient(stops ...Color) Gradient {
	if len(stops) == 0 {
		panic("terminal: gradient needs at least one color stop")
	}
	return Gradient{stops: append([]Color(nil), stops...)}
}

// Stops returns the gradient's color stops.
func (g Gradient) Stops() []Color {
	return append([]Color(nil), g.stops...)
}

// At maps t to a color on the gradient. Values outside [0, 1] clamp to the
// end stops; inside, [0, 1] is split into len(stops)-1 equal segments and
// the position interpolates within its segment.
func (g Gradient) At(t float64) Color {
	if t <= 0 {
		return g.stops[0]
	}
	if t >= 1 || len(g.stops) == 1 {
		return g.stops[len(g.stops)-1]
	}

	segmentSize := 1.0 / float64(len(g.stops)-1)
	segment := int(t / segmentSize)
	segmentT := (t - float64(segment)*segmentSize) / segmentSize

	return Interpolate(g.stops[segment], g.stops[segment+1], segmentT)
}

// ColorAt implements ColorSpec.
func (g Gradient) ColorAt(t float64) Color {
	return g.At(t)
}
