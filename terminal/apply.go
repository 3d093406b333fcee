package terminal

import (
	"strconv"
)

// StyleOptions selects the colors for ApplyColors. FG and BG drive styling
// when a progress percentage is known; FGNone and BGNone replace them when
// it is not. Any slot may be nil, a Color, or a Gradient.
type StyleOptions struct {
	FG, BG         ColorSpec
	FGNone, BGNone ColorSpec
}

// ApplyColors styles text according to the progress percentage (0-100) and
// the configured color slots. A nil percentage selects the None slots;
// gradients are evaluated at percentage/100. The foreground is applied
// before the background, each only when set. An empty slot is a
// pass-through, never an error.
func ApplyColors(text string, percentage *float64, opts StyleOptions, support ColorSupport) string {
	var fg, bg ColorSpec
	if percentage == nil {
		fg, bg = opts.FGNone, opts.BGNone
	} else {
		fg, bg = opts.FG, opts.BG
	}

	if (fg == nil && bg == nil) || support == ColorSupportNone {
		return text
	}

	var t float64
	if percentage != nil {
		t = *percentage / 100
	}

	if fg != nil {
		text = Colorize(text, fg.ColorAt(t), support, false)
	}
	if bg != nil {
		text = Colorize(text, bg.ColorAt(t), support, true)
	}
	return text
}

// Colorize wraps text in the SGR color sequence appropriate to the support
// level. True color emits 38;2/48;2 RGB triplets, 256-color maps through
// the xterm cube, and 16-color snaps to the nearest console palette entry.
// The closing code resets only the touched slot (39/49).
func Colorize(text string, c Color, support ColorSupport, background bool) string {
	slot := 38
	reset := esc + "[39m"
	if background {
		slot = 48
		reset = esc + "[49m"
	}

	var start string
	switch {
	case support >= ColorSupportTrueColor:
		start = esc + "[" + strconv.Itoa(slot) + ";2;" +
			strconv.Itoa(int(c.RGB.R)) + ";" +
			strconv.Itoa(int(c.RGB.G)) + ";" +
			strconv.Itoa(int(c.RGB.B)) + "m"
	case support >= ColorSupportXterm256:
		start = esc + "[" + strconv.Itoa(slot) + ";5;" +
			strconv.Itoa(int(RGBTo256(c.RGB))) + "m"
	case support >= ColorSupportXterm:
		start = esc + "[" + strconv.Itoa(ansi16Code(NearestWindowsColor(c.RGB), background)) + "m"
	default:
		return text
	}

	return start + text + reset
}

// ansi16Code maps a console palette entry to its SGR color code:
// 30-37/90-97 for foregrounds, 40-47/100-107 for backgrounds.
func ansi16Code(c Color, background bool) int {
	idx := int(c.Xterm)
	base := 30
	if background {
		base = 40
	}
	if idx >= 8 {
		// Intense half of the palette
		return base + 60 + idx - 8
	}
	return base + idx
}
