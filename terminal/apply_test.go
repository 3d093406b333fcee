package terminal

import "testing"

func TestColorize(t *testing.T) {
	red := Color{RGB: RGB{255, 0, 0}, Xterm: 196}

	tests := []struct {
		name       string
		support    ColorSupport
		background bool
		want       string
	}{
		{"None passthrough", ColorSupportNone, false, "text"},
		{"Truecolor fg", ColorSupportTrueColor, false, "\x1b[38;2;255;0;0mtext\x1b[39m"},
		{"Truecolor bg", ColorSupportTrueColor, true, "\x1b[48;2;255;0;0mtext\x1b[49m"},
		{"256 fg", ColorSupportXterm256, false, "\x1b[38;5;196mtext\x1b[39m"},
		{"256 bg", ColorSupportXterm256, true, "\x1b[48;5;196mtext\x1b[49m"},
		// Nearest console entry for pure red is IntenseRed (slot 12)
		{"16 fg", ColorSupportXterm, false, "\x1b[94mtext\x1b[39m"},
		{"16 bg", ColorSupportXterm, true, "\x1b[104mtext\x1b[49m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorize("text", red, tt.support, tt.background); got != tt.want {
				t.Errorf("Colorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnsi16Code(t *testing.T) {
	tests := []struct {
		name       string
		color      Color
		background bool
		want       int
	}{
		{"Black fg", windowsPalette[0], false, 30},
		{"Grey fg", windowsPalette[7], false, 37},
		{"IntenseBlack fg", windowsPalette[8], false, 90},
		{"IntenseWhite fg", windowsPalette[15], false, 97},
		{"Black bg", windowsPalette[0], true, 40},
		{"IntenseWhite bg", windowsPalette[15], true, 107},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi16Code(tt.color, tt.background); got != tt.want {
				t.Errorf("ansi16Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyColors(t *testing.T) {
	fifty := 50.0

	tests := []struct {
		name       string
		percentage *float64
		opts       StyleOptions
		support    ColorSupport
		want       string
	}{
		{"No slots", &fifty, StyleOptions{}, ColorSupportTrueColor, "text"},
		{"No support", &fifty, StyleOptions{FG: Red}, ColorSupportNone, "text"},
		{"FG slot", &fifty, StyleOptions{FG: Color{RGB: RGB{255, 0, 0}}}, ColorSupportTrueColor,
			"\x1b[38;2;255;0;0mtext\x1b[39m"},
		{"Nil percentage skips FG", nil, StyleOptions{FG: Red}, ColorSupportTrueColor, "text"},
		{"Nil percentage uses FGNone", nil, StyleOptions{FGNone: Color{RGB: RGB{0, 0, 255}}}, ColorSupportTrueColor,
			"\x1b[38;2;0;0;255mtext\x1b[39m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyColors("text", tt.percentage, tt.opts, tt.support); got != tt.want {
				t.Errorf("ApplyColors() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyColorsGradient(t *testing.T) {
	g := NewGradient(Color{RGB: RGB{0, 0, 0}}, Color{RGB: RGB{200, 100, 50}})
	full := 100.0
	got := ApplyColors("x", &full, StyleOptions{FG: g}, ColorSupportTrueColor)
	want := "\x1b[38;2;200;100;50mx\x1b[39m"
	if got != want {
		t.Errorf("gradient at 100%% = %q, want %q", got, want)
	}
}

func TestApplyColorsLayering(t *testing.T) {
	// Foreground first, background wraps around it
	fifty := 50.0
	got := ApplyColors("x", &fifty, StyleOptions{
		FG: Color{RGB: RGB{1, 2, 3}},
		BG: Color{RGB: RGB{4, 5, 6}},
	}, ColorSupportTrueColor)
	want := "\x1b[48;2;4;5;6m\x1b[38;2;1;2;3mx\x1b[39m\x1b[49m"
	if got != want {
		t.Errorf("layered = %q, want %q", got, want)
	}
}
