package terminal

import (
	"math"
	"testing"
)

func TestHSLFromRGB(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		h, s, l float64
	}{
		{"Red", RGB{255, 0, 0}, 0, 100, 50},
		{"Lime", RGB{0, 255, 0}, 120, 100, 50},
		{"Blue", RGB{0, 0, 255}, 240, 100, 50},
		{"White", RGB{255, 255, 255}, 0, 0, 100},
		{"Black", RGB{0, 0, 0}, 0, 0, 0},
		{"MidGray", RGB{128, 128, 128}, 0, 0, 50.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLFromRGB(tt.rgb)
			if math.Abs(got.H-tt.h) > 0.5 || math.Abs(got.S-tt.s) > 0.5 || math.Abs(got.L-tt.l) > 0.5 {
				t.Errorf("HSLFromRGB(%v) = %+v, want H=%v S=%v L=%v", tt.rgb, got, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a := Color{RGB: RGB{0, 0, 0}, Name: "A"}
	b := Color{RGB: RGB{255, 255, 255}, Name: "B"}

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"At zero", 0, a},
		{"Below zero", -1, a},
		{"At one", 1, b},
		{"Above one", 2, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(a, b, tt.t)
			if !got.Equal(tt.want) || got.Name != tt.want.Name {
				t.Errorf("Interpolate(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := Color{RGB: RGB{0, 0, 0}, HSL: HSL{0, 0, 0}, Name: "A"}
	b := Color{RGB: RGB{255, 255, 255}, HSL: HSL{0, 0, 100}, Name: "B"}

	got := Interpolate(a, b, 0.5)
	// Channels truncate: 255 * 0.5 = 127.5 -> 127
	if got.RGB.R != 127 || got.RGB.G != 127 || got.RGB.B != 127 {
		t.Errorf("midpoint RGB = %v, want {127 127 127}", got.RGB)
	}
	if got.HSL.L != 50 {
		t.Errorf("midpoint L = %v, want 50", got.HSL.L)
	}
	// Name snaps to the nearer endpoint, b at exactly 0.5
	if got.Name != "B" {
		t.Errorf("midpoint name = %q, want B", got.Name)
	}
	if q := Interpolate(a, b, 0.25); q.Name != "A" {
		t.Errorf("quarter name = %q, want A", q.Name)
	}
}

func TestGradient(t *testing.T) {
	g := NewGradient(Red, Yellow, Green)

	if got := g.At(0); !got.Equal(Red) {
		t.Errorf("At(0) = %v, want Red", got)
	}
	if got := g.At(1); !got.Equal(Green) {
		t.Errorf("At(1) = %v, want Green", got)
	}
	if got := g.At(-0.5); !got.Equal(Red) {
		t.Errorf("At(-0.5) = %v, want Red", got)
	}
	if got := g.At(2); !got.Equal(Green) {
		t.Errorf("At(2) = %v, want Green", got)
	}
	// Interior stop lands exactly on the segment boundary
	if got := g.At(0.5); !got.Equal(Yellow) {
		t.Errorf("At(0.5) = %v, want Yellow", got)
	}
}

func TestGradientSingleStop(t *testing.T) {
	g := NewGradient(Blue)
	for _, pos := range []float64{0, 0.3, 1} {
		if got := g.At(pos); !got.Equal(Blue) {
			t.Errorf("At(%v) = %v, want Blue", pos, got)
		}
	}
}

func TestGradientContinuity(t *testing.T) {
	g := NewGradient(Red, Yellow, Green)
	prev := g.At(0)
	for i := 1; i <= 100; i++ {
		cur := g.At(float64(i) / 100)
		dr := abs(int(cur.RGB.R) - int(prev.RGB.R))
		dg := abs(int(cur.RGB.G) - int(prev.RGB.G))
		db := abs(int(cur.RGB.B) - int(prev.RGB.B))
		if dr > 10 || dg > 10 || db > 10 {
			t.Fatalf("jump at %d%%: %v -> %v", i, prev.RGB, cur.RGB)
		}
		prev = cur
	}
}

func TestGradientNoStopsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGradient() with no stops did not panic")
		}
	}()
	NewGradient()
}

func TestNearestWindowsColor(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{"Black exact", RGB{0, 0, 0}, "Black"},
		{"Near black", RGB{45, 45, 45}, "Black"},
		{"Magenta exact", RGB{128, 0, 128}, "Magenta"},
		{"Bright green", RGB{0, 255, 0}, "IntenseGreen"},
		{"Grey exact", RGB{192, 192, 192}, "Grey"},
		{"White", RGB{255, 255, 255}, "IntenseWhite"},
		{"Navy-ish", RGB{10, 10, 140}, "Blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestWindowsColor(tt.rgb); got.Name != tt.want {
				t.Errorf("NearestWindowsColor(%v) = %q, want %q", tt.rgb, got.Name, tt.want)
			}
		})
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Red", RGB{255, 0, 0}, 196},
		{"Mid gray ramp", RGB{128, 128, 128}, 244},
		{"Dark blue", RGB{0, 0, 95}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.rgb); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestCube256(t *testing.T) {
	if got := Cube256(0, 0, 0); got != 16 {
		t.Errorf("Cube256(0,0,0) = %d, want 16", got)
	}
	if got := Cube256(5, 5, 5); got != 231 {
		t.Errorf("Cube256(5,5,5) = %d, want 231", got)
	}
	// Out of range clamps
	if got := Cube256(9, 0, 0); got != Cube256(5, 0, 0) {
		t.Errorf("Cube256(9,0,0) = %d, want %d", got, Cube256(5, 0, 0))
	}
}

func TestColorTable(t *testing.T) {
	tbl := NewColorTable()
	c1 := tbl.Register(RGB{10, 20, 30}, "Test", 42)
	c2 := tbl.Register(RGB{10, 20, 30}, "Test", 43)

	if got := tbl.ByName("Test"); len(got) != 2 {
		t.Fatalf("ByName returned %d entries, want 2", len(got))
	}
	if got := tbl.ByLowerName("TEST"); len(got) != 2 {
		t.Errorf("ByLowerName returned %d entries, want 2", len(got))
	}
	if got := tbl.ByRGB(RGB{10, 20, 30}); len(got) != 2 {
		t.Errorf("ByRGB returned %d entries, want 2", len(got))
	}
	if got, ok := tbl.ByXterm(42); !ok || !got.Equal(c1) {
		t.Errorf("ByXterm(42) = %v, %v", got, ok)
	}
	if _, ok := tbl.ByXterm(99); ok {
		t.Error("ByXterm(99) found an unregistered index")
	}
	_ = c2
}

func TestDefaultColorsRegistered(t *testing.T) {
	if got := DefaultColors.ByName("Red"); len(got) == 0 {
		t.Error("Red missing from default table")
	}
	if got := DefaultColors.ByLowerName("teal"); len(got) == 0 {
		t.Error("teal missing from default table")
	}
	// Named palette entries carry a derived xterm index
	if Red.Xterm != RGBTo256(Red.RGB) {
		t.Errorf("Red.Xterm = %d, want %d", Red.Xterm, RGBTo256(Red.RGB))
	}
}
