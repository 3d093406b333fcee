package terminal

import (
	"math"
	"strings"
)

// ColorTable indexes registered colors by name, lowercase name, RGB value
// and xterm palette index. Duplicate registrations by name or RGB append to
// the existing list instead of replacing it; the xterm index keeps the last
// registration.
type ColorTable struct {
	byName      map[string][]Color
	byLowerName map[string][]Color
	byRGB       map[RGB][]Color
	byXterm     map[uint8]Color
}

// NewColorTable returns an empty color table.
func NewColorTable() *ColorTable {
	return &ColorTable{
		byName:      make(map[string][]Color),
		byLowerName: make(map[string][]Color),
		byRGB:       make(map[RGB][]Color),
		byXterm:     make(map[uint8]Color),
	}
}

// Register derives the HSL form from rgb and indexes the color.
func (t *ColorTable) Register(rgb RGB, name string, xterm uint8) Color {
	return t.RegisterFull(rgb, HSLFromRGB(rgb), name, xterm)
}

// RegisterFull registers a color with an explicit HSL form.
func (t *ColorTable) RegisterFull(rgb RGB, hsl HSL, name string, xterm uint8) Color {
	c := Color{RGB: rgb, HSL: hsl, Name: name, Xterm: xterm}
	t.byName[name] = append(t.byName[name], c)
	t.byLowerName[strings.ToLower(name)] = append(t.byLowerName[strings.ToLower(name)], c)
	t.byRGB[rgb] = append(t.byRGB[rgb], c)
	t.byXterm[xterm] = c
	return c
}

// ByName returns all colors registered under the exact name.
func (t *ColorTable) ByName(name string) []Color {
	return t.byName[name]
}

// ByLowerName returns all colors registered under the case-folded name.
func (t *ColorTable) ByLowerName(name string) []Color {
	return t.byLowerName[strings.ToLower(name)]
}

// ByRGB returns all colors registered with the RGB value.
func (t *ColorTable) ByRGB(rgb RGB) []Color {
	return t.byRGB[rgb]
}

// ByXterm returns the color registered for the palette index.
func (t *ColorTable) ByXterm(index uint8) (Color, bool) {
	c, ok := t.byXterm[index]
	return c, ok
}

// windowsPalette is the fixed 16-entry console palette. Order matters: the
// Xterm field doubles as the 16-color SGR slot (0-7 normal, 8-15 intense)
// and ties in nearest-color search resolve to the first entry.
var windowsPalette = buildWindowsPalette()

func buildWindowsPalette() [16]Color {
	entries := []struct {
		rgb  RGB
		name string
	}{
		{RGB{0, 0, 0}, "Black"},
		{RGB{0, 0, 128}, "Blue"},
		{RGB{0, 128, 0}, "Green"},
		{RGB{0, 128, 128}, "Cyan"},
		{RGB{128, 0, 0}, "Red"},
		{RGB{128, 0, 128}, "Magenta"},
		{RGB{128, 128, 0}, "Yellow"},
		{RGB{192, 192, 192}, "Grey"},
		{RGB{128, 128, 128}, "IntenseBlack"},
		{RGB{0, 0, 255}, "IntenseBlue"},
		{RGB{0, 255, 0}, "IntenseGreen"},
		{RGB{0, 255, 255}, "IntenseCyan"},
		{RGB{255, 0, 0}, "IntenseRed"},
		{RGB{255, 0, 255}, "IntenseMagenta"},
		{RGB{255, 255, 0}, "IntenseYellow"},
		{RGB{255, 255, 255}, "IntenseWhite"},
	}

	var palette [16]Color
	for i, e := range entries {
		palette[i] = Color{RGB: e.rgb, HSL: HSLFromRGB(e.rgb), Name: e.name, Xterm: uint8(i)}
	}
	return palette
}

// NearestWindowsColor returns the entry of the fixed 16-color console
// palette closest to rgb by Euclidean distance in RGB space. Ties keep the
// first palette entry in enumeration order.
func NearestWindowsColor(rgb RGB) Color {
	best := windowsPalette[0]
	bestDist := math.Inf(1)
	for _, c := range windowsPalette {
		dr := float64(rgb.R) - float64(c.RGB.R)
		dg := float64(rgb.G) - float64(c.RGB.G)
		db := float64(rgb.B) - float64(c.RGB.B)
		d := math.Sqrt(dr*dr + dg*dg + db*db)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// DefaultColors is the process-wide color table. It is populated once at
// startup with the 16 console colors plus a truecolor naming palette;
// consumers receive the table by reference instead of mutating globals.
var DefaultColors = buildDefaultColors()

// Named truecolor palette. Standard color names where the RGB closely
// matches (CSS, X11), descriptive compound names otherwise. Ordered
// dark-to-light within each hue group.
var (
	Black     = Color{RGB: RGB{0, 0, 0}, Name: "Black"}
	Charcoal  = Color{RGB: RGB{5, 5, 5}, Name: "Charcoal"}
	DimGray   = Color{RGB: RGB{55, 55, 55}, Name: "DimGray"}
	Gray      = Color{RGB: RGB{120, 120, 120}, Name: "Gray"}
	Silver    = Color{RGB: RGB{180, 180, 180}, Name: "Silver"}
	LightGray = Color{RGB: RGB{200, 200, 200}, Name: "LightGray"}
	White     = Color{RGB: RGB{255, 255, 255}, Name: "White"}

	DarkCrimson = Color{RGB: RGB{139, 0, 0}, Name: "DarkCrimson"}
	Brick       = Color{RGB: RGB{180, 40, 40}, Name: "Brick"}
	Red         = Color{RGB: RGB{255, 0, 0}, Name: "Red"}
	Coral       = Color{RGB: RGB{255, 80, 80}, Name: "Coral"}

	Sienna = Color{RGB: RGB{140, 60, 0}, Name: "Sienna"}
	Orange = Color{RGB: RGB{255, 140, 0}, Name: "Orange"}
	Amber  = Color{RGB: RGB{255, 190, 0}, Name: "Amber"}
	Gold   = Color{RGB: RGB{255, 215, 0}, Name: "Gold"}
	Yellow = Color{RGB: RGB{255, 255, 0}, Name: "Yellow"}

	DarkForest  = Color{RGB: RGB{0, 100, 0}, Name: "DarkForest"}
	Green       = Color{RGB: RGB{0, 200, 0}, Name: "Green"}
	Lime        = Color{RGB: RGB{0, 255, 0}, Name: "Lime"}
	YellowGreen = Color{RGB: RGB{154, 205, 50}, Name: "YellowGreen"}

	DeepTeal = Color{RGB: RGB{0, 90, 90}, Name: "DeepTeal"}
	Teal     = Color{RGB: RGB{0, 180, 180}, Name: "Teal"}
	Cyan     = Color{RGB: RGB{0, 255, 255}, Name: "Cyan"}

	Navy      = Color{RGB: RGB{0, 0, 128}, Name: "Navy"}
	SteelBlue = Color{RGB: RGB{70, 130, 180}, Name: "SteelBlue"}
	Blue      = Color{RGB: RGB{0, 100, 255}, Name: "Blue"}
	LightBlue = Color{RGB: RGB{120, 190, 255}, Name: "LightBlue"}

	Indigo  = Color{RGB: RGB{75, 0, 130}, Name: "Indigo"}
	Purple  = Color{RGB: RGB{160, 60, 220}, Name: "Purple"}
	Magenta = Color{RGB: RGB{255, 0, 255}, Name: "Magenta"}
	Orchid  = Color{RGB: RGB{218, 112, 214}, Name: "Orchid"}
)

func buildDefaultColors() *ColorTable {
	t := NewColorTable()
	for _, c := range windowsPalette {
		t.RegisterFull(c.RGB, c.HSL, c.Name, c.Xterm)
	}

	named := []*Color{
		&Black, &Charcoal, &DimGray, &Gray, &Silver, &LightGray, &White,
		&DarkCrimson, &Brick, &Red, &Coral,
		&Sienna, &Orange, &Amber, &Gold, &Yellow,
		&DarkForest, &Green, &Lime, &YellowGreen,
		&DeepTeal, &Teal, &Cyan,
		&Navy, &SteelBlue, &Blue, &LightBlue,
		&Indigo, &Purple, &Magenta, &Orchid,
	}
	for _, c := range named {
		*c = t.Register(c.RGB, c.Name, RGBTo256(c.RGB))
	}
	return t
}
