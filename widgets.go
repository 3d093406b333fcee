package progress

import (
	"fmt"
	"time"

	"github.com/lixenwraith/progress/terminal"
)

// Widget renders one fragment of the progress line. Widgets are invoked
// once per redraw, in configured order, and must not mutate the state.
type Widget interface {
	Render(s *State) string
}

// WidthAware widgets expand to consume the width their fixed-size siblings
// leave over. Multiple expanding widgets split the leftover evenly.
type WidthAware interface {
	Widget
	RenderWidth(s *State, width int) string
}

// WidgetColors optionally styles a widget's output. FG and BG drive the
// styling while the percentage is known (gradients follow it); FGNone and
// BGNone take over when it is not.
type WidgetColors struct {
	FG, BG         terminal.ColorSpec
	FGNone, BGNone terminal.ColorSpec
}

func (c WidgetColors) apply(s *State, text string) string {
	if c.FG == nil && c.BG == nil && c.FGNone == nil && c.BGNone == nil {
		return text
	}
	return terminal.ApplyColors(text, s.percentagePtr(), terminal.StyleOptions{
		FG:     c.FG,
		BG:     c.BG,
		FGNone: c.FGNone,
		BGNone: c.BGNone,
	}, s.ColorSupport)
}

// DefaultBarGradient shades a bar from red through yellow to green as it
// fills.
var DefaultBarGradient = terminal.NewGradient(terminal.Red, terminal.Yellow, terminal.Green)

// Label renders fixed text.
type Label string

func (l Label) Render(*State) string {
	return string(l)
}

// Percentage renders the progress percentage, or its not-available form
// when the maximum is unknown.
type Percentage struct {
	Colors WidgetColors
}

func (p Percentage) Render(s *State) string {
	pct, ok := s.Percentage()
	if !ok {
		return p.Colors.apply(s, "N/A%")
	}
	return p.Colors.apply(s, fmt.Sprintf("%3.0f%%", pct))
}

// Progress bar characters
const (
	barFull  = '█'
	barEmpty = '░'
)

// Bar renders the glyph track. It expands to fill the line width left over
// by fixed-size widgets; with an unknown maximum the fill is replaced by a
// marker bouncing across the track.
type Bar struct {
	Left, Right string // track delimiters, default "|"
	Fill        rune   // filled glyph, default '█'
	Empty       rune   // unfilled glyph, default '░'
	Width       int    // only used outside width-expanding rendering, default 22
	Colors      WidgetColors
}

func (b *Bar) Render(s *State) string {
	width := b.Width
	if width <= 0 {
		width = 22
	}
	return b.RenderWidth(s, width)
}

func (b *Bar) RenderWidth(s *State, width int) string {
	left, right := b.Left, b.Right
	if left == "" {
		left = "|"
	}
	if right == "" {
		right = "|"
	}
	fill, empty := b.Fill, b.Empty
	if fill == 0 {
		fill = barFull
	}
	if empty == 0 {
		empty = barEmpty
	}

	inner := width - Width(left) - Width(right)
	if inner < 1 {
		inner = 1
	}

	track := make([]rune, inner)
	for i := range track {
		track[i] = empty
	}

	if pct, ok := s.Percentage(); ok {
		frac := pct / 100
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		filled := int(frac * float64(inner))
		for i := 0; i < filled; i++ {
			track[i] = fill
		}
	} else if inner > 1 {
		// Bounce a marker across the track, one step per redraw
		period := 2 * (inner - 1)
		pos := int(s.Updates) % period
		if pos >= inner {
			pos = period - pos
		}
		track[pos] = fill
	}

	return b.Colors.apply(s, left+string(track)+right)
}

// formatDuration renders d as H:MM:SS with the hour field unbounded.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// Timer renders the elapsed time.
type Timer struct {
	Format string // default "Elapsed Time: %s"
	Colors WidgetColors
}

func (t Timer) Render(s *State) string {
	format := t.Format
	if format == "" {
		format = "Elapsed Time: %s"
	}
	return t.Colors.apply(s, fmt.Sprintf(format, formatDuration(s.TimeElapsed)))
}

// ETA estimates remaining time from the lifetime average speed. Before any
// progress, or with an unknown maximum, it renders a placeholder; on a
// finished bar it reports the total time instead.
type ETA struct {
	Colors WidgetColors
}

func (e ETA) Render(s *State) string {
	return e.Colors.apply(s, etaText(s, lifetimeRate(s)))
}

// lifetimeRate is the average progress per second since start.
func lifetimeRate(s *State) float64 {
	elapsed := s.TimeElapsed.Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Value-s.MinValue) / elapsed
}

func etaText(s *State, rate float64) string {
	if s.Finished() {
		return "Time:  " + formatDuration(s.TimeElapsed)
	}
	if !s.MaxKnown || rate <= 0 || s.Value <= s.MinValue {
		return "ETA:  --:--:--"
	}
	remaining := float64(s.MaxValue-s.Value) / rate
	return "ETA:   " + formatDuration(time.Duration(remaining*float64(time.Second)))
}

// AdaptiveETA estimates remaining time from a smoothed recent rate rather
// than the lifetime average, so late slowdowns shift the estimate quickly.
// Each instance owns its smoothing state exclusively.
type AdaptiveETA struct {
	// Smoothing defaults to a DEMA with alpha 0.3.
	Smoothing SmoothingAlgorithm
	Colors    WidgetColors

	lastValue int64
	lastTime  time.Time
	rate      float64
}

func (e *AdaptiveETA) Render(s *State) string {
	if e.Smoothing == nil {
		e.Smoothing = NewDEMA(0.3)
	}

	now := s.LastUpdateTime
	if !e.lastTime.IsZero() && now.After(e.lastTime) {
		dt := now.Sub(e.lastTime)
		instantaneous := float64(s.Value-e.lastValue) / dt.Seconds()
		e.rate = e.Smoothing.Update(instantaneous, dt)
	}
	e.lastValue, e.lastTime = s.Value, now

	rate := e.rate
	if rate <= 0 {
		rate = lifetimeRate(s)
	}
	return e.Colors.apply(s, etaText(s, rate))
}

// Counter renders the current value.
type Counter struct {
	Format string // default "%d"
	Colors WidgetColors
}

func (c Counter) Render(s *State) string {
	format := c.Format
	if format == "" {
		format = "%d"
	}
	return c.Colors.apply(s, fmt.Sprintf(format, s.Value))
}

// SimpleProgress renders "value of maximum".
type SimpleProgress struct {
	Colors WidgetColors
}

func (p SimpleProgress) Render(s *State) string {
	if !s.MaxKnown {
		return p.Colors.apply(s, fmt.Sprintf("%d of N/A", s.Value))
	}
	return p.Colors.apply(s, fmt.Sprintf("%d of %d", s.Value, s.MaxValue))
}

// Spinner frame sets.
var (
	BrailleFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
	ASCIIFrames   = []rune{'|', '/', '-', '\\'}
)

// AnimatedMarker cycles through its frames, advancing one frame per
// redraw.
type AnimatedMarker struct {
	Frames []rune // default BrailleFrames
	Colors WidgetColors
}

func (a AnimatedMarker) Render(s *State) string {
	frames := a.Frames
	if len(frames) == 0 {
		frames = BrailleFrames
	}
	if s.Finished() {
		return a.Colors.apply(s, string(frames[0]))
	}
	return a.Colors.apply(s, string(frames[int(s.Updates)%len(frames)]))
}

// Variable renders a user variable set at construction or through
// SetVariable.
type Variable struct {
	Name   string
	Format string // default "%s: %v"
	Colors WidgetColors
}

func (v Variable) Render(s *State) string {
	format := v.Format
	if format == "" {
		format = "%s: %v"
	}
	value, ok := s.Variables[v.Name]
	if !ok || value == nil {
		value = "-"
	}
	return v.Colors.apply(s, fmt.Sprintf(format, v.Name, value))
}

// humanBytes scales a byte quantity to a binary prefix.
func humanBytes(v float64) (scaled float64, prefix string) {
	prefixes := []string{"", "Ki", "Mi", "Gi", "Ti", "Pi"}
	i := 0
	for v >= 1024 && i < len(prefixes)-1 {
		v /= 1024
		i++
	}
	return v, prefixes[i]
}

// DataSize renders the current value as a humanized byte count.
type DataSize struct {
	Colors WidgetColors
}

func (d DataSize) Render(s *State) string {
	v, prefix := humanBytes(float64(s.Value))
	return d.Colors.apply(s, fmt.Sprintf("%6.1f %sB", v, prefix))
}

// TransferSpeed renders a humanized bytes-per-second rate smoothed over
// recent updates. Each instance owns its smoothing state exclusively.
type TransferSpeed struct {
	// Smoothing defaults to an EMA with alpha 0.3.
	Smoothing SmoothingAlgorithm
	Colors    WidgetColors

	lastValue int64
	lastTime  time.Time
	rate      float64
}

func (t *TransferSpeed) Render(s *State) string {
	if t.Smoothing == nil {
		t.Smoothing = NewEMA(0.3)
	}

	now := s.LastUpdateTime
	if !t.lastTime.IsZero() && now.After(t.lastTime) {
		dt := now.Sub(t.lastTime)
		instantaneous := float64(s.Value-t.lastValue) / dt.Seconds()
		t.rate = t.Smoothing.Update(instantaneous, dt)
	}
	t.lastValue, t.lastTime = s.Value, now

	rate := t.rate
	if rate <= 0 {
		rate = lifetimeRate(s)
	}
	if rate <= 0 {
		return t.Colors.apply(s, "  --- B/s")
	}
	v, prefix := humanBytes(rate)
	return t.Colors.apply(s, fmt.Sprintf("%6.1f %sB/s", v, prefix))
}

// DefaultWidgets returns the standard widget line: percentage, bar, timer
// and ETA for a known maximum; spinner, counter and timer otherwise.
func DefaultWidgets(maxKnown bool) []Widget {
	if maxKnown {
		return []Widget{
			Percentage{}, Label(" "),
			&Bar{}, Label(" "),
			Timer{}, Label(" "),
			ETA{},
		}
	}
	return []Widget{
		AnimatedMarker{}, Label(" "),
		Counter{}, Label(" "),
		Timer{},
	}
}

// DataTransferWidgets returns a widget line for byte-oriented work:
// percentage, size, bar, smoothed speed and adaptive ETA.
func DataTransferWidgets() []Widget {
	return []Widget{
		Percentage{}, Label(" "),
		DataSize{}, Label(" "),
		&Bar{}, Label(" "),
		&TransferSpeed{}, Label(" "),
		&AdaptiveETA{},
	}
}
