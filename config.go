package progress

import (
	"io"
	"math"
	"time"

	"github.com/lixenwraith/progress/terminal"
)

// UnknownLength marks a bar whose maximum value is not known in advance.
// Percentage-driven widgets render their not-available form instead.
const UnknownLength int64 = math.MinInt64

// OutputConfig controls where and how the bar writes.
type OutputConfig struct {
	// Writer receives the rendered line plus control sequences.
	// Defaults to os.Stderr. The bar never opens or closes the stream.
	Writer io.Writer

	// IsTerminal overrides terminal detection on Writer. Nil auto-detects.
	IsTerminal *bool

	// LineBreaks writes every redraw on its own line instead of rewriting
	// the line in place. Nil defaults to true for non-terminal writers,
	// overridable through PROGRESS_LINE_BREAKS.
	LineBreaks *bool

	// EnableColors is the tri-state color request. The zero value
	// auto-detects from the stream and environment.
	EnableColors terminal.EnableColors

	// End terminates the bar on Finish. Empty defaults to "\n".
	End string
}

// ResizeConfig controls terminal width tracking.
type ResizeConfig struct {
	// TermWidth fixes the line width and disables the resize watcher.
	TermWidth int

	// NoWatch disables the SIGWINCH watcher while still sizing the line
	// from the terminal once at construction.
	NoWatch bool
}

// Config composes the independent concerns of a ProgressBar. The zero
// value is usable: an unknown-length bar on stderr with default widgets.
type Config struct {
	Output OutputConfig
	Resize ResizeConfig

	// MinValue and MaxValue bound the bar. MaxValue is UnknownLength (or
	// zero together with a zero MinValue) when the total is not known.
	MinValue int64
	MaxValue int64

	// InitialValue is the starting value; zero starts at MinValue.
	InitialValue int64

	// Widgets render the line in order. Nil selects a default set based
	// on whether the maximum is known at start time.
	Widgets []Widget

	// RightJustify pads the line on the left instead of the right.
	RightJustify bool

	// Prefix and Suffix wrap the rendered widgets.
	Prefix string
	Suffix string

	// PollInterval is the target redraw interval. Zero redraws as often
	// as MinPollInterval allows. The larger of the two governs.
	PollInterval time.Duration

	// MinPollInterval is the hard floor between redraws. It is clamped to
	// an absolute minimum of 50ms and can be raised, never lowered, via
	// PROGRESS_MINIMUM_UPDATE_INTERVAL.
	MinPollInterval time.Duration

	// WidthFunc measures the display width of a rendered line. Defaults
	// to an ANSI-aware rune width measure; override it for strings whose
	// width the default misjudges.
	WidthFunc func(string) int

	// MaxError makes Update fail with ErrValueTooLarge when a value
	// exceeds a known MaxValue instead of silently widening it.
	MaxError bool

	// Variables seeds the user variables readable by Variable widgets and
	// updatable through SetVariable.
	Variables map[string]any
}
