package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrInvalidColorSupport reports an enable-colors request that is neither a
// recognized tri-state nor a concrete support level.
var ErrInvalidColorSupport = errors.New("terminal: invalid color support requested")

// ColorSupport is the color depth an output stream supports. Resolved once
// per stream at setup; there is no live renegotiation mid-run.
type ColorSupport uint32

const (
	ColorSupportNone      ColorSupport = 0
	ColorSupportXterm     ColorSupport = 16
	ColorSupportXterm256  ColorSupport = 256
	ColorSupportTrueColor ColorSupport = 1 << 24
)

// String returns a human-readable support level.
func (c ColorSupport) String() string {
	switch c {
	case ColorSupportNone:
		return "none"
	case ColorSupportXterm:
		return "16 colors"
	case ColorSupportXterm256:
		return "256 colors"
	case ColorSupportTrueColor:
		return "true color"
	}
	return fmt.Sprintf("ColorSupport(%d)", uint32(c))
}

const (
	colorsAuto = iota
	colorsOn
	colorsOff
	colorsExact
)

// EnableColors is a tri-state color request: auto-detect (the zero value),
// forced on, forced off, or an exact support level.
type EnableColors struct {
	mode  uint8
	level ColorSupport
}

var (
	ColorsAuto = EnableColors{mode: colorsAuto}
	ColorsOn   = EnableColors{mode: colorsOn}
	ColorsOff  = EnableColors{mode: colorsOff}
)

// ColorsExact requests a concrete support level, bypassing detection.
func ColorsExact(level ColorSupport) EnableColors {
	return EnableColors{mode: colorsExact, level: level}
}

// fdWriter is implemented by *os.File and anything else carrying a real
// file descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal. A non-nil
// override wins unconditionally; failure to query degrades to false.
func IsTerminal(w io.Writer, override *bool) bool {
	if override != nil {
		return *override
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ansiTermRe matches TERM values of terminals known to speak ANSI.
var ansiTermRe = regexp.MustCompile(`^(?i:([xe]|bv)term|(sco)?ansi|cygwin|konsole|linux|rxvt|screen|tmux|vt(10[02]|220|320))`)

// IsAnsiTerminal reports whether w is a terminal whose TERM value
// advertises ANSI escape sequence support.
func IsAnsiTerminal(w io.Writer) bool {
	if !IsTerminal(w, nil) {
		return false
	}
	return ansiTermRe.MatchString(strings.ToLower(os.Getenv("TERM")))
}

// jupyter reports whether the process runs inside a Jupyter notebook
// kernel, which renders ANSI true color regardless of TERM.
func jupyter() bool {
	return os.Getenv("JUPYTER_COLUMNS") != "" ||
		os.Getenv("JUPYTER_LINES") != "" ||
		os.Getenv("JPY_PARENT_PID") != ""
}

// ColorSupportFromEnv determines color depth from environment signals.
// TERM, COLORTERM and COLOR are scanned in that order; the first variable
// with a recognized marker wins. Notebook environments short-circuit to
// true color.
func ColorSupportFromEnv() ColorSupport {
	if jupyter() {
		return ColorSupportTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	color := strings.ToLower(os.Getenv("COLOR"))

	for _, value := range []string{term, colorterm, color} {
		switch {
		case strings.Contains(value, "24bit") || strings.Contains(value, "truecolor"):
			return ColorSupportTrueColor
		case strings.Contains(value, "256"):
			return ColorSupportXterm256
		case strings.Contains(value, "xterm"):
			return ColorSupportXterm
		}
	}

	return ColorSupportNone
}

// ResolveColorSupport turns an enable-colors request into a concrete
// support level for a stream whose ANSI capability is already known.
//
// Auto consults PROGRESS_ENABLE_COLORS, then the generic FORCE_COLOR, then
// falls back to the environment-detected level when the stream is an ANSI
// terminal. Forced on resolves to 256 colors, forced off to none, and an
// exact level passes through after validation.
func ResolveColorSupport(req EnableColors, ansiTerminal bool) (ColorSupport, error) {
	switch req.mode {
	case colorsAuto:
		if v, ok := envFlag("PROGRESS_ENABLE_COLORS"); ok && v {
			return ColorSupportXterm256, nil
		}
		if v, ok := envFlag("FORCE_COLOR"); ok && v {
			return ColorSupportXterm256, nil
		}
		if ansiTerminal {
			return ColorSupportFromEnv(), nil
		}
		return ColorSupportNone, nil
	case colorsOn:
		return ColorSupportXterm256, nil
	case colorsOff:
		return ColorSupportNone, nil
	case colorsExact:
		switch req.level {
		case ColorSupportNone, ColorSupportXterm, ColorSupportXterm256, ColorSupportTrueColor:
			return req.level, nil
		}
	}
	return ColorSupportNone, fmt.Errorf("%w: %v", ErrInvalidColorSupport, req.level)
}

// envFlag parses boolean-ish environment variables (y/n, yes/no, 1/0,
// true/false, on/off). ok is false when the variable is unset or holds an
// unknown value.
func envFlag(name string) (value, ok bool) {
	raw, present := os.LookupEnv(name)
	if !present {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "1", "true", "on":
		return true, true
	case "n", "no", "0", "false", "off":
		return false, true
	}
	return false, false
}
