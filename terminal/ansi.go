// @focus: #terminal { ansi }
package terminal

import (
	"strconv"
	"strings"
)

const esc = "\x1b"

// CSI is a named control sequence template: ESC '[' args code.
// Builders are pure string producers, they perform no I/O.
type CSI struct {
	code     string
	defaults []int
}

// Seq declares a CSI builder with its final byte(s) and default arguments.
func Seq(code string, defaults ...int) CSI {
	return CSI{code: code, defaults: defaults}
}

// S renders the sequence with its default arguments.
func (c CSI) S() string {
	return c.N()
}

// N renders the sequence with explicit arguments, falling back to the
// declared defaults when called with none.
func (c CSI) N(args ...int) string {
	if len(args) == 0 {
		args = c.defaults
	}
	var b strings.Builder
	b.WriteString(esc)
	b.WriteByte('[')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(a))
	}
	b.WriteString(c.code)
	return b.String()
}

// Cursor movement and screen control sequences. Defaults follow the VT/xterm
// conventions: movement sequences move one cell, CUP homes to 1;1.
var (
	CUP          = Seq("H", 1, 1) // absolute cursor position (row;col)
	Up           = Seq("A", 1)
	Down         = Seq("B", 1)
	Right        = Seq("C", 1)
	Left         = Seq("D", 1)
	NextLine     = Seq("E", 1)
	PreviousLine = Seq("F", 1)
	Column       = Seq("G", 1)

	ClearScreen              = Seq("J", 0)
	ClearScreenTillEnd       = Seq("0J")
	ClearScreenTillStart     = Seq("1J")
	ClearScreenAll           = Seq("2J")
	ClearScreenAllAndHistory = Seq("3J")

	ClearLineAll   = Seq("K")
	ClearLineRight = Seq("0K")
	ClearLineLeft  = Seq("1K")
	ClearLine      = Seq("2K")

	ScrollUp   = Seq("S")
	ScrollDown = Seq("T")

	SaveCursor    = Seq("s")
	RestoreCursor = Seq("u")
	HideCursor    = Seq("?25l")
	ShowCursor    = Seq("?25h")
)

// SGR wraps text in a Select Graphic Rendition start/end code pair.
// Unlike a blanket SGR 0 reset, the end code only undoes the start code so
// nested styles survive.
type SGR struct {
	start, end int
}

// Apply styles text with the SGR pair.
func (s SGR) Apply(text string) string {
	return esc + "[" + strconv.Itoa(s.start) + "m" + text + esc + "[" + strconv.Itoa(s.end) + "m"
}

var (
	Bold            = SGR{1, 22}
	Faint           = SGR{2, 22}
	Italic          = SGR{3, 23}
	Underline       = SGR{4, 24}
	SlowBlink       = SGR{5, 25}
	FastBlink       = SGR{6, 25}
	Inverse         = SGR{7, 27}
	StrikeThrough   = SGR{9, 29}
	Gothic          = SGR{20, 10}
	DoubleUnderline = SGR{21, 24}
	Framed          = SGR{51, 54}
	Encircled       = SGR{52, 54}
	Overline        = SGR{53, 55}
)
