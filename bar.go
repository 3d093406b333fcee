package progress

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/progress/terminal"
)

// minimumUpdateInterval is the absolute redraw floor. Configuration and the
// PROGRESS_MINIMUM_UPDATE_INTERVAL variable can only raise it.
const minimumUpdateInterval = 50 * time.Millisecond

// defaultTermWidth is used when the width cannot be determined at all.
const defaultTermWidth = 80

// ansiEscapeRe strips CSI sequences before width measurement.
var ansiEscapeRe = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Width measures the display width of s, ignoring embedded ANSI escape
// sequences and accounting for wide runes.
func Width(s string) int {
	return runewidth.StringWidth(ansiEscapeRe.ReplaceAllString(s, ""))
}

// ProgressBar renders a dynamically updating progress line on an output
// stream. The state machine is unstarted → running → finished, with an
// orthogonal paused flag.
//
// All update and redraw logic runs synchronously on the caller's
// goroutine; no background work drives redraws. The only goroutine the bar
// may own is the resize watcher, which communicates through a channel
// drained at the top of each update.
type ProgressBar struct {
	cfg Config

	fd             io.Writer
	isTerminal     bool
	isAnsiTerminal bool
	lineBreaks     bool
	colorSupport   terminal.ColorSupport
	end            string

	termWidth  int
	resizeCh   <-chan terminal.ResizeEvent
	stopResize func()

	widgets         []Widget
	widthFunc       func(string) int
	pollInterval    time.Duration
	minPollInterval time.Duration

	started  bool
	finished bool
	paused   bool

	// lastLineWidth is the display width of the previous repaint; a
	// narrower line leaves stale columns that need clearing.
	lastLineWidth int

	minValue      int64
	maxValue      int64
	maxKnown      bool
	value         int64
	previousValue int64
	hasPrevious   bool

	startTime      time.Time
	endTime        time.Time
	lastUpdateTime time.Time
	updates        int64

	variables map[string]any
}

// New builds a ProgressBar from cfg. Construction resolves the stream's
// terminal-ness, ANSI capability and color support once; they stay fixed
// for the bar's lifetime.
func New(cfg Config) (*ProgressBar, error) {
	b := &ProgressBar{cfg: cfg}

	b.minValue = cfg.MinValue
	b.maxValue = cfg.MaxValue
	b.maxKnown = cfg.MaxValue != UnknownLength && !(cfg.MaxValue == 0 && cfg.MinValue == 0)
	if b.maxKnown && b.maxValue < b.minValue {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidRange, b.maxValue, b.minValue)
	}

	b.fd = cfg.Output.Writer
	if b.fd == nil {
		b.fd = os.Stderr
	}
	b.isTerminal = terminal.IsTerminal(b.fd, cfg.Output.IsTerminal)
	b.isAnsiTerminal = b.isTerminal && terminal.IsAnsiTerminal(b.fd)

	support, err := terminal.ResolveColorSupport(cfg.Output.EnableColors, b.isAnsiTerminal)
	if err != nil {
		return nil, err
	}
	b.colorSupport = support

	b.lineBreaks = lineBreaksDefault(cfg.Output.LineBreaks, b.isTerminal)

	b.end = cfg.Output.End
	if b.end == "" {
		b.end = "\n"
	}

	b.widthFunc = cfg.WidthFunc
	if b.widthFunc == nil {
		b.widthFunc = Width
	}

	b.pollInterval = cfg.PollInterval
	b.minPollInterval = cfg.MinPollInterval
	if b.minPollInterval < minimumUpdateInterval {
		b.minPollInterval = minimumUpdateInterval
	}
	if env := envMinPollInterval(); env > b.minPollInterval {
		b.minPollInterval = env
	}

	b.resolveTermWidth()

	b.widgets = append([]Widget(nil), cfg.Widgets...)

	b.variables = make(map[string]any, len(cfg.Variables))
	for k, v := range cfg.Variables {
		b.variables[k] = v
	}

	b.init()
	return b, nil
}

// lineBreaksDefault resolves the line-break mode: explicit config wins,
// then PROGRESS_LINE_BREAKS, then line breaks on non-terminal streams.
func lineBreaksDefault(explicit *bool, isTerminal bool) bool {
	if explicit != nil {
		return *explicit
	}
	if v, ok := envFlag("PROGRESS_LINE_BREAKS"); ok {
		return v
	}
	return !isTerminal
}

// resolveTermWidth establishes the initial line width and, for terminals
// without a fixed width, attaches the resize watcher.
func (b *ProgressBar) resolveTermWidth() {
	if b.cfg.Resize.TermWidth > 0 {
		b.termWidth = b.cfg.Resize.TermWidth
		return
	}

	b.termWidth = defaultTermWidth
	f, ok := b.fd.(*os.File)
	if !ok || !b.isTerminal {
		return
	}

	w, _ := terminal.Size(int(f.Fd()))
	if w > 0 {
		b.termWidth = w
	}
	if !b.cfg.Resize.NoWatch {
		b.resizeCh, b.stopResize = terminal.WatchResize(int(f.Fd()))
	}
}

// drainResize applies the latest pending resize event, if any. Called at
// the top of every redraw so the width used is always current.
func (b *ProgressBar) drainResize() {
	select {
	case ev, ok := <-b.resizeCh:
		if ok && ev.Width > 0 {
			b.termWidth = ev.Width
		}
	default:
	}
}

// init resets all counters so the bar can be used (again).
func (b *ProgressBar) init() {
	b.started = false
	b.finished = false
	b.paused = false
	b.lastUpdateTime = time.Time{}
	b.startTime = time.Time{}
	b.endTime = time.Time{}
	b.value = b.minValue
	if b.cfg.InitialValue > b.minValue {
		b.value = b.cfg.InitialValue
	}
	b.previousValue = 0
	b.hasPrevious = false
	b.updates = 0
	b.lastLineWidth = 0
}

// Start transitions the bar to running, records the start time and forces
// an initial redraw at the starting value.
func (b *ProgressBar) Start() error {
	return b.start(b.maxValue, b.maxKnown)
}

// StartMax is Start with the maximum value supplied late, typically when
// the total only becomes known at run time.
func (b *ProgressBar) StartMax(maxValue int64) error {
	return b.start(maxValue, maxValue != UnknownLength)
}

func (b *ProgressBar) start(maxValue int64, known bool) error {
	if b.started && !b.finished {
		return nil
	}
	if known && maxValue < b.minValue {
		return fmt.Errorf("%w: %d < %d", ErrInvalidRange, maxValue, b.minValue)
	}

	b.init()
	b.maxValue, b.maxKnown = maxValue, known
	if b.widgets == nil {
		b.widgets = DefaultWidgets(b.maxKnown)
	}

	b.started = true
	b.startTime = time.Now()
	return b.update(b.value, false, true)
}

// Update records a new value and redraws when the throttling policy says a
// redraw is due. Values arriving between redraws are still recorded.
func (b *ProgressBar) Update(value int64) error {
	return b.update(value, true, false)
}

// ForceUpdate records a new value and redraws immediately, bypassing the
// throttling policy.
func (b *ProgressBar) ForceUpdate(value int64) error {
	return b.update(value, true, true)
}

// Increment advances the bar by delta.
func (b *ProgressBar) Increment(delta int64) error {
	return b.update(b.value+delta, true, false)
}

// Redraw forces an immediate redraw at the current value.
func (b *ProgressBar) Redraw() error {
	return b.update(b.value, false, true)
}

// SetVariable updates a user variable; the change shows on the next
// redraw.
func (b *ProgressBar) SetVariable(name string, value any) {
	b.variables[name] = value
}

// update is the central operation: record the value, consult the throttle
// gate, and drive the render cycle when due.
func (b *ProgressBar) update(value int64, hasValue, force bool) error {
	if !b.started {
		if err := b.start(b.maxValue, b.maxKnown); err != nil {
			return err
		}
	}
	if b.finished {
		return nil
	}

	if hasValue {
		if b.maxKnown && value > b.maxValue {
			if b.cfg.MaxError {
				return fmt.Errorf("%w: %d > %d", ErrValueTooLarge, value, b.maxValue)
			}
			b.maxValue = value
		}
		b.previousValue, b.hasPrevious = b.value, true
		b.value = value
	}

	if !b.needsRedraw(force) {
		return nil
	}

	b.drainResize()
	now := time.Now()
	b.updates++
	b.lastUpdateTime = now

	end := ""
	if b.lineBreaks {
		end = "\n"
	}
	return b.draw(now, end)
}

// needsRedraw applies the throttling policy: forced updates and the very
// first update always draw, reaching a known maximum always draws, and
// otherwise a wall-clock gate of max(PollInterval, MinPollInterval) since
// the last redraw governs. The paused flag suppresses all output.
func (b *ProgressBar) needsRedraw(force bool) bool {
	if b.paused {
		return false
	}
	if force || b.lastUpdateTime.IsZero() {
		return true
	}
	if b.maxKnown && b.value >= b.maxValue {
		return true
	}
	gate := b.minPollInterval
	if b.pollInterval > gate {
		gate = b.pollInterval
	}
	return time.Since(b.lastUpdateTime) >= gate
}

// State returns the current snapshot, the same view widgets receive.
func (b *ProgressBar) State() *State {
	return b.snapshot(time.Now())
}

func (b *ProgressBar) snapshot(now time.Time) *State {
	elapsed := time.Duration(0)
	if !b.startTime.IsZero() {
		elapsed = now.Sub(b.startTime)
	}
	return &State{
		MinValue:       b.minValue,
		MaxValue:       b.maxValue,
		MaxKnown:       b.maxKnown,
		Value:          b.value,
		PreviousValue:  b.previousValue,
		HasPrevious:    b.hasPrevious,
		StartTime:      b.startTime,
		LastUpdateTime: b.lastUpdateTime,
		EndTime:        b.endTime,
		Updates:        b.updates,
		TimeElapsed:    elapsed,
		ColorSupport:   b.colorSupport,
		Variables:      b.variables,
	}
}

// formatLine renders the widgets in order and justifies the result to the
// terminal width. Expanding widgets split the width their fixed siblings
// leave over.
func (b *ProgressBar) formatLine(now time.Time) string {
	s := b.snapshot(now)

	parts := make([]string, len(b.widgets))
	fixedWidth := b.widthFunc(b.cfg.Prefix) + b.widthFunc(b.cfg.Suffix)
	var expanding []int
	for i, w := range b.widgets {
		if _, ok := w.(WidthAware); ok {
			expanding = append(expanding, i)
			continue
		}
		parts[i] = w.Render(s)
		fixedWidth += b.widthFunc(parts[i])
	}

	if len(expanding) > 0 {
		remaining := b.termWidth - fixedWidth
		share := remaining / len(expanding)
		if share < 0 {
			share = 0
		}
		for _, i := range expanding {
			parts[i] = b.widgets[i].(WidthAware).RenderWidth(s, share)
		}
	}

	line := b.cfg.Prefix + strings.Join(parts, "") + b.cfg.Suffix

	padding := b.termWidth - b.widthFunc(line)
	if padding <= 0 {
		return line
	}
	pad := strings.Repeat(" ", padding)
	if b.cfg.RightJustify {
		return pad + line
	}
	return line + pad
}

// draw writes the formatted line in a single Write call, preceded by the
// control sequences needed to repaint in place. When the line got narrower,
// typically after a terminal shrink, the remainder of the old line is
// cleared so no stale columns survive the repaint.
func (b *ProgressBar) draw(now time.Time, end string) error {
	line := b.formatLine(now)
	width := b.widthFunc(line)

	var out bytes.Buffer
	if !b.lineBreaks {
		out.WriteByte('\r')
	}
	out.WriteString(line)
	if !b.lineBreaks && width < b.lastLineWidth {
		out.WriteString(terminal.ClearLineRight.S())
	}
	b.lastLineWidth = width
	out.WriteString(end)

	_, err := b.fd.Write(out.Bytes())
	return err
}

// Finish completes the bar: the value is forced to a known maximum, one
// final forced redraw is written and the end string terminates the line.
// Finishing an already finished bar is a no-op.
func (b *ProgressBar) Finish() error {
	return b.finish(false)
}

// FinishDirty completes the bar while keeping the current value, so an
// aborted run is not displayed as 100%.
func (b *ProgressBar) FinishDirty() error {
	return b.finish(true)
}

func (b *ProgressBar) finish(dirty bool) error {
	if b.finished {
		return nil
	}
	if !b.started {
		b.finished = true
		return nil
	}

	b.endTime = time.Now()

	var err error
	if dirty {
		_, err = io.WriteString(b.fd, b.end)
	} else {
		if b.maxKnown {
			b.previousValue, b.hasPrevious = b.value, true
			b.value = b.maxValue
		}
		b.updates++
		b.lastUpdateTime = b.endTime
		err = b.draw(b.endTime, b.end)
	}

	b.finished = true
	b.stopResizeWatcher()
	b.flush()
	return err
}

// Close implements io.Closer as a scope guard: deferring Close right after
// construction guarantees a started bar is finished on scope exit.
// Failures during this best-effort cleanup are swallowed, never surfaced.
func (b *ProgressBar) Close() error {
	if b.started && !b.finished {
		_ = b.finish(false)
	}
	return nil
}

// Pause suppresses redraws while values continue to be recorded.
func (b *ProgressBar) Pause() {
	b.paused = true
}

// Resume re-enables redraws and forces one immediately.
func (b *ProgressBar) Resume() error {
	if !b.paused {
		return nil
	}
	b.paused = false
	if !b.started || b.finished {
		return nil
	}
	return b.update(b.value, false, true)
}

// Value returns the current value.
func (b *ProgressBar) Value() int64 {
	return b.value
}

// MaxValue returns the current maximum; known is false for unknown-length
// bars.
func (b *ProgressBar) MaxValue() (maxValue int64, known bool) {
	return b.maxValue, b.maxKnown
}

// Started reports whether Start has run.
func (b *ProgressBar) Started() bool {
	return b.started
}

// Finished reports whether the bar has completed.
func (b *ProgressBar) Finished() bool {
	return b.finished
}

// TermWidth returns the width the next redraw will use.
func (b *ProgressBar) TermWidth() int {
	return b.termWidth
}

func (b *ProgressBar) stopResizeWatcher() {
	if b.stopResize != nil {
		b.stopResize()
		b.stopResize = nil
		b.resizeCh = nil
	}
}

func (b *ProgressBar) flush() {
	type flusher interface {
		Flush() error
	}
	if f, ok := b.fd.(flusher); ok {
		f.Flush()
	}
}
