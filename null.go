package progress

import "io"

// NullBar mirrors the ProgressBar method surface while producing no output
// at all. Useful behind a verbosity flag: callers drive the same lifecycle
// and nothing reaches any stream.
type NullBar struct {
	value    int64
	started  bool
	finished bool
}

// NewNull returns a bar that does absolutely nothing.
func NewNull() *NullBar {
	return &NullBar{}
}

func (b *NullBar) Start() error {
	b.started = true
	return nil
}

func (b *NullBar) StartMax(int64) error {
	b.started = true
	return nil
}

func (b *NullBar) Update(value int64) error {
	b.started = true
	b.value = value
	return nil
}

func (b *NullBar) ForceUpdate(value int64) error {
	return b.Update(value)
}

func (b *NullBar) Increment(delta int64) error {
	return b.Update(b.value + delta)
}

func (b *NullBar) Redraw() error { return nil }

func (b *NullBar) SetVariable(string, any) {}

func (b *NullBar) Finish() error {
	b.finished = true
	return nil
}

func (b *NullBar) FinishDirty() error {
	b.finished = true
	return nil
}

// Close implements io.Closer like ProgressBar.Close.
func (b *NullBar) Close() error {
	b.finished = true
	return nil
}

func (b *NullBar) Pause()        {}
func (b *NullBar) Resume() error { return nil }

func (b *NullBar) Value() int64 { return b.value }

// MaxValue always reports an unknown maximum.
func (b *NullBar) MaxValue() (int64, bool) { return 0, false }

func (b *NullBar) Started() bool  { return b.started }
func (b *NullBar) Finished() bool { return b.finished }

// Bypass discards everything written to it.
func (b *NullBar) Bypass() io.Writer { return io.Discard }
