package terminal

import "testing"

func TestSizeFallback(t *testing.T) {
	// An invalid descriptor cannot be queried; the conventional 80x24
	// fallback applies.
	w, h := Size(-1)
	if w != 80 || h != 24 {
		t.Errorf("Size(-1) = %d, %d, want 80, 24", w, h)
	}
}

func TestWatchResizeStop(t *testing.T) {
	events, stop := WatchResize(-1)
	select {
	case <-events:
		t.Error("unexpected resize event")
	default:
	}
	stop()
	// A second stop must be harmless
	stop()
}
