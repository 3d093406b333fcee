//go:build !unix

package terminal

// Size returns fallback terminal dimensions on platforms without a winsize
// ioctl.
func Size(fd int) (width, height int) {
	return 80, 24
}

// WatchResize is a no-op on platforms without SIGWINCH. The returned nil
// channel never delivers, which is safe for consumers draining it with a
// non-blocking select.
func WatchResize(fd int) (events <-chan ResizeEvent, stop func()) {
	return nil, func() {}
}
