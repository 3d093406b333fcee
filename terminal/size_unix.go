//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Size returns the terminal dimensions for fd
func Size(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

// WatchResize starts a SIGWINCH listener that delivers the latest terminal
// size on a capacity-1 channel. The watcher never blocks: a pending unread
// event is dropped and replaced by the newest one, so consumers that drain
// the channel lazily always observe the current size. The returned stop
// function detaches the signal handler and waits for the goroutine to exit.
func WatchResize(fd int) (events <-chan ResizeEvent, stop func()) {
	eventCh := make(chan ResizeEvent, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				w, h := Size(fd)
				if w <= 0 || h <= 0 {
					continue
				}
				ev := ResizeEvent{Width: w, Height: h}
				// Non-blocking send, drop old event if not consumed
				select {
				case eventCh <- ev:
				default:
					select {
					case <-eventCh:
					default:
					}
					select {
					case eventCh <- ev:
					default:
					}
				}
			}
		}
	}()

	var once sync.Once
	return eventCh, func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stopCh)
			<-doneCh
		})
	}
}
