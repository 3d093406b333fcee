package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// cursorQuery is the DSR cursor position request; the terminal answers with
// ESC [ row ; col R on the input side of the same stream.
const cursorQuery = esc + "[6n"

// cprMu serializes cursor position round trips. The read loop consumes
// arbitrary bytes from the stream, so interleaved queries would steal each
// other's reply.
var cprMu sync.Mutex

type flusher interface {
	Flush() error
}

// CursorPosition writes a cursor position request to rw and blocks reading
// single bytes until the 'R' terminator arrives, then parses the reported
// row and column.
//
// There is no timeout: a terminal that never replies blocks this call
// forever. Callers needing bounded latency must wrap it with their own
// timeout or cancellation. Concurrent callers on the same stream are
// serialized.
func CursorPosition(rw io.ReadWriter) (row, col int, err error) {
	cprMu.Lock()
	defer cprMu.Unlock()

	// The reply arrives on the input side without a newline, so the stream
	// must be in raw mode for unbuffered single-byte reads.
	if f, ok := rw.(fdWriter); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			old, rerr := term.MakeRaw(fd)
			if rerr == nil {
				defer term.Restore(fd, old)
			}
		}
	}

	if _, err = io.WriteString(rw, cursorQuery); err != nil {
		return 0, 0, fmt.Errorf("cursor query write: %w", err)
	}
	if f, ok := rw.(flusher); ok {
		if err = f.Flush(); err != nil {
			return 0, 0, fmt.Errorf("cursor query flush: %w", err)
		}
	} else if f, ok := rw.(*os.File); ok {
		f.Sync()
	}

	var reply []byte
	one := make([]byte, 1)
	for {
		n, rerr := rw.Read(one)
		if rerr != nil {
			return 0, 0, fmt.Errorf("cursor reply read: %w", rerr)
		}
		if n == 0 {
			continue
		}
		reply = append(reply, one[0])
		if one[0] == 'R' {
			break
		}
	}

	return parseCursorReply(reply)
}

// parseCursorReply extracts the numeric fields between the ESC [ prefix and
// the R terminator.
func parseCursorReply(reply []byte) (row, col int, err error) {
	s := string(reply)
	start := strings.LastIndex(s, esc+"[")
	if start < 0 || !strings.HasSuffix(s, "R") {
		return 0, 0, fmt.Errorf("cursor reply: malformed response %q", s)
	}
	fields := strings.Split(s[start+2:len(s)-1], ";")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("cursor reply: expected row;col in %q", s)
	}
	if row, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("cursor reply: bad row in %q", s)
	}
	if col, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("cursor reply: bad column in %q", s)
	}
	return row, col, nil
}
