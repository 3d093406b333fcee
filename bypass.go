package progress

import (
	"bytes"
	"io"
	"time"

	"github.com/lixenwraith/progress/terminal"
)

// Bypass returns a writer that prints above the progress line. While the
// bar is running the current line is erased first and repainted after the
// payload, so interleaved log output never corrupts the bar. Outside that
// window writes pass straight through to the underlying stream.
//
// Like the bar itself, the writer is not safe for concurrent use.
func (b *ProgressBar) Bypass() io.Writer {
	return bypassWriter{bar: b}
}

type bypassWriter struct {
	bar *ProgressBar
}

func (w bypassWriter) Write(p []byte) (int, error) {
	b := w.bar
	if b.lineBreaks || !b.started || b.finished {
		return b.fd.Write(p)
	}

	var out bytes.Buffer
	out.WriteByte('\r')
	out.WriteString(terminal.ClearLineAll.S())
	out.Write(p)
	if len(p) == 0 || p[len(p)-1] != '\n' {
		out.WriteByte('\n')
	}
	out.WriteString(b.formatLine(time.Now()))

	if _, err := b.fd.Write(out.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
