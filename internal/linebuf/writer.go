// Package linebuf splits streamed output into lines.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

// Writer is an io.Writer that calls a function
// once for every complete line written to it.
//
// Lines are reported without their trailing newline.
// A trailing "\r" is dropped too,
// so output from Windows programs reads the same.
//
// Writer is safe for concurrent use,
// so the same Writer may serve as both stdout and stderr
// of a child process.
type Writer struct {
	line func(string)

	mu      sync.Mutex
	partial bytes.Buffer // text after the last newline
}

var _ io.Writer = (*Writer)(nil)

// NewWriter builds a Writer reporting lines to fn.
// Call Flush when done writing to report any final partial line.
func NewWriter(fn func(line string)) *Writer {
	return &Writer{line: fn}
}

func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(bs)
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.partial.Write(bs)
			return n, nil
		}

		line := bs[:idx]
		bs = bs[idx+1:]
		if w.partial.Len() > 0 {
			w.partial.Write(line)
			line = w.partial.Bytes()
		}
		w.emit(line)
		w.partial.Reset()
	}
}

// Flush reports the buffered partial line, if any.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.partial.Len() > 0 {
		w.emit(w.partial.Bytes())
		w.partial.Reset()
	}
}

func (w *Writer) emit(line []byte) {
	w.line(string(bytes.TrimSuffix(line, []byte{'\r'})))
}
