// Package iotest routes program output into test logs.
package iotest

import (
	"io"
	"testing"

	"go.abhg.dev/procnote/internal/linebuf"
)

// Writer builds an io.Writer that logs each line written to it
// with t.Logf.
//
// Partial lines are held until a newline arrives
// or the test finishes.
func Writer(t testing.TB) io.Writer {
	w := linebuf.NewWriter(func(line string) {
		t.Logf("%s", line)
	})
	t.Cleanup(w.Flush)
	return w
}
