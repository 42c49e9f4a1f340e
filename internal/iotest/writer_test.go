package iotest

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	*testing.T

	logs     []string
	cleanups []func()
}

func (t *fakeT) Logf(msg string, args ...any) {
	t.logs = append(t.logs, fmt.Sprintf(msg, args...))
}

func (t *fakeT) Cleanup(f func()) {
	t.cleanups = append(t.cleanups, f)
}

func (t *fakeT) finish() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	ft := fakeT{T: t}
	w := Writer(&ft)

	_, _ = io.WriteString(w, "generating ")
	_, _ = io.WriteString(w, "16 lessons\nwrote index.html\nwrote 4")
	assert.Equal(t, []string{"generating 16 lessons", "wrote index.html"}, ft.logs)

	ft.finish()
	assert.Equal(t, "wrote 4", ft.logs[len(ft.logs)-1], "partial line flushed at cleanup")
	assert.False(t, strings.HasSuffix(ft.logs[0], "\n"))
}
