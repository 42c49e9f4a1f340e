// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=path".
//
//	-x        write to a fallback, usually stderr
//	-x=path   write to the file at path
//
// When the flag is absent, output is discarded.
type FileSwitch string

// _stdout is recorded for a bare "-x".
const _stdout = "-"

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file path, "-" for a bare flag,
// or an empty string if the flag was not passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

func (fs *FileSwitch) String() string { return string(*fs) }

// IsBoolFlag allows the flag to be passed without a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = _stdout
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination of this flag for writing.
// The returned function releases it.
//
//   - flag not passed: writes are discarded
//   - flag passed without a value: writes go to fallback
//   - flag passed with a path: the file is created,
//     along with any missing parent directories
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, done func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case _stdout:
		return fallback, nopClose, nil
	}

	path := string(*fs)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errtrace.Wrap(fmt.Errorf("create %v: %w", path, err))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return f, f.Close, nil
}

func nopClose() error { return nil }
