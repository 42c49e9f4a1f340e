// Package errdefer runs deferred cleanup
// whose failure must still reach the caller.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	Do(err, closer.Close)
}

// Do calls fn and joins any error it returns with the given error.
//
// Use it inside a defer statement with a named return
// for cleanup that isn't an io.Closer.
func Do(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
