package clipboard

import (
	"io"
	"log"

	sysclipboard "github.com/atotto/clipboard"
)

// Copier writes code samples to the clipboard.
type Copier struct {
	// Write places text on the clipboard.
	// Defaults to the system clipboard.
	Write func(string) error

	// Ack is triggered after every successful copy.
	// Optional.
	Ack *Ack

	// Log receives copy failures.
	// Defaults to discarding them.
	Log *log.Logger
}

// Copy places raw on the clipboard and acknowledges it.
//
// raw must be the sample text as authored,
// not an escaped or highlighted rendition.
//
// Failures are not reported to the caller:
// nothing is acknowledged and Copy returns false.
func (c *Copier) Copy(raw string) bool {
	write := c.Write
	if write == nil {
		write = sysclipboard.WriteAll
	}

	if err := write(raw); err != nil {
		c.logger().Printf("copy to clipboard: %v", err)
		return false
	}

	if c.Ack != nil {
		c.Ack.Trigger()
	}
	return true
}

// Supported reports whether the system clipboard is usable.
func Supported() bool {
	return !sysclipboard.Unsupported
}

func (c *Copier) logger() *log.Logger {
	if c.Log != nil {
		return c.Log
	}
	return log.New(io.Discard, "", 0)
}
