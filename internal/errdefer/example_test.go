package errdefer_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.abhg.dev/procnote/internal/errdefer"
)

func writePage(path, body string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	_, err = io.WriteString(f, body)
	return err
}

func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	if err := writePage(filepath.Join(dir, "index.html"), "<h1>Hello</h1>"); err != nil {
		panic(err)
	}
	fmt.Println("ok")
	// Output: ok
}
