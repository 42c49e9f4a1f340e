// Package relative computes links between pages of a generated site
// with string manipulation exclusively.
package relative

import (
	"fmt"
	"path"
	"strings"
)

// Path returns a path to dst, relative to the directory src.
// Both paths must be relative or both paths must be absolute,
// and they must both be /-separated.
//
// This operation relies on string manipulation exclusively,
// so it doesn't fail.
func Path(src, dst string) string {
	if path.IsAbs(src) != path.IsAbs(dst) {
		panic(fmt.Sprintf("Path(%q, %q): both must be absolute, or both must be relative", src, dst))
	}
	// src must always be a directory.
	// Drop the trailing /, if any.
	src = strings.TrimSuffix(src, "/")

	srcParts, dstParts := removeCommonPrefix(split(src), split(dst))

	parts := make([]string, 0, len(srcParts)+len(dstParts))
	for range srcParts {
		parts = append(parts, "..")
	}
	parts = append(parts, dstParts...)
	return strings.Join(parts, "/")
}

// Dir returns a link to the directory dst from the directory src.
//
// Unlike [Path], the result always ends with "/",
// and it is "./" when both are the same directory.
// This is the form browsers need to resolve index pages.
func Dir(src, dst string) string {
	p := Path(src, strings.TrimSuffix(dst, "/"))
	if p == "" {
		return "./"
	}
	return p + "/"
}

func split(p string) []string {
	if len(p) == 0 {
		return nil
	}
	return strings.Split(p, "/")
}

// removeCommonPrefix removes the shared prefix from the two slices,
// returning what remains of each.
func removeCommonPrefix(a, b []string) (newA, newB []string) {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[n:], b[n:]
}
