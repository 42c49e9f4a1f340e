// Package must asserts program invariants.
// A violated invariant is a programming or packaging error,
// so the program panics instead of returning an error.
package must

import "fmt"

// NotErrorf panics with the given message if err is not nil.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("%v: %v", fmt.Sprintf(format, args...), err))
	}
}

// Truef panics with the given message if cond is false.
func Truef(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
