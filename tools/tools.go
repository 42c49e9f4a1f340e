//go:build tools

// Package tools pins the linters run against procnote.
//
//	go run github.com/mgechev/revive ./...
//	go run honnef.co/go/tools/cmd/staticcheck ./...
package tools

import (
	_ "github.com/mgechev/revive"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
