// Package pagefind builds search indexes for generated sites
// with the pagefind CLI.
package pagefind

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/linebuf"
)

// DefaultAssetSubdir is where pagefind writes its index and UI
// inside the site, unless told otherwise.
const DefaultAssetSubdir = "_/pagefind"

// CLI is a handle to the pagefind executable.
type CLI struct {
	// Pagefind is the path to the pagefind executable.
	// If unset, we'll search $PATH.
	Pagefind string

	// Log receives the output of the pagefind command, line by line.
	Log *log.Logger
}

// IndexRequest is a request to index a generated site.
type IndexRequest struct {
	// SiteDir is the path to the generated site.
	SiteDir string // required

	// AssetSubdir is where the index is written, relative to SiteDir.
	// Defaults to DefaultAssetSubdir.
	AssetSubdir string

	// Glob limits which pages are indexed, relative to SiteDir.
	// Defaults to all HTML pages.
	Glob string
}

func (r *IndexRequest) args() []string {
	assets := r.AssetSubdir
	if assets == "" {
		assets = DefaultAssetSubdir
	}

	args := []string{
		"--site", r.SiteDir,
		"--output-subdir", assets,
		"--verbose",
	}
	if r.Glob != "" {
		args = append(args, "--glob", r.Glob)
	}
	return args
}

// Index generates a search index for the site.
func (c *CLI) Index(ctx context.Context, req IndexRequest) error {
	if req.SiteDir == "" {
		return errtrace.Wrap(fmt.Errorf("pagefind: site directory is required"))
	}

	logger := c.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	exe := c.Pagefind
	if exe == "" {
		exe = "pagefind"
	}

	out := linebuf.NewWriter(func(line string) {
		logger.Print(line)
	})
	defer out.Flush()

	cmd := exec.CommandContext(ctx, exe, req.args()...)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return errtrace.Wrap(fmt.Errorf("pagefind: %w", err))
	}

	return nil
}
