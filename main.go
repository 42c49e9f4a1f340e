// procnote turns a curriculum of Processing lessons into a static website,
// or shows it in an interactive terminal reader.
//
// See -help for usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/browse"
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/errdefer"
	"go.abhg.dev/procnote/internal/highlight"
	"go.abhg.dev/procnote/internal/html"
	"go.abhg.dev/procnote/internal/pagefind"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	// runReader runs the terminal reader.
	// Replaced in tests because a terminal isn't available.
	runReader func(context.Context, *browse.Model) error
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, opts); err != nil {
		fmt.Fprintf(cmd.Stderr, "procnote: %v\n", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	logw, closeLog, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("open debug log: %w", err))
	}
	defer errdefer.Do(&err, closeLog)
	logger := log.New(logw, "", 0)

	catalog, fsys, err := loadCatalog(opts.Catalog)
	if err != nil {
		return errtrace.Wrap(err)
	}

	style, ok := highlight.LookupStyle(opts.Style)
	if !ok {
		return errtrace.Wrap(fmt.Errorf("unknown highlighting style %q: see -help=highlight", opts.Style))
	}

	if opts.Browse {
		m := browse.New(browse.Config{
			Catalog: catalog,
			FS:      fsys,
			Style:   style,
			Start:   opts.Start,
			Log:     logger,
		})

		run := cmd.runReader
		if run == nil {
			run = func(ctx context.Context, m *browse.Model) error {
				return browse.Run(ctx, m)
			}
		}
		return errtrace.Wrap(run(ctx, m))
	}

	gen := Generator{
		Log:     logger,
		Catalog: catalog,
		FS:      fsys,
		OutDir:  opts.OutputDir,
		Renderer: &html.Renderer{
			Catalog: catalog,
			Highlighter: &highlight.Highlighter{
				Style:      style,
				UseClasses: !opts.InlineStyles,
			},
			BasePath:      opts.Home,
			NoLineNumbers: !opts.LineNumbers,
			Pagefind:      opts.Pagefind.Bool(),
		},
	}
	if opts.Pagefind.Bool() {
		cli := pagefind.CLI{Log: logger}
		if p := opts.Pagefind.String(); p != "-" {
			cli.Pagefind = p
		}
		gen.Indexer = &cli
	}

	return errtrace.Wrap(gen.Generate(ctx))
}

// loadCatalog reads the catalog at the given path,
// or the built-in curriculum if the path is empty.
// Lesson documents are read from the returned file system.
func loadCatalog(path string) (*curriculum.Catalog, fs.FS, error) {
	if path == "" {
		return curriculum.Default(), curriculum.DefaultFS(), nil
	}

	fsys := os.DirFS(filepath.Dir(path))
	catalog, err := curriculum.Load(fsys, filepath.Base(path))
	if err != nil {
		return nil, nil, errtrace.Wrap(fmt.Errorf("load catalog %v: %w", path, err))
	}
	return catalog, fsys, nil
}
