package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/content"
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/errdefer"
	"go.abhg.dev/procnote/internal/html"
	"go.abhg.dev/procnote/internal/nav"
	"go.abhg.dev/procnote/internal/pagefind"
)

// Renderer renders pages of the site to HTML.
type Renderer interface {
	WriteStatic(string) error
	RenderHome(io.Writer, *html.HomeInfo) error
	RenderLesson(io.Writer, *html.LessonInfo) error
	RenderNotFound(io.Writer, *html.NotFoundInfo) error
}

var _ Renderer = (*html.Renderer)(nil)

// Indexer builds a search index over a generated site.
type Indexer interface {
	Index(context.Context, pagefind.IndexRequest) error
}

var _ Indexer = (*pagefind.CLI)(nil)

// Generator generates a static site for a curriculum.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Renderer Renderer
	Catalog  *curriculum.Catalog

	// FS holds the lesson documents referenced by Catalog.
	FS fs.FS

	OutDir string

	// Indexer, if set, indexes the site after it is written.
	Indexer Indexer
}

// Generate writes the full site into OutDir.
func (g *Generator) Generate(ctx context.Context) error {
	if err := g.Renderer.WriteStatic(g.OutDir); err != nil {
		return errtrace.Wrap(fmt.Errorf("write static files: %w", err))
	}

	if err := g.renderHome(); err != nil {
		return err
	}

	ctrl := nav.New(g.Catalog)
	for _, lesson := range g.Catalog.Lessons() {
		if err := g.renderLesson(ctrl, lesson); err != nil {
			return err
		}
	}

	if err := g.renderNotFound(); err != nil {
		return err
	}

	if g.Indexer == nil {
		return nil
	}

	g.Log.Printf("Indexing %v", g.OutDir)
	return errtrace.Wrap(g.Indexer.Index(ctx, pagefind.IndexRequest{
		SiteDir: g.OutDir,
		Glob:    "**/index.html",
	}))
}

func (g *Generator) renderHome() error {
	g.Log.Printf("Rendering home page")

	var info html.HomeInfo
	if g.Catalog.Len() > 0 {
		start := g.Catalog.At(0)
		info.Start = &start
	}

	return errtrace.Wrap(g.writePage("index.html", func(w io.Writer) error {
		return g.Renderer.RenderHome(w, &info)
	}))
}

func (g *Generator) renderLesson(ctrl *nav.Controller, lesson curriculum.Lesson) error {
	g.Log.Printf("Rendering lesson %v", lesson.ID)

	src, err := curriculum.ReadContent(g.FS, lesson)
	if err != nil {
		return errtrace.Wrap(err)
	}

	doc, err := content.Parse(bytes.NewReader(src))
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("lesson %q: %w", lesson.ID, err))
	}

	info := html.LessonInfo{
		Lesson:   lesson,
		Document: doc,
		Prev:     g.neighbor(ctrl.Prev(lesson.ID)),
	}
	if next, ok := ctrl.Next(lesson.ID); ok {
		n := g.neighbor(nav.Lesson(next))
		info.Next = &n
	}

	name := filepath.Join(filepath.FromSlash(html.LessonPath(lesson.ID)), "index.html")
	return errtrace.Wrap(g.writePage(name, func(w io.Writer) error {
		if err := g.Renderer.RenderLesson(w, &info); err != nil {
			return fmt.Errorf("render %q: %w", lesson.ID, err)
		}
		return nil
	}))
}

func (g *Generator) renderNotFound() error {
	g.Log.Printf("Rendering not-found page")

	return errtrace.Wrap(g.writePage(html.NotFoundPage, func(w io.Writer) error {
		return g.Renderer.RenderNotFound(w, &html.NotFoundInfo{})
	}))
}

// neighbor labels a view for the prev/next footer.
func (g *Generator) neighbor(v nav.ViewState) html.Neighbor {
	label := "Overview"
	if v.Kind() == nav.LessonView {
		if l, _, ok := g.Catalog.Lookup(v.ID()); ok {
			label = l.Title
		}
	}
	return html.Neighbor{View: v, Label: label}
}

// writePage creates the file at name inside OutDir
// and fills it with the output of render.
func (g *Generator) writePage(name string, render func(io.Writer) error) (err error) {
	path := filepath.Join(g.OutDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(render(f))
}
