// Package html renders the curriculum as a static HTML site.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/content"
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/highlight"
	"go.abhg.dev/procnote/internal/nav"
	"go.abhg.dev/procnote/internal/relative"
)

// StaticDir is the directory inside the site holding static assets.
const StaticDir = "_"

// NotFoundPage is the file name of the not-found page.
// Most static hosts serve this for unknown paths.
const NotFoundPage = "404.html"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/**
	_staticFS embed.FS

	// Trick borrowed from pkgsite:
	// Unusable function references at parse time,
	// and then Clone and replace at render time.
	// This way, template validity is still
	// verified at init.
	_homeTmpl     = parsePage("tmpl/home.html")
	_lessonTmpl   = parsePage("tmpl/lesson.html")
	_notFoundTmpl = parsePage("tmpl/notfound.html")
)

func parsePage(name string) *template.Template {
	return template.Must(
		template.New(path.Base(name)).
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, name, "tmpl/layout.html", "tmpl/sidebar.html"),
	)
}

// Highlighter renders Processing code into HTML.
type Highlighter interface {
	content.Highlighter

	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders pages of the site.
type Renderer struct {
	// Catalog is the curriculum being rendered.
	Catalog *curriculum.Catalog // required

	// Highlighter renders code samples into HTML.
	Highlighter Highlighter // required

	// BasePath is the URL path the site is served from,
	// e.g. "/" or "/procnote/".
	//
	// Pages link to each other with relative paths,
	// except for the not-found page.
	// That page may be served at any URL,
	// so it links with absolute paths under BasePath.
	// Defaults to "/".
	BasePath string

	// NoLineNumbers turns off line numbers in all code samples.
	NoLineNumbers bool

	// Pagefind adds the pagefind search UI to every page.
	// The index must be generated separately.
	Pagefind bool
}

// WriteStatic dumps the contents of static/ into the given directory.
//
// The highlighter's stylesheet is appended to main.css.
func (r *Renderer) WriteStatic(dir string) error {
	dir = filepath.Join(dir, StaticDir)
	static, err := fs.Sub(_staticFS, "static")
	if err != nil {
		return errtrace.Wrap(err)
	}
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return err
		}

		outPath := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return errtrace.Wrap(os.MkdirAll(outPath, 0o755))
		}

		bs, err := fs.ReadFile(static, path)
		if err != nil {
			return errtrace.Wrap(err)
		}

		if path == "css/main.css" && r.Highlighter != nil {
			buff := bytes.NewBuffer(bs)
			buff.WriteString("\n")
			if err := r.Highlighter.WriteCSS(buff); err != nil {
				return errtrace.Wrap(fmt.Errorf("write highlight CSS: %w", err))
			}
			bs = buff.Bytes()
		}

		return errtrace.Wrap(os.WriteFile(outPath, bs, 0o644))
	})
}

// LessonPath is the directory of a lesson page inside the site.
// The page itself is index.html inside it.
func LessonPath(id string) string { return id }

// HomeInfo is the data for the home page.
type HomeInfo struct {
	// Start is the first lesson, if any.
	Start *curriculum.Lesson
}

// RenderHome renders the overview page.
func (r *Renderer) RenderHome(w io.Writer, info *HomeInfo) error {
	render := r.newRender("", nav.Home())
	return errtrace.Wrap(render.execute(w, _homeTmpl, info))
}

// Neighbor is a lesson page's link to an adjacent view.
type Neighbor struct {
	View  nav.ViewState
	Label string
}

// LessonInfo is the data for a lesson page.
type LessonInfo struct {
	Lesson   curriculum.Lesson
	Document *content.Document // required

	// Prev is the view before the lesson: Home or another lesson.
	Prev Neighbor

	// Next is the following lesson, or nil for the last one.
	Next *Neighbor
}

// CategoryTitle is the short title of the lesson's chapter.
func (info *LessonInfo) CategoryTitle() string {
	return info.Lesson.Category.Title()
}

// RenderLesson renders the page for a single lesson.
func (r *Renderer) RenderLesson(w io.Writer, info *LessonInfo) error {
	render := r.newRender(LessonPath(info.Lesson.ID), nav.Lesson(info.Lesson.ID))
	return errtrace.Wrap(render.execute(w, _lessonTmpl, info))
}

// NotFoundInfo is the data for the not-found page.
type NotFoundInfo struct {
	// ID is the requested lesson id, if known.
	ID string
}

// RenderNotFound renders the page shown for unknown lessons.
// It links back Home.
func (r *Renderer) RenderNotFound(w io.Writer, info *NotFoundInfo) error {
	render := r.newRender("", nav.NotFound(info.ID))
	render.Absolute = true
	return errtrace.Wrap(render.execute(w, _notFoundTmpl, info))
}

func (r *Renderer) newRender(dir string, view nav.ViewState) *render {
	base := r.BasePath
	if base == "" {
		base = "/"
	}
	return &render{
		Path:          dir,
		View:          view,
		BasePath:      base,
		Catalog:       r.Catalog,
		Highlighter:   r.Highlighter,
		NoLineNumbers: r.NoLineNumbers,
		Pagefind:      r.Pagefind,
	}
}

// render holds the state for rendering a single page.
type render struct {
	// Path is the directory of the page inside the site.
	Path string

	// View is the view the page shows.
	View nav.ViewState

	// Absolute asks for links rooted at BasePath
	// instead of relative links.
	Absolute bool
	BasePath string

	Catalog       *curriculum.Catalog
	Highlighter   Highlighter
	NoLineNumbers bool
	Pagefind      bool
}

func (r *render) execute(w io.Writer, tmpl *template.Template, data any) error {
	return template.Must(tmpl.Clone()).
		Funcs(r.FuncMap()).
		ExecuteTemplate(w, "Page", data)
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"site":      r.site,
		"sidebar":   r.sidebar,
		"static":    r.static,
		"homeURL":   r.homeURL,
		"viewURL":   r.viewURL,
		"lessonURL": r.lessonURL,
		"document":  r.document,
		"pagefind":  func() bool { return r.Pagefind },
		"isHome":    func() bool { return r.View.IsHome() },
	}
}

func (r *render) site() curriculum.Site {
	return r.Catalog.Site()
}

// SidebarGroup is a chapter in the sidebar.
type SidebarGroup struct {
	Number  int
	Title   string
	Lessons []SidebarItem
}

// SidebarItem is a lesson in the sidebar.
type SidebarItem struct {
	ID     string
	Title  string
	Active bool
}

func (r *render) sidebar() []SidebarGroup {
	groups := r.Catalog.Groups()
	out := make([]SidebarGroup, len(groups))
	for i, g := range groups {
		items := make([]SidebarItem, len(g.Lessons))
		for j, l := range g.Lessons {
			items[j] = SidebarItem{
				ID:     l.ID,
				Title:  l.Title,
				Active: r.View == nav.Lesson(l.ID),
			}
		}
		out[i] = SidebarGroup{
			Number:  g.Category.Number(),
			Title:   g.Category.Title(),
			Lessons: items,
		}
	}
	return out
}

// dirURL links to a directory of the site from this page.
func (r *render) dirURL(dir string) string {
	if r.Absolute {
		return absolute(r.BasePath, dir) + "/"
	}
	return relative.Dir(r.Path, dir)
}

func (r *render) homeURL() string {
	return r.dirURL("")
}

func (r *render) viewURL(v nav.ViewState) string {
	if v.Kind() == nav.LessonView {
		return r.dirURL(LessonPath(v.ID()))
	}
	return r.homeURL()
}

func (r *render) lessonURL(id string) string {
	return r.viewURL(nav.Lesson(id))
}

func (r *render) static(p string) string {
	p = path.Join(StaticDir, p)
	if r.Absolute {
		return absolute(r.BasePath, p)
	}
	return relative.Path(r.Path, p)
}

func (r *render) document(doc *content.Document) (template.HTML, error) {
	var buff bytes.Buffer
	err := doc.Render(&buff, content.RenderOptions{
		Highlighter:   r.Highlighter,
		NoLineNumbers: r.NoLineNumbers,
	})
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return template.HTML(buff.String()), nil
}

func absolute(base, p string) string {
	return strings.TrimSuffix(path.Join("/", base, p), "/")
}
