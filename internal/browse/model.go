// Package browse is an interactive terminal reader for a curriculum.
//
// It shows the same views as the generated site:
// the overview, one screen per lesson, and a not-found screen.
// Navigation goes through [nav.Controller].
package browse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.abhg.dev/procnote/internal/clipboard"
	"go.abhg.dev/procnote/internal/content"
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/nav"
)

// Config configures the reader.
type Config struct {
	// Catalog is the curriculum to read.
	Catalog *curriculum.Catalog // required

	// FS holds the lesson documents.
	FS fs.FS // required

	// Style colors highlighted code.
	// Defaults to highlight.ProcessingStyle.
	Style *chroma.Style

	// Copier places code samples on the clipboard.
	// Defaults to the system clipboard.
	Copier *clipboard.Copier

	// Start is the id of the lesson to open first.
	// The reader opens on the overview if this is empty.
	Start string

	// Log receives diagnostics.
	Log *log.Logger
}

// ackMsg reports that the copy acknowledgement changed.
type ackMsg struct{ active bool }

// sidebarEntry is a selectable row of the sidebar.
type sidebarEntry struct {
	view    nav.ViewState
	label   string
	chapter string // heading shown above this entry, if any
}

// Model is the bubbletea model for the reader.
type Model struct {
	ctrl   *nav.Controller
	fsys   fs.FS
	log    *log.Logger
	styles *styles

	copier *clipboard.Copier
	ack    *clipboard.Ack

	width, height int
	ready         bool
	viewport      viewport.Model

	entries []sidebarEntry
	cursor  int

	// State of the current view.
	doc     *content.Document
	codes   []content.CodeBlock
	code    int // selected code sample
	loadErr error
}

var _ tea.Model = (*Model)(nil)

// New builds a reader.
func New(cfg Config) *Model {
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	copier := cfg.Copier
	if copier == nil {
		copier = &clipboard.Copier{Log: logger}
	}
	if copier.Ack == nil {
		copier.Ack = new(clipboard.Ack)
	}

	m := &Model{
		ctrl:     nav.New(cfg.Catalog),
		fsys:     cfg.FS,
		log:      logger,
		styles:   newStyles(cfg.Style),
		copier:   copier,
		ack:      copier.Ack,
		viewport: viewport.New(0, 0),
		entries:  sidebarEntries(cfg.Catalog),
	}
	m.ctrl.Scroll = nav.ScrollResetterFunc(func() { m.viewport.GotoTop() })

	if cfg.Start != "" {
		m.navigate(nav.Lesson(cfg.Start))
	} else {
		m.navigate(nav.Home())
	}
	return m
}

func sidebarEntries(cat *curriculum.Catalog) []sidebarEntry {
	entries := make([]sidebarEntry, 0, cat.Len()+1)
	entries = append(entries, sidebarEntry{view: nav.Home(), label: "Overview"})
	for _, g := range cat.Groups() {
		for i, l := range g.Lessons {
			e := sidebarEntry{view: nav.Lesson(l.ID), label: l.Title}
			if i == 0 {
				e.chapter = fmt.Sprintf("%d. %s", g.Category.Number(), g.Category.Title())
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// Run runs the reader until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)
	p := tea.NewProgram(m, opts...)

	m.ack.Notify = func(active bool) {
		p.Send(ackMsg{active: active})
	}
	defer m.ack.Close()

	if _, err := p.Run(); err != nil {
		return errtrace.Wrap(fmt.Errorf("run reader: %w", err))
	}
	return nil
}

// Current reports the view the reader is showing.
func (m *Model) Current() nav.ViewState { return m.ctrl.Current() }

// SidebarOpen reports whether the sidebar is showing.
func (m *Model) SidebarOpen() bool { return m.ctrl.SidebarOpen() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case ackMsg:
		// The status line reads the acknowledgement when drawing.
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ack.Close()
		return m, tea.Quit

	case "tab":
		m.ctrl.ToggleSidebar()
		if m.ctrl.SidebarOpen() {
			m.syncCursor()
		}
		m.layout()
		return m, nil

	case "esc":
		if m.ctrl.SidebarOpen() {
			m.ctrl.CloseSidebar()
			m.layout()
		}
		return m, nil

	case "n":
		if m.ctrl.Advance() {
			m.load()
		}
		return m, nil

	case "p":
		if m.ctrl.Retreat() {
			m.load()
		}
		return m, nil

	case "h":
		m.navigate(nav.Home())
		return m, nil

	case "s":
		m.ctrl.Start()
		m.load()
		return m, nil

	case "c":
		if m.code < len(m.codes) {
			m.copier.Copy(m.codes[m.code].Raw)
		}
		return m, nil

	case "]":
		if len(m.codes) > 0 {
			m.code = (m.code + 1) % len(m.codes)
			m.refresh()
		}
		return m, nil

	case "[":
		if len(m.codes) > 0 {
			m.code = (m.code + len(m.codes) - 1) % len(m.codes)
			m.refresh()
		}
		return m, nil
	}

	if m.ctrl.SidebarOpen() {
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "enter":
			m.navigate(m.entries[m.cursor].view)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// navigate requests a view and loads whatever it resolves to.
func (m *Model) navigate(target nav.ViewState) {
	m.ctrl.NavigateTo(target)
	m.load()
}

// load reads the document for the current view.
func (m *Model) load() {
	m.doc, m.codes, m.code, m.loadErr = nil, nil, 0, nil
	m.syncCursor()

	cur := m.ctrl.Current()
	if cur.Kind() == nav.LessonView {
		lesson, _, _ := m.ctrl.Catalog().Lookup(cur.ID())
		doc, err := m.readDocument(lesson)
		if err != nil {
			m.log.Printf("load lesson %q: %v", lesson.ID, err)
			m.loadErr = err
		} else {
			m.doc = doc
			m.codes = doc.CodeBlocks()
		}
	}

	m.layout()
}

func (m *Model) readDocument(lesson curriculum.Lesson) (*content.Document, error) {
	bs, err := curriculum.ReadContent(m.fsys, lesson)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(content.Parse(bytes.NewReader(bs)))
}

// syncCursor points the sidebar cursor at the current view.
func (m *Model) syncCursor() {
	cur := m.ctrl.Current()
	for i, e := range m.entries {
		if e.view == cur {
			m.cursor = i
			return
		}
	}
}

// layout sizes the viewport for the window and redraws its content.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	width := m.width
	if m.ctrl.SidebarOpen() {
		width -= _sidebarWidth + 1
	}
	m.viewport.Width = max(width, 10)
	m.viewport.Height = max(m.height-1, 1) // status line
	m.refresh()
}

// refresh redraws the viewport content without moving it.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderPage(m.viewport.Width))
}
