package browse

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/procnote/internal/content"
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/highlight"
	"go.abhg.dev/procnote/internal/nav"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _upper = cases.Upper(language.Und)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.viewport.View()
	if m.ctrl.SidebarOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus())
}

func (m *Model) renderSidebar() string {
	s := m.styles
	site := m.ctrl.Catalog().Site()
	cur := m.ctrl.Current()

	var b strings.Builder
	b.WriteString(s.SidebarTitle.Render(site.Title + "."))
	b.WriteString("\n")
	if site.Edition != "" {
		b.WriteString(s.Eyebrow.Render(_upper.String(site.Edition)))
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		if e.chapter != "" {
			b.WriteString(s.SidebarChapter.Render(_upper.String(e.chapter)))
			b.WriteString("\n")
		}

		item := s.SidebarItem
		if e.view == cur {
			item = s.SidebarActive
		}
		label := item.MaxWidth(_sidebarWidth - 2).Render(e.label)
		if i == m.cursor {
			label = s.SidebarCursor.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	return s.Sidebar.Height(max(m.height-3, 1)).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m *Model) renderStatus() string {
	s := m.styles
	if m.ack.Active() {
		return s.Copied.Render("✓ Copied")
	}

	keys := "tab menu · n/p next/prev · h home · s start · q quit"
	if len(m.codes) > 0 {
		keys = fmt.Sprintf("c copy · [/] sample %d/%d · ", m.code+1, len(m.codes)) + keys
	}
	return s.Status.Render(keys)
}

// renderPage renders the current view for the given width.
func (m *Model) renderPage(width int) string {
	cur := m.ctrl.Current()
	switch cur.Kind() {
	case nav.LessonView:
		lesson, _, _ := m.ctrl.Catalog().Lookup(cur.ID())
		return m.renderLesson(lesson, width)
	case nav.NotFoundView:
		return m.renderNotFound(cur.ID(), width)
	default:
		return m.renderHome(width)
	}
}

func (m *Model) renderHome(width int) string {
	s := m.styles
	site := m.ctrl.Catalog().Site()
	text := s.Text.Width(width)

	var parts []string
	if site.Edition != "" {
		parts = append(parts, s.Eyebrow.Render(_upper.String(site.Edition)))
	}
	parts = append(parts, s.Title.Render(site.Title))
	if site.Tagline != "" {
		parts = append(parts, s.Muted.Width(width).Render(site.Tagline))
	}
	if m.ctrl.Catalog().Len() > 0 {
		parts = append(parts, s.Link.Render("Start Learning: press s"))
	}

	for _, f := range site.Features {
		parts = append(parts, s.Heading.Render(f.Title)+"\n"+s.Muted.Width(width).Render(f.Description))
	}

	parts = append(parts, s.Heading.Render("Curriculum"))
	for _, g := range m.ctrl.Catalog().Groups() {
		var b strings.Builder
		b.WriteString(s.Eyebrow.Render(fmt.Sprintf("%02d / %s", g.Category.Number(), g.Category.Title())))
		for _, l := range g.Lessons {
			b.WriteString("\n")
			b.WriteString(text.Render("→ " + l.Title))
		}
		parts = append(parts, b.String())
	}

	for _, l := range site.Links {
		link := s.Link.Render(l.Title) + " " + s.Muted.Render(l.URL)
		if l.Description != "" {
			link += "\n" + s.Muted.Width(width).Render(l.Description)
		}
		parts = append(parts, link)
	}

	return strings.Join(parts, "\n\n")
}

func (m *Model) renderLesson(lesson curriculum.Lesson, width int) string {
	s := m.styles

	parts := []string{
		s.Breadcrumbs.Render(_upper.String("Home › " + lesson.Category.Title())),
		s.Title.Width(width).Render(lesson.Title),
	}
	if lesson.Description != "" {
		parts = append(parts, s.Description.Width(width-2).Render(lesson.Description))
	}

	switch {
	case m.loadErr != nil:
		parts = append(parts, s.Error.Width(width).Render(m.loadErr.Error()))
	case m.doc != nil:
		code := 0
		for _, block := range m.doc.Blocks() {
			switch block.Kind {
			case content.HeadingBlock:
				parts = append(parts, s.Heading.Width(width).Render(block.Text))
			case content.CodeSample:
				parts = append(parts, m.renderCode(block.Code, code == m.code, width))
				code++
			default:
				parts = append(parts, s.Text.Width(width).Render(block.Text))
			}
		}
	}

	parts = append(parts, m.renderNeighbors(lesson))
	return strings.Join(parts, "\n\n")
}

func (m *Model) renderNeighbors(lesson curriculum.Lesson) string {
	s := m.styles
	cat := m.ctrl.Catalog()

	prevLabel := "Overview"
	if prev := m.ctrl.Prev(lesson.ID); prev.Kind() == nav.LessonView {
		l, _, _ := cat.Lookup(prev.ID())
		prevLabel = l.Title
	}
	line := s.Muted.Render("← p Previous: ") + s.Text.Render(prevLabel)

	if next, ok := m.ctrl.Next(lesson.ID); ok {
		l, _, _ := cat.Lookup(next)
		line += "\n" + s.Muted.Render("→ n Next Lesson: ") + s.Link.Render(l.Title)
	}
	return line
}

func (m *Model) renderNotFound(id string, width int) string {
	s := m.styles
	return strings.Join([]string{
		s.Title.Render("Not Found"),
		s.Text.Width(width).Render(fmt.Sprintf("There is no lesson named %q.", id)),
		s.Link.Render("Press h to go back Home."),
	}, "\n\n")
}

func (m *Model) renderCode(block *content.CodeBlock, selected bool, width int) string {
	s := m.styles

	var b strings.Builder
	for i, line := range highlight.Lines(block.Tokens()) {
		if i > 0 {
			b.WriteString("\n")
		}
		if block.LineNumbers {
			b.WriteString(s.LineNumber.Render(fmt.Sprintf("%3d ", i+1)))
		}
		for _, tok := range line {
			// Tokens are HTML-escaped. The terminal wants the source text.
			b.WriteString(s.token(tok.Class).Render(html.UnescapeString(tok.Text)))
		}
	}

	box := s.Code
	if selected {
		box = s.CodeSelected
	}
	return box.Width(max(width-2, 1)).Render(b.String())
}
