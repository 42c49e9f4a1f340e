package browse

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/procnote/internal/highlight"
)

// Palette shared with the generated site.
var (
	colorText   = lipgloss.Color("#111827")
	colorMuted  = lipgloss.Color("#6B7280")
	colorFaint  = lipgloss.Color("#9CA3AF")
	colorBorder = lipgloss.Color("#E5E7EB")
	colorAccent = lipgloss.Color("#006699")
	colorOK     = lipgloss.Color("#16A34A")
	colorError  = lipgloss.Color("#D32F2F")
)

const _sidebarWidth = 32

// styles holds every style the reader draws with.
type styles struct {
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarChapter lipgloss.Style
	SidebarItem    lipgloss.Style
	SidebarActive  lipgloss.Style
	SidebarCursor  lipgloss.Style

	Title       lipgloss.Style
	Eyebrow     lipgloss.Style
	Breadcrumbs lipgloss.Style
	Description lipgloss.Style
	Heading     lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Link        lipgloss.Style

	Code         lipgloss.Style
	CodeSelected lipgloss.Style
	LineNumber   lipgloss.Style
	Tokens       map[highlight.Class]lipgloss.Style

	Status lipgloss.Style
	Copied lipgloss.Style
	Error  lipgloss.Style
}

func newStyles(style *chroma.Style) *styles {
	if style == nil {
		style = highlight.ProcessingStyle
	}

	codeBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	if bg := style.Get(chroma.PreWrapper).Background; bg.IsSet() {
		codeBox = codeBox.Background(lipgloss.Color(bg.String()))
	}

	tokens := make(map[highlight.Class]lipgloss.Style)
	for _, c := range []highlight.Class{
		highlight.Keyword,
		highlight.Builtin,
		highlight.Identifier,
		highlight.Comment,
	} {
		tokens[c] = tokenStyle(style.Get(c.TokenType()))
	}

	return &styles{
		Sidebar: lipgloss.NewStyle().
			Width(_sidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder).
			Padding(1, 1),
		SidebarTitle:   lipgloss.NewStyle().Bold(true).Foreground(colorText),
		SidebarChapter: lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginTop(1),
		SidebarItem:    lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2),
		SidebarActive:  lipgloss.NewStyle().Foreground(colorAccent).Bold(true).PaddingLeft(2),
		SidebarCursor:  lipgloss.NewStyle().Reverse(true),

		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Eyebrow:     lipgloss.NewStyle().Foreground(colorFaint),
		Breadcrumbs: lipgloss.NewStyle().Foreground(colorFaint),
		Description: lipgloss.NewStyle().
			Foreground(colorMuted).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorText).
			PaddingLeft(1),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Text:    lipgloss.NewStyle().Foreground(colorText),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Link:    lipgloss.NewStyle().Foreground(colorAccent).Underline(true),

		Code:         codeBox,
		CodeSelected: codeBox.BorderForeground(colorAccent),
		LineNumber:   lipgloss.NewStyle().Foreground(colorFaint),
		Tokens:       tokens,

		Status: lipgloss.NewStyle().Foreground(colorFaint),
		Copied: lipgloss.NewStyle().Foreground(colorOK).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(colorError),
	}
}

// tokenStyle converts a chroma style entry into a terminal style.
func tokenStyle(entry chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

func (s *styles) token(c highlight.Class) lipgloss.Style {
	if st, ok := s.Tokens[c]; ok {
		return st
	}
	return s.Text
}
