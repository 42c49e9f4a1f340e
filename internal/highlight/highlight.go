package highlight

import (
	"fmt"
	"io"
	"strings"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Code is a tokenized code block ready to be highlighted.
type Code struct {
	Tokens []Token

	// LineNumbers wraps each line in an element
	// that the stylesheet numbers.
	LineNumbers bool
}

// Highlighter turns [Code] into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = ProcessingStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Highlight renders the given code block into HTML.
//
// Token text is written verbatim:
// it was escaped when the code was tokenized.
func (h *Highlighter) Highlight(code *Code) string {
	h.init()

	if code == nil {
		return ""
	}

	var sb strings.Builder
	if h.UseClasses {
		fmt.Fprintf(&sb, "<pre class=%q><code>", chroma.StandardTypes[chroma.PreWrapper])
	} else {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		fmt.Fprintf(&sb, "<pre class=%q style=%q><code>", chroma.StandardTypes[chroma.PreWrapper], style)
	}

	if !code.LineNumbers {
		h.writeTokens(&sb, code.Tokens)
	} else {
		for i, line := range Lines(code.Tokens) {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "<span class=%q>", chroma.StandardTypes[chroma.Line])
			h.writeTokens(&sb, line)
			sb.WriteString("</span>")
		}
	}

	sb.WriteString("</code></pre>")
	return sb.String()
}

func (h *Highlighter) writeTokens(sb *strings.Builder, tokens []Token) {
	for _, t := range tokens {
		attr := h.attr(t.Class)
		if attr == "" {
			sb.WriteString(t.Text)
			continue
		}
		fmt.Fprintf(sb, "<span %s>%s</span>", attr, t.Text)
	}
}

// attr returns the attribute that styles the given class,
// or an empty string if the class is rendered unstyled.
func (h *Highlighter) attr(c Class) string {
	if c == Plain {
		return ""
	}

	tt := c.TokenType()
	if h.UseClasses {
		return fmt.Sprintf("class=%q", chroma.StandardTypes[tt])
	}

	entry := h.Style.Get(tt)
	entry.Background = 0 // painted once by the wrapper
	css := chromahtml.StyleEntryToCSS(entry)
	if css == "" {
		return ""
	}
	return fmt.Sprintf("style=%q", css)
}
