package content

import (
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/highlight"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Highlighter renders tokenized code into HTML.
type Highlighter interface {
	Highlight(*highlight.Code) string
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// RenderOptions controls how a document is written as HTML.
type RenderOptions struct {
	Highlighter Highlighter // required

	// NoLineNumbers disables line numbers for all samples,
	// regardless of what the document asks for.
	NoLineNumbers bool
}

// Render writes the document as HTML to w.
//
// Each code sample is replaced with a figure holding
// a copy button and the highlighted code.
// The button carries the raw sample text in its data-copy attribute.
// The document itself is left unchanged.
func (d *Document) Render(w io.Writer, opts RenderOptions) error {
	root := cloneNode(d.root)

	for _, code := range _codeSelector.MatchAll(root) {
		pre := code.Parent
		block := codeBlockOf(code)
		block.LineNumbers = block.LineNumbers && !opts.NoLineNumbers

		figure := codeFigure(&block, opts.Highlighter)
		pre.Parent.InsertBefore(figure, pre)
		pre.Parent.RemoveChild(pre)
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// codeFigure builds:
//
//	<figure class="code">
//	  <button type="button" class="copy" data-copy="...">Copy</button>
//	  <pre class="chroma"><code>...</code></pre>
//	</figure>
func codeFigure(block *CodeBlock, hl Highlighter) *html.Node {
	figure := element(atom.Figure, html.Attribute{Key: "class", Val: "code"})

	button := element(atom.Button,
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "class", Val: "copy"},
		html.Attribute{Key: "data-copy", Val: block.Raw},
	)
	button.AppendChild(&html.Node{Type: html.TextNode, Data: "Copy"})
	figure.AppendChild(button)

	// Highlighter output is already escaped.
	// It must be written as-is.
	figure.AppendChild(&html.Node{
		Type: html.RawNode,
		Data: hl.Highlight(&highlight.Code{
			Tokens:      block.Tokens(),
			LineNumbers: block.LineNumbers,
		}),
	})
	return figure
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func cloneNode(n *html.Node) *html.Node {
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.AppendChild(cloneNode(c))
	}
	return out
}
