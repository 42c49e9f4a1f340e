// Package content reads lesson documents.
//
// A lesson document is an HTML fragment.
// Code samples are written as pre > code elements
// holding plain, HTML-escaped source text.
package content

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/andybalholm/cascadia"
	"go.abhg.dev/procnote/internal/highlight"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _codeSelector = cascadia.MustCompile("pre > code")

// Document is a parsed lesson document.
type Document struct {
	root *html.Node // synthetic <div> holding the fragment
}

// Parse parses an HTML fragment.
func Parse(r io.Reader) (*Document, error) {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(r, root)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root}, nil
}

// CodeBlock is a code sample inside a document.
type CodeBlock struct {
	// Raw is the source text as authored,
	// with HTML entities in the document decoded.
	// This is what gets copied to the clipboard.
	Raw string

	// LineNumbers reports whether the sample
	// should be shown with line numbers.
	// Authors opt out with data-line-numbers="false" on the pre.
	LineNumbers bool
}

// Tokens tokenizes the sample for highlighting.
func (b *CodeBlock) Tokens() []highlight.Token {
	return highlight.Tokenize(b.Raw)
}

// CodeBlocks returns the code samples in the document, in order.
func (d *Document) CodeBlocks() []CodeBlock {
	codes := cascadia.QueryAll(d.root, _codeSelector)
	blocks := make([]CodeBlock, len(codes))
	for i, code := range codes {
		blocks[i] = codeBlockOf(code)
	}
	return blocks
}

func codeBlockOf(code *html.Node) CodeBlock {
	lineNumbers := true
	if pre := code.Parent; pre != nil && attr(pre, "data-line-numbers") == "false" {
		lineNumbers = false
	}
	return CodeBlock{
		Raw:         allText(code),
		LineNumbers: lineNumbers,
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func allText(n *html.Node) string {
	var (
		sb    strings.Builder
		visit func(*html.Node)
	)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}
