package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind is the kind of a [Block].
type BlockKind int

const (
	// TextBlock is a paragraph or list item.
	TextBlock BlockKind = iota

	// HeadingBlock is a section heading.
	HeadingBlock

	// CodeSample is a code sample. Its Code field is set.
	CodeSample
)

// Block is a flattened piece of a document,
// suitable for plain-text display.
type Block struct {
	Kind BlockKind

	// Text is the whitespace-normalized text of the block.
	// For list items, it starts with a bullet.
	// Empty for code samples.
	Text string

	// Level is the heading level (1-6) for headings.
	Level int

	// Code is the sample for CodeSample blocks.
	Code *CodeBlock
}

// Blocks flattens the document into headings, text, and code samples,
// in document order.
//
// Code samples appear in the same order as [Document.CodeBlocks].
func (d *Document) Blocks() []Block {
	var b blockWriter
	b.children(d.root)
	return b.blocks
}

type blockWriter struct {
	blocks []Block
}

func (b *blockWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.node(c)
	}
}

func (b *blockWriter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.text(TextBlock, n.Data, "")
		return
	case html.ElementNode:
		// handled below
	default:
		return
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.add(Block{
			Kind:  HeadingBlock,
			Text:  normalize(allText(n)),
			Level: int(n.Data[1] - '0'),
		})

	case atom.Pre:
		if code := firstChildElement(n, atom.Code); code != nil {
			block := codeBlockOf(code)
			b.add(Block{Kind: CodeSample, Code: &block})
		} else {
			b.text(TextBlock, allText(n), "")
		}

	case atom.P, atom.Dt, atom.Dd, atom.Figcaption, atom.Summary:
		b.text(TextBlock, allText(n), "")

	case atom.Li:
		b.text(TextBlock, allText(n), "• ")

	case atom.Script, atom.Style, atom.Template:
		// not displayable

	default:
		b.children(n)
	}
}

func (b *blockWriter) text(kind BlockKind, s, prefix string) {
	s = normalize(s)
	if s == "" {
		return
	}
	b.add(Block{Kind: kind, Text: prefix + s})
}

func (b *blockWriter) add(block Block) {
	if block.Kind == HeadingBlock && block.Text == "" {
		return
	}
	b.blocks = append(b.blocks, block)
}

func firstChildElement(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
