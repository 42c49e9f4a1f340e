package content

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/procnote/internal/highlight"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestDocument_CodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want []CodeBlock
	}{
		{name: "empty", give: ""},
		{
			name: "no code",
			give: "<p>Hello <code>inline</code></p>",
		},
		{
			name: "single",
			give: "<pre><code>size(800, 600);</code></pre>",
			want: []CodeBlock{
				{Raw: "size(800, 600);", LineNumbers: true},
			},
		},
		{
			name: "entities decoded",
			give: "<pre><code>if (a &lt; b &amp;&amp; c &gt; d) {}</code></pre>",
			want: []CodeBlock{
				{Raw: "if (a < b && c > d) {}", LineNumbers: true},
			},
		},
		{
			name: "multiline",
			give: "<pre><code>void setup() {\n  size(800, 600);\n}</code></pre>",
			want: []CodeBlock{
				{Raw: "void setup() {\n  size(800, 600);\n}", LineNumbers: true},
			},
		},
		{
			name: "line numbers off",
			give: `<pre data-line-numbers="false"><code>x = 1;</code></pre>`,
			want: []CodeBlock{
				{Raw: "x = 1;", LineNumbers: false},
			},
		},
		{
			name: "nested in sections",
			give: "<section><h3>A</h3><pre><code>a();</code></pre></section>" +
				"<aside><pre><code>b();</code></pre></aside>",
			want: []CodeBlock{
				{Raw: "a();", LineNumbers: true},
				{Raw: "b();", LineNumbers: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(strings.NewReader(tt.give))
			require.NoError(t, err)

			got := doc.CodeBlocks()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCodeBlock_Tokens(t *testing.T) {
	t.Parallel()

	block := CodeBlock{Raw: "a < b"}
	var sb strings.Builder
	for _, tok := range block.Tokens() {
		sb.WriteString(tok.Text)
	}
	assert.Equal(t, "a &lt; b", sb.String())
}

func TestDocument_Render(t *testing.T) {
	t.Parallel()

	const src = `<h3>Loops</h3>` +
		`<p>Count up:</p>` +
		`<pre><code>for (int i = 0; i &lt; 10; i++) { // count
  println(i);
}</code></pre>` +
		`<pre data-line-numbers="false"><code>noLoop();</code></pre>`

	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	hl := &highlight.Highlighter{UseClasses: true}
	var sb strings.Builder
	require.NoError(t, doc.Render(&sb, RenderOptions{Highlighter: hl}))
	out := sb.String()

	assert.NotContains(t, out, "&amp;lt;", "double escaped")

	root := parseFragment(t, out)

	t.Run("surrounding content kept", func(t *testing.T) {
		h3 := cascadia.Query(root, cascadia.MustCompile("h3"))
		require.NotNil(t, h3)
		assert.Equal(t, "Loops", allText(h3))

		p := cascadia.Query(root, cascadia.MustCompile("p"))
		require.NotNil(t, p)
		assert.Equal(t, "Count up:", allText(p))
	})

	t.Run("copy buttons", func(t *testing.T) {
		buttons := cascadia.QueryAll(root, cascadia.MustCompile("figure.code > button.copy"))
		require.Len(t, buttons, 2)

		assert.Equal(t,
			"for (int i = 0; i < 10; i++) { // count\n  println(i);\n}",
			attr(buttons[0], "data-copy"))
		assert.Equal(t, "noLoop();", attr(buttons[1], "data-copy"))
		assert.Equal(t, "button", attr(buttons[0], "type"))
	})

	t.Run("highlighted", func(t *testing.T) {
		pres := cascadia.QueryAll(root, cascadia.MustCompile("figure.code > pre.chroma"))
		require.Len(t, pres, 2)

		keywords := cascadia.QueryAll(pres[0], cascadia.MustCompile("span.k"))
		var words []string
		for _, k := range keywords {
			words = append(words, allText(k))
		}
		assert.Equal(t, []string{"for", "int"}, words)

		comment := cascadia.Query(pres[0], cascadia.MustCompile("span.c"))
		require.NotNil(t, comment)
		assert.Equal(t, "// count", allText(comment))

		builtin := cascadia.Query(pres[0], cascadia.MustCompile("span.nb"))
		require.NotNil(t, builtin)
		assert.Equal(t, "println", allText(builtin))
	})

	t.Run("line numbers", func(t *testing.T) {
		pres := cascadia.QueryAll(root, cascadia.MustCompile("figure.code > pre.chroma"))
		require.Len(t, pres, 2)

		assert.Len(t, cascadia.QueryAll(pres[0], cascadia.MustCompile("span.line")), 3)
		assert.Empty(t, cascadia.QueryAll(pres[1], cascadia.MustCompile("span.line")))
	})

	t.Run("original untouched", func(t *testing.T) {
		assert.Len(t, doc.CodeBlocks(), 2)

		var again strings.Builder
		require.NoError(t, doc.Render(&again, RenderOptions{Highlighter: hl}))
		assert.Equal(t, out, again.String())
	})
}

func TestDocument_Render_noLineNumbers(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader("<pre><code>a();\nb();</code></pre>"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, doc.Render(&sb, RenderOptions{
		Highlighter:   &highlight.Highlighter{UseClasses: true},
		NoLineNumbers: true,
	}))

	root := parseFragment(t, sb.String())
	assert.Empty(t, cascadia.QueryAll(root, cascadia.MustCompile("span.line")))
	assert.NotNil(t, cascadia.Query(root, cascadia.MustCompile("pre.chroma")))
}

func TestDocument_Blocks(t *testing.T) {
	t.Parallel()

	const src = `
<h3>Variables</h3>
<p>A variable
   stores a value.</p>
<ul>
  <li>int</li>
  <li><code>float</code> numbers</li>
</ul>
<pre><code>int x = 1;</code></pre>
<aside><h4>Note</h4><p>Names are case-sensitive.</p></aside>
<pre>plain</pre>
<script>alert(1)</script>
`

	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []Block{
		{Kind: HeadingBlock, Text: "Variables", Level: 3},
		{Kind: TextBlock, Text: "A variable stores a value."},
		{Kind: TextBlock, Text: "• int"},
		{Kind: TextBlock, Text: "• float numbers"},
		{Kind: CodeSample, Code: &CodeBlock{Raw: "int x = 1;", LineNumbers: true}},
		{Kind: HeadingBlock, Text: "Note", Level: 4},
		{Kind: TextBlock, Text: "Names are case-sensitive."},
		{Kind: TextBlock, Text: "plain"},
	}, doc.Blocks())
}

func parseFragment(t *testing.T, s string) *html.Node {
	t.Helper()

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), root)
	require.NoError(t, err)
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}
