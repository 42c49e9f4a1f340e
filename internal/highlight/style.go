package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ProcessingStyle is the Chroma style matching the curriculum's palette:
// red keywords, Processing-blue builtins,
// near-black identifiers and faded comments.
var ProcessingStyle = chroma.MustNewStyle("procnote", map[chroma.TokenType]string{
	chroma.Keyword:     "bold #d32f2f",
	chroma.NameBuiltin: "#006699",
	chroma.Name:        "#111827",
	chroma.Comment:     "italic #9ca3af",
	chroma.PreWrapper:  "bg:#f9fafb",
	chroma.Background:  "bg:#f9fafb",
})

func init() {
	styles.Register(ProcessingStyle)
}

// LookupStyle finds a registered Chroma style by name.
// The boolean is false if no style has that name.
func LookupStyle(name string) (*chroma.Style, bool) {
	if name == "" || name == ProcessingStyle.Name {
		return ProcessingStyle, true
	}
	s, ok := styles.Registry[name]
	return s, ok
}
