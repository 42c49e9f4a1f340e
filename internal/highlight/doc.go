// Package highlight classifies and renders the code samples in lessons.
//
// [Tokenize] splits Processing source into a flat list of [Token]s.
// The text of every token is already HTML-escaped,
// and concatenating all tokens reproduces the escaped source exactly.
// Classification is lexical only:
// words are matched against fixed keyword and builtin sets,
// and everything after the first "//" on a line is a comment.
//
// [Highlighter] turns tokens into HTML using Chroma styles.
package highlight
