package highlight

import (
	"fmt"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
)

// CommentMarker starts a comment that runs to the end of the line.
//
// It is recognized anywhere on a line,
// including inside string and character literals.
const CommentMarker = "//"

// Class is the lexical class of a token.
type Class int

// Token classes.
const (
	Plain Class = iota
	Keyword
	Builtin
	Identifier
	Comment
)

var _classNames = [...]string{
	Plain:      "Plain",
	Keyword:    "Keyword",
	Builtin:    "Builtin",
	Identifier: "Identifier",
	Comment:    "Comment",
}

func (c Class) String() string {
	if int(c) >= 0 && int(c) < len(_classNames) {
		return _classNames[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// TokenType reports the Chroma token type used to style this class.
func (c Class) TokenType() chroma.TokenType {
	switch c {
	case Keyword:
		return chroma.Keyword
	case Builtin:
		return chroma.NameBuiltin
	case Identifier:
		return chroma.Name
	case Comment:
		return chroma.Comment
	default:
		return chroma.Text
	}
}

// Token is a classified fragment of source code.
type Token struct {
	// Text of the token, HTML-escaped.
	Text string

	Class Class
}

func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Class, t.Text)
}

var _escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces &, <, and > in s with their HTML entities.
// Quotes are left alone: token text never lands in attributes.
func Escape(s string) string {
	return _escaper.Replace(s)
}

// Tokenize splits src into classified tokens.
//
// src is escaped with [Escape] exactly once before it is classified.
// Newlines are emitted as their own Plain tokens.
// Tokenize accepts any input.
func Tokenize(src string) []Token {
	var s scanner
	for i, line := range strings.Split(Escape(src), "\n") {
		if i > 0 {
			s.emit("\n", Plain)
		}

		code, comment := line, ""
		if idx := strings.Index(line, CommentMarker); idx >= 0 {
			code, comment = line[:idx], line[idx:]
		}
		s.scanCode(code)
		if len(comment) > 0 {
			s.emit(comment, Comment)
		}
	}
	return s.tokens
}

// Lines splits a token list at newline tokens.
// The newline tokens themselves are dropped.
//
// The result always has one more entry than there are newlines.
func Lines(tokens []Token) [][]Token {
	lines := [][]Token{nil}
	for _, t := range tokens {
		if t.Class == Plain && t.Text == "\n" {
			lines = append(lines, nil)
			continue
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], t)
	}
	return lines
}

type scanner struct {
	tokens []Token
}

func (s *scanner) emit(text string, c Class) {
	s.tokens = append(s.tokens, Token{Text: text, Class: c})
}

// scanCode classifies the words in an escaped,
// comment-free segment of a line.
// Runs of everything else become Plain tokens.
func (s *scanner) scanCode(code string) {
	plain := 0 // start of pending Plain text
	for i := 0; i < len(code); {
		c := code[i]
		switch {
		case c == '&':
			// Entities written by Escape are never words.
			if end := strings.IndexByte(code[i:], ';'); end >= 0 {
				i += end + 1
			} else {
				i++
			}

		case isWordByte(c):
			end := i + 1
			for end < len(code) && isWordByte(code[end]) {
				end++
			}
			// Runs starting with a digit are number literals.
			if isIdentStart(c) {
				if plain < i {
					s.emit(code[plain:i], Plain)
				}
				word := code[i:end]
				s.emit(word, Classify(word))
				plain = end
			}
			i = end

		default:
			i++
		}
	}
	if plain < len(code) {
		s.emit(code[plain:], Plain)
	}
}

func isWordByte(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
