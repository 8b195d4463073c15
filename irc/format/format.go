// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package format holds the default collaborators of the renderer: the IRC
// formatting-code parser and the identifier color palette.
package format

import (
	"unicode"

	"github.com/ergochat/irc-go/ircfmt"

	"github.com/ergochat/scribe/irc/style"
)

// HasControl reports whether text contains any control character,
// formatting codes included.
func HasControl(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Parse interprets IRC formatting codes (bold, color, italics, ...) in text.
func Parse(text string) style.Text {
	chunks := ircfmt.Split(text)
	result := make(style.Text, 0, len(chunks))
	for _, chunk := range chunks {
		result = append(result, style.Span{
			Text: chunk.Content,
			Style: style.Style{
				Foreground:    style.Color(chunk.ForegroundColor),
				Background:    style.Color(chunk.BackgroundColor),
				Bold:          chunk.Bold,
				Italic:        chunk.Italic,
				Underline:     chunk.Underline,
				Strikethrough: chunk.Strikethrough,
				Monospace:     chunk.Monospace,
				Reverse:       chunk.ReverseColor,
			},
		})
	}
	return result
}

// Parser is the default markup parser.
type Parser struct{}

func (Parser) Parse(text string) style.Text {
	return Parse(text)
}
