// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package style provides styled text: ordered runs of text, each carrying
// its own color and attributes, built up by concatenation.
package style

import (
	"strings"
)

// Color is an IRC palette color. The zero value means "default";
// Color{true, 0} is white. It has the same layout as ircfmt.ColorCode
// so the two convert directly.
type Color struct {
	IsSet bool
	Value uint8
}

// the 16 base colors of the IRC palette
var (
	White      = Color{true, 0}
	Black      = Color{true, 1}
	Blue       = Color{true, 2}
	Green      = Color{true, 3}
	Red        = Color{true, 4}
	Brown      = Color{true, 5}
	Magenta    = Color{true, 6}
	Orange     = Color{true, 7}
	Yellow     = Color{true, 8}
	LightGreen = Color{true, 9}
	Cyan       = Color{true, 10}
	LightCyan  = Color{true, 11}
	LightBlue  = Color{true, 12}
	Pink       = Color{true, 13}
	Grey       = Color{true, 14}
	LightGrey  = Color{true, 15}
)

// roles used by the renderer
var (
	Default  = Color{}
	Quiet    = Grey
	Alert    = Red
	Positive = Green
	Accent   = Yellow
)

// Style is the set of display attributes for a span.
type Style struct {
	Foreground    Color
	Background    Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Monospace     bool
	Reverse       bool
}

// Span is a run of text in a single style.
type Span struct {
	Text  string
	Style Style
}

// Text is an ordered sequence of spans. Values are treated as immutable:
// every operation returns a fresh slice.
type Text []Span

// Styled returns a single-span text, or an empty text if s is empty.
func Styled(s string, st Style) Text {
	if s == "" {
		return nil
	}
	return Text{{Text: s, Style: st}}
}

// Plain returns s in the default style.
func Plain(s string) Text {
	return Styled(s, Style{})
}

// Colored returns s with foreground color c.
func Colored(s string, c Color) Text {
	return Styled(s, Style{Foreground: c})
}

// Concat joins texts left to right. Empty spans are dropped, so an omitted
// element leaves no trace in the result.
func Concat(parts ...Text) (result Text) {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	result = make(Text, 0, n)
	for _, part := range parts {
		for _, span := range part {
			if span.Text != "" {
				result = append(result, span)
			}
		}
	}
	return
}

// Join concatenates parts with sep between consecutive elements.
func Join(parts []Text, sep Text) Text {
	joined := make([]Text, 0, 2*len(parts))
	for i, part := range parts {
		if i != 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, part)
	}
	return Concat(joined...)
}

// String returns the text with all styling removed.
func (t Text) String() string {
	var buf strings.Builder
	for _, span := range t {
		buf.WriteString(span.Text)
	}
	return buf.String()
}

// Equal reports whether two texts have identical spans, in order.
func (t Text) Equal(other Text) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}
