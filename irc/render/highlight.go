// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// special characters allowed in nicknames besides letters and digits
const nickSpecials = "-_[]\\`^{}|"

func isNickRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(nickSpecials, r)
}

func isNickToken(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return token != "" && isNickRune(r)
}

// splitNicks splits text into alternating runs of nickname and
// non-nickname characters. Concatenating the result gives back text.
func splitNicks(text string) (tokens []string) {
	start := 0
	inNick := false
	for i, r := range text {
		nick := isNickRune(r)
		if i != 0 && nick != inNick {
			tokens = append(tokens, text[start:i])
			start = i
		}
		inNick = nick
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return
}
