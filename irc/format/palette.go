// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package format

import (
	"github.com/cespare/xxhash/v2"

	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/style"
)

// DefaultPalette excludes the colors reserved for the renderer's own roles
// (quiet grey, alert red, accent yellow) and the ones unreadable on
// common backgrounds (white, black).
var DefaultPalette = Palette{
	style.Blue, style.Green, style.Brown, style.Magenta, style.Orange,
	style.LightGreen, style.Cyan, style.LightCyan, style.LightBlue, style.Pink,
}

// Palette assigns each identifier a color by hashing its folded form.
type Palette []style.Color

// ColorOf returns the color for id; it depends only on id's folded form.
func (p Palette) ColorOf(id ident.Identifier) style.Color {
	if len(p) == 0 {
		return style.Default
	}
	return p[xxhash.Sum64String(id.Folded())%uint64(len(p))]
}
