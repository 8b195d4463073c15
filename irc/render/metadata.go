// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package render

import (
	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/message"
	"github.com/ergochat/scribe/irc/style"
)

// Metadata is the compact form of a membership event, used when runs of
// joins, parts, quits and nick changes are collapsed into one line.
type Metadata struct {
	Glyph   style.Text
	Nick    ident.Identifier
	HasNick bool
}

// MetadataImage returns the compact form of msg, or false if msg is not
// a collapsible event.
func (r *Renderer) MetadataImage(msg message.Message) (Metadata, bool) {
	img := message.Match[*Metadata](msg, metadataRenderer{r})
	if img == nil {
		return Metadata{}, false
	}
	return *img, true
}

// Collapse renders a run of metadata images as one line body.
func (r *Renderer) Collapse(images []Metadata) style.Text {
	entries := make([]style.Text, len(images))
	for i, img := range images {
		if img.HasNick {
			entries[i] = style.Concat(img.Glyph, r.ColoredIdentifier(img.Nick))
		} else {
			entries[i] = img.Glyph
		}
	}
	return style.Join(entries, style.Plain(" "))
}

type metadataRenderer struct {
	r *Renderer
}

func glyph(g string, c style.Color, nick ident.Identifier) *Metadata {
	return &Metadata{Glyph: style.Colored(g, c), Nick: nick, HasNick: true}
}

func (m metadataRenderer) Quit(msg message.Quit) *Metadata {
	return glyph("x", style.Alert, msg.Who.Nick)
}

func (m metadataRenderer) Part(msg message.Part) *Metadata {
	return glyph("-", style.Alert, msg.Who.Nick)
}

func (m metadataRenderer) Join(msg message.Join) *Metadata {
	return glyph("+", style.Positive, msg.Who.Nick)
}

// the glyph already names both identities
func (m metadataRenderer) Nick(msg message.Nick) *Metadata {
	return &Metadata{Glyph: style.Concat(m.r.QuietIdentifier(msg.Old.Nick), style.Plain("-"), m.r.QuietIdentifier(msg.New))}
}

func (metadataRenderer) Kick(message.Kick) *Metadata       { return nil }
func (metadataRenderer) Topic(message.Topic) *Metadata     { return nil }
func (metadataRenderer) Notice(message.Notice) *Metadata   { return nil }
func (metadataRenderer) Privmsg(message.Privmsg) *Metadata { return nil }
func (metadataRenderer) Action(message.Action) *Metadata   { return nil }
func (metadataRenderer) Ping(message.Ping) *Metadata       { return nil }
func (metadataRenderer) Pong(message.Pong) *Metadata       { return nil }
func (metadataRenderer) Error(message.Error) *Metadata     { return nil }
func (metadataRenderer) Reply(message.Reply) *Metadata     { return nil }
func (metadataRenderer) Cap(message.Cap) *Metadata         { return nil }
func (metadataRenderer) Mode(message.Mode) *Metadata       { return nil }
func (metadataRenderer) Unknown(message.Unknown) *Metadata { return nil }
