// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package render turns canonical messages into styled text for a terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ergochat/scribe/irc/format"
	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/message"
	"github.com/ergochat/scribe/irc/style"
)

// Mode selects how verbose the rendering is.
type Mode uint

const (
	// Normal shows only colored nicknames.
	Normal Mode = iota
	// Detailed adds verb labels, full timestamps and user@host.
	Detailed
)

func (m Mode) String() string {
	if m == Detailed {
		return "detailed"
	}
	return "normal"
}

// Params are the per-line inputs that are not part of the message itself.
type Params struct {
	// StatusSigils restrict who could see the message, e.g. "@" for a
	// message sent to channel operators only.
	StatusSigils string
	// SenderSigils are the sender's channel privileges, e.g. "@" or "+".
	// Deriving them needs channel membership, which only the caller can track.
	SenderSigils string
	// Highlights are the nicknames to color inside message text.
	Highlights ident.Set
}

// ColorProvider assigns each identifier a stable color.
type ColorProvider interface {
	ColorOf(ident.Identifier) style.Color
}

// MarkupParser interprets inline formatting codes.
type MarkupParser interface {
	Parse(text string) style.Text
}

// Renderer holds the render collaborators. It has no mutable state and is
// safe for concurrent use.
type Renderer struct {
	colors ColorProvider
	markup MarkupParser
}

// NewRenderer returns a renderer using the given collaborators.
func NewRenderer(colors ColorProvider, markup MarkupParser) *Renderer {
	return &Renderer{colors: colors, markup: markup}
}

// NewDefaultRenderer uses the default palette and the IRC formatting parser.
func NewDefaultRenderer() *Renderer {
	return NewRenderer(format.DefaultPalette, format.Parser{})
}

var (
	separator  = style.Colored(" · ", style.Accent)
	ignoreText = style.Colored("i", style.Quiet)
)

// Render produces the display line for msg received at ts.
func (r *Renderer) Render(ts time.Time, params Params, msg message.Message, mode Mode) style.Text {
	body := message.Match[style.Text](msg, &bodyRenderer{r: r, params: params, mode: mode})
	return style.Concat(r.timestamp(ts, mode), r.statusSigils(params), body)
}

// Line prefixes an already-rendered body with the timestamp for ts.
func (r *Renderer) Line(ts time.Time, mode Mode, body style.Text) style.Text {
	return style.Concat(r.timestamp(ts, mode), body)
}

// IgnoreImage stands in for a suppressed message.
func (r *Renderer) IgnoreImage() style.Text {
	return ignoreText
}

func (r *Renderer) timestamp(ts time.Time, mode Mode) style.Text {
	layout := "15:04 "
	if mode == Detailed {
		layout = "2006-01-02 15:04:05 "
	}
	return style.Colored(ts.Format(layout), style.Quiet)
}

func (r *Renderer) statusSigils(params Params) style.Text {
	if params.StatusSigils == "" {
		return nil
	}
	return style.Concat(style.Plain("("), style.Colored(params.StatusSigils, style.Accent), style.Plain(") "))
}

// ColoredIdentifier renders id in its palette color.
func (r *Renderer) ColoredIdentifier(id ident.Identifier) style.Text {
	return style.Colored(id.String(), r.colors.ColorOf(id))
}

// QuietIdentifier renders id in the fixed quiet color.
func (r *Renderer) QuietIdentifier(id ident.Identifier) style.Text {
	return style.Colored(id.String(), style.Quiet)
}

func (r *Renderer) userInfo(who message.UserInfo, mode Mode) style.Text {
	nick := r.ColoredIdentifier(who.Nick)
	if mode != Detailed {
		return nick
	}
	var user, host style.Text
	if who.User != "" {
		user = style.Colored("!"+who.User, style.Quiet)
	}
	if who.Host != "" {
		host = style.Colored("@"+who.Host, style.Quiet)
	}
	return style.Concat(nick, user, host)
}

func (r *Renderer) parsed(text string) style.Text {
	return r.markup.Parse(text)
}

// ParsedWithHighlight parses text, coloring any word that is one of nicks.
// Text containing control characters goes to the markup parser untouched.
func (r *Renderer) ParsedWithHighlight(text string, nicks ident.Set) style.Text {
	if format.HasControl(text) {
		return r.parsed(text)
	}
	var result []style.Text
	var plain strings.Builder
	for _, token := range splitNicks(text) {
		if isNickToken(token) && nicks.Has(ident.New(token)) {
			result = append(result, style.Plain(plain.String()), r.ColoredIdentifier(ident.New(token)))
			plain.Reset()
		} else {
			plain.WriteString(token)
		}
	}
	result = append(result, style.Plain(plain.String()))
	return style.Concat(result...)
}

func (r *Renderer) joinParams(params []string) style.Text {
	parts := make([]style.Text, len(params))
	for i, param := range params {
		parts[i] = style.Plain(param)
	}
	return style.Join(parts, separator)
}

// bodyRenderer renders the variant-specific part of a line.
type bodyRenderer struct {
	r      *Renderer
	params Params
	mode   Mode
}

func (b *bodyRenderer) verb(label string) style.Text {
	if b.mode != Detailed {
		return nil
	}
	return style.Plain(label)
}

func (b *bodyRenderer) senderSigils() style.Text {
	return style.Colored(b.params.SenderSigils, style.Accent)
}

func (b *bodyRenderer) user(who message.UserInfo) style.Text {
	return b.r.userInfo(who, b.mode)
}

func (b *bodyRenderer) reason(reason string, present bool) style.Text {
	if !present {
		return nil
	}
	return style.Concat(style.Plain(" ("), b.r.parsed(reason), style.Plain(")"))
}

func (b *bodyRenderer) Nick(m message.Nick) style.Text {
	return style.Concat(b.verb("nick "), b.senderSigils(), b.user(m.Old), style.Plain(" became "), b.r.ColoredIdentifier(m.New))
}

func (b *bodyRenderer) Join(m message.Join) style.Text {
	return style.Concat(style.Plain("join "), b.user(m.Who))
}

func (b *bodyRenderer) Part(m message.Part) style.Text {
	return style.Concat(style.Plain("part "), b.user(m.Who), b.reason(m.Reason, m.HasReason))
}

func (b *bodyRenderer) Quit(m message.Quit) style.Text {
	return style.Concat(style.Plain("quit "), b.user(m.Who), b.reason(m.Reason, m.HasReason))
}

func (b *bodyRenderer) Kick(m message.Kick) style.Text {
	return style.Concat(b.verb("kick "), b.senderSigils(), b.user(m.Kicker), style.Plain(" kicked "),
		b.r.ColoredIdentifier(m.Kickee), style.Plain(": "), b.r.parsed(m.Reason))
}

func (b *bodyRenderer) Topic(m message.Topic) style.Text {
	return style.Concat(b.user(m.Source), style.Plain(" changed topic to "), b.r.parsed(m.Text))
}

func (b *bodyRenderer) Notice(m message.Notice) style.Text {
	return style.Concat(b.verb("note "), b.senderSigils(), b.user(m.Source), style.Colored(": ", style.Accent),
		b.r.ParsedWithHighlight(m.Text, b.params.Highlights))
}

func (b *bodyRenderer) Privmsg(m message.Privmsg) style.Text {
	return style.Concat(b.verb("chat "), b.senderSigils(), b.user(m.Source), style.Plain(": "),
		b.r.ParsedWithHighlight(m.Text, b.params.Highlights))
}

func (b *bodyRenderer) Action(m message.Action) style.Text {
	return style.Concat(b.verb("chat "), style.Colored("* ", style.Accent), b.senderSigils(), b.user(m.Source),
		style.Plain(" "), b.r.ParsedWithHighlight(m.Text, b.params.Highlights))
}

func (b *bodyRenderer) Ping(m message.Ping) style.Text {
	return style.Concat(style.Plain("PING "), b.r.joinParams(m.Params))
}

func (b *bodyRenderer) Pong(m message.Pong) style.Text {
	return style.Concat(style.Plain("PONG "), b.r.joinParams(m.Params))
}

func (b *bodyRenderer) Error(m message.Error) style.Text {
	return style.Concat(style.Colored("ERROR ", style.Alert), b.r.parsed(m.Reason))
}

func (b *bodyRenderer) Reply(m message.Reply) style.Text {
	return style.Concat(style.Plain(fmt.Sprintf("%03d ", m.Code)), b.r.joinParams(m.Params))
}

func (b *bodyRenderer) Cap(m message.Cap) style.Text {
	if len(m.Args) == 0 {
		return style.Plain(m.Command)
	}
	return style.Concat(style.Plain(m.Command+" "), b.r.joinParams(m.Args))
}

func (b *bodyRenderer) Mode(m message.Mode) style.Text {
	return style.Concat(b.verb("mode "), b.senderSigils(), b.user(m.Who), style.Plain(" set mode: "), b.r.joinParams(m.Params))
}

func (b *bodyRenderer) Unknown(m message.Unknown) style.Text {
	var source style.Text
	if m.HasSource {
		source = style.Concat(b.user(m.Source), style.Plain(" "))
	}
	if len(m.Params) == 0 {
		return style.Concat(source, style.Plain(m.Command))
	}
	return style.Concat(source, style.Plain(m.Command+" "), b.r.joinParams(m.Params))
}
