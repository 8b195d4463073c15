// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package pipeline connects wire parsing, the hook chain and rendering:
// each raw IRC line goes in, zero or more display lines come out.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ergochat/scribe/irc/config"
	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/logger"
	"github.com/ergochat/scribe/irc/message"
	"github.com/ergochat/scribe/irc/render"
	"github.com/ergochat/scribe/irc/rewrite"
	"github.com/ergochat/scribe/irc/style"
)

// Pipeline is not safe for concurrent use: with collapsing enabled it
// buffers membership events between calls.
type Pipeline struct {
	renderer   *render.Renderer
	hooks      []rewrite.Hook
	mode       render.Mode
	highlights ident.Set
	statusmsg  string
	collapse   bool
	logger     *logger.Manager

	pending     []render.Metadata
	pendingTime time.Time
}

// New builds a pipeline from the configuration. logman may be nil.
func New(conf *config.Config, renderer *render.Renderer, logman *logger.Manager) *Pipeline {
	p := &Pipeline{
		renderer:   renderer,
		highlights: ident.NewSet(conf.Render.Highlights...),
		statusmsg:  conf.Render.StatusSigils,
		collapse:   conf.Render.Collapse,
		logger:     logman,
	}
	if conf.Render.Detailed {
		p.mode = render.Detailed
	}
	// relayed users are ignored by the identity they are unbridged to
	if conf.Bridge.Enabled {
		engine := rewrite.NewEngine(rewrite.Bridge{
			Nick:    ident.New(conf.Bridge.Nick),
			Channel: ident.New(conf.Bridge.Channel),
		})
		p.hooks = append(p.hooks, engine.Hook(p.logRewrite))
	}
	if len(conf.Ignore) != 0 {
		p.hooks = append(p.hooks, IgnoreHook(ident.NewSet(conf.Ignore...)))
	}
	return p
}

// SetMode overrides the configured render mode.
func (p *Pipeline) SetMode(mode render.Mode) {
	p.mode = mode
}

// Hooks returns the hook chain in the order it runs.
func (p *Pipeline) Hooks() []rewrite.Hook {
	return p.hooks
}

func (p *Pipeline) logRewrite(rule string, original, replacement message.Message) {
	if privmsg, ok := original.(message.Privmsg); ok {
		p.logger.Debug("rewrite", rule, privmsg.Text)
	}
}

// IgnoreHook drops every message sent by one of nicks. Relayed users are
// matched by their unbridged nick, network-qualified for membership events.
func IgnoreHook(nicks ident.Set) rewrite.Hook {
	return rewrite.Hook{
		Name:       "ignore",
		FilterOnly: true,
		Run: func(msg message.Message) rewrite.Verdict {
			if who, ok := message.Sender(msg); ok && nicks.Has(who.Nick) {
				return rewrite.Verdict{Kind: rewrite.DropMessage}
			}
			return rewrite.Verdict{Kind: rewrite.KeepMessage}
		},
	}
}

// Process parses one raw IRC line received at now and returns the lines to display.
func (p *Pipeline) Process(line string, now time.Time) ([]style.Text, error) {
	msg, err := ircmsg.ParseLine(line)
	if err != nil {
		p.logger.Warning("parse", "could not parse line", err.Error())
		return nil, fmt.Errorf("could not parse %q: %w", line, err)
	}
	ts := now
	if present, value := msg.GetTag("time"); present {
		if serverTime, err := time.Parse(time.RFC3339Nano, value); err == nil {
			ts = serverTime.In(now.Location())
		} else {
			p.logger.Debug("parse", "ignoring bad server-time", value)
		}
	}
	params := render.Params{Highlights: p.highlights}
	params.StatusSigils = stripStatusSigils(&msg, p.statusmsg)
	return p.ProcessMessage(message.FromIRC(msg), ts, params), nil
}

// ProcessMessage runs msg through the hook chain and renders the result.
// Sender sigils depend on channel membership, which the pipeline does not
// track; callers that do can pass them in params.
func (p *Pipeline) ProcessMessage(msg message.Message, ts time.Time, params render.Params) (lines []style.Text) {
	for _, hook := range p.hooks {
		verdict := hook.Run(msg)
		switch verdict.Kind {
		case rewrite.DropMessage:
			p.logger.Debug("hook", hook.Name, "dropped message")
			return append(p.Flush(), p.renderer.Line(ts, p.mode, p.renderer.IgnoreImage()))
		case rewrite.ReplaceMessage:
			if hook.FilterOnly {
				p.logger.Warning("hook", hook.Name, "filter-only hook tried to replace a message")
				continue
			}
			msg = verdict.Message
		}
	}

	if p.collapse {
		if img, ok := p.renderer.MetadataImage(msg); ok {
			if len(p.pending) == 0 {
				p.pendingTime = ts
			}
			p.pending = append(p.pending, img)
			return nil
		}
	}
	lines = p.Flush()
	return append(lines, p.renderer.Render(ts, params, msg, p.mode))
}

// Flush returns the collapsed line for any buffered membership events.
func (p *Pipeline) Flush() []style.Text {
	if len(p.pending) == 0 {
		return nil
	}
	line := p.renderer.Line(p.pendingTime, p.mode, p.renderer.Collapse(p.pending))
	p.pending = nil
	return []style.Text{line}
}

// stripStatusSigils removes STATUSMSG prefixes (e.g. the "@" in "@#chan")
// from a PRIVMSG or NOTICE target and returns them. statusSigils is the set
// of prefixes the server accepts.
func stripStatusSigils(msg *ircmsg.Message, statusSigils string) (sigils string) {
	command := strings.ToUpper(msg.Command)
	if (command != "PRIVMSG" && command != "NOTICE") || len(msg.Params) == 0 {
		return ""
	}
	target := msg.Params[0]
	i := 0
	for i < len(target) && strings.IndexByte(statusSigils, target[i]) != -1 {
		i++
	}
	// "&" is also a channel prefix, so the name must remain a channel
	if 0 < i && target[i-1] == '&' && (i == len(target) || !strings.ContainsAny(target[i:i+1], "#&")) {
		i--
	}
	if i == 0 || i == len(target) || !strings.ContainsAny(target[i:i+1], "#&") {
		return ""
	}
	params := make([]string, len(msg.Params))
	copy(params, msg.Params)
	params[0] = target[i:]
	msg.Params = params
	return target[:i]
}
