// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package rewrite turns lines relayed by a bridge bot back into the native
// messages they describe, so they render like any other event.
package rewrite

import (
	"errors"

	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/message"
)

var (
	errArityMismatch = errors.New("rule arity does not match its pattern")
)

// Bridge is the identity whose channel messages are candidates for rewriting.
type Bridge struct {
	Nick    ident.Identifier
	Channel ident.Identifier
}

// Result is the outcome of rewriting a message: either Pass, or a replacement.
type Result struct {
	Message message.Message
}

// Pass leaves the message unchanged.
var Pass = Result{}

// Replace substitutes msg for the input message.
func Replace(msg message.Message) Result {
	return Result{Message: msg}
}

// IsPass reports whether the message was left unchanged.
func (r Result) IsPass() bool {
	return r.Message == nil
}

// Engine applies an ordered rule list to messages from the bridge.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	bridge Bridge
	rules  []*Rule
}

// NewEngine returns an engine for bridge using the default relay rules.
func NewEngine(bridge Bridge) *Engine {
	return NewEngineWithRules(bridge, DefaultRules(bridge.Channel))
}

// NewEngineWithRules returns an engine that tries rules in the given order.
func NewEngineWithRules(bridge Bridge, rules []*Rule) *Engine {
	return &Engine{bridge: bridge, rules: rules}
}

// Bridge returns the configured bridge identity.
func (e *Engine) Bridge() Bridge {
	return e.bridge
}

// Rules returns the rules in priority order.
func (e *Engine) Rules() []*Rule {
	return e.rules
}

// Triggers reports whether msg is a channel message from the bridge.
func (e *Engine) Triggers(msg message.Message) bool {
	privmsg, ok := msg.(message.Privmsg)
	return ok && privmsg.Source.Nick.Equal(e.bridge.Nick) && privmsg.Channel.Equal(e.bridge.Channel)
}

// Rewrite returns the message synthesized by the first matching rule,
// or Pass if msg is not from the bridge or no rule matches.
func (e *Engine) Rewrite(msg message.Message) Result {
	result, _ := e.rewrite(msg)
	return result
}

// rewrite also reports which rule fired, for logging.
func (e *Engine) rewrite(msg message.Message) (Result, string) {
	if !e.Triggers(msg) {
		return Pass, ""
	}
	text := msg.(message.Privmsg).Text
	for _, rule := range e.rules {
		if replacement, ok := rule.apply(text); ok {
			return Replace(replacement), rule.name
		}
	}
	return Pass, ""
}
