// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package rewrite

import (
	"github.com/ergochat/scribe/irc/message"
)

// VerdictKind says what a hook decided about a message.
type VerdictKind uint

const (
	// KeepMessage lets the message through unchanged.
	KeepMessage VerdictKind = iota
	// DropMessage suppresses the message.
	DropMessage
	// ReplaceMessage substitutes Verdict.Message for the input.
	ReplaceMessage
)

// Verdict is a hook's decision about one message.
type Verdict struct {
	Kind    VerdictKind
	Message message.Message
}

// Hook is a named message transformer run by a dispatcher before rendering.
// FilterOnly hooks observe or drop messages but never replace them.
type Hook struct {
	Name       string
	FilterOnly bool
	Run        func(message.Message) Verdict
}

// Observer is told which rule rewrote a message.
type Observer func(rule string, original, replacement message.Message)

// Hook exposes the engine as a rewriting hook. observe may be nil.
func (e *Engine) Hook(observe Observer) Hook {
	return Hook{
		Name:       "unbridge",
		FilterOnly: false,
		Run: func(msg message.Message) Verdict {
			result, rule := e.rewrite(msg)
			if result.IsPass() {
				return Verdict{Kind: KeepMessage}
			}
			if observe != nil {
				observe(rule, msg, result.Message)
			}
			return Verdict{Kind: ReplaceMessage, Message: result.Message}
		},
	}
}

// RewriteNamed is Rewrite, also returning the name of the rule that fired
// ("" on Pass).
func (e *Engine) RewriteNamed(msg message.Message) (Result, string) {
	return e.rewrite(msg)
}
