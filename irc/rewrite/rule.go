// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package rewrite

import (
	"fmt"
	"regexp"

	"github.com/ergochat/scribe/irc/message"
)

// Rule matches a relayed line and synthesizes the native message it stands for.
// The synthesize function is only ever called with exactly arity captures.
type Rule struct {
	name       string
	pattern    *regexp.Regexp
	arity      int
	synthesize func(captures []string) message.Message
}

// Name returns the rule's name, e.g. "chat".
func (r *Rule) Name() string {
	return r.name
}

// Arity returns the number of captures the rule's synthesizer takes.
func (r *Rule) Arity() int {
	return r.arity
}

// Check verifies that the pattern's group count agrees with the declared arity.
func (r *Rule) Check() error {
	if groups := r.pattern.NumSubexp(); groups != r.arity {
		return fmt.Errorf("%w: rule %s has %d groups, declares %d", errArityMismatch, r.name, groups, r.arity)
	}
	return nil
}

// apply returns the synthesized message if text fully matches the pattern
// with exactly arity captures.
func (r *Rule) apply(text string) (message.Message, bool) {
	matches := r.pattern.FindStringSubmatch(text)
	if matches == nil {
		return nil, false
	}
	captures := matches[1:]
	if len(captures) != r.arity {
		return nil, false
	}
	return r.synthesize(captures), true
}

// Rule2 builds a rule whose synthesizer takes two captures.
func Rule2(name string, pattern *regexp.Regexp, synthesize func(a, b string) message.Message) *Rule {
	return &Rule{
		name:    name,
		pattern: pattern,
		arity:   2,
		synthesize: func(c []string) message.Message {
			return synthesize(c[0], c[1])
		},
	}
}

// Rule3 builds a rule whose synthesizer takes three captures.
func Rule3(name string, pattern *regexp.Regexp, synthesize func(a, b, c string) message.Message) *Rule {
	return &Rule{
		name:    name,
		pattern: pattern,
		arity:   3,
		synthesize: func(c []string) message.Message {
			return synthesize(c[0], c[1], c[2])
		},
	}
}

// Rule4 builds a rule whose synthesizer takes four captures.
func Rule4(name string, pattern *regexp.Regexp, synthesize func(a, b, c, d string) message.Message) *Rule {
	return &Rule{
		name:    name,
		pattern: pattern,
		arity:   4,
		synthesize: func(c []string) message.Message {
			return synthesize(c[0], c[1], c[2], c[3])
		},
	}
}
