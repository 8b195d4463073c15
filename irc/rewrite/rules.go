// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package rewrite

import (
	"regexp"

	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/message"
)

// patterns used by the relay bot; all are anchored at both ends
const (
	chatPattern   = `^<([^>]*)> (.*)$`
	actionPattern = `^\* ([^ ]+) (.*)$`
	joinPattern   = `^\*\*\* \[([^\]]*)\] ([^ ]+) \(([^@)]*)@([^)]*)\) has joined the channel$`
	partPattern   = `^\*\*\* \[([^\]]*)\] ([^ ]+) has left the channel( \((.*)\))?$`
	quitPattern   = `^\*\*\* \[([^\]]*)\] ([^ ]+) has quit \((.*)\)$`
	nickPattern   = `^\*\*\* \[([^\]]*)\] ([^ ]+) is now known as ([^ ]+)$`
)

// compiled at init: a bad pattern is a build defect and must stop the program
var (
	chatRegexp   = regexp.MustCompile(chatPattern)
	actionRegexp = regexp.MustCompile(actionPattern)
	joinRegexp   = regexp.MustCompile(joinPattern)
	partRegexp   = regexp.MustCompile(partPattern)
	quitRegexp   = regexp.MustCompile(quitPattern)
	nickRegexp   = regexp.MustCompile(nickPattern)
)

// relayed users have no visible user or host
func relayed(nick ident.Identifier) message.UserInfo {
	return message.UserInfo{Nick: nick, User: "*", Host: "*"}
}

// DefaultRules returns the relay rules in priority order, with synthesized
// messages addressed to channel.
func DefaultRules(channel ident.Identifier) []*Rule {
	return []*Rule{
		Rule2("chat", chatRegexp, func(nick, text string) message.Message {
			return message.Privmsg{Source: relayed(ident.New(nick)), Channel: channel, Text: text}
		}),
		Rule2("action", actionRegexp, func(nick, text string) message.Message {
			return message.Action{Source: relayed(ident.New(nick)), Channel: channel, Text: text}
		}),
		Rule4("join", joinRegexp, func(server, nick, user, host string) message.Message {
			who := message.UserInfo{Nick: ident.New(nick).Suffix(server), User: user, Host: host}
			return message.Join{Who: who, Channel: channel}
		}),
		Rule4("part", partRegexp, func(server, nick, reasonWrapper, reason string) message.Message {
			part := message.Part{Who: relayed(ident.New(nick).Suffix(server)), Channel: channel}
			if reasonWrapper != "" {
				part.Reason, part.HasReason = reason, true
			}
			return part
		}),
		Rule3("quit", quitRegexp, func(server, nick, reason string) message.Message {
			return message.Quit{Who: relayed(ident.New(nick).Suffix(server)), Reason: reason, HasReason: true}
		}),
		Rule3("nick", nickRegexp, func(server, oldNick, newNick string) message.Message {
			return message.Nick{Old: relayed(ident.New(oldNick).Suffix(server)), New: ident.New(newNick).Suffix(server)}
		}),
	}
}

// CheckRules verifies every rule's arity against its pattern.
func CheckRules(rules []*Rule) error {
	for _, rule := range rules {
		if err := rule.Check(); err != nil {
			return err
		}
	}
	return nil
}
