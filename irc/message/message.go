// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package message defines the canonical protocol messages produced from
// inbound IRC lines and consumed by the rewrite and render stages.
package message

import (
	"github.com/ergochat/scribe/irc/ident"
)

// UserInfo identifies the sender of a message. User and Host are empty
// when unknown.
type UserInfo struct {
	Nick ident.Identifier
	User string
	Host string
}

// NewUserInfo builds a UserInfo from its textual parts.
func NewUserInfo(nick, user, host string) UserInfo {
	return UserInfo{Nick: ident.New(nick), User: user, Host: host}
}

// Message is one of the fixed set of message variants below. The set is
// closed: only types in this package implement it.
type Message interface {
	isMessage()
}

type Nick struct {
	Old UserInfo
	New ident.Identifier
}

type Join struct {
	Who     UserInfo
	Channel ident.Identifier
}

type Part struct {
	Who       UserInfo
	Channel   ident.Identifier
	Reason    string
	HasReason bool
}

type Quit struct {
	Who       UserInfo
	Reason    string
	HasReason bool
}

type Kick struct {
	Kicker  UserInfo
	Channel ident.Identifier
	Kickee  ident.Identifier
	Reason  string
}

type Topic struct {
	Source  UserInfo
	Channel ident.Identifier
	Text    string
}

type Notice struct {
	Source  UserInfo
	Channel ident.Identifier
	Text    string
}

type Privmsg struct {
	Source  UserInfo
	Channel ident.Identifier
	Text    string
}

// Action is a CTCP ACTION ("/me") sent as a PRIVMSG.
type Action struct {
	Source  UserInfo
	Channel ident.Identifier
	Text    string
}

type Ping struct {
	Params []string
}

type Pong struct {
	Params []string
}

type Error struct {
	Reason string
}

// Reply is a numeric server reply.
type Reply struct {
	Code   int
	Params []string
}

type Cap struct {
	Command string
	Args    []string
}

type Mode struct {
	Who     UserInfo
	Channel ident.Identifier
	Params  []string
}

// Unknown carries any command without a dedicated variant. Source is only
// meaningful when HasSource is set.
type Unknown struct {
	Source    UserInfo
	HasSource bool
	Command   string
	Params    []string
}

func (Nick) isMessage()    {}
func (Join) isMessage()    {}
func (Part) isMessage()    {}
func (Quit) isMessage()    {}
func (Kick) isMessage()    {}
func (Topic) isMessage()   {}
func (Notice) isMessage()  {}
func (Privmsg) isMessage() {}
func (Action) isMessage()  {}
func (Ping) isMessage()    {}
func (Pong) isMessage()    {}
func (Error) isMessage()   {}
func (Reply) isMessage()   {}
func (Cap) isMessage()     {}
func (Mode) isMessage()    {}
func (Unknown) isMessage() {}
