// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package message

import (
	"fmt"
)

// Visitor handles every message variant. Adding a variant to this package
// means adding a method here, which breaks every consumer at compile time
// until it handles the new case.
type Visitor[T any] interface {
	Nick(Nick) T
	Join(Join) T
	Part(Part) T
	Quit(Quit) T
	Kick(Kick) T
	Topic(Topic) T
	Notice(Notice) T
	Privmsg(Privmsg) T
	Action(Action) T
	Ping(Ping) T
	Pong(Pong) T
	Error(Error) T
	Reply(Reply) T
	Cap(Cap) T
	Mode(Mode) T
	Unknown(Unknown) T
}

// Match dispatches msg to the visitor method for its variant.
func Match[T any](msg Message, v Visitor[T]) T {
	switch m := msg.(type) {
	case Nick:
		return v.Nick(m)
	case Join:
		return v.Join(m)
	case Part:
		return v.Part(m)
	case Quit:
		return v.Quit(m)
	case Kick:
		return v.Kick(m)
	case Topic:
		return v.Topic(m)
	case Notice:
		return v.Notice(m)
	case Privmsg:
		return v.Privmsg(m)
	case Action:
		return v.Action(m)
	case Ping:
		return v.Ping(m)
	case Pong:
		return v.Pong(m)
	case Error:
		return v.Error(m)
	case Reply:
		return v.Reply(m)
	case Cap:
		return v.Cap(m)
	case Mode:
		return v.Mode(m)
	case Unknown:
		return v.Unknown(m)
	default:
		// unreachable: isMessage is unexported
		panic(fmt.Sprintf("unhandled message variant %T", msg))
	}
}

// Sender returns the user a message originates from, if it has one.
func Sender(msg Message) (UserInfo, bool) {
	switch m := msg.(type) {
	case Nick:
		return m.Old, true
	case Join:
		return m.Who, true
	case Part:
		return m.Who, true
	case Quit:
		return m.Who, true
	case Kick:
		return m.Kicker, true
	case Topic:
		return m.Source, true
	case Notice:
		return m.Source, true
	case Privmsg:
		return m.Source, true
	case Action:
		return m.Source, true
	case Mode:
		return m.Who, true
	case Unknown:
		return m.Source, m.HasSource
	}
	return UserInfo{}, false
}
