// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package message

import (
	"strconv"
	"strings"

	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ergochat/scribe/irc/ident"
)

const ctcpDelim = "\x01"

// FromIRC converts a parsed wire message into its canonical variant.
// It is total: a command missing its source or required parameters
// becomes an Unknown instead of failing.
func FromIRC(msg ircmsg.Message) Message {
	command := strings.ToUpper(msg.Command)
	params := msg.Params
	nuh, srcErr := msg.NUH()
	hasSource := srcErr == nil
	who := UserInfo{Nick: ident.New(nuh.Name), User: nuh.User, Host: nuh.Host}

	switch command {
	case "PING":
		return Ping{Params: params}
	case "PONG":
		return Pong{Params: params}
	case "ERROR":
		return Error{Reason: strings.Join(params, " ")}
	case "CAP":
		if 2 <= len(params) {
			return Cap{Command: params[1], Args: params[2:]}
		}
	}

	if code, ok := parseNumeric(command); ok {
		return Reply{Code: code, Params: params}
	}

	if hasSource {
		switch command {
		case "NICK":
			if 1 <= len(params) {
				return Nick{Old: who, New: ident.New(params[0])}
			}
		case "JOIN":
			if 1 <= len(params) {
				return Join{Who: who, Channel: ident.New(params[0])}
			}
		case "PART":
			if 1 <= len(params) {
				part := Part{Who: who, Channel: ident.New(params[0])}
				if 2 <= len(params) {
					part.Reason, part.HasReason = params[1], true
				}
				return part
			}
		case "QUIT":
			quit := Quit{Who: who}
			if 1 <= len(params) {
				quit.Reason, quit.HasReason = params[0], true
			}
			return quit
		case "KICK":
			if 2 <= len(params) {
				kick := Kick{Kicker: who, Channel: ident.New(params[0]), Kickee: ident.New(params[1])}
				if 3 <= len(params) {
					kick.Reason = params[2]
				}
				if kick.Reason == "" {
					kick.Reason = params[1]
				}
				return kick
			}
		case "TOPIC":
			if 2 <= len(params) {
				return Topic{Source: who, Channel: ident.New(params[0]), Text: params[1]}
			}
		case "NOTICE":
			if 2 <= len(params) {
				return Notice{Source: who, Channel: ident.New(params[0]), Text: params[1]}
			}
		case "PRIVMSG":
			if 2 <= len(params) {
				if action, ok := parseAction(params[1]); ok {
					return Action{Source: who, Channel: ident.New(params[0]), Text: action}
				}
				return Privmsg{Source: who, Channel: ident.New(params[0]), Text: params[1]}
			}
		case "MODE":
			if 1 <= len(params) {
				return Mode{Who: who, Channel: ident.New(params[0]), Params: params[1:]}
			}
		}
	}

	return Unknown{Source: who, HasSource: hasSource, Command: msg.Command, Params: params}
}

func parseNumeric(command string) (code int, ok bool) {
	if len(command) != 3 {
		return 0, false
	}
	for i := 0; i < len(command); i++ {
		if command[i] < '0' || '9' < command[i] {
			return 0, false
		}
	}
	code, err := strconv.Atoi(command)
	return code, err == nil
}

// parseAction extracts the body of a CTCP ACTION; the closing delimiter is optional.
func parseAction(text string) (body string, ok bool) {
	if !strings.HasPrefix(text, ctcpDelim+"ACTION") {
		return "", false
	}
	body = strings.TrimPrefix(text, ctcpDelim+"ACTION")
	body = strings.TrimSuffix(body, ctcpDelim)
	if body == "" {
		return "", true
	}
	if body[0] != ' ' {
		return "", false
	}
	return body[1:], true
}
