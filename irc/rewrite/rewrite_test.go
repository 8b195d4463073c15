// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package rewrite

import (
	"errors"
	"regexp"
	"testing"

	"github.com/go-test/deep"

	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/message"
)

func init() {
	deep.CompareUnexportedFields = true
}

var (
	testBridge = Bridge{Nick: ident.New("relay"), Channel: ident.New("#relay")}
	testEngine = NewEngine(testBridge)
)

func fromBridge(text string) message.Message {
	return message.Privmsg{
		Source:  message.NewUserInfo("relay", "r", "bridge.example.com"),
		Channel: ident.New("#relay"),
		Text:    text,
	}
}

func relayedUser(nick string) message.UserInfo {
	return message.NewUserInfo(nick, "*", "*")
}

func TestDefaultRulesCheck(t *testing.T) {
	if err := CheckRules(DefaultRules(testBridge.Channel)); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, rule := range testEngine.Rules() {
		names = append(names, rule.Name())
	}
	if diff := deep.Equal(names, []string{"chat", "action", "join", "part", "quit", "nick"}); diff != nil {
		t.Errorf("unexpected rule order: %v", diff)
	}
}

func TestRewrite(t *testing.T) {
	channel := ident.New("#relay")
	testCases := []struct {
		text     string
		expected message.Message
	}{
		{
			"<alice> hello there",
			message.Privmsg{Source: relayedUser("alice"), Channel: channel, Text: "hello there"},
		},
		{
			"<> empty nick",
			message.Privmsg{Source: relayedUser(""), Channel: channel, Text: "empty nick"},
		},
		{
			"* alice waves hello",
			message.Action{Source: relayedUser("alice"), Channel: channel, Text: "waves hello"},
		},
		{
			"*** [net1] bob (b@host1) has joined the channel",
			message.Join{Who: message.NewUserInfo("bob@net1", "b", "host1"), Channel: channel},
		},
		{
			"*** [net1] bob has left the channel",
			message.Part{Who: relayedUser("bob@net1"), Channel: channel},
		},
		{
			"*** [net1] bob has left the channel (bye)",
			message.Part{Who: relayedUser("bob@net1"), Channel: channel, Reason: "bye", HasReason: true},
		},
		{
			"*** [net1] bob has left the channel ()",
			message.Part{Who: relayedUser("bob@net1"), Channel: channel, Reason: "", HasReason: true},
		},
		{
			"*** [net1] bob has quit (Ping timeout)",
			message.Quit{Who: relayedUser("bob@net1"), Reason: "Ping timeout", HasReason: true},
		},
		{
			"*** [net1] bob is now known as robert",
			message.Nick{Old: relayedUser("bob@net1"), New: ident.New("robert@net1")},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.text, func(t *testing.T) {
			result := testEngine.Rewrite(fromBridge(tt.text))
			if result.IsPass() {
				t.Fatalf("expected a replacement for %q", tt.text)
			}
			if diff := deep.Equal(result.Message, tt.expected); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestRewritePass(t *testing.T) {
	for _, text := range []string{
		"",
		"no pattern here",
		"<alice>missing space",
		"*** [net1] bob has joined the channel",
		"*** [net1] bob has quit",
		"*** [net1] bob is now known as",
		"  <alice> leading space",
	} {
		if result := testEngine.Rewrite(fromBridge(text)); !result.IsPass() {
			t.Errorf("expected %q to pass, got %#v", text, result.Message)
		}
	}
}

func TestTrigger(t *testing.T) {
	channel := ident.New("#relay")
	for _, msg := range []message.Message{
		// wrong sender
		message.Privmsg{Source: message.NewUserInfo("mallory", "", ""), Channel: channel, Text: "<alice> hello there"},
		// wrong channel
		message.Privmsg{Source: message.NewUserInfo("relay", "", ""), Channel: ident.New("#other"), Text: "<alice> hello there"},
		// not a privmsg
		message.Notice{Source: message.NewUserInfo("relay", "", ""), Channel: channel, Text: "<alice> hello there"},
		message.Action{Source: message.NewUserInfo("relay", "", ""), Channel: channel, Text: "<alice> hello there"},
		message.Ping{Params: []string{"<alice> hello there"}},
	} {
		if result := testEngine.Rewrite(msg); !result.IsPass() {
			t.Errorf("expected %#v to pass", msg)
		}
	}

	// identity comparison is casefolded
	msg := message.Privmsg{Source: message.NewUserInfo("RELAY", "", ""), Channel: ident.New("#Relay"), Text: "<alice> hi"}
	if testEngine.Rewrite(msg).IsPass() {
		t.Errorf("bridge identity should match case-insensitively")
	}
}

func TestArityMismatch(t *testing.T) {
	channel := testBridge.Channel
	synth2 := func(a, b string) message.Message { return message.Privmsg{Channel: channel, Text: a + b} }
	synth3 := func(a, b, c string) message.Message { return message.Error{Reason: a + b + c} }
	synth4 := func(a, b, c, d string) message.Message { return message.Error{Reason: a + b + c + d} }

	// each pattern matches its input but has the wrong number of groups
	rules := []*Rule{
		Rule2("chat", regexp.MustCompile(`^<([^>]*)> .*$`), synth2),
		Rule2("action", regexp.MustCompile(`^\* ([^ ]+) (.*) (x)$`), synth2),
		Rule4("join", regexp.MustCompile(`^\*\*\* \[([^\]]*)\] ([^ ]+) has joined$`), synth4),
		Rule4("part", regexp.MustCompile(`^\*\*\* \[([^\]]*)\] ([^ ]+) has left$`), synth4),
		Rule3("quit", regexp.MustCompile(`^\*\*\* \[([^\]]*)\] has quit$`), synth3),
		Rule3("nick", regexp.MustCompile(`^\*\*\* is now known as ([^ ]+)$`), synth3),
	}
	for _, rule := range rules {
		if err := rule.Check(); !errors.Is(err, errArityMismatch) {
			t.Errorf("rule %s should fail its self-check, got %v", rule.Name(), err)
		}
	}
	if CheckRules(rules) == nil {
		t.Errorf("CheckRules should report the mismatch")
	}

	engine := NewEngineWithRules(testBridge, rules)
	for _, text := range []string{
		"<alice> hello there",
		"* alice waves x",
		"*** [net1] bob has joined",
		"*** [net1] bob has left",
		"*** [net1] has quit",
		"*** is now known as robert",
	} {
		if result := engine.Rewrite(fromBridge(text)); !result.IsPass() {
			t.Errorf("arity mismatch on %q should pass, got %#v", text, result.Message)
		}
	}
}

func TestArityMismatchFallsThrough(t *testing.T) {
	broken := Rule2("broken", regexp.MustCompile(`^<([^>]*)> .*$`), func(a, b string) message.Message {
		return message.Error{Reason: "unreachable"}
	})
	rules := append([]*Rule{broken}, DefaultRules(testBridge.Channel)...)
	result, name := NewEngineWithRules(testBridge, rules).RewriteNamed(fromBridge("<alice> hi"))
	if name != "chat" {
		t.Errorf("expected the chat rule to fire after the broken one, got %q", name)
	}
	if _, ok := result.Message.(message.Privmsg); !ok {
		t.Errorf("expected a privmsg, got %#v", result.Message)
	}
}

func TestHook(t *testing.T) {
	var fired []string
	hook := testEngine.Hook(func(rule string, original, replacement message.Message) {
		fired = append(fired, rule)
	})
	if hook.Name != "unbridge" || hook.FilterOnly {
		t.Errorf("unexpected hook metadata: %s %v", hook.Name, hook.FilterOnly)
	}
	if verdict := hook.Run(fromBridge("<alice> hi")); verdict.Kind != ReplaceMessage || verdict.Message == nil {
		t.Errorf("expected a replacement verdict, got %#v", verdict)
	}
	if verdict := hook.Run(fromBridge("nothing")); verdict.Kind != KeepMessage || verdict.Message != nil {
		t.Errorf("expected a keep verdict, got %#v", verdict)
	}
	if diff := deep.Equal(fired, []string{"chat"}); diff != nil {
		t.Errorf("observer should see exactly the rewrite: %v", diff)
	}

	// a nil observer is allowed
	if verdict := testEngine.Hook(nil).Run(fromBridge("* alice waves")); verdict.Kind != ReplaceMessage {
		t.Errorf("expected a replacement verdict, got %#v", verdict)
	}
}
