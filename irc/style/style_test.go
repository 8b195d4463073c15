// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/muesli/termenv"
)

func TestConcat(t *testing.T) {
	result := Concat(Plain("a"), nil, Plain(""), Colored("b", Red), Text{{Text: ""}})
	expected := Text{
		{Text: "a"},
		{Text: "b", Style: Style{Foreground: Red}},
	}
	if diff := deep.Equal(result, expected); diff != nil {
		t.Error(diff)
	}
	if result.String() != "ab" {
		t.Errorf("unexpected plain text %q", result.String())
	}
}

func TestJoin(t *testing.T) {
	sep := Colored(",", Accent)
	result := Join([]Text{Plain("a"), Plain("b"), Plain("c")}, sep)
	if result.String() != "a,b,c" {
		t.Errorf("unexpected join %q", result.String())
	}
	if len(result) != 5 || result[1].Style.Foreground != Accent {
		t.Errorf("separators should keep their style: %v", result)
	}
	if len(Join(nil, sep)) != 0 {
		t.Errorf("joining nothing should yield nothing")
	}
}

func TestEqual(t *testing.T) {
	a := Concat(Plain("x"), Colored("y", Blue))
	b := Concat(Plain("x"), Colored("y", Blue))
	c := Concat(Plain("x"), Colored("y", Green))
	if !a.Equal(b) {
		t.Errorf("identical texts should be equal")
	}
	if a.Equal(c) || a.Equal(a[:1]) {
		t.Errorf("differing texts should not be equal")
	}
}

func TestANSI(t *testing.T) {
	var buf bytes.Buffer
	text := Concat(Plain("plain "), Colored("red", Red), Styled("bold", Style{Bold: true}))

	ascii := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	if out := text.ANSI(ascii); out != "plain redbold" {
		t.Errorf("ascii profile should strip colors, got %q", out)
	}

	colored := termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
	out := text.ANSI(colored)
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "red") {
		t.Errorf("ansi profile should emit escapes, got %q", out)
	}
}
