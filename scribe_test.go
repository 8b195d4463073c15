// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/ergochat/scribe/irc/config"
	"github.com/ergochat/scribe/irc/pipeline"
	"github.com/ergochat/scribe/irc/render"
)

func TestDoRender(t *testing.T) {
	input := strings.Join([]string{
		":relay!r@bridge PRIVMSG #relay :<alice> hello there\r",
		"",
		"\x00not irc",
		":bob!b@host PRIVMSG #relay :hi alice",
	}, "\n")

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	p := pipeline.New(config.Default(), render.NewDefaultRenderer(), nil)
	if err := doRender(p, nil, strings.NewReader(input), out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], " alice: hello there") || !strings.HasSuffix(lines[1], " bob: hi alice") {
		t.Errorf("unexpected output %q", lines)
	}
}

func TestDoRenderLongLine(t *testing.T) {
	long := ":bob!b@host PRIVMSG #c :" + strings.Repeat("a", 2*maxLineLength)
	testCases := []struct {
		name  string
		input string
	}{
		{"middle", ":bob!b@host PRIVMSG #c :before\n" + long + "\n:bob!b@host PRIVMSG #c :after\n"},
		{"end", ":bob!b@host PRIVMSG #c :before\n:bob!b@host PRIVMSG #c :after\n" + long},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
			p := pipeline.New(config.Default(), render.NewDefaultRenderer(), nil)
			if err := doRender(p, nil, strings.NewReader(tt.input), out); err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != 2 || !strings.HasSuffix(lines[0], " bob: before") || !strings.HasSuffix(lines[1], " bob: after") {
				t.Errorf("overlong lines should be skipped, got %q", lines)
			}
		})
	}
}

func TestDoCheck(t *testing.T) {
	if err := doCheck(config.Default()); err != nil {
		t.Error(err)
	}
}

func TestLoadConfigDefault(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	conf, err := loadConfig(config.DefaultFilename)
	if err != nil || conf.Bridge.Nick != "relay" {
		t.Errorf("a missing default config should fall back to defaults: %v", err)
	}
	if _, err := loadConfig("elsewhere.yaml"); err == nil {
		t.Errorf("a missing named config should be an error")
	}
}
