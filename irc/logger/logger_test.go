// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scribe.log")
	manager, err := NewManager([]LoggingConfig{{
		MethodFile:    true,
		Filename:      filename,
		Types:         []string{"*"},
		ExcludedTypes: []string{"parse"},
		Level:         LogInfo,
	}})
	if err != nil {
		t.Fatal(err)
	}

	manager.Debug("rewrite", "below threshold")
	manager.Warning("parse", "excluded type")
	manager.Info("rewrite", "chat", "<alice> hi")
	manager.Error("config", "broken")
	if err := manager.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], " : info  : rewrite : chat : <alice> hi") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " : error : config  : broken") {
		t.Errorf("unexpected line %q", lines[1])
	}
}

func TestBadFile(t *testing.T) {
	_, err := NewManager([]LoggingConfig{{
		MethodFile: true,
		Filename:   filepath.Join(t.TempDir(), "missing", "scribe.log"),
		Types:      []string{"*"},
	}})
	if err == nil {
		t.Errorf("opening a log file in a missing directory should fail")
	}
}

func TestNilManager(t *testing.T) {
	var manager *Manager
	manager.Info("rewrite", "discarded")
	if err := manager.Close(); err != nil {
		t.Error(err)
	}
}

func TestStderrLogger(t *testing.T) {
	var stderr bytes.Buffer
	manager, err := newManager([]LoggingConfig{
		{MethodStderr: true, Types: []string{"rewrite"}, Level: LogDebug},
		{MethodStderr: true, Types: []string{"*"}, ExcludedTypes: []string{"rewrite"}, Level: LogWarning},
	}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	manager.now = func() time.Time { return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC) }

	manager.Debug("rewrite", "chat", "<alice> hi")
	manager.Info("parse", "below threshold")
	manager.Warning("hook", "ignore", "filter-only hook tried to replace a message")

	expected := "2024-03-05T14:07:09.000Z : debug : rewrite : chat : <alice> hi\n" +
		"2024-03-05T14:07:09.000Z : warn  : hook    : ignore : filter-only hook tried to replace a message\n"
	if stderr.String() != expected {
		t.Errorf("unexpected output:\n%s", stderr.String())
	}

	// stderr is not ours to close
	if err := manager.Close(); err != nil {
		t.Error(err)
	}
	manager.Error("config", "after close")
	if stderr.String() != expected {
		t.Errorf("a closed manager should discard lines")
	}
}
