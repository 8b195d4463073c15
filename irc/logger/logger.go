// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package logger writes leveled, typed log lines to stderr or files.
// Standard output is reserved for rendered text and is never a log sink.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the level to log messages at.
type Level int

const (
	// LogDebug represents debug messages.
	LogDebug Level = iota
	// LogInfo represents informational messages.
	LogInfo
	// LogWarning represents warnings.
	LogWarning
	// LogError represents errors.
	LogError
)

var (
	// LogLevelNames takes a config name and gives the real log level.
	LogLevelNames = map[string]Level{
		"debug":    LogDebug,
		"info":     LogInfo,
		"warn":     LogWarning,
		"warning":  LogWarning,
		"warnings": LogWarning,
		"error":    LogError,
		"errors":   LogError,
	}
	// LogLevelDisplayNames gives the display name to use for our log levels.
	LogLevelDisplayNames = map[Level]string{
		LogDebug:   "debug",
		LogInfo:    "info",
		LogWarning: "warn",
		LogError:   "error",
	}
)

// LoggingConfig represents the configuration of a single logger.
type LoggingConfig struct {
	Method        string
	MethodStderr  bool     `yaml:"-"`
	MethodFile    bool     `yaml:"-"`
	Filename      string
	TypeString    string   `yaml:"type"`
	Types         []string `yaml:"-"`
	ExcludedTypes []string `yaml:"-"`
	LevelString   string   `yaml:"level"`
	Level         Level    `yaml:"-"`
}

// sink is one configured destination with its filter.
type sink struct {
	out      io.Writer
	file     *os.File
	level    Level
	types    map[string]bool
	excluded map[string]bool
}

func (s *sink) accepts(level Level, logType string) bool {
	if level < s.level || s.excluded["*"] || s.excluded[logType] {
		return false
	}
	return s.types["*"] || s.types[logType]
}

// Manager fans log lines out to its sinks. The sinks are fixed when the
// manager is built. A nil *Manager discards everything.
type Manager struct {
	mu    sync.Mutex
	sinks []sink
	now   func() time.Time
}

// NewManager opens every sink in config. If any log file cannot be
// opened, the files already opened are closed again.
func NewManager(config []LoggingConfig) (*Manager, error) {
	return newManager(config, os.Stderr)
}

func newManager(config []LoggingConfig, stderr io.Writer) (*Manager, error) {
	manager := &Manager{now: time.Now}
	for _, logConfig := range config {
		filter := sink{
			level:    logConfig.Level,
			types:    toSet(logConfig.Types),
			excluded: toSet(logConfig.ExcludedTypes),
		}
		if logConfig.MethodStderr {
			stderrSink := filter
			stderrSink.out = stderr
			manager.sinks = append(manager.sinks, stderrSink)
		}
		if logConfig.MethodFile {
			file, err := os.OpenFile(logConfig.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
			if err != nil {
				manager.Close()
				return nil, fmt.Errorf("Could not open log file %s [%w]", logConfig.Filename, err)
			}
			fileSink := filter
			fileSink.out, fileSink.file = file, file
			manager.sinks = append(manager.sinks, fileSink)
		}
	}
	return manager, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Close closes any log files.
func (logger *Manager) Close() (err error) {
	if logger == nil {
		return nil
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	for _, s := range logger.sinks {
		if s.file == nil {
			continue
		}
		if closeErr := s.file.Close(); closeErr != nil {
			err = closeErr
		}
	}
	logger.sinks = nil
	return
}

// Log logs the given message with the given details.
func (logger *Manager) Log(level Level, logType string, messageParts ...string) {
	if logger == nil {
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()

	var line string
	for i := range logger.sinks {
		s := &logger.sinks[i]
		if !s.accepts(level, logType) {
			continue
		}
		if line == "" {
			line = logger.format(level, logType, messageParts)
		}
		io.WriteString(s.out, line)
	}
}

func (logger *Manager) format(level Level, logType string, messageParts []string) string {
	var buf strings.Builder
	// 7 is len("rewrite"), the longest log type in use
	fmt.Fprintf(&buf, "%s : %-5s : %-7s : ", logger.now().UTC().Format("2006-01-02T15:04:05.000Z"), LogLevelDisplayNames[level], logType)
	buf.WriteString(strings.Join(messageParts, " : "))
	buf.WriteByte('\n')
	return buf.String()
}

// Debug logs the given message as a debug message.
func (logger *Manager) Debug(logType string, messageParts ...string) {
	logger.Log(LogDebug, logType, messageParts...)
}

// Info logs the given message as an info message.
func (logger *Manager) Info(logType string, messageParts ...string) {
	logger.Log(LogInfo, logType, messageParts...)
}

// Warning logs the given message as a warning message.
func (logger *Manager) Warning(logType string, messageParts ...string) {
	logger.Log(LogWarning, logType, messageParts...)
}

// Error logs the given message as an error message.
func (logger *Manager) Error(logType string, messageParts ...string) {
	logger.Log(LogError, logType, messageParts...)
}
