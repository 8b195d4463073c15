// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ergochat/scribe/irc/logger"
)

// DefaultFilename is used when no configuration file is named.
const DefaultFilename = "scribe.yaml"

// DefaultStatusSigils covers every channel membership prefix in common use.
const DefaultStatusSigils = "~&@%+"

var (
	ErrBridgeNickMissing     = errors.New("Bridge nick missing")
	ErrBridgeChannelMissing  = errors.New("Bridge channel missing")
	ErrBridgeChannelInvalid  = errors.New("Bridge channel must start with # or &")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
	ErrLoggerMethodMissing   = errors.New("Logger has no method")
	ErrLoggerMethodUnknown   = errors.New("Logging method must be stderr or file")
	ErrLoggerStdout          = errors.New("Logging to stdout is not supported, stdout carries the rendered lines")
)

// here's how this works: exported (capitalized) members of the config structs
// are defined in the YAML file and deserialized directly from there. Members
// tagged `yaml:"-"` are derived from them in LoadConfig.

// BridgeConfig names the relay bot whose messages are rewritten.
type BridgeConfig struct {
	Enabled bool
	Nick    string
	Channel string
}

// RenderConfig controls how lines are displayed. StatusSigils lists the
// STATUSMSG prefixes the server accepts in front of a channel name.
type RenderConfig struct {
	Detailed     bool
	StatusSigils string `yaml:"status-sigils"`
	Highlights   []string
	Collapse     bool
}

// Config is the whole configuration file.
type Config struct {
	Bridge   BridgeConfig
	Render   RenderConfig
	Ignore   []string
	Logging  []logger.LoggingConfig
	Filename string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	config := &Config{
		Bridge: BridgeConfig{
			Enabled: true,
			Nick:    "relay",
			Channel: "#relay",
		},
		Render: RenderConfig{
			StatusSigils: DefaultStatusSigils,
		},
		Logging: []logger.LoggingConfig{{
			Method:      "stderr",
			TypeString:  "*",
			LevelString: "info",
		}},
	}
	if err := config.postprocess(); err != nil {
		// the defaults above are constant
		panic(err)
	}
	return config
}

// LoadConfig reads and validates the configuration at filename. Keys
// missing from the file keep their default values.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	config, err = ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	config.Filename = filename
	return config, nil
}

// ParseConfig parses and validates YAML configuration data.
func ParseConfig(data []byte) (config *Config, err error) {
	config = Default()
	config.Logging = nil
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.Logging == nil {
		config.Logging = Default().Logging
	}
	if err = config.postprocess(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) postprocess() error {
	if config.Bridge.Enabled {
		if config.Bridge.Nick == "" {
			return ErrBridgeNickMissing
		}
		if config.Bridge.Channel == "" {
			return ErrBridgeChannelMissing
		}
		if !strings.ContainsAny(config.Bridge.Channel[:1], "#&") {
			return ErrBridgeChannelInvalid
		}
	}

	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		for method := range methods {
			switch method {
			case "stderr", "file":
			case "stdout":
				return ErrLoggerStdout
			default:
				return fmt.Errorf("%w: %s", ErrLoggerMethodUnknown, method)
			}
		}
		if len(methods) == 0 {
			return ErrLoggerMethodMissing
		}
		if methods["file"] && logConfig.Filename == "" {
			return ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		logConfig.Types, logConfig.ExcludedTypes = nil, nil
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return ErrLoggerHasNoTypes
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	return nil
}
