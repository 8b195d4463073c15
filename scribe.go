// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/ergochat/irc-go/ircmsg"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ergochat/scribe/irc/config"
	"github.com/ergochat/scribe/irc/ident"
	"github.com/ergochat/scribe/irc/logger"
	"github.com/ergochat/scribe/irc/pipeline"
	"github.com/ergochat/scribe/irc/render"
	"github.com/ergochat/scribe/irc/rewrite"
	"github.com/ergochat/scribe/irc/style"
	"github.com/ergochat/scribe/irc/version"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""       // git hash
var buildVersion = "" // tagged version

// a missing config file is only an error if one was asked for by name
func loadConfig(filename string) (*config.Config, error) {
	conf, err := config.LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) && filename == config.DefaultFilename {
		return config.Default(), nil
	}
	return conf, err
}

func colorProfile(arguments docopt.Opts) termenv.Profile {
	if color, _ := arguments.Bool("--color"); color {
		return termenv.ANSI
	}
	if noColor, _ := arguments.Bool("--no-color"); noColor {
		return termenv.Ascii
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.ANSI
	}
	return termenv.Ascii
}

func writeLines(out *termenv.Output, lines []style.Text) {
	for _, line := range lines {
		fmt.Fprintln(out, line.ANSI(out))
	}
}

// longest line accepted on input, tags included
const maxLineLength = ircmsg.MaxlenTags + 512

var errLineTooLong = errors.New("line too long")

// readLine returns the next line of input. A line that does not fit in the
// reader's buffer is consumed and reported as errLineTooLong.
func readLine(reader *bufio.Reader) (string, error) {
	data, err := reader.ReadSlice('\n')
	if err != bufio.ErrBufferFull {
		return string(data), err
	}
	for err == bufio.ErrBufferFull {
		_, err = reader.ReadSlice('\n')
	}
	if err == nil || err == io.EOF {
		return "", errLineTooLong
	}
	return "", err
}

// implements the `scribe render` command
func doRender(p *pipeline.Pipeline, logman *logger.Manager, in io.Reader, out *termenv.Output) error {
	reader := bufio.NewReaderSize(in, maxLineLength)
	for {
		line, err := readLine(reader)
		if err == errLineTooLong {
			logman.Warning("parse", "skipping line longer than", strconv.Itoa(maxLineLength), "bytes")
			continue
		}
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			// parse errors are logged by the pipeline
			if lines, err := p.Process(line, time.Now()); err == nil {
				writeLines(out, lines)
			}
		}
		if err != nil {
			writeLines(out, p.Flush())
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// implements the `scribe check` command
func doCheck(conf *config.Config) error {
	rules := rewrite.DefaultRules(ident.New(conf.Bridge.Channel))
	if err := rewrite.CheckRules(rules); err != nil {
		return err
	}
	log.Printf("configuration ok, %d rewrite rules", len(rules))
	return nil
}

func main() {
	version.SetVersionString(buildVersion, commit)
	usage := `scribe.
Usage:
	scribe render [--conf <filename>] [--detailed] [--color | --no-color]
	scribe check [--conf <filename>]
	scribe -h | --help
	scribe --version
Options:
	--conf <filename>  Configuration file to use [default: scribe.yaml].
	--detailed         Show verb labels, full timestamps and user@host.
	--color            Always emit colors.
	--no-color         Never emit colors.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, version.Ver)

	configfile, _ := arguments.String("--conf")
	conf, err := loadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	if check, _ := arguments.Bool("check"); check {
		if err := doCheck(conf); err != nil {
			log.Fatal(err)
		}
		return
	}

	logman, err := logger.NewManager(conf.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	defer logman.Close()
	logman.Info("config", "loaded config", conf.Filename)

	p := pipeline.New(conf, render.NewDefaultRenderer(), logman)
	if detailed, _ := arguments.Bool("--detailed"); detailed {
		p.SetMode(render.Detailed)
	}
	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(colorProfile(arguments)))
	logman.Info("render", fmt.Sprintf("%s starting", version.Ver))
	if err := doRender(p, logman, os.Stdin, out); err != nil {
		logman.Error("render", "could not read input", err.Error())
		os.Exit(1)
	}
}
