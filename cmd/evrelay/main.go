// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/bureau-foundation/evrelay/lib/process"
	"github.com/bureau-foundation/evrelay/lib/rawio"
	"github.com/bureau-foundation/evrelay/lib/relay"
	"github.com/bureau-foundation/evrelay/lib/statsfile"
	"github.com/bureau-foundation/evrelay/lib/version"
)

func main() {
	signal.Ignore(unix.SIGPIPE)

	err := run(os.Args[1:], streams{
		input:       rawio.NewFD(unix.Stdin),
		output:      rawio.NewFD(unix.Stdout),
		diagnostics: os.Stderr,
	})
	if err != nil {
		process.Fatal(err)
	}
}

// streams are the three descriptors the relay uses. Tests substitute
// pipes.
type streams struct {
	input       *rawio.FD
	output      *rawio.FD
	diagnostics io.Writer
}

type options struct {
	quiet             bool
	verbose           bool
	logFormat         string
	accumulatePartial bool
	statsFile         string
	showVersion       bool
}

func run(args []string, stdio streams) error {
	var opts options
	flagSet := pflag.NewFlagSet("evrelay", pflag.ContinueOnError)
	flagSet.SetOutput(stdio.diagnostics)
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "do not log each relayed event")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log retries after interrupted reads and writes")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "diagnostic log format: text or json")
	flagSet.BoolVar(&opts.accumulatePartial, "accumulate-partial", false, "reassemble records delivered in fragments instead of failing")
	flagSet.StringVar(&opts.statsFile, "stats-file", "", "write a CBOR run summary to this path on exit")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flagSet.Usage = func() { printUsage(stdio.diagnostics, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &process.UsageError{Err: err}
	}
	if flagSet.NArg() > 0 {
		return process.Usagef("unexpected argument %q (evrelay reads standard input only)", flagSet.Arg(0))
	}

	// Version output goes to the diagnostic stream: standard output
	// carries binary records.
	if opts.showVersion {
		version.Print(stdio.diagnostics, "evrelay")
		return nil
	}

	logger, err := newLogger(stdio.diagnostics, opts.logFormat, opts.verbose)
	if err != nil {
		return &process.UsageError{Err: err}
	}

	if term.IsTerminal(stdio.output.Fd()) {
		logger.Warn("standard output is a terminal; binary input events will be written to it")
	}

	policy := rawio.Strict
	if opts.accumulatePartial {
		policy = rawio.Accumulate
	}

	loop := relay.New(relay.Config{
		Input:  stdio.input,
		Output: stdio.output,
		Logger: logger,
		Policy: policy,
		Quiet:  opts.quiet,
	})
	_, runErr := loop.Run()

	stats := loop.Stats()
	summaryLevel := slog.LevelInfo
	if !stats.Reason.Clean() {
		summaryLevel = slog.LevelWarn
	}
	logger.Log(context.Background(), summaryLevel, "relay stopped", stats.LogAttrs()...)
	if opts.statsFile != "" {
		if err := statsfile.Write(opts.statsFile, stats); err != nil {
			logger.Warn("cannot write stats file", "path", opts.statsFile, "error", err)
		}
	}

	return runErr
}

// newLogger builds the diagnostic logger on w.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlerOptions := &slog.HandlerOptions{Level: level}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOptions)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOptions)), nil
	default:
		return nil, fmt.Errorf("--log-format must be text or json, got %q", format)
	}
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Usage: evrelay [flags] < events > events

Relay Linux input events from standard input to standard output
unchanged, logging each event to standard error.

Flags:
%s`, flagSet.FlagUsages())
}
