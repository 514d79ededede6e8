// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/evrelay/lib/event"
	"github.com/bureau-foundation/evrelay/lib/rawio"
)

// Config holds the streams and options for a [Relay].
type Config struct {
	// Input supplies records. Production uses a [rawio.FD] so that
	// EINTR and short reads are visible; any io.Reader works.
	Input io.Reader

	// Output receives the forwarded records.
	Output io.Writer

	// Logger receives one Info line per record plus shutdown notices.
	// It must not write to Output.
	Logger *slog.Logger

	// Policy selects how short, uninterrupted transfers are handled.
	// The zero value is [rawio.Strict].
	Policy rawio.Policy

	// Quiet suppresses the per-record lines.
	Quiet bool
}

// Relay forwards fixed-size records from Input to Output.
type Relay struct {
	input  io.Reader
	output io.Writer
	logger *slog.Logger
	policy rawio.Policy
	quiet  bool
	stats  Stats
}

// New creates a Relay. It panics if Input, Output, or Logger is nil.
func New(config Config) *Relay {
	if config.Input == nil || config.Output == nil {
		panic("relay: Config.Input and Config.Output are required")
	}
	if config.Logger == nil {
		panic("relay: Config.Logger is required")
	}
	return &Relay{
		input:  config.Input,
		output: config.Output,
		logger: config.Logger,
		policy: config.Policy,
		quiet:  config.Quiet,
	}
}

// Run relays records until the input is exhausted, the output peer
// closes, or an unrecoverable fault occurs. Both clean terminations
// return a nil error; the returned [Reason] tells them apart. Run must
// not be called more than once.
func (r *Relay) Run() (Reason, error) {
	buffer := make([]byte, event.Size)

	for {
		read, err := rawio.Transfer(rawio.Read, r.input.Read, buffer, r.policy)
		r.stats.ReadInterrupts += uint64(read.Interrupts)
		if err != nil {
			return r.stop(Failed), fmt.Errorf("reading record %d: %w", r.stats.Records+1, err)
		}
		if read.Status == rawio.EndOfStream {
			r.logger.Debug("input exhausted at record boundary", "records", r.stats.Records)
			return r.stop(InputExhausted), nil
		}
		if read.Interrupts > 0 {
			r.logger.Debug("read resumed after interruption", "interrupts", read.Interrupts)
		}

		r.logRecord(buffer)

		written, err := rawio.Transfer(rawio.Write, r.output.Write, buffer, r.policy)
		r.stats.WriteInterrupts += uint64(written.Interrupts)
		if err != nil {
			return r.stop(Failed), fmt.Errorf("writing record %d: %w", r.stats.Records+1, err)
		}
		if written.Status == rawio.PeerClosed {
			message := "output closed by peer, exiting"
			if written.Interrupts > 0 {
				message = "output closed by peer during write retry, exiting"
			}
			r.logger.Info(message, "records", r.stats.Records, "partial_bytes", written.Transferred)
			return r.stop(OutputClosed), nil
		}
		if written.Interrupts > 0 {
			r.logger.Debug("write resumed after interruption", "interrupts", written.Interrupts)
		}

		r.stats.Records++
		r.stats.Bytes += uint64(event.Size)
	}
}

// Stats returns the counters accumulated so far. After Run returns
// they are final.
func (r *Relay) Stats() Stats {
	stats := r.stats
	stats.ReadWaits = waitsOf(r.input)
	stats.WriteWaits = waitsOf(r.output)
	return stats
}

func (r *Relay) stop(reason Reason) Reason {
	r.stats.Reason = reason
	return reason
}

// logRecord emits the per-record diagnostic line. Logging is best
// effort: slog handlers drop write errors, and a record that fails to
// decode is still forwarded.
func (r *Relay) logRecord(data []byte) {
	if r.quiet || !r.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	record, err := event.Decode(data)
	if err != nil {
		r.logger.Warn("cannot decode record for logging", "error", err)
		return
	}
	r.logger.Info("read event", "event", record)
}

// waitCounter is implemented by streams that can block in poll(2),
// such as [rawio.FD].
type waitCounter interface {
	Waits() uint64
}

func waitsOf(stream any) uint64 {
	if counter, ok := stream.(waitCounter); ok {
		return counter.Waits()
	}
	return 0
}

// IsCorruptRecord reports whether err from [Relay.Run] was caused by a
// partial record rather than an I/O fault.
func IsCorruptRecord(err error) bool {
	return errors.Is(err, rawio.ErrPartialRecord)
}
