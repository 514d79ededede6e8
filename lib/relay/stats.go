// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"fmt"
	"log/slog"
)

// Reason records why a relay stopped.
type Reason int

const (
	// Running is the zero value: Run has not returned yet.
	Running Reason = iota

	// InputExhausted means the input ended cleanly at a record
	// boundary.
	InputExhausted

	// OutputClosed means the output's consumer closed its end.
	OutputClosed

	// Failed means Run returned an error.
	Failed
)

func (r Reason) String() string {
	switch r {
	case Running:
		return "running"
	case InputExhausted:
		return "input exhausted"
	case OutputClosed:
		return "output closed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Clean reports whether the relay stopped without a fault.
func (r Reason) Clean() bool {
	return r == InputExhausted || r == OutputClosed
}

// MarshalText encodes the reason as its string form, so summaries
// carry "output closed" rather than an opaque integer.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses the form produced by MarshalText.
func (r *Reason) UnmarshalText(text []byte) error {
	for candidate := Running; candidate <= Failed; candidate++ {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown relay stop reason %q", text)
}

// Stats summarizes one relay run.
type Stats struct {
	// Records and Bytes count fully forwarded records only. A record
	// cut short by peer closure is not counted.
	Records uint64 `cbor:"records"`
	Bytes   uint64 `cbor:"bytes"`

	// ReadInterrupts and WriteInterrupts count EINTR returns that
	// were absorbed by resuming the transfer.
	ReadInterrupts  uint64 `cbor:"read_interrupts"`
	WriteInterrupts uint64 `cbor:"write_interrupts"`

	// ReadWaits and WriteWaits count readiness polls on non-blocking
	// descriptors. Zero for streams that never block in poll.
	ReadWaits  uint64 `cbor:"read_waits"`
	WriteWaits uint64 `cbor:"write_waits"`

	Reason Reason `cbor:"reason"`
}

// LogAttrs returns the stats as slog attributes for the shutdown
// summary line.
func (s Stats) LogAttrs() []any {
	return []any{
		slog.String("reason", s.Reason.String()),
		slog.Uint64("records", s.Records),
		slog.Uint64("bytes", s.Bytes),
		slog.Uint64("read_interrupts", s.ReadInterrupts),
		slog.Uint64("write_interrupts", s.WriteInterrupts),
		slog.Uint64("read_waits", s.ReadWaits),
		slog.Uint64("write_waits", s.WriteWaits),
	}
}
