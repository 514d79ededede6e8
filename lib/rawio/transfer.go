// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawio

import (
	"errors"
	"fmt"
	"io"
)

// Direction selects whether [Transfer] reads into or writes from the
// buffer. It changes which terminal conditions are legal: only reads
// can reach end of stream, only writes can find the peer closed.
type Direction int

const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Status is the non-error outcome of a [Transfer].
type Status int

const (
	// Completed means every byte of the buffer was transferred.
	Completed Status = iota

	// EndOfStream means a read found the input exhausted before
	// transferring any byte of the record: a clean record boundary.
	EndOfStream

	// PeerClosed means a write found the output's receiving end
	// closed. Bytes already written for this record stay written.
	PeerClosed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case EndOfStream:
		return "end of stream"
	case PeerClosed:
		return "peer closed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Policy controls how a short, uninterrupted transfer is treated.
type Policy int

const (
	// Strict treats a short transfer as a corrupt record unless the
	// transfer has already been interrupted at least once.
	Strict Policy = iota

	// Accumulate keeps requesting the remaining suffix after any
	// short transfer.
	Accumulate
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Accumulate:
		return "accumulate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ErrPartialRecord is returned when a transfer moved a nonzero but
// incomplete record and cannot be completed: a short transfer under
// [Strict], or end of stream in the middle of a record.
var ErrPartialRecord = errors.New("partial record")

// Op is one read(2) or write(2) against a stream: it transfers at most
// len(p) bytes and returns the count moved. A negative count (raw
// syscalls report -1 on error) is treated as zero.
type Op func(p []byte) (int, error)

// Result describes a finished transfer.
type Result struct {
	Status Status

	// Transferred is the number of bytes of the buffer moved. It
	// equals len(buf) for Completed, is zero for EndOfStream, and may
	// be anything for PeerClosed.
	Transferred int

	// Interrupts counts EINTR returns absorbed by the retry loop.
	Interrupts int
}

// Transfer moves exactly len(buf) bytes in the given direction by
// calling op until the buffer is exhausted. Each call is issued for the
// remaining suffix buf[Transferred:], so bytes moved before an
// interruption are never moved twice.
//
// A non-nil error is always fatal for the stream. It wraps
// [ErrPartialRecord] for incomplete records and the underlying error
// (typically a [golang.org/x/sys/unix.Errno]) otherwise, so callers can
// inspect it with errors.Is.
func Transfer(direction Direction, op Op, buf []byte, policy Policy) (Result, error) {
	var result Result
	resuming := false

	for result.Transferred < len(buf) {
		remaining := len(buf) - result.Transferred
		count, err := op(buf[result.Transferred:])
		if count < 0 {
			count = 0
		}
		if count > remaining {
			return result, fmt.Errorf("%s reported %d bytes for a %d-byte request", direction, count, remaining)
		}
		result.Transferred += count

		endOfStream := false
		if err != nil {
			switch {
			case IsInterrupted(err):
				result.Interrupts++
				// A read interrupted before receiving anything is
				// reissued as the identical request and stays strict.
				if direction == Write || count > 0 {
					resuming = true
				}
				continue
			case direction == Write && IsPeerClosed(err):
				result.Status = PeerClosed
				return result, nil
			case direction == Read && errors.Is(err, io.EOF):
				endOfStream = true
			default:
				return result, fmt.Errorf("%s at byte %d of %d: %w", direction, result.Transferred, len(buf), err)
			}
		}

		if result.Transferred == len(buf) {
			break
		}

		if count == 0 || endOfStream {
			if direction == Write {
				return result, fmt.Errorf("write made no progress at byte %d of %d: %w", result.Transferred, len(buf), io.ErrShortWrite)
			}
			if result.Transferred == 0 {
				result.Status = EndOfStream
				return result, nil
			}
			return result, fmt.Errorf("%w: end of stream after %d of %d bytes", ErrPartialRecord, result.Transferred, len(buf))
		}

		if policy == Strict && !resuming {
			return result, fmt.Errorf("%w: short %s of %d bytes, want %d", ErrPartialRecord, direction, result.Transferred, len(buf))
		}
	}

	result.Status = Completed
	return result, nil
}
