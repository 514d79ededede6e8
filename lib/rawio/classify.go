// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawio

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsInterrupted reports whether err is a signal interruption (EINTR).
// The call made no progress beyond any byte count it returned and may
// be reissued.
func IsInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}

// IsPeerClosed reports whether err means the receiving end of an output
// stream has gone away: EPIPE for pipes and FIFOs, ECONNRESET when the
// output is a stream socket whose peer closed with unread data. Both
// are normal consumer shutdown, not faults.
func IsPeerClosed(err error) bool {
	if err == nil {
		return false
	}
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno == unix.EPIPE || errno == unix.ECONNRESET
	}
	return false
}

// IsWouldBlock reports whether err is EAGAIN (equivalently EWOULDBLOCK
// on Linux): the descriptor is non-blocking and not ready.
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}
