// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rawio

import (
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// FD is a stream over a raw file descriptor. Read and Write issue one
// system call each (plus readiness polls on EAGAIN) and return EINTR,
// EPIPE, and short counts to the caller untouched.
//
// FD does not own the descriptor and never closes it. Read and Write
// are not safe for concurrent use; Waits may be called from any
// goroutine.
type FD struct {
	fd    int
	waits atomic.Uint64
}

// NewFD wraps descriptor fd.
func NewFD(fd int) *FD {
	return &FD{fd: fd}
}

// Fd returns the wrapped descriptor number.
func (f *FD) Fd() int {
	return f.fd
}

// Waits returns how many times a call found the descriptor not ready
// and blocked in poll(2).
func (f *FD) Waits() uint64 {
	return f.waits.Load()
}

// Read reads up to len(p) bytes. A zero-byte read of a non-empty p is
// reported as io.EOF.
func (f *FD) Read(p []byte) (int, error) {
	for {
		count, err := unix.Read(f.fd, p)
		if err != nil {
			if IsWouldBlock(err) {
				if err := f.wait(unix.POLLIN); err != nil {
					return 0, err
				}
				continue
			}
			return 0, err
		}
		if count == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		return count, nil
	}
}

// Write writes up to len(p) bytes and returns the count the kernel
// accepted, which may be short.
func (f *FD) Write(p []byte) (int, error) {
	for {
		count, err := unix.Write(f.fd, p)
		if err != nil {
			if IsWouldBlock(err) {
				if err := f.wait(unix.POLLOUT); err != nil {
					return 0, err
				}
				continue
			}
			return 0, err
		}
		return count, nil
	}
}

// wait blocks until the descriptor reports events, an error, or hangup.
// Hangup and error conditions are left for the following read or write
// to report with the proper errno.
func (f *FD) wait(events int16) error {
	f.waits.Add(1)
	fds := []unix.PollFd{{Fd: int32(f.fd), Events: events}}
	for {
		_, err := unix.Poll(fds, -1)
		if err == nil {
			return nil
		}
		if !IsInterrupted(err) {
			return fmt.Errorf("poll fd %d: %w", f.fd, err)
		}
	}
}
