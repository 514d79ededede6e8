// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rawio moves fixed-size records across byte streams with
// exact accounting of every byte under signal interruption, short
// transfers, and peer closure.
//
// [Transfer] is the single retry primitive for both directions. It
// issues read or write calls until the whole buffer has moved, resumes
// at the correct byte offset after EINTR, and reports the outcome as an
// explicit [Status] (Completed, EndOfStream, PeerClosed) or a fatal
// error. Callers decide what each status means; Transfer never exits
// the program or jumps out of the caller's loop.
//
// Short transfers follow a [Policy]. Under [Strict] (the default) a
// call that moves some but not all of the remaining bytes without being
// interrupted is a corrupt record ([ErrPartialRecord]): pipes deliver
// records no larger than PIPE_BUF atomically, so a short transfer means
// the channel is not the kind the relay supports. A write that has been
// interrupted, or a read interrupted after some bytes arrived, is
// resuming: short transfers then continue with the remaining suffix. A
// read interrupted before any byte arrived is simply reissued and stays
// strict. Under [Accumulate] short transfers always continue.
//
// [FD] is a raw file descriptor stream. The Go runtime's [os.File]
// retries EINTR and loops over short writes internally, which would
// hide exactly the conditions this package exists to account for, so
// FD issues single read(2)/write(2) calls through golang.org/x/sys/unix
// and returns errno values unchanged. FD does absorb EAGAIN by polling
// for readiness, so a descriptor inherited in non-blocking mode still
// behaves as a blocking stream.
package rawio
