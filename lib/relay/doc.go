// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package relay implements the evrelay record loop: read one input
// event, log it, forward the identical bytes, repeat.
//
// The loop is strictly record-synchronous. One [event.Size] buffer is
// reused for every record; nothing is read ahead and nothing is
// buffered on the output side, so a record is fully written before the
// next read is issued. All byte accounting (interrupt resumption, short
// transfers, end of stream, peer closure) is delegated to
// [rawio.Transfer]; this package only decides what each outcome means:
//
//   - end of stream at a record boundary: stop, [InputExhausted]
//   - output peer closed: stop, [OutputClosed]
//   - partial record or any other I/O error: stop with an error
//
// There is no cancellation. A blocked read or write is ended only by
// the streams themselves (data, EOF, EPIPE, or an error), which keeps
// shutdown decisions local to the last I/O result.
package relay
