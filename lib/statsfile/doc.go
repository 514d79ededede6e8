// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package statsfile persists the relay's run summary for tooling that
// wraps evrelay (test harnesses, supervisors collecting per-session
// counters).
//
// The file is written atomically (write to a temporary file, fsync,
// rename into place, fsync the parent directory) so a reader polling
// for it never sees a partial summary. The content is a single CBOR
// document encoded with lib/codec; relay.Reason encodes as text.
package statsfile
