// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for evrelay's main: the
// raw stderr reporting used when the structured logger is unavailable
// or when the final error line must be written regardless of logger
// configuration, and the mapping from errors to exit codes.
//
// Exit codes: 0 success, 1 runtime failure, 2 usage error. An error
// may carry its own code by implementing ExitCode() int.
package process
