// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides evrelay's CBOR encoding configuration for
// machine-readable output such as the run summary written by
// --stats-file.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same summary always produces identical bytes. Types implementing
// encoding.TextMarshaler (relay.Reason) encode as CBOR text strings.
//
//	data, err := codec.Marshal(stats)
//	err = codec.Unmarshal(data, &stats)
package codec
