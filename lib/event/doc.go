// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event defines the fixed-size binary record relayed by
// evrelay: the Linux kernel's struct input_event, as produced by evdev
// devices and by interception tools such as "intercept -g".
//
// The wire layout is the platform's native struct: a struct timeval
// (seconds and microseconds), a 16-bit type, a 16-bit code, and a
// 32-bit signed value, in native byte order. [Size] is the
// compile-time size of that struct (24 bytes on 64-bit Linux).
//
// [Decode] exists for diagnostics only. The relay forwards the bytes it
// read, never a re-encoding, so a decode/encode asymmetry can never
// corrupt the forwarded stream.
//
// [TypeName], [CodeName], and [ValueName] map numeric fields to the
// symbolic names from linux/input-event-codes.h for log output.
package event
