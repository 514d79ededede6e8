// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/unix"
)

// wireRecord mirrors struct input_event. It is never read or written
// directly; it only fixes the size and field offsets of the layout.
type wireRecord struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Size is sizeof(struct input_event) on this platform.
const Size = int(unsafe.Sizeof(wireRecord{}))

const (
	secondsOffset      = int(unsafe.Offsetof(wireRecord{}.Time))
	secondsWidth       = int(unsafe.Sizeof(unix.Timeval{}.Sec))
	microsecondsOffset = secondsOffset + int(unsafe.Offsetof(unix.Timeval{}.Usec))
	microsecondsWidth  = int(unsafe.Sizeof(unix.Timeval{}.Usec))
	typeOffset         = int(unsafe.Offsetof(wireRecord{}.Type))
	codeOffset         = int(unsafe.Offsetof(wireRecord{}.Code))
	valueOffset        = int(unsafe.Offsetof(wireRecord{}.Value))
)

// Record is a decoded input event.
type Record struct {
	// Seconds and Microseconds are the kernel timestamp. They are
	// independent fields: Microseconds is not normalized into Seconds.
	Seconds      int64
	Microseconds int64

	// Type is the event type (EV_KEY, EV_SYN, ...).
	Type uint16

	// Code is the type-specific sub-code (KEY_A, SYN_REPORT, ...).
	Code uint16

	// Value is the type-specific value. For EV_KEY: 0 release,
	// 1 press, 2 autorepeat.
	Value int32
}

// Decode parses one record from exactly [Size] bytes.
func Decode(data []byte) (Record, error) {
	if len(data) != Size {
		return Record{}, fmt.Errorf("decode input event: got %d bytes, want %d", len(data), Size)
	}
	return Record{
		Seconds:      getSigned(data[secondsOffset:], secondsWidth),
		Microseconds: getSigned(data[microsecondsOffset:], microsecondsWidth),
		Type:         binary.NativeEndian.Uint16(data[typeOffset:]),
		Code:         binary.NativeEndian.Uint16(data[codeOffset:]),
		Value:        int32(binary.NativeEndian.Uint32(data[valueOffset:])),
	}, nil
}

// AppendBinary appends the native wire encoding of r to data. Padding
// bytes, if the platform layout has any, are zero.
func (r Record) AppendBinary(data []byte) ([]byte, error) {
	start := len(data)
	data = append(data, make([]byte, Size)...)
	out := data[start:]
	putSigned(out[secondsOffset:], secondsWidth, r.Seconds)
	putSigned(out[microsecondsOffset:], microsecondsWidth, r.Microseconds)
	binary.NativeEndian.PutUint16(out[typeOffset:], r.Type)
	binary.NativeEndian.PutUint16(out[codeOffset:], r.Code)
	binary.NativeEndian.PutUint32(out[valueOffset:], uint32(r.Value))
	return data, nil
}

// MarshalBinary returns the native wire encoding of r.
func (r Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, Size))
}

// Timestamp formats the time as "<sec>.<usec>" with the microseconds
// zero-padded to six digits, matching the classic evtest output.
func (r Record) Timestamp() string {
	return fmt.Sprintf("%d.%06d", r.Seconds, r.Microseconds)
}

// LogValue renders the record as a group of attributes, so a record
// can be passed directly as a slog argument.
func (r Record) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("time", r.Timestamp()),
		slog.Int("type", int(r.Type)),
		slog.Int("code", int(r.Code)),
		slog.Int("value", int(r.Value)),
		slog.String("type_name", TypeName(r.Type)),
	}
	if name := CodeName(r.Type, r.Code); name != "" {
		attrs = append(attrs, slog.String("code_name", name))
	}
	if name := ValueName(r.Type, r.Value); name != "" {
		attrs = append(attrs, slog.String("value_name", name))
	}
	return slog.GroupValue(attrs...)
}

func getSigned(data []byte, width int) int64 {
	switch width {
	case 8:
		return int64(binary.NativeEndian.Uint64(data))
	case 4:
		return int64(int32(binary.NativeEndian.Uint32(data)))
	default:
		panic(fmt.Sprintf("event: unsupported timeval field width %d", width))
	}
}

func putSigned(data []byte, width int, value int64) {
	switch width {
	case 8:
		binary.NativeEndian.PutUint64(data, uint64(value))
	case 4:
		binary.NativeEndian.PutUint32(data, uint32(int32(value)))
	default:
		panic(fmt.Sprintf("event: unsupported timeval field width %d", width))
	}
}
