// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/evrelay/lib/event"
	"github.com/bureau-foundation/evrelay/lib/process"
	"github.com/bureau-foundation/evrelay/lib/rawio"
	"github.com/bureau-foundation/evrelay/lib/relay"
	"github.com/bureau-foundation/evrelay/lib/statsfile"
)

// pipeHarness provides real pipes for standard input and output so the
// binary's raw descriptor path is exercised end to end. The input pipe
// is preloaded and closed; the output pipe is drained after run returns.
type pipeHarness struct {
	t           *testing.T
	stdio       streams
	diagnostics *bytes.Buffer
	outputRead  int
	closed      map[int]bool
}

func newPipeHarness(t *testing.T, input []byte) *pipeHarness {
	t.Helper()
	harness := &pipeHarness{t: t, diagnostics: &bytes.Buffer{}, closed: map[int]bool{}}

	inputFDs := harness.pipe()
	outputFDs := harness.pipe()

	for offset := 0; offset < len(input); {
		count, err := unix.Write(inputFDs[1], input[offset:])
		if err != nil {
			t.Fatalf("preloading input: %v", err)
		}
		offset += count
	}
	harness.close(inputFDs[1])

	harness.outputRead = outputFDs[0]
	harness.stdio = streams{
		input:       rawio.NewFD(inputFDs[0]),
		output:      rawio.NewFD(outputFDs[1]),
		diagnostics: harness.diagnostics,
	}
	return harness
}

func (h *pipeHarness) pipe() []int {
	h.t.Helper()
	fds := make([]int, 2)
	if err := unix.Pipe2(fds, unix.O_CLOEXEC); err != nil {
		h.t.Fatalf("pipe2: %v", err)
	}
	for _, fd := range fds {
		fd := fd
		h.t.Cleanup(func() { h.close(fd) })
	}
	return fds
}

func (h *pipeHarness) close(fd int) {
	if !h.closed[fd] {
		h.closed[fd] = true
		unix.Close(fd)
	}
}

// closeConsumer closes the read end of the output pipe, as a downstream
// process exiting would.
func (h *pipeHarness) closeConsumer() {
	h.close(h.outputRead)
}

// output closes the relay's end of the output pipe and returns
// everything written to it.
func (h *pipeHarness) output() []byte {
	h.t.Helper()
	h.close(h.stdio.output.Fd())
	data, err := io.ReadAll(rawio.NewFD(h.outputRead))
	if err != nil {
		h.t.Fatalf("reading output pipe: %v", err)
	}
	return data
}

func encodeRecords(t *testing.T, count int) []byte {
	t.Helper()
	var wire []byte
	for i := 0; i < count; i++ {
		record := event.Record{Seconds: 100 + int64(i), Microseconds: 5, Type: event.TypeKey, Code: 30, Value: 1}
		var err error
		if wire, err = record.AppendBinary(wire); err != nil {
			t.Fatalf("encoding record: %v", err)
		}
	}
	return wire
}

func countLines(text, message string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, message) {
			count++
		}
	}
	return count
}

func TestRunRelaysStandardStreams(t *testing.T) {
	input := encodeRecords(t, 10)
	harness := newPipeHarness(t, input)

	if err := run(nil, harness.stdio); err != nil {
		t.Fatalf("run: %v", err)
	}
	if output := harness.output(); !bytes.Equal(output, input) {
		t.Fatalf("output is %d bytes, want the identical %d-byte input", len(output), len(input))
	}

	diagnostics := harness.diagnostics.String()
	if got := countLines(diagnostics, `msg="read event"`); got != 10 {
		t.Fatalf("logged %d events, want 10:\n%s", got, diagnostics)
	}
	if !strings.Contains(diagnostics, "event.time=100.000005") {
		t.Fatalf("first event timestamp missing:\n%s", diagnostics)
	}
	if !strings.Contains(diagnostics, `level=INFO msg="relay stopped" reason="input exhausted" records=10`) {
		t.Fatalf("summary line missing:\n%s", diagnostics)
	}
}

func TestRunEmptyInput(t *testing.T) {
	harness := newPipeHarness(t, nil)
	if err := run(nil, harness.stdio); err != nil {
		t.Fatalf("run: %v", err)
	}
	if output := harness.output(); len(output) != 0 {
		t.Fatalf("output = %d bytes, want none", len(output))
	}
}

func TestRunOutputClosedByConsumer(t *testing.T) {
	harness := newPipeHarness(t, encodeRecords(t, 3))
	harness.closeConsumer()

	err := run(nil, harness.stdio)
	if err != nil {
		t.Fatalf("run: %v (broken pipe must be a clean exit)", err)
	}
	if code := process.ExitCode(err); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	diagnostics := harness.diagnostics.String()
	if !strings.Contains(diagnostics, "output closed by peer") {
		t.Fatalf("missing broken pipe notice:\n%s", diagnostics)
	}
	if !strings.Contains(diagnostics, `level=INFO msg="relay stopped" reason="output closed" records=0`) {
		t.Fatalf("summary does not report output closed:\n%s", diagnostics)
	}
}

func TestRunPartialRecordFails(t *testing.T) {
	input := encodeRecords(t, 2)
	harness := newPipeHarness(t, input[:event.Size+event.Size/2])

	err := run(nil, harness.stdio)
	if !relay.IsCorruptRecord(err) {
		t.Fatalf("run error = %v, want a partial record", err)
	}
	if code := process.ExitCode(err); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if output := harness.output(); !bytes.Equal(output, input[:event.Size]) {
		t.Fatalf("output is %d bytes, want only the first record", len(output))
	}
	diagnostics := harness.diagnostics.String()
	if !strings.Contains(diagnostics, `level=WARN msg="relay stopped" reason=failed records=1`) {
		t.Fatalf("failed run summary is not a warning:\n%s", diagnostics)
	}
}

func TestRunStatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.cbor")
	harness := newPipeHarness(t, encodeRecords(t, 4))

	if err := run([]string{"--stats-file", path}, harness.stdio); err != nil {
		t.Fatalf("run: %v", err)
	}
	stats, err := statsfile.Read(path)
	if err != nil {
		t.Fatalf("reading stats: %v", err)
	}
	if stats.Records != 4 || stats.Bytes != uint64(4*event.Size) || stats.Reason != relay.InputExhausted {
		t.Fatalf("stats = %+v, want 4 records and input exhausted", stats)
	}
}

func TestRunStatsFileFailureIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary.cbor")
	harness := newPipeHarness(t, encodeRecords(t, 1))

	if err := run([]string{"--stats-file", path}, harness.stdio); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(harness.diagnostics.String(), "cannot write stats file") {
		t.Fatalf("missing stats warning:\n%s", harness.diagnostics.String())
	}
}

func TestRunQuietJSON(t *testing.T) {
	harness := newPipeHarness(t, encodeRecords(t, 5))

	if err := run([]string{"--log-format", "json", "-q"}, harness.stdio); err != nil {
		t.Fatalf("run: %v", err)
	}

	var messages []string
	scanner := bufio.NewScanner(harness.diagnostics)
	for scanner.Scan() {
		var line struct {
			Message string `json:"msg"`
			Records int    `json:"records"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("diagnostic line %q is not JSON: %v", scanner.Text(), err)
		}
		messages = append(messages, line.Message)
		if line.Message == "relay stopped" && line.Records != 5 {
			t.Fatalf("summary records = %d, want 5", line.Records)
		}
	}
	if len(messages) != 1 || messages[0] != "relay stopped" {
		t.Fatalf("quiet run logged %v, want only the summary", messages)
	}
	if output := harness.output(); len(output) != 5*event.Size {
		t.Fatalf("output = %d bytes, want 5 records", len(output))
	}
}

func TestRunCommandLine(t *testing.T) {
	t.Run("usage errors exit 2", func(t *testing.T) {
		for _, args := range [][]string{
			{"--log-format", "xml"},
			{"--no-such-flag"},
			{"/dev/input/event3"},
		} {
			harness := newPipeHarness(t, nil)
			err := run(args, harness.stdio)
			var usage *process.UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("run(%q) = %v, want a usage error", args, err)
			}
			if code := process.ExitCode(err); code != 2 {
				t.Fatalf("run(%q) exit code = %d, want 2", args, code)
			}
		}
	})

	t.Run("help", func(t *testing.T) {
		harness := newPipeHarness(t, encodeRecords(t, 1))
		if err := run([]string{"--help"}, harness.stdio); err != nil {
			t.Fatalf("run(--help): %v", err)
		}
		if !strings.Contains(harness.diagnostics.String(), "Usage: evrelay") {
			t.Fatalf("help output:\n%s", harness.diagnostics.String())
		}
		if output := harness.output(); len(output) != 0 {
			t.Fatal("--help relayed records")
		}
	})

	t.Run("version", func(t *testing.T) {
		harness := newPipeHarness(t, nil)
		if err := run([]string{"--version"}, harness.stdio); err != nil {
			t.Fatalf("run(--version): %v", err)
		}
		if !strings.HasPrefix(harness.diagnostics.String(), "evrelay ") {
			t.Fatalf("version output: %q", harness.diagnostics.String())
		}
		if output := harness.output(); len(output) != 0 {
			t.Fatal("--version wrote to standard output")
		}
	})
}
