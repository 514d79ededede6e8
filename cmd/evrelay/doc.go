// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// evrelay is a pass-through filter for Linux input events. It reads
// struct input_event records from standard input, logs each one to
// standard error, and writes the identical bytes to standard output:
//
//	intercept -g $DEVNODE | evrelay | uinput -d $DEVNODE
//
// Placed between two stages of an interception-tools pipeline it shows
// exactly what the upstream stage emits without changing what the
// downstream stage receives.
//
// Standard input and output are used as raw file descriptors rather
// than through os.File, so every EINTR and short transfer is accounted
// for by lib/rawio instead of being retried invisibly. SIGPIPE is
// ignored so a downstream consumer that exits shows up as EPIPE, which
// ends the relay successfully.
//
// Exit status: 0 when the input ends at a record boundary or the
// output's consumer goes away, 1 on a partial record or any other I/O
// fault, 2 on a command-line error.
//
// Flags:
//
//	-q, --quiet               do not log each event
//	-v, --verbose             also log retries after interruptions
//	    --log-format FORMAT   text (default) or json
//	    --accumulate-partial  reassemble records delivered in fragments
//	    --stats-file PATH     write a CBOR run summary on exit
//	    --version             print version information
package main
