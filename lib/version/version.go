// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/evrelay/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the abbreviated commit the binary was built from.
	GitCommit = "unknown"

	// GitDirty is "true" when the working tree had local edits at
	// build time. Any other value reads as clean.
	GitDirty = "false"

	// BuildTime is when the binary was linked, in UTC.
	BuildTime = "unknown"

	// Version is the release version, bumped by hand when tagging.
	Version = "0.1.0-dev"
)

// Info returns "<version> (<commit>[-dirty], <build time>)".
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns Info plus the Go toolchain and platform. The platform
// matters for evrelay because the record size is the platform's
// sizeof(struct input_event).
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Print writes the --version output for binary name to w.
func Print(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, Full())
}
