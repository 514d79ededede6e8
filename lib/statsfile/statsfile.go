// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package statsfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/evrelay/lib/codec"
	"github.com/bureau-foundation/evrelay/lib/relay"
)

// Write atomically replaces path with the CBOR encoding of stats. The
// file is created with mode 0644. The parent directory must exist.
func Write(path string, stats relay.Stats) error {
	data, err := codec.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding relay stats: %w", err)
	}

	temporaryPath := path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary stats file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary stats file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary stats file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary stats file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming stats file into place: %w", err)
	}

	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}

// Read decodes a stats file written by Write. A missing file returns an
// error wrapping os.ErrNotExist.
func Read(path string) (relay.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return relay.Stats{}, err
	}
	var stats relay.Stats
	if err := codec.Unmarshal(data, &stats); err != nil {
		return relay.Stats{}, fmt.Errorf("parsing stats file %s: %w", path, err)
	}
	return stats, nil
}
