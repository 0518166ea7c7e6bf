// Package jsonstore reads and writes whole JSON documents on local disk.
// Every store in this repository persists through full-document overwrite;
// concurrent writers from separate processes can lose updates.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// Read decodes the document at path into dest. A missing file is reported
// as os.ErrNotExist so callers can distinguish "absent" from "corrupt".
func Read(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %s: %w", path, os.ErrNotExist)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// Write replaces the document at path with the encoded value. The write is
// atomic from a reader's point of view: a temp file in the same directory is
// synced and renamed over the target.
func Write(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	if err := writeAndClose(tmp, data); err != nil {
		return multierr.Append(err, os.Remove(tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return multierr.Append(
			fmt.Errorf("replacing %s: %w", path, err),
			os.Remove(tmp.Name()),
		)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("writing %s: %w", f.Name(), err), f.Close())
	}
	if err := f.Sync(); err != nil {
		return multierr.Append(fmt.Errorf("syncing %s: %w", f.Name(), err), f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.Name(), err)
	}
	return nil
}
