// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// progressChunkSize is the read granularity between progress callbacks.
const progressChunkSize = 64 * 1024

// ProgressFunc observes I/O progress. It is called synchronously after each
// chunk with the bytes handled so far and the total. It must not block; its
// absence (nil) or behavior never affects the operation's outcome.
type ProgressFunc func(done, total int64)

// ReadFile reads the whole file into memory, reporting progress per chunk.
func ReadFile(path string, progress ProgressFunc) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	total := info.Size()
	buf := make([]byte, 0, total)
	chunk := make([]byte, progressChunkSize)

	var done int64

	for {
		n, readErr := file.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			done += int64(n)

			if progress != nil {
				progress(done, total)
			}
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("reading %q: %w", path, readErr)
		}
	}

	return buf, nil
}

// WriteFileAtomic writes data to path via a temp file in the destination
// directory and a rename, so a failed write never leaves a partial output
// file behind. Progress is reported per chunk.
func WriteFileAtomic(path string, data []byte, perm os.FileMode, progress ProgressFunc) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", path, err)
	}

	defer func() {
		tmp.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmp.Name()) //nolint:gosec // best-effort cleanup
		}
	}()

	total := int64(len(data))

	var done int64

	for offset := 0; offset < len(data); offset += progressChunkSize {
		end := min(offset+progressChunkSize, len(data))

		if _, err := tmp.Write(data[offset:end]); err != nil {
			return fmt.Errorf("writing %q: %w", path, err)
		}

		done += int64(end - offset)

		if progress != nil {
			progress(done, total)
		}
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("setting permissions on %q: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file for %q: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming output file %q: %w", path, err)
	}

	return nil
}

// EnsureParentDir creates the parent directories of path as needed.
func EnsureParentDir(path string) error {
	const dirPerm = 0o750

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %q: %w", dir, err)
		}
	}

	return nil
}
