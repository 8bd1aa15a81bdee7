// Package batch applies password-based sealing to every regular file under a
// directory, mirroring the relative tree into an output directory.
//
// Files are processed one at a time in walk order. Encryption derives one key
// for the whole batch and reuses it with a fresh nonce per file; decryption
// derives a key per file from that file's embedded salt. The first per-file
// failure aborts the batch: output written before the failure stays on disk.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/goseal/internal/filter"
	"github.com/idelchi/goseal/internal/fileutil"
	"github.com/idelchi/goseal/pkg/seal"
)

const (
	// EncryptedSuffix is appended to every sealed file's name and identifies
	// candidates for directory decryption.
	EncryptedSuffix = ".encrypted"

	// DecryptedSuffix is appended when a restored file's name unexpectedly
	// does not carry EncryptedSuffix.
	DecryptedSuffix = ".decrypted"

	filePerm = os.FileMode(0o600)
	dirPerm  = os.FileMode(0o750)
)

// ErrNotDirectory is returned when a directory operation is pointed at
// something else.
var ErrNotDirectory = errors.New("input path is not a directory")

// Error reports the file that aborted a batch and how many files succeeded
// before it.
type Error struct {
	// Path of the failing file.
	Path string

	// Processed counts the files fully written before the failure.
	Processed int

	// Err is the underlying per-file failure.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("processing %q (after %d file(s) succeeded): %v", e.Path, e.Processed, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Progress observes batch advancement. It is invoked synchronously after each
// file with the relative path just finished and the running counts; it must
// not block, and it never affects the outcome.
type Progress func(rel string, processed, total int)

// Summary describes a completed batch.
type Summary struct {
	// Files fully processed.
	Files int

	// Bytes written to the output tree.
	Bytes int64
}

// Processor runs directory-tree encryption and decryption.
type Processor struct {
	excludes *filter.Excludes
	progress Progress
}

// Options configures a Processor. Both fields are optional.
type Options struct {
	// Excludes filters out files by relative path.
	Excludes *filter.Excludes

	// Progress observes per-file completion.
	Progress Progress
}

// NewProcessor creates a Processor with the given options.
func NewProcessor(opts Options) *Processor {
	excludes := opts.Excludes
	if excludes == nil {
		excludes, _ = filter.New(nil)
	}

	return &Processor{excludes: excludes, progress: opts.Progress}
}

// EncryptedName appends the encrypted suffix to a file name, whether or not
// the name already has an extension.
func EncryptedName(name string) string {
	return name + EncryptedSuffix
}

// RestoredName strips the encrypted suffix to recover the original name,
// falling back to appending the decrypted suffix when it is absent.
func RestoredName(name string) string {
	if strings.HasSuffix(name, EncryptedSuffix) {
		return strings.TrimSuffix(name, EncryptedSuffix)
	}

	return name + DecryptedSuffix
}

// EncryptDir seals every regular file under inputDir into the mirrored path
// under outputDir with the encrypted suffix appended.
//
// The expensive key derivation runs once for the whole batch: one salt, one
// key, shared across all files. AES-GCM stays safe under key reuse because
// every file still gets its own fresh random nonce.
func (p *Processor) EncryptDir(password []byte, inputDir, outputDir string) (Summary, error) {
	var summary Summary

	files, err := p.collectFiles(inputDir, false)
	if err != nil {
		return summary, err
	}

	// An empty directory is a successful no-op.
	if len(files) == 0 {
		return summary, nil
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return summary, fmt.Errorf("creating output directory %q: %w", outputDir, err)
	}

	salt, err := seal.GenerateSalt()
	if err != nil {
		return summary, err
	}

	cipher, err := seal.NewCipherFromPassword(password, salt)
	if err != nil {
		return summary, err
	}

	for _, rel := range files {
		inPath := filepath.Join(inputDir, rel)

		container, err := encryptOne(cipher, salt, inPath)
		if err != nil {
			return summary, &Error{Path: inPath, Processed: summary.Files, Err: err}
		}

		outPath := filepath.Join(outputDir, EncryptedName(rel))
		if err := writeOne(outPath, container); err != nil {
			return summary, &Error{Path: inPath, Processed: summary.Files, Err: err}
		}

		summary.Files++
		summary.Bytes += int64(len(container))

		if p.progress != nil {
			p.progress(rel, summary.Files, len(files))
		}
	}

	return summary, nil
}

// DecryptDir restores every file under inputDir carrying the encrypted suffix
// into the mirrored path under outputDir with the suffix stripped.
//
// Each file's embedded salt is the sole source of truth for key derivation:
// the key is derived per file, never assuming the batch-wide salt reuse the
// encrypt path happens to produce.
func (p *Processor) DecryptDir(password []byte, inputDir, outputDir string) (Summary, error) {
	var summary Summary

	files, err := p.collectFiles(inputDir, true)
	if err != nil {
		return summary, err
	}

	if len(files) == 0 {
		return summary, nil
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return summary, fmt.Errorf("creating output directory %q: %w", outputDir, err)
	}

	for _, rel := range files {
		inPath := filepath.Join(inputDir, rel)

		plaintext, err := decryptOne(password, inPath)
		if err != nil {
			return summary, &Error{Path: inPath, Processed: summary.Files, Err: err}
		}

		outPath := filepath.Join(outputDir, RestoredName(rel))
		if err := writeOne(outPath, plaintext); err != nil {
			return summary, &Error{Path: inPath, Processed: summary.Files, Err: err}
		}

		summary.Files++
		summary.Bytes += int64(len(plaintext))

		if p.progress != nil {
			p.progress(rel, summary.Files, len(files))
		}
	}

	return summary, nil
}

// encryptOne reads a file whole and seals it with the batch cipher and salt.
func encryptOne(cipher *seal.Cipher, salt []byte, path string) ([]byte, error) {
	plaintext, err := fileutil.ReadFile(path, nil)
	if err != nil {
		return nil, err
	}

	payload, err := cipher.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	return seal.EncodeContainer(salt, payload), nil
}

// decryptOne reads a container whole and opens it with a key derived from its
// own embedded salt.
func decryptOne(password []byte, path string) ([]byte, error) {
	container, err := fileutil.ReadFile(path, nil)
	if err != nil {
		return nil, err
	}

	return seal.DecryptBytes(password, container)
}

func writeOne(path string, data []byte) error {
	if err := fileutil.EnsureParentDir(path); err != nil {
		return err
	}

	return fileutil.WriteFileAtomic(path, data, filePerm, nil)
}

// collectFiles walks inputDir and returns the relative paths of regular files
// in walk order, applying the exclude patterns. Symbolic links are never
// followed. With encryptedOnly set, only files carrying the encrypted suffix
// are returned.
func (p *Processor) collectFiles(inputDir string, encryptedOnly bool) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", inputDir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, inputDir)
	}

	var files []string

	err = filepath.WalkDir(inputDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Regular files only: directories are recreated on demand, symlinks
		// and other special files are skipped.
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return fmt.Errorf("relativizing %q: %w", path, err)
		}

		if encryptedOnly && !strings.HasSuffix(entry.Name(), EncryptedSuffix) {
			return nil
		}

		if p.excludes.Match(filepath.ToSlash(rel)) {
			return nil
		}

		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", inputDir, err)
	}

	return files, nil
}
