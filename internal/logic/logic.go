// Package logic implements the core business logic of the four operations:
// single-file and directory-tree encryption and decryption.
package logic

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/goseal/internal/batch"
	"github.com/idelchi/goseal/internal/config"
	"github.com/idelchi/goseal/internal/fileutil"
	"github.com/idelchi/goseal/internal/filter"
	"github.com/idelchi/goseal/internal/password"
	"github.com/idelchi/goseal/pkg/seal"
)

// largeFileThreshold is the size above which single-file operations report
// chunked I/O progress.
const largeFileThreshold = 1 << 20

const filePerm = os.FileMode(0o600)

// EncryptFile seals one file. The output defaults to the input name with the
// encrypted suffix appended.
func EncryptFile(cfg *config.Config, src password.Source) error {
	pw, err := src(true)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	defer password.Wipe(pw)

	start := time.Now()

	info, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("stat %q: %w", cfg.Input, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, use encrypt-dir", cfg.Input)
	}

	plaintext, err := fileutil.ReadFile(cfg.Input, ioProgress(cfg, "Reading", info.Size()))
	if err != nil {
		return err
	}

	container, err := seal.EncryptBytes(pw, plaintext)
	if err != nil {
		return err
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = batch.EncryptedName(cfg.Input)
	}

	if err := writeOutput(cfg, outPath, container); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Printf("Encrypted %q -> %q\n", cfg.Input, outPath) //nolint:forbidigo
	}

	if cfg.Stats {
		printStats(1, int64(len(container)), time.Since(start))
	}

	return nil
}

// DecryptFile opens one container file. The output defaults to the input name
// with the encrypted suffix stripped.
func DecryptFile(cfg *config.Config, src password.Source) error {
	pw, err := src(false)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	defer password.Wipe(pw)

	start := time.Now()

	info, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("stat %q: %w", cfg.Input, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, use decrypt-dir", cfg.Input)
	}

	container, err := fileutil.ReadFile(cfg.Input, ioProgress(cfg, "Reading", info.Size()))
	if err != nil {
		return err
	}

	plaintext, err := seal.DecryptBytes(pw, container)
	if err != nil {
		return fmt.Errorf("decrypting %q: %w", cfg.Input, err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = batch.RestoredName(cfg.Input)
	}

	if err := writeOutput(cfg, outPath, plaintext); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Printf("Decrypted %q -> %q\n", cfg.Input, outPath) //nolint:forbidigo
	}

	if cfg.Stats {
		printStats(1, int64(len(plaintext)), time.Since(start))
	}

	return nil
}

// EncryptDir seals every file under the input directory. The output directory
// defaults to the input with the encrypted suffix appended.
func EncryptDir(cfg *config.Config, src password.Source) error {
	pw, err := src(true)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	defer password.Wipe(pw)

	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	outDir := cfg.Output
	if outDir == "" {
		outDir = cfg.Input + batch.EncryptedSuffix
	}

	start := time.Now()

	summary, err := proc.EncryptDir(pw, cfg.Input, outDir)

	if cfg.Stats {
		printStats(summary.Files, summary.Bytes, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("encrypting directory: %w", err)
	}

	if !cfg.Quiet {
		fmt.Printf("Encrypted %d file(s) into %q\n", summary.Files, outDir) //nolint:forbidigo
	}

	return nil
}

// DecryptDir restores every container under the input directory. The output
// directory defaults to the input with the encrypted suffix stripped.
func DecryptDir(cfg *config.Config, src password.Source) error {
	pw, err := src(false)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	defer password.Wipe(pw)

	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	outDir := cfg.Output
	if outDir == "" {
		outDir = restoredDirName(cfg.Input)
	}

	start := time.Now()

	summary, err := proc.DecryptDir(pw, cfg.Input, outDir)

	if cfg.Stats {
		printStats(summary.Files, summary.Bytes, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("decrypting directory: %w", err)
	}

	if !cfg.Quiet {
		fmt.Printf("Decrypted %d file(s) into %q\n", summary.Files, outDir) //nolint:forbidigo
	}

	return nil
}

// newProcessor compiles the exclude patterns and wires the per-file progress
// printer into a batch processor.
func newProcessor(cfg *config.Config) (*batch.Processor, error) {
	patterns := append([]string{}, cfg.Exclude...)

	if cfg.ExcludeFrom != "" {
		loaded, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		patterns = append(patterns, loaded...)
	}

	excludes, err := filter.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	var progress batch.Progress

	if !cfg.Quiet {
		progress = func(rel string, processed, total int) {
			fmt.Printf("Processed %q (%d/%d)\n", rel, processed, total) //nolint:forbidigo
		}
	}

	return batch.NewProcessor(batch.Options{Excludes: excludes, Progress: progress}), nil
}

// restoredDirName mirrors the encrypt-dir default in reverse.
func restoredDirName(input string) string {
	if strings.HasSuffix(input, batch.EncryptedSuffix) {
		return strings.TrimSuffix(input, batch.EncryptedSuffix)
	}

	return input + "_decrypted"
}

// writeOutput writes data atomically, creating parent directories as needed.
func writeOutput(cfg *config.Config, outPath string, data []byte) error {
	if err := fileutil.EnsureParentDir(outPath); err != nil {
		return err
	}

	return fileutil.WriteFileAtomic(outPath, data, filePerm, ioProgress(cfg, "Writing", int64(len(data))))
}

// ioProgress renders chunked I/O progress on stderr for large files.
func ioProgress(cfg *config.Config, verb string, size int64) fileutil.ProgressFunc {
	if cfg.Quiet || size < largeFileThreshold {
		return nil
	}

	return func(done, total int64) {
		fmt.Fprintf(os.Stderr, "\r%s %s / %s", verb, humanize.IBytes(uint64(done)), humanize.IBytes(uint64(total))) //nolint:gosec // sizes are non-negative

		if done >= total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func printStats(files int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Files:    %d\n", files)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:     %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration: %s\n", duration.Round(time.Millisecond))
}
