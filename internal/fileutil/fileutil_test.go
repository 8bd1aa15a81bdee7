package fileutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/goseal/internal/fileutil"
)

func TestReadFileReportsProgress(t *testing.T) {
	t.Parallel()

	// Three chunks: two full 64 KiB reads and a remainder.
	content := bytes.Repeat([]byte{0xaa}, 2*64*1024+123)

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	var calls []int64

	got, err := fileutil.ReadFile(path, func(done, total int64) {
		if total != int64(len(content)) {
			t.Errorf("total = %d, want %d", total, len(content))
		}

		calls = append(calls, done)
	})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !bytes.Equal(got, content) {
		t.Fatal("content mismatch")
	}

	if len(calls) == 0 {
		t.Fatal("progress callback never invoked")
	}

	if last := calls[len(calls)-1]; last != int64(len(content)) {
		t.Fatalf("final progress = %d, want %d", last, len(content))
	}

	for i := 1; i < len(calls); i++ {
		if calls[i] <= calls[i-1] {
			t.Fatalf("progress not monotonic: %v", calls)
		}
	}
}

func TestReadFileNilProgress(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("ok"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	got, err := fileutil.ReadFile(path, nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != "ok" {
		t.Fatalf("content = %q", got)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	content := []byte("payload")

	if err := fileutil.WriteFileAtomic(path, content, 0o600, nil); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if !bytes.Equal(got, content) {
		t.Fatal("content mismatch")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	if err := fileutil.WriteFileAtomic(path, []byte("first"), 0o600, nil); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	if err := fileutil.WriteFileAtomic(path, []byte("second"), 0o600, nil); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if string(got) != "second" {
		t.Fatalf("content = %q, want %q", got, "second")
	}
}

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")

	if err := fileutil.EnsureParentDir(path); err != nil {
		t.Fatalf("EnsureParentDir: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("parent not created: %v", err)
	}
}
