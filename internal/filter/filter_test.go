package filter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/goseal/internal/filter"
)

func TestExcludesMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "no patterns", patterns: nil, path: "a/b.txt", want: false},
		{name: "star crosses separators", patterns: []string{"*.log"}, path: "logs/app.log", want: true},
		{name: "anchored full match", patterns: []string{"b.txt"}, path: "a/b.txt", want: false},
		{name: "directory prefix", patterns: []string{"vendor/*"}, path: "vendor/pkg/mod.go", want: true},
		{name: "question mark", patterns: []string{"file?.txt"}, path: "file1.txt", want: true},
		{name: "escaped star is literal", patterns: []string{`\*.txt`}, path: "a.txt", want: false},
		{name: "leading dot-slash stripped", patterns: []string{"./secret"}, path: "secret", want: true},
		{name: "any of several", patterns: []string{"*.tmp", "*.bak"}, path: "x.bak", want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			excludes, err := filter.New(tc.patterns)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			if got := excludes.Match(tc.path); got != tc.want {
				t.Fatalf("Match(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestNewRejectsTrailingBackslash(t *testing.T) {
	t.Parallel()

	if _, err := filter.New([]string{`broken\`}); err == nil {
		t.Fatal("expected error for trailing backslash")
	}
}

func TestLoadPatterns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patterns.jsonc")

	content := `[
		// temporary artifacts
		"*.tmp",
		"build/*", // trailing comment
	]`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing patterns file: %v", err)
	}

	patterns, err := filter.LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns: %v", err)
	}

	if len(patterns) != 2 || patterns[0] != "*.tmp" || patterns[1] != "build/*" {
		t.Fatalf("patterns = %v", patterns)
	}
}
