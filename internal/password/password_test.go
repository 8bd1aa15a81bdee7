package password_test

import (
	"bytes"
	"testing"

	"github.com/idelchi/goseal/internal/password"
)

func TestTerminalPrefersEnvVar(t *testing.T) {
	t.Setenv(password.EnvVar, "from-env")

	got, err := password.Terminal(true)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}

	if string(got) != "from-env" {
		t.Fatalf("password = %q, want %q", got, "from-env")
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	src := password.Static([]byte("fixed"))

	for _, confirm := range []bool{false, true} {
		got, err := src(confirm)
		if err != nil {
			t.Fatalf("Static source: %v", err)
		}

		if string(got) != "fixed" {
			t.Fatalf("password = %q, want %q", got, "fixed")
		}
	}
}

// Callers own and wipe the slice a Source yields, so a second operation
// through the same source must not see the first one's zeroed bytes.
func TestStaticSurvivesWipeBetweenCalls(t *testing.T) {
	t.Parallel()

	src := password.Static([]byte("fixed"))

	first, err := src(true)
	if err != nil {
		t.Fatalf("Static source: %v", err)
	}

	password.Wipe(first)

	second, err := src(false)
	if err != nil {
		t.Fatalf("Static source: %v", err)
	}

	if string(second) != "fixed" {
		t.Fatalf("password after wiping a prior result = %q, want %q", second, "fixed")
	}
}

func TestWipe(t *testing.T) {
	t.Parallel()

	b := []byte("secret")
	password.Wipe(b)

	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffer not zeroed: %q", b)
	}
}
