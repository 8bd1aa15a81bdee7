// Package password supplies passwords to the encryption logic without tying
// it to a terminal: the logic layer consumes a Source, and callers decide
// whether that is an interactive prompt, an environment variable, or a fixed
// value in tests.
package password

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

// EnvVar names the environment variable checked before prompting.
const EnvVar = "GOSEAL_PASSWORD"

// ErrMismatch is returned when the confirmation entry differs from the first.
var ErrMismatch = errors.New("passwords do not match")

// Source yields a password for one operation. When confirm is true the source
// should require the password twice (used on the encrypt paths, where a typo
// would seal data under an unintended key). Each call transfers ownership of
// the returned slice to the caller, which wipes it after use; a source must
// mint a fresh slice per invocation.
type Source func(confirm bool) ([]byte, error)

// Static returns a Source that always yields the given password. Used in tests.
func Static(password []byte) Source {
	return func(bool) ([]byte, error) {
		return bytes.Clone(password), nil
	}
}

// Terminal reads the password without echo, preferring the GOSEAL_PASSWORD
// environment variable over an interactive prompt.
func Terminal(confirm bool) ([]byte, error) {
	if env := os.Getenv(EnvVar); env != "" {
		return []byte(env), nil
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		return nil, err
	}

	if !confirm {
		return password, nil
	}

	again, err := readPassword("Confirm password: ")
	if err != nil {
		Wipe(password)

		return nil, err
	}

	defer Wipe(again)

	if !bytes.Equal(password, again) {
		Wipe(password)

		return nil, ErrMismatch
	}

	return password, nil
}

// Wipe overwrites sensitive bytes. Best effort only: the runtime may have
// copied the slice already.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(b)
}

// readPassword prompts on stderr and reads without echo, falling back to
// /dev/tty when stdin is piped.
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	stdin := int(syscall.Stdin) //nolint:unconvert // syscall.Stdin is a uintptr on Windows

	if term.IsTerminal(stdin) {
		password, err := term.ReadPassword(stdin)

		fmt.Fprintln(os.Stderr)

		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}

		return password, nil
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("stdin is not a terminal and /dev/tty is unavailable; set %s: %w", EnvVar, err)
	}
	defer tty.Close()

	password, err := term.ReadPassword(int(tty.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}
