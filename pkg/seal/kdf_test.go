package seal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/goseal/pkg/seal"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	t.Parallel()

	password := []byte("correct-horse")
	salt := bytes.Repeat([]byte{0xab}, seal.SaltSize)

	first, err := seal.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	if len(first) != seal.KeySize {
		t.Fatalf("key length = %d, want %d", len(first), seal.KeySize)
	}

	second, err := seal.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("same (password, salt) produced different keys")
	}
}

func TestDeriveKeySaltSensitivity(t *testing.T) {
	t.Parallel()

	password := []byte("correct-horse")

	saltA := bytes.Repeat([]byte{0x01}, seal.SaltSize)
	saltB := bytes.Repeat([]byte{0x02}, seal.SaltSize)

	keyA, err := seal.DeriveKey(password, saltA)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	keyB, err := seal.DeriveKey(password, saltB)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	if bytes.Equal(keyA, keyB) {
		t.Fatal("different salts produced the same key")
	}
}

func TestDeriveKeyRejectsBadSalt(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 16, 31, 33} {
		_, err := seal.DeriveKey([]byte("pw"), make([]byte, size))
		if !errors.Is(err, seal.ErrKeyDerivation) {
			t.Fatalf("salt size %d: error = %v, want ErrKeyDerivation", size, err)
		}
	}
}

func TestGenerateSaltFreshness(t *testing.T) {
	t.Parallel()

	first, err := seal.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	second, err := seal.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}

	if len(first) != seal.SaltSize || len(second) != seal.SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(first), len(second), seal.SaltSize)
	}

	if bytes.Equal(first, second) {
		t.Fatal("successive salts are identical")
	}
}
