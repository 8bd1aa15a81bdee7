package seal

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the size of the random salt fed to key derivation.
	SaltSize = 32

	// KeySize is the size of the derived AES-256 key.
	KeySize = 32
)

// Argon2id parameters are constants of the container format, not tunables:
// every implementation must derive byte-identical keys from the same
// (password, salt) pair.
const (
	argonIterations  = 3
	argonMemoryKiB   = 64 * 1024
	argonParallelism = 4
)

// DeriveKey stretches a password into a KeySize-byte key using Argon2id with
// the fixed format parameters. The salt must be exactly SaltSize bytes.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKeyDerivation, SaltSize, len(salt))
	}

	return argon2.IDKey(password, salt, argonIterations, argonMemoryKiB, argonParallelism, KeySize), nil
}

// GenerateSalt returns SaltSize bytes from the OS-backed secure generator.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	return salt, nil
}
