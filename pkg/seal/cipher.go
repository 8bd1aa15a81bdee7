package seal

import (
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead/subtle"
)

const (
	// NonceSize is the AES-GCM nonce length prepended to every ciphertext.
	NonceSize = subtle.AESGCMIVSize

	// TagSize is the trailing GCM authentication tag length.
	TagSize = subtle.AESGCMTagSize
)

// Cipher performs authenticated encryption under one derived key.
// It is immutable after construction.
type Cipher struct {
	aead *subtle.AESGCM
}

// NewCipher returns a Cipher for the given KeySize-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("cipher key must be %d bytes, got %d", KeySize, len(key))
	}

	aead, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES-GCM cipher: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// NewCipherFromPassword derives a key from password and salt and returns a
// Cipher holding it.
func NewCipherFromPassword(password, salt []byte) (*Cipher, error) {
	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	return NewCipher(key)
}

// Encrypt seals plaintext under a fresh random NonceSize-byte nonce and
// returns the nonce followed by the ciphertext with its trailing tag. The
// nonce is always drawn fresh, never counted up: nonce uniqueness per key is
// what AES-GCM's guarantees rest on, also when one key is reused across files.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	out, err := c.aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}

	return out, nil
}

// Decrypt splits input into nonce and ciphertext, then verifies the tag and
// decrypts in one atomic operation. No plaintext is ever returned on failure,
// and a wrong password is indistinguishable from corrupted data.
func (c *Cipher) Decrypt(input []byte) ([]byte, error) {
	if len(input) < NonceSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidInput, NonceSize, len(input))
	}

	plaintext, err := c.aead.Decrypt(input, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}
