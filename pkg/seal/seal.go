package seal

import "fmt"

// EncryptBytes seals plaintext under a password: a fresh salt is generated,
// the key derived, the plaintext encrypted, and the result wrapped into a
// container. This is the whole-buffer surface used by embedders.
func EncryptBytes(password, plaintext []byte) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	cipher, err := NewCipherFromPassword(password, salt)
	if err != nil {
		return nil, err
	}

	payload, err := cipher.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	return EncodeContainer(salt, payload), nil
}

// DecryptBytes opens a container produced by EncryptBytes: the embedded salt
// drives key derivation, then the payload is authenticated and decrypted.
// Failures surface as a single error, never as partial plaintext.
func DecryptBytes(password, container []byte) ([]byte, error) {
	salt, payload, err := DecodeContainer(container)
	if err != nil {
		return nil, fmt.Errorf("parsing container: %w", err)
	}

	cipher, err := NewCipherFromPassword(password, salt)
	if err != nil {
		return nil, err
	}

	return cipher.Decrypt(payload)
}
