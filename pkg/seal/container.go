package seal

import (
	"bytes"
	"fmt"
)

// Container layout, version 1:
//
//	offset  size  field
//	0       4     magic "ENCR"
//	4       1     version
//	5       32    salt
//	37      n     payload (nonce | ciphertext+tag)
const (
	containerMagic   = "ENCR"
	containerVersion = byte(1)

	// HeaderSize is the fixed container prefix before the payload.
	HeaderSize = len(containerMagic) + 1 + SaltSize
)

// EncodeContainer wraps a salt and an encrypted payload into a versioned
// container. The payload is emitted verbatim; the codec never touches the
// cryptography.
func EncodeContainer(salt, payload []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, containerMagic...)
	out = append(out, containerVersion)
	out = append(out, salt...)
	out = append(out, payload...)

	return out
}

// DecodeContainer validates the container header and returns the embedded
// salt and the payload. The returned slices alias data. Authentication of the
// payload happens only when Cipher.Decrypt runs on it.
func DecodeContainer(data []byte) (salt, payload []byte, err error) {
	if len(data) < HeaderSize {
		return nil, nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrContainerTooShort, HeaderSize, len(data))
	}

	if !bytes.Equal(data[:len(containerMagic)], []byte(containerMagic)) {
		return nil, nil, ErrBadMagic
	}

	if version := data[len(containerMagic)]; version != containerVersion {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	return data[len(containerMagic)+1 : HeaderSize], data[HeaderSize:], nil
}
