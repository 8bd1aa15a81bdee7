package seal

import "errors"

var (
	// ErrContainerTooShort is returned when a container is shorter than the fixed header.
	ErrContainerTooShort = errors.New("container too short")

	// ErrBadMagic is returned when a container does not start with the "ENCR" tag.
	ErrBadMagic = errors.New("not a sealed container (bad magic)")

	// ErrUnsupportedVersion is returned when the container version byte is unknown.
	ErrUnsupportedVersion = errors.New("unsupported container version")

	// ErrKeyDerivation is returned when key derivation cannot run, e.g. on a
	// salt of the wrong size.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidInput is returned when encrypted input is too short to even
	// carry a nonce.
	ErrInvalidInput = errors.New("encrypted input too short")

	// ErrAuthentication is returned when the authentication tag does not
	// verify. A wrong password and corrupted or tampered data are deliberately
	// indistinguishable.
	ErrAuthentication = errors.New("authentication failed: wrong password or corrupted data")
)
