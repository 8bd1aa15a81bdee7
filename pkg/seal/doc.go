// Package seal implements password-based authenticated encryption of byte
// buffers and the versioned container format they are persisted in.
//
// A password is stretched into a 32-byte key with Argon2id (fixed parameters,
// so any implementation derives the same key from the same password and salt),
// the key drives AES-256-GCM with a fresh random nonce per encryption, and the
// result is wrapped as:
//
//	magic "ENCR" (4) | version (1) | salt (32) | nonce (12) | ciphertext+tag
//
// EncryptBytes and DecryptBytes combine the three steps for embedders that
// only want the byte-in/byte-out surface.
package seal
