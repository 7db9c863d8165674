// Package internal contains constants and helpers shared by the sqrl
// primitive packages.
//
// The subpackages of internal each implement one derivation primitive.
package internal

import (
	"errors"

	"github.com/mr-tron/base58"
)

const (
	KeySize  = 32 // KeySize is the width of all keys in bytes.
	TagSize  = 16 // TagSize is the AES-GCM authentication tag size in bytes.
	IVSize   = 12 // IVSize is the AES-GCM initialization vector size in bytes.
	SaltSize = 16 // SaltSize is the width of enscrypt salts in bytes.
)

// ErrInvalidCiphertext is returned when a ciphertext cannot be decrypted,
// either due to an incorrect key or tampering.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// ASCIIEncode returns the given data, encoded in base58.
func ASCIIEncode(data []byte) []byte {
	return []byte(base58.Encode(data))
}

// ASCIIDecode decodes the results of ASCIIEncode.
func ASCIIDecode(text []byte) ([]byte, error) {
	return base58.Decode(string(text))
}

// Copy returns a copy of the given slice.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}
