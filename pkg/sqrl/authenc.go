package sqrl

import (
	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/authenc"
)

// TagSize is the width of AES-GCM authentication tags in bytes.
const TagSize = internal.TagSize

// Encrypt seals the plaintext with AES-256-GCM under the given key and
// IVSize-byte IV, authenticating but not encrypting data. It returns the
// ciphertext and the detached tag. The same data must be presented again on
// decryption.
func Encrypt(key Key, iv, plaintext, data []byte) (ciphertext, tag []byte, err error) {
	return authenc.Seal(key[:], iv, plaintext, data)
}

// Decrypt opens a ciphertext sealed by Encrypt, verifying the detached tag
// over the ciphertext and data. If any bit of the ciphertext, data, or tag
// has been altered, it returns ErrInvalidCiphertext and no plaintext.
func Decrypt(key Key, iv, ciphertext, data, tag []byte) ([]byte, error) {
	return authenc.Open(key[:], iv, ciphertext, data, tag)
}
