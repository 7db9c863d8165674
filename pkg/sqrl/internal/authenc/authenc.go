// Package authenc provides the authenticated-encryption boundary used to
// seal derived secrets at rest: AES-256-GCM with a detached tag.
package authenc

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
)

const (
	KeySize = internal.KeySize // KeySize is the AES-256 key size in bytes.
	IVSize  = internal.IVSize  // IVSize is the GCM initialization vector size in bytes.
	TagSize = internal.TagSize // TagSize is the GCM authentication tag size in bytes.
)

// Seal encrypts the plaintext with AES-256-GCM under the given key and IV,
// authenticating but not encrypting data. It returns the ciphertext and the
// detached tag.
func Seal(key, iv, plaintext, data []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := gcm.Seal(nil, iv, plaintext, data)
	n := len(sealed) - TagSize

	return sealed[:n], sealed[n:], nil
}

// Open decrypts the ciphertext with AES-256-GCM under the given key and IV,
// verifying the detached tag over the ciphertext and data. It returns
// internal.ErrInvalidCiphertext if the tag does not verify, and never returns
// partial plaintext.
func Open(key, iv, ciphertext, data, tag []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, data)
	if err != nil {
		return nil, internal.ErrInvalidCiphertext
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
