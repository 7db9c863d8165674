// Package enhash implements the EnHash key derivation function: an iterated
// SHA-256 chain whose round digests are XOR-accumulated into the result.
//
// Given a 32-byte key K, the first round digest is SHA-256(K) and each later
// round re-hashes the previous digest. The derived key is the XOR of all
// round digests. Chaining plus accumulation means an attacker must defeat the
// hash across the whole chain, not just its last round.
//
// EnHash is intended for deriving secondary keys from a high-entropy master
// key. It is not a password-stretching function; see the enscrypt package for
// that.
package enhash

import (
	"crypto/sha256"
	"errors"
)

const (
	// KeySize is the width of both the input key and the derived key in
	// bytes.
	KeySize = sha256.Size

	// Iterations is the default number of chained hash rounds.
	Iterations = 16
)

// ErrInvalidKeyLength is returned when the input key is not exactly KeySize
// bytes.
var ErrInvalidKeyLength = errors.New("invalid key length")

// Hash derives a subsidiary key from the given key using the default number
// of rounds.
func Hash(key []byte) ([]byte, error) {
	return HashN(key, Iterations)
}

// HashN derives a subsidiary key from the given key using the given number of
// chained rounds.
func HashN(key []byte, iterations int) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	// First round digest doubles as the initial accumulator.
	u := sha256.Sum256(key)
	acc := u

	// Re-hash the previous digest and fold each round into the accumulator.
	for i := 1; i < iterations; i++ {
		u = sha256.Sum256(u[:])

		for j := range acc {
			acc[j] ^= u[j]
		}
	}

	return acc[:], nil
}
