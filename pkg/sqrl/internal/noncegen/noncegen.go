// Package noncegen implements a hashed-counter nonce sequence used to seal
// derived secrets at rest.
//
// Each nonce is the SHA-256 digest of a fixed random prefix and a
// little-endian counter, truncated to the nonce width. Hashing obscures the
// ordinal position of a nonce from outside observers, but because the digest
// is truncated the full counter period is NOT guaranteed before a repeat:
// rotate the underlying encryption key well before the counter space is
// exhausted. If an attacker cannot benefit from observing a sequential
// counter, prefer a plain incrementing counter, which is simpler and provably
// non-repeating.
//
// A Sequence is not safe for concurrent use. Callers needing concurrent
// encryption must allocate one sequence per context or serialize access
// externally.
package noncegen

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the default nonce width in bytes, matching the
	// XChaCha20-Poly1305 and secretbox nonce width.
	NonceSize = chacha20poly1305.NonceSizeX

	// PrefixSize is the width of the random prefix in bytes.
	PrefixSize = 16
)

// Sequence is a deterministic stream of nonces. It must not be shared between
// goroutines.
type Sequence struct {
	size   int
	count  uint64
	prefix []byte
}

// NewSequence returns a Sequence of size-byte nonces with a freshly generated
// random prefix, counting from one. The size must not exceed sha256.Size.
func NewSequence(size int) (*Sequence, error) {
	prefix := make([]byte, PrefixSize)
	if _, err := rand.Read(prefix); err != nil {
		return nil, err
	}

	return NewSeededSequence(size, 1, prefix), nil
}

// NewSeededSequence returns a Sequence with an explicit width, starting
// counter, and prefix. The entire output is a pure function of its arguments,
// which makes it suitable for reproducing a stream in tests.
func NewSeededSequence(size int, start uint64, prefix []byte) *Sequence {
	return &Sequence{size: size, count: start, prefix: prefix}
}

// Next advances the counter and returns the next nonce in the sequence.
func (s *Sequence) Next() []byte {
	c := s.count
	s.count++

	buf := make([]byte, len(s.prefix)+s.size)
	copy(buf, s.prefix)

	// Encode the counter as a little-endian integer as wide as the nonce.
	ctr := buf[len(s.prefix):]
	for i := range ctr {
		ctr[i] = byte(c)
		c >>= 8
	}

	h := sha256.Sum256(buf)

	return h[:s.size]
}
