// Package rng provides the entropy sources for identity key generation: the
// system CSPRNG for fresh identities, and a seeded deterministic stream for
// reproducible results in tests.
package rng

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Reader is the system CSPRNG.
var Reader io.Reader = rand.Reader

// Read fills b with system entropy.
func Read(b []byte) (int, error) {
	return io.ReadFull(rand.Reader, b)
}

// NewSeeded returns a reader whose output is a pure function of the given
// seed: an HKDF-SHA-256 expansion of it. Two readers with the same seed
// produce identical streams. The stream is finite (8160 bytes), which is
// ample for reproducing key generation in tests but makes it unsuitable as a
// general entropy source.
func NewSeeded(seed []byte) io.Reader {
	return hkdf.New(sha256.New, seed, nil, []byte("sqrl.rng"))
}
