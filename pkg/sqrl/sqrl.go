// Package sqrl implements the key derivation core of a SQRL-style identity
// scheme.
//
// An identity is rooted in a single high-entropy secret, the identity unlock
// key, which the owner retains as a human-entry rescue code. Every other key
// is derived from it: the identity master key via an iterated hash chain, the
// identity lock key as the public half of a seeded signing keypair, a local
// storage key, and per-relying-party unlock keys from independent random lock
// keys. Passphrases are stretched into keys with a memory-hard, dual-bounded
// scrypt chain, and derived secrets are sealed at rest with AES-256-GCM under
// nonces drawn from a hashed-counter sequence.
//
// The package performs no I/O and speaks no protocol; it produces and
// verifies key material, nothing more.
package sqrl

import (
	"errors"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/enhash"
)

var (
	// ErrInvalidCiphertext is returned when a ciphertext cannot be decrypted,
	// either due to an incorrect key or tampering.
	ErrInvalidCiphertext = internal.ErrInvalidCiphertext

	// ErrInvalidSignature is returned when a signature, public key, and
	// message do not match.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidKeyLength is returned when key material is not exactly
	// KeySize bytes.
	ErrInvalidKeyLength = enhash.ErrInvalidKeyLength

	// ErrNotImplemented is returned by operations whose derivation is not
	// yet pinned down by the protocol specification.
	ErrNotImplemented = errors.New("not implemented")
)
