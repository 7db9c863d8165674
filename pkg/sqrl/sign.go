package sqrl

import (
	"crypto/ed25519"
	"encoding"
	"fmt"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
)

// SignatureSize is the width of detached signatures in bytes.
const SignatureSize = ed25519.SignatureSize

// Signature is a detached signature of a message, created by the holder of a
// signing seed, which can be verified by anyone with the corresponding public
// key.
//
// It can be marshalled and unmarshalled as a base58 string for human
// consumption.
type Signature struct {
	b []byte
}

// KeypairFromSeed deterministically derives the signing keypair for the
// given seed. The same seed always yields the same pair. The secret half is
// the seed itself, per the seeded-keypair convention used by Sign.
func KeypairFromSeed(seed Key) (public, secret Key) {
	return publicKeyFromSeed(seed), seed
}

// Sign returns a detached signature of the message. The signing key material
// is the secret seed concatenated with its public key, matching the
// seeded-keypair convention; public must be the key derived from secret by
// KeypairFromSeed.
func Sign(message []byte, secret, public Key) *Signature {
	priv := make(ed25519.PrivateKey, 0, ed25519.PrivateKeySize)
	priv = append(priv, secret[:]...)
	priv = append(priv, public[:]...)

	return &Signature{b: ed25519.Sign(priv, message)}
}

// Verify returns nil if the given signature was created by the owner of the
// given public key over the given message, otherwise ErrInvalidSignature.
func Verify(sig *Signature, message []byte, public Key) error {
	if !ed25519.Verify(ed25519.PublicKey(public[:]), message, sig.b) {
		return ErrInvalidSignature
	}

	return nil
}

// MarshalBinary encodes the signature into bytes.
func (s *Signature) MarshalBinary() (data []byte, err error) {
	return internal.Copy(s.b), nil
}

// UnmarshalBinary decodes the signature from bytes.
func (s *Signature) UnmarshalBinary(data []byte) error {
	if len(data) != SignatureSize {
		return ErrInvalidSignature
	}

	s.b = internal.Copy(data)

	return nil
}

// MarshalText encodes the signature into base58 text and returns the result.
func (s *Signature) MarshalText() (text []byte, err error) {
	return internal.ASCIIEncode(s.b), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver
// to contain the decoded signature.
func (s *Signature) UnmarshalText(text []byte) error {
	data, err := internal.ASCIIDecode(text)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	return s.UnmarshalBinary(data)
}

// String returns the signature as base58 text.
func (s *Signature) String() string {
	text, err := s.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.BinaryMarshaler   = &Signature{}
	_ encoding.BinaryUnmarshaler = &Signature{}
	_ encoding.TextMarshaler     = &Signature{}
	_ encoding.TextUnmarshaler   = &Signature{}
	_ fmt.Stringer               = &Signature{}
)
