package sqrl

import (
	"crypto/subtle"
	"encoding"
	"fmt"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
)

// KeySize is the width of all keys in bytes.
const KeySize = internal.KeySize

// Key is a fixed-width opaque key. Keys carry no behavior beyond their byte
// representation; what a key means depends entirely on where the hierarchy
// produced it.
//
// It can be marshalled and unmarshalled as a base58 string for human
// consumption.
type Key [KeySize]byte

// NewKey copies the given bytes into a Key. It returns ErrInvalidKeyLength if
// b is not exactly KeySize bytes.
func NewKey(b []byte) (Key, error) {
	var k Key

	if len(b) != KeySize {
		return k, ErrInvalidKeyLength
	}

	copy(k[:], b)

	return k, nil
}

// Equals returns true if the given Key is equal to the receiver. The
// comparison runs in constant time.
func (k Key) Equals(other Key) bool {
	return subtle.ConstantTimeCompare(k[:], other[:]) == 1
}

// MarshalBinary encodes the key into a KeySize-byte slice.
func (k Key) MarshalBinary() (data []byte, err error) {
	return internal.Copy(k[:]), nil
}

// UnmarshalBinary decodes the key from a KeySize-byte slice.
func (k *Key) UnmarshalBinary(data []byte) error {
	nk, err := NewKey(data)
	if err != nil {
		return err
	}

	*k = nk

	return nil
}

// MarshalText encodes the key into base58 text and returns the result.
func (k Key) MarshalText() (text []byte, err error) {
	return internal.ASCIIEncode(k[:]), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver
// to contain the decoded key.
func (k *Key) UnmarshalText(text []byte) error {
	data, err := internal.ASCIIDecode(text)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	return k.UnmarshalBinary(data)
}

// String returns the key as base58 text.
func (k Key) String() string {
	text, err := k.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.BinaryMarshaler   = Key{}
	_ encoding.BinaryUnmarshaler = &Key{}
	_ encoding.TextMarshaler     = Key{}
	_ encoding.TextUnmarshaler   = &Key{}
	_ fmt.Stringer               = Key{}
)
