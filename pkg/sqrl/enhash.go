package sqrl

import (
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/enhash"
)

// EnHash derives a subsidiary key from a high-entropy master key: sixteen
// chained rounds of SHA-256 with every round digest XOR-accumulated into the
// result. The input must be exactly KeySize bytes or EnHash returns
// ErrInvalidKeyLength.
//
// EnHash is a pure one-way map with no secret state; equal inputs always
// produce equal outputs. It is not a password-stretching function — for
// low-entropy input, use EnScrypt.
func EnHash(key []byte) (Key, error) {
	out, err := enhash.Hash(key)
	if err != nil {
		return Key{}, err
	}

	return NewKey(out)
}
