package sqrl

import (
	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/noncegen"
)

const (
	// NonceSize is the default nonce width in bytes.
	NonceSize = noncegen.NonceSize

	// IVSize is the AES-GCM initialization vector width in bytes, for
	// sequences feeding Encrypt.
	IVSize = internal.IVSize
)

// NonceSequence is a deterministic stream of non-repeating nonces: a hashed,
// truncated counter behind a random prefix. Because the hash is truncated,
// the full counter period is not guaranteed — rotate the sealing key well
// before the counter space is exhausted.
//
// A NonceSequence is NOT safe for concurrent use. Allocate one sequence per
// encryption context, or serialize access externally. This is deliberate:
// the pairing of one prefix/counter state with one key is itself a security
// property, and hiding a lock here would invite sharing.
type NonceSequence struct {
	seq *noncegen.Sequence
}

// NewNonceSequence returns a NonceSequence of size-byte nonces with a fresh
// random prefix, counting from one.
func NewNonceSequence(size int) (*NonceSequence, error) {
	seq, err := noncegen.NewSequence(size)
	if err != nil {
		return nil, err
	}

	return &NonceSequence{seq: seq}, nil
}

// NewSeededNonceSequence returns a NonceSequence with an explicit width,
// starting counter, and prefix, for reproducing a stream deterministically.
func NewSeededNonceSequence(size int, start uint64, prefix []byte) *NonceSequence {
	return &NonceSequence{seq: noncegen.NewSeededSequence(size, start, prefix)}
}

// Next advances the counter and returns the next nonce.
func (n *NonceSequence) Next() []byte {
	return n.seq.Next()
}
