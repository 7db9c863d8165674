package sqrl

import (
	"time"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal"
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/enscrypt"
)

const (
	// SaltSize is the width of EnScrypt salts in bytes. A salt must be
	// unique per identity.
	SaltSize = internal.SaltSize

	// DefaultLogN is the default EnScrypt memory-cost exponent (N = 2^9).
	DefaultLogN = 9
)

// EnScrypt stretches a passphrase into a KeySize-byte key by chaining scrypt
// (N=2^logN, r=256, p=1) with XOR accumulation. The loop runs until at least
// iterations rounds have completed AND at least minTime of wall-clock time
// has elapsed; either bound may be zero.
//
// It returns the number of rounds performed, the time consumed, and the
// derived key. Given the same passphrase, salt, logN, and iteration count
// with a zero minTime, the key is reproducible bit for bit; the elapsed time
// is informational only.
//
// To match an existing key, pass the recorded iteration count and a zero
// minTime. To spend a security margin on capable hardware, pass the time you
// are willing to burn and record how many rounds it bought.
func EnScrypt(passphrase, salt []byte, logN uint, iterations int, minTime time.Duration) (int, time.Duration, Key, error) {
	n, elapsed, out, err := enscrypt.Derive(passphrase, salt, logN, iterations, minTime)
	if err != nil {
		return 0, 0, Key{}, err
	}

	key, err := NewKey(out)

	return n, elapsed, key, err
}
