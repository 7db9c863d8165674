// Package enscrypt implements the EnScrypt password stretching function:
// chained scrypt with XOR accumulation and a dual termination condition.
//
// The passphrase and salt are run through scrypt once to produce a first
// digest. Each further round re-runs scrypt with the passphrase and the
// previous round's digest as the salt, XOR-accumulating every round's output
// into the derived key. The loop ends only once at least the requested number
// of rounds has completed AND at least the requested minimum wall-clock time
// has elapsed.
//
// A verifier reproducing a previously derived key sets the minimum time to
// zero and supplies the recorded iteration count, which makes the result a
// pure function of its inputs. Key generation can instead spend a fixed
// amount of time and record however many rounds that bought.
package enscrypt

import (
	"time"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the width of the derived key in bytes.
	KeySize = 32

	// blockSize and parallelism are the fixed scrypt r and p parameters.
	blockSize   = 256
	parallelism = 1
)

// Clock returns the current time. It exists so tests can substitute a
// deterministic clock for time.Now.
type Clock func() time.Time

// Derive stretches the passphrase into a KeySize-byte key, spending at least
// minTime of wall-clock time and at least iterations rounds of scrypt with a
// work factor of 2^logN. It returns the number of rounds performed, the time
// consumed, and the derived key.
func Derive(passphrase, salt []byte, logN uint, iterations int, minTime time.Duration) (int, time.Duration, []byte, error) {
	return DeriveClock(passphrase, salt, logN, iterations, minTime, time.Now)
}

// DeriveClock is Derive with an injectable clock.
func DeriveClock(passphrase, salt []byte, logN uint, iterations int, minTime time.Duration, now Clock) (int, time.Duration, []byte, error) {
	n := 1 << logN

	// First round uses the caller's salt.
	out, err := scrypt.Key(passphrase, salt, n, blockSize, parallelism, KeySize)
	if err != nil {
		return 0, 0, nil, err
	}

	acc := make([]byte, KeySize)
	copy(acc, out)

	i := 1
	start := now()
	end := start.Add(minTime)

	// Both bounds must be satisfied before the loop ends: i >= iterations
	// and now >= end.
	for i < iterations || now().Before(end) {
		// Later rounds salt the passphrase with the previous digest.
		out, err = scrypt.Key(passphrase, out, n, blockSize, parallelism, KeySize)
		if err != nil {
			return 0, 0, nil, err
		}

		for j := range acc {
			acc[j] ^= out[j]
		}

		i++
	}

	return i, now().Sub(start), acc, nil
}
