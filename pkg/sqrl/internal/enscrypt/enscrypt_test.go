package enscrypt

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/codahale/gubbins/assert"
)

// tick returns a clock which advances by step on every reading.
func tick(step time.Duration) Clock {
	t := time.Unix(0, 0)

	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestDeriveDeterministic(t *testing.T) {
	t.Parallel()

	passphrase := []byte("squeamish ossifrage")
	salt := []byte("sodium chloride")

	i1, _, k1, err := Derive(passphrase, salt, 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	i2, _, k2, err := Derive(passphrase, salt, 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 3, i1)
	assert.Equal(t, "iterations", 3, i2)
	assert.Equal(t, "derived key", k1, k2)
}

func TestDeriveVector(t *testing.T) {
	t.Parallel()

	want, err := hex.DecodeString(
		"c306ad5c7ef150973095596744fd7b58dcf0cebe72fa13f8ea87e9bf6b81516f")
	if err != nil {
		t.Fatal(err)
	}

	i, _, key, err := Derive([]byte("password"), make([]byte, 16), 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 3, i)
	assert.Equal(t, "derived key", want, key)
}

func TestDeriveSingleRoundVector(t *testing.T) {
	t.Parallel()

	want, err := hex.DecodeString(
		"90022433a84e44dba6c84424c030012da82f838bc3fd1164f90f191864cced47")
	if err != nil {
		t.Fatal(err)
	}

	i, _, key, err := Derive([]byte("password"), make([]byte, 16), 4, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 1, i)
	assert.Equal(t, "derived key", want, key)
}

func TestDeriveMinimumOneRound(t *testing.T) {
	t.Parallel()

	// A zero or negative iteration count still performs the initial round.
	i, _, _, err := Derive([]byte("password"), make([]byte, 16), 4, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 1, i)
}

func TestDeriveClockMinimumTime(t *testing.T) {
	t.Parallel()

	passphrase := []byte("password")
	salt := make([]byte, 16)

	// With a clock advancing one second per reading, a three second floor
	// buys three rounds.
	timed, _, k1, err := DeriveClock(passphrase, salt, 4, 1, 3*time.Second, tick(time.Second))
	if err != nil {
		t.Fatal(err)
	}

	counted, _, k2, err := Derive(passphrase, salt, 4, timed, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 3, timed)
	assert.Equal(t, "iterations", timed, counted)
	assert.Equal(t, "derived key", k1, k2)
}

func TestDeriveClockBothBoundsHold(t *testing.T) {
	t.Parallel()

	// The iteration floor still applies when the time floor is already met.
	i, _, _, err := DeriveClock([]byte("password"), make([]byte, 16), 4, 5, time.Second, tick(time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "iterations", 5, i)
}

func TestDeriveBadWorkFactor(t *testing.T) {
	t.Parallel()

	// logN of zero gives N=1, which scrypt rejects.
	if _, _, _, err := Derive([]byte("password"), make([]byte, 16), 0, 1, 0); err == nil {
		t.Error("no error for invalid work factor")
	}
}

func BenchmarkDerive(b *testing.B) {
	passphrase := []byte("password")
	salt := make([]byte, 16)

	for i := 0; i < b.N; i++ {
		_, _, _, _ = Derive(passphrase, salt, 9, 8, 0)
	}
}
