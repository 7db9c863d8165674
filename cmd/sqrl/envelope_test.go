package main

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	var iuk sqrl.Key
	copy(iuk[:], "ayellowsubmarineayellowsubmarine")

	sealed, err := sealIdentity(iuk, []byte("passphrase"), 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	opened, err := openIdentity(sealed, []byte("passphrase"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "identity unlock key", iuk, opened)
}

func TestEnvelopeWrongPassphrase(t *testing.T) {
	t.Parallel()

	var iuk sqrl.Key
	copy(iuk[:], "ayellowsubmarineayellowsubmarine")

	sealed, err := sealIdentity(iuk, []byte("passphrase"), 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	_, err = openIdentity(sealed, []byte("wrong"))

	assert.Equal(t, "error", sqrl.ErrInvalidCiphertext, err, cmpopts.EquateErrors())
}

func TestEnvelopeTampered(t *testing.T) {
	t.Parallel()

	var iuk sqrl.Key
	copy(iuk[:], "ayellowsubmarineayellowsubmarine")

	sealed, err := sealIdentity(iuk, []byte("passphrase"), 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	// Flipping a bit of the recorded parameters must fail decryption: the
	// header is the associated data.
	sealed[0] ^= 0x01

	if _, err := openIdentity(sealed, []byte("passphrase")); err == nil {
		t.Error("tampered envelope opened")
	}
}
