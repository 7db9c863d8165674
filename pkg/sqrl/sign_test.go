package sqrl

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	var seed Key
	copy(seed[:], "ayellowsubmarineayellowsubmarine")

	public, secret := KeypairFromSeed(seed)
	message := []byte("this is a real message")

	sig := Sign(message, secret, public)

	if err := Verify(sig, message, public); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	t.Parallel()

	var seed Key
	copy(seed[:], "ayellowsubmarineayellowsubmarine")

	public, secret := KeypairFromSeed(seed)
	sig := Sign([]byte("this is a real message"), secret, public)

	err := Verify(sig, []byte("this is a fake message"), public)

	assert.Equal(t, "error", ErrInvalidSignature, err, cmpopts.EquateErrors())
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	var seed, other Key
	copy(seed[:], "ayellowsubmarineayellowsubmarine")
	copy(other[:], "burnaftersigningburnaftersigning")

	public, secret := KeypairFromSeed(seed)
	wrongPublic, _ := KeypairFromSeed(other)

	message := []byte("this is a real message")
	sig := Sign(message, secret, public)

	err := Verify(sig, message, wrongPublic)

	assert.Equal(t, "error", ErrInvalidSignature, err, cmpopts.EquateErrors())
}

func TestKeypairFromSeedDeterministic(t *testing.T) {
	t.Parallel()

	var seed Key
	copy(seed[:], "ayellowsubmarineayellowsubmarine")

	pubA, secA := KeypairFromSeed(seed)
	pubB, secB := KeypairFromSeed(seed)

	assert.Equal(t, "public key", pubA, pubB)
	assert.Equal(t, "secret key", secA, secB)
}

func TestSignatureMarshalling(t *testing.T) {
	t.Parallel()

	var seed Key
	copy(seed[:], "ayellowsubmarineayellowsubmarine")

	public, secret := KeypairFromSeed(seed)
	message := []byte("this is a real message")
	sig := Sign(message, secret, public)

	text, err := sig.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded Signature
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	if err := Verify(&decoded, message, public); err != nil {
		t.Fatal(err)
	}
}

func TestSignatureUnmarshalBinaryBadLength(t *testing.T) {
	t.Parallel()

	var sig Signature

	err := sig.UnmarshalBinary(make([]byte, 12))

	assert.Equal(t, "error", ErrInvalidSignature, err, cmpopts.EquateErrors())
}
