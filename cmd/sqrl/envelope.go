package main

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/hashbeam/sqrl/pkg/sqrl"
)

// envelope is the fixed-size sealed-identity file: the enscrypt parameters
// and salt needed to re-derive the sealing key, the GCM IV, and the encrypted
// identity unlock key with its tag. The header doubles as the associated
// data, so no field can be altered without failing decryption.
type envelope struct {
	LogN       uint8
	Iterations uint32
	Salt       [sqrl.SaltSize]byte
	IV         [sqrl.IVSize]byte
	Ciphertext [sqrl.KeySize + sqrl.TagSize]byte
}

// header returns the authenticated prefix of the encoded envelope.
func (e *envelope) header() []byte {
	buf := bytes.NewBuffer(nil)
	_ = binary.Write(buf, binary.BigEndian, e.LogN)
	_ = binary.Write(buf, binary.BigEndian, e.Iterations)
	_, _ = buf.Write(e.Salt[:])
	_, _ = buf.Write(e.IV[:])

	return buf.Bytes()
}

// sealIdentity stretches the passphrase and seals the identity unlock key
// into an encoded envelope, spending at least iterations rounds and minTime
// of wall-clock time on the stretch.
func sealIdentity(iuk sqrl.Key, passphrase []byte, logN uint, iterations int, minTime time.Duration) ([]byte, error) {
	var e envelope

	e.LogN = uint8(logN)

	if _, err := rand.Read(e.Salt[:]); err != nil {
		return nil, err
	}

	seq, err := sqrl.NewNonceSequence(sqrl.IVSize)
	if err != nil {
		return nil, err
	}

	copy(e.IV[:], seq.Next())

	n, _, key, err := sqrl.EnScrypt(passphrase, e.Salt[:], logN, iterations, minTime)
	if err != nil {
		return nil, err
	}

	e.Iterations = uint32(n)

	ciphertext, tag, err := sqrl.Encrypt(key, e.IV[:], iuk[:], e.header())
	if err != nil {
		return nil, err
	}

	copy(e.Ciphertext[:], ciphertext)
	copy(e.Ciphertext[len(ciphertext):], tag)

	buf := bytes.NewBuffer(nil)
	if err := binary.Write(buf, binary.BigEndian, &e); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// openIdentity re-derives the sealing key from the passphrase with the
// envelope's recorded parameters and returns the identity unlock key.
func openIdentity(data, passphrase []byte) (sqrl.Key, error) {
	var e envelope

	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &e); err != nil {
		return sqrl.Key{}, err
	}

	// The recorded iteration count with no time floor reproduces the key.
	_, _, key, err := sqrl.EnScrypt(passphrase, e.Salt[:], uint(e.LogN), int(e.Iterations), 0)
	if err != nil {
		return sqrl.Key{}, err
	}

	n := len(e.Ciphertext) - sqrl.TagSize

	plaintext, err := sqrl.Decrypt(key, e.IV[:], e.Ciphertext[:n], e.header(), e.Ciphertext[n:])
	if err != nil {
		return sqrl.Key{}, err
	}

	return sqrl.NewKey(plaintext)
}
