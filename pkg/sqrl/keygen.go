package sqrl

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"
	"strings"

	"github.com/hashbeam/sqrl/pkg/sqrl/internal/enhash"
	"github.com/hashbeam/sqrl/pkg/sqrl/internal/rng"
	"golang.org/x/crypto/curve25519"
)

// KeyGen derives the full set of identity keys. All derivation methods are
// pure functions of their arguments; only the New* generators and RescueCode
// consume entropy.
//
// The identity unlock key (IUK) is the root of the hierarchy and the only
// secret the identity owner must durably retain. Everything else is
// recomputable from it plus stored per-relying-party randoms and salts.
type KeyGen struct {
	rng      io.Reader
	dhUnlock bool
}

// KeyGenOption configures a KeyGen.
type KeyGenOption func(*KeyGen)

// WithRNG substitutes the given reader for the system CSPRNG.
func WithRNG(r io.Reader) KeyGenOption {
	return func(g *KeyGen) {
		g.rng = r
	}
}

// WithSeed makes the generator fully deterministic: all entropy is drawn from
// an expansion of the given seed. Two generators constructed with the same
// seed produce identical key sequences. Use this for reproducible tests, not
// for identities you intend to keep.
func WithSeed(seed []byte) KeyGenOption {
	return WithRNG(rng.NewSeeded(seed))
}

// WithDHUnlock switches VerifyUnlockKey to the Diffie-Hellman-combined
// derivation: the signing seed becomes the hash of a curve25519 shared secret
// between the random lock key and the identity lock key, rather than the
// random lock key alone. The combined form follows the protocol's design
// intent but is not yet confirmed against the reference specification, so it
// is off by default.
func WithDHUnlock() KeyGenOption {
	return func(g *KeyGen) {
		g.dhUnlock = true
	}
}

// NewKeyGen returns a KeyGen drawing from the system CSPRNG unless configured
// otherwise.
func NewKeyGen(opts ...KeyGenOption) *KeyGen {
	g := &KeyGen{rng: rng.Reader}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RescueCode generates the human-entry backup for a fresh identity: six
// groups of up to four decimal digits, joined by dashes. Each group is drawn
// uniformly from [0,10000).
func (g *KeyGen) RescueCode() (string, error) {
	groups := make([]string, 6)

	for i := range groups {
		n, err := rand.Int(g.rng, big.NewInt(10000))
		if err != nil {
			return "", err
		}

		groups[i] = n.String()
	}

	return strings.Join(groups, "-"), nil
}

// NewIdentityUnlockKey generates a fresh identity unlock key. It is the only
// truly random secret in the hierarchy; everything else derives from it.
func (g *KeyGen) NewIdentityUnlockKey() (Key, error) {
	return g.newRandomKey()
}

// IdentityMasterKey derives the identity master key from the identity unlock
// key. The master key is never ground truth: it is always recomputable as
// EnHash(IUK).
func (g *KeyGen) IdentityMasterKey(iuk Key) Key {
	return mustEnHash(iuk)
}

// IdentityLockKey derives the identity lock key from the identity unlock key:
// the public half of the signing keypair seeded by the IUK. It is published
// to relying parties; the private half is never persisted, only the IUK is.
func (g *KeyGen) IdentityLockKey(iuk Key) Key {
	return publicKeyFromSeed(iuk)
}

// LocalKey derives the key used to encrypt local identity storage from the
// identity master key.
func (g *KeyGen) LocalKey(imk Key) Key {
	return mustEnHash(imk)
}

// NewRandomLockKey generates a fresh per-relying-party random lock key,
// independent of the identity unlock key.
func (g *KeyGen) NewRandomLockKey() (Key, error) {
	return g.newRandomKey()
}

// VerifyUnlockKey derives the verify unlock key for a relying party: the
// public half of a signing keypair seeded by the random lock key.
//
// With WithDHUnlock, the seed is instead SHA-256 of the curve25519 scalar
// multiplication of the random lock key and the identity lock key, combining
// both as the protocol's design notes describe.
func (g *KeyGen) VerifyUnlockKey(ilk, rlk Key) (Key, error) {
	if !g.dhUnlock {
		return publicKeyFromSeed(rlk), nil
	}

	shared, err := curve25519.X25519(rlk[:], ilk[:])
	if err != nil {
		return Key{}, err
	}

	return publicKeyFromSeed(Key(sha256.Sum256(shared))), nil
}

// ServerUnlockKey derives the server unlock key for a relying party: the
// public half of a signing keypair seeded by the random lock key.
func (g *KeyGen) ServerUnlockKey(rlk Key) Key {
	return publicKeyFromSeed(rlk)
}

// UnlockRequestSigningKey is the key that authorizes an identity unlock
// request toward a relying party. Its derivation is not yet pinned down by
// the protocol specification, so it always returns ErrNotImplemented rather
// than invent semantics the scheme's security would silently depend on.
func (g *KeyGen) UnlockRequestSigningKey(suk, iuk Key) (Key, error) {
	return Key{}, ErrNotImplemented
}

func (g *KeyGen) newRandomKey() (Key, error) {
	var k Key

	if _, err := io.ReadFull(g.rng, k[:]); err != nil {
		return Key{}, err
	}

	return k, nil
}

// publicKeyFromSeed returns the public half of the signing keypair
// deterministically seeded by the given key.
func publicKeyFromSeed(seed Key) Key {
	priv := ed25519.NewKeyFromSeed(seed[:])

	var pk Key
	copy(pk[:], priv.Public().(ed25519.PublicKey))

	return pk
}

// mustEnHash never fails for fixed-width input.
func mustEnHash(k Key) Key {
	out, err := enhash.Hash(k[:])
	if err != nil {
		panic(err)
	}

	var dk Key
	copy(dk[:], out)

	return dk
}
