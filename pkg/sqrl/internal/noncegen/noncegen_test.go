package noncegen

import (
	"encoding/hex"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestSequenceVector(t *testing.T) {
	t.Parallel()

	s := NewSeededSequence(NonceSize, 1, make([]byte, PrefixSize))

	first, err := hex.DecodeString("5931bd536c4550294a212c6fc8d3c1bee75da817980ba0b6")
	if err != nil {
		t.Fatal(err)
	}

	second, err := hex.DecodeString("c7d20d8131a0acd0e2bc7ab747d61af85a483df42c716f3e")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "first nonce", first, s.Next())
	assert.Equal(t, "second nonce", second, s.Next())
}

func TestSequenceTruncatedVector(t *testing.T) {
	t.Parallel()

	s := NewSeededSequence(12, 1, make([]byte, PrefixSize))

	want, err := hex.DecodeString("94676a2720a4578597b835f1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "nonce", want, s.Next())
}

func TestSequenceDeterministic(t *testing.T) {
	t.Parallel()

	prefix := []byte("sixteen byte str")
	a := NewSeededSequence(NonceSize, 1, prefix)
	b := NewSeededSequence(NonceSize, 1, prefix)

	for i := 0; i < 100; i++ {
		assert.Equal(t, "nonce", a.Next(), b.Next())
	}
}

func TestSequenceDistinct(t *testing.T) {
	t.Parallel()

	s, err := NewSequence(NonceSize)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)

	for i := 0; i < 10_000; i++ {
		n := s.Next()

		assert.Equal(t, "nonce length", NonceSize, len(n))

		if seen[string(n)] {
			t.Fatalf("nonce repeated after %d draws", i)
		}

		seen[string(n)] = true
	}
}

func TestSequencesDiffer(t *testing.T) {
	t.Parallel()

	// Fresh sequences carry fresh prefixes, so their streams diverge.
	a, err := NewSequence(NonceSize)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewSequence(NonceSize)
	if err != nil {
		t.Fatal(err)
	}

	if string(a.Next()) == string(b.Next()) {
		t.Error("independent sequences produced the same nonce")
	}
}

func BenchmarkNext(b *testing.B) {
	s := NewSeededSequence(NonceSize, 1, make([]byte, PrefixSize))

	for i := 0; i < b.N; i++ {
		_ = s.Next()
	}
}
