package search

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("abc"), the classic test vector.
const abcDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestProbeKnownVector(t *testing.T) {
	digest, ok := Probe(SHA256(), "abc", "ba7816")
	assert.True(t, ok)
	assert.Equal(t, abcDigest, digest)

	_, ok = Probe(SHA256(), "abc", "ba7817")
	assert.False(t, ok)
}

func TestProbeDeterministic(t *testing.T) {
	first, firstOK := Probe(SHA256(), "some rendered candidate", "ab")
	for i := 0; i < 100; i++ {
		digest, ok := Probe(SHA256(), "some rendered candidate", "ab")
		require.Equal(t, first, digest)
		require.Equal(t, firstOK, ok)
	}
}

func TestProbeMatchRateUnbiased(t *testing.T) {
	// A one-digit prefix should match roughly 1 in 16 inputs, with no
	// systematic skew from small input edits. 4096 samples put the expected
	// hit count at 256 with a standard deviation near 16, so the bounds
	// here are many sigmas wide.
	hits := 0
	for i := 0; i < 4096; i++ {
		_, ok := Probe(SHA256(), "sample input "+strconv.Itoa(i), "a")
		if ok {
			hits++
		}
	}
	assert.Greater(t, hits, 150)
	assert.Less(t, hits, 400)
}

func TestProbeCaseCanonical(t *testing.T) {
	// Embedded strings are produced by HexAt and therefore lowercase; an
	// uppercase prefix must never match the lowercase digest encoding.
	_, ok := Probe(SHA256(), "abc", "BA7816")
	assert.False(t, ok)
}
