package search

import "crypto/sha256"

// Digester is the hash primitive the search treats as a black box. One
// digester serves a whole run; implementations must be safe for concurrent
// use from multiple workers.
type Digester interface {
	// Sum returns the digest of data.
	Sum(data []byte) []byte
	// Size returns the digest length in bytes.
	Size() int
}

type sha256Digester struct{}

// SHA256 returns the production digester.
func SHA256() Digester { return sha256Digester{} }

func (sha256Digester) Sum(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func (sha256Digester) Size() int { return sha256.Size }
