package search

import (
	"encoding/hex"
	"strings"
)

// Probe computes the digest of rendered and reports whether its leading hex
// digits equal embedded. Both sides are canonical lowercase: HexAt emits
// lowercase and hex.EncodeToString encodes lowercase, so the comparison is
// exact. The full digest hex is returned for the caller.
func Probe(d Digester, rendered, embedded string) (digest string, ok bool) {
	digest = hex.EncodeToString(d.Sum([]byte(rendered)))
	return digest, strings.HasPrefix(digest, embedded)
}
