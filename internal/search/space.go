package search

import (
	"github.com/pkg/errors"
)

// MaxDigits is the hard ceiling on the candidate width. 16^15 = 2^60 still
// fits the uint64 attempt counter; one more digit would wrap it.
const MaxDigits = 15

const hexAlphabet = "0123456789abcdef"

// Space is the candidate space for one search: every lowercase hex string of
// exactly Digits characters, addressed by an integer index. Immutable for
// the lifetime of a search.
type Space struct {
	digits int
	size   uint64
}

// NewSpace builds the space for the given candidate width. The limit is the
// policy ceiling on digits; values above MaxDigits are clamped to it.
func NewSpace(digits, limit int) (Space, error) {
	if digits < 1 {
		return Space{}, errors.Errorf("digit count must be positive, got %d", digits)
	}
	if limit < 1 || limit > MaxDigits {
		limit = MaxDigits
	}
	if digits > limit {
		return Space{}, &SpaceTooLargeError{Digits: digits, Limit: limit}
	}
	return Space{digits: digits, size: 1 << (4 * uint(digits))}, nil
}

func (s Space) Digits() int { return s.digits }

// Size is 16^Digits, the number of candidates.
func (s Space) Size() uint64 { return s.size }

// HexAt maps an index in [0, Size) to its fixed-width lowercase hex string,
// left-padded with '0'. The mapping is a bijection over the space.
func (s Space) HexAt(index uint64) string {
	buf := make([]byte, s.digits)
	for i := s.digits - 1; i >= 0; i-- {
		buf[i] = hexAlphabet[index&0xf]
		index >>= 4
	}
	return string(buf)
}
