package search

import "sync/atomic"

// Match is the claimed result of a successful probe.
type Match struct {
	Index    uint64
	Rendered string
	Digest   string
}

// state is the only mutable data shared between workers and the reporter.
// One state exists per search invocation; concurrent unrelated searches
// cannot interfere. All fields are single-word atomics, no lock is needed:
// the found claim happens-before the cancel flag set, so any reader that
// observes cancelled also observes the winning match.
type state struct {
	attempts  atomic.Uint64
	found     atomic.Pointer[Match]
	cancelled atomic.Bool
}

// claim installs m as the search result. Only the first claim wins; the
// winner also raises the cancel flag so every worker stops.
func (s *state) claim(m *Match) bool {
	if !s.found.CompareAndSwap(nil, m) {
		return false
	}
	s.cancelled.Store(true)
	return true
}

func (s *state) cancel() {
	s.cancelled.Store(true)
}
