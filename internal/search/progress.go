package search

import "time"

// Snapshot is one periodic observation of a running search. The Remaining
// estimate assumes the current rate holds over the entire unexplored space;
// it is an upper bound, not an expectation of when a match will appear.
type Snapshot struct {
	RunID     string
	Elapsed   time.Duration
	Attempts  uint64
	Size      uint64
	Percent   float64
	Rate      float64
	Remaining time.Duration
}

// report samples the shared counter on a fixed interval and hands snapshots
// to the subscriber. It is a read-only observer: the search neither waits
// for it nor depends on it. Closing done stops the loop.
func (s *Searcher) report(st *state, start time.Time, done <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.onProgress(s.snapshot(st, start))
		}
	}
}

func (s *Searcher) snapshot(st *state, start time.Time) Snapshot {
	attempts := st.attempts.Load()
	elapsed := time.Since(start)

	snap := Snapshot{
		RunID:    s.id,
		Elapsed:  elapsed,
		Attempts: attempts,
		Size:     s.space.Size(),
		Percent:  float64(attempts) / float64(s.space.Size()) * 100,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		snap.Rate = float64(attempts) / secs
	}
	if snap.Rate > 0 {
		left := float64(s.space.Size()-attempts) / snap.Rate
		snap.Remaining = time.Duration(left * float64(time.Second))
	}
	return snap
}
