package search

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ctxPollEvery bounds how many candidates a worker evaluates between
// context checks. The in-band cancel flag is checked every candidate.
const ctxPollEvery = 4096

const defaultInterval = time.Second

// Result is the terminal outcome of one search. Found distinguishes a match
// from exhaustion without inspecting any error text; on exhaustion Attempts
// equals the full space size exactly.
type Result struct {
	Found    bool
	Index    uint64
	Rendered string
	Digest   string
	Attempts uint64
	Elapsed  time.Duration
}

// Searcher drives one exhaustive search over a candidate space. All
// validation happens in New; Run performs no fallible work before spawning
// workers.
type Searcher struct {
	space      Space
	tmpl       Template
	digester   Digester
	workers    int
	digitLimit int
	interval   time.Duration
	onProgress func(Snapshot)
	id         string
	l          zerolog.Logger
}

type Option func(*Searcher)

// WithWorkers overrides the worker count. Values below 1 fall back to the
// available hardware parallelism.
func WithWorkers(n int) Option {
	return func(s *Searcher) { s.workers = n }
}

// WithDigester replaces the hash primitive.
func WithDigester(d Digester) Option {
	return func(s *Searcher) { s.digester = d }
}

// WithProgress subscribes fn to periodic snapshots. A nil fn disables
// reporting entirely; the search behaves identically either way.
func WithProgress(fn func(Snapshot)) Option {
	return func(s *Searcher) { s.onProgress = fn }
}

// WithInterval sets the sampling cadence of the progress reporter.
func WithInterval(d time.Duration) Option {
	return func(s *Searcher) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithDigitLimit sets the policy ceiling on the candidate width, clamped by
// the hard MaxDigits ceiling.
func WithDigitLimit(n int) Option {
	return func(s *Searcher) { s.digitLimit = n }
}

// WithLogger replaces the base logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) { s.l = l }
}

// New validates the inputs and builds a searcher. All validation errors
// (placeholder errors, SpaceTooLargeError) surface here, before any work.
func New(digits int, template string, opts ...Option) (*Searcher, error) {
	s := &Searcher{
		digester: SHA256(),
		interval: defaultInterval,
		id:       uuid.NewString(),
		l:        log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.l = s.l.With().
		Str("domain", "search").
		Str("run-id", s.id).
		Logger()

	tmpl, err := ParseTemplate(template, DefaultPlaceholder)
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl

	space, err := NewSpace(digits, s.digitLimit)
	if err != nil {
		return nil, err
	}
	if digits > s.digester.Size()*2 {
		return nil, errors.Errorf("digit count %d exceeds the %d hex digits of the digest", digits, s.digester.Size()*2)
	}
	s.space = space

	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s, nil
}

// ID is the run identifier attached to logs and snapshots.
func (s *Searcher) ID() string { return s.id }

// Space exposes the candidate space derived from the digit count.
func (s *Searcher) Space() Space { return s.space }

// Workers is the resolved worker count.
func (s *Searcher) Workers() int { return s.workers }

// Run evaluates candidates until a match is claimed or the space is
// exhausted. It blocks until every worker has returned and the reporter, if
// any, has stopped. A cancelled context drains the workers and returns the
// context error together with the partial attempt count.
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	st := &state{}

	s.l.Debug().
		Int("digits", s.space.Digits()).
		Uint64("size", s.space.Size()).
		Int("workers", s.workers).
		Msg("search starting")

	var reporterDone chan struct{}
	var reporterExit chan struct{}
	if s.onProgress != nil {
		reporterDone = make(chan struct{})
		reporterExit = make(chan struct{})
		go func() {
			defer close(reporterExit)
			s.report(st, start, reporterDone)
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < s.workers; i++ {
		lo, hi := partition(s.space.Size(), s.workers, i)
		g.Go(func() error {
			return s.scan(gctx, st, lo, hi)
		})
	}
	err := g.Wait()

	if reporterDone != nil {
		close(reporterDone)
		<-reporterExit
	}

	res := Result{
		Attempts: st.attempts.Load(),
		Elapsed:  time.Since(start),
	}
	if m := st.found.Load(); m != nil {
		res.Found = true
		res.Index = m.Index
		res.Rendered = m.Rendered
		res.Digest = m.Digest
		s.l.Debug().
			Uint64("index", m.Index).
			Str("digest", m.Digest).
			Uint64("attempts", res.Attempts).
			Dur("elapsed", res.Elapsed).
			Msg("match found")
		return res, nil
	}
	if err != nil {
		s.l.Debug().Err(err).Uint64("attempts", res.Attempts).Msg("search cancelled")
		return res, err
	}
	s.l.Debug().
		Uint64("attempts", res.Attempts).
		Dur("elapsed", res.Elapsed).
		Msg("space exhausted without a match")
	return res, nil
}

// scan evaluates the index range [lo, hi). The cancel flag is polled before
// every candidate, so propagation latency after a claim is bounded by one
// evaluation per worker.
func (s *Searcher) scan(ctx context.Context, st *state, lo, hi uint64) error {
	for i := lo; i < hi; i++ {
		if st.cancelled.Load() {
			return nil
		}
		if (i-lo)%ctxPollEvery == 0 {
			if err := ctx.Err(); err != nil {
				st.cancel()
				return err
			}
		}
		embedded := s.space.HexAt(i)
		rendered := s.tmpl.Render(embedded)
		digest, ok := Probe(s.digester, rendered, embedded)
		st.attempts.Add(1)
		if ok {
			st.claim(&Match{Index: i, Rendered: rendered, Digest: digest})
			return nil
		}
	}
	return nil
}

// partition splits [0, size) into n contiguous ranges and returns the i-th.
// Ranges are non-overlapping, cover the space exactly, and differ in length
// by at most one. Some ranges are empty when n exceeds size.
func partition(size uint64, n, i int) (lo, hi uint64) {
	chunk := size / uint64(n)
	rem := size % uint64(n)
	idx := uint64(i)
	lo = idx*chunk + min(idx, rem)
	hi = lo + chunk
	if idx < rem {
		hi++
	}
	return lo, hi
}
