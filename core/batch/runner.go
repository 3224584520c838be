package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/hebrewutils/core/corpus"
	"github.com/FocuswithJustin/hebrewutils/core/nikkud"
	"github.com/FocuswithJustin/hebrewutils/internal/logging"
)

// Runner spreads pair lists concurrently.
type Runner struct {
	// Workers bounds the number of concurrent spreads. Zero means one per CPU.
	Workers int

	now func() time.Time
}

// NewRunner returns a Runner with the given worker bound.
func NewRunner(workers int) *Runner {
	return &Runner{Workers: workers, now: time.Now}
}

// Run spreads every pair and returns the report with entries in input
// order. A pair that fails is recorded in its entry; Run itself only fails
// when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, source string, pairs []corpus.Pair) (*Report, error) {
	now := r.now
	if now == nil {
		now = time.Now
	}

	report := &Report{
		RunID:     uuid.New().String(),
		Source:    source,
		CreatedAt: now().UTC(),
	}
	ctx = logging.WithRunID(ctx, report.RunID)
	logging.BatchEvent(ctx, "started", len(pairs), "source", source)

	pool := newWorkerPool[corpus.Pair, Entry](r.Workers, len(pairs))
	entries, err := pool.run(ctx, pairs, func(i int, p corpus.Pair) Entry {
		return spreadPair(ctx, i, p)
	})
	if err != nil {
		logging.BatchEvent(ctx, "cancelled", len(pairs), "error", err.Error())
		return nil, err
	}

	report.Entries = entries
	report.summarize()
	logging.BatchEvent(ctx, "finished", report.Pairs,
		"failed", report.Failed, "gaps", report.Gaps, "blake3", report.Digest)
	return report, nil
}

// spreadPair builds the entry for one pair.
func spreadPair(ctx context.Context, index int, p corpus.Pair) Entry {
	e := Entry{
		Index:     index,
		Label:     p.Label(),
		Reference: p.Reference,
		Billet:    p.Billet,
	}

	start := time.Now()
	s, err := nikkud.New(p.Reference, p.Billet)
	if err != nil {
		e.Error = err.Error()
		e.Digest = entryDigest(&e)
		logging.SpreadFailed(ctx, e.Label, err)
		return e
	}

	e.Result = s.Result()
	e.Report = s.DiagnosticReport()
	e.Gaps = s.Gaps()
	for _, reason := range s.Reasons() {
		e.Reasons = append(e.Reasons, reason.String())
	}
	e.Digest = entryDigest(&e)
	logging.SpreadEvent(ctx, e.Label, len(e.Reasons), len(e.Gaps), time.Since(start))
	return e
}
