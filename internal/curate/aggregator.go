package curate

import (
	"fmt"
	"sync"
	"time"

	"github.com/handiism/coverfix/internal/artwork"
	"github.com/handiism/coverfix/internal/model"
)

// Summary is the result of one curation run.
//
// A Summary returned by Aggregator.Finalize is never modified afterwards.
type Summary struct {
	RunID      string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time

	// Total is the number of files that received an outcome.
	Total int

	// WithArt counts files that already carried embedded art, readable or not.
	WithArt int

	Counts     map[model.Outcome]int
	Duplicates []model.DuplicatePair
}

// Count returns how many files ended with outcome o.
func (s *Summary) Count(o model.Outcome) int {
	return s.Counts[o]
}

// DuplicateCount returns the number of duplicate candidate pairs.
func (s *Summary) DuplicateCount() int {
	return len(s.Duplicates)
}

// Changed returns how many files had their cover rewritten.
func (s *Summary) Changed() int {
	n := 0
	for o, c := range s.Counts {
		if o.Changed() {
			n += c
		}
	}
	return n
}

// Failed returns how many files ended in a failure outcome.
func (s *Summary) Failed() int {
	n := 0
	for o, c := range s.Counts {
		if o.Failed() {
			n += c
		}
	}
	return n
}

// Elapsed returns the wall time of the run.
func (s *Summary) Elapsed() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Lines renders the summary as plain text lines for logs.
func (s *Summary) Lines() []string {
	lines := []string{
		"--- Summary ---",
		fmt.Sprintf("Total files checked: %d", s.Total),
		fmt.Sprintf("Already had album art: %d", s.WithArt),
	}
	for _, o := range model.Outcomes {
		lines = append(lines, fmt.Sprintf("%s: %d", o.Label(), s.Count(o)))
	}
	lines = append(lines, fmt.Sprintf("Duplicate candidates: %d", s.DuplicateCount()))
	return lines
}

// Aggregator accumulates per-file results into a Summary.
//
// Aggregator is safe for concurrent use. Once Finalize has been called,
// further records are ignored.
type Aggregator struct {
	mu        sync.Mutex
	summary   *Summary
	finalized bool
}

// NewAggregator starts an empty summary for a run.
func NewAggregator(runID, root string, startedAt time.Time) *Aggregator {
	return &Aggregator{
		summary: &Summary{
			RunID:     runID,
			Root:      root,
			StartedAt: startedAt,
			Counts:    make(map[model.Outcome]int, len(model.Outcomes)),
		},
	}
}

// RecordOutcome counts the outcome of one file.
func (a *Aggregator) RecordOutcome(res artwork.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}
	a.summary.Total++
	a.summary.Counts[res.Outcome]++
	if res.Outcome != model.OutcomeInvalidName && res.Verdict != artwork.VerdictAbsent {
		a.summary.WithArt++
	}
}

// RecordDuplicate appends a duplicate candidate pair.
func (a *Aggregator) RecordDuplicate(pair model.DuplicatePair) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}
	a.summary.Duplicates = append(a.summary.Duplicates, pair)
}

// Finalize closes the run and returns its summary.
// Later calls return the same summary; finishedAt is only used the first time.
func (a *Aggregator) Finalize(finishedAt time.Time) *Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.finalized {
		a.summary.FinishedAt = finishedAt
		a.finalized = true
	}
	return a.summary
}
