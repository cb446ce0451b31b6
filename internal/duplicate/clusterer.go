// Package duplicate flags likely duplicate recordings by normalized filename
// and track duration.
package duplicate

import (
	"math"
	"sync"

	"github.com/handiism/coverfix/internal/model"
)

// DefaultWindow is the maximum duration difference, in seconds, for two
// records with the same key to be reported as duplicates.
const DefaultWindow = 2.0

type entry struct {
	path        string
	duration    float64
	hasDuration bool
	paired      bool
}

// Clusterer indexes every observed record by normalized key and reports
// candidate duplicate pairs.
//
// Observe is safe for concurrent use; the scan of a key bucket and the
// append of the new record happen under one lock.
type Clusterer struct {
	mu     sync.Mutex
	window float64
	seen   map[string][]*entry
	pairs  []model.DuplicatePair
}

// NewClusterer creates a Clusterer matching durations within window seconds
// (inclusive). A non-positive window selects DefaultWindow.
func NewClusterer(window float64) *Clusterer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Clusterer{
		window: window,
		seen:   make(map[string][]*entry),
	}
}

// Observe indexes rec and reports whether it duplicates an earlier record.
//
// The earlier records sharing rec.Key are scanned in the order they were
// observed; the first one with a known duration within the window that has
// not already been reported in a pair is matched, and scanning stops.
// Records without a known duration are indexed but never match.
func (c *Clusterer) Observe(rec *model.TrackRecord) (model.DuplicatePair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := &entry{
		path:        rec.Path,
		duration:    rec.Duration,
		hasDuration: rec.HasDuration,
	}

	var (
		pair  model.DuplicatePair
		found bool
	)
	if current.hasDuration {
		for _, prev := range c.seen[rec.Key] {
			if !prev.hasDuration || prev.paired {
				continue
			}
			if math.Abs(prev.duration-current.duration) > c.window {
				continue
			}
			prev.paired = true
			current.paired = true
			pair = model.DuplicatePair{
				Key:       rec.Key,
				Original:  model.DuplicateEntry{Path: prev.path, Duration: prev.duration},
				Duplicate: model.DuplicateEntry{Path: current.path, Duration: current.duration},
			}
			c.pairs = append(c.pairs, pair)
			found = true
			break
		}
	}

	c.seen[rec.Key] = append(c.seen[rec.Key], current)
	return pair, found
}

// Pairs returns every reported pair in report order.
func (c *Clusterer) Pairs() []model.DuplicatePair {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.DuplicatePair, len(c.pairs))
	copy(out, c.pairs)
	return out
}

// Len returns the number of records observed so far.
func (c *Clusterer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, bucket := range c.seen {
		n += len(bucket)
	}
	return n
}
