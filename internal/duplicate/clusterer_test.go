package duplicate

import (
	"fmt"
	"sync"
	"testing"

	"github.com/handiism/coverfix/internal/model"
)

func rec(path string, duration float64) *model.TrackRecord {
	return model.NewTrackRecord(path, duration, true)
}

func TestObserve_WithinWindow(t *testing.T) {
	c := NewClusterer(2)

	if _, ok := c.Observe(rec("/a/Artist - Song.mp3", 118)); ok {
		t.Fatal("first record must not match")
	}
	pair, ok := c.Observe(rec("/b/artist - song.mp3", 120))
	if !ok {
		t.Fatal("118s/120s with identical keys should match")
	}
	if pair.Original.Path != "/a/Artist - Song.mp3" || pair.Duplicate.Path != "/b/artist - song.mp3" {
		t.Errorf("pair = %+v, want first-seen record as Original", pair)
	}
	if pair.Key != "artist song" {
		t.Errorf("pair.Key = %q", pair.Key)
	}
}

func TestObserve_OutsideWindow(t *testing.T) {
	c := NewClusterer(2)
	c.Observe(rec("/a/Artist - Song.mp3", 118))
	if _, ok := c.Observe(rec("/b/Artist - Song.mp3", 121)); ok {
		t.Error("118s/121s should not match")
	}
}

func TestObserve_DifferentKeys(t *testing.T) {
	c := NewClusterer(2)
	c.Observe(rec("/a/Artist - Song.mp3", 120))
	if _, ok := c.Observe(rec("/a/Artist - Other Song.mp3", 120)); ok {
		t.Error("different keys should never match")
	}
}

func TestObserve_ThreeWayClusterReportsOnce(t *testing.T) {
	c := NewClusterer(2)
	matches := 0
	for i, d := range []float64{120, 121, 122} {
		if _, ok := c.Observe(rec(fmt.Sprintf("/dir%d/Artist - Song.mp3", i), d)); ok {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("matches = %d, want 1", matches)
	}
	if got := len(c.Pairs()); got != 1 {
		t.Errorf("len(Pairs()) = %d, want 1", got)
	}
}

func TestObserve_FirstMatchOnly(t *testing.T) {
	c := NewClusterer(2)
	c.Observe(rec("/1/A - B.mp3", 100))
	c.Observe(rec("/2/A - B.mp3", 200))
	pair, ok := c.Observe(rec("/3/A - B.mp3", 199))
	if !ok {
		t.Fatal("expected a match with the 200s record")
	}
	if pair.Original.Path != "/2/A - B.mp3" {
		t.Errorf("Original = %q, want /2/A - B.mp3", pair.Original.Path)
	}
	pair, ok = c.Observe(rec("/4/A - B.mp3", 101))
	if !ok || pair.Original.Path != "/1/A - B.mp3" {
		t.Errorf("fourth record should pair with the 100s record, got %+v (ok=%v)", pair, ok)
	}
}

func TestObserve_UnknownDurationNeverMatches(t *testing.T) {
	c := NewClusterer(2)
	c.Observe(model.NewTrackRecord("/a/Artist - Song.mp3", 0, false))
	if _, ok := c.Observe(rec("/b/Artist - Song.mp3", 0)); ok {
		t.Error("record without duration must not be matched")
	}
	if _, ok := c.Observe(model.NewTrackRecord("/c/Artist - Song.mp3", 0, false)); ok {
		t.Error("record without duration must not trigger a match")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (unknown durations are still indexed)", c.Len())
	}
}

func TestObserve_DefaultWindow(t *testing.T) {
	c := NewClusterer(0)
	c.Observe(rec("/a/X - Y.mp3", 10))
	if _, ok := c.Observe(rec("/b/X - Y.mp3", 12)); !ok {
		t.Error("default window should be 2 seconds inclusive")
	}
}

func TestObserve_Concurrent(t *testing.T) {
	c := NewClusterer(2)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Observe(rec(fmt.Sprintf("/dir%d/Same - Track.mp3", i), 180))
		}(i)
	}
	wg.Wait()

	if got := len(c.Pairs()); got != 25 {
		t.Errorf("len(Pairs()) = %d, want 25", got)
	}
	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}
