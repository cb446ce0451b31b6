package model

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Café - Déjà Vu.mp3", "cafe deja vu"},
		{"cafe - deja vu.mp3", "cafe deja vu"},
		{"CAFE_-_deja  vu!.mp3", "cafe deja vu"},
		{"Beyoncé - Halo (Live).mp3", "beyonce halo live"},
		{"  spaced   out  .mp3", "spaced out"},
		{"no-extension", "no extension"},
		{"Sigur Rós - Hoppípolla.MP3", "sigur ros hoppipolla"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeKey(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey_AccentAndCaseInsensitive(t *testing.T) {
	a := NormalizeKey("Café - Déjà Vu.mp3")
	b := NormalizeKey("cafe - deja vu.mp3")
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
}

func TestParseFileName(t *testing.T) {
	tests := []struct {
		input      string
		wantArtist string
		wantTitle  string
		wantOK     bool
	}{
		{"Artist - Song.mp3", "Artist", "Song", true},
		{"A - B - C.mp3", "A", "B - C", true},
		{"  Padded  -  Title  .mp3", "Padded", "Title", true},
		{"BadName.mp3", "", "", false},
		{"Artist-Song.mp3", "", "", false},
		{" - Title.mp3", "", "", false},
		{"Artist - .mp3", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			artist, title, ok := ParseFileName(tt.input)
			if artist != tt.wantArtist || title != tt.wantTitle || ok != tt.wantOK {
				t.Errorf("ParseFileName(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, artist, title, ok, tt.wantArtist, tt.wantTitle, tt.wantOK)
			}
		})
	}
}

func TestNewTrackRecord(t *testing.T) {
	rec := NewTrackRecord("/music/sub/Daft Punk - Digital Love.mp3", 301.5, true)

	if rec.FileName != "Daft Punk - Digital Love.mp3" {
		t.Errorf("FileName = %q", rec.FileName)
	}
	if rec.Artist != "Daft Punk" || rec.Title != "Digital Love" {
		t.Errorf("Artist/Title = %q/%q", rec.Artist, rec.Title)
	}
	if rec.Key != "daft punk digital love" {
		t.Errorf("Key = %q", rec.Key)
	}
	if !rec.HasDuration || rec.Duration != 301.5 {
		t.Errorf("Duration = %v (known=%v)", rec.Duration, rec.HasDuration)
	}
	if !rec.Valid() {
		t.Error("Valid() should be true for a conventional filename")
	}
}

func TestNewTrackRecord_UnknownDuration(t *testing.T) {
	rec := NewTrackRecord("/music/BadName.mp3", 42, false)

	if rec.HasDuration || rec.Duration != 0 {
		t.Errorf("duration should be absent, got %v (known=%v)", rec.Duration, rec.HasDuration)
	}
	if rec.Valid() {
		t.Error("Valid() should be false without an artist/title separator")
	}
	if rec.Key != "badname" {
		t.Errorf("Key = %q, want %q", rec.Key, "badname")
	}
}

func TestOutcome_String(t *testing.T) {
	for _, o := range Outcomes {
		if o.String() == "UNKNOWN" {
			t.Errorf("outcome %d has no name", int(o))
		}
		if o.Label() == "Unknown" {
			t.Errorf("outcome %s has no label", o)
		}
	}
	if Outcome(99).String() != "UNKNOWN" {
		t.Error("out of range outcome should be UNKNOWN")
	}
}

func TestOutcome_Changed(t *testing.T) {
	changed := map[Outcome]bool{
		OutcomeResized:  true,
		OutcomeReplaced: true,
		OutcomeAdded:    true,
	}
	for _, o := range Outcomes {
		if got := o.Changed(); got != changed[o] {
			t.Errorf("%s.Changed() = %v, want %v", o, got, changed[o])
		}
	}
}
