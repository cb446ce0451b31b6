package model

import "path/filepath"

// TrackRecord represents a single audio file discovered during a run.
//
// TrackRecord contains:
//   - Path and FileName of the file on disk
//   - Key, the normalized form of FileName used for duplicate detection
//   - Artist and Title parsed from the "Artist - Title" filename convention
//   - Duration in seconds, when the audio stream could be measured
type TrackRecord struct {
	// Path is the full path of the file. Unique within a run.
	Path string

	// FileName is the base name of Path, extension included.
	FileName string

	// Key is NormalizeKey(FileName).
	Key string

	// Artist is the part of the filename before the first " - ".
	// Empty when the filename does not follow the convention.
	Artist string

	// Title is the part of the filename after the first " - ".
	// Empty when the filename does not follow the convention.
	Title string

	// Duration is the track length in seconds. Only meaningful when
	// HasDuration is true.
	Duration float64

	// HasDuration reports whether Duration could be read.
	HasDuration bool
}

// NewTrackRecord creates a TrackRecord for path.
//
// The artist, title and normalized key are derived from the base name of the
// path. Pass ok=false when the duration could not be read; duration is then
// ignored.
func NewTrackRecord(path string, duration float64, ok bool) *TrackRecord {
	name := filepath.Base(path)
	artist, title, _ := ParseFileName(name)

	rec := &TrackRecord{
		Path:     path,
		FileName: name,
		Key:      NormalizeKey(name),
		Artist:   artist,
		Title:    title,
	}
	if ok {
		rec.Duration = duration
		rec.HasDuration = true
	}
	return rec
}

// Valid reports whether both artist and title were parsed from the filename.
func (r *TrackRecord) Valid() bool {
	return r.Artist != "" && r.Title != ""
}

// Artwork is an encoded cover image together with its decoded dimensions.
type Artwork struct {
	Data   []byte
	Width  int
	Height int
}
