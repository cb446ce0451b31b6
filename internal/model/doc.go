// Package model defines the core data structures shared by the curation
// pipeline.
//
// # TrackRecord
//
// TrackRecord describes one discovered audio file. It is built once per file
// and not modified afterwards:
//
//	rec := model.NewTrackRecord("/music/Daft Punk - Digital Love.mp3", 301.2, true)
//	fmt.Println(rec.Artist, rec.Title) // "Daft Punk" "Digital Love"
//	fmt.Println(rec.Key)               // "daft punk digital love"
//
// Files whose names do not follow the "Artist - Title" convention get an
// empty Artist and Title; Valid reports false for them.
//
// # Normalized keys
//
// NormalizeKey folds case, diacritics and punctuation so that
// "Café - Déjà Vu.mp3" and "cafe - deja vu.mp3" share the key "cafe deja vu".
//
// # Outcomes
//
// Outcome enumerates the terminal result of curating a single file
// (Kept, Resized, Replaced, Added, DownloadFailed, InvalidName, Corrupted,
// WriteFailed).
package model
