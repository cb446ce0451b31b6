// Package audio provides audio file services: ID3 cover art reading and
// writing, duration measurement, and the duplicates review playlist.
//
// # ID3 Tagging
//
// Use the Tagger as the artwork engine's tag store:
//
//	tagger := audio.NewTagger()
//	cover, err := tagger.ReadCoverArt(path)
//	err = tagger.WriteCoverArt(path, jpegBytes)
//	seconds, ok := tagger.ReadDuration(path)
//
// Reads go through dhowden/tag, writes through bogem/id3v2, and durations
// are measured by decoding frame headers with hajimehoshi/go-mp3.
//
// # Duplicates Playlist
//
// Generate a playlist listing every duplicate candidate pair:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(root, summary.Duplicates)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
