package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/coverfix/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	// INI-style format with file, title, and length info.
	FormatPLS
)

// ParsePlaylistFormat maps a config value ("m3u", "pls") to a format.
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format %q", s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistFileName is the base name of the duplicates review playlist.
const PlaylistFileName = "duplicates"

// PlaylistCreator generates a review playlist of duplicate candidates.
//
// Each pair contributes two consecutive entries, the original first and the
// suspected duplicate second, so the two recordings can be compared by
// listening to them back to back. Paths are written relative to the library
// root, with forward slashes.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(root, summary.Duplicates)
//	os.WriteFile(filepath.Join(root, "duplicates.m3u"), []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:118,Artist - Song [original]
//	// Artist - Song.mp3
//	// #EXTINF:120,Artist - Song [duplicate]
//	// sub/Artist - Song.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects M3U output.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for the given pairs.
func (p *PlaylistCreator) CreatePlaylist(root string, pairs []model.DuplicatePair) string {
	items := playlistItems(root, pairs)
	switch p.format {
	case FormatPLS:
		return p.createPLS(items)
	default:
		return p.createM3U(items)
	}
}

type playlistItem struct {
	path     string
	title    string
	duration int
}

func playlistItems(root string, pairs []model.DuplicatePair) []playlistItem {
	items := make([]playlistItem, 0, len(pairs)*2)
	for _, pair := range pairs {
		items = append(items,
			newPlaylistItem(root, pair.Original, "original"),
			newPlaylistItem(root, pair.Duplicate, "duplicate"),
		)
	}
	return items
}

func newPlaylistItem(root string, e model.DuplicateEntry, role string) playlistItem {
	rel := e.Path
	if r, err := filepath.Rel(root, e.Path); err == nil && !strings.HasPrefix(r, "..") {
		rel = r
	}
	name := strings.TrimSuffix(filepath.Base(e.Path), filepath.Ext(e.Path))
	return playlistItem{
		path:     filepath.ToSlash(rel),
		title:    fmt.Sprintf("%s [%s]", name, role),
		duration: int(e.Duration + 0.5),
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title [original]
//	Artist - Title.mp3
func (p *PlaylistCreator) createM3U(items []playlistItem) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, item := range items {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", item.duration, item.title))
		}
		sb.WriteString(item.path + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=Artist - Title.mp3
//	Title1=Artist - Title [original]
//	Length1=180
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(items []playlistItem) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, item := range items {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, item.path))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, item.title))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, item.duration))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(items)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
