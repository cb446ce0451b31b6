package model

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fileNameSeparator splits "Artist - Title" filenames.
const fileNameSeparator = " - "

var (
	nonKeyChars = regexp.MustCompile(`[^a-z0-9 ]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// ParseFileName extracts artist and title from a filename of the form
// "Artist - Title.ext".
//
// The name is split on the first " - " only, so "A - B - C.mp3" yields
// artist "A" and title "B - C". Both halves are trimmed; ok is false when
// the separator is missing or either half is empty.
//
// Example:
//
//	ParseFileName("Daft Punk - One More Time.mp3") // "Daft Punk", "One More Time", true
//	ParseFileName("BadName.mp3")                   // "", "", false
func ParseFileName(fileName string) (artist, title string, ok bool) {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	artist, title, found := strings.Cut(name, fileNameSeparator)
	if !found {
		return "", "", false
	}

	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)
	if artist == "" || title == "" {
		return "", "", false
	}
	return artist, title, true
}

// NormalizeKey canonicalizes a filename into a comparable key.
//
// The following transformations are applied in order:
//   - Extension → removed
//   - Accented characters → base letters (NFD decomposition, marks dropped)
//   - Upper case → lower case
//   - Anything outside [a-z0-9 ] → space
//   - Whitespace runs → single space, ends trimmed
//
// Example:
//
//	NormalizeKey("Café - Déjà Vu.mp3") // "cafe deja vu"
//	NormalizeKey("CAFE_-_deja  vu!.mp3") // "cafe deja vu"
func NormalizeKey(fileName string) string {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	name = stripDiacritics(name)
	name = strings.ToLower(name)
	name = nonKeyChars.ReplaceAllString(name, " ")
	name = spaceRuns.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
