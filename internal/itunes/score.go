package itunes

import (
	"fmt"
	"regexp"

	"github.com/hbollon/go-edlib"

	"github.com/handiism/coverfix/internal/itunes/dto"
	"github.com/handiism/coverfix/internal/model"
)

// thumbSizeRegex matches the "<w>x<h>" size segment of an artwork URL,
// e.g. ".../source/100x100bb.jpg".
var thumbSizeRegex = regexp.MustCompile(`/(\d+)x(\d+)([a-z]*)\.(jpg|jpeg|png|webp)$`)

// similarity compares two strings after key normalization, so case,
// accents and punctuation do not affect the score.
func similarity(a, b string) float64 {
	na, nb := model.NormalizeKey(a), model.NormalizeKey(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	sim, err := edlib.StringsSimilarity(na, nb, edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// score rates how well a search result matches the requested track.
// Title and artist weigh equally; the result is in [0, 1].
func score(r *dto.JSONResult, artist, title string) float64 {
	return (similarity(r.ArtistName, artist) + similarity(r.TrackName, title)) / 2
}

// bestMatch returns the index of the highest scoring result that carries
// an artwork URL, or -1. The first result wins ties, which keeps the
// API's own relevance order as the tiebreaker.
func bestMatch(results []dto.JSONResult, artist, title string) int {
	best, bestScore := -1, -1.0
	for i := range results {
		if results[i].ArtworkURL() == "" {
			continue
		}
		if s := score(&results[i], artist, title); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

// resizeArtworkURL rewrites the thumbnail size segment to size x size.
// URLs without a recognisable size segment are returned unchanged.
func resizeArtworkURL(u string, size int) string {
	if size <= 0 {
		return u
	}
	return thumbSizeRegex.ReplaceAllString(u, fmt.Sprintf("/%dx%d${3}.${4}", size, size))
}
