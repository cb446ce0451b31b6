package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/coverfix/internal/itunes/dto"
)

const (
	// DefaultBaseURL is the public iTunes Search API host.
	DefaultBaseURL = "https://itunes.apple.com"

	// DefaultArtworkSize is the edge length requested from the artwork CDN.
	DefaultArtworkSize = 600

	// DefaultResultLimit is how many search results are scored.
	DefaultResultLimit = 5
)

// ErrNoResults is returned when a search yields no result with artwork.
var ErrNoResults = errors.New("no matching results")

// Fetcher performs GET requests. *http.Client from internal/http satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	ArtworkSize int
	Limit       int
}

// Client fetches cover art through the iTunes Search API.
//
// A search is a two step exchange: a JSON query for matching songs, then a
// download of the best match's artwork, rewritten to the configured size.
//
// Example usage:
//
//	httpClient, _ := http.NewClient(http.Options{})
//	client := itunes.NewClient(httpClient, itunes.Options{})
//
//	art, err := client.Search(ctx, "Daft Punk", "One More Time")
//	if errors.Is(err, itunes.ErrNoResults) {
//	    // nothing found
//	}
type Client struct {
	fetcher     Fetcher
	baseURL     string
	artworkSize int
	limit       int
}

// NewClient creates a new Client. Zero fields in opts take their defaults.
func NewClient(fetcher Fetcher, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.ArtworkSize <= 0 {
		opts.ArtworkSize = DefaultArtworkSize
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultResultLimit
	}
	return &Client{
		fetcher:     fetcher,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		artworkSize: opts.ArtworkSize,
		limit:       opts.Limit,
	}
}

// Search returns the artwork bytes of the song best matching artist and title.
func (c *Client) Search(ctx context.Context, artist, title string) ([]byte, error) {
	artworkURL, err := c.FindArtworkURL(ctx, artist, title)
	if err != nil {
		return nil, err
	}
	data, err := c.fetcher.Get(ctx, artworkURL)
	if err != nil {
		return nil, fmt.Errorf("download artwork: %w", err)
	}
	return data, nil
}

// FindArtworkURL runs the search query and returns the resized artwork URL
// of the best scoring result.
func (c *Client) FindArtworkURL(ctx context.Context, artist, title string) (string, error) {
	body, err := c.fetcher.Get(ctx, c.SearchURL(artist, title))
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	var resp dto.JSONSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse search JSON: %w", err)
	}

	idx := bestMatch(resp.Results, artist, title)
	if idx < 0 {
		return "", ErrNoResults
	}
	return resizeArtworkURL(resp.Results[idx].ArtworkURL(), c.artworkSize), nil
}

// SearchURL builds the search request URL for artist and title.
func (c *Client) SearchURL(artist, title string) string {
	q := url.Values{}
	q.Set("term", strings.TrimSpace(artist+" "+title))
	q.Set("media", "music")
	q.Set("entity", "song")
	q.Set("limit", strconv.Itoa(c.limit))
	return c.baseURL + "/search?" + q.Encode()
}
