package itunes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/coverfix/internal/itunes/dto"
)

// plainFetcher is a minimal Fetcher over http.DefaultClient.
type plainFetcher struct{}

func (plainFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// newTestServer serves /search with the body built by searchBody (which
// receives the server URL) and echoes every /art/ path back.
func newTestServer(t *testing.T, searchBody func(baseURL string) string) (*httptest.Server, *[]string) {
	t.Helper()
	var (
		mu        sync.Mutex
		requested []string
		srv       *httptest.Server
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.RequestURI())
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody(srv.URL)))
	})
	mux.HandleFunc("/art/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.Path)
		mu.Unlock()
		w.Write([]byte("art:" + r.URL.Path))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &requested
}

func staticBody(body string) func(string) string {
	return func(string) string { return body }
}

func TestClient_SearchPicksBestMatch(t *testing.T) {
	srv, requested := newTestServer(t, func(base string) string {
		return fmt.Sprintf(`{"resultCount":3,"results":[
			{"artistName":"Tribute Band","trackName":"Song (Cover)","artworkUrl100":"%[1]s/art/a/100x100bb.jpg"},
			{"artistName":"Artist","trackName":"Song","artworkUrl100":"%[1]s/art/b/100x100bb.jpg"},
			{"artistName":"Artist","trackName":"Song","artworkUrl100":"%[1]s/art/c/100x100bb.jpg"}
		]}`, base)
	})

	client := NewClient(plainFetcher{}, Options{BaseURL: srv.URL, ArtworkSize: 600, Limit: 3})

	data, err := client.Search(context.Background(), "Artist", "Song")
	require.NoError(t, err)
	assert.Equal(t, "art:/art/b/600x600bb.jpg", string(data))
	require.Len(t, *requested, 2)
	assert.Contains(t, (*requested)[0], "term=Artist+Song")
	assert.Contains(t, (*requested)[0], "limit=3")
}

func TestClient_SearchNoResults(t *testing.T) {
	srv, _ := newTestServer(t, staticBody(`{"resultCount":0,"results":[]}`))
	client := NewClient(plainFetcher{}, Options{BaseURL: srv.URL})

	_, err := client.Search(context.Background(), "Nobody", "Nothing")
	assert.True(t, errors.Is(err, ErrNoResults))
}

func TestClient_SearchResultsWithoutArtwork(t *testing.T) {
	srv, _ := newTestServer(t, staticBody(`{"resultCount":1,"results":[{"artistName":"Artist","trackName":"Song"}]}`))
	client := NewClient(plainFetcher{}, Options{BaseURL: srv.URL})

	_, err := client.Search(context.Background(), "Artist", "Song")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestClient_SearchMalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t, staticBody(`<html>`))
	client := NewClient(plainFetcher{}, Options{BaseURL: srv.URL})

	_, err := client.Search(context.Background(), "Artist", "Song")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
}

func TestClient_SearchURL(t *testing.T) {
	client := NewClient(plainFetcher{}, Options{BaseURL: "https://itunes.example/", Limit: 7})

	got := client.SearchURL("Sigur Rós", "Hoppípolla")

	assert.Equal(t, "https://itunes.example/search?entity=song&limit=7&media=music&term=Sigur+R%C3%B3s+Hopp%C3%ADpolla", got)
}

func TestBestMatch(t *testing.T) {
	results := []dto.JSONResult{
		{ArtistName: "Someone Else", TrackName: "Other", ArtworkURL100: "a"},
		{ArtistName: "ARTIST", TrackName: "Song!", ArtworkURL100: "b"},
		{ArtistName: "Artist", TrackName: "Song", ArtworkURL100: "c"},
	}

	// "ARTIST"/"Song!" normalizes to the same key as the query and wins the tie.
	if got := bestMatch(results, "Artist", "Song"); got != 1 {
		t.Errorf("bestMatch() = %d, want 1", got)
	}
	if got := bestMatch(nil, "Artist", "Song"); got != -1 {
		t.Errorf("bestMatch(nil) = %d, want -1", got)
	}
}

func TestResizeArtworkURL(t *testing.T) {
	tests := []struct {
		input string
		size  int
		want  string
	}{
		{"https://is1.mzstatic.com/image/thumb/x/source/100x100bb.jpg", 600, "https://is1.mzstatic.com/image/thumb/x/source/600x600bb.jpg"},
		{"https://is1.mzstatic.com/image/thumb/x/source/60x60bb.png", 400, "https://is1.mzstatic.com/image/thumb/x/source/400x400bb.png"},
		{"https://example.com/cover.jpg", 600, "https://example.com/cover.jpg"},
		{"https://example.com/100x100bb.jpg", 0, "https://example.com/100x100bb.jpg"},
	}

	for _, tt := range tests {
		if got := resizeArtworkURL(tt.input, tt.size); got != tt.want {
			t.Errorf("resizeArtworkURL(%q, %d) = %q, want %q", tt.input, tt.size, got, tt.want)
		}
	}
}
