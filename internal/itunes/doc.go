// Package itunes looks up cover art through the iTunes Search API.
//
// The Client searches for songs by "artist title", scores each result
// against the requested artist and title with Jaro-Winkler similarity
// (github.com/hbollon/go-edlib), and downloads the winner's artwork at the
// configured size:
//
//	client := itunes.NewClient(httpClient, itunes.Options{ArtworkSize: 600})
//	art, err := client.Search(ctx, artist, title)
//
// The dto subpackage holds the JSON shapes of the search response.
package itunes
