package dto

// JSONSearchResponse is the body returned by the iTunes Search API.
type JSONSearchResponse struct {
	ResultCount int          `json:"resultCount"`
	Results     []JSONResult `json:"results"`
}

// JSONResult is one song entry of a search response.
type JSONResult struct {
	WrapperType    string `json:"wrapperType"`
	Kind           string `json:"kind"`
	ArtistName     string `json:"artistName"`
	TrackName      string `json:"trackName"`
	CollectionName string `json:"collectionName"`
	ArtworkURL100  string `json:"artworkUrl100"`
	ArtworkURL60   string `json:"artworkUrl60"`
}

// ArtworkURL returns the best thumbnail URL present in the result.
func (r *JSONResult) ArtworkURL() string {
	if r.ArtworkURL100 != "" {
		return r.ArtworkURL100
	}
	return r.ArtworkURL60
}
