package model

// DuplicateEntry is one side of a DuplicatePair.
type DuplicateEntry struct {
	Path     string  `json:"path"`
	Duration float64 `json:"duration"`
}

// DuplicatePair is an unordered pair of files judged likely duplicates.
// Original is the record observed first.
type DuplicatePair struct {
	Key       string         `json:"key"`
	Original  DuplicateEntry `json:"original"`
	Duplicate DuplicateEntry `json:"duplicate"`
}
