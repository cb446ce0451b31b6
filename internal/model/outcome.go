package model

// Outcome is the terminal result of curating one file.
//
// Exactly one Outcome is recorded per TrackRecord per run.
type Outcome int

const (
	// OutcomeKept means the embedded art was already canonical.
	OutcomeKept Outcome = iota

	// OutcomeResized means oversized embedded art was re-encoded in place.
	OutcomeResized

	// OutcomeReplaced means undersized art was replaced by provider art.
	OutcomeReplaced

	// OutcomeAdded means provider art was embedded into a file without art.
	OutcomeAdded

	// OutcomeDownloadFailed means the provider returned nothing usable.
	OutcomeDownloadFailed

	// OutcomeInvalidName means the filename does not follow "Artist - Title".
	OutcomeInvalidName

	// OutcomeCorrupted means the embedded art could not be decoded.
	OutcomeCorrupted

	// OutcomeWriteFailed means the tag store rejected the new cover.
	OutcomeWriteFailed
)

// Outcomes lists every Outcome in declaration order.
var Outcomes = []Outcome{
	OutcomeKept,
	OutcomeResized,
	OutcomeReplaced,
	OutcomeAdded,
	OutcomeDownloadFailed,
	OutcomeInvalidName,
	OutcomeCorrupted,
	OutcomeWriteFailed,
}

// String returns the upper-case identifier of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeKept:
		return "KEPT"
	case OutcomeResized:
		return "RESIZED"
	case OutcomeReplaced:
		return "REPLACED"
	case OutcomeAdded:
		return "ADDED"
	case OutcomeDownloadFailed:
		return "DOWNLOAD_FAILED"
	case OutcomeInvalidName:
		return "INVALID_NAME"
	case OutcomeCorrupted:
		return "CORRUPTED"
	case OutcomeWriteFailed:
		return "WRITE_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Label returns a human readable summary label.
func (o Outcome) Label() string {
	switch o {
	case OutcomeKept:
		return "Already correct size"
	case OutcomeResized:
		return "Resized (too large)"
	case OutcomeReplaced:
		return "Replaced small art"
	case OutcomeAdded:
		return "Added missing art"
	case OutcomeDownloadFailed:
		return "Downloads failed"
	case OutcomeInvalidName:
		return "Invalid names skipped"
	case OutcomeCorrupted:
		return "Corrupted images"
	case OutcomeWriteFailed:
		return "Tag writes failed"
	default:
		return "Unknown"
	}
}

// Changed reports whether the outcome implies a tag write.
func (o Outcome) Changed() bool {
	return o == OutcomeResized || o == OutcomeReplaced || o == OutcomeAdded
}

// Failed reports whether the outcome counts as a per-file failure.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeDownloadFailed, OutcomeInvalidName, OutcomeCorrupted, OutcomeWriteFailed:
		return true
	}
	return false
}
