package artwork

import "github.com/handiism/coverfix/internal/model"

// DefaultTargetSize is the canonical cover edge length in pixels.
const DefaultTargetSize = 400

// Verdict classifies embedded artwork against the target size.
type Verdict int

const (
	// VerdictAbsent means the file carries no embedded artwork.
	VerdictAbsent Verdict = iota

	// VerdictUnreadable means artwork bytes exist but cannot be decoded.
	VerdictUnreadable

	// VerdictExact means the artwork is exactly target×target.
	VerdictExact

	// VerdictTooSmall means at least one dimension is below target.
	VerdictTooSmall

	// VerdictTooLarge means no dimension is below target and one exceeds it.
	VerdictTooLarge
)

// String returns the upper-case identifier of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictAbsent:
		return "ABSENT"
	case VerdictUnreadable:
		return "UNREADABLE"
	case VerdictExact:
		return "EXACT"
	case VerdictTooSmall:
		return "TOO_SMALL"
	case VerdictTooLarge:
		return "TOO_LARGE"
	default:
		return "UNKNOWN"
	}
}

// Classify applies the geometry rules to embedded artwork.
//
// art == nil means no artwork is embedded. A non-nil decodeErr means the
// bytes are present but their dimensions could not be read.
func Classify(art *model.Artwork, decodeErr error, target int) Verdict {
	if art == nil {
		return VerdictAbsent
	}
	if decodeErr != nil {
		return VerdictUnreadable
	}
	return ClassifyDimensions(art.Width, art.Height, target)
}

// ClassifyDimensions classifies readable dimensions against target.
func ClassifyDimensions(width, height, target int) Verdict {
	switch {
	case width == target && height == target:
		return VerdictExact
	case width < target || height < target:
		return VerdictTooSmall
	default:
		return VerdictTooLarge
	}
}
