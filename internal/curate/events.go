package curate

import (
	"fmt"
	"path/filepath"

	"github.com/handiism/coverfix/internal/artwork"
	"github.com/handiism/coverfix/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// EventKind tells reporters which payload a ProgressEvent carries.
type EventKind int

const (
	// EventMessage carries only Message.
	EventMessage EventKind = iota

	// EventFile carries the Result for one curated file.
	EventFile

	// EventDuplicate carries a newly found duplicate pair.
	EventDuplicate

	// EventSummary carries the final Summary.
	EventSummary
)

// ProgressEvent represents a curation progress update.
type ProgressEvent struct {
	Kind    EventKind
	Message string
	Level   ProgressLevel

	Result  *artwork.Result
	Pair    *model.DuplicatePair
	Summary *Summary
}

// fileEvent describes the outcome of one file for reporters.
func fileEvent(res artwork.Result) ProgressEvent {
	name := filepath.Base(res.Path)
	ev := ProgressEvent{Kind: EventFile, Result: &res}

	switch res.Outcome {
	case model.OutcomeKept:
		ev.Message = fmt.Sprintf("Already correct size: %s", name)
		ev.Level = LevelVerbose
	case model.OutcomeResized:
		ev.Message = fmt.Sprintf("Resized large art: %s (%dx%d)", name, res.Width, res.Height)
		ev.Level = LevelSuccess
	case model.OutcomeReplaced:
		ev.Message = fmt.Sprintf("Replaced small art: %s (%dx%d)", name, res.Width, res.Height)
		ev.Level = LevelSuccess
	case model.OutcomeAdded:
		ev.Message = fmt.Sprintf("Added missing art: %s", name)
		ev.Level = LevelSuccess
	case model.OutcomeDownloadFailed:
		ev.Message = fmt.Sprintf("Could not download art for: %s", name)
		ev.Level = LevelError
	case model.OutcomeInvalidName:
		ev.Message = fmt.Sprintf("Skipping (invalid name): %s", name)
		ev.Level = LevelWarning
	case model.OutcomeCorrupted:
		ev.Message = fmt.Sprintf("Corrupted art in: %s", name)
		ev.Level = LevelWarning
	case model.OutcomeWriteFailed:
		ev.Message = fmt.Sprintf("Failed to embed art for %s: %v", name, res.Err)
		ev.Level = LevelError
	default:
		ev.Message = name
	}
	return ev
}

func duplicateEvent(pair model.DuplicatePair) ProgressEvent {
	return ProgressEvent{
		Kind: EventDuplicate,
		Message: fmt.Sprintf("Possible duplicate: %s (%.0fs) ~ %s (%.0fs)",
			pair.Duplicate.Path, pair.Duplicate.Duration, pair.Original.Path, pair.Original.Duration),
		Level: LevelWarning,
		Pair:  &pair,
	}
}
