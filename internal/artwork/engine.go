package artwork

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/handiism/coverfix/internal/model"
)

// DefaultFetchTimeout bounds a single provider search.
const DefaultFetchTimeout = 5 * time.Second

// ErrEmptyArtwork is reported when the provider answers with no bytes.
var ErrEmptyArtwork = errors.New("provider returned empty artwork")

// TagStore reads and replaces the cover art embedded in an audio file.
//
// ReadCoverArt returns (nil, nil) when the file has no embedded cover.
// WriteCoverArt must either replace the cover completely or fail without
// modifying the file.
type TagStore interface {
	ReadCoverArt(path string) ([]byte, error)
	WriteCoverArt(path string, data []byte) error
}

// Provider looks up cover art by artist and title.
//
// Any error, including "no result", is treated as a failed download.
type Provider interface {
	Search(ctx context.Context, artist, title string) ([]byte, error)
}

// Codec decodes arbitrary image bytes and encodes JPEG.
type Codec interface {
	Dimensions(data []byte) (int, int, error)
	Decode(data []byte) (image.Image, error)
	Encode(img image.Image) ([]byte, error)
}

// Options configures an Engine.
type Options struct {
	// TargetSize is the canonical edge length. Defaults to DefaultTargetSize.
	TargetSize int

	// FetchTimeout bounds each provider search. Defaults to DefaultFetchTimeout.
	FetchTimeout time.Duration

	// Logger receives per-file decisions. Defaults to a null logger.
	Logger hclog.Logger
}

// Inspection is the read-only view of a file's embedded artwork.
type Inspection struct {
	Verdict Verdict
	Art     *model.Artwork
	Err     error
}

// Result is the outcome of curating one file.
type Result struct {
	Path    string
	Outcome model.Outcome
	Verdict Verdict

	// Width and Height describe the embedded art before any change.
	// Zero when the art was absent or unreadable.
	Width  int
	Height int

	// Err carries the underlying failure for DownloadFailed, Corrupted and
	// WriteFailed outcomes.
	Err error
}

// Engine decides and applies the cover art action for each file.
//
// Engine holds no per-file state; a single Engine may be shared by
// concurrent workers as long as its collaborators are safe for concurrent
// use.
type Engine struct {
	store        TagStore
	provider     Provider
	codec        Codec
	target       int
	fetchTimeout time.Duration
	logger       hclog.Logger
}

// NewEngine creates a new Engine.
func NewEngine(store TagStore, provider Provider, codec Codec, opts Options) *Engine {
	if opts.TargetSize <= 0 {
		opts.TargetSize = DefaultTargetSize
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Engine{
		store:        store,
		provider:     provider,
		codec:        codec,
		target:       opts.TargetSize,
		fetchTimeout: opts.FetchTimeout,
		logger:       opts.Logger,
	}
}

// Inspect reads the embedded artwork of rec and classifies it.
// It never writes and never contacts the provider.
func (e *Engine) Inspect(rec *model.TrackRecord) Inspection {
	data, err := e.store.ReadCoverArt(rec.Path)
	if err != nil {
		// A tag container we cannot parse is reported like undecodable art.
		return Inspection{Verdict: VerdictUnreadable, Art: &model.Artwork{}, Err: fmt.Errorf("read cover art: %w", err)}
	}
	if len(data) == 0 {
		return Inspection{Verdict: VerdictAbsent}
	}

	art := &model.Artwork{Data: data}
	w, h, err := e.codec.Dimensions(data)
	if err != nil {
		return Inspection{Verdict: Classify(art, err, e.target), Art: art, Err: err}
	}
	art.Width, art.Height = w, h
	return Inspection{Verdict: Classify(art, nil, e.target), Art: art}
}

// Decide determines the action for rec and applies it.
//
// The returned error is non-nil only when ctx is cancelled; in that case no
// tag write has been attempted for rec. Every other failure is reported
// through Result.Outcome and Result.Err.
func (e *Engine) Decide(ctx context.Context, rec *model.TrackRecord) (Result, error) {
	res := Result{Path: rec.Path}

	if !rec.Valid() {
		res.Outcome = model.OutcomeInvalidName
		e.logger.Debug("skipping file with invalid name", "path", rec.Path)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	insp := e.Inspect(rec)
	res.Verdict = insp.Verdict
	if insp.Art != nil && insp.Err == nil {
		res.Width, res.Height = insp.Art.Width, insp.Art.Height
	}

	switch insp.Verdict {
	case VerdictUnreadable:
		res.Outcome = model.OutcomeCorrupted
		res.Err = insp.Err
		return res, nil

	case VerdictExact:
		res.Outcome = model.OutcomeKept
		return res, nil

	case VerdictAbsent:
		return e.fetchAndWrite(ctx, rec, res, model.OutcomeAdded)

	case VerdictTooSmall:
		return e.fetchAndWrite(ctx, rec, res, model.OutcomeReplaced)

	default:
		return e.resizeCurrent(ctx, rec, insp.Art, res)
	}
}

// fetchAndWrite downloads provider art, normalizes it and embeds it.
func (e *Engine) fetchAndWrite(ctx context.Context, rec *model.TrackRecord, res Result, success model.Outcome) (Result, error) {
	data, err := e.fetch(ctx, rec)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}
	if err != nil {
		res.Outcome = model.OutcomeDownloadFailed
		res.Err = err
		e.logger.Info("artwork download failed", "path", rec.Path, "artist", rec.Artist, "title", rec.Title, "error", err)
		return res, nil
	}

	normalized, err := e.normalize(data)
	if err != nil {
		res.Outcome = model.OutcomeDownloadFailed
		res.Err = fmt.Errorf("provider artwork: %w", err)
		e.logger.Info("downloaded artwork is not a usable image", "path", rec.Path, "error", err)
		return res, nil
	}

	return e.write(ctx, rec, normalized, res, success)
}

// resizeCurrent re-encodes the embedded art at the canonical size.
func (e *Engine) resizeCurrent(ctx context.Context, rec *model.TrackRecord, art *model.Artwork, res Result) (Result, error) {
	normalized, err := e.normalize(art.Data)
	if err != nil {
		res.Outcome = model.OutcomeCorrupted
		res.Err = err
		return res, nil
	}
	return e.write(ctx, rec, normalized, res, model.OutcomeResized)
}

func (e *Engine) fetch(ctx context.Context, rec *model.TrackRecord) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	data, err := e.provider.Search(fetchCtx, rec.Artist, rec.Title)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyArtwork
	}
	return data, nil
}

func (e *Engine) normalize(data []byte) ([]byte, error) {
	img, err := e.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return e.codec.Encode(Fit(img, e.target))
}

func (e *Engine) write(ctx context.Context, rec *model.TrackRecord, data []byte, res Result, success model.Outcome) (Result, error) {
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := e.store.WriteCoverArt(rec.Path, data); err != nil {
		res.Outcome = model.OutcomeWriteFailed
		res.Err = fmt.Errorf("write cover art: %w", err)
		e.logger.Warn("tag write failed", "path", rec.Path, "error", err)
		return res, nil
	}
	res.Outcome = success
	e.logger.Debug("cover art written", "path", rec.Path, "outcome", success.String(), "bytes", len(data))
	return res, nil
}
