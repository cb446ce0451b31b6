package curate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/coverfix/internal/artwork"
	"github.com/handiism/coverfix/internal/audio"
	"github.com/handiism/coverfix/internal/config"
	"github.com/handiism/coverfix/internal/duplicate"
	"github.com/handiism/coverfix/internal/http"
	ioutils "github.com/handiism/coverfix/internal/io"
	"github.com/handiism/coverfix/internal/itunes"
	"github.com/handiism/coverfix/internal/model"
)

// ErrNotInitialized is returned by Run and Inspect before Initialize.
var ErrNotInitialized = errors.New("runner not initialized")

// TrackStore is the tag store used by the runner: cover art access plus
// duration measurement for duplicate detection.
type TrackStore interface {
	artwork.TagStore
	ReadDuration(path string) (float64, bool)
}

// TextTagReader is implemented by stores that can also read the text tags
// shown by Inspect.
type TextTagReader interface {
	ReadArtist(path string) (string, error)
	ReadTitle(path string) (string, error)
}

// Option customises a Runner.
type Option func(*Runner)

// WithTagStore replaces the ID3 tagger.
func WithTagStore(store TrackStore) Option {
	return func(r *Runner) { r.store = store }
}

// WithProvider replaces the iTunes artwork provider.
func WithProvider(p artwork.Provider) Option {
	return func(r *Runner) { r.provider = p }
}

// WithLogger sets the run logger.
func WithLogger(l hclog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithRunID tags the summary with an existing run identifier.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// WithClock overrides time.Now for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// Runner coordinates a curation pass over one library folder.
type Runner struct {
	settings *config.Settings
	store    TrackStore
	provider artwork.Provider
	codec    *ioutils.ImageService
	playlist *audio.PlaylistCreator
	engine   *artwork.Engine
	logger   hclog.Logger

	root           string
	files          []string
	totalFiles     int32
	processedFiles int32

	runID      string
	now        func() time.Time
	onProgress func(ProgressEvent)
	progressMu sync.Mutex
}

// NewRunner creates a new Runner.
//
// Without options the runner reads and writes ID3 tags with audio.Tagger and
// fetches artwork from iTunes through the configured HTTP client.
func NewRunner(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) (*Runner, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	format, err := audio.ParsePlaylistFormat(settings.PlaylistFormat)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		settings:   settings,
		codec:      ioutils.NewImageService(settings.JPEGQuality),
		playlist:   audio.NewPlaylistCreator(format, settings.M3UExtended),
		onProgress: onProgress,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = hclog.NewNullLogger()
	}
	if r.store == nil {
		r.store = audio.NewTagger()
	}
	if r.provider == nil {
		client, err := http.NewClient(http.Options{
			Timeout:   settings.FetchTimeout(),
			UserAgent: settings.UserAgent,
			Proxy: http.ProxyConfig{
				Type:    settings.ProxyType,
				Address: settings.ProxyAddress,
				Port:    settings.ProxyPort,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("http client: %w", err)
		}
		r.provider = itunes.NewClient(client, itunes.Options{
			BaseURL:     settings.ProviderBaseURL,
			ArtworkSize: settings.ProviderArtworkSize,
			Limit:       settings.ProviderResultLimit,
		})
	}

	r.engine = artwork.NewEngine(r.store, r.provider, r.codec, artwork.Options{
		TargetSize:   settings.TargetSize,
		FetchTimeout: settings.FetchTimeout(),
		Logger:       r.logger.Named("artwork"),
	})
	return r, nil
}

// Initialize discovers the audio files under root.
func (r *Runner) Initialize(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	files, err := ioutils.Discover(abs, r.settings.NormalizedExtensions())
	if err != nil {
		return err
	}

	r.root = abs
	r.files = files
	atomic.StoreInt32(&r.totalFiles, int32(len(files)))
	atomic.StoreInt32(&r.processedFiles, 0)

	r.logger.Info("library scanned", "root", abs, "files", len(files))
	r.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files in %s", len(files), abs), Level: LevelInfo})
	return nil
}

// Root returns the absolute library root set by Initialize.
func (r *Runner) Root() string {
	return r.root
}

// Files returns the discovered paths in processing order.
func (r *Runner) Files() []string {
	return r.files
}

// GetProgress returns how many files have been processed out of the total.
func (r *Runner) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&r.processedFiles), atomic.LoadInt32(&r.totalFiles)
}

// Run curates every discovered file and returns the run summary.
//
// Per-file failures never stop the run. If ctx is cancelled the files
// already processed are kept, the partial summary is returned together with
// the context error, and no file is left half-written.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.root == "" {
		return nil, ErrNotInitialized
	}

	lock, err := ioutils.LockLibrary(r.root)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("release library lock", "error", err)
		}
	}()

	agg := NewAggregator(r.runID, r.root, r.now())
	clusterer := duplicate.NewClusterer(r.settings.DuplicateWindowSeconds)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.settings.Workers)

	for _, path := range r.files {
		if gctx.Err() != nil {
			break
		}
		path := path // capture
		g.Go(func() error {
			return r.processFile(gctx, path, clusterer, agg)
		})
	}

	runErr := g.Wait()
	if runErr == nil {
		runErr = ctx.Err()
	}

	summary := agg.Finalize(r.now())
	r.logger.Debug("duplicate index", "records", clusterer.Len(), "pairs", summary.DuplicateCount())

	if runErr == nil && r.settings.CreateDuplicatesPlaylist && summary.DuplicateCount() > 0 {
		r.writePlaylist(summary)
	}

	for _, line := range summary.Lines() {
		r.logger.Info(line)
	}
	r.progress(ProgressEvent{Kind: EventSummary, Message: "Run finished", Level: LevelInfo, Summary: summary})

	if runErr != nil {
		r.logger.Warn("run interrupted", "error", runErr, "processed", summary.Total)
		return summary, runErr
	}
	return summary, nil
}

// processFile feeds one file to the clusterer and the engine.
// It returns an error only when ctx is done.
func (r *Runner) processFile(ctx context.Context, path string, clusterer *duplicate.Clusterer, agg *Aggregator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	duration, ok := r.store.ReadDuration(path)
	rec := model.NewTrackRecord(path, duration, ok)

	if pair, found := clusterer.Observe(rec); found {
		agg.RecordDuplicate(pair)
		r.logger.Info("possible duplicate", "key", pair.Key, "original", pair.Original.Path, "duplicate", pair.Duplicate.Path)
		r.progress(duplicateEvent(pair))
	}

	res, err := r.engine.Decide(ctx, rec)
	if err != nil {
		return err
	}

	agg.RecordOutcome(res)
	atomic.AddInt32(&r.processedFiles, 1)

	ev := fileEvent(res)
	if res.Err != nil {
		r.logger.Info(ev.Message, "outcome", res.Outcome.String(), "error", res.Err)
	} else {
		r.logger.Info(ev.Message, "outcome", res.Outcome.String())
	}
	r.progress(ev)
	return nil
}

func (r *Runner) writePlaylist(summary *Summary) {
	format, _ := audio.ParsePlaylistFormat(r.settings.PlaylistFormat)
	path := filepath.Join(r.root, audio.PlaylistFileName+format.Extension())
	content := r.playlist.CreatePlaylist(r.root, summary.Duplicates)

	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		r.logger.Warn("write duplicates playlist", "path", path, "error", err)
		r.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	r.logger.Info("duplicates playlist written", "path", path, "pairs", summary.DuplicateCount())
	r.progress(ProgressEvent{Message: fmt.Sprintf("Created duplicates playlist: %s", path), Level: LevelSuccess})
}

// InspectRow is the read-only view of one file.
type InspectRow struct {
	Record  *model.TrackRecord
	Verdict artwork.Verdict
	Width   int
	Height  int
	Err     error

	// TagArtist and TagTitle are the ID3 text tags, when the store exposes them.
	TagArtist string
	TagTitle  string
}

// Inspect reports the artwork verdict of every discovered file without
// writing anything or contacting the provider. Rows follow Files order.
func (r *Runner) Inspect(ctx context.Context) ([]InspectRow, error) {
	if r.root == "" {
		return nil, ErrNotInitialized
	}

	rows := make([]InspectRow, len(r.files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.settings.Workers)

	for i, path := range r.files {
		i, path := i, path // capture
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			duration, ok := r.store.ReadDuration(path)
			rec := model.NewTrackRecord(path, duration, ok)
			insp := r.engine.Inspect(rec)

			row := InspectRow{Record: rec, Verdict: insp.Verdict, Err: insp.Err}
			if insp.Art != nil {
				row.Width, row.Height = insp.Art.Width, insp.Art.Height
			}
			if tags, ok := r.store.(TextTagReader); ok {
				row.TagArtist, _ = tags.ReadArtist(path)
				row.TagTitle, _ = tags.ReadTitle(path)
			}
			rows[i] = row
			atomic.AddInt32(&r.processedFiles, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress == nil {
		return
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.onProgress(event)
}
