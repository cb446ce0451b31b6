// Package logging builds the per-run hclog logger and the run log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	ioutils "github.com/handiism/coverfix/internal/io"
)

// DefaultFileName is the run log written inside the library root.
const DefaultFileName = "album_art_log.txt"

const headerTimeFormat = "2006-01-02 15:04:05"

// Options configures New.
type Options struct {
	// Name is the logger name. Defaults to "coverfix".
	Name string

	// Level is an hclog level name; unknown values mean info.
	Level string

	// Dir is the library root that receives the log file.
	Dir string

	// FileName overrides DefaultFileName.
	FileName string

	// EnableFile appends the log to Dir/FileName.
	EnableFile bool

	// Console, when set, receives a copy of every line.
	Console io.Writer

	// RunID tags the run header. A new UUID is generated when empty.
	RunID string

	// Now stamps the run header. Defaults to time.Now.
	Now func() time.Time
}

// RunLog is the logger for one curation run plus the file it writes to.
type RunLog struct {
	Logger hclog.Logger
	RunID  string

	// Path is the log file, empty when file logging is disabled.
	Path string

	file *os.File
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// New opens the run log.
//
// When file logging is enabled the file is opened for appending and a
// "--- Run at: <timestamp> (<run id>) ---" header is written first, so
// successive runs accumulate in one file.
func New(opts Options) (*RunLog, error) {
	if opts.Name == "" {
		opts.Name = "coverfix"
	}
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if opts.RunID == "" {
		opts.RunID = NewRunID()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	rl := &RunLog{RunID: opts.RunID}

	var outputs []io.Writer
	if opts.Console != nil {
		outputs = append(outputs, opts.Console)
	}

	if opts.EnableFile {
		rl.Path = filepath.Join(opts.Dir, opts.FileName)
		f, err := ioutils.OpenAppend(rl.Path)
		if err != nil {
			return nil, fmt.Errorf("open run log: %w", err)
		}
		header := fmt.Sprintf("\n--- Run at: %s (%s) ---\n", opts.Now().Format(headerTimeFormat), opts.RunID)
		if _, err := f.WriteString(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write run log header: %w", err)
		}
		rl.file = f
		outputs = append(outputs, f)
	}

	if len(outputs) == 0 {
		rl.Logger = hclog.NewNullLogger()
		return rl, nil
	}

	rl.Logger = hclog.New(&hclog.LoggerOptions{
		Name:            opts.Name,
		Level:           ParseLevel(opts.Level),
		Output:          io.MultiWriter(outputs...),
		Color:           hclog.ColorOff,
		TimeFormat:      headerTimeFormat,
		IncludeLocation: false,
	})
	return rl, nil
}

// Close flushes and closes the log file, if any.
func (r *RunLog) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel maps a level name to an hclog level, defaulting to info.
func ParseLevel(s string) hclog.Level {
	lvl := hclog.LevelFromString(strings.TrimSpace(s))
	if lvl == hclog.NoLevel {
		return hclog.Info
	}
	return lvl
}
