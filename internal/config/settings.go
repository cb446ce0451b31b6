package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid settings")

// Settings holds all configuration options.
type Settings struct {
	// Artwork settings
	TargetSize  int `json:"target_size" toml:"target_size" yaml:"target_size"`
	JPEGQuality int `json:"jpeg_quality" toml:"jpeg_quality" yaml:"jpeg_quality"`

	// Scan settings
	Extensions             []string `json:"extensions" toml:"extensions" yaml:"extensions"`
	Workers                int      `json:"workers" toml:"workers" yaml:"workers"`
	DuplicateWindowSeconds float64  `json:"duplicate_window_seconds" toml:"duplicate_window_seconds" yaml:"duplicate_window_seconds"`

	// Provider settings
	ProviderBaseURL     string `json:"provider_base_url" toml:"provider_base_url" yaml:"provider_base_url"`
	ProviderArtworkSize int    `json:"provider_artwork_size" toml:"provider_artwork_size" yaml:"provider_artwork_size"`
	ProviderResultLimit int    `json:"provider_result_limit" toml:"provider_result_limit" yaml:"provider_result_limit"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds" toml:"fetch_timeout_seconds" yaml:"fetch_timeout_seconds"`
	UserAgent           string `json:"user_agent" toml:"user_agent" yaml:"user_agent"`

	// Proxy settings
	ProxyType    string `json:"proxy_type" toml:"proxy_type" yaml:"proxy_type"` // none, system, manual
	ProxyAddress string `json:"proxy_address" toml:"proxy_address" yaml:"proxy_address"`
	ProxyPort    int    `json:"proxy_port" toml:"proxy_port" yaml:"proxy_port"`

	// Log settings
	EnableLogFile bool   `json:"enable_log_file" toml:"enable_log_file" yaml:"enable_log_file"`
	LogFileName   string `json:"log_file_name" toml:"log_file_name" yaml:"log_file_name"`
	LogLevel      string `json:"log_level" toml:"log_level" yaml:"log_level"`

	// Playlist settings
	CreateDuplicatesPlaylist bool   `json:"create_duplicates_playlist" toml:"create_duplicates_playlist" yaml:"create_duplicates_playlist"`
	PlaylistFormat           string `json:"playlist_format" toml:"playlist_format" yaml:"playlist_format"` // m3u, pls
	M3UExtended              bool   `json:"m3u_extended" toml:"m3u_extended" yaml:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		TargetSize:  400,
		JPEGQuality: 90,

		Extensions:             []string{".mp3"},
		Workers:                4,
		DuplicateWindowSeconds: 2,

		ProviderBaseURL:     "https://itunes.apple.com",
		ProviderArtworkSize: 600,
		ProviderResultLimit: 5,
		FetchTimeoutSeconds: 5,
		UserAgent:           "coverfix/1.0",

		ProxyType: "none",

		EnableLogFile: true,
		LogFileName:   "album_art_log.txt",
		LogLevel:      "info",

		CreateDuplicatesPlaylist: false,
		PlaylistFormat:           "m3u",
		M3UExtended:              true,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "coverfix", "config.toml")
}

type format int

const (
	formatJSON format = iota
	formatTOML
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(path))
	}
}

// Load reads settings from a JSON, TOML or YAML file, chosen by extension.
//
// Keys missing from the file keep their default values. A missing file
// yields DefaultSettings.
func Load(path string) (*Settings, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, settings)
	case formatYAML:
		err = yaml.Unmarshal(data, settings)
	default:
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings in the format implied by the file extension.
func (s *Settings) Save(path string) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(s)
	case formatYAML:
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that is out of range.
func (s *Settings) Validate() error {
	switch {
	case s.TargetSize <= 0:
		return fmt.Errorf("%w: target_size must be positive, got %d", ErrInvalid, s.TargetSize)
	case s.JPEGQuality < 1 || s.JPEGQuality > 100:
		return fmt.Errorf("%w: jpeg_quality must be 1-100, got %d", ErrInvalid, s.JPEGQuality)
	case len(s.Extensions) == 0:
		return fmt.Errorf("%w: extensions must not be empty", ErrInvalid)
	case s.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, s.Workers)
	case s.DuplicateWindowSeconds < 0:
		return fmt.Errorf("%w: duplicate_window_seconds must not be negative", ErrInvalid)
	case s.FetchTimeoutSeconds <= 0:
		return fmt.Errorf("%w: fetch_timeout_seconds must be positive, got %d", ErrInvalid, s.FetchTimeoutSeconds)
	}

	switch s.ProxyType {
	case "", "none", "system":
	case "manual":
		if s.ProxyAddress == "" {
			return fmt.Errorf("%w: proxy_address is required for a manual proxy", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown proxy_type %q", ErrInvalid, s.ProxyType)
	}

	switch strings.ToLower(s.PlaylistFormat) {
	case "", "m3u", "pls":
	default:
		return fmt.Errorf("%w: unknown playlist_format %q", ErrInvalid, s.PlaylistFormat)
	}

	switch strings.ToLower(s.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, s.LogLevel)
	}

	return nil
}

// FetchTimeout returns the provider timeout as a duration.
func (s *Settings) FetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}

// NormalizedExtensions returns the extensions lowercased with a leading dot.
func (s *Settings) NormalizedExtensions() []string {
	exts := make([]string, 0, len(s.Extensions))
	for _, e := range s.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}
