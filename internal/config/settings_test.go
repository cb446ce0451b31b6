package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "settings.ini"))
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.toml", "settings.yaml", "settings.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			want := DefaultSettings()
			want.TargetSize = 500
			want.Workers = 8
			want.Extensions = []string{".mp3", ".MP3"}
			want.DuplicateWindowSeconds = 1.5
			want.ProxyType = "manual"
			want.ProxyAddress = "proxy.local"
			want.ProxyPort = 3128
			want.CreateDuplicatesPlaylist = true
			want.PlaylistFormat = "pls"

			require.NoError(t, want.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 2\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, 400, s.TargetSize)
	assert.Equal(t, []string{".mp3"}, s.Extensions)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero target", func(s *Settings) { s.TargetSize = 0 }, true},
		{"quality too high", func(s *Settings) { s.JPEGQuality = 101 }, true},
		{"no extensions", func(s *Settings) { s.Extensions = nil }, true},
		{"no workers", func(s *Settings) { s.Workers = 0 }, true},
		{"negative window", func(s *Settings) { s.DuplicateWindowSeconds = -1 }, true},
		{"zero window", func(s *Settings) { s.DuplicateWindowSeconds = 0 }, false},
		{"zero timeout", func(s *Settings) { s.FetchTimeoutSeconds = 0 }, true},
		{"manual proxy without address", func(s *Settings) { s.ProxyType = "manual" }, true},
		{"unknown proxy", func(s *Settings) { s.ProxyType = "pac" }, true},
		{"wpl playlist", func(s *Settings) { s.PlaylistFormat = "wpl" }, true},
		{"bad log level", func(s *Settings) { s.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizedExtensions(t *testing.T) {
	s := DefaultSettings()
	s.Extensions = []string{"MP3", " .Mp3 ", ""}
	assert.Equal(t, []string{".mp3", ".mp3"}, s.NormalizedExtensions())
}
