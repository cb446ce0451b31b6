package ioutils

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b - song.mp3"))
	touch(t, filepath.Join(root, "a - song.MP3"))
	touch(t, filepath.Join(root, "sub", "c - song.mp3"))
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, ".cache", "hidden - song.mp3"))

	files, err := Discover(root, []string{"mp3"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a - song.MP3"),
		filepath.Join(root, "b - song.mp3"),
		filepath.Join(root, "sub", "c - song.mp3"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover() = %v, want %v", files, want)
	}
}

func TestDiscover_NotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.mp3")
	touch(t, file)

	if _, err := Discover(file, nil); err == nil {
		t.Error("Discover() on a file should fail")
	}
	if _, err := Discover(filepath.Join(root, "missing"), nil); err == nil {
		t.Error("Discover() on a missing path should fail")
	}
}

func TestExtensionSet(t *testing.T) {
	tests := []struct {
		path string
		exts []string
		want bool
	}{
		{"song.mp3", nil, true},
		{"song.MP3", nil, true},
		{"song.flac", nil, false},
		{"song.flac", []string{".mp3", "flac"}, true},
		{"song", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := extensionSet(tt.exts)[strings.ToLower(filepath.Ext(tt.path))]
			if got != tt.want {
				t.Errorf("extensionSet(%v) contains ext of %q = %v, want %v", tt.exts, tt.path, got, tt.want)
			}
		})
	}
}

func TestLockLibrary(t *testing.T) {
	root := t.TempDir()

	first, err := LockLibrary(root)
	if err != nil {
		t.Fatalf("LockLibrary() error = %v", err)
	}

	if _, err := LockLibrary(root); !errors.Is(err, ErrLibraryLocked) {
		t.Errorf("second LockLibrary() error = %v, want ErrLibraryLocked", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, LockFileName)); !os.IsNotExist(err) {
		t.Errorf("lock file should be removed, stat err = %v", err)
	}

	again, err := LockLibrary(root)
	if err != nil {
		t.Fatalf("LockLibrary() after unlock error = %v", err)
	}
	_ = again.Unlock()
}
