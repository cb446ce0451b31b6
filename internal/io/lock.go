package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created in the library root while a run is active.
const LockFileName = ".coverfix.lock"

// ErrLibraryLocked is returned when another run holds the library lock.
var ErrLibraryLocked = errors.New("library is locked by another run")

// LibraryLock is an exclusive advisory lock on a library root.
type LibraryLock struct {
	lock *flock.Flock
	path string
}

// LockLibrary takes a non-blocking exclusive lock on root.
//
// Returns ErrLibraryLocked if another process already holds it. Call Unlock
// when the run ends.
func LockLibrary(root string) (*LibraryLock, error) {
	path := filepath.Join(root, LockFileName)
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", root, ErrLibraryLocked)
	}
	return &LibraryLock{lock: fl, path: path}, nil
}

// Unlock releases the lock and removes the lock file.
func (l *LibraryLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock %s: %w", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", l.path, err)
	}
	return nil
}
