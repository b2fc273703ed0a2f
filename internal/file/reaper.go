// Package file handles temporary download files.
package file

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"ytdlproxy/internal/utils/logging"
)

// Remove deletes path, logging any failure other than the file already being gone.
//
// It never returns an error; callers use it for best-effort cleanup.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.E("Failed to remove temporary file %q: %v", path, err)
		return
	}
	logging.D(2, "Removed temporary file %q", path)
}

// Reaper deletes one temporary file exactly once.
type Reaper struct {
	path string
	once sync.Once
}

// NewReaper returns a Reaper for path.
func NewReaper(path string) *Reaper {
	return &Reaper{path: path}
}

// Reap deletes the file. Only the first call does any work; later calls are no-ops.
func (r *Reaper) Reap() {
	r.once.Do(func() {
		Remove(r.path)
	})
}
