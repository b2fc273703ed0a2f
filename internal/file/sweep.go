package file

import (
	"os"
	"path/filepath"
	"time"

	"ytdlproxy/internal/domain/regex"
	"ytdlproxy/internal/utils/logging"
)

// SweepStale removes download leftovers in dir last modified before now minus maxAge.
//
// Only files named like ytdlproxy downloads are considered. It returns the number removed.
func SweepStale(dir string, maxAge time.Duration, now time.Time) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.W("Could not scan temp dir %q for stale downloads: %v", dir, err)
		return 0
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !regex.ArtifactNameCompile().MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		Remove(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			removed++
		}
	}
	if removed > 0 {
		logging.I("Removed %d stale download(s) from %q", removed, dir)
	}
	return removed
}
