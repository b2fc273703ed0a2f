// Package builder builds yt-dlp argument lists.
package builder

import (
	"errors"
	"io/fs"
	"os"

	"ytdlproxy/internal/domain/command"
	"ytdlproxy/internal/utils/logging"
)

// Options holds settings shared by every yt-dlp invocation.
type Options struct {
	CookieFile         string
	CookiesFromBrowser string
	MaxHeight          int
	AudioQuality       string
}

// cookieArgs returns the cookie arguments for a command.
//
// A browser cookie source wins over a cookie file. A configured cookie file that
// is missing on disk is skipped with a warning.
func (o Options) cookieArgs() []string {
	if o.CookiesFromBrowser != "" {
		return []string{command.CookiesFromBrowser, o.CookiesFromBrowser}
	}
	if o.CookieFile == "" {
		return nil
	}

	info, err := os.Stat(o.CookieFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.W("Cookie file %q does not exist, continuing without cookies", o.CookieFile)
		return nil
	case err != nil:
		logging.W("Cookie file %q is not readable (%v), continuing without cookies", o.CookieFile, err)
		return nil
	case info.IsDir():
		logging.W("Cookie file %q is a directory, continuing without cookies", o.CookieFile)
		return nil
	}
	return []string{command.CookiePath, o.CookieFile}
}
