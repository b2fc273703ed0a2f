package parsing

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/regex"
	"ytdlproxy/internal/models"
)

// SanitizeTitle converts a media title into a filesystem-safe base name.
//
// Runs of disallowed characters and whitespace become a single underscore, and the
// result is capped at MaxTitleRunes characters and MaxTitleBytes bytes, leaving room in
// NAME_MAX for the timestamp, suffix and yt-dlp's intermediate extensions. A title with
// nothing usable yields FallbackTitle.
func SanitizeTitle(title string) string {
	s := regex.UnsafeFilenameCharsCompile().ReplaceAllString(title, "_")
	s = regex.ExtraSpacesCompile().ReplaceAllString(s, "_")
	s = regex.RepeatedUnderscoresCompile().ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")

	if r := []rune(s); len(r) > consts.MaxTitleRunes {
		s = string(r[:consts.MaxTitleRunes])
	}
	s = strings.TrimRight(clipBytes(s, consts.MaxTitleBytes), "_-")

	if s == "" {
		return consts.FallbackTitle
	}
	return s
}

// clipBytes returns the longest prefix of s that fits in n bytes without splitting a character.
func clipBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// DownloadFilename returns the client-facing name "<title>_<unixMillis>.<ext>".
func DownloadFilename(title string, f models.Format, at time.Time) string {
	return SanitizeTitle(title) + "_" + strconv.FormatInt(at.UnixMilli(), 10) + "." + f.Ext()
}

// NewOutputName places a download under dir.
//
// The on-disk name carries uniq in addition to the timestamp so identical titles
// requested within the same millisecond do not share a path.
func NewOutputName(dir, title string, f models.Format, at time.Time, uniq string) models.OutputName {
	name := DownloadFilename(title, f, at)
	diskName := name
	if uniq != "" {
		diskName = strings.TrimSuffix(name, "."+f.Ext()) + "_" + uniq + "." + f.Ext()
	}
	return models.OutputName{
		Path:             filepath.Join(dir, diskName),
		DownloadFilename: name,
	}
}
