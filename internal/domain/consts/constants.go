// Package consts holds various global, unchanging values.
package consts

// Program
const (
	ProgramName = "ytdlproxy"
	Version     = "1.0.0"
)

// Defaults
const (
	DefaultPort         = 8000
	DefaultMaxHeight    = 720
	DefaultAudioQuality = "192K"
	DefaultRateBurst    = 10
)

// DefaultCookieDomains are read from local browsers when cookie export is enabled.
var DefaultCookieDomains = []string{"youtube.com"}

// Request payload
const (
	QueryPayloadParam   = "p"
	MaxRequestBodyBytes = 64 << 10
)

// Output naming
const (
	FallbackTitle     = "untitled"
	MaxTitleRunes     = 80
	MaxTitleBytes     = 150
	UniqueSuffixChars = 8
	ExportCookieFile  = "ytdlproxy-cookies.txt"
)

// Output extensions
const (
	ExtMP3 = "mp3"
	ExtMP4 = "mp4"
)

// Content types
const (
	ContentTypeMP3  = "audio/mpeg"
	ContentTypeMP4  = "video/mp4"
	ContentTypeJSON = "application/json"
)

// Logging truncation
const (
	MaxLoggedTitle     = 100
	MaxLoggedRawOutput = 500
	MaxDiagnosticLen   = 2000
)
