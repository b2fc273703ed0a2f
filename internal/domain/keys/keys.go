// Package keys holds the Viper keys and terminal flag names used by ytdlproxy.
package keys

// Server
const (
	Host        string = "host"
	Port        string = "port"
	RateLimit   string = "rate-limit"
	RateBurst   string = "rate-burst"
	ConfigFile  string = "config-file"
	ToolTimeout string = "tool-timeout"
)

// yt-dlp
const (
	YTDLPPath    string = "ytdlp-path"
	TempDir      string = "temp-dir"
	MaxHeight    string = "max-height"
	AudioQuality string = "audio-quality"
)

// Cookies
const (
	CookieFile           string = "cookie-file"
	CookiesFromBrowser   string = "cookies-from-browser"
	ExportBrowserCookies string = "export-browser-cookies"
	CookieDomains        string = "cookie-domains"
)

// Validation
const (
	AllowedDomains      string = "allowed-domains"
	AllowPrivateSources string = "allow-private-sources"
)

// Logging
const (
	DebugLevel string = "debug-level"
	LogFile    string = "log-file"
)
