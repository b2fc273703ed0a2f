// Package command holds yt-dlp flags and selectors.
package command

// General
const (
	AfterMove          = "after_move:%(filepath)s"
	CookiesFromBrowser = "--cookies-from-browser"
	CookiePath         = "--cookies"
	EndOfOptions       = "--"
	NoPlaylist         = "--no-playlist"
	NoProgress         = "--no-progress"
	NoWarnings         = "--no-warnings"
	Output             = "--output"
	Print              = "--print"
	Version            = "--version"
	YTDLP              = "yt-dlp"
)

// JSON only
const (
	DumpJSON = "--dump-json"
)

// Audio
const (
	ExtractAudio = "--extract-audio"
	AudioFormat  = "--audio-format"
	AudioQuality = "--audio-quality"
)

// Video
const (
	Format            = "--format"
	MergeOutputFormat = "--merge-output-format"

	// VideoSelectorTemplate prefers mp4/m4a under the height cap, then falls back
	// to any capped stream and finally to whatever is best.
	VideoSelectorTemplate = "bestvideo[height<=%[1]d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%[1]d][ext=mp4]/best[height<=%[1]d]/best"
)
