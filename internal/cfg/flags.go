package cfg

import (
	"os"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// initServerFlags initializes HTTP listener settings.
func initServerFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(keys.Host, "", "Interface to listen on (empty for all interfaces)")
	rootCmd.PersistentFlags().IntP(keys.Port, "p", consts.DefaultPort, "Port to listen on")
	rootCmd.PersistentFlags().Float64(keys.RateLimit, 0, "Requests per second accepted across all clients (0 disables limiting)")
	rootCmd.PersistentFlags().Int(keys.RateBurst, consts.DefaultRateBurst, "Burst size for the request rate limiter")
	rootCmd.PersistentFlags().StringSlice(keys.AllowedDomains, nil, "Only accept source URLs on these domains (empty accepts any URL)")
	rootCmd.PersistentFlags().Bool(keys.AllowPrivateSources, false, "Accept source URLs pointing at localhost or private network addresses")
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Read settings from this file (any format Viper supports)")
}

// initToolFlags initializes yt-dlp invocation settings.
func initToolFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(keys.YTDLPPath, "yt-dlp", "Path or name of the yt-dlp executable")
	rootCmd.PersistentFlags().String(keys.TempDir, os.TempDir(), "Directory downloads are written to before streaming")
	rootCmd.PersistentFlags().Int(keys.MaxHeight, consts.DefaultMaxHeight, "Maximum video height requested from yt-dlp")
	rootCmd.PersistentFlags().String(keys.AudioQuality, consts.DefaultAudioQuality, "Audio bitrate for mp3 extraction")
	rootCmd.PersistentFlags().Duration(keys.ToolTimeout, consts.DefaultToolTimeout, "Upper bound on a single yt-dlp run")
}

// initCookieFlags initializes cookie sources handed to yt-dlp.
func initCookieFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(keys.CookieFile, "", "Netscape cookie file passed to yt-dlp")
	rootCmd.PersistentFlags().String(keys.CookiesFromBrowser, "", "Let yt-dlp read cookies from this browser (e.g. firefox, chrome)")
	rootCmd.PersistentFlags().Bool(keys.ExportBrowserCookies, false, "Export local browser cookies for the cookie domains into a cookie file at startup")
	rootCmd.PersistentFlags().StringSlice(keys.CookieDomains, consts.DefaultCookieDomains, "Domains whose browser cookies are exported")
}

// initLoggingFlags initializes logging settings.
func initLoggingFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().IntP(keys.DebugLevel, "d", 0, "Debug level (0-5)")
	rootCmd.PersistentFlags().String(keys.LogFile, "", "Also append JSON logs to this file")
}

// bindFlags binds every flag in fs to the Viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errOrNil error
	fs.VisitAll(func(f *pflag.Flag) {
		if errOrNil != nil {
			return
		}
		errOrNil = v.BindPFlag(f.Name, f)
	})
	return errOrNil
}
