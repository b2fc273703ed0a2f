package builder

import (
	"ytdlproxy/internal/domain/command"
)

// MetaArgs builds the arguments for a single-item JSON metadata dump.
func MetaArgs(o Options, sourceURL string) []string {
	args := []string{command.DumpJSON, command.NoPlaylist, command.NoWarnings}
	args = append(args, o.cookieArgs()...)

	// Keep the URL from ever being read as an option
	return append(args, command.EndOfOptions, sourceURL)
}
