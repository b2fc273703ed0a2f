package builder

import (
	"fmt"

	"ytdlproxy/internal/domain/command"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/models"
)

// DownloadArgs builds the arguments to download sourceURL to outPath in the given format.
//
// yt-dlp prints the final file path after post-processing, which may differ from
// outPath if it had to change the extension.
func DownloadArgs(o Options, sourceURL, outPath string, f models.Format) []string {
	args := []string{
		command.Output, outPath,
		command.NoPlaylist,
		command.NoWarnings,
		command.NoProgress,
		command.Print, command.AfterMove,
	}
	args = append(args, o.cookieArgs()...)

	switch f {
	case models.FormatAudio:
		audioQuality := o.AudioQuality
		if audioQuality == "" {
			audioQuality = consts.DefaultAudioQuality
		}
		args = append(args,
			command.ExtractAudio,
			command.AudioFormat, consts.ExtMP3,
			command.AudioQuality, audioQuality,
		)
	default:
		args = append(args,
			command.Format, VideoSelector(o.MaxHeight),
			command.MergeOutputFormat, consts.ExtMP4,
		)
	}

	return append(args, command.EndOfOptions, sourceURL)
}

// VideoSelector returns the yt-dlp format selector capped at maxHeight.
func VideoSelector(maxHeight int) string {
	if maxHeight <= 0 {
		maxHeight = consts.DefaultMaxHeight
	}
	return fmt.Sprintf(command.VideoSelectorTemplate, maxHeight)
}
