// Package models holds the request-scoped values passed through the download pipeline.
package models

import (
	"strings"

	"ytdlproxy/internal/domain/consts"
)

// Format is the caller-selected output kind.
type Format int

const (
	FormatVideo Format = iota
	FormatAudio
)

// ParseFormat returns the format for a requested marker.
//
// Only the audio markers select audio; anything else, including an empty value, selects video.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case consts.ExtMP3, "audio":
		return FormatAudio
	default:
		return FormatVideo
	}
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatAudio {
		return "audio"
	}
	return "video"
}

// Ext returns the output file extension (without dot).
func (f Format) Ext() string {
	if f == FormatAudio {
		return consts.ExtMP3
	}
	return consts.ExtMP4
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatAudio {
		return consts.ContentTypeMP3
	}
	return consts.ContentTypeMP4
}

// DownloadRequest is a validated caller intent.
type DownloadRequest struct {
	SourceURL string
	Format    Format
}

// VideoMetadata is the projection of yt-dlp's info JSON used by the pipeline.
type VideoMetadata struct {
	Title string `json:"title"`
}

// OutputName is where a download is written, and the name offered to the client.
type OutputName struct {
	Path             string
	DownloadFilename string
}

// OutputArtifact is a downloaded file ready to be streamed.
type OutputArtifact struct {
	Path             string
	SizeBytes        int64
	ContentType      string
	DownloadFilename string
}

// ErrorResponse is the JSON envelope for all failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
