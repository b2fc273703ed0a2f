// Package execute runs yt-dlp.
package execute

import (
	"context"
	"time"

	"ytdlproxy/internal/command/builder"
	"ytdlproxy/internal/domain/command"
	"ytdlproxy/internal/models"
)

// Extractor fetches metadata and media for a source URL.
type Extractor interface {
	// Probe returns the metadata for sourceURL without downloading media.
	Probe(ctx context.Context, sourceURL string) (*models.VideoMetadata, error)
	// Download writes the media for req to out.Path and returns the validated artifact.
	Download(ctx context.Context, req models.DownloadRequest, out models.OutputName) (*models.OutputArtifact, error)
}

// Options configures the yt-dlp runner.
type Options struct {
	Path    string
	Timeout time.Duration
	Args    builder.Options
}

// YTDLP is an Extractor backed by the yt-dlp executable.
type YTDLP struct {
	path    string
	timeout time.Duration
	args    builder.Options
}

// NewYTDLP returns a yt-dlp runner.
func NewYTDLP(o Options) *YTDLP {
	p := o.Path
	if p == "" {
		p = command.YTDLP
	}
	return &YTDLP{
		path:    p,
		timeout: o.Timeout,
		args:    o.Args,
	}
}

var _ Extractor = (*YTDLP)(nil)
