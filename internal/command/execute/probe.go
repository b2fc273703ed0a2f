package execute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ytdlproxy/internal/command/builder"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/models"
	"ytdlproxy/internal/utils/logging"
)

// ytdlpInfo is the part of yt-dlp's info JSON ytdlproxy reads.
type ytdlpInfo struct {
	ID    any `json:"id"`
	Title any `json:"title"`
}

// Probe runs a metadata-only yt-dlp invocation for sourceURL.
func (y *YTDLP) Probe(ctx context.Context, sourceURL string) (*models.VideoMetadata, error) {
	out, err := y.run(ctx, builder.MetaArgs(y.args, sourceURL))
	if err != nil {
		switch {
		case toolUnavailable(err):
			return nil, fmt.Errorf("%w: %v", errconsts.ErrToolUnavailable, err)
		case interrupted(err):
			return nil, fmt.Errorf("%w: %w", errconsts.ErrProbeFailed, err)
		default:
			return nil, fmt.Errorf("%w: %s", errconsts.ErrProbeFailed, diagnostic(out, err))
		}
	}
	return parseMetadata(out.stdout)
}

// parseMetadata reads the first JSON object yt-dlp printed.
func parseMetadata(stdout []byte) (*models.VideoMetadata, error) {
	if len(bytes.TrimSpace(stdout)) == 0 {
		return nil, fmt.Errorf("%w: empty output", errconsts.ErrProbeParse)
	}

	var info *ytdlpInfo
	if err := json.NewDecoder(bytes.NewReader(stdout)).Decode(&info); err != nil || info == nil {
		logging.E("Failed to parse yt-dlp info output (%v), raw: %s",
			err, logging.Truncate(string(stdout), consts.MaxLoggedRawOutput))
		if err == nil {
			err = fmt.Errorf("not a JSON object")
		}
		return nil, fmt.Errorf("%w: %v", errconsts.ErrProbeParse, err)
	}

	title, _ := info.Title.(string)
	if strings.TrimSpace(title) == "" {
		logging.D(1, "No title in yt-dlp output for ID %v, using %q", info.ID, consts.FallbackTitle)
		title = consts.FallbackTitle
	}
	return &models.VideoMetadata{Title: title}, nil
}
