package execute

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ytdlproxy/internal/command/builder"
	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/file"
	"ytdlproxy/internal/models"
	"ytdlproxy/internal/utils/logging"
)

// Download runs yt-dlp to write req's media to out.Path and validates the result.
func (y *YTDLP) Download(ctx context.Context, req models.DownloadRequest, out models.OutputName) (*models.OutputArtifact, error) {
	res, err := y.run(ctx, builder.DownloadArgs(y.args, req.SourceURL, out.Path, req.Format))
	if err != nil {
		removePartials(out.Path)
		switch {
		case toolUnavailable(err):
			return nil, fmt.Errorf("%w: %v", errconsts.ErrToolUnavailable, err)
		case interrupted(err):
			return nil, fmt.Errorf("%w: %w", errconsts.ErrDownloadFailed, err)
		default:
			return nil, fmt.Errorf("%w: %s", errconsts.ErrDownloadFailed, diagnostic(res, err))
		}
	}

	final := finalPath(out.Path, res.stdout)
	if final != out.Path {
		logging.D(1, "yt-dlp wrote %q instead of %q", final, out.Path)
	}

	info, err := os.Stat(final)
	switch {
	case err != nil:
		removePartials(out.Path)
		return nil, fmt.Errorf("%w: %s is missing", errconsts.ErrEmptyArtifact, filepath.Base(final))
	case !info.Mode().IsRegular() || info.Size() == 0:
		logging.E("Downloaded file %q is not valid (regular: %v, size: %d)", final, info.Mode().IsRegular(), info.Size())
		file.Remove(final)
		removePartials(out.Path)
		return nil, fmt.Errorf("%w: %s", errconsts.ErrEmptyArtifact, filepath.Base(final))
	}

	return &models.OutputArtifact{
		Path:             final,
		SizeBytes:        info.Size(),
		ContentType:      req.Format.ContentType(),
		DownloadFilename: out.DownloadFilename,
	}, nil
}

// finalPath returns the path yt-dlp reported after post-processing.
//
// The reported path is only trusted if it sits in the same directory as the requested one.
func finalPath(requested string, stdout []byte) string {
	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" || !filepath.IsAbs(last) {
		return requested
	}
	last = filepath.Clean(last)
	if filepath.Dir(last) != filepath.Dir(requested) {
		logging.W("Ignoring yt-dlp output path %q outside %q", last, filepath.Dir(requested))
		return requested
	}
	return last
}

// removePartials deletes anything yt-dlp left for the output at path.
//
// Output names are unique per request, so every entry sharing the stem belongs to this download.
func removePartials(path string) {
	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	file.Remove(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.E("Could not list %q for partial file cleanup: %v", dir, err)
		return
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), stem+".") && !e.IsDir() {
			file.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
