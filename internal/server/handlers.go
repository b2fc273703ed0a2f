package server

import (
	"net/http"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/models"
	"ytdlproxy/internal/parsing"
	"ytdlproxy/internal/utils/logging"
)

// handlePost serves a download described by the JSON request body.
func (h *downloadHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	req, err := parsing.RequestFromBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.serveDownload(w, r, req)
}

// handleGet serves a download described by the URL-encoded JSON in the query string.
func (h *downloadHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	req, err := parsing.RequestFromQuery(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.serveDownload(w, r, req)
}

// serveDownload validates the source, probes it, downloads it and streams the file back.
//
// The request context bounds both yt-dlp runs, so a client that goes away stops the work.
func (h *downloadHandler) serveDownload(w http.ResponseWriter, r *http.Request, req models.DownloadRequest) {
	ctx := r.Context()
	log := logging.FromRequest(r)

	if err := h.policy.Check(req.SourceURL); err != nil {
		respondError(w, r, err)
		return
	}

	meta, err := h.extractor.Probe(ctx, req.SourceURL)
	if err != nil {
		respondError(w, r, err)
		return
	}
	log.Info().
		Str("url", req.SourceURL).
		Str("format", req.Format.String()).
		Str("title", logging.Truncate(meta.Title, consts.MaxLoggedTitle)).
		Msg("Fetched video info")

	out := parsing.NewOutputName(h.tempDir, meta.Title, req.Format, h.now(), h.suffix())
	artifact, err := h.extractor.Download(ctx, req, out)
	if err != nil {
		respondError(w, r, err)
		return
	}
	log.Info().
		Str("file", artifact.Path).
		Int64("size", artifact.SizeBytes).
		Msg("Download complete, streaming")

	streamArtifact(w, r, artifact)
}
