// Package parsing turns raw caller input into pipeline values.
package parsing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/models"
)

// requestPayload is the JSON shape accepted from callers.
//
// Fields are decoded loosely so a wrongly typed format falls back to video
// and a wrongly typed url is reported as missing rather than as a bad body.
type requestPayload struct {
	URL    any `json:"url"`
	Format any `json:"format"`
}

// DecodeRequest parses a JSON payload into a DownloadRequest.
func DecodeRequest(data []byte) (models.DownloadRequest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return models.DownloadRequest{}, fmt.Errorf("%w: empty payload", errconsts.ErrInvalidBody)
	}

	var p requestPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.DownloadRequest{}, fmt.Errorf("%w: %v", errconsts.ErrInvalidBody, err)
	}

	u, _ := p.URL.(string)
	u = strings.TrimSpace(u)
	if u == "" {
		return models.DownloadRequest{}, errconsts.ErrMissingURL
	}

	f, _ := p.Format.(string)
	return models.DownloadRequest{
		SourceURL: u,
		Format:    models.ParseFormat(f),
	}, nil
}

// RequestFromBody reads and decodes a POST body.
func RequestFromBody(w http.ResponseWriter, r *http.Request) (models.DownloadRequest, error) {
	if r.Body == nil {
		return models.DownloadRequest{}, fmt.Errorf("%w: no body", errconsts.ErrInvalidBody)
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, consts.MaxRequestBodyBytes))
	if err != nil {
		return models.DownloadRequest{}, fmt.Errorf("%w: %v", errconsts.ErrInvalidBody, err)
	}
	return DecodeRequest(data)
}

// RequestFromQuery decodes the URL-encoded JSON payload carried by a GET redirect.
func RequestFromQuery(r *http.Request) (models.DownloadRequest, error) {
	raw := r.URL.Query().Get(consts.QueryPayloadParam)
	if raw == "" {
		return models.DownloadRequest{}, fmt.Errorf("%w: missing %q query parameter", errconsts.ErrInvalidBody, consts.QueryPayloadParam)
	}
	return DecodeRequest([]byte(raw))
}
