package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/models"
	"ytdlproxy/internal/utils/logging"
)

// respondError writes the JSON error envelope for err.
//
// Body decoding errors are reported with the generic message; everything else carries its full text.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := errconsts.StatusCode(err)

	msg := err.Error()
	if errors.Is(err, errconsts.ErrInvalidBody) {
		msg = errconsts.ErrInvalidBody.Error()
	}

	log := logging.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("Request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("Request rejected")
	}

	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", consts.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.E("Failed to encode JSON response: %v", err)
	}
}

// handleMethodNotAllowed rejects methods the endpoint does not serve.
func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", corsAllowMethods)
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "method " + r.Method + " not allowed"})
}
