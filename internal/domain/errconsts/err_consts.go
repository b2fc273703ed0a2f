// Package errconsts holds the error kinds surfaced to API callers.
package errconsts

import (
	"errors"
	"net/http"
)

// Caller input errors.
var (
	ErrInvalidBody   = errors.New("invalid body, JSON expected")
	ErrMissingURL    = errors.New("url is required")
	ErrInvalidSource = errors.New("url is not from a supported source")
)

// ErrRateLimited is returned when the request limiter rejects a request.
var ErrRateLimited = errors.New("rate limit exceeded")

// Tool and environment errors.
var (
	ErrToolUnavailable = errors.New("yt-dlp is not installed or not executable")
	ErrProbeFailed     = errors.New("failed to fetch video info from yt-dlp")
	ErrProbeParse      = errors.New("unexpected video info output from yt-dlp")
	ErrDownloadFailed  = errors.New("failed to download video")
	ErrEmptyArtifact   = errors.New("downloaded file is an invalid or empty file")
	ErrStreamIO        = errors.New("could not read the downloaded file")
)

// UnknownFailure is reported when yt-dlp fails without any diagnostic output.
const UnknownFailure = "unknown yt-dlp error"

// StatusCode maps an error to the HTTP status returned to the caller.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrMissingURL),
		errors.Is(err, ErrInvalidSource):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
