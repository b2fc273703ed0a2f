// Package server sets up the ytdlproxy HTTP server.
package server

import (
	"net/http"
	"strings"
	"time"

	"ytdlproxy/internal/cfg"
	"ytdlproxy/internal/command/execute"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// downloadHandler runs the download pipeline for one request at a time.
//
// It holds no per-request state; every field is fixed at construction.
type downloadHandler struct {
	tempDir   string
	extractor execute.Extractor
	policy    *validation.SourcePolicy
	now       func() time.Time
	suffix    func() string
}

// NewRouter returns a http Handler.
func NewRouter(c *cfg.Config, ex execute.Extractor, policy *validation.SourcePolicy) http.Handler {
	h := &downloadHandler{
		tempDir:   c.TempDir,
		extractor: ex,
		policy:    policy,
		now:       time.Now,
		suffix:    uniqueSuffix,
	}

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	if c.RateLimit > 0 {
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(c.RateLimit), c.RateBurst)))
	}

	r.MethodNotAllowed(handleMethodNotAllowed)

	// The endpoint answers on any path
	for _, pattern := range []string{"/", "/*"} {
		r.Post(pattern, h.handlePost)
		r.Get(pattern, h.handleGet)
	}

	return r
}

// uniqueSuffix returns a short random token for on-disk file names.
func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:consts.UniqueSuffixChars]
}
