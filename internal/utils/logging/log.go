// Package logging provides the program logger.
//
// The helpers mirror the levels used across ytdlproxy: E (error), W (warning), I (info),
// S (success) and D (debug, gated by the configured debug level).
package logging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"ytdlproxy/internal/domain/consts"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Config holds logger settings.
type Config struct {
	LogFilePath string
	Level       int
	Console     io.Writer
}

var (
	mu     sync.RWMutex
	level  int
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}).
		With().Timestamp().Logger()
	logFile *os.File
)

// SetupLogging configures the program logger.
//
// Console output is always written; if a log file path is given, JSON lines are appended there as well.
func SetupLogging(cfg Config) error {
	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.DateTime}}

	var f *os.File
	if cfg.LogFilePath != "" {
		var err error
		f, err = os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.LogFilePath, err)
		}
		writers = append(writers, f)
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Str("program", consts.ProgramName).Logger().
		Level(zerologLevel(cfg.Level))

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	level = cfg.Level
	logger = l
	return nil
}

// Close closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// zerologLevel converts a debug level into the minimum zerolog level.
func zerologLevel(l int) zerolog.Level {
	switch {
	case l >= 3:
		return zerolog.TraceLevel
	case l >= 1:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the current program logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// FromRequest returns the program logger tagged with the request's ID.
func FromRequest(r *http.Request) *zerolog.Logger {
	l := Logger().With().Str("req_id", middleware.GetReqID(r.Context())).Logger()
	return &l
}

// E logs an error.
func E(format string, args ...any) {
	Logger().Error().Msgf(format, args...)
}

// W logs a warning.
func W(format string, args ...any) {
	Logger().Warn().Msgf(format, args...)
}

// I logs information.
func I(format string, args ...any) {
	Logger().Info().Msgf(format, args...)
}

// S logs a success message.
func S(format string, args ...any) {
	Logger().Info().Bool("success", true).Msgf(format, args...)
}

// D logs a debug message if the configured debug level is at least l.
func D(l int, format string, args ...any) {
	mu.RLock()
	enabled := l <= level
	mu.RUnlock()
	if !enabled {
		return
	}

	lg := Logger()
	if l >= 3 {
		lg.Trace().Int("debug_level", l).Msgf(format, args...)
		return
	}
	lg.Debug().Int("debug_level", l).Msgf(format, args...)
}

// Truncate shortens s to at most n bytes for log output, cutting on a character boundary.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
