package cfg

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ytdlproxy/internal/domain/keys"

	"github.com/spf13/viper"
)

// Config is the settled configuration handed to the server.
type Config struct {
	Host string
	Port int

	YTDLPPath    string
	TempDir      string
	MaxHeight    int
	AudioQuality string
	ToolTimeout  time.Duration

	CookieFile           string
	CookiesFromBrowser   string
	ExportBrowserCookies bool
	CookieDomains        []string

	AllowedDomains      []string
	AllowPrivateSources bool
	RateLimit           float64
	RateBurst           int

	DebugLevel int
	LogFile    string
}

// Load collects the configuration from flags, environment and the optional config file.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(keys.ConfigFile); path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, err
		}
	}

	c := &Config{
		Host:                 v.GetString(keys.Host),
		Port:                 v.GetInt(keys.Port),
		YTDLPPath:            strings.TrimSpace(v.GetString(keys.YTDLPPath)),
		TempDir:              v.GetString(keys.TempDir),
		MaxHeight:            v.GetInt(keys.MaxHeight),
		AudioQuality:         strings.TrimSpace(v.GetString(keys.AudioQuality)),
		ToolTimeout:          v.GetDuration(keys.ToolTimeout),
		CookieFile:           v.GetString(keys.CookieFile),
		CookiesFromBrowser:   strings.TrimSpace(v.GetString(keys.CookiesFromBrowser)),
		ExportBrowserCookies: v.GetBool(keys.ExportBrowserCookies),
		CookieDomains:        stringSlice(v, keys.CookieDomains),
		AllowedDomains:       stringSlice(v, keys.AllowedDomains),
		AllowPrivateSources:  v.GetBool(keys.AllowPrivateSources),
		RateLimit:            v.GetFloat64(keys.RateLimit),
		RateBurst:            v.GetInt(keys.RateBurst),
		DebugLevel:           v.GetInt(keys.DebugLevel),
		LogFile:              v.GetString(keys.LogFile),
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks settings and normalizes the temp directory to an absolute path.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid %s %d, must be between 1 and 65535", keys.Port, c.Port)
	}
	if c.YTDLPPath == "" {
		return fmt.Errorf("%s cannot be empty", keys.YTDLPPath)
	}
	if c.TempDir == "" {
		return fmt.Errorf("%s cannot be empty", keys.TempDir)
	}
	abs, err := filepath.Abs(c.TempDir)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", keys.TempDir, c.TempDir, err)
	}
	c.TempDir = abs

	if c.MaxHeight <= 0 {
		return fmt.Errorf("invalid %s %d, must be positive", keys.MaxHeight, c.MaxHeight)
	}
	if c.AudioQuality == "" {
		return fmt.Errorf("%s cannot be empty", keys.AudioQuality)
	}
	if c.ToolTimeout <= 0 {
		return fmt.Errorf("invalid %s %v, must be positive", keys.ToolTimeout, c.ToolTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("invalid %s %v, cannot be negative", keys.RateLimit, c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("invalid %s %d, must be at least 1 when rate limiting", keys.RateBurst, c.RateBurst)
	}
	if c.DebugLevel < 0 || c.DebugLevel > 5 {
		return fmt.Errorf("invalid %s %d, must be between 0 and 5", keys.DebugLevel, c.DebugLevel)
	}
	if c.ExportBrowserCookies && len(c.CookieDomains) == 0 {
		return errors.New(keys.ExportBrowserCookies + " requires at least one cookie domain")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
