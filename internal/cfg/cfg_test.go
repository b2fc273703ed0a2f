package cfg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"ytdlproxy/internal/domain/consts"
)

// Tests here use t.Setenv so they do not run in parallel.

// clearEnv blanks variables that would otherwise leak into the loaded configuration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HOST", "PORT", "RATE_LIMIT", "RATE_BURST", "ALLOWED_DOMAINS", "ALLOW_PRIVATE_SOURCES", "CONFIG_FILE",
		"YTDLP_PATH", "TEMP_DIR", "MAX_HEIGHT", "AUDIO_QUALITY", "TOOL_TIMEOUT",
		"COOKIE_FILE", "COOKIES_FROM_BROWSER", "EXPORT_BROWSER_COOKIES", "COOKIE_DOMAINS",
		"DEBUG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

// runRoot executes the root command with args and returns the configuration handed to serve.
func runRoot(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var got *Config
	rootCmd, err := NewRootCommand(func(_ context.Context, c *Config) error {
		got = c
		return nil
	})
	if err != nil {
		t.Fatalf("NewRootCommand() error: %v", err)
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}
	return got, nil
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := runRoot(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != consts.DefaultPort {
		t.Errorf("Port = %d, want %d", c.Port, consts.DefaultPort)
	}
	if c.Addr() != ":8000" {
		t.Errorf("Addr() = %q", c.Addr())
	}
	if c.YTDLPPath != "yt-dlp" {
		t.Errorf("YTDLPPath = %q", c.YTDLPPath)
	}
	if !filepath.IsAbs(c.TempDir) {
		t.Errorf("TempDir %q should be absolute", c.TempDir)
	}
	if c.MaxHeight != 720 || c.AudioQuality != "192K" {
		t.Errorf("MaxHeight = %d, AudioQuality = %q", c.MaxHeight, c.AudioQuality)
	}
	if c.ToolTimeout != consts.DefaultToolTimeout {
		t.Errorf("ToolTimeout = %v", c.ToolTimeout)
	}
	if len(c.AllowedDomains) != 0 || c.AllowPrivateSources {
		t.Errorf("AllowedDomains = %v, AllowPrivateSources = %v", c.AllowedDomains, c.AllowPrivateSources)
	}
	if !reflect.DeepEqual(c.CookieDomains, []string{"youtube.com"}) {
		t.Errorf("CookieDomains = %v", c.CookieDomains)
	}
	if c.RateLimit != 0 || c.RateBurst != consts.DefaultRateBurst {
		t.Errorf("RateLimit = %v, RateBurst = %d", c.RateLimit, c.RateBurst)
	}
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)
	tmp := t.TempDir()

	c, err := runRoot(t,
		"--host", "127.0.0.1",
		"-p", "9000",
		"--temp-dir", tmp,
		"--max-height", "480",
		"--tool-timeout", "90s",
		"--allowed-domains", "youtube.com,youtu.be",
		"--rate-limit", "2.5",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", c.Addr())
	}
	if c.TempDir != tmp {
		t.Errorf("TempDir = %q, want %q", c.TempDir, tmp)
	}
	if c.MaxHeight != 480 || c.ToolTimeout != 90*time.Second || c.RateLimit != 2.5 {
		t.Errorf("MaxHeight = %d, ToolTimeout = %v, RateLimit = %v", c.MaxHeight, c.ToolTimeout, c.RateLimit)
	}
	if !reflect.DeepEqual(c.AllowedDomains, []string{"youtube.com", "youtu.be"}) {
		t.Errorf("AllowedDomains = %v", c.AllowedDomains)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9100")
	t.Setenv("YTDLP_PATH", "/opt/yt-dlp")
	t.Setenv("ALLOWED_DOMAINS", "youtube.com, vimeo.com")
	t.Setenv("COOKIE_FILE", "/etc/cookies.txt")

	c, err := runRoot(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 9100 || c.YTDLPPath != "/opt/yt-dlp" || c.CookieFile != "/etc/cookies.txt" {
		t.Errorf("got Port %d, YTDLPPath %q, CookieFile %q", c.Port, c.YTDLPPath, c.CookieFile)
	}
	if !reflect.DeepEqual(c.AllowedDomains, []string{"youtube.com", "vimeo.com"}) {
		t.Errorf("AllowedDomains = %v", c.AllowedDomains)
	}

	// Flags win over the environment
	c, err = runRoot(t, "--port", "9101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 9101 {
		t.Errorf("Port = %d, want flag value 9101", c.Port)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ytdlproxy.toml")
	content := `port = 9200
max-height = 1080
audio-quality = "320K"
allowed-domains = ["youtube.com"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := runRoot(t, "--config-file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 9200 || c.MaxHeight != 1080 || c.AudioQuality != "320K" {
		t.Errorf("got Port %d, MaxHeight %d, AudioQuality %q", c.Port, c.MaxHeight, c.AudioQuality)
	}
	if !reflect.DeepEqual(c.AllowedDomains, []string{"youtube.com"}) {
		t.Errorf("AllowedDomains = %v", c.AllowedDomains)
	}

	c, err = runRoot(t, "--config-file", path, "--max-height", "360")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxHeight != 360 || c.Port != 9200 {
		t.Errorf("flag should override file: MaxHeight %d, Port %d", c.MaxHeight, c.Port)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"port zero", []string{"--port", "0"}, "port"},
		{"port too high", []string{"--port", "70000"}, "port"},
		{"negative height", []string{"--max-height", "-1"}, "max-height"},
		{"empty tool path", []string{"--ytdlp-path", " "}, "ytdlp-path"},
		{"zero timeout", []string{"--tool-timeout", "0s"}, "tool-timeout"},
		{"negative rate", []string{"--rate-limit", "-1"}, "rate-limit"},
		{"zero burst", []string{"--rate-limit", "1", "--rate-burst", "0"}, "rate-burst"},
		{"debug level", []string{"--debug-level", "9"}, "debug-level"},
		{"export without domains", []string{"--export-browser-cookies", "--cookie-domains", ""}, "cookie domain"},
		{"missing config", []string{"--config-file", filepath.Join(dir, "nope.toml")}, "config file"},
		{"config is dir", []string{"--config-file", dir}, "directory"},
		{"positional arg", []string{"serve"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	clearEnv(t)

	rootCmd, err := NewRootCommand(func(context.Context, *Config) error {
		t.Fatal("serve should not run for the version subcommand")
		return nil
	})
	if err != nil {
		t.Fatalf("NewRootCommand() error: %v", err)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--ytdlp-path", filepath.Join(t.TempDir(), "missing-yt-dlp")})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "ytdlproxy "+consts.Version) {
		t.Errorf("output %q lacks program version", out.String())
	}
	if !strings.Contains(out.String(), "yt-dlp unavailable") {
		t.Errorf("output %q should report missing yt-dlp", out.String())
	}
}
