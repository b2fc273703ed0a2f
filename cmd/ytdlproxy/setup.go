package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ytdlproxy/internal/cfg"
	"ytdlproxy/internal/command/builder"
	"ytdlproxy/internal/command/execute"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/scraper"
	"ytdlproxy/internal/utils/logging"
	"ytdlproxy/internal/validation"
)

// initializeApplication prepares the temp directory, source policy and yt-dlp runner.
func initializeApplication(ctx context.Context, c *cfg.Config) (*execute.YTDLP, *validation.SourcePolicy, error) {
	if err := os.MkdirAll(c.TempDir, consts.PermsTempDir); err != nil {
		return nil, nil, fmt.Errorf("failed to create temp dir %q: %w", c.TempDir, err)
	}

	var policyOpts []validation.PolicyOption
	if !c.AllowPrivateSources {
		policyOpts = append(policyOpts, validation.BlockPrivateHosts())
	}
	policy, err := validation.NewSourcePolicy(c.AllowedDomains, policyOpts...)
	if err != nil {
		return nil, nil, err
	}
	if len(c.AllowedDomains) > 0 {
		logging.I("Accepting sources from: %v", c.AllowedDomains)
	}

	// Missing yt-dlp is not fatal; requests report it until it is installed
	if v, err := execute.ToolVersion(ctx, c.YTDLPPath); err != nil {
		logging.W("yt-dlp check failed for %q: %v", c.YTDLPPath, err)
	} else {
		logging.I("Using yt-dlp %s (%s)", v, c.YTDLPPath)
	}

	args := builder.Options{
		CookieFile:         c.CookieFile,
		CookiesFromBrowser: c.CookiesFromBrowser,
		MaxHeight:          c.MaxHeight,
		AudioQuality:       c.AudioQuality,
	}

	if c.ExportBrowserCookies {
		args.CookieFile = exportCookies(ctx, c)
	}

	logging.I("Writing downloads to %q", c.TempDir)
	return execute.NewYTDLP(execute.Options{
		Path:    c.YTDLPPath,
		Timeout: c.ToolTimeout,
		Args:    args,
	}), policy, nil
}

// exportCookies writes browser cookies for the cookie domains into the temp directory.
//
// It returns the cookie file yt-dlp should use, falling back to the configured one.
func exportCookies(ctx context.Context, c *cfg.Config) string {
	path := filepath.Join(c.TempDir, consts.ExportCookieFile)

	n, err := scraper.ExportBrowserCookies(ctx, c.CookieDomains, path)
	switch {
	case err != nil:
		logging.W("Browser cookie export failed: %v", err)
		return c.CookieFile
	case n == 0:
		logging.W("No browser cookies found for %v", c.CookieDomains)
		return c.CookieFile
	}

	if c.CookieFile != "" {
		logging.W("Exported browser cookies replace cookie file %q", c.CookieFile)
	}
	logging.S("Exported %d browser cookies to %q", n, path)
	return path
}
