// Package scraper exports browser cookies for yt-dlp.
package scraper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/utils/logging"
	"ytdlproxy/internal/validation"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
)

const netscapeHeader = "# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"

// ExportBrowserCookies reads valid cookies for domains from every installed browser
// and writes them to path in Netscape format.
//
// It returns the number of cookies written. No file is written when none are found.
func ExportBrowserCookies(ctx context.Context, domains []string, path string) (int, error) {
	var all []*http.Cookie
	for _, d := range domains {
		base, err := validation.BaseDomain(d)
		if err != nil {
			logging.W("Skipping cookie domain %q: %v", d, err)
			continue
		}

		kookyCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(base))
		if err != nil {
			logging.D(2, "Failed reading some browser cookies for %s: %v", base, err)
		}
		if len(kookyCookies) == 0 {
			logging.I("No browser cookies found for %s", base)
			continue
		}
		logging.I("Found %d browser cookies for %s", len(kookyCookies), base)
		all = append(all, convertToHTTPCookies(kookyCookies)...)
	}

	all = dedupeCookies(all)
	if len(all) == 0 {
		return 0, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create cookie file %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close cookie file %q: %v", path, err)
		}
	}()

	if err := WriteNetscapeCookies(f, all); err != nil {
		return 0, fmt.Errorf("failed to write cookie file %q: %w", path, err)
	}
	return len(all), nil
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, 0, len(kookyCookies))
	for _, c := range kookyCookies {
		if c == nil {
			continue
		}
		httpCookies = append(httpCookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return httpCookies
}

// dedupeCookies keeps the last cookie seen for each domain, path and name.
func dedupeCookies(cookies []*http.Cookie) []*http.Cookie {
	cookieMap := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		cookieMap[c.Domain+"|"+c.Path+"|"+c.Name] = c
	}

	merged := make([]*http.Cookie, 0, len(cookieMap))
	for _, c := range cookieMap {
		merged = append(merged, c)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Domain != merged[j].Domain {
			return merged[i].Domain < merged[j].Domain
		}
		if merged[i].Path != merged[j].Path {
			return merged[i].Path < merged[j].Path
		}
		return merged[i].Name < merged[j].Name
	})
	return merged
}

// WriteNetscapeCookies writes cookies in the Netscape cookie file format read by yt-dlp.
func WriteNetscapeCookies(w io.Writer, cookies []*http.Cookie) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(netscapeHeader); err != nil {
		return err
	}

	for _, c := range cookies {
		if c.Domain == "" || c.Name == "" {
			logging.D(2, "Skipping cookie without domain or name")
			continue
		}

		domain := c.Domain
		if c.HttpOnly {
			domain = "#HttpOnly_" + domain
		}

		includeSubdomains := "FALSE"
		if strings.HasPrefix(c.Domain, ".") {
			includeSubdomains = "TRUE"
		}

		path := c.Path
		if path == "" {
			path = "/"
		}

		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}

		expires := int64(0)
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}

		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, includeSubdomains, path, secure, expires, c.Name, c.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}
