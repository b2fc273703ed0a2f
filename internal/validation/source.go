// Package validation checks caller input against configured policy.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"ytdlproxy/internal/domain/errconsts"

	"golang.org/x/net/publicsuffix"
)

// SourcePolicy restricts source URLs to a set of registrable domains and,
// optionally, away from hosts on the local network.
//
// An empty policy allows every source.
type SourcePolicy struct {
	allowed      map[string]struct{}
	blockPrivate bool
}

// PolicyOption adjusts a SourcePolicy.
type PolicyOption func(*SourcePolicy)

// BlockPrivateHosts rejects sources whose host is the local machine or a private address.
func BlockPrivateHosts() PolicyOption {
	return func(p *SourcePolicy) {
		p.blockPrivate = true
	}
}

// NewSourcePolicy builds a policy from domain names or URLs.
//
// Entries are reduced to their registrable domain, so "www.youtube.com" and
// "m.youtube.com" both allow anything under youtube.com.
func NewSourcePolicy(domains []string, opts ...PolicyOption) (*SourcePolicy, error) {
	p := &SourcePolicy{allowed: make(map[string]struct{}, len(domains))}
	for _, opt := range opts {
		opt(p)
	}
	for _, d := range domains {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		host := d
		if strings.Contains(d, "://") {
			u, err := url.Parse(d)
			if err != nil {
				return nil, fmt.Errorf("invalid allowed domain %q: %w", d, err)
			}
			host = u.Hostname()
		}
		base, err := BaseDomain(host)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed domain %q: %w", d, err)
		}
		p.allowed[base] = struct{}{}
	}
	return p, nil
}

// Enabled reports whether the policy restricts anything.
func (p *SourcePolicy) Enabled() bool {
	return p != nil && (len(p.allowed) > 0 || p.blockPrivate)
}

// Check returns ErrInvalidSource if rawURL points at a blocked private host, or
// if domains are configured and rawURL is not an http(s) URL under one of them.
func (p *SourcePolicy) Check(rawURL string) error {
	if !p.Enabled() {
		return nil
	}

	u, err := url.Parse(rawURL)
	if p.blockPrivate && err == nil && IsPrivateHost(u.Hostname()) {
		return fmt.Errorf("%w: private host %q", errconsts.ErrInvalidSource, u.Hostname())
	}
	if len(p.allowed) == 0 {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %v", errconsts.ErrInvalidSource, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", errconsts.ErrInvalidSource, u.Scheme)
	}

	base, err := BaseDomain(u.Hostname())
	if err != nil {
		return fmt.Errorf("%w: %v", errconsts.ErrInvalidSource, err)
	}
	if _, ok := p.allowed[base]; !ok {
		return fmt.Errorf("%w: %s", errconsts.ErrInvalidSource, base)
	}
	return nil
}

// BaseDomain returns the registrable domain (eTLD+1) for a host name.
func BaseDomain(host string) (string, error) {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return "", fmt.Errorf("empty host")
	}
	return publicsuffix.EffectiveTLDPlusOne(host)
}
