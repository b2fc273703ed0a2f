package validation_test

import (
	"errors"
	"testing"

	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/validation"
)

func TestSourcePolicy_Disabled(t *testing.T) {
	t.Parallel()

	p, err := validation.NewSourcePolicy(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() {
		t.Fatalf("empty policy should be disabled")
	}
	for _, u := range []string{"https://vimeo.com/1", "not a url", "ftp://x"} {
		if err := p.Check(u); err != nil {
			t.Fatalf("disabled policy rejected %q: %v", u, err)
		}
	}

	var nilPolicy *validation.SourcePolicy
	if err := nilPolicy.Check("https://example.com"); err != nil {
		t.Fatalf("nil policy rejected input: %v", err)
	}
}

func TestSourcePolicy_Check(t *testing.T) {
	t.Parallel()

	p, err := validation.NewSourcePolicy([]string{"youtube.com", "https://youtu.be", " ", "www.soundcloud.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	allowed := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://m.youtube.com/watch?v=abc123",
		"http://youtube.com/shorts/abc",
		"https://youtu.be/abc123",
		"https://soundcloud.com/artist/track",
		"https://WWW.YOUTUBE.COM/watch?v=abc",
	}
	for _, u := range allowed {
		if err := p.Check(u); err != nil {
			t.Errorf("expected %q to pass, got %v", u, err)
		}
	}

	rejected := []string{
		"https://vimeo.com/12345",
		"https://youtube.com.evil.example/watch",
		"ftp://youtube.com/file",
		"javascript:alert(1)",
		"youtube.com/watch?v=abc",
		"https://",
	}
	for _, u := range rejected {
		if err := p.Check(u); !errors.Is(err, errconsts.ErrInvalidSource) {
			t.Errorf("expected %q to be rejected with ErrInvalidSource, got %v", u, err)
		}
	}
}

func TestBaseDomain(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"www.youtube.com":   "youtube.com",
		"music.youtube.com": "youtube.com",
		"youtu.be":          "youtu.be",
		"foo.bbc.co.uk":     "bbc.co.uk",
		"Example.COM.":      "example.com",
	}
	for in, want := range tests {
		got, err := validation.BaseDomain(in)
		if err != nil {
			t.Fatalf("BaseDomain(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("BaseDomain(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := validation.BaseDomain(""); err == nil {
		t.Fatalf("expected error for empty host")
	}
}

func TestSourcePolicy_BlockPrivateHosts(t *testing.T) {
	t.Parallel()

	p, err := validation.NewSourcePolicy(nil, validation.BlockPrivateHosts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Enabled() {
		t.Fatalf("policy blocking private hosts should be enabled")
	}

	for _, u := range []string{
		"http://localhost:8000/",
		"http://127.0.0.1/file.mp4",
		"http://10.1.2.3/video",
		"http://192.168.1.20:8080/",
		"http://[::1]/",
		"http://[fe80::1]/",
		"http://0.0.0.0/",
		"http://api.localhost/",
	} {
		if err := p.Check(u); !errors.Is(err, errconsts.ErrInvalidSource) {
			t.Errorf("expected %q to be rejected, got %v", u, err)
		}
	}

	// No domain list, so anything public passes, including non-URL inputs.
	for _, u := range []string{
		"https://vimeo.com/1",
		"https://8.8.8.8/clip",
		"ytsearch:lofi",
	} {
		if err := p.Check(u); err != nil {
			t.Errorf("expected %q to pass, got %v", u, err)
		}
	}

	withDomains, err := validation.NewSourcePolicy([]string{"youtube.com"}, validation.BlockPrivateHosts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := withDomains.Check("https://youtu.be/abc"); !errors.Is(err, errconsts.ErrInvalidSource) {
		t.Errorf("domain list should still apply, got %v", err)
	}
	if err := withDomains.Check("https://www.youtube.com/watch?v=abc"); err != nil {
		t.Errorf("allowed domain rejected: %v", err)
	}
}

func TestIsPrivateHost(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"localhost":       true,
		"LOCALHOST.":      true,
		"127.0.0.1":       true,
		"172.16.0.1":      true,
		"172.32.0.1":      false,
		"[::1]":           true,
		"::ffff:10.0.0.1": true,
		"fd00::1":         true,
		"169.254.169.254": true,
		"youtube.com":     false,
		"8.8.8.8":         false,
		"2001:4860::8888": false,
		"":                false,
	}
	for host, want := range tests {
		if got := validation.IsPrivateHost(host); got != want {
			t.Errorf("IsPrivateHost(%q) = %v, want %v", host, got, want)
		}
	}
}
