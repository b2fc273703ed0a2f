package parsing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/models"
)

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Test Song", "Test_Song"},
		{"  Test   Song  ", "Test_Song"},
		{"AC/DC: Back in Black (Official)", "AC_DC_Back_in_Black_Official"},
		{"Café Tacvba — Eres", "Café_Tacvba_Eres"},
		{"日本語のタイトル", "日本語のタイトル"},
		{"keep-hyphen_and_under", "keep-hyphen_and_under"},
		{"!!!???", consts.FallbackTitle},
		{"", consts.FallbackTitle},
		{"   ", consts.FallbackTitle},
		{"a//b", "a_b"},
	}

	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTitle_Truncates(t *testing.T) {
	t.Parallel()

	got := SanitizeTitle(strings.Repeat("é", 200))
	if n := utf8.RuneCountInString(got); n != consts.MaxTitleRunes {
		t.Fatalf("expected %d runes, got %d", consts.MaxTitleRunes, n)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
}

func TestSanitizeTitle_ByteBound(t *testing.T) {
	t.Parallel()

	got := SanitizeTitle(strings.Repeat("日本語", 30))
	if len(got) > consts.MaxTitleBytes {
		t.Fatalf("expected at most %d bytes, got %d", consts.MaxTitleBytes, len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a character: %q", got)
	}
	// 150 bytes of 3-byte characters
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Fatalf("expected 50 characters, got %d", n)
	}

	// Mixed widths never leave a partial character behind
	mixed := SanitizeTitle("a" + strings.Repeat("語", 60))
	if !utf8.ValidString(mixed) || len(mixed) > consts.MaxTitleBytes {
		t.Fatalf("bad mixed-width truncation: %d bytes, valid=%v", len(mixed), utf8.ValidString(mixed))
	}
}

func TestNewOutputName_FitsNameMax(t *testing.T) {
	t.Parallel()

	const nameMax = 255
	dir := t.TempDir()
	at := time.UnixMilli(1700000000000)

	for _, title := range []string{
		strings.Repeat("日本語", 30),
		strings.Repeat("한국어", 40),
		strings.Repeat("𠀀", 100),
		strings.Repeat("a", 400),
	} {
		out := NewOutputName(dir, title, models.FormatVideo, at, "abcd1234")
		base := filepath.Base(out.Path)
		if n := len(base) + len(".f137.mp4.part"); n >= nameMax {
			t.Fatalf("intermediate name for %q would be %d bytes", base, n)
		}
		if err := os.WriteFile(out.Path+".part", []byte("x"), 0o644); err != nil {
			t.Fatalf("cannot create download file: %v", err)
		}
	}
}

func TestDownloadFilename(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000123)

	if got, want := DownloadFilename("Test Song", models.FormatAudio, at), "Test_Song_1700000000123.mp3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := DownloadFilename("Test Song", models.FormatVideo, at), "Test_Song_1700000000123.mp4"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// Distinct timestamps must give distinct names
	a := DownloadFilename("Same", models.FormatVideo, at)
	b := DownloadFilename("Same", models.FormatVideo, at.Add(time.Millisecond))
	if a == b {
		t.Fatalf("expected distinct names for distinct timestamps, both %q", a)
	}

	// Deterministic
	if DownloadFilename("Same", models.FormatVideo, at) != a {
		t.Fatalf("expected deterministic output")
	}
}

func TestNewOutputName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	at := time.UnixMilli(1700000000000)

	n1 := NewOutputName(dir, "Test Song", models.FormatAudio, at, "aaaa1111")
	n2 := NewOutputName(dir, "Test Song", models.FormatAudio, at, "bbbb2222")

	if n1.DownloadFilename != "Test_Song_1700000000000.mp3" {
		t.Fatalf("unexpected download filename %q", n1.DownloadFilename)
	}
	if n1.Path == n2.Path {
		t.Fatalf("same-millisecond names collided: %q", n1.Path)
	}
	if filepath.Dir(n1.Path) != dir {
		t.Fatalf("expected path under %q, got %q", dir, n1.Path)
	}
	if want := filepath.Join(dir, "Test_Song_1700000000000_aaaa1111.mp3"); n1.Path != want {
		t.Fatalf("got %q, want %q", n1.Path, want)
	}

	plain := NewOutputName(dir, "Test Song", models.FormatVideo, at, "")
	if filepath.Base(plain.Path) != plain.DownloadFilename {
		t.Fatalf("expected on-disk name to match download name without suffix, got %q", plain.Path)
	}
}
