// Package regex compiles and caches various regex expressions.
package regex

import (
	"regexp"
	"sync"
)

var (
	extraSpaces     *regexp.Regexp
	unsafeChars     *regexp.Regexp
	repeatedUnders  *regexp.Regexp
	extraSpacesOnce sync.Once
	unsafeOnce      sync.Once
	underOnce       sync.Once
	artifactName    *regexp.Regexp
	artifactOnce    sync.Once
)

// ExtraSpacesCompile compiles regex for runs of whitespace.
func ExtraSpacesCompile() *regexp.Regexp {
	extraSpacesOnce.Do(func() {
		extraSpaces = regexp.MustCompile(`\s+`)
	})
	return extraSpaces
}

// UnsafeFilenameCharsCompile compiles regex for runs of characters not allowed in output filenames.
//
// Letters (any script), digits, whitespace, hyphens and underscores are kept.
func UnsafeFilenameCharsCompile() *regexp.Regexp {
	unsafeOnce.Do(func() {
		unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}\s_-]+`)
	})
	return unsafeChars
}

// RepeatedUnderscoresCompile compiles regex for runs of underscores.
func RepeatedUnderscoresCompile() *regexp.Regexp {
	underOnce.Do(func() {
		repeatedUnders = regexp.MustCompile(`_{2,}`)
	})
	return repeatedUnders
}

// ArtifactNameCompile compiles regex for on-disk download names ("<title>_<unixMillis>_<8 hex>.<ext>").
//
// Partial and intermediate files left by yt-dlp share the same stem and also match.
func ArtifactNameCompile() *regexp.Regexp {
	artifactOnce.Do(func() {
		artifactName = regexp.MustCompile(`^.+_\d{13,}_[0-9a-f]{8}\.`)
	})
	return artifactName
}
