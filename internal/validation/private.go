package validation

import (
	"net/netip"
	"strings"
)

// IsPrivateHost reports whether host names the local machine or a private,
// loopback, link-local or unspecified IP address.
//
// Only "localhost" names and IP literals are recognized; other names are not resolved.
func IsPrivateHost(host string) bool {
	h := strings.TrimSuffix(strings.ToLower(strings.Trim(strings.TrimSpace(host), "[]")), ".")
	if h == "localhost" || strings.HasSuffix(h, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(h)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}
