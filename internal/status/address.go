// ABOUTME: Server address validation for hostnames and host:port pairs
// ABOUTME: Same accepted shape as the status API: letters, digits, dots, dashes, optional port

package status

import (
	"regexp"
	"strings"
)

const maxAddressLen = 255

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+(:[0-9]+)?$`)

// ValidateAddress trims addr and checks it is a plausible server address.
// It returns the trimmed address or ErrInvalidAddress.
func ValidateAddress(addr string) (string, error) {
	clean := strings.TrimSpace(addr)
	if clean == "" || len(clean) > maxAddressLen || !addressPattern.MatchString(clean) {
		return "", ErrInvalidAddress
	}
	return clean, nil
}

// cacheKey folds case so "Hypixel.NET" and "hypixel.net" share a cache slot.
func cacheKey(addr string) string {
	return strings.ToLower(addr)
}
