package validation

import (
	"regexp"
	"strings"
)

// emailPattern is a pragmatic check for the copy/mailto shortcuts, not a
// full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks if an address looks deliverable.
func ValidateEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}

// NormalizeEmail lowercases and trims an address for comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCoordinates checks that a proposal's suggested position is on
// the globe.
func ValidateCoordinates(lat, lon float64) (bool, string) {
	if lat < -90 || lat > 90 {
		return false, "latitude must be between -90 and 90"
	}
	if lon < -180 || lon > 180 {
		return false, "longitude must be between -180 and 180"
	}
	return true, ""
}
