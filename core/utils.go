package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// IsAllOrEmpty reports whether a filter value means "no filter".
func IsAllOrEmpty(s string) bool {
	return s == "" || s == "all"
}

// AckID is the identifier returned by acknowledged writes that are not stored.
const AckID = 999

// NowFunc is the app clock. Tests replace it to freeze time.
var NowFunc = time.Now
