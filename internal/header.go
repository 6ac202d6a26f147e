// internal/header.go
// ------------------
// This internal package provides helper functions for pulling numeric
// values out of rate-limit response headers. The structured header carries
// one or more quoted policies with ;key=value parameters, e.g.
//
//	"default";r=42;t=30, "burst";r=0;t=5
//
// Parsing is total: malformed or missing parameters report not-found
// rather than failing.
package internal

import (
	"strconv"
	"strings"
)

// ExtractPolicyField returns the integer value of the first ";key=" parameter
// in header. When several comma-separated policies are present the first
// occurrence wins. The second return value is false if the parameter is
// absent or not an integer.
func ExtractPolicyField(header, key string) (int, bool) {
	marker := ";" + key + "="
	i := strings.Index(header, marker)
	if i < 0 {
		return 0, false
	}
	rest := header[i+len(marker):]
	if end := strings.IndexAny(rest, ";,"); end >= 0 {
		rest = rest[:end]
	}
	v, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseSeconds parses a plain integer seconds value, as carried by a
// Retry-After header. Returns false for anything that is not a whole number.
func ParseSeconds(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}
