package domain

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateLayouts are the formats produced by date and month inputs.
var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// ParseDate parses a stored date string.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRangeValid reports whether start is on or before end. A blank bound is
// always valid; an unparsable one never is.
func DateRangeValid(start, end string) bool {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return true
	}
	s, ok := ParseDate(start)
	if !ok {
		return false
	}
	e, ok := ParseDate(end)
	if !ok {
		return false
	}
	return !s.After(e)
}

// EmailValid reports whether s looks like local@domain.tld.
func EmailValid(s string) bool {
	return emailPattern.MatchString(s)
}

// URLValid reports whether s is a well formed absolute URL.
func URLValid(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
