package domain

import (
	"os"
	"strconv"
	"strings"
)

// Theme is the display mode preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return "", false
}

// ThemeFor maps the dark flag to a Theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// SystemTheme returns the host's color scheme preference. An explicit
// configured value wins; otherwise the terminal COLORFGBG hint is used, and
// dark is assumed when there is no signal at all.
func SystemTheme(configured string) Theme {
	if t, ok := ParseTheme(configured); ok {
		return t
	}
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			// xterm colors 0-6 and 8 are dark backgrounds
			if bg == 7 || bg >= 9 {
				return ThemeLight
			}
			return ThemeDark
		}
	}
	return ThemeDark
}
