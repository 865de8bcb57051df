package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeValid(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"both blank", "", "", true},
		{"start blank", "", "2020-01-01", true},
		{"end blank", "2020-01-01", "", true},
		{"ordered", "2019-05-01", "2020-01-01", true},
		{"same day", "2020-01-01", "2020-01-01", true},
		{"reversed", "2021-01-01", "2020-12-31", false},
		{"month precision", "2020-03", "2020-04", true},
		{"unparsable", "soon", "2020-01-01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRangeValid(tt.start, tt.end))
		})
	}
}

func TestEmailValid(t *testing.T) {
	assert.True(t, EmailValid("alex.rivera@dev.io"))
	assert.False(t, EmailValid("alex.rivera@dev"))
	assert.False(t, EmailValid("alex rivera@dev.io"))
	assert.False(t, EmailValid(""))
}

func TestURLValid(t *testing.T) {
	assert.True(t, URLValid("https://a.b"))
	assert.True(t, URLValid("https://github.com/alexrivera"))
	assert.True(t, URLValid("mailto:alex@dev.io"))
	assert.False(t, URLValid("not a url"))
	assert.False(t, URLValid("github.com/alexrivera"))
	assert.False(t, URLValid("https://"))
	assert.False(t, URLValid(""))
}

func TestSystemTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, SystemTheme("Light"))

	t.Setenv("COLORFGBG", "0;15")
	assert.Equal(t, ThemeLight, SystemTheme(""))

	t.Setenv("COLORFGBG", "15;0")
	assert.Equal(t, ThemeDark, SystemTheme(""))

	t.Setenv("COLORFGBG", "")
	assert.Equal(t, ThemeDark, SystemTheme("sepia"))
}
