package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("DEBUG", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log, err = newLogger("", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	_, err = newLogger("chatty", io.Discard)
	assert.Error(t, err)
}

func TestEditThenPreview(t *testing.T) {
	t.Setenv("BADGERDB_PATH", t.TempDir())

	out, err := runCLI(t, "edit", "profile", "fullName", "Jane Doe")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile updated.")

	out, err = runCLI(t, "edit", "show", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")

	htmlPath := filepath.Join(t.TempDir(), "preview.html")
	_, err = runCLI(t, "preview", "--out", htmlPath, "--zoom", "120")
	require.NoError(t, err)
	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Jane Doe")
	assert.Contains(t, string(html), "120%")
}

func TestEditRejectsUnknownCommand(t *testing.T) {
	t.Setenv("BADGERDB_PATH", t.TempDir())

	_, err := runCLI(t, "edit", "frobnicate")
	assert.Error(t, err)
}
