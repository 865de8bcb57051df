package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devresume/internal/command"
	"devresume/internal/export"
	"devresume/internal/preview"
	"devresume/internal/storage"
)

type stubExporter struct {
	html string
	err  error
}

func (s *stubExporter) ExportPDF(_ context.Context, html string) ([]byte, error) {
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.4 stub"), nil
}

func setupRegistry(t *testing.T) (*Registry, storage.KV) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	kv, err := storage.NewBadgerKV(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, kv.Close()) })
	return NewRegistry(kv, nil, logger), kv
}

func TestRegistry_IsolatesNamespaces(t *testing.T) {
	reg, _ := setupRegistry(t)

	a := reg.Get("chat:1:")
	b := reg.Get("chat:2:")
	assert.Same(t, a, reg.Get("chat:1:"))
	assert.Equal(t, 2, reg.Len())

	_, err := a.ExecLine("profile fullName Alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", a.Document().Profile.FullName)
	assert.Empty(t, b.Document().Profile.FullName)
}

func TestRegistry_SessionSurvivesRestart(t *testing.T) {
	reg, kv := setupRegistry(t)
	_, err := reg.Get("chat:7:").ExecLine("skill add languages Go")
	require.NoError(t, err)

	// A fresh registry over the same database rehydrates the document.
	fresh := NewRegistry(kv, nil, logrus.New())
	doc := fresh.Get("chat:7:").Document()
	langs, ok := doc.Skills.Get("languages")
	require.True(t, ok)
	assert.Equal(t, []string{"Go"}, langs.Skills)
}

func TestSession_Zoom(t *testing.T) {
	reg, _ := setupRegistry(t)
	s := reg.Get("z:")

	reply, err := s.ExecLine("zoom in")
	require.NoError(t, err)
	assert.Equal(t, "Zoom 110%.", reply)

	_, err = s.ExecLine("zoom 500")
	require.NoError(t, err)
	assert.Equal(t, preview.MaxZoom, s.Zoom())

	_, err = s.ExecLine("zoom sideways")
	assert.ErrorIs(t, err, command.ErrUsage)

	html, err := s.HTML(preview.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "200%")
}

func TestSession_PDF(t *testing.T) {
	reg, _ := setupRegistry(t)
	s := reg.Get("p:")
	_, err := s.ExecLine(`profile fullName "Jane Doe"`)
	require.NoError(t, err)

	exp := &stubExporter{}
	pdf, err := s.PDF(context.Background(), exp)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(pdf))
	assert.Contains(t, exp.html, "Jane Doe")
	assert.Contains(t, exp.html, "data-resume-preview")
	assert.NotContains(t, exp.html, "Live Preview")

	_, err = s.PDF(context.Background(), &stubExporter{err: export.ErrPreviewNotMounted})
	assert.True(t, errors.Is(err, export.ErrPreviewNotMounted))
}
