// Package session keeps one editor per document namespace for front ends that
// serve several users or requests concurrently.
package session

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"devresume/internal/command"
	"devresume/internal/domain"
	"devresume/internal/editor"
	"devresume/internal/export"
	"devresume/internal/preview"
	"devresume/internal/section"
	"devresume/internal/storage"
)

// Session is one editor plus its preview zoom. All methods serialize on the
// session mutex, so input events for a document are applied one at a time.
type Session struct {
	mu   sync.Mutex
	ed   *editor.Editor
	zoom preview.Zoom
}

// New wraps an editor in a session.
func New(ed *editor.Editor) *Session {
	return &Session{ed: ed, zoom: preview.DefaultZoom}
}

// Exec runs one command. "zoom in", "zoom out" and "zoom <percent>" adjust
// the preview; everything else goes to the command package.
func (s *Session) Exec(args []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(args) > 0 && strings.EqualFold(args[0], "zoom") {
		return s.zoomCmd(args[1:])
	}
	return command.Execute(s.ed, args)
}

// ExecLine splits line and runs it.
func (s *Session) ExecLine(line string) (string, error) {
	args, err := command.Split(line)
	if err != nil {
		return "", fmt.Errorf("%w: %v", command.ErrUsage, err)
	}
	return s.Exec(args)
}

func (s *Session) zoomCmd(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: zoom in|out|<percent>", command.ErrUsage)
	}
	switch strings.ToLower(args[0]) {
	case "in", "+":
		s.zoom = s.zoom.In()
	case "out", "-":
		s.zoom = s.zoom.Out()
	default:
		n, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
		if err != nil {
			return "", fmt.Errorf("%w: zoom in|out|<percent>", command.ErrUsage)
		}
		s.zoom = preview.Zoom(n).Clamp()
	}
	return fmt.Sprintf("Zoom %d%%.", s.zoom), nil
}

// Zoom returns the current preview zoom.
func (s *Session) Zoom() preview.Zoom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// Document returns the current document.
func (s *Session) Document() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Document()
}

// View returns the editing view of the named section.
func (s *Session) View(name string) (section.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return command.SectionView(s.ed, name)
}

// ToggleTheme flips the display mode.
func (s *Session) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.ToggleTheme()
}

// HTML renders the live preview. A zero Zoom or empty Theme in opts falls back
// to the session's own.
func (s *Session) HTML(opts preview.Options) ([]byte, error) {
	s.mu.Lock()
	r := s.ed.Preview()
	if opts.Theme == "" {
		opts.Theme = s.ed.Theme()
	}
	if opts.Zoom == 0 {
		opts.Zoom = s.zoom
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := preview.RenderHTML(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDF prints the preview with exp.
func (s *Session) PDF(ctx context.Context, exp export.Exporter) ([]byte, error) {
	html, err := s.HTML(preview.Options{Print: true})
	if err != nil {
		return nil, err
	}
	return exp.ExportPDF(ctx, string(html))
}

// Registry hands out one session per namespace, all sharing one KV store.
type Registry struct {
	kv          storage.KV
	systemTheme func() domain.Theme
	log         logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a registry over kv.
func NewRegistry(kv storage.KV, systemTheme func() domain.Theme, logger logrus.FieldLogger) *Registry {
	return &Registry{
		kv:          kv,
		systemTheme: systemTheme,
		log:         logger.WithField("component", "sessions"),
		sessions:    make(map[string]*Session),
	}
}

// Get returns the session for namespace, hydrating it from the store on first
// use.
func (r *Registry) Get(namespace string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[namespace]; ok {
		return s
	}
	store := storage.NewDocumentStore(r.kv, namespace, r.systemTheme, r.log)
	s := New(editor.New(store, r.log.WithField("namespace", namespace)))
	r.sessions[namespace] = s
	r.log.WithField("namespace", namespace).Info("Session opened")
	return s
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
