package storage

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"devresume/internal/domain"
)

const (
	documentKey = "devresume_data"
	themeKey    = "devresume_theme"
	probeKey    = "__test__"
)

// DocumentStore persists one resume document and one theme preference under a
// key namespace. Every operation degrades to a default instead of failing:
// callers never see storage errors, only a false return or the fallback value.
type DocumentStore struct {
	kv          KV
	ns          string
	systemTheme func() domain.Theme
	log         logrus.FieldLogger
}

// NewDocumentStore wraps kv. Keys are prefixed with namespace so several
// documents (one per chat, say) can share a database. systemTheme supplies the
// host preference used when no theme is stored; nil means dark.
func NewDocumentStore(kv KV, namespace string, systemTheme func() domain.Theme, logger logrus.FieldLogger) *DocumentStore {
	if systemTheme == nil {
		systemTheme = func() domain.Theme { return domain.ThemeDark }
	}
	return &DocumentStore{
		kv:          kv,
		ns:          namespace,
		systemTheme: systemTheme,
		log:         logger.WithFields(logrus.Fields{"component": "document_store", "namespace": namespace}),
	}
}

func (s *DocumentStore) key(k string) string { return s.ns + k }

// Available probes the store with a write-then-delete of a sentinel key.
func (s *DocumentStore) Available() bool {
	if s.kv == nil {
		return false
	}
	k := s.key(probeKey)
	if err := s.kv.Set(k, []byte(probeKey)); err != nil {
		s.log.WithError(err).Debug("Store probe write failed")
		return false
	}
	if err := s.kv.Delete(k); err != nil {
		s.log.WithError(err).Debug("Store probe delete failed")
		return false
	}
	return true
}

// SaveDocument serializes doc and writes it. It returns false if the store is
// unavailable or the write fails.
func (s *DocumentStore) SaveDocument(doc domain.Document) bool {
	if !s.Available() {
		s.log.Warn("Store is not available, document not saved")
		return false
	}
	data, err := json.Marshal(doc)
	if err != nil {
		s.log.WithError(err).Error("Failed to marshal document")
		return false
	}
	if err := s.kv.Set(s.key(documentKey), data); err != nil {
		s.log.WithError(err).Error("Failed to save document")
		return false
	}
	s.log.WithField("bytes", len(data)).Debug("Document saved")
	return true
}

// LoadDocument returns the stored document, or def if it is absent, unreadable
// or the store is unavailable. The stored document is returned as is, without
// schema checks.
func (s *DocumentStore) LoadDocument(def domain.Document) domain.Document {
	if !s.Available() {
		return def
	}
	data, err := s.kv.Get(s.key(documentKey))
	if errors.Is(err, ErrKeyNotFound) {
		return def
	}
	if err != nil {
		s.log.WithError(err).Error("Failed to load document")
		return def
	}
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.WithError(err).Error("Stored document is malformed, using defaults")
		return def
	}
	return doc
}

// ClearDocument removes the stored document.
func (s *DocumentStore) ClearDocument() bool {
	if !s.Available() {
		return false
	}
	if err := s.kv.Delete(s.key(documentKey)); err != nil {
		s.log.WithError(err).Error("Failed to clear document")
		return false
	}
	return true
}

// SaveTheme stores the theme preference.
func (s *DocumentStore) SaveTheme(t domain.Theme) bool {
	if !s.Available() {
		return false
	}
	if err := s.kv.Set(s.key(themeKey), []byte(t)); err != nil {
		s.log.WithError(err).Error("Failed to save theme")
		return false
	}
	return true
}

// LoadTheme returns the stored theme, falling back to the host preference.
func (s *DocumentStore) LoadTheme() domain.Theme {
	if !s.Available() {
		return s.systemTheme()
	}
	data, err := s.kv.Get(s.key(themeKey))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.WithError(err).Error("Failed to load theme")
		}
		return s.systemTheme()
	}
	if t, ok := domain.ParseTheme(string(data)); ok {
		return t
	}
	return s.systemTheme()
}
