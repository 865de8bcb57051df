// Package editor coordinates the section managers of one resume: it hydrates
// them from the store, persists the merged document whenever a section
// changes, and owns the display mode shared by every section and the preview.
package editor

import (
	"encoding/json"
	"sort"

	"github.com/sirupsen/logrus"

	"devresume/internal/domain"
	"devresume/internal/preview"
	"devresume/internal/section"
)

// Store is the persistence the editor needs. storage.DocumentStore satisfies it.
type Store interface {
	SaveDocument(doc domain.Document) bool
	LoadDocument(def domain.Document) domain.Document
	ClearDocument() bool
	SaveTheme(t domain.Theme) bool
	LoadTheme() domain.Theme
}

// Sections groups the managers of every resume section.
type Sections struct {
	Profile    *section.Profile
	Links      *section.Links
	Skills     *section.Skills
	Experience *section.Experience
	Education  *section.Education
	Projects   *section.Projects
}

// Views returns the editing view of every section in display order.
func (s *Sections) Views() []section.View {
	return []section.View{
		s.Profile.View(),
		s.Links.View(),
		s.Skills.View(),
		s.Education.View(),
		s.Experience.View(),
		s.Projects.View(),
	}
}

func (s *Sections) setDark(dark bool) {
	s.Profile.SetDark(dark)
	s.Links.SetDark(dark)
	s.Skills.SetDark(dark)
	s.Experience.SetDark(dark)
	s.Education.SetDark(dark)
	s.Projects.SetDark(dark)
}

// snapshot is the serialized value of each section as last persisted.
type snapshot map[string]string

// Editor is the root coordinator for one resume. It is not safe for
// concurrent use; front ends serialize input events per editor.
type Editor struct {
	store    Store
	log      logrus.FieldLogger
	sections *Sections
	dark     bool
	last     snapshot
}

// New loads the theme and document from store and hydrates every section.
// Nothing is written at startup.
func New(store Store, logger logrus.FieldLogger) *Editor {
	e := &Editor{
		store: store,
		log:   logger.WithField("component", "editor"),
	}
	e.dark = store.LoadTheme() == domain.ThemeDark
	e.hydrate(store.LoadDocument(domain.DefaultDocument()))
	return e
}

func (e *Editor) hydrate(doc domain.Document) {
	e.sections = &Sections{
		Profile:    section.NewProfile(doc.Profile),
		Links:      section.NewLinks(doc.Links),
		Skills:     section.NewSkills(doc.Skills),
		Experience: section.NewExperience(doc.Experience),
		Education:  section.NewEducation(doc.Education),
		Projects:   section.NewProjects(doc.Projects),
	}
	e.sections.setDark(e.dark)
	e.last = e.capture()
	e.log.WithField("sections", len(e.last)).Debug("Sections hydrated")
}

// capture serializes the current values of each section.
func (e *Editor) capture() snapshot {
	s := e.sections
	values := map[string]any{
		"profile":    s.Profile.Values(),
		"links":      s.Links.Values(),
		"skills":     s.Skills.Values(),
		"experience": s.Experience.Values(),
		"education":  s.Education.Values(),
		"projects":   s.Projects.Values(),
	}
	out := make(snapshot, len(values))
	for name, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			// Section values are plain data; this only fires on a programming error.
			e.log.WithError(err).WithField("section", name).Error("Failed to serialize section")
			continue
		}
		out[name] = string(data)
	}
	return out
}

// Sections exposes the managers. Mutating them directly requires a Commit
// afterwards; Do does both.
func (e *Editor) Sections() *Sections {
	return e.sections
}

// Do runs one input event against the sections and commits the result. The
// commit happens even when fn fails, since fn may have changed state first.
func (e *Editor) Do(fn func(s *Sections) error) error {
	err := fn(e.sections)
	e.Commit()
	return err
}

// Commit persists the document if any section's value changed since the last
// successful save. It reports whether a save happened.
func (e *Editor) Commit() bool {
	current := e.capture()
	var changed []string
	for name, v := range current {
		if e.last[name] != v {
			changed = append(changed, name)
		}
	}
	if len(changed) == 0 {
		return false
	}
	sort.Strings(changed)

	log := e.log.WithField("changed", changed)
	if !e.store.SaveDocument(e.Document()) {
		// Keep the old snapshot so the next event retries the write.
		log.Warn("Document not persisted")
		return false
	}
	e.last = current
	log.Debug("Document persisted")
	return true
}

// Document merges the current values of every section.
func (e *Editor) Document() domain.Document {
	s := e.sections
	return domain.Document{
		Profile:    s.Profile.Values(),
		Links:      s.Links.Values(),
		Skills:     s.Skills.Values(),
		Experience: s.Experience.Values(),
		Education:  s.Education.Values(),
		Projects:   s.Projects.Values(),
	}
}

// Preview projects the current document for display.
func (e *Editor) Preview() preview.Resume {
	return preview.Project(e.Document())
}

// Dark reports the current display mode.
func (e *Editor) Dark() bool { return e.dark }

// Theme returns the current display mode as a Theme.
func (e *Editor) Theme() domain.Theme { return domain.ThemeFor(e.dark) }

// ToggleTheme flips the display mode, persists it and threads it to every
// section.
func (e *Editor) ToggleTheme() domain.Theme {
	e.dark = !e.dark
	t := e.Theme()
	if !e.store.SaveTheme(t) {
		e.log.WithField("theme", t).Warn("Theme not persisted")
	}
	e.sections.setDark(e.dark)
	return t
}

// Reset clears the stored document and starts over from defaults. Local UI
// state is discarded with the old managers.
func (e *Editor) Reset() {
	if !e.store.ClearDocument() {
		e.log.Warn("Stored document not cleared")
	}
	e.hydrate(domain.DefaultDocument())
}
