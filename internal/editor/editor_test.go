package editor

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devresume/internal/domain"
	"devresume/internal/section"
)

// fakeStore records every write instead of touching a database.
type fakeStore struct {
	doc       *domain.Document
	theme     domain.Theme
	saves     []domain.Document
	themes    []domain.Theme
	failSaves bool
	cleared   int
}

func (f *fakeStore) SaveDocument(doc domain.Document) bool {
	if f.failSaves {
		return false
	}
	f.saves = append(f.saves, doc.Clone())
	d := doc.Clone()
	f.doc = &d
	return true
}

func (f *fakeStore) LoadDocument(def domain.Document) domain.Document {
	if f.doc == nil {
		return def
	}
	return f.doc.Clone()
}

func (f *fakeStore) ClearDocument() bool {
	f.cleared++
	f.doc = nil
	return true
}

func (f *fakeStore) SaveTheme(t domain.Theme) bool {
	f.themes = append(f.themes, t)
	f.theme = t
	return true
}

func (f *fakeStore) LoadTheme() domain.Theme {
	if f.theme == "" {
		return domain.ThemeDark
	}
	return f.theme
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestEditor_HydratesFromStore(t *testing.T) {
	stored := domain.DefaultDocument()
	stored.Profile.FullName = "Jane Doe"
	stored.Education = append(stored.Education, domain.EducationEntry{ID: "d1", Institution: "MIT"})
	store := &fakeStore{doc: &stored, theme: domain.ThemeLight}

	ed := New(store, quietLogger())

	assert.Equal(t, "Jane Doe", ed.Sections().Profile.Values().FullName)
	assert.Len(t, ed.Sections().Education.Values(), 1)
	assert.False(t, ed.Dark())
	assert.Equal(t, domain.ThemeLight, ed.Sections().Skills.View().Theme)
	assert.Empty(t, store.saves, "startup must not write")
}

func TestEditor_HydratesMissingSlicesWithDefaults(t *testing.T) {
	// A document stored before skills existed decodes with an empty set.
	stored := domain.Document{Profile: domain.Profile{FullName: "Old"}}
	store := &fakeStore{doc: &stored}

	ed := New(store, quietLogger())

	assert.Equal(t, len(domain.DefaultSkillCategories), ed.Sections().Skills.Values().Len())
	assert.NotNil(t, ed.Sections().Experience.Values())
}

func TestEditor_SkillsChangePersistsOnce(t *testing.T) {
	stored := domain.DefaultDocument()
	stored.Profile.FullName = "Jane Doe"
	stored.Links.GitHub = "https://github.com/jane"
	stored.Experience = []domain.ExperienceEntry{{ID: "e1", Company: "Acme", Responsibilities: []string{}}}
	store := &fakeStore{doc: &stored}
	ed := New(store, quietLogger())
	before := ed.Document()

	err := ed.Do(func(s *Sections) error {
		s.Skills.Add("languages", "Go")
		return nil
	})
	require.NoError(t, err)

	require.Len(t, store.saves, 1)
	saved := store.saves[0]
	assert.Equal(t, before.Profile, saved.Profile)
	assert.Equal(t, before.Links, saved.Links)
	assert.Equal(t, before.Experience, saved.Experience)
	assert.Equal(t, before.Education, saved.Education)
	langs, _ := saved.Skills.Get("languages")
	assert.Equal(t, []string{"Go"}, langs.Skills)
}

func TestEditor_NoChangeNoWrite(t *testing.T) {
	store := &fakeStore{}
	ed := New(store, quietLogger())

	assert.False(t, ed.Commit())

	// Rejected input leaves values untouched, so nothing is written.
	_ = ed.Do(func(s *Sections) error {
		s.Skills.Add("languages", "   ")
		s.Skills.Toggle("languages")
		return nil
	})
	assert.Empty(t, store.saves)

	// Setting a field to the value it already has is not a change either.
	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("fullName", "") }))
	assert.Empty(t, store.saves)
}

func TestEditor_EveryChangeIsPersisted(t *testing.T) {
	store := &fakeStore{}
	ed := New(store, quietLogger())

	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("fullName", "J") }))
	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("fullName", "Ja") }))

	require.Len(t, store.saves, 2)
	assert.Equal(t, "Ja", store.saves[1].Profile.FullName)
	assert.Equal(t, "Ja", store.doc.Profile.FullName)
}

func TestEditor_FailedInputStillCommitsPriorChanges(t *testing.T) {
	store := &fakeStore{}
	ed := New(store, quietLogger())

	err := ed.Do(func(s *Sections) error {
		e := s.Experience.Add()
		return s.Experience.Update(e.ID, "salary", "1")
	})
	assert.ErrorIs(t, err, section.ErrUnknownField)
	require.Len(t, store.saves, 1)
	assert.Len(t, store.saves[0].Experience, 1)
}

func TestEditor_FailedSaveIsRetried(t *testing.T) {
	store := &fakeStore{failSaves: true}
	ed := New(store, quietLogger())

	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("phone", "555") }))
	assert.Empty(t, store.saves)

	store.failSaves = false
	assert.True(t, ed.Commit())
	require.Len(t, store.saves, 1)
	assert.Equal(t, "555", store.saves[0].Profile.Phone)
}

func TestEditor_ToggleTheme(t *testing.T) {
	store := &fakeStore{}
	ed := New(store, quietLogger())
	require.True(t, ed.Dark())

	assert.Equal(t, domain.ThemeLight, ed.ToggleTheme())
	assert.Equal(t, []domain.Theme{domain.ThemeLight}, store.themes)
	for _, v := range ed.Sections().Views() {
		assert.Equal(t, domain.ThemeLight, v.Theme, v.Section)
	}
	assert.Empty(t, store.saves, "theme is stored separately from the document")
}

func TestEditor_Reset(t *testing.T) {
	store := &fakeStore{}
	ed := New(store, quietLogger())
	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("fullName", "Jane") }))

	ed.Reset()
	assert.Equal(t, 1, store.cleared)
	assert.Empty(t, ed.Document().Profile.FullName)
	assert.False(t, ed.Commit())
}

func TestEditor_PreviewUsesPlaceholderWhenEmpty(t *testing.T) {
	ed := New(&fakeStore{}, quietLogger())
	assert.True(t, ed.Preview().Placeholder)

	require.NoError(t, ed.Do(func(s *Sections) error { return s.Profile.Set("fullName", "Jane Doe") }))
	p := ed.Preview()
	assert.False(t, p.Placeholder)
	assert.Equal(t, "Jane Doe", p.Name)
}
