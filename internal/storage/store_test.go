package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devresume/internal/domain"
)

// brokenKV fails every operation, like a full or disabled browser store.
type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, error) { return nil, errors.New("quota exceeded") }
func (brokenKV) Set(string, []byte) error   { return errors.New("quota exceeded") }
func (brokenKV) Delete(string) error        { return errors.New("quota exceeded") }
func (brokenKV) Close() error               { return nil }

func sampleDocument() domain.Document {
	doc := domain.DefaultDocument()
	doc.Profile.FullName = "Jane Doe"
	doc.Profile.Email = "jane@doe.dev"
	doc.Links.GitHub = "https://github.com/janedoe"
	doc.Links.Custom = append(doc.Links.Custom, domain.CustomLink{ID: "l1", Label: "Blog", URL: "https://jane.dev"})
	langs, _ := doc.Skills.Get("languages")
	langs.Skills = append(langs.Skills, "Go", "SQL")
	doc.Skills.Put(langs)
	doc.Skills.Put(domain.SkillCategory{ID: "custom-1", Label: "Databases", Skills: []string{"PostgreSQL"}})
	doc.Experience = append(doc.Experience, domain.ExperienceEntry{
		ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2021-02-01",
		CurrentlyWorkHere: true, Responsibilities: []string{"Built things"},
	})
	doc.Education = append(doc.Education, domain.EducationEntry{ID: "d1", Institution: "MIT", Degree: "BSc"})
	doc.Projects = append(doc.Projects, domain.ProjectEntry{ID: "p1", Name: "devresume"})
	return doc
}

func TestDocumentStore_RoundTrip(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "test:", nil, testLogger())

	require.True(t, store.Available())

	doc := sampleDocument()
	require.True(t, store.SaveDocument(doc))

	loaded := store.LoadDocument(domain.DefaultDocument())
	assert.Equal(t, doc, loaded)
}

func TestDocumentStore_AbsentReturnsDefault(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "test:", nil, testLogger())

	def := sampleDocument()
	assert.Equal(t, def, store.LoadDocument(def))
}

func TestDocumentStore_MalformedReturnsDefault(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "test:", nil, testLogger())

	require.NoError(t, kv.Set("test:"+documentKey, []byte("{not json")))

	def := domain.DefaultDocument()
	assert.Equal(t, def, store.LoadDocument(def))
}

func TestDocumentStore_ForeignSkillsShapeReturnsDefault(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "test:", nil, testLogger())

	raw := `{"profile":{"fullName":"Jane Doe"},"skills":{"languages":["Go"]}}`
	require.NoError(t, kv.Set("test:"+documentKey, []byte(raw)))

	def := domain.DefaultDocument()
	got := store.LoadDocument(def)
	assert.Equal(t, def, got)
	assert.Empty(t, got.Profile.FullName)
}

func TestDocumentStore_NamespacesAreIsolated(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	a := NewDocumentStore(kv, "chat:1:", nil, testLogger())
	b := NewDocumentStore(kv, "chat:2:", nil, testLogger())

	require.True(t, a.SaveDocument(sampleDocument()))

	def := domain.DefaultDocument()
	assert.Equal(t, def, b.LoadDocument(def))
	assert.Equal(t, "Jane Doe", a.LoadDocument(def).Profile.FullName)
}

func TestDocumentStore_Clear(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "", nil, testLogger())

	require.True(t, store.SaveDocument(sampleDocument()))
	require.True(t, store.ClearDocument())

	def := domain.DefaultDocument()
	assert.Equal(t, def, store.LoadDocument(def))
}

func TestDocumentStore_Unavailable(t *testing.T) {
	store := NewDocumentStore(brokenKV{}, "", func() domain.Theme { return domain.ThemeLight }, testLogger())

	assert.False(t, store.Available())
	assert.False(t, store.SaveDocument(sampleDocument()))
	assert.False(t, store.SaveTheme(domain.ThemeDark))
	assert.False(t, store.ClearDocument())

	def := sampleDocument()
	assert.Equal(t, def, store.LoadDocument(def))
	assert.Equal(t, domain.ThemeLight, store.LoadTheme())
}

func TestDocumentStore_NilKVIsUnavailable(t *testing.T) {
	store := NewDocumentStore(nil, "", nil, testLogger())
	assert.False(t, store.SaveDocument(domain.DefaultDocument()))
	assert.Equal(t, domain.ThemeDark, store.LoadTheme())
}

func TestDocumentStore_Theme(t *testing.T) {
	kv, cleanup := setupTestDB(t)
	defer cleanup()
	store := NewDocumentStore(kv, "", func() domain.Theme { return domain.ThemeLight }, testLogger())

	// Nothing stored yet: host preference.
	assert.Equal(t, domain.ThemeLight, store.LoadTheme())

	require.True(t, store.SaveTheme(domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, store.LoadTheme())

	// Garbage value falls back as well.
	require.NoError(t, kv.Set(themeKey, []byte("sepia")))
	assert.Equal(t, domain.ThemeLight, store.LoadTheme())
}
