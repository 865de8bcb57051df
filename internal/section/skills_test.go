package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devresume/internal/domain"
)

func skillsOf(t *testing.T, s *Skills, id string) []string {
	t.Helper()
	c, ok := s.Values().Get(id)
	require.True(t, ok, "category %s should exist", id)
	return c.Skills
}

func TestSkills_SeedsDefaults(t *testing.T) {
	s := NewSkills(domain.SkillSet{})
	assert.Equal(t, len(domain.DefaultSkillCategories), s.Values().Len())

	// A stored set missing a default category gets it back, after its own.
	stored := domain.NewSkillSet(domain.SkillCategory{ID: "languages", Label: "Languages", Skills: []string{"Go"}})
	s = NewSkills(stored)
	assert.Equal(t, []string{"Go"}, skillsOf(t, s, "languages"))
	assert.True(t, s.Values().Has("other"))
}

func TestSkills_AddRejectsBlank(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())
	for _, id := range []string{"languages", "frameworks", "tools"} {
		assert.False(t, s.Add(id, ""))
		assert.False(t, s.Add(id, "   "))
		assert.Empty(t, skillsOf(t, s, id))
	}
}

func TestSkills_AddThenRemove(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())
	require.True(t, s.Add("languages", "Go"))
	assert.Equal(t, []string{"Go"}, skillsOf(t, s, "languages"))

	require.True(t, s.RemoveAt("languages", 0))
	assert.Empty(t, skillsOf(t, s, "languages"))

	assert.False(t, s.RemoveAt("languages", 0))
	assert.False(t, s.Add("nope", "Go"))
}

func TestSkills_DuplicatesAllowed(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())
	s.Add("tools", "Git")
	s.Add("tools", "Git")
	assert.Equal(t, []string{"Git", "Git"}, skillsOf(t, s, "tools"))
}

func TestSkills_AddCategory(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())

	_, ok := s.AddCategory("  ")
	assert.False(t, ok)

	id1, ok := s.AddCategory("Databases")
	require.True(t, ok)
	id2, ok := s.AddCategory("Databases")
	require.True(t, ok)
	assert.NotEqual(t, id1, id2)

	cats := s.Values().Categories()
	assert.Equal(t, id2, cats[len(cats)-1].ID)
	assert.Equal(t, "Databases", cats[len(cats)-1].Label)
	assert.True(t, s.Expanded(id1))
}

func TestSkills_ToggleIsLocalState(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())
	s.Add("languages", "Go")
	before := s.Values()

	s.Toggle("languages")
	assert.True(t, s.Expanded("languages"))
	assert.Equal(t, before, s.Values())

	view := s.View()
	require.NotEmpty(t, view.Rows)
	assert.Equal(t, "Go", view.Rows[0].Children[0].Value)
}

func TestSkills_ValuesAreCopies(t *testing.T) {
	s := NewSkills(domain.DefaultSkills())
	v := s.Values()
	c, _ := v.Get("languages")
	c.Skills = append(c.Skills, "Leaked")
	v.Put(c)
	assert.Empty(t, skillsOf(t, s, "languages"))
}
