package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_PutReplacesInPlace(t *testing.T) {
	s := NewSkillSet(
		SkillCategory{ID: "a", Label: "A"},
		SkillCategory{ID: "b", Label: "B"},
	)
	s.Put(SkillCategory{ID: "a", Label: "A2", Skills: []string{"x"}})

	cats := s.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "A2", cats[0].Label)
	assert.Equal(t, "b", cats[1].ID)

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, 1, s.Len())
}

func TestSkillSet_JSONKeepsOrder(t *testing.T) {
	s := NewSkillSet(
		SkillCategory{ID: "zeta", Label: "Zeta", Skills: []string{"z"}},
		SkillCategory{ID: "alpha", Label: "Alpha", Skills: []string{}},
	)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":{"id":"zeta","label":"Zeta","skills":["z"]},"alpha":{"id":"alpha","label":"Alpha","skills":[]}}`, string(data))

	var back SkillSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
	assert.Equal(t, "zeta", back.Categories()[0].ID)
}

func TestSkillSet_UnmarshalFillsMissingID(t *testing.T) {
	var s SkillSet
	require.NoError(t, json.Unmarshal([]byte(`{"tools":{"label":"Tools","skills":["Git"]}}`), &s))
	c, ok := s.Get("tools")
	require.True(t, ok)
	assert.Equal(t, "tools", c.ID)
	assert.Equal(t, []string{"Git"}, c.Skills)
}

func TestSkillSet_UnmarshalRejectsArray(t *testing.T) {
	var s SkillSet
	assert.Error(t, json.Unmarshal([]byte(`["Go"]`), &s))
}

func TestSkillSet_GetReturnsCopy(t *testing.T) {
	s := NewSkillSet(SkillCategory{ID: "a", Skills: []string{"x"}})
	c, _ := s.Get("a")
	c.Skills[0] = "mutated"
	again, _ := s.Get("a")
	assert.Equal(t, "x", again.Skills[0])
}
