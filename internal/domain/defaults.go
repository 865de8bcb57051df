package domain

// DefaultSkillCategories lists the categories every document carries, in display order.
var DefaultSkillCategories = []struct {
	ID    string
	Label string
}{
	{"languages", "Languages"},
	{"frameworks", "Frameworks"},
	{"libraries", "Libraries"},
	{"tools", "Tools"},
	{"infrastructure", "Infrastructure"},
	{"other", "Other"},
}

// DefaultSkills returns a set holding the default categories with no skills.
func DefaultSkills() SkillSet {
	var s SkillSet
	for _, c := range DefaultSkillCategories {
		s.Put(SkillCategory{ID: c.ID, Label: c.Label, Skills: []string{}})
	}
	return s
}

// EnsureDefaultSkills adds any missing default category to s, keeping existing
// ones untouched.
func EnsureDefaultSkills(s SkillSet) SkillSet {
	out := s.Clone()
	for _, c := range DefaultSkillCategories {
		if !out.Has(c.ID) {
			out.Put(SkillCategory{ID: c.ID, Label: c.Label, Skills: []string{}})
		}
	}
	return out
}

// DefaultDocument returns a fresh empty document.
func DefaultDocument() Document {
	return Document{
		Links:      Links{Custom: []CustomLink{}},
		Skills:     DefaultSkills(),
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Projects:   []ProjectEntry{},
	}
}
