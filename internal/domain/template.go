package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for a repeatable entity.
// UUIDv7 carries a millisecond timestamp plus a per-process monotonic sequence,
// so ids created back to back never collide.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewExperienceTemplate returns a blank experience entry with a fresh id.
func NewExperienceTemplate() ExperienceEntry {
	return ExperienceEntry{
		ID:               NewID(),
		Responsibilities: []string{},
	}
}

// NewEducationTemplate returns a blank education entry with a fresh id.
func NewEducationTemplate() EducationEntry {
	return EducationEntry{ID: NewID()}
}

// NewCustomLinkTemplate returns a blank custom link with a fresh id.
func NewCustomLinkTemplate() CustomLink {
	return CustomLink{ID: NewID()}
}

// NewProjectTemplate returns a blank project entry with a fresh id.
func NewProjectTemplate() ProjectEntry {
	return ProjectEntry{ID: NewID()}
}

// NewSkillCategory returns an empty user category with a fresh id.
func NewSkillCategory(label string) SkillCategory {
	return SkillCategory{
		ID:     "custom-" + NewID(),
		Label:  strings.TrimSpace(label),
		Skills: []string{},
	}
}
