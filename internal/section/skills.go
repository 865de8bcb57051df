package section

import (
	"strings"

	"devresume/internal/domain"
)

// Skills manages the skill categories. Default categories always exist and
// categories added during a session are never dropped.
type Skills struct {
	themed
	values   domain.SkillSet
	expanded map[string]bool
}

// NewSkills returns a manager seeded with initial plus any missing defaults.
func NewSkills(initial domain.SkillSet) *Skills {
	return &Skills{
		values:   domain.EnsureDefaultSkills(initial),
		expanded: make(map[string]bool),
	}
}

// Add appends skill to the category. Blank skills and unknown categories are
// rejected.
func (s *Skills) Add(categoryID, skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	c, ok := s.values.Get(categoryID)
	if !ok {
		return false
	}
	c.Skills = append(c.Skills, skill)
	s.values.Put(c)
	return true
}

// RemoveAt deletes the skill at index from the category.
func (s *Skills) RemoveAt(categoryID string, index int) bool {
	c, ok := s.values.Get(categoryID)
	if !ok || index < 0 || index >= len(c.Skills) {
		return false
	}
	c.Skills = removeAt(c.Skills, index)
	s.values.Put(c)
	return true
}

// AddCategory creates a custom category and returns its id. Blank labels are
// rejected.
func (s *Skills) AddCategory(label string) (string, bool) {
	if strings.TrimSpace(label) == "" {
		return "", false
	}
	c := domain.NewSkillCategory(label)
	s.values.Put(c)
	s.expanded[c.ID] = true
	return c.ID, true
}

// Toggle flips whether the category is expanded in the view.
func (s *Skills) Toggle(categoryID string) {
	s.expanded[categoryID] = !s.expanded[categoryID]
}

// Expanded reports whether the category is expanded.
func (s *Skills) Expanded(categoryID string) bool {
	return s.expanded[categoryID]
}

// Values returns a copy of the current skill set.
func (s *Skills) Values() domain.SkillSet {
	return s.values.Clone()
}

// View renders one row per category; expanded categories list their skills.
func (s *Skills) View() View {
	v := View{Section: "Technical Skills", Theme: s.theme()}
	for _, c := range s.values.Categories() {
		row := Row{ID: c.ID, Label: c.Label, Value: strings.Join(c.Skills, ", ")}
		if s.Expanded(c.ID) {
			row.Value = ""
			for _, sk := range c.Skills {
				row.Children = append(row.Children, Row{Value: sk})
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
