package section

import (
	"fmt"

	"devresume/internal/domain"
)

var projectFields = []field[domain.ProjectEntry]{
	{"name", "Name", func(p *domain.ProjectEntry) *string { return &p.Name }},
	{"description", "Description", func(p *domain.ProjectEntry) *string { return &p.Description }},
	{"url", "URL", func(p *domain.ProjectEntry) *string { return &p.URL }},
}

func projectID(p domain.ProjectEntry) string { return p.ID }

// Projects manages the optional projects list.
type Projects struct {
	themed
	entries []domain.ProjectEntry
}

// NewProjects returns a manager seeded with a copy of initial.
func NewProjects(initial []domain.ProjectEntry) *Projects {
	entries := make([]domain.ProjectEntry, len(initial))
	copy(entries, initial)
	return &Projects{entries: entries}
}

// Add appends a blank project and returns it.
func (p *Projects) Add() domain.ProjectEntry {
	e := domain.NewProjectTemplate()
	p.entries = append(p.entries, e)
	return e
}

// Update sets one field of the project with id.
func (p *Projects) Update(id, name, value string) error {
	i := indexOf(p.entries, id, projectID)
	if i < 0 {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	f, err := lookupField(projectFields, name)
	if err != nil {
		return err
	}
	*f.ptr(&p.entries[i]) = value
	return nil
}

// Remove deletes the project with id.
func (p *Projects) Remove(id string) bool {
	i := indexOf(p.entries, id, projectID)
	if i < 0 {
		return false
	}
	p.entries = removeAt(p.entries, i)
	return true
}

// Values returns a copy of the entries.
func (p *Projects) Values() []domain.ProjectEntry {
	out := make([]domain.ProjectEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// View renders one row per project; malformed URLs are flagged.
func (p *Projects) View() View {
	v := View{Section: "Projects", Theme: p.theme()}
	for _, e := range p.entries {
		row := Row{ID: e.ID, Value: e.Name}
		for _, f := range projectFields {
			val := *f.ptr(&e)
			child := Row{Label: f.label, Value: val}
			if f.name == "url" {
				child.Flag = urlFlag(val)
			}
			row.Children = append(row.Children, child)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
