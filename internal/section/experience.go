package section

import (
	"fmt"
	"strings"

	"devresume/internal/domain"
)

var experienceFields = []field[domain.ExperienceEntry]{
	{"company", "Company", func(e *domain.ExperienceEntry) *string { return &e.Company }},
	{"position", "Position", func(e *domain.ExperienceEntry) *string { return &e.Position }},
	{"startDate", "Start Date", func(e *domain.ExperienceEntry) *string { return &e.StartDate }},
	{"endDate", "End Date", func(e *domain.ExperienceEntry) *string { return &e.EndDate }},
}

func experienceID(e domain.ExperienceEntry) string { return e.ID }

// Experience manages the work history list.
type Experience struct {
	themed
	entries []domain.ExperienceEntry
	editing string
}

// NewExperience returns a manager seeded with initial.
func NewExperience(initial []domain.ExperienceEntry) *Experience {
	entries := domain.CloneExperience(initial)
	if entries == nil {
		entries = []domain.ExperienceEntry{}
	}
	return &Experience{entries: entries}
}

func (x *Experience) find(id string) (*domain.ExperienceEntry, error) {
	i := indexOf(x.entries, id, experienceID)
	if i < 0 {
		return nil, fmt.Errorf("experience %q: %w", id, ErrNotFound)
	}
	return &x.entries[i], nil
}

// Add appends a blank entry and puts it in edit mode.
func (x *Experience) Add() domain.ExperienceEntry {
	e := domain.NewExperienceTemplate()
	x.entries = append(x.entries, e)
	x.editing = e.ID
	return e
}

// Update sets one field of the entry with id. The end date cannot be edited
// while the entry is marked as current.
func (x *Experience) Update(id, name, value string) error {
	e, err := x.find(id)
	if err != nil {
		return err
	}
	f, err := lookupField(experienceFields, name)
	if err != nil {
		return err
	}
	if f.name == "endDate" && e.CurrentlyWorkHere {
		return fmt.Errorf("end date of a current position: %w", ErrFieldDisabled)
	}
	*f.ptr(e) = value
	return nil
}

// SetCurrent marks whether the entry is the current position. The stored end
// date is kept but ignored while current.
func (x *Experience) SetCurrent(id string, current bool) error {
	e, err := x.find(id)
	if err != nil {
		return err
	}
	e.CurrentlyWorkHere = current
	return nil
}

// AddResponsibility appends a bullet to the entry.
func (x *Experience) AddResponsibility(id, text string) error {
	e, err := x.find(id)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("responsibility: %w", ErrBlank)
	}
	e.Responsibilities = append(e.Responsibilities, text)
	return nil
}

// RemoveResponsibility deletes the bullet at index.
func (x *Experience) RemoveResponsibility(id string, index int) error {
	e, err := x.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(e.Responsibilities) {
		return fmt.Errorf("responsibility %d: %w", index+1, ErrNotFound)
	}
	e.Responsibilities = removeAt(e.Responsibilities, index)
	return nil
}

// Remove deletes the entry with id.
func (x *Experience) Remove(id string) bool {
	i := indexOf(x.entries, id, experienceID)
	if i < 0 {
		return false
	}
	x.entries = removeAt(x.entries, i)
	if x.editing == id {
		x.editing = ""
	}
	return true
}

// Edit puts the entry with id in edit mode; an empty id leaves edit mode.
func (x *Experience) Edit(id string) bool {
	if id != "" && indexOf(x.entries, id, experienceID) < 0 {
		return false
	}
	x.editing = id
	return true
}

// DateRangeInvalid reports whether the entry shows the date order flag.
func (x *Experience) DateRangeInvalid(id string) bool {
	e, err := x.find(id)
	if err != nil {
		return false
	}
	return !e.CurrentlyWorkHere && !domain.DateRangeValid(e.StartDate, e.EndDate)
}

// Values returns a copy of the entries.
func (x *Experience) Values() []domain.ExperienceEntry {
	return domain.CloneExperience(x.entries)
}

// View renders one row per entry with its fields and bullets as children.
func (x *Experience) View() View {
	v := View{Section: "Experience", Theme: x.theme(), Editing: x.editing}
	for _, e := range x.entries {
		flag := ""
		if x.DateRangeInvalid(e.ID) {
			flag = dateOrderFlag
		}
		row := Row{ID: e.ID, Value: heading(e.Position, e.Company)}
		for _, f := range experienceFields {
			child := Row{Label: f.label, Value: *f.ptr(&e)}
			if f.name == "endDate" {
				child.Disabled = e.CurrentlyWorkHere
				child.Flag = flag
			}
			row.Children = append(row.Children, child)
		}
		current := "no"
		if e.CurrentlyWorkHere {
			current = "yes"
		}
		row.Children = append(row.Children, Row{Label: "Currently work here", Value: current})
		for _, r := range e.Responsibilities {
			row.Children = append(row.Children, Row{Label: "-", Value: r})
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
