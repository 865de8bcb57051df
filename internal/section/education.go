package section

import (
	"fmt"

	"devresume/internal/domain"
)

var educationFields = []field[domain.EducationEntry]{
	{"institution", "Institution", func(e *domain.EducationEntry) *string { return &e.Institution }},
	{"degree", "Degree", func(e *domain.EducationEntry) *string { return &e.Degree }},
	{"startDate", "Start Date", func(e *domain.EducationEntry) *string { return &e.StartDate }},
	{"endDate", "End Date", func(e *domain.EducationEntry) *string { return &e.EndDate }},
}

func educationID(e domain.EducationEntry) string { return e.ID }

// Education manages the education list.
type Education struct {
	themed
	entries []domain.EducationEntry
	editing string
}

// NewEducation returns a manager seeded with initial.
func NewEducation(initial []domain.EducationEntry) *Education {
	entries := make([]domain.EducationEntry, len(initial))
	copy(entries, initial)
	return &Education{entries: entries}
}

// Add appends a blank entry and puts it in edit mode.
func (d *Education) Add() domain.EducationEntry {
	e := domain.NewEducationTemplate()
	d.entries = append(d.entries, e)
	d.editing = e.ID
	return e
}

// Update sets one field of the entry with id.
func (d *Education) Update(id, name, value string) error {
	i := indexOf(d.entries, id, educationID)
	if i < 0 {
		return fmt.Errorf("education %q: %w", id, ErrNotFound)
	}
	f, err := lookupField(educationFields, name)
	if err != nil {
		return err
	}
	*f.ptr(&d.entries[i]) = value
	return nil
}

// Remove deletes the entry with id.
func (d *Education) Remove(id string) bool {
	i := indexOf(d.entries, id, educationID)
	if i < 0 {
		return false
	}
	d.entries = removeAt(d.entries, i)
	if d.editing == id {
		d.editing = ""
	}
	return true
}

// Edit puts the entry with id in edit mode; an empty id leaves edit mode.
func (d *Education) Edit(id string) bool {
	if id != "" && indexOf(d.entries, id, educationID) < 0 {
		return false
	}
	d.editing = id
	return true
}

// DateRangeInvalid reports whether the entry shows the date order flag.
func (d *Education) DateRangeInvalid(id string) bool {
	i := indexOf(d.entries, id, educationID)
	return i >= 0 && !domain.DateRangeValid(d.entries[i].StartDate, d.entries[i].EndDate)
}

// Values returns a copy of the entries.
func (d *Education) Values() []domain.EducationEntry {
	out := make([]domain.EducationEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// View renders one row per entry.
func (d *Education) View() View {
	v := View{Section: "Educational Background", Theme: d.theme(), Editing: d.editing}
	for _, e := range d.entries {
		row := Row{ID: e.ID, Value: heading(e.Degree, e.Institution)}
		for _, f := range educationFields {
			child := Row{Label: f.label, Value: *f.ptr(&e)}
			if f.name == "endDate" && d.DateRangeInvalid(e.ID) {
				child.Flag = dateOrderFlag
			}
			row.Children = append(row.Children, child)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
