package section

import (
	"devresume/internal/domain"
)

var profileFields = []field[domain.Profile]{
	{"fullName", "Full Name", func(p *domain.Profile) *string { return &p.FullName }},
	{"jobTitle", "Job Title", func(p *domain.Profile) *string { return &p.JobTitle }},
	{"email", "Email", func(p *domain.Profile) *string { return &p.Email }},
	{"phone", "Phone", func(p *domain.Profile) *string { return &p.Phone }},
	{"location", "Location", func(p *domain.Profile) *string { return &p.Location }},
	{"summary", "Professional Summary", func(p *domain.Profile) *string { return &p.Summary }},
}

// Profile manages the personal profile section.
type Profile struct {
	themed
	values domain.Profile
}

// NewProfile returns a manager seeded with initial.
func NewProfile(initial domain.Profile) *Profile {
	return &Profile{values: initial}
}

// Set updates one profile field.
func (p *Profile) Set(name, value string) error {
	f, err := lookupField(profileFields, name)
	if err != nil {
		return err
	}
	*f.ptr(&p.values) = value
	return nil
}

// Values returns the current profile.
func (p *Profile) Values() domain.Profile {
	return p.values
}

// View renders the profile form.
func (p *Profile) View() View {
	v := View{Section: "Personal Profile", Theme: p.theme()}
	for _, f := range profileFields {
		val := *f.ptr(&p.values)
		row := Row{Label: f.label, Value: val}
		if f.name == "email" && val != "" && !domain.EmailValid(val) {
			row.Flag = "not a valid email"
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
