// Package preview projects a resume document into a read-only, display ready
// form and renders it as printable HTML.
package preview

import (
	"strings"

	"devresume/internal/domain"
)

// Resume is the projected, display ready resume.
type Resume struct {
	// Placeholder is set when the sample document was shown instead of an
	// empty one.
	Placeholder bool

	Name     string
	JobTitle string
	Location string
	Email    string
	Phone    string
	Links    []Link
	Summary  string

	Skills     []SkillLine
	Experience []Entry
	Education  []Entry
	Projects   []ProjectItem
}

// Link is a labelled hyperlink in the header.
type Link struct {
	Label string
	URL   string
}

// SkillLine is one non-empty skill category.
type SkillLine struct {
	Label  string
	Skills []string
}

// Joined returns the skills as a comma separated list.
func (s SkillLine) Joined() string { return strings.Join(s.Skills, ", ") }

// Entry is an experience or education item.
type Entry struct {
	Title    string
	Subtitle string
	Period   string
	Bullets  []string
}

// ProjectItem is a project entry.
type ProjectItem struct {
	Name        string
	Description string
	URL         string
}

// IsEmpty reports whether every field of the document is blank: profile
// fields, links, skills in every category and all entry lists.
func IsEmpty(doc domain.Document) bool {
	p := doc.Profile
	for _, v := range []string{p.FullName, p.JobTitle, p.Email, p.Phone, p.Location, p.Summary} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	l := doc.Links
	for _, v := range []string{l.LinkedIn, l.GitHub, l.Website, l.Twitter} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	if len(l.Custom) > 0 {
		return false
	}
	for _, c := range doc.Skills.Categories() {
		if len(c.Skills) > 0 {
			return false
		}
	}
	return len(doc.Experience) == 0 && len(doc.Education) == 0 && len(doc.Projects) == 0
}

// Project maps doc to its display form. An empty document is replaced by the
// sample resume so the preview never renders a blank page. doc is not modified.
func Project(doc domain.Document) Resume {
	if IsEmpty(doc) {
		r := project(Placeholder())
		r.Placeholder = true
		return r
	}
	return project(doc)
}

func project(doc domain.Document) Resume {
	p := doc.Profile
	r := Resume{
		Name:     orDefault(p.FullName, "Your Name"),
		JobTitle: orDefault(p.JobTitle, "Job Title"),
		Location: strings.TrimSpace(p.Location),
		Email:    strings.TrimSpace(p.Email),
		Phone:    strings.TrimSpace(p.Phone),
		Summary:  strings.TrimSpace(p.Summary),
	}

	l := doc.Links
	for _, fixed := range []Link{
		{"LinkedIn", l.LinkedIn},
		{"GitHub", l.GitHub},
		{"Portfolio", l.Website},
		{"X", l.Twitter},
	} {
		if u := strings.TrimSpace(fixed.URL); u != "" {
			r.Links = append(r.Links, Link{Label: fixed.Label, URL: u})
		}
	}
	for _, c := range l.Custom {
		if strings.TrimSpace(c.URL) == "" {
			continue
		}
		r.Links = append(r.Links, Link{Label: orDefault(c.Label, c.URL), URL: c.URL})
	}

	for _, c := range doc.Skills.Categories() {
		if len(c.Skills) == 0 {
			continue
		}
		r.Skills = append(r.Skills, SkillLine{Label: c.Label, Skills: c.Skills})
	}

	for _, e := range doc.Experience {
		var bullets []string
		if len(e.Responsibilities) > 0 {
			bullets = append(bullets, e.Responsibilities...)
		}
		r.Experience = append(r.Experience, Entry{
			Title:    orDefault(e.Position, "Position"),
			Subtitle: orDefault(e.Company, "Company"),
			Period:   FormatPeriod(e.StartDate, e.EndDate, e.CurrentlyWorkHere),
			Bullets:  bullets,
		})
	}

	for _, e := range doc.Education {
		r.Education = append(r.Education, Entry{
			Title:    orDefault(e.Degree, "Degree"),
			Subtitle: orDefault(e.Institution, "Institution"),
			Period:   FormatPeriod(e.StartDate, e.EndDate, false),
		})
	}

	for _, e := range doc.Projects {
		r.Projects = append(r.Projects, ProjectItem{
			Name:        orDefault(e.Name, "Project"),
			Description: strings.TrimSpace(e.Description),
			URL:         strings.TrimSpace(e.URL),
		})
	}
	return r
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// FormatDate renders a stored date as "Jan 2022". Unparsable input is shown
// as typed.
func FormatDate(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return t.Format("Jan 2006")
}

// FormatPeriod renders a date range. A current entry ends with "Present"
// regardless of any stored end date.
func FormatPeriod(start, end string, current bool) string {
	var parts []string
	if strings.TrimSpace(start) != "" {
		parts = append(parts, FormatDate(start))
	}
	switch {
	case current:
		parts = append(parts, "Present")
	case strings.TrimSpace(end) != "":
		parts = append(parts, FormatDate(end))
	}
	return strings.Join(parts, " - ")
}
