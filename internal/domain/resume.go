package domain

// Profile holds the personal details shown at the top of the resume.
// It is a singleton per document and carries no id.
type Profile struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// CustomLink is a user defined link with its own label.
type CustomLink struct {
	// ID is generated at creation time and is unique within Links.Custom.
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Links holds the fixed social links plus any custom links, in insertion order.
type Links struct {
	LinkedIn string       `json:"linkedin"`
	GitHub   string       `json:"github"`
	Website  string       `json:"website"`
	Twitter  string       `json:"twitter"`
	Custom   []CustomLink `json:"custom"`
}

// ExperienceEntry represents one position in the work history.
type ExperienceEntry struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	StartDate string `json:"startDate"`
	// EndDate is inert while CurrentlyWorkHere is set.
	EndDate           string   `json:"endDate"`
	CurrentlyWorkHere bool     `json:"currentlyWorkHere"`
	Responsibilities  []string `json:"responsibilities"`
}

// EducationEntry represents one degree or course of study.
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ProjectEntry represents a side or portfolio project.
type ProjectEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Document is the full resume: the unit of persistence and of preview projection.
type Document struct {
	Profile    Profile           `json:"profile"`
	Links      Links             `json:"links"`
	Skills     SkillSet          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	return Document{
		Profile:    d.Profile,
		Links:      d.Links.Clone(),
		Skills:     d.Skills.Clone(),
		Experience: CloneExperience(d.Experience),
		Education:  cloneSlice(d.Education),
		Projects:   cloneSlice(d.Projects),
	}
}

// Clone returns a deep copy of the links.
func (l Links) Clone() Links {
	l.Custom = cloneSlice(l.Custom)
	return l
}

// CloneExperience deep copies experience entries including their responsibilities.
func CloneExperience(entries []ExperienceEntry) []ExperienceEntry {
	if entries == nil {
		return nil
	}
	out := make([]ExperienceEntry, len(entries))
	for i, e := range entries {
		e.Responsibilities = cloneSlice(e.Responsibilities)
		out[i] = e
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
