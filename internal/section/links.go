package section

import (
	"strings"

	"devresume/internal/domain"
)

var linkFields = []field[domain.Links]{
	{"linkedin", "LinkedIn", func(l *domain.Links) *string { return &l.LinkedIn }},
	{"github", "GitHub", func(l *domain.Links) *string { return &l.GitHub }},
	{"website", "Website", func(l *domain.Links) *string { return &l.Website }},
	{"twitter", "X / Twitter", func(l *domain.Links) *string { return &l.Twitter }},
}

// Links manages the fixed social links and the custom link list.
type Links struct {
	themed
	values domain.Links

	// Draft form for adding or editing a custom link. Not persisted.
	draftLabel string
	draftURL   string
	editing    string
}

// NewLinks returns a manager seeded with initial.
func NewLinks(initial domain.Links) *Links {
	l := &Links{values: initial.Clone()}
	if l.values.Custom == nil {
		l.values.Custom = []domain.CustomLink{}
	}
	return l
}

// Set updates one of the fixed link fields.
func (l *Links) Set(name, value string) error {
	f, err := lookupField(linkFields, name)
	if err != nil {
		return err
	}
	*f.ptr(&l.values) = value
	return nil
}

// AddCustom appends a custom link when both label and url are non-empty after
// trimming. It reports whether the link was added.
func (l *Links) AddCustom(label, url string) (domain.CustomLink, bool) {
	label, url = strings.TrimSpace(label), strings.TrimSpace(url)
	if label == "" || url == "" {
		return domain.CustomLink{}, false
	}
	link := domain.NewCustomLinkTemplate()
	link.Label, link.URL = label, url
	l.values.Custom = append(l.values.Custom, link)
	return link, true
}

// UpdateCustom replaces the label and url of the link with id, keeping its id
// and position. Blank values leave the link untouched.
func (l *Links) UpdateCustom(id, label, url string) bool {
	label, url = strings.TrimSpace(label), strings.TrimSpace(url)
	if label == "" || url == "" {
		return false
	}
	i := indexOf(l.values.Custom, id, func(c domain.CustomLink) string { return c.ID })
	if i < 0 {
		return false
	}
	l.values.Custom[i].Label = label
	l.values.Custom[i].URL = url
	return true
}

// RemoveCustom deletes the custom link with id.
func (l *Links) RemoveCustom(id string) bool {
	i := indexOf(l.values.Custom, id, func(c domain.CustomLink) string { return c.ID })
	if i < 0 {
		return false
	}
	l.values.Custom = removeAt(l.values.Custom, i)
	if l.editing == id {
		l.CancelEdit()
	}
	return true
}

// BeginEdit loads the link with id into the draft form.
func (l *Links) BeginEdit(id string) bool {
	i := indexOf(l.values.Custom, id, func(c domain.CustomLink) string { return c.ID })
	if i < 0 {
		return false
	}
	l.editing = id
	l.draftLabel = l.values.Custom[i].Label
	l.draftURL = l.values.Custom[i].URL
	return true
}

// SetDraft replaces the in-progress label and url.
func (l *Links) SetDraft(label, url string) {
	l.draftLabel, l.draftURL = label, url
}

// Submit commits the draft: an update when editing, an append otherwise.
// The draft is cleared only when the commit succeeds.
func (l *Links) Submit() bool {
	var ok bool
	if l.editing != "" {
		ok = l.UpdateCustom(l.editing, l.draftLabel, l.draftURL)
	} else {
		_, ok = l.AddCustom(l.draftLabel, l.draftURL)
	}
	if ok {
		l.CancelEdit()
	}
	return ok
}

// CancelEdit clears the draft form and leaves edit mode.
func (l *Links) CancelEdit() {
	l.editing, l.draftLabel, l.draftURL = "", "", ""
}

// Values returns a copy of the current links.
func (l *Links) Values() domain.Links {
	return l.values.Clone()
}

// View renders the links form.
func (l *Links) View() View {
	v := View{Section: "Links", Theme: l.theme(), Editing: l.editing}
	for _, f := range linkFields {
		val := *f.ptr(&l.values)
		v.Rows = append(v.Rows, Row{Label: f.label, Value: val, Flag: urlFlag(val)})
	}
	for _, c := range l.values.Custom {
		v.Rows = append(v.Rows, Row{ID: c.ID, Label: c.Label, Value: c.URL, Flag: urlFlag(c.URL)})
	}
	if l.draftLabel != "" || l.draftURL != "" {
		v.Rows = append(v.Rows, Row{Label: "Draft", Value: strings.TrimSpace(l.draftLabel + " " + l.draftURL)})
	}
	return v
}
