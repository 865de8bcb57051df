// Package section holds one state-owning manager per resume section.
//
// A manager is seeded with its slice of the document, mutated through explicit
// operations that enforce the section's policy, and exposes two projections of
// the same state: Values, the plain data the editor persists, and View, the
// editing view shown to the user. Local UI state such as drafts, expanded
// categories or the entry being edited lives on the manager but never appears
// in Values.
package section

import (
	"errors"
	"fmt"
	"strings"

	"devresume/internal/domain"
)

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("entry not found")
	// ErrUnknownField is returned for a field name the section does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldDisabled is returned when editing a field that is suspended,
	// such as the end date of a current position.
	ErrFieldDisabled = errors.New("field is disabled")
	// ErrBlank is returned when a required value is empty after trimming.
	ErrBlank = errors.New("value is blank")
)

// Row is one line of an editing view.
type Row struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	// Flag is a non-blocking validation message; empty when the value is fine.
	Flag     string `json:"flag,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Children []Row  `json:"children,omitempty"`
}

// View is the rendered editing state of a section.
type View struct {
	Section string       `json:"section"`
	Theme   domain.Theme `json:"theme"`
	// Editing is the id of the entry in edit mode, if any.
	Editing string `json:"editing,omitempty"`
	Rows    []Row  `json:"rows"`
}

// Flags returns every validation message in the view, depth first.
func (v View) Flags() []string {
	var out []string
	var walk func(rows []Row)
	walk = func(rows []Row) {
		for _, r := range rows {
			if r.Flag != "" {
				out = append(out, r.Flag)
			}
			walk(r.Children)
		}
	}
	walk(v.Rows)
	return out
}

// String renders the view as plain text for chat and terminal front ends.
func (v View) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", v.Section)
	writeRows(&b, v.Rows, v.Editing, 0)
	return b.String()
}

func writeRows(b *strings.Builder, rows []Row, editing string, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range rows {
		b.WriteString(indent)
		if r.ID != "" && r.ID == editing {
			b.WriteString("* ")
		}
		value := r.Value
		if value == "" {
			value = "-"
		}
		if r.Label != "" {
			fmt.Fprintf(b, "%s: %s", r.Label, value)
		} else {
			b.WriteString(value)
		}
		if r.Disabled {
			b.WriteString(" (disabled)")
		}
		if r.Flag != "" {
			fmt.Fprintf(b, " [!] %s", r.Flag)
		}
		b.WriteByte('\n')
		writeRows(b, r.Children, editing, depth+1)
	}
}

// themed is embedded by every manager to carry the display mode.
type themed struct {
	dark bool
}

// SetDark sets the display mode used by View.
func (t *themed) SetDark(dark bool) { t.dark = dark }

func (t *themed) theme() domain.Theme { return domain.ThemeFor(t.dark) }

// field describes one editable string field of a record.
type field[T any] struct {
	name  string
	label string
	ptr   func(*T) *string
}

func lookupField[T any](fields []field[T], name string) (field[T], error) {
	for _, f := range fields {
		if strings.EqualFold(f.name, name) {
			return f, nil
		}
	}
	return field[T]{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

// heading joins a title and a place as "title @ place", skipping blanks.
func heading(title, place string) string {
	switch {
	case title != "" && place != "":
		return title + " @ " + place
	case title != "":
		return title
	}
	return place
}

const dateOrderFlag = "start date is after end date"

func urlFlag(s string) string {
	if s != "" && !domain.URLValid(s) {
		return "not a valid URL"
	}
	return ""
}
