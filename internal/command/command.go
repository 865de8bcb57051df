// Package command applies text commands to an editor. It is the input surface
// shared by the CLI, the chat bot and the HTTP API: each command is one input
// event, committed through the editor so every change is persisted.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"devresume/internal/editor"
	"devresume/internal/section"
)

var (
	// ErrUsage is returned for malformed or unknown commands.
	ErrUsage = errors.New("usage")
	// ErrRejected is returned when a section refused the input, such as a
	// blank skill or a custom link without a URL.
	ErrRejected = errors.New("rejected")
)

// Help lists the available commands.
const Help = `Commands:
  profile <fullName|jobTitle|email|phone|location|summary> <value...>
  link <linkedin|github|website|twitter> <url>
  link add <label> <url>      link edit <id> <label> <url>      link rm <id> | link cancel
  skill add <category> <skill...>      skill rm <category> <n>
  skill category <label...>            skill toggle <category>
  exp add | exp set <id> <company|position|startDate|endDate> <value...>
  exp current <id> on|off | exp bullet <id> <text...> | exp unbullet <id> <n>
  exp edit <id> | exp rm <id>
  edu add | edu set <id> <institution|degree|startDate|endDate> <value...>
  edu edit <id> | edu rm <id>
  project add | project set <id> <name|description|url> <value...> | project rm <id>
  show [profile|links|skills|experience|education|projects]
  theme | reset | help | zoom in|out|<percent>
Ids may be given as 1-based positions. Quote values with spaces when needed.`

type handler func(ed *editor.Editor, args []string) (string, error)

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"profile":    profileCmd,
		"link":       linkCmd,
		"links":      linkCmd,
		"skill":      skillCmd,
		"skills":     skillCmd,
		"exp":        experienceCmd,
		"experience": experienceCmd,
		"edu":        educationCmd,
		"education":  educationCmd,
		"project":    projectCmd,
		"projects":   projectCmd,
		"show":       showCmd,
		"theme":      themeCmd,
		"reset":      resetCmd,
		"help":       func(*editor.Editor, []string) (string, error) { return Help, nil },
	}
}

// Execute applies one command to ed and returns a reply for the user.
func Execute(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return Help, nil
	}
	h, ok := handlers[strings.ToLower(args[0])]
	if !ok {
		return "", fmt.Errorf("%w: unknown command %q, try help", ErrUsage, args[0])
	}
	return h(ed, args[1:])
}

func usage(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, a...)...)
}

func rejected(msg string) error {
	return fmt.Errorf("%w: %s", ErrRejected, msg)
}

// withFlags appends the validation messages of v to msg.
func withFlags(msg string, v section.View) string {
	for _, f := range v.Flags() {
		msg += "\nWarning: " + f
	}
	return msg
}

// resolve maps a reference to an id: an exact id, or a 1-based position.
func resolve(ref string, ids []string) (string, error) {
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}
	return "", fmt.Errorf("%q: %w", ref, section.ErrNotFound)
}

func index(ref string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil || n < 1 {
		return 0, usage("%q is not a position", ref)
	}
	return n - 1, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "true", "1":
		return true, nil
	case "off", "no", "false", "0":
		return false, nil
	}
	return false, usage("expected on or off, got %q", s)
}

func profileCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Profile.View().String(), nil
	}
	err := ed.Do(func(s *editor.Sections) error {
		return s.Profile.Set(args[0], strings.Join(args[1:], " "))
	})
	if err != nil {
		return "", err
	}
	return withFlags("Profile updated.", ed.Sections().Profile.View()), nil
}

func linkCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Links.View().String(), nil
	}
	linkIDs := func(s *editor.Sections) []string {
		var ids []string
		for _, c := range s.Links.Values().Custom {
			ids = append(ids, c.ID)
		}
		return ids
	}

	var reply string
	err := ed.Do(func(s *editor.Sections) error {
		switch strings.ToLower(args[0]) {
		case "add":
			if len(args) != 3 {
				return usage("link add <label> <url>")
			}
			s.Links.CancelEdit()
			s.Links.SetDraft(args[1], args[2])
			if !s.Links.Submit() {
				return rejected("a custom link needs both a label and a URL")
			}
			custom := s.Links.Values().Custom
			link := custom[len(custom)-1]
			reply = fmt.Sprintf("Added link %s (%s).", link.Label, link.ID)
		case "edit":
			if len(args) != 4 {
				return usage("link edit <id> <label> <url>")
			}
			id, err := resolve(args[1], linkIDs(s))
			if err != nil {
				return err
			}
			s.Links.BeginEdit(id)
			s.Links.SetDraft(args[2], args[3])
			if !s.Links.Submit() {
				return rejected("a custom link needs both a label and a URL; use link cancel to discard the draft")
			}
			reply = "Link updated."
		case "cancel":
			s.Links.CancelEdit()
			reply = "Draft discarded."
		case "rm", "remove":
			if len(args) != 2 {
				return usage("link rm <id>")
			}
			id, err := resolve(args[1], linkIDs(s))
			if err != nil {
				return err
			}
			s.Links.RemoveCustom(id)
			reply = "Link removed."
		default:
			if err := s.Links.Set(args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			reply = "Links updated."
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return withFlags(reply, ed.Sections().Links.View()), nil
}

// category resolves a skill category by id, label or position.
func category(s *editor.Sections, ref string) (string, error) {
	cats := s.Skills.Values().Categories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		if strings.EqualFold(c.Label, ref) {
			return c.ID, nil
		}
		ids[i] = c.ID
	}
	return resolve(ref, ids)
}

func skillCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Skills.View().String(), nil
	}
	var reply string
	err := ed.Do(func(s *editor.Sections) error {
		switch strings.ToLower(args[0]) {
		case "add":
			if len(args) < 3 {
				return usage("skill add <category> <skill...>")
			}
			id, err := category(s, args[1])
			if err != nil {
				return err
			}
			if !s.Skills.Add(id, strings.Join(args[2:], " ")) {
				return rejected("skill is blank")
			}
			reply = "Skill added."
		case "rm", "remove":
			if len(args) != 3 {
				return usage("skill rm <category> <n>")
			}
			id, err := category(s, args[1])
			if err != nil {
				return err
			}
			i, err := index(args[2])
			if err != nil {
				return err
			}
			if !s.Skills.RemoveAt(id, i) {
				return fmt.Errorf("skill %d: %w", i+1, section.ErrNotFound)
			}
			reply = "Skill removed."
		case "category":
			id, ok := s.Skills.AddCategory(strings.Join(args[1:], " "))
			if !ok {
				return rejected("category label is blank")
			}
			reply = fmt.Sprintf("Category added (%s).", id)
		case "toggle":
			if len(args) != 2 {
				return usage("skill toggle <category>")
			}
			id, err := category(s, args[1])
			if err != nil {
				return err
			}
			s.Skills.Toggle(id)
			reply = s.Skills.View().String()
		default:
			return usage("skill add|rm|category|toggle")
		}
		return nil
	})
	return reply, err
}

func experienceCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Experience.View().String(), nil
	}
	ids := func(s *editor.Sections) []string {
		var out []string
		for _, e := range s.Experience.Values() {
			out = append(out, e.ID)
		}
		return out
	}

	var reply string
	err := ed.Do(func(s *editor.Sections) error {
		sub := strings.ToLower(args[0])
		if sub == "add" {
			e := s.Experience.Add()
			reply = fmt.Sprintf("Added experience #%d (%s).", len(s.Experience.Values()), e.ID)
			return nil
		}
		if len(args) < 2 {
			return usage("exp %s <id> ...", sub)
		}
		id, err := resolve(args[1], ids(s))
		if err != nil {
			return err
		}
		switch sub {
		case "set":
			if len(args) < 3 {
				return usage("exp set <id> <field> <value...>")
			}
			if err := s.Experience.Update(id, args[2], strings.Join(args[3:], " ")); err != nil {
				return err
			}
			reply = "Experience updated."
		case "current":
			if len(args) != 3 {
				return usage("exp current <id> on|off")
			}
			on, err := parseBool(args[2])
			if err != nil {
				return err
			}
			if err := s.Experience.SetCurrent(id, on); err != nil {
				return err
			}
			reply = "Experience updated."
		case "bullet":
			if err := s.Experience.AddResponsibility(id, strings.Join(args[2:], " ")); err != nil {
				return err
			}
			reply = "Responsibility added."
		case "unbullet":
			if len(args) != 3 {
				return usage("exp unbullet <id> <n>")
			}
			i, err := index(args[2])
			if err != nil {
				return err
			}
			if err := s.Experience.RemoveResponsibility(id, i); err != nil {
				return err
			}
			reply = "Responsibility removed."
		case "edit":
			s.Experience.Edit(id)
			reply = s.Experience.View().String()
		case "rm", "remove":
			s.Experience.Remove(id)
			reply = "Experience removed."
		default:
			return usage("exp add|set|current|bullet|unbullet|edit|rm")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return withFlags(reply, ed.Sections().Experience.View()), nil
}

func educationCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Education.View().String(), nil
	}
	var reply string
	err := ed.Do(func(s *editor.Sections) error {
		sub := strings.ToLower(args[0])
		if sub == "add" {
			e := s.Education.Add()
			reply = fmt.Sprintf("Added education #%d (%s).", len(s.Education.Values()), e.ID)
			return nil
		}
		if len(args) < 2 {
			return usage("edu %s <id> ...", sub)
		}
		var ids []string
		for _, e := range s.Education.Values() {
			ids = append(ids, e.ID)
		}
		id, err := resolve(args[1], ids)
		if err != nil {
			return err
		}
		switch sub {
		case "set":
			if len(args) < 3 {
				return usage("edu set <id> <field> <value...>")
			}
			if err := s.Education.Update(id, args[2], strings.Join(args[3:], " ")); err != nil {
				return err
			}
			reply = "Education updated."
		case "edit":
			s.Education.Edit(id)
			reply = s.Education.View().String()
		case "rm", "remove":
			s.Education.Remove(id)
			reply = "Education removed."
		default:
			return usage("edu add|set|edit|rm")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return withFlags(reply, ed.Sections().Education.View()), nil
}

func projectCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) == 0 {
		return ed.Sections().Projects.View().String(), nil
	}
	var reply string
	err := ed.Do(func(s *editor.Sections) error {
		sub := strings.ToLower(args[0])
		if sub == "add" {
			e := s.Projects.Add()
			reply = fmt.Sprintf("Added project #%d (%s).", len(s.Projects.Values()), e.ID)
			return nil
		}
		if len(args) < 2 {
			return usage("project %s <id> ...", sub)
		}
		var ids []string
		for _, e := range s.Projects.Values() {
			ids = append(ids, e.ID)
		}
		id, err := resolve(args[1], ids)
		if err != nil {
			return err
		}
		switch sub {
		case "set":
			if len(args) < 3 {
				return usage("project set <id> <field> <value...>")
			}
			if err := s.Projects.Update(id, args[2], strings.Join(args[3:], " ")); err != nil {
				return err
			}
			reply = "Project updated."
		case "rm", "remove":
			s.Projects.Remove(id)
			reply = "Project removed."
		default:
			return usage("project add|set|rm")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return withFlags(reply, ed.Sections().Projects.View()), nil
}

// SectionView returns the editing view of the named section.
func SectionView(ed *editor.Editor, name string) (section.View, error) {
	s := ed.Sections()
	switch strings.ToLower(name) {
	case "profile":
		return s.Profile.View(), nil
	case "links", "link":
		return s.Links.View(), nil
	case "skills", "skill":
		return s.Skills.View(), nil
	case "experience", "exp":
		return s.Experience.View(), nil
	case "education", "edu":
		return s.Education.View(), nil
	case "projects", "project":
		return s.Projects.View(), nil
	}
	return section.View{}, usage("unknown section %q", name)
}

func showCmd(ed *editor.Editor, args []string) (string, error) {
	if len(args) > 0 {
		v, err := SectionView(ed, args[0])
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	var b strings.Builder
	for _, v := range ed.Sections().Views() {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func themeCmd(ed *editor.Editor, _ []string) (string, error) {
	t := ed.ToggleTheme()
	return fmt.Sprintf("Theme set to %s.", t), nil
}

func resetCmd(ed *editor.Editor, _ []string) (string, error) {
	ed.Reset()
	return "Resume cleared.", nil
}
