package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillCategory groups skills under a label. Skills need not be unique.
type SkillCategory struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Skills []string `json:"skills"`
}

// SkillSet is an ordered mapping from category id to SkillCategory.
// Its JSON form is an object keyed by id; key order survives a round trip.
// The zero value is an empty set ready to use.
type SkillSet struct {
	cats []SkillCategory
}

// NewSkillSet builds a set from the given categories. Later duplicates of an id
// replace earlier ones in place.
func NewSkillSet(cats ...SkillCategory) SkillSet {
	var s SkillSet
	for _, c := range cats {
		s.Put(c)
	}
	return s
}

func (s *SkillSet) index(id string) int {
	for i := range s.cats {
		if s.cats[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the category stored under id.
func (s SkillSet) Get(id string) (SkillCategory, bool) {
	i := s.index(id)
	if i < 0 {
		return SkillCategory{}, false
	}
	c := s.cats[i]
	c.Skills = cloneSlice(c.Skills)
	return c, true
}

// Has reports whether a category with the id exists.
func (s SkillSet) Has(id string) bool {
	return s.index(id) >= 0
}

// Put inserts the category at the end, or replaces an existing one in place.
func (s *SkillSet) Put(c SkillCategory) {
	c.Skills = cloneSlice(c.Skills)
	if i := s.index(c.ID); i >= 0 {
		s.cats[i] = c
		return
	}
	s.cats = append(s.cats, c)
}

// Remove deletes the category with the id and reports whether it existed.
func (s *SkillSet) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.cats = append(s.cats[:i], s.cats[i+1:]...)
	return true
}

// Categories returns copies of all categories in insertion order.
func (s SkillSet) Categories() []SkillCategory {
	out := make([]SkillCategory, len(s.cats))
	for i, c := range s.cats {
		c.Skills = cloneSlice(c.Skills)
		out[i] = c
	}
	return out
}

// Len returns the number of categories.
func (s SkillSet) Len() int { return len(s.cats) }

// Clone returns a deep copy.
func (s SkillSet) Clone() SkillSet {
	if s.cats == nil {
		return SkillSet{}
	}
	return SkillSet{cats: s.Categories()}
}

// MarshalJSON writes the set as an object whose keys follow insertion order.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.cats {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of categories keeping the key order.
// A category without an id takes its key as id.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	s.cats = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", tok)
		}
		var c SkillCategory
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("skills: category %q: %w", key, err)
		}
		if c.ID == "" {
			c.ID = key
		}
		s.Put(c)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
