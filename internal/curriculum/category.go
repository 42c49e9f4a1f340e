package curriculum

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Category groups lessons into chapters.
//
// The set of categories is fixed.
// Their order is the order in which chapters are listed.
type Category int

// Known categories, in chapter order.
const (
	Intro Category = iota + 1
	Logic
	Math
	Structure
	Advanced
)

// Categories lists all known categories in chapter order.
var Categories = []Category{Intro, Logic, Math, Structure, Advanced}

var _categoryInfo = map[Category]struct {
	key   string
	label string
}{
	Intro:     {"intro", "Chapter 1: Basics"},
	Logic:     {"logic", "Chapter 2: Logic"},
	Math:      {"math", "Chapter 3: Mathematics"},
	Structure: {"structure", "Chapter 4: Structure"},
	Advanced:  {"advanced", "Chapter 5: Advanced"},
}

// ParseCategory parses the key of a category, e.g. "intro".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if _categoryInfo[c].key == s {
			return c, nil
		}
	}
	return 0, errtrace.Wrap(fmt.Errorf("unknown category %q", s))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := _categoryInfo[c]
	return ok
}

// Key is the short machine-readable name of the category.
func (c Category) Key() string {
	if info, ok := _categoryInfo[c]; ok {
		return info.key
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// String returns the key of the category.
func (c Category) String() string { return c.Key() }

// Label is the full chapter label, e.g. "Chapter 1: Basics".
func (c Category) Label() string {
	return _categoryInfo[c].label
}

// Title is the part of the label after the chapter number,
// e.g. "Basics".
func (c Category) Title() string {
	label := c.Label()
	if _, title, ok := strings.Cut(label, ":"); ok {
		return strings.TrimSpace(title)
	}
	return label
}

// Number is the 1-based chapter number of the category,
// or 0 if the category is not valid.
func (c Category) Number() int {
	for i, cat := range Categories {
		if cat == c {
			return i + 1
		}
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errtrace.Wrap(fmt.Errorf("invalid category %d", int(c)))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*c = v
	return nil
}
