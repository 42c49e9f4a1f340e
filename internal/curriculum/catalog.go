package curriculum

import (
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/procnote/internal/must"
)

// Document references the externally owned content of a lesson.
// It is a slash-separated path inside the catalog's file system.
type Document string

// Lesson is a single unit of the curriculum.
type Lesson struct {
	// ID uniquely identifies the lesson in its catalog.
	// It is also used as the lesson's URL path.
	ID string

	Title       string
	Description string
	Category    Category

	// Content is the lesson body.
	Content Document
}

// Link is an external resource listed on the home page.
type Link struct {
	Title       string
	URL         string
	Description string
}

// Feature is a selling point of the curriculum shown on the home page.
type Feature struct {
	Title       string
	Description string
}

// Site holds metadata about the curriculum as a whole.
type Site struct {
	Title string

	// Edition is a short label shown next to the title,
	// e.g. "Interactive Guide v2.0".
	Edition string

	Tagline  string
	Features []Feature
	Links    []Link
}

// Catalog is an ordered, immutable collection of lessons.
//
// Catalog order is the navigation order.
// It is independent of how lessons are grouped into categories.
type Catalog struct {
	site    Site
	lessons []Lesson
	index   map[string]int // lesson ID => position in lessons
}

// New builds a catalog from the given lessons, in order.
//
// It fails if any two lessons share an ID,
// or if a lesson is missing its ID or title,
// or has an unknown category.
func New(site Site, lessons ...Lesson) (*Catalog, error) {
	c := Catalog{
		site:    site,
		lessons: make([]Lesson, len(lessons)),
		index:   make(map[string]int, len(lessons)),
	}
	copy(c.lessons, lessons)
	c.site.Links = append([]Link(nil), site.Links...)
	c.site.Features = append([]Feature(nil), site.Features...)

	var errs []error
	for i, l := range c.lessons {
		name := fmt.Sprintf("lesson %q", l.ID)
		if len(l.ID) == 0 {
			name = fmt.Sprintf("lesson %d", i)
		}

		if err := validateLesson(l); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", name, err))
			continue
		}
		if prev, ok := c.index[l.ID]; ok {
			errs = append(errs, fmt.Errorf("%v: id already used by lesson %d", name, prev))
			continue
		}
		c.index[l.ID] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &c, nil
}

// MustNew is like [New] but panics if the lessons are invalid.
// Use it for catalogs built into the program.
func MustNew(site Site, lessons ...Lesson) *Catalog {
	c, err := New(site, lessons...)
	must.NotErrorf(err, "invalid catalog %q", site.Title)
	return c
}

func validateLesson(l Lesson) error {
	switch {
	case len(l.ID) == 0:
		return errors.New("id is required")
	case strings.ContainsAny(l.ID, "/\\ \t\n"):
		return fmt.Errorf("id %q must not contain slashes or whitespace", l.ID)
	case strings.HasPrefix(l.ID, "_") || strings.HasPrefix(l.ID, "."):
		// _ holds static assets in generated sites.
		return fmt.Errorf("id %q must not start with '_' or '.'", l.ID)
	case len(strings.TrimSpace(l.Title)) == 0:
		return errors.New("title is required")
	case !l.Category.Valid():
		return fmt.Errorf("invalid category %v", l.Category)
	}
	return nil
}

// Site returns metadata about the curriculum.
func (c *Catalog) Site() Site {
	s := c.site
	s.Links = append([]Link(nil), c.site.Links...)
	s.Features = append([]Feature(nil), c.site.Features...)
	return s
}

// Len reports the number of lessons in the catalog.
func (c *Catalog) Len() int { return len(c.lessons) }

// At returns the lesson at position i.
// It panics if i is out of range.
func (c *Catalog) At(i int) Lesson { return c.lessons[i] }

// Lessons returns a copy of the lessons in catalog order.
func (c *Catalog) Lessons() []Lesson {
	return append([]Lesson(nil), c.lessons...)
}

// Lookup finds a lesson by ID,
// and reports its position in the catalog.
func (c *Catalog) Lookup(id string) (_ Lesson, idx int, ok bool) {
	idx, ok = c.index[id]
	if !ok {
		return Lesson{}, -1, false
	}
	return c.lessons[idx], idx, true
}

// Group is a category and the lessons in it.
type Group struct {
	Category Category
	Lessons  []Lesson
}

// Groups returns lessons grouped by category, in chapter order.
// Lessons retain their relative catalog order inside each group.
// Categories without lessons are omitted.
func (c *Catalog) Groups() []Group {
	byCat := make(map[Category][]Lesson)
	for _, l := range c.lessons {
		byCat[l.Category] = append(byCat[l.Category], l)
	}

	groups := make([]Group, 0, len(byCat))
	for _, cat := range Categories {
		if ls := byCat[cat]; len(ls) > 0 {
			groups = append(groups, Group{Category: cat, Lessons: ls})
		}
	}
	return groups
}
