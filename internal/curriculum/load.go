package curriculum

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk form of a catalog.
//
//	title: Processing Note
//	edition: Interactive Guide v2.0
//	tagline: ...
//	features:
//	  - title: Algorithmic Thinking
//	    description: ...
//	links:
//	  - title: Reference
//	    url: https://processing.org/reference/
//	lessons:
//	  - id: setup-draw
//	    title: ...
//	    category: intro
//	    content: lessons/setup-draw.html
type catalogFile struct {
	Title    string        `yaml:"title"`
	Edition  string        `yaml:"edition"`
	Tagline  string        `yaml:"tagline"`
	Features []featureFile `yaml:"features"`
	Links    []linkFile    `yaml:"links"`
	Lessons  []lessonFile  `yaml:"lessons"`
}

type featureFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type linkFile struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type lessonFile struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	Content     string   `yaml:"content"`
}

// Load reads a YAML catalog from the given file in fsys.
//
// Content paths in the catalog are relative to the directory
// holding the catalog file.
// Every referenced document must exist.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer f.Close()

	return errtrace.Wrap2(decode(fsys, path.Dir(name), f))
}

func decode(fsys fs.FS, dir string, r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errtrace.Wrap(errors.New("empty catalog"))
		}
		return nil, errtrace.Wrap(fmt.Errorf("decode catalog: %w", err))
	}

	site := Site{
		Title:   file.Title,
		Edition: file.Edition,
		Tagline: file.Tagline,
	}
	for _, f := range file.Features {
		site.Features = append(site.Features, Feature(f))
	}
	for _, l := range file.Links {
		site.Links = append(site.Links, Link(l))
	}

	lessons := make([]Lesson, len(file.Lessons))
	var errs []error
	for i, lf := range file.Lessons {
		doc := Document(path.Join(dir, lf.Content))
		if len(lf.Content) == 0 {
			errs = append(errs, fmt.Errorf("lesson %q: content is required", lf.ID))
		} else if _, err := fs.Stat(fsys, string(doc)); err != nil {
			errs = append(errs, fmt.Errorf("lesson %q: %w", lf.ID, err))
		}

		lessons[i] = Lesson{
			ID:          lf.ID,
			Title:       lf.Title,
			Description: lf.Description,
			Category:    lf.Category,
			Content:     doc,
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return errtrace.Wrap2(New(site, lessons...))
}

// ReadContent reads the document for the given lesson from fsys.
func ReadContent(fsys fs.FS, l Lesson) ([]byte, error) {
	bs, err := fs.ReadFile(fsys, string(l.Content))
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("lesson %q: %w", l.ID, err))
	}
	return bs, nil
}
