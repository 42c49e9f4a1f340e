// Package nav sequences lessons in catalog order
// and tracks which view a reader is looking at.
package nav

import "fmt"

// Kind is the kind of a [ViewState].
type Kind int

const (
	// HomeView is the curriculum overview.
	HomeView Kind = iota

	// LessonView is a single lesson.
	LessonView

	// NotFoundView is shown for ids that are not in the catalog.
	NotFoundView
)

func (k Kind) String() string {
	switch k {
	case HomeView:
		return "home"
	case LessonView:
		return "lesson"
	case NotFoundView:
		return "not-found"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ViewState is what a reader is looking at.
//
// The zero value is [Home].
type ViewState struct {
	kind Kind
	id   string
}

// Home is the curriculum overview.
func Home() ViewState { return ViewState{kind: HomeView} }

// Lesson is the lesson with the given id.
//
// A Lesson state is a request until the [Controller] resolves it.
// An id that is not in the catalog resolves to [NotFound].
func Lesson(id string) ViewState { return ViewState{kind: LessonView, id: id} }

// NotFound reports that id was requested but is not in the catalog.
func NotFound(id string) ViewState { return ViewState{kind: NotFoundView, id: id} }

// Kind reports the kind of view.
func (v ViewState) Kind() Kind { return v.kind }

// ID is the lesson id for Lesson views,
// and the requested id for NotFound views.
// It is empty for Home.
func (v ViewState) ID() string { return v.id }

// IsHome reports whether this is the Home view.
func (v ViewState) IsHome() bool { return v.kind == HomeView }

func (v ViewState) String() string {
	if v.kind == HomeView {
		return v.kind.String()
	}
	return fmt.Sprintf("%v(%q)", v.kind, v.id)
}
