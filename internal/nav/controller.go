package nav

import (
	"go.abhg.dev/procnote/internal/curriculum"
	"go.abhg.dev/procnote/internal/must"
)

// ScrollResetter is told to return to the top of the page
// whenever the view changes.
type ScrollResetter interface {
	ResetScroll()
}

// ScrollResetterFunc adapts a function into a [ScrollResetter].
type ScrollResetterFunc func()

var _ ScrollResetter = ScrollResetterFunc(nil)

// ResetScroll calls f.
func (f ScrollResetterFunc) ResetScroll() { f() }

// Controller owns the current view of a catalog.
//
// The catalog order is the navigation order.
// Category grouping plays no part in it.
//
// The initial view is [Home].
// Views only change in response to explicit requests.
type Controller struct {
	// Scroll is told to reset on every navigation.
	// Optional.
	Scroll ScrollResetter

	catalog     *curriculum.Catalog
	current     ViewState
	sidebarOpen bool
}

// New builds a controller over the given catalog.
func New(catalog *curriculum.Catalog) *Controller {
	must.Truef(catalog != nil, "nav.New: catalog is required")
	return &Controller{catalog: catalog}
}

// Catalog returns the catalog this controller navigates.
func (c *Controller) Catalog() *curriculum.Catalog { return c.catalog }

// Current returns the current view.
func (c *Controller) Current() ViewState { return c.current }

// Resolve reports what the given request would navigate to,
// without navigating.
//
// Lesson(id) resolves to itself if id is in the catalog,
// and to NotFound(id) otherwise.
// Home and NotFound resolve to themselves.
func (c *Controller) Resolve(target ViewState) ViewState {
	switch target.kind {
	case LessonView:
		if _, _, ok := c.catalog.Lookup(target.id); ok {
			return target
		}
		return NotFound(target.id)
	case NotFoundView:
		return target
	default:
		return Home()
	}
}

// NavigateTo makes the resolved target the current view.
//
// Regardless of outcome, the scroll position is reset
// and the sidebar is closed.
// Unknown ids are not errors: they produce a NotFound view.
func (c *Controller) NavigateTo(target ViewState) ViewState {
	c.current = c.Resolve(target)
	c.sidebarOpen = false
	if c.Scroll != nil {
		c.Scroll.ResetScroll()
	}
	return c.current
}

// NavigateHome navigates to the overview.
func (c *Controller) NavigateHome() ViewState {
	return c.NavigateTo(Home())
}

// Start navigates to the first lesson in the catalog.
// With an empty catalog, it navigates Home.
func (c *Controller) Start() ViewState {
	if c.catalog.Len() == 0 {
		return c.NavigateHome()
	}
	return c.NavigateTo(Lesson(c.catalog.At(0).ID))
}

// Next returns the id of the lesson after id in catalog order.
// It returns false if id is the last lesson or is not in the catalog.
func (c *Controller) Next(id string) (string, bool) {
	_, idx, ok := c.catalog.Lookup(id)
	if !ok || idx+1 >= c.catalog.Len() {
		return "", false
	}
	return c.catalog.At(idx + 1).ID, true
}

// Prev returns the view before id in catalog order.
// That is Home for the first lesson, and for ids not in the catalog.
func (c *Controller) Prev(id string) ViewState {
	_, idx, ok := c.catalog.Lookup(id)
	if !ok || idx == 0 {
		return Home()
	}
	return Lesson(c.catalog.At(idx - 1).ID)
}

// Advance navigates to the lesson after the current one.
//
// It reports false and does nothing
// if the current lesson is the last one,
// or if the current view is not a lesson.
func (c *Controller) Advance() bool {
	if c.current.kind != LessonView {
		return false
	}
	next, ok := c.Next(c.current.id)
	if !ok {
		return false
	}
	c.NavigateTo(Lesson(next))
	return true
}

// Retreat navigates to the view before the current lesson.
// From the first lesson, that is Home.
//
// It reports false and does nothing
// if the current view is not a lesson.
func (c *Controller) Retreat() bool {
	if c.current.kind != LessonView {
		return false
	}
	c.NavigateTo(c.Prev(c.current.id))
	return true
}

// SidebarOpen reports whether the lesson sidebar is open.
func (c *Controller) SidebarOpen() bool { return c.sidebarOpen }

// ToggleSidebar opens the sidebar if it is closed, and closes it otherwise.
func (c *Controller) ToggleSidebar() { c.sidebarOpen = !c.sidebarOpen }

// CloseSidebar closes the sidebar.
func (c *Controller) CloseSidebar() { c.sidebarOpen = false }
