package rotary

// Area is a navigation block: a named grouping of elements that rotation
// traverses as a unit, and that nudges move between. Areas never nest —
// nesting would make traversal order and bounds ambiguous, so the registry
// rejects member ids that collide with other areas' members and the type
// itself cannot hold another Area.
type Area struct {
	ID      string
	Bounds  Rect
	Members []*Element

	// DefaultFocusID names the member that DEFAULT-mode entry prefers.
	DefaultFocusID string
	// WrapAround makes rotation continue from the other end at a boundary.
	WrapAround bool
	// DefaultFocusOverridesHistory gives the configured default focus
	// priority over the navigation history when entering the area.
	// It is set on new areas; clear it to let history win instead.
	DefaultFocusOverridesHistory bool

	highlightPadding Insets
	boundsOffset     Insets
	boundsOffsetSet  bool

	shortcuts map[Direction]string
	overrides map[Direction]string
}

// NewArea creates an area with the given members in traversal order.
func NewArea(id string, members ...*Element) *Area {
	return &Area{
		ID:                           id,
		Members:                      members,
		DefaultFocusOverridesHistory: true,
	}
}

// At sets the area's bounds and returns it for chaining.
func (a *Area) At(left, top, right, bottom int) *Area {
	a.Bounds = R(left, top, right, bottom)
	return a
}

// DefaultFocus names the member element that receives focus when the area
// is entered in DEFAULT mode.
func (a *Area) DefaultFocus(elementID string) *Area {
	a.DefaultFocusID = elementID
	return a
}

// Wrap enables wrap-around rotation at the ends of the traversal order.
func (a *Area) Wrap() *Area {
	a.WrapAround = true
	return a
}

// HistoryOverDefault lets a non-stale history entry take priority over the
// configured default focus when entering the area.
func (a *Area) HistoryOverDefault() *Area {
	a.DefaultFocusOverridesHistory = false
	return a
}

// NudgeShortcut makes a nudge in the given direction jump straight to the
// named member element without leaving the area. The target and direction
// always travel together; there is no way to configure one without the
// other.
func (a *Area) NudgeShortcut(d Direction, elementID string) *Area {
	if a.shortcuts == nil {
		a.shortcuts = make(map[Direction]string)
	}
	a.shortcuts[d] = elementID
	return a
}

// AdjacentArea overrides spatial adjacency search for the given direction,
// sending nudges straight to the named area.
func (a *Area) AdjacentArea(d Direction, areaID string) *Area {
	if a.overrides == nil {
		a.overrides = make(map[Direction]string)
	}
	a.overrides[d] = areaID
	return a
}

// SetHighlightPadding sets the padding of the area's focus highlight.
func (a *Area) SetHighlightPadding(left, top, right, bottom int) *Area {
	a.highlightPadding = Insets{Left: left, Top: top, Right: right, Bottom: bottom}
	return a
}

// SetBoundsOffset sets the offset applied to the area's bounds during
// adjacency calculations. Rendering bounds are unaffected.
func (a *Area) SetBoundsOffset(left, top, right, bottom int) *Area {
	a.boundsOffset = Insets{Left: left, Top: top, Right: right, Bottom: bottom}
	a.boundsOffsetSet = true
	return a
}

// HighlightPadding returns the padding of the area's focus highlight.
// Exposed for rendering and for accessibility consumers.
func (a *Area) HighlightPadding() Insets {
	return a.highlightPadding
}

// BoundsOffset returns the offset used for adjacency calculations.
// When no offset was set explicitly it falls back to the highlight
// padding, matching how most areas want their visual margin ignored
// when measuring distance to a neighbour.
func (a *Area) BoundsOffset() Insets {
	if a.boundsOffsetSet {
		return a.boundsOffset
	}
	return a.highlightPadding
}

// EffectiveBounds returns the area's bounds grown by its bounds offset.
// Only adjacency search uses these; rendering uses Bounds directly.
func (a *Area) EffectiveBounds() Rect {
	return a.Bounds.Grow(a.BoundsOffset())
}

// Shortcut returns the nudge shortcut target for the direction, if any.
func (a *Area) Shortcut(d Direction) (string, bool) {
	id, ok := a.shortcuts[d]
	return id, ok
}

// Override returns the adjacency override target for the direction, if any.
func (a *Area) Override(d Direction) (string, bool) {
	id, ok := a.overrides[d]
	return id, ok
}

// walk visits the area's elements depth first in registration order,
// descending into scrollable containers. Invisible containers are skipped
// along with their items. Returns false from fn to stop early.
func (a *Area) walk(fn func(*Element) bool) {
	for _, m := range a.Members {
		if !visit(m, fn) {
			return
		}
	}
}

func visit(e *Element, fn func(*Element) bool) bool {
	if !e.Visible {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, item := range e.Items {
		if !visit(item, fn) {
			return false
		}
	}
	return true
}

// find returns the first element in traversal order matching pred.
func (a *Area) find(pred func(*Element) bool) *Element {
	var found *Element
	a.walk(func(e *Element) bool {
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// Element returns the member (or container item) with the given id.
func (a *Area) Element(id string) *Element {
	// Lookup must see invisible elements too, so walk the raw structure.
	var found *Element
	var search func(es []*Element) bool
	search = func(es []*Element) bool {
		for _, e := range es {
			if e.ID == id {
				found = e
				return true
			}
			if search(e.Items) {
				return true
			}
		}
		return false
	}
	search(a.Members)
	return found
}
