package rotary

// ElementKind tags an element's capability, resolved once at construction.
type ElementKind uint8

const (
	// Leaf is an ordinary focusable control.
	Leaf ElementKind = iota
	// Scrollable is a scrolling container holding one level of item
	// elements. The container itself is usually not focusable; its items
	// are the focus targets.
	Scrollable
)

// Element is an atom of focus. Fields other than ID and Kind may be
// mutated at any time; validity is re-checked on every query.
type Element struct {
	ID     string
	Kind   ElementKind
	Bounds Rect

	Focusable bool
	Enabled   bool
	Visible   bool

	// Selected marks the current item of a scrollable container.
	Selected bool
	// FocusedByDefault marks an element to receive focus preemptively
	// when its area is entered with no stronger signal.
	FocusedByDefault bool

	// Items holds a scrollable container's children, in traversal order.
	Items []*Element
}

// NewElement creates a focusable, enabled, visible leaf element.
func NewElement(id string) *Element {
	return &Element{ID: id, Kind: Leaf, Focusable: true, Enabled: true, Visible: true}
}

// NewScrollable creates a scrollable container with the given items.
// The container itself does not take focus.
func NewScrollable(id string, items ...*Element) *Element {
	return &Element{ID: id, Kind: Scrollable, Enabled: true, Visible: true, Items: items}
}

// At sets the element's bounds and returns it for chaining.
func (e *Element) At(left, top, right, bottom int) *Element {
	e.Bounds = R(left, top, right, bottom)
	return e
}

// Select marks the element selected and returns it for chaining.
func (e *Element) Select() *Element {
	e.Selected = true
	return e
}

// ByDefault marks the element focused-by-default and returns it for chaining.
func (e *Element) ByDefault() *Element {
	e.FocusedByDefault = true
	return e
}

// CanTakeFocus reports whether the element is a valid focus target:
// focusable, enabled, visible, and with positive-size bounds.
func (e *Element) CanTakeFocus() bool {
	return e.Focusable && e.Enabled && e.Visible && !e.Bounds.Empty()
}
