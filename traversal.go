package rotary

// FocusMode selects how an area is entered.
type FocusMode uint8

const (
	// ModeDefault prefers the area's configured default focus.
	ModeDefault FocusMode = iota
	// ModeFirst skips the configured default and starts from the
	// focused-by-default search.
	ModeFirst
)

// FirstFocus returns the element that should receive focus when the area is
// entered. The priority order, first satisfied wins:
//
//  1. the configured default focus (DEFAULT mode only)
//  2. the first focused-by-default element
//  3. the selected item of a scrollable container
//  4. the first focusable item inside a scrollable container
//  5. the first selected element anywhere in the area
//  6. the history entry for the area, unless stale
//  7. the first focusable element in traversal order
//
// Areas with DefaultFocusOverridesHistory cleared check history before
// everything else. All rules skip elements that cannot take focus, so a
// stale history entry silently falls through rather than erroring. When no
// rule matches, FirstFocus fails with NoFocusableTargetError.
func FirstFocus(a *Area, mode FocusMode, hist *History) (*Element, error) {
	if !a.DefaultFocusOverridesHistory {
		if e := historyTarget(a, hist); e != nil {
			return e, nil
		}
	}
	if mode == ModeDefault && a.DefaultFocusID != "" {
		if e := visibleTarget(a, a.DefaultFocusID); e != nil {
			return e, nil
		}
	}
	if e := a.find(func(e *Element) bool { return e.FocusedByDefault && e.CanTakeFocus() }); e != nil {
		return e, nil
	}
	if e := scrollableItem(a, true); e != nil {
		return e, nil
	}
	if e := scrollableItem(a, false); e != nil {
		return e, nil
	}
	if e := a.find(func(e *Element) bool { return e.Selected && e.CanTakeFocus() }); e != nil {
		return e, nil
	}
	if a.DefaultFocusOverridesHistory {
		if e := historyTarget(a, hist); e != nil {
			return e, nil
		}
	}
	if e := a.find((*Element).CanTakeFocus); e != nil {
		return e, nil
	}
	return nil, NoFocusableTargetError{AreaID: a.ID}
}

// historyTarget resolves the area's history entry to a live, valid element.
func historyTarget(a *Area, hist *History) *Element {
	if hist == nil {
		return nil
	}
	id, ok := hist.Last(a.ID)
	if !ok {
		return nil
	}
	return visibleTarget(a, id)
}

// visibleTarget returns the element with the given id if it can take focus
// and has no invisible ancestors.
func visibleTarget(a *Area, id string) *Element {
	return a.find(func(e *Element) bool { return e.ID == id && e.CanTakeFocus() })
}

// scrollableItem returns the first valid item inside a scrollable
// container, restricted to selected items when selectedOnly is set.
func scrollableItem(a *Area, selectedOnly bool) *Element {
	for _, m := range a.Members {
		if m.Kind != Scrollable || !m.Visible {
			continue
		}
		for _, it := range m.Items {
			if selectedOnly && !it.Selected {
				continue
			}
			if it.CanTakeFocus() {
				return it
			}
		}
	}
	return nil
}

// Rotate moves the given number of steps from the currently focused element
// in the area's traversal order, skipping elements that cannot take focus.
// Negative steps move backwards. At the ends of the order a wrap-around
// area continues from the other side; otherwise rotation clamps, returning
// the boundary element rather than an error. Fails with NotFoundError when
// currentID is not a valid target in the area (the caller should re-enter
// the area instead).
func Rotate(a *Area, currentID string, steps int) (*Element, error) {
	var targets []*Element
	idx := -1
	a.walk(func(e *Element) bool {
		if !e.CanTakeFocus() {
			return true
		}
		if e.ID == currentID {
			idx = len(targets)
		}
		targets = append(targets, e)
		return true
	})
	if idx < 0 {
		return nil, NotFoundError{ID: currentID}
	}

	n := len(targets)
	next := idx + steps
	if a.WrapAround {
		next = ((next % n) + n) % n
	} else if next < 0 {
		next = 0
	} else if next >= n {
		next = n - 1
	}
	return targets[next], nil
}
