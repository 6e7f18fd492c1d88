// Package rotary implements a focus navigation engine for a directional
// controller (rotary dial + nudges). UI elements are grouped into named
// focus areas; rotation moves focus between elements within the focused
// area, and nudges move focus between areas using shortcuts, configured
// adjacency, or spatial search. The engine only names focus targets — the
// host UI owns rendering and performs the actual focus transfer.
//
// The engine is designed for a single input-dispatch goroutine and does no
// internal locking.
package rotary

import "fmt"

// Event is a rotary input event handled by Engine.Dispatch. One of
// RotateEvent, NudgeEvent or FocusRequest.
type Event any

// RotateEvent is a rotary dial movement. Steps is the signed detent count;
// negative steps rotate backwards.
type RotateEvent struct {
	Steps int
}

// NudgeEvent is a one-shot directional input intended to move focus to a
// different area or to a shortcut element.
type NudgeEvent struct {
	Direction Direction
}

// FocusRequest asks for focus to enter a specific area.
type FocusRequest struct {
	AreaID string
	Mode   FocusMode
}

// Engine owns a Registry and a History and tracks the current focus. A host
// constructs one per UI surface and passes it around explicitly; there is
// no process-wide instance.
type Engine struct {
	reg  *Registry
	hist *History

	focused  string // element id, "" when nothing holds focus
	lastArea string // area of the last successful focus, for restore
	parking  *Element

	onChange func(*Element)
}

// NewEngine creates an engine with an empty registry and history.
func NewEngine() *Engine {
	return &Engine{reg: NewRegistry(), hist: NewHistory()}
}

// Registry returns the engine's focus area registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// History returns the engine's navigation history.
func (e *Engine) History() *History {
	return e.hist
}

// OnChange sets a callback fired whenever the focused element changes.
func (e *Engine) OnChange(fn func(*Element)) *Engine {
	e.onChange = fn
	return e
}

// Parking designates an element to hold focus when no real target can, in
// the way a focus parking view keeps focus from escaping a window. The
// parking element lives outside the registry and never enters history.
func (e *Engine) Parking(el *Element) *Engine {
	e.parking = el
	return e
}

// RegisterArea adds an area to the registry.
func (e *Engine) RegisterArea(a *Area) error {
	return e.reg.RegisterArea(a)
}

// UnregisterArea removes the area, purges its history entry, and clears the
// current focus if it lived inside the area. No-op if the id is unknown.
func (e *Engine) UnregisterArea(id string) {
	if e.focused != "" {
		if owner, err := e.reg.ContainingArea(e.focused); err == nil && owner.ID == id {
			e.focused = ""
		}
	}
	e.reg.UnregisterArea(id)
	e.hist.Drop(id)
}

// Focused returns the currently focused element, or nil when nothing holds
// focus. While parked this returns the parking element.
func (e *Engine) Focused() *Element {
	if e.focused == "" {
		return nil
	}
	if e.parking != nil && e.focused == e.parking.ID {
		return e.parking
	}
	el, err := e.reg.Element(e.focused)
	if err != nil {
		return nil
	}
	return el
}

// SetFocus records a focus transfer performed by the host (for example
// after a touch event), keeping the engine's state and history in sync.
func (e *Engine) SetFocus(elementID string) error {
	a, err := e.reg.ContainingArea(elementID)
	if err != nil {
		return err
	}
	el := visibleTarget(a, elementID)
	if el == nil {
		return fmt.Errorf("element %q cannot take focus", elementID)
	}
	e.moveTo(el, a)
	return nil
}

// Park moves focus to the parking element, hiding visible focus. Returns
// nil when no parking element is configured.
func (e *Engine) Park() *Element {
	if e.parking == nil {
		return nil
	}
	changed := e.focused != e.parking.ID
	e.focused = e.parking.ID
	if changed && e.onChange != nil {
		e.onChange(e.parking)
	}
	return e.parking
}

// RestoreFocus re-establishes focus after the focused element disappeared
// or became invalid (or when the engine never had focus). It re-enters the
// last focused area, then each registered area in order, and finally falls
// back to parking. Fails with NoFocusableTargetError when no target exists
// anywhere and no parking element is configured.
func (e *Engine) RestoreFocus() (*Element, error) {
	if cur := e.currentTarget(); cur != nil {
		return cur, nil
	}
	if e.lastArea != "" {
		if a, err := e.reg.Area(e.lastArea); err == nil {
			if el, err := FirstFocus(a, ModeDefault, e.hist); err == nil {
				return e.moveTo(el, a), nil
			}
		}
	}
	for _, a := range e.reg.Areas() {
		if el, err := FirstFocus(a, ModeDefault, e.hist); err == nil {
			return e.moveTo(el, a), nil
		}
	}
	if p := e.Park(); p != nil {
		return p, nil
	}
	return nil, NoFocusableTargetError{AreaID: e.lastArea}
}

// Dispatch handles one input event and returns the element that should
// receive focus. Errors leave the engine's focus state unchanged.
func (e *Engine) Dispatch(ev Event) (*Element, error) {
	switch ev := ev.(type) {
	case RotateEvent:
		return e.rotate(ev.Steps)
	case NudgeEvent:
		return e.nudge(ev.Direction)
	case FocusRequest:
		return e.focusArea(ev.AreaID, ev.Mode)
	}
	return nil, fmt.Errorf("unknown event %T", ev)
}

func (e *Engine) rotate(steps int) (*Element, error) {
	cur := e.currentTarget()
	if cur == nil {
		// The first detent after losing focus re-establishes it rather
		// than moving.
		return e.RestoreFocus()
	}
	a, err := e.reg.ContainingArea(cur.ID)
	if err != nil {
		return e.RestoreFocus()
	}
	el, err := Rotate(a, cur.ID, steps)
	if err != nil {
		return e.RestoreFocus()
	}
	return e.moveTo(el, a), nil
}

func (e *Engine) nudge(d Direction) (*Element, error) {
	cur := e.currentTarget()
	if cur == nil {
		return e.RestoreFocus()
	}
	from, err := e.reg.ContainingArea(cur.ID)
	if err != nil {
		return e.RestoreFocus()
	}
	el, target, err := ResolveNudge(e.reg, from, cur.ID, d)
	if err != nil {
		return nil, err
	}
	if el != nil {
		return e.moveTo(el, from), nil
	}
	entered, err := FirstFocus(target, ModeDefault, e.hist)
	if err != nil {
		return nil, err
	}
	return e.moveTo(entered, target), nil
}

func (e *Engine) focusArea(areaID string, mode FocusMode) (*Element, error) {
	a, err := e.reg.Area(areaID)
	if err != nil {
		return nil, err
	}
	el, err := FirstFocus(a, mode, e.hist)
	if err != nil {
		return nil, err
	}
	return e.moveTo(el, a), nil
}

// currentTarget returns the focused element when it is still a valid
// target, nil otherwise. Parked focus counts as no focus so the next event
// restores instead of rotating the parking element.
func (e *Engine) currentTarget() *Element {
	if e.focused == "" {
		return nil
	}
	if e.parking != nil && e.focused == e.parking.ID {
		return nil
	}
	a, err := e.reg.ContainingArea(e.focused)
	if err != nil {
		return nil
	}
	return visibleTarget(a, e.focused)
}

// moveTo commits a focus move, recording history and firing OnChange.
func (e *Engine) moveTo(el *Element, a *Area) *Element {
	changed := e.focused != el.ID
	e.focused = el.ID
	e.lastArea = a.ID
	e.hist.Record(a.ID, el.ID)
	if changed && e.onChange != nil {
		e.onChange(el)
	}
	return el
}
