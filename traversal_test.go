package rotary

import (
	"errors"
	"testing"
)

// barArea builds a three-button bar with every element valid.
func barArea(id string) *Area {
	return NewArea(id,
		NewElement("b1").At(0, 0, 10, 10),
		NewElement("b2").At(20, 0, 30, 10),
		NewElement("b3").At(40, 0, 50, 10),
	).At(0, 0, 50, 10)
}

func TestFirstFocusDefault(t *testing.T) {
	a := barArea("bar").DefaultFocus("b2")
	el, err := FirstFocus(a, ModeDefault, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b2" {
		t.Errorf("default focus = %q, want b2", el.ID)
	}
}

func TestFirstFocusDefaultFallsThrough(t *testing.T) {
	// The configured default can't take focus, so the search moves on.
	a := barArea("bar").DefaultFocus("b2")
	a.Members[1].Enabled = false
	el, err := FirstFocus(a, ModeDefault, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b1" {
		t.Errorf("fell through to %q, want b1", el.ID)
	}
}

func TestFirstFocusModeFirstSkipsDefault(t *testing.T) {
	a := barArea("bar").DefaultFocus("b3")
	el, err := FirstFocus(a, ModeFirst, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID == "b3" {
		t.Errorf("FIRST mode honored the default focus")
	}
	if el.ID != "b1" {
		t.Errorf("FIRST mode = %q, want b1", el.ID)
	}
}

func TestFirstFocusFocusedByDefault(t *testing.T) {
	a := NewArea("bar",
		NewElement("b1").At(0, 0, 10, 10),
		NewElement("b2").At(20, 0, 30, 10).ByDefault(),
	).At(0, 0, 30, 10)
	el, err := FirstFocus(a, ModeFirst, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b2" {
		t.Errorf("focused-by-default = %q, want b2", el.ID)
	}
}

func TestFirstFocusSelectedInScrollable(t *testing.T) {
	// Scenario: bottom-bar with E1, E2 (selected), E3. FIRST mode with no
	// default must land on E2 by the selected-item rule, not E1.
	a := NewArea("bottom-bar",
		NewScrollable("list",
			NewElement("E1").At(0, 0, 10, 10),
			NewElement("E2").At(20, 0, 30, 10).Select(),
			NewElement("E3").At(40, 0, 50, 10),
		).At(0, 0, 50, 10),
	).At(0, 0, 50, 10)

	el, err := FirstFocus(a, ModeFirst, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "E2" {
		t.Errorf("selected-item rule = %q, want E2", el.ID)
	}
}

func TestFirstFocusFirstInScrollable(t *testing.T) {
	// No selection: the first focusable item in the scrollable container
	// wins over elements before it in traversal order that are outside one.
	list := NewScrollable("list",
		NewElement("row1").At(0, 10, 50, 20),
		NewElement("row2").At(0, 20, 50, 30),
	).At(0, 10, 50, 40)
	a := NewArea("page", list, NewElement("footer").At(0, 40, 50, 50)).At(0, 0, 50, 50)

	el, err := FirstFocus(a, ModeFirst, nil)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "row1" {
		t.Errorf("scrollable rule = %q, want row1", el.ID)
	}
}

func TestFirstFocusHistory(t *testing.T) {
	hist := NewHistory()
	hist.Record("bar", "b3")
	a := barArea("bar")

	el, err := FirstFocus(a, ModeDefault, hist)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b3" {
		t.Errorf("history = %q, want b3", el.ID)
	}
}

func TestFirstFocusStaleHistory(t *testing.T) {
	hist := NewHistory()
	hist.Record("bar", "gone")
	a := barArea("bar")

	el, err := FirstFocus(a, ModeDefault, hist)
	if err != nil {
		t.Fatalf("stale history should fall through, got %v", err)
	}
	if el.ID != "b1" {
		t.Errorf("stale history fell through to %q, want b1", el.ID)
	}

	// Hidden elements are stale too.
	hist.Record("bar", "b2")
	a.Members[1].Visible = false
	el, err = FirstFocus(a, ModeDefault, hist)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID == "b2" {
		t.Errorf("hidden history entry was returned")
	}
}

func TestDefaultOverridesHistory(t *testing.T) {
	hist := NewHistory()
	hist.Record("bar", "b3")

	// Default wins on a fresh area (override flag set).
	a := barArea("bar").DefaultFocus("b1")
	el, err := FirstFocus(a, ModeDefault, hist)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b1" {
		t.Errorf("default-over-history = %q, want b1", el.ID)
	}

	// With the flag cleared a non-stale history entry takes priority.
	b := barArea("bar").DefaultFocus("b1").HistoryOverDefault()
	el, err = FirstFocus(b, ModeDefault, hist)
	if err != nil {
		t.Fatalf("FirstFocus: %v", err)
	}
	if el.ID != "b3" {
		t.Errorf("history-over-default = %q, want b3", el.ID)
	}
}

func TestFirstFocusNeverFailsWithValidElement(t *testing.T) {
	// DEFAULT mode must find something whenever at least one valid
	// element exists, whatever else is configured.
	a := barArea("bar").DefaultFocus("ghost")
	a.Members[0].Enabled = false
	a.Members[2].Visible = false
	if _, err := FirstFocus(a, ModeDefault, nil); err != nil {
		t.Errorf("area with a valid element returned %v", err)
	}
}

func TestFirstFocusNoTarget(t *testing.T) {
	a := NewArea("empty").At(0, 0, 10, 10)
	_, err := FirstFocus(a, ModeDefault, nil)
	var nft NoFocusableTargetError
	if !errors.As(err, &nft) || nft.AreaID != "empty" {
		t.Errorf("want NoFocusableTargetError for empty, got %v", err)
	}
}

func TestRotate(t *testing.T) {
	a := barArea("bar")

	el, err := Rotate(a, "b1", 1)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if el.ID != "b2" {
		t.Errorf("rotate +1 = %q, want b2", el.ID)
	}

	el, _ = Rotate(a, "b3", -2)
	if el.ID != "b1" {
		t.Errorf("rotate -2 = %q, want b1", el.ID)
	}
}

func TestRotateSkipsInvalid(t *testing.T) {
	a := barArea("bar")
	a.Members[1].Enabled = false

	el, err := Rotate(a, "b1", 1)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if el.ID != "b3" {
		t.Errorf("rotate should skip disabled b2, got %q", el.ID)
	}
}

func TestRotateClampsWithoutWrap(t *testing.T) {
	a := barArea("bar")

	// Rotating past the end stays on the boundary element, and doing it
	// again doesn't move further.
	el, err := Rotate(a, "b3", 1)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if el.ID != "b3" {
		t.Errorf("rotate at end = %q, want b3", el.ID)
	}
	el, _ = Rotate(a, el.ID, 1)
	if el.ID != "b3" {
		t.Errorf("repeated rotate at end = %q, want b3", el.ID)
	}

	el, _ = Rotate(a, "b1", -1)
	if el.ID != "b1" {
		t.Errorf("rotate at start = %q, want b1", el.ID)
	}
}

func TestRotateWraps(t *testing.T) {
	a := barArea("bar").Wrap()

	el, err := Rotate(a, "b3", 1)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if el.ID != "b1" {
		t.Errorf("wrap forward = %q, want b1", el.ID)
	}

	el, _ = Rotate(a, "b1", -1)
	if el.ID != "b3" {
		t.Errorf("wrap backward = %q, want b3", el.ID)
	}
}

func TestRotateFromStaleCurrent(t *testing.T) {
	a := barArea("bar")
	_, err := Rotate(a, "ghost", 1)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("want NotFoundError for stale current, got %v", err)
	}
}
