package rotary

import (
	"errors"
	"testing"
)

func TestRegisterDuplicateArea(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterArea(NewArea("bar", NewElement("a").At(0, 0, 10, 10))); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.RegisterArea(NewArea("bar"))
	var dup DuplicateAreaError
	if !errors.As(err, &dup) || dup.ID != "bar" {
		t.Errorf("want DuplicateAreaError for bar, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("failed registration mutated registry: %d areas", r.Len())
	}
}

func TestRegisterDuplicateElement(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterArea(NewArea("a", NewElement("x"))); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.RegisterArea(NewArea("b", NewElement("x"))); err == nil {
		t.Errorf("element id claimed by two areas should be rejected")
	}
	if err := r.RegisterArea(NewArea("c", NewElement("y"), NewElement("y"))); err == nil {
		t.Errorf("repeated element id within an area should be rejected")
	}
	// Failed registrations must not leak ownership records.
	if _, err := r.ContainingArea("y"); err == nil {
		t.Errorf("element y should not be registered")
	}
}

func TestContainingArea(t *testing.T) {
	r := NewRegistry()
	list := NewScrollable("list", NewElement("row1"), NewElement("row2"))
	if err := r.RegisterArea(NewArea("menu", NewElement("back"), list)); err != nil {
		t.Fatalf("register: %v", err)
	}

	a, err := r.ContainingArea("row2")
	if err != nil {
		t.Fatalf("ContainingArea(row2): %v", err)
	}
	if a.ID != "menu" {
		t.Errorf("row2 owned by %q, want menu", a.ID)
	}

	_, err = r.ContainingArea("ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("want NotFoundError for unknown element, got %v", err)
	}
}

func TestUnregisterArea(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterArea(NewArea("a", NewElement("x"))); err != nil {
		t.Fatalf("register: %v", err)
	}
	r.UnregisterArea("a")
	if _, err := r.Area("a"); err == nil {
		t.Errorf("area a should be gone")
	}
	if _, err := r.ContainingArea("x"); err == nil {
		t.Errorf("element x should be unowned after unregister")
	}

	// No-op for unknown ids.
	r.UnregisterArea("a")

	// The id is free for a fresh area.
	if err := r.RegisterArea(NewArea("a", NewElement("x2"))); err != nil {
		t.Errorf("re-register after unregister: %v", err)
	}
}

func TestEffectiveBounds(t *testing.T) {
	r := NewRegistry()
	a := NewArea("a").At(10, 10, 50, 50).SetBoundsOffset(5, 0, 5, 0)
	if err := r.RegisterArea(a); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := r.EffectiveBounds("a")
	if err != nil {
		t.Fatalf("EffectiveBounds: %v", err)
	}
	want := R(5, 10, 55, 50)
	if got != want {
		t.Errorf("EffectiveBounds = %v, want %v", got, want)
	}
	// Rendering bounds are unaffected.
	if a.Bounds != R(10, 10, 50, 50) {
		t.Errorf("Bounds changed to %v", a.Bounds)
	}
}

func TestBoundsOffsetFallsBackToPadding(t *testing.T) {
	a := NewArea("a").At(0, 0, 20, 20).SetHighlightPadding(2, 3, 2, 3)
	if got, want := a.BoundsOffset(), (Insets{Left: 2, Top: 3, Right: 2, Bottom: 3}); got != want {
		t.Errorf("BoundsOffset = %v, want padding %v", got, want)
	}

	// An explicit offset wins over the padding fallback.
	a.SetBoundsOffset(0, 0, 0, 0)
	if got := a.BoundsOffset(); got != (Insets{}) {
		t.Errorf("explicit zero offset = %v, want zero", got)
	}
}
