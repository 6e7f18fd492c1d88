package rotary

import "testing"

func TestRectEmpty(t *testing.T) {
	if R(0, 0, 10, 10).Empty() {
		t.Errorf("10x10 rect should not be empty")
	}
	if !R(5, 5, 5, 10).Empty() {
		t.Errorf("zero-width rect should be empty")
	}
	if !R(5, 5, 10, 5).Empty() {
		t.Errorf("zero-height rect should be empty")
	}
	if !(Rect{}).Empty() {
		t.Errorf("zero rect should be empty")
	}
}

func TestRectGrow(t *testing.T) {
	r := R(10, 10, 20, 20).Grow(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4})
	want := R(9, 8, 23, 24)
	if r != want {
		t.Errorf("Grow = %v, want %v", r, want)
	}

	// Negative insets shrink.
	r = R(10, 10, 20, 20).Grow(Insets{Left: -2, Top: -2, Right: -2, Bottom: -2})
	want = R(12, 12, 18, 18)
	if r != want {
		t.Errorf("Grow with negative insets = %v, want %v", r, want)
	}
}

func TestRectTranslate(t *testing.T) {
	r := R(0, 0, 10, 10).Translate(-5, 7)
	want := R(-5, 7, 5, 17)
	if r != want {
		t.Errorf("Translate = %v, want %v", r, want)
	}
	if r.Width() != 10 || r.Height() != 10 {
		t.Errorf("Translate changed size: %dx%d", r.Width(), r.Height())
	}
}
