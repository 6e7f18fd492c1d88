package rotary

// Rect is an axis-aligned rectangle in the coordinate space of the UI,
// with the origin at the top-left. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// R is shorthand for constructing a Rect.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rect has no positive area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Grow returns the rect expanded outward by the given insets.
// Negative insets shrink the rect.
func (r Rect) Grow(in Insets) Rect {
	return Rect{
		Left:   r.Left - in.Left,
		Top:    r.Top - in.Top,
		Right:  r.Right + in.Right,
		Bottom: r.Bottom + in.Bottom,
	}
}

// Translate returns the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// CenterX returns the horizontal midpoint of the rect.
func (r Rect) CenterX() int {
	return (r.Left + r.Right) / 2
}

// CenterY returns the vertical midpoint of the rect.
func (r Rect) CenterY() int {
	return (r.Top + r.Bottom) / 2
}

// corners returns the four corner points of the rect.
func (r Rect) corners() [4][2]int {
	return [4][2]int{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Left, r.Bottom},
		{r.Right, r.Bottom},
	}
}

// Insets holds four edge offsets, used for highlight padding and for the
// bound offsets applied during adjacency calculations.
type Insets struct {
	Left, Top, Right, Bottom int
}
