package rotary

// ResolveNudge determines where a nudge from the given area should land.
// Exactly one of the returned element and area is non-nil on success:
//
//   - a same-area nudge shortcut target (element), which the caller focuses
//     without leaving the area
//   - an area to transfer focus into, found by a configured adjacency
//     override or, failing that, by spatial search over effective bounds
//
// A shortcut whose target already holds focus is skipped so that repeated
// nudges in that direction can escape to another area instead of looping on
// the shortcut. An unresolvable nudge fails with NoAdjacentAreaError; the
// caller should leave focus unchanged.
func ResolveNudge(reg *Registry, from *Area, focusedID string, d Direction) (*Element, *Area, error) {
	if id, ok := from.Shortcut(d); ok {
		if target := visibleTarget(from, id); target != nil && target.ID != focusedID {
			return target, nil, nil
		}
	}

	if id, ok := from.Override(d); ok {
		a, err := reg.Area(id)
		if err != nil {
			return nil, nil, err
		}
		return nil, a, nil
	}

	src := from.EffectiveBounds()
	var best *Area
	bestDist, bestPerp := 0, 0
	for _, cand := range reg.Areas() {
		if cand.ID == from.ID {
			continue
		}
		b := cand.EffectiveBounds()
		if b.Empty() || !inDirection(src, b, d) {
			continue
		}
		dist := cornerDist2(src, b)
		perp := perpOffset(src, b, d)
		if best == nil || dist < bestDist || (dist == bestDist && perp < bestPerp) {
			best, bestDist, bestPerp = cand, dist, perp
		}
	}
	if best == nil {
		return nil, nil, NoAdjacentAreaError{AreaID: from.ID, Direction: d}
	}
	return nil, best, nil
}

// inDirection reports whether cand lies in the half-plane on the given side
// of src.
func inDirection(src, cand Rect, d Direction) bool {
	switch d {
	case Right:
		return cand.Left >= src.Right
	case Left:
		return cand.Right <= src.Left
	case Up:
		return cand.Bottom <= src.Top
	case Down:
		return cand.Top >= src.Bottom
	}
	return false
}

// cornerDist2 returns the squared Euclidean distance between the closest
// corners of the two rects. Squared distances order the same as distances
// and keep the math in integers.
func cornerDist2(a, b Rect) int {
	best := -1
	for _, ca := range a.corners() {
		for _, cb := range b.corners() {
			dx := ca[0] - cb[0]
			dy := ca[1] - cb[1]
			d := dx*dx + dy*dy
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

// perpOffset measures the off-axis displacement between the midpoints of
// src and cand, used to break distance ties.
func perpOffset(src, cand Rect, d Direction) int {
	var off int
	if d.Horizontal() {
		off = src.CenterY() - cand.CenterY()
	} else {
		off = src.CenterX() - cand.CenterX()
	}
	if off < 0 {
		return -off
	}
	return off
}
