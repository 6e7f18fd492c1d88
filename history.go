package rotary

// History caches the last-focused element per area, so that re-entering an
// area can land where the user left off. Staleness is not tracked here:
// traversal re-validates the cached element against the live area and
// silently falls through when it has gone away or can no longer take focus.
type History struct {
	last map[string]string // area id -> element id
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{last: make(map[string]string)}
}

// Record remembers elementID as the last focus within areaID.
func (h *History) Record(areaID, elementID string) {
	h.last[areaID] = elementID
}

// Last returns the last-focused element id for the area, if any.
func (h *History) Last(areaID string) (string, bool) {
	id, ok := h.last[areaID]
	return id, ok
}

// Drop removes the entry for the area. Called when the area's subtree is
// torn down so a later area with the same id starts clean.
func (h *History) Drop(areaID string) {
	delete(h.last, areaID)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.last = make(map[string]string)
}
