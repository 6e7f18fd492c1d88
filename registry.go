package rotary

import "fmt"

// Registry owns the set of registered areas and answers containment and
// bounds queries. It is not safe for concurrent use; callers that share a
// registry across goroutines must serialize access externally.
type Registry struct {
	areas map[string]*Area
	order []string          // registration order, for deterministic iteration
	owner map[string]string // element id -> area id
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		areas: make(map[string]*Area),
		owner: make(map[string]string),
	}
}

// RegisterArea adds an area. It fails with DuplicateAreaError if the id is
// taken, and with a plain error if any member element id is already owned
// by a registered area or repeats within this one. On failure the registry
// is unchanged.
func (r *Registry) RegisterArea(a *Area) error {
	if _, ok := r.areas[a.ID]; ok {
		return DuplicateAreaError{ID: a.ID}
	}

	ids := make([]string, 0, len(a.Members))
	seen := make(map[string]bool)
	var collect func(es []*Element) error
	collect = func(es []*Element) error {
		for _, e := range es {
			if seen[e.ID] {
				return fmt.Errorf("duplicate element id %q in area %q", e.ID, a.ID)
			}
			if owner, ok := r.owner[e.ID]; ok {
				return fmt.Errorf("element id %q already registered to area %q", e.ID, owner)
			}
			seen[e.ID] = true
			ids = append(ids, e.ID)
			if err := collect(e.Items); err != nil {
				return err
			}
		}
		return nil
	}
	if err := collect(a.Members); err != nil {
		return err
	}

	r.areas[a.ID] = a
	r.order = append(r.order, a.ID)
	for _, id := range ids {
		r.owner[id] = a.ID
	}
	return nil
}

// UnregisterArea removes the area and its element ownership records.
// It is a no-op if the id is not registered.
func (r *Registry) UnregisterArea(id string) {
	a, ok := r.areas[id]
	if !ok {
		return
	}
	delete(r.areas, id)
	for i, aid := range r.order {
		if aid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for eid, owner := range r.owner {
		if owner == a.ID {
			delete(r.owner, eid)
		}
	}
}

// Area returns the registered area with the given id.
func (r *Registry) Area(id string) (*Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return a, nil
}

// ContainingArea returns the area owning the given element.
func (r *Registry) ContainingArea(elementID string) (*Area, error) {
	aid, ok := r.owner[elementID]
	if !ok {
		return nil, NotFoundError{ID: elementID}
	}
	return r.areas[aid], nil
}

// Element returns the registered element with the given id.
func (r *Registry) Element(id string) (*Element, error) {
	a, err := r.ContainingArea(id)
	if err != nil {
		return nil, err
	}
	e := a.Element(id)
	if e == nil {
		return nil, NotFoundError{ID: id}
	}
	return e, nil
}

// EffectiveBounds returns the area's bounds adjusted by its bounds offset,
// as used by adjacency search.
func (r *Registry) EffectiveBounds(areaID string) (Rect, error) {
	a, err := r.Area(areaID)
	if err != nil {
		return Rect{}, err
	}
	return a.EffectiveBounds(), nil
}

// Areas returns the registered areas in registration order.
func (r *Registry) Areas() []*Area {
	out := make([]*Area, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.areas[id])
	}
	return out
}

// Len returns the number of registered areas.
func (r *Registry) Len() int {
	return len(r.areas)
}
