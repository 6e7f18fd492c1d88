package rotary

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Layout file schema. Areas are declared flat — the schema has no way to
// nest one area inside another, which keeps the no-nesting rule
// unrepresentable rather than merely checked.
type layoutFile struct {
	Parking *layoutElement `toml:"parking"`
	Areas   []layoutArea   `toml:"area"`
}

type layoutArea struct {
	ID     string `toml:"id"`
	Bounds []int  `toml:"bounds"`
	Flow   string `toml:"flow"` // "", "row" or "column"
	Gap    int    `toml:"gap"`
	Wrap   bool   `toml:"wrap"`

	DefaultFocus       string `toml:"default_focus"`
	HistoryOverDefault bool   `toml:"history_over_default"`

	HighlightPadding           []int `toml:"highlight_padding"`
	HighlightPaddingHorizontal int   `toml:"highlight_padding_horizontal"`
	HighlightPaddingVertical   int   `toml:"highlight_padding_vertical"`

	BoundOffset           []int `toml:"bound_offset"`
	HorizontalBoundOffset *int  `toml:"horizontal_bound_offset"`
	VerticalBoundOffset   *int  `toml:"vertical_bound_offset"`

	NudgeShortcut          string `toml:"nudge_shortcut"`
	NudgeShortcutDirection string `toml:"nudge_shortcut_direction"`

	Adjacent map[string]string `toml:"adjacent"`

	Elements []layoutElement `toml:"element"`
}

type layoutElement struct {
	ID     string `toml:"id"`
	Bounds []int  `toml:"bounds"`
	Span   int    `toml:"span"` // share of a flow layout, default 1

	Focusable *bool `toml:"focusable"`
	Enabled   *bool `toml:"enabled"`
	Visible   *bool `toml:"visible"`

	Selected         bool `toml:"selected"`
	FocusedByDefault bool `toml:"focused_by_default"`

	Scrollable bool            `toml:"scrollable"`
	Items      []layoutElement `toml:"item"`
}

// LoadLayout reads a TOML layout file and returns an engine with all of its
// areas registered.
func LoadLayout(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	eng, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return eng, nil
}

// ParseLayout parses TOML layout data and returns an engine with all of its
// areas registered. The layout is validated: shortcut targets, default
// focus ids and adjacency overrides must resolve, and a nudge shortcut and
// its direction must be specified together.
func ParseLayout(data []byte) (*Engine, error) {
	var file layoutFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	eng := NewEngine()
	for i := range file.Areas {
		a, err := buildArea(&file.Areas[i])
		if err != nil {
			return nil, err
		}
		if err := eng.RegisterArea(a); err != nil {
			return nil, err
		}
	}

	// Adjacency overrides may point forward, so resolve them after every
	// area is registered.
	for _, a := range eng.Registry().Areas() {
		for _, d := range Directions {
			id, ok := a.Override(d)
			if !ok {
				continue
			}
			if _, err := eng.Registry().Area(id); err != nil {
				return nil, fmt.Errorf("area %q: adjacent %s: %w", a.ID, d, err)
			}
		}
	}

	if file.Parking != nil {
		p, err := buildElement(file.Parking)
		if err != nil {
			return nil, fmt.Errorf("parking: %w", err)
		}
		eng.Parking(p)
	}
	return eng, nil
}

func buildArea(la *layoutArea) (*Area, error) {
	if la.ID == "" {
		return nil, fmt.Errorf("area without id")
	}

	members := make([]*Element, 0, len(la.Elements))
	for i := range la.Elements {
		el, err := buildElement(&la.Elements[i])
		if err != nil {
			return nil, fmt.Errorf("area %q: %w", la.ID, err)
		}
		members = append(members, el)
	}

	a := NewArea(la.ID, members...)
	if la.Bounds != nil {
		r, err := parseRect(la.Bounds)
		if err != nil {
			return nil, fmt.Errorf("area %q: bounds: %w", la.ID, err)
		}
		a.Bounds = r
	}
	if la.Wrap {
		a.Wrap()
	}
	if la.HistoryOverDefault {
		a.HistoryOverDefault()
	}

	if la.DefaultFocus != "" {
		if a.Element(la.DefaultFocus) == nil {
			return nil, fmt.Errorf("area %q: default_focus %q is not a member", la.ID, la.DefaultFocus)
		}
		a.DefaultFocus(la.DefaultFocus)
	}

	if (la.NudgeShortcut == "") != (la.NudgeShortcutDirection == "") {
		return nil, fmt.Errorf("area %q: nudge_shortcut and nudge_shortcut_direction must be specified together", la.ID)
	}
	if la.NudgeShortcut != "" {
		d, err := ParseDirection(la.NudgeShortcutDirection)
		if err != nil {
			return nil, fmt.Errorf("area %q: nudge_shortcut_direction: %w", la.ID, err)
		}
		if a.Element(la.NudgeShortcut) == nil {
			return nil, fmt.Errorf("area %q: nudge_shortcut %q is not a member", la.ID, la.NudgeShortcut)
		}
		a.NudgeShortcut(d, la.NudgeShortcut)
	}

	for name, target := range la.Adjacent {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("area %q: adjacent: %w", la.ID, err)
		}
		a.AdjacentArea(d, target)
	}

	// Highlight padding: the full four-value form wins, otherwise the
	// horizontal/vertical shorthands fill each edge.
	if la.HighlightPadding != nil {
		in, err := parseInsets(la.HighlightPadding)
		if err != nil {
			return nil, fmt.Errorf("area %q: highlight_padding: %w", la.ID, err)
		}
		a.SetHighlightPadding(in.Left, in.Top, in.Right, in.Bottom)
	} else if la.HighlightPaddingHorizontal != 0 || la.HighlightPaddingVertical != 0 {
		h, v := la.HighlightPaddingHorizontal, la.HighlightPaddingVertical
		a.SetHighlightPadding(h, v, h, v)
	}

	// Bound offsets resolve the same way, and when absent entirely the
	// area falls back to its highlight padding (see Area.BoundsOffset).
	if la.BoundOffset != nil {
		in, err := parseInsets(la.BoundOffset)
		if err != nil {
			return nil, fmt.Errorf("area %q: bound_offset: %w", la.ID, err)
		}
		a.SetBoundsOffset(in.Left, in.Top, in.Right, in.Bottom)
	} else if la.HorizontalBoundOffset != nil || la.VerticalBoundOffset != nil {
		var h, v int
		if la.HorizontalBoundOffset != nil {
			h = *la.HorizontalBoundOffset
		}
		if la.VerticalBoundOffset != nil {
			v = *la.VerticalBoundOffset
		}
		a.SetBoundsOffset(h, v, h, v)
	}

	if la.Flow != "" {
		if err := flowBounds(a, la); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func buildElement(le *layoutElement) (*Element, error) {
	if le.ID == "" {
		return nil, fmt.Errorf("element without id")
	}

	var el *Element
	if le.Scrollable {
		items := make([]*Element, 0, len(le.Items))
		for i := range le.Items {
			it, err := buildElement(&le.Items[i])
			if err != nil {
				return nil, fmt.Errorf("scrollable %q: %w", le.ID, err)
			}
			items = append(items, it)
		}
		el = NewScrollable(le.ID, items...)
	} else {
		if len(le.Items) > 0 {
			return nil, fmt.Errorf("element %q has items but is not scrollable", le.ID)
		}
		el = NewElement(le.ID)
	}

	if le.Bounds != nil {
		r, err := parseRect(le.Bounds)
		if err != nil {
			return nil, fmt.Errorf("element %q: bounds: %w", le.ID, err)
		}
		el.Bounds = r
	}
	if le.Focusable != nil {
		el.Focusable = *le.Focusable
	}
	if le.Enabled != nil {
		el.Enabled = *le.Enabled
	}
	if le.Visible != nil {
		el.Visible = *le.Visible
	}
	el.Selected = le.Selected
	el.FocusedByDefault = le.FocusedByDefault
	return el, nil
}

// flowBounds distributes the area's bounds across members that declared no
// bounds of their own. A "row" flow splits the width into span-weighted
// shares separated by the gap; "column" does the same with the height.
func flowBounds(a *Area, la *layoutArea) error {
	row := false
	switch la.Flow {
	case "row":
		row = true
	case "column":
	default:
		return fmt.Errorf("area %q: unknown flow %q", la.ID, la.Flow)
	}

	var pending []*Element
	var spans []int
	units := 0
	for i, el := range a.Members {
		if !el.Bounds.Empty() {
			continue
		}
		span := la.Elements[i].Span
		if span <= 0 {
			span = 1
		}
		units += span
		pending = append(pending, el)
		spans = append(spans, span)
	}
	if len(pending) == 0 {
		return nil
	}

	total := a.Bounds.Width()
	if !row {
		total = a.Bounds.Height()
	}
	total -= la.Gap * (len(pending) - 1)
	if total < units {
		return fmt.Errorf("area %q: bounds too small for %s flow", la.ID, la.Flow)
	}

	per := total / units
	cursor := a.Bounds.Left
	if !row {
		cursor = a.Bounds.Top
	}
	for i, el := range pending {
		size := per * spans[i]
		if row {
			el.Bounds = R(cursor, a.Bounds.Top, cursor+size, a.Bounds.Bottom)
		} else {
			el.Bounds = R(a.Bounds.Left, cursor, a.Bounds.Right, cursor+size)
		}
		cursor += size + la.Gap
	}
	return nil
}

func parseRect(v []int) (Rect, error) {
	if len(v) != 4 {
		return Rect{}, fmt.Errorf("want [left, top, right, bottom], got %d values", len(v))
	}
	return R(v[0], v[1], v[2], v[3]), nil
}

func parseInsets(v []int) (Insets, error) {
	if len(v) != 4 {
		return Insets{}, fmt.Errorf("want [left, top, right, bottom], got %d values", len(v))
	}
	return Insets{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}
