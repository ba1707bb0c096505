package data

import "fmt"

// Group is a composite node holding an ordered sequence of children.
// Sibling names may repeat; "first" queries return the earliest match.
// The children sequence never contains nil.
type Group struct {
	element
	children []Child
}

// NewGroup creates an empty composite node.
func NewGroup(name string) *Group {
	return &Group{element: element{name: name}}
}

// AsGroup returns the node viewed as a plain Group. On specializations that
// embed Group (RecordLink, ResourceLink, RecordGroup) the promoted method
// yields the embedded Group, so any of them can be handed to code that only
// understands plain groups.
func (g *Group) AsGroup() *Group { return g }

// AddChild appends a child. Nil children are dropped.
func (g *Group) AddChild(c Child) {
	if c == nil {
		return
	}
	g.children = append(g.children, c)
}

// AddChildren appends a batch of children in order.
func (g *Group) AddChildren(cs ...Child) {
	for _, c := range cs {
		g.AddChild(c)
	}
}

func (g *Group) HasChildren() bool { return len(g.children) > 0 }

// Children returns the ordered children. The slice is shared, not a copy.
func (g *Group) Children() []Child { return g.children }

func (g *Group) ContainsChildWithName(name string) bool {
	for _, c := range g.children {
		if c.NameInData() == name {
			return true
		}
	}
	return false
}

// FirstChildWithName returns the earliest child with the given name.
func (g *Group) FirstChildWithName(name string) (Child, error) {
	for _, c := range g.children {
		if c.NameInData() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("group %q has no child named %q: %w", g.name, name, ErrMissing)
}

// AllChildrenWithName returns every child with the given name, in order.
func (g *Group) AllChildrenWithName(name string) []Child {
	var out []Child
	for _, c := range g.children {
		if c.NameInData() == name {
			out = append(out, c)
		}
	}
	return out
}

// FirstAtomicValueWithName returns the value of the earliest atomic child
// with the given name.
func (g *Group) FirstAtomicValueWithName(name string) (string, error) {
	for _, c := range g.children {
		if a, ok := c.(*Atomic); ok && a.NameInData() == name {
			return a.Value(), nil
		}
	}
	return "", fmt.Errorf("group %q has no atomic child named %q: %w", g.name, name, ErrMissing)
}

// FirstGroupWithName returns the earliest group-kind child with the given
// name. Specializations embedding Group match and are returned as their
// plain-group view.
func (g *Group) FirstGroupWithName(name string) (*Group, error) {
	for _, c := range g.children {
		if c.NameInData() != name {
			continue
		}
		if gc, ok := c.(interface{ AsGroup() *Group }); ok {
			return gc.AsGroup(), nil
		}
	}
	return nil, fmt.Errorf("group %q has no group child named %q: %w", g.name, name, ErrMissing)
}

// AllGroupsWithNameAndAttributes returns every group-kind child with the
// given name whose attributes match the requested set exactly.
func (g *Group) AllGroupsWithNameAndAttributes(name string, attrs ...Attribute) []*Group {
	var out []*Group
	for _, c := range g.children {
		if c.NameInData() != name || !hasExactAttributes(c, attrs) {
			continue
		}
		if gc, ok := c.(interface{ AsGroup() *Group }); ok {
			out = append(out, gc.AsGroup())
		}
	}
	return out
}

// RemoveFirstChildWithName removes the earliest child with the given name.
// Reports whether anything was removed.
func (g *Group) RemoveFirstChildWithName(name string) bool {
	for i, c := range g.children {
		if c.NameInData() == name {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllChildrenWithName removes every child with the given name.
// Reports whether anything was removed.
func (g *Group) RemoveAllChildrenWithName(name string) bool {
	kept := g.children[:0]
	removed := false
	for _, c := range g.children {
		if c.NameInData() == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	g.children = kept
	return removed
}

// AllChildrenMatching returns every child accepted by the filter, in order.
func (g *Group) AllChildrenMatching(f *ChildFilter) []Child {
	var out []Child
	for _, c := range g.children {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// RemoveAllChildrenMatching removes every child accepted by the filter.
// Reports whether anything was removed.
func (g *Group) RemoveAllChildrenMatching(f *ChildFilter) bool {
	kept := g.children[:0]
	removed := false
	for _, c := range g.children {
		if f.Matches(c) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	g.children = kept
	return removed
}

// FirstChildOfType returns the earliest child with the given name, constrained
// to a concrete node kind. A name match of the wrong kind fails rather than
// being skipped.
func FirstChildOfType[T Child](g *Group, name string) (T, error) {
	var zero T
	for _, c := range g.children {
		if c.NameInData() != name {
			continue
		}
		t, ok := c.(T)
		if !ok {
			return zero, fmt.Errorf("child %q in group %q is a %T, not a %T: %w",
				name, g.name, c, zero, ErrMissing)
		}
		return t, nil
	}
	return zero, fmt.Errorf("group %q has no child named %q: %w", g.name, name, ErrMissing)
}
