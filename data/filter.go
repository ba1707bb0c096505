package data

// ChildFilter is a reusable predicate selecting children by name and
// attribute constraints. A candidate matches when its name equals the
// filter's name, its attribute count equals the number of constraints, and
// every one of its attributes satisfies some constraint (same name, value in
// the allowed set). This is the exact-match rule generalized to multiple
// allowed values per attribute.
type ChildFilter struct {
	name        string
	constraints []attributeConstraint
}

type attributeConstraint struct {
	name    string
	allowed map[string]struct{}
}

// NewChildFilter creates a filter for children with the given name and no
// attribute constraints (so it only matches attribute-less children).
func NewChildFilter(name string) *ChildFilter {
	return &ChildFilter{name: name}
}

// AddConstraint requires an attribute with the given name whose value is one
// of the allowed values. Each call adds one constraint; the candidate must
// carry exactly as many attributes as there are constraints.
func (f *ChildFilter) AddConstraint(attrName string, allowed ...string) *ChildFilter {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	f.constraints = append(f.constraints, attributeConstraint{name: attrName, allowed: set})
	return f
}

// Matches reports whether the candidate satisfies the filter.
func (f *ChildFilter) Matches(c Child) bool {
	if c.NameInData() != f.name {
		return false
	}
	attrs := c.Attributes()
	if len(attrs) != len(f.constraints) {
		return false
	}
	for _, a := range attrs {
		if !f.attributeAllowed(a) {
			return false
		}
	}
	return true
}

func (f *ChildFilter) attributeAllowed(a Attribute) bool {
	for _, con := range f.constraints {
		if con.name != a.Name {
			continue
		}
		if _, ok := con.allowed[a.Value]; ok {
			return true
		}
	}
	return false
}
