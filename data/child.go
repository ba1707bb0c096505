// Package data models client-side record trees: groups, atomic values,
// record and resource links, lists, and records. Trees are built through the
// constructors and mutated only through the declared operations; they carry
// no parsing or network behavior of their own.
package data

// Attribute is an immutable name/value annotation on a node.
// Within one node the set of attributes is keyed by Name.
type Attribute struct {
	Name  string
	Value string
}

// Child is the capability shared by every node that can live inside a Group.
type Child interface {
	// NameInData returns the node's name. Never empty, never reassigned.
	NameInData() string
	// RepeatID distinguishes same-named siblings. Empty means absent.
	RepeatID() string
	SetRepeatID(repeatID string)
	// Attributes returns the node's attributes in insertion order.
	Attributes() []Attribute
	// AddAttribute adds an attribute, replacing any existing one with the same name.
	AddAttribute(name, value string)
	// AttributeValue reports the value of the named attribute, if present.
	AttributeValue(name string) (string, bool)
}

// element carries the state common to Atomic and Group.
type element struct {
	name     string
	repeatID string
	attrs    []Attribute
}

func (e *element) NameInData() string { return e.name }

func (e *element) RepeatID() string { return e.repeatID }

func (e *element) SetRepeatID(repeatID string) { e.repeatID = repeatID }

func (e *element) Attributes() []Attribute { return e.attrs }

func (e *element) AddAttribute(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i] = Attribute{Name: name, Value: value}
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
}

func (e *element) AttributeValue(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// hasExactAttributes reports whether c carries exactly the given attributes:
// same count, and every requested pair present. Extra or missing attributes
// both disqualify.
func hasExactAttributes(c Child, want []Attribute) bool {
	if len(c.Attributes()) != len(want) {
		return false
	}
	for _, w := range want {
		v, ok := c.AttributeValue(w.Name)
		if !ok || v != w.Value {
			return false
		}
	}
	return true
}
