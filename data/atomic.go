package data

// Atomic is a leaf node holding a single string value.
// Name and value are fixed at construction; repeatID and attributes are mutable.
type Atomic struct {
	element
	value string
}

// NewAtomic creates a leaf node with the given name and value.
func NewAtomic(name, value string) *Atomic {
	return &Atomic{element: element{name: name}, value: value}
}

// NewAtomicWithRepeatID creates a leaf node with a repeat id set.
func NewAtomicWithRepeatID(name, value, repeatID string) *Atomic {
	a := NewAtomic(name, value)
	a.SetRepeatID(repeatID)
	return a
}

func (a *Atomic) Value() string { return a.value }
