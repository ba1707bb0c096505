package data

// List is an ordered collection of top-level data items of one declared
// type, with pagination bookkeeping. The counters are opaque strings the
// service supplies; this layer neither parses nor validates them.
type List struct {
	containDataOfType string
	items             []Child
	totalNo           string
	fromNo            string
	toNo              string
}

// NewList creates an empty list declared to contain items of the given type.
func NewList(containDataOfType string) *List {
	return &List{containDataOfType: containDataOfType}
}

func (l *List) ContainDataOfType() string { return l.containDataOfType }

// AddData appends an item. Nil items are dropped.
func (l *List) AddData(c Child) {
	if c == nil {
		return
	}
	l.items = append(l.items, c)
}

// Data returns the items in insertion order. The slice is shared, not a copy.
func (l *List) Data() []Child { return l.items }

func (l *List) SetTotalNo(n string) { l.totalNo = n }
func (l *List) TotalNo() string     { return l.totalNo }

func (l *List) SetFromNo(n string) { l.fromNo = n }
func (l *List) FromNo() string     { return l.fromNo }

func (l *List) SetToNo(n string) { l.toNo = n }
func (l *List) ToNo() string     { return l.toNo }
