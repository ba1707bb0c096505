package data

import "fmt"

const (
	childLinkedRecordType = "linkedRecordType"
	childLinkedRecordID   = "linkedRecordId"
)

// RecordLink is a group that references another record by type and id.
// It always carries two atomic children, linkedRecordType and linkedRecordId.
// Declared actions are conversion-scoped bookkeeping, not part of the tree:
// callers populate them before converting and they are never persisted.
type RecordLink struct {
	Group
	actions map[Action]struct{}
}

// NewRecordLink creates a link named name pointing at the record
// linkedType/linkedID.
func NewRecordLink(name, linkedType, linkedID string) *RecordLink {
	l := &RecordLink{Group: Group{element: element{name: name}}}
	l.AddChild(NewAtomic(childLinkedRecordType, linkedType))
	l.AddChild(NewAtomic(childLinkedRecordID, linkedID))
	return l
}

// RecordLinkFromGroup adopts an existing group as a record link. The group
// must already carry the two mandatory atomic children; a group missing
// either fails immediately. The returned link owns the group's children.
func RecordLinkFromGroup(g *Group) (*RecordLink, error) {
	for _, name := range []string{childLinkedRecordType, childLinkedRecordID} {
		if _, err := g.FirstAtomicValueWithName(name); err != nil {
			return nil, fmt.Errorf("group %q is not a record link: %w", g.NameInData(), err)
		}
	}
	return &RecordLink{Group: *g}, nil
}

func (l *RecordLink) LinkedRecordType() string {
	v, _ := l.FirstAtomicValueWithName(childLinkedRecordType)
	return v
}

func (l *RecordLink) LinkedRecordID() string {
	v, _ := l.FirstAtomicValueWithName(childLinkedRecordID)
	return v
}

// AddAction declares that the linked record supports an action.
func (l *RecordLink) AddAction(a Action) {
	if l.actions == nil {
		l.actions = make(map[Action]struct{})
	}
	l.actions[a] = struct{}{}
}

func (l *RecordLink) HasAction(a Action) bool {
	_, ok := l.actions[a]
	return ok
}
