package data

import "fmt"

const (
	recordTypeSearch     = "search"
	recordTypeRecordType = "recordType"
)

// Record wraps exactly one RecordGroup together with the action links the
// service granted and the read/write permissions the caller holds. Both
// permission sets are insertion-ordered and deduplicated.
type Record struct {
	group            *RecordGroup
	actionLinks      map[Action]ActionLink
	actionOrder      []Action
	readPermissions  []string
	writePermissions []string
}

// NewRecord wraps a record group.
func NewRecord(group *RecordGroup) *Record {
	return &Record{group: group}
}

// Group returns the wrapped record group.
func (r *Record) Group() *RecordGroup { return r.group }

// Type returns the wrapped group's record type.
func (r *Record) Type() (string, error) { return r.group.Type() }

// ID returns the wrapped group's record id.
func (r *Record) ID() (string, error) { return r.group.ID() }

// SearchID resolves the id to search under: the record's own id when the
// record is itself a search, or the id linked from a search child when the
// record is a recordType that declares one. Anything else is missing data.
func (r *Record) SearchID() (string, error) {
	recordType, err := r.Type()
	if err != nil {
		return "", err
	}
	switch recordType {
	case recordTypeSearch:
		return r.ID()
	case recordTypeRecordType:
		link, err := FirstChildOfType[*RecordLink](r.group.AsGroup(), recordTypeSearch)
		if err == nil {
			return link.LinkedRecordID(), nil
		}
	}
	return "", fmt.Errorf("record has no search id: %w", ErrMissing)
}

// AddActionLink stores a link, replacing any previous link for the same
// action. At most one link per action is ever held.
func (r *Record) AddActionLink(link ActionLink) {
	if r.actionLinks == nil {
		r.actionLinks = make(map[Action]ActionLink)
	}
	if _, exists := r.actionLinks[link.Action]; !exists {
		r.actionOrder = append(r.actionOrder, link.Action)
	}
	r.actionLinks[link.Action] = link
}

// ActionLinkFor returns the stored link for an action, if present.
func (r *Record) ActionLinkFor(a Action) (ActionLink, bool) {
	link, ok := r.actionLinks[a]
	return link, ok
}

// ActionLinks returns the stored links in the order their actions were first
// added.
func (r *Record) ActionLinks() []ActionLink {
	out := make([]ActionLink, 0, len(r.actionOrder))
	for _, a := range r.actionOrder {
		out = append(out, r.actionLinks[a])
	}
	return out
}

// AddReadPermission records a read permission. Duplicates are ignored.
func (r *Record) AddReadPermission(p string) {
	r.readPermissions = appendUnique(r.readPermissions, p)
}

// AddWritePermission records a write permission. Duplicates are ignored.
func (r *Record) AddWritePermission(p string) {
	r.writePermissions = appendUnique(r.writePermissions, p)
}

func (r *Record) ReadPermissions() []string { return r.readPermissions }

func (r *Record) WritePermissions() []string { return r.writePermissions }

func appendUnique(set []string, v string) []string {
	for _, s := range set {
		if s == v {
			return set
		}
	}
	return append(set, v)
}
