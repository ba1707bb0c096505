// Package api holds the passive types a record definition file decodes
// into. Definitions are the authoring format for the CLI; the recorddef
// package loads them from HCL and builds data trees from them.
package api

// Definition is the root of a record definition file. A file declares
// exactly one top-level entity: a record, a bare group, or a list.
type Definition struct {
	Records []RecordDef
	Groups  []GroupDef
	Lists   []ListDef
}

// RecordDef describes a record: its identity, the actions it supports, the
// permissions the caller holds, and the body group carrying the data.
type RecordDef struct {
	// Type of the record (the recordType it is an instance of).
	Type string
	// ID of the record. May be empty when the caller asks for a generated id.
	ID string
	// DataDivider is the system the record belongs to.
	DataDivider string
	// Actions the record supports, by wire name.
	Actions []string
	// ReadPermissions and WritePermissions held on the record.
	ReadPermissions  []string
	WritePermissions []string
	// Body is the record's data group. recordInfo is derived from the
	// identity fields above, not declared in the body.
	Body *GroupDef
}

// GroupDef describes a composite node. Children preserves the declaration
// order of the file, interleaving child kinds.
type GroupDef struct {
	Name       string
	RepeatID   string
	Attributes []AttributeDef
	Children   []ChildDef
}

// ChildDef is a tagged union; exactly one field is non-nil.
type ChildDef struct {
	Group    *GroupDef
	Atomic   *AtomicDef
	Link     *LinkDef
	Resource *ResourceDef
}

// AtomicDef describes a leaf value.
type AtomicDef struct {
	Name       string
	Value      string
	RepeatID   string
	Attributes []AttributeDef
}

// AttributeDef is one name/value annotation.
type AttributeDef struct {
	Name  string
	Value string
}

// LinkDef describes a record link and the actions declared on it.
type LinkDef struct {
	Name             string
	LinkedRecordType string
	LinkedRecordID   string
	RepeatID         string
	Actions          []string
}

// ResourceDef describes a resource link to a binary stream.
type ResourceDef struct {
	Name     string
	StreamID string
	Filename string
	Filesize string
	MimeType string
	RepeatID string
	Actions  []string
}

// ListDef describes a list of top-level groups with pagination counters.
type ListDef struct {
	ContainDataOfType string
	TotalNo           string
	FromNo            string
	ToNo              string
	Items             []GroupDef
}
