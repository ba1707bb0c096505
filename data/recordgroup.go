package data

const (
	childRecordInfo  = "recordInfo"
	childType        = "type"
	childID          = "id"
	childDataDivider = "dataDivider"

	linkedTypeRecordType = "recordType"
	linkedTypeSystem     = "system"
)

// RecordGroup is a top-level group whose recordInfo child identifies the
// record: its type (a link into recordType), its id, and the system that
// owns it (dataDivider, a link into system). The derived accessors read
// through recordInfo and fail when it or the relevant child is absent.
type RecordGroup struct {
	Group
}

// NewRecordGroup creates an empty record group. recordInfo is created lazily
// by the first Set call.
func NewRecordGroup(name string) *RecordGroup {
	return &RecordGroup{Group: Group{element: element{name: name}}}
}

// RecordGroupFromGroup adopts an existing group as a record group. No
// validation happens here: a missing recordInfo surfaces on first access.
func RecordGroupFromGroup(g *Group) *RecordGroup {
	return &RecordGroup{Group: *g}
}

// Type returns the record's type, read from the recordInfo type link.
func (r *RecordGroup) Type() (string, error) {
	return r.recordInfoLink(childType)
}

// ID returns the record's id, read from the recordInfo id atomic.
func (r *RecordGroup) ID() (string, error) {
	info, err := r.FirstGroupWithName(childRecordInfo)
	if err != nil {
		return "", err
	}
	return info.FirstAtomicValueWithName(childID)
}

// DataDivider returns the owning system, read from the recordInfo
// dataDivider link.
func (r *RecordGroup) DataDivider() (string, error) {
	return r.recordInfoLink(childDataDivider)
}

func (r *RecordGroup) recordInfoLink(name string) (string, error) {
	info, err := r.FirstGroupWithName(childRecordInfo)
	if err != nil {
		return "", err
	}
	link, err := FirstChildOfType[*RecordLink](info, name)
	if err != nil {
		return "", err
	}
	return link.LinkedRecordID(), nil
}

// SetType replaces the record's type link. The previous child is removed and
// a fresh link appended; nothing is mutated in place.
func (r *RecordGroup) SetType(recordType string) {
	info := r.ensureRecordInfo()
	info.RemoveFirstChildWithName(childType)
	info.AddChild(NewRecordLink(childType, linkedTypeRecordType, recordType))
}

// SetID replaces the record's id atomic.
func (r *RecordGroup) SetID(id string) {
	info := r.ensureRecordInfo()
	info.RemoveFirstChildWithName(childID)
	info.AddChild(NewAtomic(childID, id))
}

// SetDataDivider replaces the record's dataDivider link.
func (r *RecordGroup) SetDataDivider(dataDivider string) {
	info := r.ensureRecordInfo()
	info.RemoveFirstChildWithName(childDataDivider)
	info.AddChild(NewRecordLink(childDataDivider, linkedTypeSystem, dataDivider))
}

func (r *RecordGroup) ensureRecordInfo() *Group {
	info, err := r.FirstGroupWithName(childRecordInfo)
	if err == nil {
		return info
	}
	info = NewGroup(childRecordInfo)
	r.AddChild(info)
	return info
}
