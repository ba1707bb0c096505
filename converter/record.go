package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// recordConverter renders a record under the record envelope: the wrapped
// group as data, and the permission sets when any are present. The record's
// own action links are not emitted; clients obtain them from the server
// response rather than from locally built records.
type recordConverter struct {
	f      *Factory
	record *data.Record
}

func (c *recordConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	groupConv, err := c.f.ConverterFor(c.record.Group())
	if err != nil {
		return nil, err
	}
	dataObj, err := groupConv.ObjectBuilder()
	if err != nil {
		return nil, err
	}
	inner := jsonbuilder.NewObject().AddObject("data", dataObj)
	addPermissions(inner, c.record)
	return jsonbuilder.NewObject().AddObject("record", inner), nil
}

// addPermissions appends the permissions object when at least one set is
// non-empty; each of read/write appears only when that set has entries.
func addPermissions(obj *jsonbuilder.Object, record *data.Record) {
	read := record.ReadPermissions()
	write := record.WritePermissions()
	if len(read) == 0 && len(write) == 0 {
		return
	}
	perms := jsonbuilder.NewObject()
	if len(read) > 0 {
		arr := jsonbuilder.NewArray()
		for _, p := range read {
			arr.AddString(p)
		}
		perms.AddArray("read", arr)
	}
	if len(write) > 0 {
		arr := jsonbuilder.NewArray()
		for _, p := range write {
			arr.AddString(p)
		}
		perms.AddArray("write", arr)
	}
	obj.AddObject("permissions", perms)
}
