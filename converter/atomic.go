package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// atomicConverter renders a leaf as {name, value, repeatId?, attributes?}.
type atomicConverter struct {
	atomic *data.Atomic
}

func (c *atomicConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	obj := jsonbuilder.NewObject().
		AddString("name", c.atomic.NameInData()).
		AddString("value", c.atomic.Value())
	if rid := c.atomic.RepeatID(); rid != "" {
		obj.AddString("repeatId", rid)
	}
	addAttributes(obj, c.atomic)
	return obj, nil
}

// addAttributes appends an attributes object when the node has any.
func addAttributes(obj *jsonbuilder.Object, node data.Child) {
	attrs := node.Attributes()
	if len(attrs) == 0 {
		return
	}
	attrObj := jsonbuilder.NewObject()
	for _, a := range attrs {
		attrObj.AddString(a.Name, a.Value)
	}
	obj.AddObject("attributes", attrObj)
}
