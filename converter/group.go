package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// groupConverter renders a composite as {repeatId?, attributes?, children?,
// name}. The hook, when set, runs after children and before name, which is
// where the link kinds splice in their actionLinks object.
type groupConverter struct {
	f     *Factory
	group *data.Group
	hook  func(obj *jsonbuilder.Object) error
}

func (c *groupConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	obj := jsonbuilder.NewObject()
	if rid := c.group.RepeatID(); rid != "" {
		obj.AddString("repeatId", rid)
	}
	addAttributes(obj, c.group)
	if c.group.HasChildren() {
		arr := jsonbuilder.NewArray()
		for _, child := range c.group.Children() {
			conv, err := c.f.ConverterFor(child)
			if err != nil {
				return nil, err
			}
			childObj, err := conv.ObjectBuilder()
			if err != nil {
				return nil, err
			}
			arr.AddObject(childObj)
		}
		obj.AddArray("children", arr)
	}
	if c.hook != nil {
		if err := c.hook(obj); err != nil {
			return nil, err
		}
	}
	obj.AddString("name", c.group.NameInData())
	return obj, nil
}
