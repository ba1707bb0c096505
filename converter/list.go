package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// listConverter renders a list under the dataList envelope with its
// pagination counters and every item converted in order.
type listConverter struct {
	f    *Factory
	list *data.List
}

func (c *listConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	inner := jsonbuilder.NewObject().
		AddString("totalNo", c.list.TotalNo()).
		AddString("fromNo", c.list.FromNo()).
		AddString("toNo", c.list.ToNo()).
		AddString("containDataOfType", c.list.ContainDataOfType())
	items := jsonbuilder.NewArray()
	for _, item := range c.list.Data() {
		conv, err := c.f.ConverterFor(item)
		if err != nil {
			return nil, err
		}
		obj, err := conv.ObjectBuilder()
		if err != nil {
			return nil, err
		}
		items.AddObject(obj)
	}
	inner.AddArray("data", items)
	return jsonbuilder.NewObject().AddObject("dataList", inner), nil
}
