package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// attributeConverter renders a bare attribute as its single {name: value}
// pair, not nested under name/value keys.
type attributeConverter struct {
	attr data.Attribute
}

func (c *attributeConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	return jsonbuilder.NewObject().AddString(c.attr.Name, c.attr.Value), nil
}
