package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// recordLinkConverter renders a record link as a group, plus a read action
// link when the link declares the read action. Only chosen by the factory
// when a base URL is configured.
type recordLinkConverter struct {
	f    *Factory
	link *data.RecordLink
}

func (c *recordLinkConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	gc := &groupConverter{f: c.f, group: c.link.AsGroup(), hook: c.addActionLinks}
	return gc.ObjectBuilder()
}

func (c *recordLinkConverter) addActionLinks(obj *jsonbuilder.Object) error {
	if !c.link.HasAction(data.ActionRead) {
		return nil
	}
	read := jsonbuilder.NewObject().
		AddString("rel", "read").
		AddString("url", c.f.ctx.BaseURL+c.link.LinkedRecordType()+"/"+c.link.LinkedRecordID()).
		AddString("requestMethod", "GET").
		AddString("accept", mimeUUBRecord)
	obj.AddObject("actionLinks", jsonbuilder.NewObject().AddObject("read", read))
	return nil
}
