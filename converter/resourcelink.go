package converter

import (
	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// resourceLinkConverter renders a resource link in its own shape,
// {name, mimeType, repeatId?, actionLinks?}, rather than as a group with
// children. Only chosen by the factory when a record URL is configured; the
// read link points at the resource under the record's own URL and accepts
// the resource's media type.
type resourceLinkConverter struct {
	f    *Factory
	link *data.ResourceLink
}

func (c *resourceLinkConverter) ObjectBuilder() (*jsonbuilder.Object, error) {
	obj := jsonbuilder.NewObject().
		AddString("name", c.link.NameInData()).
		AddString("mimeType", c.link.MimeType())
	if rid := c.link.RepeatID(); rid != "" {
		obj.AddString("repeatId", rid)
	}
	if c.link.HasAction(data.ActionRead) {
		read := jsonbuilder.NewObject().
			AddString("rel", "read").
			AddString("url", c.f.ctx.RecordURL+"/"+c.link.NameInData()).
			AddString("requestMethod", "GET").
			AddString("accept", c.link.MimeType())
		obj.AddObject("actionLinks", jsonbuilder.NewObject().AddObject("read", read))
	}
	return obj, nil
}
