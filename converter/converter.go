// Package converter turns data trees into JSON documents. A Factory selects
// the converter matching a node's kind; converters recurse back through the
// factory for their children, so one factory instance carries the URL
// context for a whole conversion pass.
package converter

import (
	"fmt"

	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// Converter renders one node (and its subtree) into a JSON object builder.
// A converter is bound to its node and factory at construction and is not
// safe for concurrent use; construct a fresh one per conversion.
type Converter interface {
	ObjectBuilder() (*jsonbuilder.Object, error)
}

// JSON renders a converter's document pretty-printed.
func JSON(c Converter) (string, error) {
	obj, err := c.ObjectBuilder()
	if err != nil {
		return "", err
	}
	return obj.Pretty(), nil
}

// CompactJSON renders a converter's document without whitespace. Same
// document as JSON, different presentation.
func CompactJSON(c Converter) (string, error) {
	obj, err := c.ObjectBuilder()
	if err != nil {
		return "", err
	}
	return obj.Compact(), nil
}

// Context carries the URL inputs that enable action-link emission. BaseURL
// turns record links into hyperlinked records; RecordURL does the same for
// resource links. Both are opaque prefixes, concatenated and never parsed.
type Context struct {
	BaseURL   string
	RecordURL string
}

// Factory constructs the converter matching a node's kind. The context given
// at construction is reused for every nested conversion of the same pass, so
// children inherit their parent's URLs. A factory must not be shared between
// concurrent passes wanting different contexts.
type Factory struct {
	ctx Context
}

// NewFactory creates a factory bound to a URL context. The zero Context is
// valid and simply disables action-link emission.
func NewFactory(ctx Context) *Factory {
	return &Factory{ctx: ctx}
}

// ConverterFor selects a converter for the node. Kind checks run in a fixed
// precedence: lists and records first, then the link kinds when their URL
// context is present, then plain groups. A record link without a base URL
// (or a resource link without a record URL) deliberately degrades to plain
// group conversion.
func (f *Factory) ConverterFor(node any) (Converter, error) {
	switch n := node.(type) {
	case *data.List:
		return &listConverter{f: f, list: n}, nil
	case *data.Record:
		return &recordConverter{f: f, record: n}, nil
	case *data.RecordLink:
		if f.ctx.BaseURL != "" {
			return &recordLinkConverter{f: f, link: n}, nil
		}
		return &groupConverter{f: f, group: n.AsGroup()}, nil
	case *data.ResourceLink:
		if f.ctx.RecordURL != "" {
			return &resourceLinkConverter{f: f, link: n}, nil
		}
		return &groupConverter{f: f, group: n.AsGroup()}, nil
	case *data.RecordGroup:
		return &groupConverter{f: f, group: n.AsGroup()}, nil
	case *data.Group:
		return &groupConverter{f: f, group: n}, nil
	case *data.Atomic:
		return &atomicConverter{atomic: n}, nil
	case data.Attribute:
		return &attributeConverter{attr: n}, nil
	default:
		return nil, fmt.Errorf("no converter for node of type %T", node)
	}
}

// ActionLinkBuilder returns a generator that renders INDEX work-order bodies
// back through this factory.
func (f *Factory) ActionLinkBuilder() *ActionLinkBuilder {
	return NewActionLinkBuilder(f.ctx.BaseURL, func(node any) (*jsonbuilder.Object, error) {
		c, err := f.ConverterFor(node)
		if err != nil {
			return nil, err
		}
		return c.ObjectBuilder()
	})
}
