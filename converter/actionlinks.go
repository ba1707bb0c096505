package converter

import (
	"fmt"

	"github.com/agentic-research/recordwire/data"
	"github.com/agentic-research/recordwire/jsonbuilder"
)

// TreeConverter renders a data node into a JSON object builder. The action
// link generator receives one instead of a concrete factory so that INDEX
// bodies can be converted without the generator depending on the code that
// invokes it.
type TreeConverter func(node any) (*jsonbuilder.Object, error)

// ActionContext describes the record a set of action links is generated
// for: its declared capabilities, identity, and an optional override for
// the id a SEARCH link should target.
type ActionContext struct {
	Actions        []data.Action
	RecordType     string
	RecordID       string
	SearchRecordID string
}

// ActionLinkBuilder derives the complete actionLinks object for a record
// from its action context. Construct a fresh builder per conversion.
type ActionLinkBuilder struct {
	baseURL string
	convert TreeConverter
}

// NewActionLinkBuilder creates a generator rooted at baseURL. convert is
// used to render synthesized request bodies and must not be nil.
func NewActionLinkBuilder(baseURL string, convert TreeConverter) *ActionLinkBuilder {
	return &ActionLinkBuilder{baseURL: baseURL, convert: convert}
}

// linkSpec is the resolved shape of one link: method and URL always, accept,
// contentType and body only when the action calls for them. Each action
// produces its spec as a value; nothing is accumulated between actions.
type linkSpec struct {
	method      string
	url         string
	accept      string
	contentType string
	body        *data.Group
}

// Build assembles the actionLinks object, one member per applicable action
// in the context's declared order. Actions that only exist on recordType
// records (create, list, batch_index, validate) are skipped for any other
// record type.
func (b *ActionLinkBuilder) Build(ctx ActionContext) (*jsonbuilder.Object, error) {
	obj := jsonbuilder.NewObject()
	for _, action := range ctx.Actions {
		spec, ok := b.specFor(action, ctx)
		if !ok {
			continue
		}
		link := jsonbuilder.NewObject().
			AddString("rel", action.String()).
			AddString("url", spec.url).
			AddString("requestMethod", spec.method)
		if spec.accept != "" {
			link.AddString("accept", spec.accept)
		}
		if spec.contentType != "" {
			link.AddString("contentType", spec.contentType)
		}
		if spec.body != nil {
			body, err := b.convert(spec.body)
			if err != nil {
				return nil, fmt.Errorf("convert %s body: %w", action, err)
			}
			link.AddObject("body", body)
		}
		obj.AddObject(action.String(), link)
	}
	return obj, nil
}

// BuildLinks resolves the context into ActionLink values instead of JSON,
// for callers that want to store the descriptors on a Record or
// ResourceLink.
func (b *ActionLinkBuilder) BuildLinks(ctx ActionContext) []data.ActionLink {
	var links []data.ActionLink
	for _, action := range ctx.Actions {
		spec, ok := b.specFor(action, ctx)
		if !ok {
			continue
		}
		links = append(links, data.ActionLink{
			Action:        action,
			URL:           spec.url,
			RequestMethod: spec.method,
			Accept:        spec.accept,
			ContentType:   spec.contentType,
			Body:          spec.body,
		})
	}
	return links
}

func (b *ActionLinkBuilder) specFor(action data.Action, ctx ActionContext) (linkSpec, bool) {
	recordURL := b.baseURL + ctx.RecordType + "/" + ctx.RecordID
	onRecordType := ctx.RecordType == "recordType"

	switch action {
	case data.ActionRead:
		return linkSpec{method: "GET", url: recordURL, accept: mimeCoraRecord}, true
	case data.ActionUpdate:
		return linkSpec{method: "POST", url: recordURL,
			accept: mimeCoraRecord, contentType: mimeCoraRecord}, true
	case data.ActionReadIncomingLinks:
		return linkSpec{method: "GET", url: recordURL + "/incomingLinks",
			accept: mimeCoraRecordList}, true
	case data.ActionDelete:
		return linkSpec{method: "DELETE", url: recordURL}, true
	case data.ActionIndex:
		return linkSpec{method: "POST", url: b.baseURL + "workOrder/",
			accept: mimeCoraRecord, contentType: mimeCoraRecord,
			body: indexWorkOrder(ctx.RecordType, ctx.RecordID)}, true
	case data.ActionUpload:
		return linkSpec{method: "POST", url: recordURL + "/master",
			contentType: mimeMultipartForm}, true
	case data.ActionSearch:
		searchID := ctx.SearchRecordID
		if searchID == "" {
			searchID = ctx.RecordID
		}
		return linkSpec{method: "GET", url: b.baseURL + "searchResult/" + searchID,
			accept: mimeCoraRecordList}, true
	case data.ActionCreate:
		if !onRecordType {
			return linkSpec{}, false
		}
		return linkSpec{method: "POST", url: b.baseURL + ctx.RecordID + "/",
			accept: mimeCoraRecord, contentType: mimeCoraRecord}, true
	case data.ActionList:
		if !onRecordType {
			return linkSpec{}, false
		}
		return linkSpec{method: "GET", url: b.baseURL + ctx.RecordID + "/",
			accept: mimeCoraRecordList}, true
	case data.ActionBatchIndex:
		if !onRecordType {
			return linkSpec{}, false
		}
		return linkSpec{method: "POST", url: b.baseURL + "index/" + ctx.RecordID + "/",
			accept: mimeCoraRecord, contentType: mimeCoraRecord}, true
	case data.ActionValidate:
		if !onRecordType {
			return linkSpec{}, false
		}
		return linkSpec{method: "POST", url: b.baseURL + "workOrder/",
			accept: mimeCoraRecord, contentType: mimeCoraWorkOrder}, true
	}
	return linkSpec{}, false
}

// indexWorkOrder synthesizes the request body for an INDEX link: a workOrder
// group naming the record to index.
func indexWorkOrder(recordType, recordID string) *data.Group {
	wo := data.NewGroup("workOrder")
	wo.AddChild(data.NewRecordLink("recordType", "recordType", recordType))
	wo.AddChild(data.NewAtomic("recordId", recordID))
	wo.AddChild(data.NewAtomic("type", "index"))
	return wo
}
