package recorddef

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agentic-research/recordwire/api"
	"github.com/agentic-research/recordwire/data"
)

// BuildEntity turns a parsed definition into the one data value it declares.
// A file with zero or more than one top-level entity is rejected.
func BuildEntity(def *api.Definition, generateID bool) (any, error) {
	total := len(def.Records) + len(def.Groups) + len(def.Lists)
	if total != 1 {
		return nil, fmt.Errorf("definition must declare exactly one record, group, or list; found %d", total)
	}
	switch {
	case len(def.Records) == 1:
		return BuildRecord(&def.Records[0], generateID)
	case len(def.Lists) == 1:
		return BuildList(&def.Lists[0])
	default:
		return BuildGroup(&def.Groups[0])
	}
}

// BuildRecord assembles a record: the body group, recordInfo derived from
// the identity fields, and the permission sets. An absent id is generated
// when generateID is set and rejected otherwise.
func BuildRecord(def *api.RecordDef, generateID bool) (*data.Record, error) {
	body, err := BuildGroup(def.Body)
	if err != nil {
		return nil, err
	}
	group := data.RecordGroupFromGroup(body)
	group.SetType(def.Type)
	id := def.ID
	if id == "" {
		if !generateID {
			return nil, fmt.Errorf("record %q has no id and id generation is off", def.Type)
		}
		id = uuid.NewString()
	}
	group.SetID(id)
	if def.DataDivider != "" {
		group.SetDataDivider(def.DataDivider)
	}

	record := data.NewRecord(group)
	for _, p := range def.ReadPermissions {
		record.AddReadPermission(p)
	}
	for _, p := range def.WritePermissions {
		record.AddWritePermission(p)
	}
	return record, nil
}

// BuildGroup assembles a group and its subtree in declaration order.
func BuildGroup(def *api.GroupDef) (*data.Group, error) {
	group := data.NewGroup(def.Name)
	if def.RepeatID != "" {
		group.SetRepeatID(def.RepeatID)
	}
	for _, a := range def.Attributes {
		group.AddAttribute(a.Name, a.Value)
	}
	for _, child := range def.Children {
		node, err := buildChild(child)
		if err != nil {
			return nil, err
		}
		group.AddChild(node)
	}
	return group, nil
}

// BuildList assembles a list of groups with its pagination counters.
func BuildList(def *api.ListDef) (*data.List, error) {
	list := data.NewList(def.ContainDataOfType)
	list.SetTotalNo(def.TotalNo)
	list.SetFromNo(def.FromNo)
	list.SetToNo(def.ToNo)
	for i := range def.Items {
		item, err := BuildGroup(&def.Items[i])
		if err != nil {
			return nil, err
		}
		list.AddData(item)
	}
	return list, nil
}

// Actions parses declared action names into the closed enumeration.
func Actions(names []string) ([]data.Action, error) {
	var actions []data.Action
	for _, name := range names {
		a, err := data.ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func buildChild(def api.ChildDef) (data.Child, error) {
	switch {
	case def.Group != nil:
		return BuildGroup(def.Group)
	case def.Atomic != nil:
		atomic := data.NewAtomic(def.Atomic.Name, def.Atomic.Value)
		if def.Atomic.RepeatID != "" {
			atomic.SetRepeatID(def.Atomic.RepeatID)
		}
		for _, a := range def.Atomic.Attributes {
			atomic.AddAttribute(a.Name, a.Value)
		}
		return atomic, nil
	case def.Link != nil:
		link := data.NewRecordLink(def.Link.Name, def.Link.LinkedRecordType, def.Link.LinkedRecordID)
		if def.Link.RepeatID != "" {
			link.SetRepeatID(def.Link.RepeatID)
		}
		actions, err := Actions(def.Link.Actions)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", def.Link.Name, err)
		}
		for _, a := range actions {
			link.AddAction(a)
		}
		return link, nil
	case def.Resource != nil:
		res := data.NewResourceLink(def.Resource.Name, def.Resource.StreamID,
			def.Resource.Filename, def.Resource.Filesize, def.Resource.MimeType)
		if def.Resource.RepeatID != "" {
			res.SetRepeatID(def.Resource.RepeatID)
		}
		actions, err := Actions(def.Resource.Actions)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", def.Resource.Name, err)
		}
		for _, a := range actions {
			res.AddAction(a)
		}
		return res, nil
	}
	return nil, fmt.Errorf("empty child definition")
}
