// Package recorddef loads record definition files (HCL) into api types and
// builds data trees from them. Parsing walks the syntax tree directly so
// that sibling children keep their declaration order; decoding through
// struct tags would regroup them by block type.
package recorddef

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/agentic-research/recordwire/api"
)

// Load reads and parses a definition file.
func Load(path string) (*api.Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}
	return decodeFile(file)
}

// Parse parses definition source held in memory. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*api.Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}
	return decodeFile(file)
}

func decodeFile(file *hcl.File) (*api.Definition, error) {
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type %T", file.Body)
	}
	def := &api.Definition{}
	for _, block := range body.Blocks {
		switch block.Type {
		case "record":
			rec, err := decodeRecord(block)
			if err != nil {
				return nil, err
			}
			def.Records = append(def.Records, rec)
		case "group":
			grp, err := decodeGroup(block)
			if err != nil {
				return nil, err
			}
			def.Groups = append(def.Groups, grp)
		case "list":
			lst, err := decodeList(block)
			if err != nil {
				return nil, err
			}
			def.Lists = append(def.Lists, lst)
		default:
			return nil, blockErr(block, "unknown block type %q", block.Type)
		}
	}
	return def, nil
}

func decodeRecord(block *hclsyntax.Block) (api.RecordDef, error) {
	if len(block.Labels) != 0 {
		return api.RecordDef{}, blockErr(block, "record blocks take no label")
	}
	rec := api.RecordDef{}
	var err error
	if rec.Type, err = stringAttr(block, "type", true); err != nil {
		return rec, err
	}
	if rec.ID, err = stringAttr(block, "id", false); err != nil {
		return rec, err
	}
	if rec.DataDivider, err = stringAttr(block, "data_divider", false); err != nil {
		return rec, err
	}
	if rec.Actions, err = stringListAttr(block, "actions"); err != nil {
		return rec, err
	}
	if rec.ReadPermissions, err = stringListAttr(block, "read_permissions"); err != nil {
		return rec, err
	}
	if rec.WritePermissions, err = stringListAttr(block, "write_permissions"); err != nil {
		return rec, err
	}
	for _, inner := range block.Body.Blocks {
		if inner.Type != "group" {
			return rec, blockErr(inner, "record bodies hold a single group block, got %q", inner.Type)
		}
		if rec.Body != nil {
			return rec, blockErr(inner, "record already has a body group")
		}
		grp, err := decodeGroup(inner)
		if err != nil {
			return rec, err
		}
		rec.Body = &grp
	}
	if rec.Body == nil {
		return rec, blockErr(block, "record needs a body group")
	}
	return rec, nil
}

func decodeGroup(block *hclsyntax.Block) (api.GroupDef, error) {
	name, err := blockLabel(block)
	if err != nil {
		return api.GroupDef{}, err
	}
	grp := api.GroupDef{Name: name}
	if grp.RepeatID, err = stringAttr(block, "repeat_id", false); err != nil {
		return grp, err
	}
	for _, inner := range block.Body.Blocks {
		switch inner.Type {
		case "attribute":
			attr, err := decodeAttribute(inner)
			if err != nil {
				return grp, err
			}
			grp.Attributes = append(grp.Attributes, attr)
		case "group":
			child, err := decodeGroup(inner)
			if err != nil {
				return grp, err
			}
			grp.Children = append(grp.Children, api.ChildDef{Group: &child})
		case "atomic":
			child, err := decodeAtomic(inner)
			if err != nil {
				return grp, err
			}
			grp.Children = append(grp.Children, api.ChildDef{Atomic: &child})
		case "link":
			child, err := decodeLink(inner)
			if err != nil {
				return grp, err
			}
			grp.Children = append(grp.Children, api.ChildDef{Link: &child})
		case "resource":
			child, err := decodeResource(inner)
			if err != nil {
				return grp, err
			}
			grp.Children = append(grp.Children, api.ChildDef{Resource: &child})
		default:
			return grp, blockErr(inner, "unknown child block type %q", inner.Type)
		}
	}
	return grp, nil
}

func decodeAtomic(block *hclsyntax.Block) (api.AtomicDef, error) {
	name, err := blockLabel(block)
	if err != nil {
		return api.AtomicDef{}, err
	}
	atomic := api.AtomicDef{Name: name}
	if atomic.Value, err = stringAttr(block, "value", true); err != nil {
		return atomic, err
	}
	if atomic.RepeatID, err = stringAttr(block, "repeat_id", false); err != nil {
		return atomic, err
	}
	for _, inner := range block.Body.Blocks {
		if inner.Type != "attribute" {
			return atomic, blockErr(inner, "atomic blocks hold only attribute blocks, got %q", inner.Type)
		}
		attr, err := decodeAttribute(inner)
		if err != nil {
			return atomic, err
		}
		atomic.Attributes = append(atomic.Attributes, attr)
	}
	return atomic, nil
}

func decodeLink(block *hclsyntax.Block) (api.LinkDef, error) {
	name, err := blockLabel(block)
	if err != nil {
		return api.LinkDef{}, err
	}
	link := api.LinkDef{Name: name}
	if link.LinkedRecordType, err = stringAttr(block, "linked_record_type", true); err != nil {
		return link, err
	}
	if link.LinkedRecordID, err = stringAttr(block, "linked_record_id", true); err != nil {
		return link, err
	}
	if link.RepeatID, err = stringAttr(block, "repeat_id", false); err != nil {
		return link, err
	}
	if link.Actions, err = stringListAttr(block, "actions"); err != nil {
		return link, err
	}
	return link, nil
}

func decodeResource(block *hclsyntax.Block) (api.ResourceDef, error) {
	name, err := blockLabel(block)
	if err != nil {
		return api.ResourceDef{}, err
	}
	res := api.ResourceDef{Name: name}
	if res.StreamID, err = stringAttr(block, "stream_id", true); err != nil {
		return res, err
	}
	if res.Filename, err = stringAttr(block, "filename", true); err != nil {
		return res, err
	}
	if res.Filesize, err = stringAttr(block, "filesize", true); err != nil {
		return res, err
	}
	if res.MimeType, err = stringAttr(block, "mime_type", true); err != nil {
		return res, err
	}
	if res.RepeatID, err = stringAttr(block, "repeat_id", false); err != nil {
		return res, err
	}
	if res.Actions, err = stringListAttr(block, "actions"); err != nil {
		return res, err
	}
	return res, nil
}

func decodeAttribute(block *hclsyntax.Block) (api.AttributeDef, error) {
	name, err := blockLabel(block)
	if err != nil {
		return api.AttributeDef{}, err
	}
	value, err := stringAttr(block, "value", true)
	if err != nil {
		return api.AttributeDef{}, err
	}
	return api.AttributeDef{Name: name, Value: value}, nil
}

func decodeList(block *hclsyntax.Block) (api.ListDef, error) {
	contains, err := blockLabel(block)
	if err != nil {
		return api.ListDef{}, err
	}
	lst := api.ListDef{ContainDataOfType: contains}
	if lst.TotalNo, err = stringAttr(block, "total", false); err != nil {
		return lst, err
	}
	if lst.FromNo, err = stringAttr(block, "from", false); err != nil {
		return lst, err
	}
	if lst.ToNo, err = stringAttr(block, "to", false); err != nil {
		return lst, err
	}
	for _, inner := range block.Body.Blocks {
		if inner.Type != "group" {
			return lst, blockErr(inner, "list blocks hold only group blocks, got %q", inner.Type)
		}
		grp, err := decodeGroup(inner)
		if err != nil {
			return lst, err
		}
		lst.Items = append(lst.Items, grp)
	}
	return lst, nil
}

func blockLabel(block *hclsyntax.Block) (string, error) {
	if len(block.Labels) != 1 || block.Labels[0] == "" {
		return "", blockErr(block, "%s blocks take exactly one label", block.Type)
	}
	return block.Labels[0], nil
}

// stringAttr evaluates a string attribute. Absent optional attributes
// return "".
func stringAttr(block *hclsyntax.Block, name string, required bool) (string, error) {
	attr, ok := block.Body.Attributes[name]
	if !ok {
		if required {
			return "", blockErr(block, "missing required attribute %q", name)
		}
		return "", nil
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("%s: %s", attr.SrcRange, diags.Error())
	}
	if v.Type() != cty.String {
		return "", fmt.Errorf("%s: attribute %q must be a string", attr.SrcRange, name)
	}
	return v.AsString(), nil
}

// stringListAttr evaluates a list-of-strings attribute. Absent attributes
// return nil.
func stringListAttr(block *hclsyntax.Block, name string) ([]string, error) {
	attr, ok := block.Body.Attributes[name]
	if !ok {
		return nil, nil
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s", attr.SrcRange, diags.Error())
	}
	if !v.CanIterateElements() {
		return nil, fmt.Errorf("%s: attribute %q must be a list of strings", attr.SrcRange, name)
	}
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.Type() != cty.String {
			return nil, fmt.Errorf("%s: attribute %q must be a list of strings", attr.SrcRange, name)
		}
		out = append(out, ev.AsString())
	}
	return out, nil
}

func blockErr(block *hclsyntax.Block, format string, args ...any) error {
	return fmt.Errorf("%s: %s", block.DefRange(), fmt.Sprintf(format, args...))
}
