package source

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/confmerge/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// parseHCL translates an HCL document into the value model. The document
// must consist of top-level attributes (nested data is expressed with
// object and tuple constructors); attributes are ordered by source
// position, and expressions must be static — there is no variable scope.
func parseHCL(path string, raw []byte) (value.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(raw, path)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, a := range attrs {
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	obj := value.NewObject()
	for _, a := range ordered {
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		converted, err := ctyToValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		obj.Set(a.Name, converted)
	}
	return obj, nil
}

// ctyToValue recursively converts a cty.Value into the value model. Object
// and map keys come out in cty's element order, which is sorted by key.
func ctyToValue(v cty.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Null{}, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("unknown value")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return value.String(v.AsString()), nil

	case ty == cty.Number:
		return value.Number(v.AsBigFloat().Text('g', -1)), nil

	case ty == cty.Bool:
		return value.Bool(v.True()), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		arr := value.Array{}
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			converted, err := ctyToValue(ev)
			if err != nil {
				return nil, err
			}
			arr = append(arr, converted)
		}
		return arr, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := value.NewObject()
		it := v.ElementIterator()
		for it.Next() {
			key, ev := it.Element()
			converted, err := ctyToValue(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			obj.Set(key.AsString(), converted)
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported HCL type %s", ty.FriendlyName())
	}
}
