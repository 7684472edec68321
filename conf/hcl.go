package conf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/parazyd/stoml-args/value"
)

// ParseHCL converts an HCL document into a value tree. The document must
// consist of attributes only; nested tables are written as object
// expressions, e.g. `server = { port = 8080 }`. filename is used in
// diagnostics.
func ParseHCL(data []byte, filename string) (value.Table, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("conf: parse hcl: %w", diags)
	}
	return hclFileToTable(file)
}

func loadHCLFile(path string) (value.Table, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("conf: parse hcl: %w", diags)
	}
	return hclFileToTable(file)
}

func hclFileToTable(file *hcl.File) (value.Table, error) {
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("conf: read hcl attributes: %w", diags)
	}

	tab := make(value.Table, len(attrs))
	for name, attr := range attrs {
		ctyVal, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("conf: evaluate %s: %w", name, diags)
		}
		v, err := fromCty(ctyVal)
		if err != nil {
			return nil, fmt.Errorf("conf: attribute %s: %w", name, err)
		}
		tab[name] = v
	}
	return tab, nil
}

// fromCty maps a cty value onto the value variant set. Whole cty numbers
// become integers, everything else a float.
func fromCty(v cty.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Value{}, fmt.Errorf("null value")
	}

	t := v.Type()
	switch {
	case t == cty.String:
		return value.Str(v.AsString()), nil
	case t == cty.Bool:
		return value.Bool(v.True()), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			n, _ := bf.Int64()
			return value.Int(n), nil
		}
		f, _ := bf.Float64()
		return value.Float(f), nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var elems []value.Value
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, converted)
		}
		return value.Arr(elems...), nil
	case t.IsObjectType() || t.IsMapType():
		tab := make(value.Table)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return value.Value{}, err
			}
			tab[k.AsString()] = converted
		}
		return value.Tab(tab), nil
	}

	return value.Value{}, fmt.Errorf("unsupported cty type %s", t.FriendlyName())
}
