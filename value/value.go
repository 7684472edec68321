package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindArray
	KindTable
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Table is a nested string-keyed mapping. Iteration order carries no
// semantic meaning.
type Table map[string]Value

// Value is a closed sum over the six kinds a resolved datum can take.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bln  bool
	arr  []Value
	tab  Table
}

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Int wraps a signed 64-bit integer.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float wraps a 64-bit float.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, bln: b} }

// Arr wraps an ordered sequence of values.
func Arr(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Tab wraps a nested table.
func Tab(t Table) Value { return Value{kind: KindTable, tab: t} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload, or false if the value is not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer payload, or false if the value is not an integer.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// AsFloat returns the float payload, or false if the value is not a float.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.flt, true
}

// AsBool returns the boolean payload, or false if the value is not a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.bln, true
}

// AsArray returns the element slice, or false if the value is not an array.
// The slice is shared with the value; callers that need to mutate it should
// Clone first.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsTable returns the nested table, or false if the value is not a table.
// The table is shared with the value; callers that need to mutate it should
// Clone first.
func (v Value) AsTable() (Table, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.tab, true
}

// Append returns a new array value with elem appended. If v is not an
// array it is discarded and a fresh single-element array is returned.
func (v Value) Append(elem Value) Value {
	if v.kind != KindArray {
		return Arr(elem)
	}
	elems := make([]Value, 0, len(v.arr)+1)
	elems = append(elems, v.arr...)
	return Arr(append(elems, elem)...)
}

// Clone returns a deep copy. Scalars copy by value; arrays and tables are
// rebuilt recursively so the copy shares no storage with the original.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Clone()
		}
		return Arr(elems...)
	case KindTable:
		return Tab(v.tab.Clone())
	default:
		return v
	}
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports deep structural equality. Kinds must match exactly; an
// integer 1 is not equal to a float 1.0.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.bln == o.bln
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindTable:
		if len(v.tab) != len(o.tab) {
			return false
		}
		for k, ve := range v.tab {
			oe, ok := o.tab[k]
			if !ok || !ve.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for display, e.g. in usage text defaults.
// Tables render with sorted keys so output is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bln)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindTable:
		keys := make([]string, 0, len(v.tab))
		for k := range v.tab {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + " = " + v.tab[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}
