package stomlargs

import (
	"strconv"
	"strings"

	"github.com/parazyd/stoml-args/value"
)

// coerce converts raw token text into a typed value. Numeric parsing is
// strict; boolean parsing is deliberately lenient because boolean flags
// are presence-oriented, so a stray inline value like --flag=maybe
// degrades to false instead of failing the whole parse.
func coerce(name, raw string, t Type) (value.Value, error) {
	switch t {
	case TypeInteger, TypeCount:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return value.Value{}, &InvalidValueError{Name: name, Value: raw, Expected: "an integer"}
		}
		return value.Int(n), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value.Value{}, &InvalidValueError{Name: name, Value: raw, Expected: "a number"}
		}
		return value.Float(f), nil
	case TypeBool:
		return value.Bool(lenientBool(raw)), nil
	default:
		// Strings and array elements pass through verbatim.
		return value.Str(raw), nil
	}
}

func lenientBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
