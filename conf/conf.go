package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/parazyd/stoml-args/value"
)

// ErrUnsupportedFormat reports a file extension no adapter handles.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// LoadFile reads and parses a configuration document, dispatching on the
// file extension: .toml, .yaml/.yml, or .hcl.
func LoadFile(path string) (value.Table, error) {
	var parse func([]byte) (value.Table, error)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parse = ParseTOML
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".hcl":
		return loadHCLFile(path)
	default:
		return nil, fmt.Errorf("conf: %w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conf: read %s: %w", path, err)
	}
	return parse(data)
}

// LoadFileOptional is LoadFile for paths that may legitimately not
// exist: a missing file yields a nil tree and no error.
func LoadFileOptional(path string) (value.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadFile(path)
}

// fromGo converts the interface{} trees produced by the TOML and YAML
// decoders into the value variant set. The reflection fallback covers
// concretely typed containers such as the []map[string]interface{} that
// TOML arrays-of-tables decode into.
func fromGo(v any) (value.Value, error) {
	switch x := v.(type) {
	case string:
		return value.Str(x), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case float32:
		return value.Float(float64(x)), nil
	case float64:
		return value.Float(x), nil
	case []any:
		elems := make([]value.Value, len(x))
		for i, e := range x {
			ev, err := fromGo(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = ev
		}
		return value.Arr(elems...), nil
	case map[string]any:
		tab := make(value.Table, len(x))
		for k, e := range x {
			ev, err := fromGo(e)
			if err != nil {
				return value.Value{}, err
			}
			tab[k] = ev
		}
		return value.Tab(tab), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]value.Value, rv.Len())
		for i := range elems {
			ev, err := fromGo(rv.Index(i).Interface())
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = ev
		}
		return value.Arr(elems...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			tab := make(value.Table, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				ev, err := fromGo(iter.Value().Interface())
				if err != nil {
					return value.Value{}, err
				}
				tab[iter.Key().String()] = ev
			}
			return value.Tab(tab), nil
		}
	}

	return value.Value{}, fmt.Errorf("conf: unsupported value type %T", v)
}

func tableFromGo(raw map[string]any) (value.Table, error) {
	v, err := fromGo(raw)
	if err != nil {
		return nil, err
	}
	tab, _ := v.AsTable()
	return tab, nil
}
