package value

import "strings"

// Flatten converts a nested table into a flat mapping keyed by dot-joined
// paths. Only leaf values are emitted: a nested table contributes entries
// for its members, not for itself. Arrays are leaves and are never
// descended into.
func Flatten(t Table) map[string]Value {
	out := make(map[string]Value)
	flattenInto(out, t, "")
	return out
}

func flattenInto(out map[string]Value, t Table, prefix string) {
	for k, v := range t {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if sub, ok := v.AsTable(); ok {
			flattenInto(out, sub, full)
			continue
		}
		out[full] = v.Clone()
	}
}

// Unflatten converts a flat dotted-key mapping back into a nested table.
// Each key containing '.' is split and nested tables are created or
// reused on demand. A key whose path crosses an existing non-table value
// stops descending and the deeper entry is dropped; for mappings without
// such collisions Flatten(Unflatten(m)) reproduces m key for key.
func Unflatten(flat map[string]Value) Table {
	root := make(Table)
	for key, v := range flat {
		insertPath(root, key, v)
	}
	return root
}

func insertPath(root Table, key string, v Value) {
	current := root
	for {
		i := strings.IndexByte(key, '.')
		if i < 0 {
			current[key] = v.Clone()
			return
		}
		head, rest := key[:i], key[i+1:]
		existing, ok := current[head]
		if !ok {
			next := make(Table)
			current[head] = Tab(next)
			current = next
		} else if sub, isTab := existing.AsTable(); isTab {
			current = sub
		} else {
			// Scalar already stored at an intermediate path.
			return
		}
		key = rest
	}
}
